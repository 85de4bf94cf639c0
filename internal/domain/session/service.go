package session

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"markskeeper/internal/domain/validation"
)

// Controller управляет входом и выходом и решает, какой экран показывать.
// Не потокобезопасен, синхронизацию обеспечивает владелец.
type Controller struct {
	repo   Repository
	hasher Hasher
	log    *slog.Logger

	username     string
	passwordHash string
	loggedIn     bool
	err          string
}

func NewController(repo Repository, hasher Hasher, log *slog.Logger) *Controller {
	return &Controller{
		repo:   repo,
		hasher: hasher,
		log:    log.With(slog.String("component", "session")),
	}
}

// Load восстанавливает сессию из хранилища. Сохраненная личность означает,
// что пользователь уже вошел.
func (c *Controller) Load(ctx context.Context) {
	c.reset()

	identity, ok := c.repo.Load(ctx)
	if !ok {
		return
	}

	c.username = identity.Username
	c.passwordHash = identity.PasswordHash
	c.loggedIn = true

	c.log.Debug("session restored", "username", c.username)
}

// AttemptLogin проверяет заполненность полей, сохраняет личность и открывает сессию
func (c *Controller) AttemptLogin(ctx context.Context, username, password string) error {
	creds := Credentials{Username: username, Password: password}
	if err := validation.Struct(creds, MsgCredentialsRequired); err != nil {
		if ve, ok := validation.As(err); ok {
			c.err = ve.Message
		}
		c.log.Debug("login rejected", "error", err)
		return err
	}

	hash, err := c.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	identity := Identity{Username: username, PasswordHash: hash}
	if err := c.repo.Save(ctx, identity); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	c.username = identity.Username
	c.passwordHash = identity.PasswordHash
	c.loggedIn = true
	c.err = ""

	c.log.Info("user logged in", "username", username)

	return nil
}

// Logout удаляет сохраненную личность и сбрасывает состояние. Состояние в памяти
// сбрасывается даже при ошибке хранилища.
func (c *Controller) Logout(ctx context.Context) error {
	err := c.repo.Clear(ctx)
	username := c.username
	c.reset()

	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	c.log.Info("user logged out", "username", username)
	return nil
}

func (c *Controller) reset() {
	c.username = ""
	c.passwordHash = ""
	c.loggedIn = false
	c.err = ""
}

func (c *Controller) IsLoggedIn() bool {
	return c.loggedIn
}

func (c *Controller) Username() string {
	return c.username
}

func (c *Controller) Err() string {
	return c.err
}

func (c *Controller) State() State {
	return State{
		Username: c.username,
		LoggedIn: c.loggedIn,
		Error:    c.err,
	}
}

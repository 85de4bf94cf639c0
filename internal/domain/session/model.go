package session

import "errors"

const MsgCredentialsRequired = "Both username and password are required."

var (
	ErrNotLoggedIn = errors.New("not logged in")
)

// Credentials - данные из формы входа
type Credentials struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

// Identity - сохраняемая часть сессии, пароль хранится только в виде хэша
type Identity struct {
	Username     string
	PasswordHash string
}

// State - снимок состояния сессии для отображения
type State struct {
	Username string
	LoggedIn bool
	Error    string
}

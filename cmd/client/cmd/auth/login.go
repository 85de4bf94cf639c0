// cmd/client/cmd/auth/login.go
package auth

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"markskeeper/cmd/client/cmd/types"
	"markskeeper/internal/domain/validation"
)

var (
	username      string
	passwordStdin bool
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в систему",
	Long: `Вход по имени пользователя и паролю.

Оба поля обязательны. После входа сессия сохраняется локально
и восстанавливается при следующем запуске.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		in := bufio.NewReader(cmd.InOrStdin())

		// Запрашиваем имя пользователя
		if !cmd.Flags().Changed("username") {
			fmt.Fprint(out, "Username: ")
			if username, err = readLine(in); err != nil {
				return fmt.Errorf("ошибка чтения имени: %w", err)
			}
		}

		// Запрашиваем пароль
		password, err := readPassword(cmd, in)
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}

		if err := app.Login(cmd.Context(), username, password); err != nil {
			if ve, ok := validation.As(err); ok {
				return ve
			}
			return fmt.Errorf("ошибка входа: %w", err)
		}

		color.New(color.FgGreen).Fprintf(out, "✅ Вход выполнен: %s\n", username)
		return nil
	},
}

func readPassword(cmd *cobra.Command, in *bufio.Reader) (string, error) {
	if passwordStdin {
		return readLine(in)
	}

	fmt.Fprint(cmd.OutOrStdout(), "Password: ")
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		return string(password), err
	}
	return readLine(in)
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func init() {
	LoginCmd.Flags().StringVarP(&username, "username", "u", "", "имя пользователя")
	LoginCmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "прочитать пароль из stdin")
}

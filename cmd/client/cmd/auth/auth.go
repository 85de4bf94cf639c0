package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd - родительская команда для всех операций со входом пользователя
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Вход и выход",
	Long:  `Вход, выход и просмотр состояния сессии.`,
}

func init() {
	AuthCmd.AddCommand(LoginCmd)
	AuthCmd.AddCommand(LogoutCmd)
	AuthCmd.AddCommand(StatusCmd)
}

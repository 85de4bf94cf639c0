package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"markskeeper/cmd/client/cmd/types"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти из системы",
	Long:  `Выход удаляет сохраненную сессию и весь журнал оценок.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.Logout(cmd.Context()); err != nil {
			return fmt.Errorf("ошибка выхода: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Выход выполнен, локальные данные удалены")
		return nil
	},
}

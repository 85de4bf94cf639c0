package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"markskeeper/cmd/client/cmd/types"
)

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Состояние сессии",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		v := app.Snapshot()
		if !v.LoggedIn {
			color.New(color.FgYellow).Fprintln(out, "Не выполнен вход")
			return nil
		}

		color.New(color.FgGreen).Fprintf(out, "Вход выполнен: %s\n", v.Username)
		fmt.Fprintf(out, "Записей в журнале: %d\n", len(v.Entries))
		return nil
	},
}

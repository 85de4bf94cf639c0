package cmd

import (
	"github.com/spf13/cobra"

	"markskeeper/cmd/client/cmd/types"
	"markskeeper/internal/ui/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Интерактивный режим",
	Long: `Открывает терминальный интерфейс с экраном входа и журналом оценок.

tab/shift+tab - переход между полями, enter - вход или добавление записи,
ctrl+l - выход из учетной записи, ctrl+c - закрыть программу.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		return tui.Run(cmd.Context(), app, log)
	},
}

package marks

import (
	"github.com/spf13/cobra"
)

// MarksCmd - родительская команда для работы с журналом оценок
var MarksCmd = &cobra.Command{
	Use:   "marks",
	Short: "Журнал оценок",
	Long:  `Добавление и просмотр оценок. Требуется вход.`,
}

func init() {
	MarksCmd.AddCommand(AddCmd)
	MarksCmd.AddCommand(ListCmd)
}

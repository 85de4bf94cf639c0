package marks

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"markskeeper/cmd/client/cmd/types"
	"markskeeper/internal/domain/marks"
)

var (
	studentName  string
	subjectFlags = make(map[marks.Subject]*string, len(marks.Subjects))
)

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Добавить запись",
	Long: `Добавляет запись с оценками студента по пяти предметам.

Незаполненный предмет записывается как 0. Имя студента обязательно.`,
	Example: `  markskeeper marks add --student Bob --chemistry 90 --maths 75`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		draft := marks.NewDraft()
		for s, value := range subjectFlags {
			draft[s] = *value
		}

		entry, err := app.SubmitMarks(cmd.Context(), studentName, draft)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Добавлено: %s | %s\n", entry.StudentName, strings.Join(entry.Marks, ", "))
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVarP(&studentName, "student", "s", "", "имя студента")
	for _, s := range marks.Subjects {
		subjectFlags[s] = AddCmd.Flags().String(string(s), "", fmt.Sprintf("оценка по предмету %s", s.Title()))
	}
}

// cmd/client/cmd/marks/list.go
package marks

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"markskeeper/cmd/client/cmd/types"
	"markskeeper/internal/domain/marks"
	"markskeeper/internal/domain/session"
)

var listFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список записей",
	Long:  `Просмотр журнала, сгруппированного по студентам в порядке первого появления.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		v := app.Snapshot()
		if !v.LoggedIn {
			return session.ErrNotLoggedIn
		}

		// Выводим результат
		out := cmd.OutOrStdout()
		switch listFormat {
		case "json":
			return printGroupsJSON(out, v.Groups)
		case "table":
			return printGroupsTable(out, v.Groups)
		default:
			return printGroupsSimple(out, v.Groups)
		}
	},
}

func printGroupsSimple(w io.Writer, groups []marks.Group) error {
	if len(groups) == 0 {
		fmt.Fprintln(w, "Записи не найдены")
		return nil
	}

	for _, g := range groups {
		fmt.Fprintf(w, "%s\n", g.StudentName)
		for _, e := range g.Entries {
			fmt.Fprintf(w, "   %s\n", strings.Join(e.Marks, ", "))
		}
		fmt.Fprintln(w)
	}

	return nil
}

func printGroupsTable(w io.Writer, groups []marks.Group) error {
	if len(groups) == 0 {
		fmt.Fprintln(w, "Записи не найдены")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := []string{"Студент"}
	for _, s := range marks.Subjects {
		header = append(header, s.Title())
	}
	fmt.Fprintf(tw, "%s\t\n", strings.Join(header, "\t"))

	total := 0
	for _, g := range groups {
		for _, e := range g.Entries {
			row := []string{g.StudentName}
			for _, line := range e.Marks {
				_, value, _ := strings.Cut(line, ": ")
				row = append(row, value)
			}
			fmt.Fprintf(tw, "%s\t\n", strings.Join(row, "\t"))
			total++
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nВсего записей: %d\n", total)
	return nil
}

func printGroupsJSON(w io.Writer, groups []marks.Group) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(groups)
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "формат вывода (simple, table, json)")
}

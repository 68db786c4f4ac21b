package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nomoos/prismq-idea/ideastore"
)

// newListCommand prints stored ideas newest first.
func newListCommand() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored ideas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newCommandDeps()
			if err != nil {
				return err
			}
			defer deps.log.Sync()

			store, closeDB, err := deps.openIdeas(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			rows, err := store.List(cmd.Context(), limit, offset)
			if err != nil {
				return err
			}
			total, err := store.Count(cmd.Context())
			if err != nil {
				return err
			}

			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No ideas stored.")
				return nil
			}

			renderIdeasTable(cmd.OutOrStdout(), rows)
			fmt.Fprintf(cmd.OutOrStdout(), "Showing %d of %d ideas\n", len(rows), total)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", ideastore.DefaultListLimit, "maximum rows to show")
	cmd.Flags().IntVar(&offset, "offset", 0, "rows to skip")
	return cmd
}

// renderIdeasTable formats rows in a light table.
func renderIdeasTable(out io.Writer, rows []*ideastore.StoredIdea) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Title", "Type", "Score", "Category", "Keywords", "Created"})

	for _, row := range rows {
		t.AppendRow(table.Row{
			row.ID,
			truncate(row.Title, 48),
			row.SourceType,
			orDash(row.Score),
			orDash(row.Category),
			truncate(strings.Join(row.Keywords, ", "), 32),
			row.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	t.Render()
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func orDash[T any](p *T) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprint(*p)
}

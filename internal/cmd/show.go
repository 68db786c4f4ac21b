package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// newShowCommand prints the resolved configuration.
func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		Long: `Print the resolved working directory, the configuration file path, the
ideas database location and every stored key.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newCommandDeps()
			if err != nil {
				return err
			}
			defer deps.log.Sync()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Working directory: %s\n", deps.dir)
			fmt.Fprintf(out, "Configuration:     %s\n", deps.store.Path())
			fmt.Fprintf(out, "Ideas database:    %s\n", deps.databasePath())

			keys := deps.store.Keys()
			if len(keys) == 0 {
				fmt.Fprintln(out, `No configuration keys set. Run "prismq-idea setup" first.`)
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Key", "Value"})
			for _, key := range keys {
				value, _ := deps.store.Get(key)
				t.AppendRow(table.Row{key, value})
			}
			t.Render()
			return nil
		},
	}
}

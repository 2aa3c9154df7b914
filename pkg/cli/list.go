package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wildfunctions/exprfold/pkg/catalog"
	"github.com/wildfunctions/exprfold/pkg/pass"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog examples and registered passes",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "Examples:")
		for _, name := range catalog.Names() {
			fmt.Fprintf(w, "  %-12s %s\n", name, catalog.Get(name).Description)
		}
		fmt.Fprintln(w, "Passes:")
		for _, name := range pass.Names() {
			fmt.Fprintf(w, "  %s\n", name)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

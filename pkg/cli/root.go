package cli

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "exprfold",
	Short: "Build arithmetic expression trees and run transformation passes over them",
	Long: `exprfold builds sample arithmetic expression trees and rewrites them
with a pipeline of passes:

  copy        - rebuild the tree node by node
  fold        - collapse literal-only subtrees into a single number
  substitute  - replace bound variables with numbers`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output per pass")
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "atto",
	Short: "An interpreter for the atto expression language",
	Long: `Atto is a tiny purely-functional language written in prefix notation.
Functions are declared once at top level with ` + "``fn ... is''" + ` and a call
consumes exactly as many expressions as the callee's arity, so programs
need no parentheses at all.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is ./.atto.yaml when present)")
}

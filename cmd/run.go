package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/mumme74/atto-go/atto"
	"github.com/mumme74/atto-go/parser"
	"github.com/spf13/cobra"
)

var (
	runNoCorelib bool
	runMaxDepth  int
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run an atto script",
	Long: `Run the atto script in the given file.  The script must define a
zero-parameter main function.  When main's result is a number it becomes
the process exit status.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fatal(err)
		}

		env := atto.NewEnv()
		env.Reader = parser.NewReader()
		if cfg.MaxDepth > 0 {
			env.MaxDepth = cfg.MaxDepth
		}
		if cmd.Flags().Changed("max-depth") {
			env.MaxDepth = runMaxDepth
		}
		if cfg.CorelibEnabled() && !runNoCorelib {
			err = env.LoadCorelib()
			if err != nil {
				fatal(err)
			}
		}

		b, err := os.ReadFile(args[0])
		if err != nil {
			fatal(fmt.Errorf("error opening file: %w", err))
		}
		err = env.LoadProgram(args[0], string(b))
		if err != nil {
			fatal(err)
		}

		v, err := env.Run()
		if err != nil {
			var rerr *atto.RuntimeError
			if errors.As(err, &rerr) {
				fmt.Fprintln(os.Stderr, rerr.Trace())
				os.Exit(1)
			}
			fatal(err)
		}
		if v.Type == atto.VNumber {
			os.Exit(int(v.Num))
		}
	},
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runNoCorelib, "no-corelib", false,
		"Do not load the corelib before the script")
	runCmd.Flags().IntVar(&runMaxDepth, "max-depth", atto.DefaultMaxDepth,
		"Maximum call-frame depth before a recursion error")
}

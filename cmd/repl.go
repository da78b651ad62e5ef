package cmd

import (
	"github.com/mumme74/atto-go/repl"
	"github.com/spf13/cobra"
)

var (
	replNoCorelib bool
	replPrompt    string
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive atto session",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fatal(err)
		}
		opts := repl.Options{
			Prompt:   cfg.Prompt,
			MaxDepth: cfg.MaxDepth,
			Corelib:  cfg.CorelibEnabled() && !replNoCorelib,
		}
		if cmd.Flags().Changed("prompt") {
			opts.Prompt = replPrompt
		}
		err = repl.Run(opts)
		if err != nil {
			fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replNoCorelib, "no-corelib", false,
		"Do not load the corelib into the session")
	replCmd.Flags().StringVar(&replPrompt, "prompt", "atto> ",
		"Prompt shown before each line")
}

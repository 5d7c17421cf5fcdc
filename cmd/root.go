package cmd

import (
	"fmt"
	"os"

	"github.com/skeemlang/skeem/repl"
	"github.com/spf13/cobra"
)

var rootVerbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "skeem",
	Short: "A minimal scheme interpreter",
	Long: `skeem is a minimal scheme interpreter.  Without a subcommand an
interactive session is started.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := repl.Run(rootVerbose); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

// Execute runs the root command.  It is called once, by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false,
		"Print token lists and parsed expressions during evaluation")
}

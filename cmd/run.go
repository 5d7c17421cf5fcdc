package cmd

import (
	"fmt"
	"os"

	"github.com/skeemlang/skeem/parser"
	"github.com/skeemlang/skeem/skeem"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run scheme code",
	Long:  `Run scheme code supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		sources, err := runReadSources(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		frame := skeem.NewFrame(skeem.RootFrame())
		for _, source := range sources {
			exprs, err := parser.ParseProgram(parser.Tokenize(source))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			for _, expr := range exprs {
				val, err := skeem.Eval(expr, frame)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(1)
				}
				if runPrint {
					fmt.Println(val)
				}
			}
		}
	},
}

func runReadSources(args []string) ([]string, error) {
	sources := make([]string, len(args))
	if runExpression {
		copy(sources, args)
		return sources, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sources[i] = string(b)
	}
	return sources, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as scheme expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"mini/internal/context"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file.mini>",
	Short: "Tokenize a file and dump the token stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTokens(args[0])
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(path string) error {
	ctx := context.New(&context.Options{Debug: flagDebug, ShowTokens: true})

	file, err := ctx.AddFile(path)
	if err != nil {
		return err
	}

	ctx.Run()
	printTokens(file)

	if ctx.HasErrors() {
		ctx.EmitDiagnostics()
		os.Exit(1)
	}
	return nil
}

// Package cmd wires the frontend pipeline to the command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mini/internal/context"
	"mini/internal/frontend/ast"
)

var (
	flagDebug  bool
	flagAST    bool
	flagTokens bool
)

var rootCmd = &cobra.Command{
	Use:   "mini <file.mini>",
	Short: "Frontend for the Mini language",
	Long: `mini tokenizes and parses Mini source files, reporting every
lexical and syntax error it can find in a single run. With a clean
parse it prints the resulting syntax tree.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFile(args[0])
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable phase logging")
	rootCmd.Flags().BoolVar(&flagAST, "ast", true, "print the syntax tree after parsing")
	rootCmd.Flags().BoolVar(&flagTokens, "tokens", false, "print the token stream after lexing")
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runFile(path string) error {
	ctx := context.New(&context.Options{
		Debug:      flagDebug,
		ShowAST:    flagAST,
		ShowTokens: flagTokens,
	})

	file, err := ctx.AddFile(path)
	if err != nil {
		return err
	}

	ctx.Run()

	if ctx.Options.ShowTokens {
		printTokens(file)
	}

	if ctx.HasErrors() {
		ctx.EmitDiagnostics()
		os.Exit(1)
	}

	if ctx.Options.ShowAST && file.AST != nil {
		printer := ast.NewPrinter()
		fmt.Println(printer.Print(file.AST))
	}
	return nil
}

func printTokens(file *context.SourceFile) {
	for _, tok := range file.Tokens {
		fmt.Printf("%4d:%-3d %-18s %q\n", tok.Start.Line, tok.Start.Column, tok.Kind, tok.Lexeme)
	}
}

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mini/internal/context"
	"mini/internal/frontend/ast"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse statements interactively",
	Long: `repl reads one line of Mini source at a time, parses it, and
prints either the syntax tree or the diagnostics for that line. Each
line is parsed in isolation. Type "quit" or "exit" to leave.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runRepl()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl() {
	scanner := bufio.NewScanner(os.Stdin)
	printer := ast.NewPrinter()

	fmt.Println("mini repl - type quit to leave")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}

		evalLine(line, printer)
	}
}

// evalLine runs one input line through a fresh context so errors from
// earlier lines never leak into later ones.
func evalLine(line string, printer *ast.Printer) {
	ctx := context.New(&context.Options{Debug: flagDebug})
	file := ctx.AddSource("<repl>", line)

	ctx.Run()

	if ctx.HasErrors() {
		fmt.Print(ctx.Diagnostics.EmitAllToString(file.SourceLines()))
		return
	}
	fmt.Println(printer.Print(file.AST))
}

package context

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"mini/internal/frontend/lexer"
	"mini/internal/frontend/parser"
)

// Run drives all registered files through the frontend phases:
// tokenize first, then parse. Files are independent, so each phase
// fans out across them; the diagnostic bag is safe for concurrent use.
// Returns true if the run finished without errors.
func (ctx *CompilerContext) Run() bool {
	ctx.runLexPhase()
	ctx.runParsePhase()
	return !ctx.HasErrors()
}

func (ctx *CompilerContext) runLexPhase() {
	files := ctx.GetAllFiles()

	var wg sync.WaitGroup
	for _, file := range files {
		wg.Add(1)
		go func(f *SourceFile) {
			defer wg.Done()
			ctx.lexFile(f)
		}(file)
	}
	wg.Wait()
}

func (ctx *CompilerContext) runParsePhase() {
	files := ctx.GetAllFiles()

	var wg sync.WaitGroup
	for _, file := range files {
		wg.Add(1)
		go func(f *SourceFile) {
			defer wg.Done()
			ctx.parseFile(f)
		}(file)
	}
	wg.Wait()
}

func (ctx *CompilerContext) lexFile(file *SourceFile) {
	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "[lex] %s\n", file.Path)
	}

	tok := lexer.New(file.Path, file.Content)
	file.Tokens = tok.Tokenize()

	// Lexical errors are recoverable: the token stream is still
	// complete and the parser runs over it regardless.
	for _, diag := range tok.Errors {
		ctx.Diagnostics.Add(diag)
	}
}

func (ctx *CompilerContext) parseFile(file *SourceFile) {
	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "[parse] %s\n", file.Path)
	}

	file.AST = parser.Parse(file.Tokens, file.Path, ctx.Diagnostics)
}

// SourceLines splits a registered file's content for diagnostic
// rendering of in-memory sources.
func (file *SourceFile) SourceLines() []string {
	return strings.Split(file.Content, "\n")
}

// Package context provides the shared state for a frontend run.
//
// All phases are stateless workers that receive a CompilerContext and
// operate on SourceFile slots within it: the tokenizer fills Tokens,
// the parser fills AST, and every phase reports problems to the shared
// diagnostic bag instead of keeping its own error list.
package context

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"mini/internal/diagnostics"
	"mini/internal/frontend/ast"
	"mini/internal/frontend/lexer"
)

// Options holds configuration for a run. Immutable after creation.
type Options struct {
	Debug      bool // Enable phase logging
	ShowAST    bool // Print the tree after a clean parse
	ShowTokens bool // Print the token stream after lexing
}

// SourceFile carries one source text through the pipeline.
type SourceFile struct {
	Path    string // File path, or a synthetic name for in-memory input
	Content string // Raw source text

	Tokens []lexer.Token
	AST    *ast.Program
}

// CompilerContext is the central hub for all per-run state.
type CompilerContext struct {
	// Diagnostics - centralized error collection across all phases
	Diagnostics *diagnostics.Bag

	// Files maps path -> SourceFile; FileOrder preserves registration
	// order for deterministic processing
	Files     map[string]*SourceFile
	FileOrder []string

	Options *Options

	mu sync.RWMutex
}

// New creates a fresh context for a single run.
func New(options *Options) *CompilerContext {
	if options == nil {
		options = &Options{}
	}
	return &CompilerContext{
		Diagnostics: diagnostics.NewBag(""),
		Files:       make(map[string]*SourceFile),
		FileOrder:   make([]string, 0),
		Options:     options,
	}
}

// AddFile reads a file from disk and registers it.
func (ctx *CompilerContext) AddFile(path string) (*SourceFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	absPath, _ := filepath.Abs(path)
	return ctx.AddSource(absPath, string(content)), nil
}

// AddSource registers source text that never existed on disk, such as
// a REPL line. path is the name diagnostics will cite.
func (ctx *CompilerContext) AddSource(path, content string) *SourceFile {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	file := &SourceFile{
		Path:    path,
		Content: content,
	}

	ctx.Files[path] = file
	ctx.FileOrder = append(ctx.FileOrder, path)

	return file
}

// GetFile retrieves a source file by path, or nil if unregistered.
func (ctx *CompilerContext) GetFile(path string) *SourceFile {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	return ctx.Files[path]
}

// GetAllFiles returns all registered files in registration order.
func (ctx *CompilerContext) GetAllFiles() []*SourceFile {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()

	files := make([]*SourceFile, 0, len(ctx.FileOrder))
	for _, path := range ctx.FileOrder {
		files = append(files, ctx.Files[path])
	}
	return files
}

// HasErrors returns true if any phase reported an error.
func (ctx *CompilerContext) HasErrors() bool {
	return ctx.Diagnostics.HasErrors()
}

// EmitDiagnostics renders all collected diagnostics to stderr.
func (ctx *CompilerContext) EmitDiagnostics() {
	ctx.Diagnostics.EmitAll()
}

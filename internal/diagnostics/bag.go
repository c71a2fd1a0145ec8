package diagnostics

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
)

// Bag collects diagnostics during a frontend run. All phases report
// here instead of keeping their own error lists, and the insertion
// order is the report order.
type Bag struct {
	diagnostics []*Diagnostic
	filepath    string
	mu          sync.Mutex
	errorCount  int
	fatalCount  int
	warnCount   int
}

// NewBag creates a new diagnostic bag for a file
func NewBag(filepath string) *Bag {
	return &Bag{
		diagnostics: make([]*Diagnostic, 0),
		filepath:    filepath,
	}
}

// Add adds a diagnostic to the bag
func (b *Bag) Add(diag *Diagnostic) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.diagnostics = append(b.diagnostics, diag)

	// If this is the first diagnostic with a filepath, use it as the bag's filepath
	if b.filepath == "" && diag.FilePath != "" {
		b.filepath = diag.FilePath
	}

	switch diag.Severity {
	case Fatal:
		b.fatalCount++
		b.errorCount++
	case Error:
		b.errorCount++
	case Warning:
		b.warnCount++
	}
}

// HasErrors returns true if there are any errors (fatal included)
func (b *Bag) HasErrors() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errorCount > 0
}

// HasFatal reports whether parsing was aborted by the stall check.
func (b *Bag) HasFatal() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.fatalCount > 0
}

// ErrorCount returns the number of errors
func (b *Bag) ErrorCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errorCount
}

// WarningCount returns the number of warnings
func (b *Bag) WarningCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.warnCount
}

// Diagnostics returns all diagnostics in report order
func (b *Bag) Diagnostics() []*Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.diagnostics
}

// EmitAll renders every diagnostic to stderr
func (b *Bag) EmitAll() {
	b.EmitAllToWriter(os.Stderr)
}

// EmitAllToWriter renders every diagnostic to a specific writer
func (b *Bag) EmitAllToWriter(w io.Writer) {
	b.emit(w, nil)
}

// EmitAllToString renders every diagnostic to a string, using the
// provided source lines instead of reading files from disk. Used by the
// REPL, where the "file" never exists on disk.
func (b *Bag) EmitAllToString(sourceLines []string) string {
	var buf bytes.Buffer
	b.emit(&buf, sourceLines)
	return buf.String()
}

func (b *Bag) emit(w io.Writer, sourceLines []string) {
	emitter := NewEmitter(w)

	b.mu.Lock()
	diagnostics := make([]*Diagnostic, len(b.diagnostics))
	copy(diagnostics, b.diagnostics)
	filepath := b.filepath
	errorCount := b.errorCount
	warnCount := b.warnCount
	b.mu.Unlock()

	if sourceLines != nil {
		emitter.SetSourceLines(filepath, sourceLines)
	}

	for _, diag := range diagnostics {
		emitter.Emit(filepath, diag)
	}

	if errorCount > 0 {
		fmt.Fprintf(w, "\nanalysis failed with %d error(s)", errorCount)
		if warnCount > 0 {
			fmt.Fprintf(w, " and %d warning(s)", warnCount)
		}
		fmt.Fprintln(w)
	} else if warnCount > 0 {
		fmt.Fprintf(w, "\nanalysis succeeded with %d warning(s)\n", warnCount)
	}
}

// Clear removes all diagnostics
func (b *Bag) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.diagnostics = make([]*Diagnostic, 0)
	b.errorCount = 0
	b.fatalCount = 0
	b.warnCount = 0
}

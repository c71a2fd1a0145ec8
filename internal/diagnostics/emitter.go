package diagnostics

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// SourceCache caches source file contents for error reporting
type SourceCache struct {
	files map[string][]string
}

func NewSourceCache() *SourceCache {
	return &SourceCache{
		files: make(map[string][]string),
	}
}

// SetLines pre-populates the cache for a path, bypassing the filesystem.
func (sc *SourceCache) SetLines(filepath string, lines []string) {
	sc.files[filepath] = lines
}

// GetLine retrieves a specific line from a source file
func (sc *SourceCache) GetLine(filepath string, line int) (string, error) {
	if lines, ok := sc.files[filepath]; ok {
		if line > 0 && line <= len(lines) {
			return lines[line-1], nil
		}
		return "", fmt.Errorf("line %d out of range", line)
	}

	// Load file
	file, err := os.Open(filepath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	lines := make([]string, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	sc.files[filepath] = lines

	if line > 0 && line <= len(lines) {
		return lines[line-1], nil
	}

	return "", fmt.Errorf("line %d out of range", line)
}

// Emitter renders diagnostics in a Rust-style format: a severity header,
// a --> file:line:col pointer, the offending source line with a caret
// underline, then notes and help.
type Emitter struct {
	out   io.Writer
	cache *SourceCache
}

func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{
		out:   w,
		cache: NewSourceCache(),
	}
}

// SetSourceLines primes the source cache for a path. Needed when the
// diagnosed text never existed on disk (REPL input).
func (e *Emitter) SetSourceLines(filepath string, lines []string) {
	e.cache.SetLines(filepath, lines)
}

// Emit renders a single diagnostic
func (e *Emitter) Emit(filepath string, diag *Diagnostic) {
	if diag.FilePath != "" {
		filepath = diag.FilePath
	}

	e.printHeader(diag)

	for _, label := range diag.Labels {
		e.printLabel(filepath, label, diag.Severity)
	}

	for _, note := range diag.Notes {
		e.printNote(note)
	}

	if diag.Help != "" {
		e.printHelp(diag.Help)
	}

	fmt.Fprintln(e.out)
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	style := severityStyle(diag.Severity)

	header := diag.Severity.String()
	if diag.Code != "" {
		header += "[" + diag.Code + "]"
	}
	fmt.Fprintf(e.out, "%s: %s\n", style.Render(header), style.Render(diag.Message))
}

func (e *Emitter) printLabel(filepath string, label Label, severity Severity) {
	if label.Location == nil || label.Location.Start == nil {
		return
	}

	start := label.Location.Start
	end := label.Location.End
	if end == nil {
		end = start
	}

	fmt.Fprintf(e.out, "  %s %s\n", locationStyle.Render("-->"),
		locationStyle.Render(fmt.Sprintf("%s:%d:%d", filepath, start.Line, start.Column)))

	sourceLine, err := e.cache.GetLine(filepath, start.Line)
	if err != nil {
		// No source window available; the header already carries the position.
		return
	}

	lineNumWidth := len(fmt.Sprintf("%d", start.Line))

	fmt.Fprintf(e.out, "%s\n", gutterStyle.Render(strings.Repeat(" ", lineNumWidth)+" |"))
	fmt.Fprintf(e.out, "%s %s\n",
		gutterStyle.Render(fmt.Sprintf("%*d |", lineNumWidth, start.Line)), sourceLine)

	// Underline
	padding := start.Column - 1
	if padding < 0 {
		padding = 0
	}
	length := 1
	if end.Line == start.Line && end.Column > start.Column {
		length = end.Column - start.Column
	}

	var underline string
	if label.Style == Primary {
		ch := "^"
		if length > 1 {
			ch = "~"
		}
		underline = underlineStyle(severity).Render(strings.Repeat(ch, length))
		if label.Message != "" {
			underline += " " + underlineStyle(severity).Render(label.Message)
		}
	} else {
		underline = secondaryStyle.Render(strings.Repeat("-", length))
		if label.Message != "" {
			underline += " " + secondaryStyle.Render(label.Message)
		}
	}

	fmt.Fprintf(e.out, "%s %s%s\n",
		gutterStyle.Render(strings.Repeat(" ", lineNumWidth)+" |"),
		strings.Repeat(" ", padding), underline)
}

func (e *Emitter) printNote(note Note) {
	fmt.Fprintf(e.out, "  %s %s\n", infoStyle.Render("note:"), note.Message)
}

func (e *Emitter) printHelp(help string) {
	fmt.Fprintf(e.out, "  %s %s\n", hintStyle.Render("help:"), help)
}

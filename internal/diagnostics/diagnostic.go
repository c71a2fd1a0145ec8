package diagnostics

import (
	"mini/internal/source"
)

// Severity represents the severity level of a diagnostic
type Severity int

const (
	// Fatal marks an unrecoverable condition: the parser detected that
	// error recovery stopped advancing the cursor and aborted the
	// enclosing statement sequence. Callers distinguish it from
	// ordinary errors via Bag.HasFatal.
	Fatal Severity = iota
	Error
	Warning
	Info
	Hint
)

func (s Severity) String() string {
	switch s {
	case Fatal:
		return "fatal"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Hint:
		return "hint"
	default:
		return "unknown"
	}
}

// Label represents a labeled section of code in a diagnostic
type Label struct {
	Location *source.Location
	Message  string
	Style    LabelStyle
}

type LabelStyle int

const (
	Primary   LabelStyle = iota // The main error location (uses ^^^)
	Secondary                   // Additional context (uses ---)
)

// Note represents additional information attached to a diagnostic
type Note struct {
	Message string
}

// Diagnostic represents a single reported problem (lexical, syntactic
// or fatal), positioned through its labels.
type Diagnostic struct {
	Severity Severity
	Message  string
	Code     string // Error code like "L0001"
	FilePath string // Source file for this diagnostic
	Labels   []Label
	Notes    []Note
	Help     string // Suggestion for fixing the error
}

// NewError creates a new error diagnostic
func NewError(message string) *Diagnostic {
	return &Diagnostic{
		Severity: Error,
		Message:  message,
		Labels:   make([]Label, 0),
		Notes:    make([]Note, 0),
	}
}

// NewFatal creates a new fatal diagnostic
func NewFatal(message string) *Diagnostic {
	return &Diagnostic{
		Severity: Fatal,
		Message:  message,
		Labels:   make([]Label, 0),
		Notes:    make([]Note, 0),
	}
}

// NewWarning creates a new warning diagnostic
func NewWarning(message string) *Diagnostic {
	return &Diagnostic{
		Severity: Warning,
		Message:  message,
		Labels:   make([]Label, 0),
		Notes:    make([]Note, 0),
	}
}

// Line returns the line of the primary label, or 0 when unpositioned.
func (d *Diagnostic) Line() int {
	for _, label := range d.Labels {
		if label.Style == Primary && label.Location != nil && label.Location.Start != nil {
			return label.Location.Start.Line
		}
	}
	return 0
}

// Column returns the column of the primary label, or 0 when unpositioned.
func (d *Diagnostic) Column() int {
	for _, label := range d.Labels {
		if label.Style == Primary && label.Location != nil && label.Location.Start != nil {
			return label.Location.Start.Column
		}
	}
	return 0
}

// WithCode sets the error code
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

// WithLabel adds a labeled location to the diagnostic
func (d *Diagnostic) WithLabel(filepath string, loc *source.Location, message string, style LabelStyle) *Diagnostic {
	if d.FilePath == "" {
		d.FilePath = filepath
	}
	d.Labels = append(d.Labels, Label{
		Location: loc,
		Message:  message,
		Style:    style,
	})
	return d
}

// WithPrimaryLabel adds a primary labeled location
func (d *Diagnostic) WithPrimaryLabel(filepath string, loc *source.Location, message string) *Diagnostic {
	return d.WithLabel(filepath, loc, message, Primary)
}

// WithSecondaryLabel adds a secondary labeled location
func (d *Diagnostic) WithSecondaryLabel(filepath string, loc *source.Location, message string) *Diagnostic {
	return d.WithLabel(filepath, loc, message, Secondary)
}

// WithNote adds a note to the diagnostic
func (d *Diagnostic) WithNote(message string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Message: message})
	return d
}

// WithHelp sets helpful suggestion for fixing the error
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}

// Package source provides position types shared by the lexer, parser,
// AST and diagnostics. A Position is a 1-based line/column pair; a
// Location spans from the first character of a construct to one past
// its last character.
package source

import "fmt"

// Position is a single point in a source file.
// Line and Column both start at 1.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Location is a half-open span between two positions.
type Location struct {
	Start *Position
	End   *Position
}

// NewLocation builds a Location from copies of the given positions, so
// callers can keep mutating their cursors after handing them in.
func NewLocation(start, end *Position) *Location {
	var s, e *Position
	if start != nil {
		cp := *start
		s = &cp
	}
	if end != nil {
		cp := *end
		e = &cp
	}
	return &Location{Start: s, End: e}
}

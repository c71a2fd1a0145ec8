package diagnostics

import (
	"fmt"

	"mini/internal/source"
)

// Common diagnostic builders for the lexer

// IllegalCharacter creates a diagnostic for a character no lexical rule matches
func IllegalCharacter(filepath string, loc *source.Location, char rune) *Diagnostic {
	return NewError(fmt.Sprintf("illegal character %q", char)).
		WithCode(ErrIllegalCharacter).
		WithPrimaryLabel(filepath, loc, "this character is not part of the language").
		WithHelp("remove this character or check if it's a typo")
}

// UnterminatedString creates a diagnostic for an unterminated string literal
func UnterminatedString(filepath string, loc *source.Location) *Diagnostic {
	return NewError("unterminated string literal").
		WithCode(ErrUnterminatedString).
		WithPrimaryLabel(filepath, loc, "string starts here").
		WithHelp("add a closing quote (\") to terminate the string")
}

// InvalidNumberLiteral creates a diagnostic for a malformed numeral
func InvalidNumberLiteral(filepath string, loc *source.Location, reason string) *Diagnostic {
	return NewError("malformed number literal").
		WithCode(ErrInvalidNumber).
		WithPrimaryLabel(filepath, loc, reason).
		WithHelp("a fractional part needs at least one digit after the '.'")
}

// Common diagnostic builders for the parser

// UnexpectedToken creates a diagnostic for an unexpected token
func UnexpectedToken(filepath string, loc *source.Location, expected, found string) *Diagnostic {
	return NewError("expected " + expected + ", found " + found).
		WithCode(ErrUnexpectedToken).
		WithPrimaryLabel(filepath, loc, "expected "+expected+" here")
}

// ExpectedToken creates a diagnostic for a missing required token
func ExpectedToken(filepath string, loc *source.Location, expected, found string) *Diagnostic {
	return NewError("expected " + expected + ", found " + found).
		WithCode(ErrExpectedToken).
		WithPrimaryLabel(filepath, loc, "expected "+expected+" before this")
}

// MissingIdentifier creates a diagnostic for a missing identifier
func MissingIdentifier(filepath string, loc *source.Location, found string) *Diagnostic {
	return NewError("expected identifier, found " + found).
		WithCode(ErrMissingIdentifier).
		WithPrimaryLabel(filepath, loc, "expected a name here")
}

// ParserStalled creates the fatal diagnostic raised when error recovery
// fails to advance the cursor. It terminates the enclosing statement
// sequence; see the parser's stall check.
func ParserStalled(filepath string, loc *source.Location, found string) *Diagnostic {
	return NewFatal("cannot make progress at " + found).
		WithCode(ErrParserStalled).
		WithPrimaryLabel(filepath, loc, "parsing stopped here").
		WithNote("error recovery found no statement boundary to resume from")
}

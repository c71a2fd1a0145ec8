package lexer

import (
	"mini/internal/diagnostics"
	"mini/internal/source"
)

// ============================================================================
// TOKENIZER - Source Text to Token Conversion
// ============================================================================
//
// The Tokenizer scans raw source text into a flat token sequence. It
// never aborts: every lexical error is recorded on Errors and scanning
// resumes at the next character, so a single pass reports every defect.
// The output always ends with exactly one EOF token.

// Tokenizer holds the scanning state for a single source text.
type Tokenizer struct {
	filepath string
	source   string
	pos      int
	line     int
	column   int
	tokens   []Token

	// Errors collects lexical diagnostics in source order
	Errors []*diagnostics.Diagnostic
}

// New creates a tokenizer for the given source text
func New(filepath, src string) *Tokenizer {
	return &Tokenizer{
		filepath: filepath,
		source:   src,
		line:     1,
		column:   1,
		tokens:   make([]Token, 0),
		Errors:   make([]*diagnostics.Diagnostic, 0),
	}
}

// Tokenize scans the whole source text and returns the token sequence.
func (t *Tokenizer) Tokenize() []Token {
	for t.pos < len(t.source) {
		t.skipWhitespace()

		if t.pos >= len(t.source) {
			break
		}

		if t.skipComment() {
			continue
		}

		ch := t.peek()
		switch {
		case isDigit(ch):
			t.readNumber()
		case isAlpha(ch):
			t.readIdentifier()
		case ch == '"':
			t.readString()
		default:
			t.readOperator()
		}
	}

	eofPos := t.position()
	t.tokens = append(t.tokens, Token{Kind: EOF_TOKEN, Start: eofPos, End: eofPos})
	return t.tokens
}

// position returns the cursor's current source position
func (t *Tokenizer) position() source.Position {
	return source.Position{Line: t.line, Column: t.column}
}

// peek looks at the current character without consuming it.
// Returns 0 at end of input.
func (t *Tokenizer) peek() byte {
	return t.peekAt(0)
}

// peekAt looks offset characters ahead without consuming anything
func (t *Tokenizer) peekAt(offset int) byte {
	pos := t.pos + offset
	if pos < len(t.source) {
		return t.source[pos]
	}
	return 0
}

// advance consumes the current character, updating line/column counters
func (t *Tokenizer) advance() byte {
	ch := t.peek()
	t.pos++
	if ch == '\n' {
		t.line++
		t.column = 1
	} else {
		t.column++
	}
	return ch
}

func (t *Tokenizer) skipWhitespace() {
	for {
		switch t.peek() {
		case ' ', '\t', '\r', '\n', '\v', '\f':
			t.advance()
		default:
			return
		}
	}
}

// skipComment consumes a // comment up to (not including) the newline.
// Reports whether a comment was skipped.
func (t *Tokenizer) skipComment() bool {
	if t.peek() != '/' || t.peekAt(1) != '/' {
		return false
	}
	for t.peek() != '\n' && t.pos < len(t.source) {
		t.advance()
	}
	return true
}

// emit appends a token spanning from start to the current cursor
func (t *Tokenizer) emit(kind TOKEN, lexeme, value string, start source.Position) {
	t.tokens = append(t.tokens, Token{
		Kind:   kind,
		Lexeme: lexeme,
		Value:  value,
		Start:  start,
		End:    t.position(),
	})
}

// readNumber scans an integer literal, promoting it to a float when a
// '.' followed by at least one digit appears. A trailing '.' with no
// digits is consumed and reported as a malformed numeral.
func (t *Tokenizer) readNumber() {
	start := t.position()
	from := t.pos

	for isDigit(t.peek()) {
		t.advance()
	}

	if t.peek() == '.' {
		if isDigit(t.peekAt(1)) {
			t.advance() // '.'
			for isDigit(t.peek()) {
				t.advance()
			}
			lexeme := t.source[from:t.pos]
			t.emit(FLOAT_TOKEN, lexeme, lexeme, start)
			return
		}

		// Trailing dot: consume it so scanning continues past the
		// defect, report, and fall back to the integer part.
		t.advance()
		end := t.position()
		t.Errors = append(t.Errors, diagnostics.InvalidNumberLiteral(
			t.filepath, source.NewLocation(&start, &end), "no digits after the decimal point"))
		t.emit(INT_TOKEN, t.source[from:t.pos], t.source[from:t.pos-1], start)
		return
	}

	lexeme := t.source[from:t.pos]
	t.emit(INT_TOKEN, lexeme, lexeme, start)
}

// readIdentifier scans a maximal identifier, then checks the keyword table
func (t *Tokenizer) readIdentifier() {
	start := t.position()
	from := t.pos

	for isAlnum(t.peek()) {
		t.advance()
	}

	lexeme := t.source[from:t.pos]
	kind := IDENTIFIER_TOKEN
	if kw, ok := keywords[lexeme]; ok {
		kind = kw
	}
	t.emit(kind, lexeme, lexeme, start)
}

// readString scans a double-quoted string literal, resolving backslash
// escapes into the token's Value. An unterminated string is reported at
// the opening quote.
func (t *Tokenizer) readString() {
	start := t.position()
	from := t.pos
	t.advance() // opening quote

	var value []byte
	for t.peek() != '"' && t.pos < len(t.source) {
		if t.peek() == '\\' {
			t.advance()
			escape := t.advance()
			switch escape {
			case 'n':
				value = append(value, '\n')
			case 't':
				value = append(value, '\t')
			case '\\':
				value = append(value, '\\')
			case '"':
				value = append(value, '"')
			default:
				value = append(value, escape)
			}
			continue
		}
		value = append(value, t.advance())
	}

	if t.pos >= len(t.source) {
		// Reported at the opening quote, not at end of input.
		end := start
		end.Column++
		t.Errors = append(t.Errors, diagnostics.UnterminatedString(
			t.filepath, source.NewLocation(&start, &end)))
		return
	}

	t.advance() // closing quote
	t.emit(STRING_TOKEN, t.source[from:t.pos], string(value), start)
}

// readOperator scans operators and punctuation, preferring the longest
// match: each two-character form is attempted before its one-character
// prefix. A character matching nothing is an illegal-character error;
// the cursor still advances so scanning never gets stuck.
func (t *Tokenizer) readOperator() {
	start := t.position()
	ch := t.peek()
	next := t.peekAt(1)

	two := func(kind TOKEN) {
		t.advance()
		t.advance()
		t.emit(kind, t.source[t.pos-2:t.pos], t.source[t.pos-2:t.pos], start)
	}
	one := func(kind TOKEN) {
		t.advance()
		t.emit(kind, t.source[t.pos-1:t.pos], t.source[t.pos-1:t.pos], start)
	}

	switch {
	case ch == '=' && next == '=':
		two(DOUBLE_EQUAL_TOKEN)
	case ch == '!' && next == '=':
		two(NOT_EQUAL_TOKEN)
	case ch == '<' && next == '=':
		two(LESS_EQUAL_TOKEN)
	case ch == '>' && next == '=':
		two(GREATER_EQUAL_TOKEN)
	case ch == '&' && next == '&':
		two(AND_OP_TOKEN)
	case ch == '|' && next == '|':
		two(OR_OP_TOKEN)
	case ch == '+':
		one(PLUS_TOKEN)
	case ch == '-':
		one(MINUS_TOKEN)
	case ch == '*':
		one(MUL_TOKEN)
	case ch == '/':
		one(DIV_TOKEN)
	case ch == '=':
		one(EQUALS_TOKEN)
	case ch == '<':
		one(LESS_TOKEN)
	case ch == '>':
		one(GREATER_TOKEN)
	case ch == '!':
		one(NOT_OP_TOKEN)
	case ch == '(':
		one(OPEN_PAREN)
	case ch == ')':
		one(CLOSE_PAREN)
	case ch == ';':
		one(SEMICOLON_TOKEN)
	case ch == ',':
		one(COMMA_TOKEN)
	default:
		t.advance()
		end := t.position()
		t.Errors = append(t.Errors, diagnostics.IllegalCharacter(
			t.filepath, source.NewLocation(&start, &end), rune(ch)))
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isAlnum(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}

package lexer

import "mini/internal/source"

// TOKEN identifies the lexical category of a token.
type TOKEN int

const (
	// Keywords
	IF_TOKEN TOKEN = iota
	THEN_TOKEN
	ELSE_TOKEN
	END_TOKEN
	WHILE_TOKEN
	DO_TOKEN
	BEGIN_TOKEN
	INT_TYPE_TOKEN
	FLOAT_TYPE_TOKEN
	BOOL_TYPE_TOKEN
	STRING_TYPE_TOKEN
	AND_TOKEN
	OR_TOKEN
	NOT_TOKEN
	TRUE_TOKEN
	FALSE_TOKEN

	// Identifiers and literals
	IDENTIFIER_TOKEN
	INT_TOKEN
	FLOAT_TOKEN
	STRING_TOKEN

	// Operators
	PLUS_TOKEN
	MINUS_TOKEN
	MUL_TOKEN
	DIV_TOKEN
	EQUALS_TOKEN       // =
	DOUBLE_EQUAL_TOKEN // ==
	NOT_EQUAL_TOKEN    // !=
	LESS_TOKEN
	LESS_EQUAL_TOKEN
	GREATER_TOKEN
	GREATER_EQUAL_TOKEN
	AND_OP_TOKEN // &&
	OR_OP_TOKEN  // ||
	NOT_OP_TOKEN // !

	// Punctuation
	OPEN_PAREN
	CLOSE_PAREN
	SEMICOLON_TOKEN
	COMMA_TOKEN

	EOF_TOKEN
)

var tokenNames = map[TOKEN]string{
	IF_TOKEN:            "if",
	THEN_TOKEN:          "then",
	ELSE_TOKEN:          "else",
	END_TOKEN:           "end",
	WHILE_TOKEN:         "while",
	DO_TOKEN:            "do",
	BEGIN_TOKEN:         "begin",
	INT_TYPE_TOKEN:      "int",
	FLOAT_TYPE_TOKEN:    "float",
	BOOL_TYPE_TOKEN:     "bool",
	STRING_TYPE_TOKEN:   "string",
	AND_TOKEN:           "and",
	OR_TOKEN:            "or",
	NOT_TOKEN:           "not",
	TRUE_TOKEN:          "true",
	FALSE_TOKEN:         "false",
	IDENTIFIER_TOKEN:    "identifier",
	INT_TOKEN:           "integer literal",
	FLOAT_TOKEN:         "float literal",
	STRING_TOKEN:        "string literal",
	PLUS_TOKEN:          "'+'",
	MINUS_TOKEN:         "'-'",
	MUL_TOKEN:           "'*'",
	DIV_TOKEN:           "'/'",
	EQUALS_TOKEN:        "'='",
	DOUBLE_EQUAL_TOKEN:  "'=='",
	NOT_EQUAL_TOKEN:     "'!='",
	LESS_TOKEN:          "'<'",
	LESS_EQUAL_TOKEN:    "'<='",
	GREATER_TOKEN:       "'>'",
	GREATER_EQUAL_TOKEN: "'>='",
	AND_OP_TOKEN:        "'&&'",
	OR_OP_TOKEN:         "'||'",
	NOT_OP_TOKEN:        "'!'",
	OPEN_PAREN:          "'('",
	CLOSE_PAREN:         "')'",
	SEMICOLON_TOKEN:     "';'",
	COMMA_TOKEN:         "','",
	EOF_TOKEN:           "end of input",
}

func (k TOKEN) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown token"
}

// keywords maps reserved words to their token kinds. The tokenizer scans
// a maximal identifier first and then consults this table, so keywords
// always win over the generic identifier category. Matching is
// case-sensitive: "If" is an identifier, "if" is not.
var keywords = map[string]TOKEN{
	"if":     IF_TOKEN,
	"then":   THEN_TOKEN,
	"else":   ELSE_TOKEN,
	"end":    END_TOKEN,
	"while":  WHILE_TOKEN,
	"do":     DO_TOKEN,
	"begin":  BEGIN_TOKEN,
	"int":    INT_TYPE_TOKEN,
	"float":  FLOAT_TYPE_TOKEN,
	"bool":   BOOL_TYPE_TOKEN,
	"string": STRING_TYPE_TOKEN,
	"and":    AND_TOKEN,
	"or":     OR_TOKEN,
	"not":    NOT_TOKEN,
	"true":   TRUE_TOKEN,
	"false":  FALSE_TOKEN,
}

// Token is a single lexical unit. Lexeme is the exact source text;
// Value is the cooked form (escapes resolved for strings, identical to
// Lexeme everywhere else). Tokens are produced once by the tokenizer
// and treated as read-only afterwards.
type Token struct {
	Kind   TOKEN
	Lexeme string
	Value  string
	Start  source.Position
	End    source.Position
}

// IsTypeKeyword reports whether the token starts a declaration.
func (t Token) IsTypeKeyword() bool {
	switch t.Kind {
	case INT_TYPE_TOKEN, FLOAT_TYPE_TOKEN, BOOL_TYPE_TOKEN, STRING_TYPE_TOKEN:
		return true
	}
	return false
}

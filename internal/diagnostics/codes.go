package diagnostics

// Error codes. L-codes are lexical, P-codes syntactic.
const (
	ErrIllegalCharacter   = "L0001"
	ErrUnterminatedString = "L0002"
	ErrInvalidNumber      = "L0003"

	ErrUnexpectedToken   = "P0001"
	ErrExpectedToken     = "P0002"
	ErrMissingIdentifier = "P0003"
	ErrParserStalled     = "P0004"
)

package literal

import "errors"

// Sentinel errors
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnterminatedString  = errors.New("unterminated string literal")
	ErrInvalidNumber       = errors.New("invalid number format")
)

// TokenType represents the type of a token
type TokenType int

const (
	EOF TokenType = iota
	WHITESPACE
	WORD           // NA, TRUE, NULL, bare names
	QUOTE          // "text", 'text'
	NUMBER         // 1, 2.5, 1e3
	OPENED_BRACKET // [
	CLOSED_BRACKET // ]
	OPENED_BRACE   // {
	CLOSED_BRACE   // }
	COMMA          // ,
	EQUAL          // =
	MINUS          // -
	PLUS           // +
)

var tokenTypeNames = map[TokenType]string{
	EOF:            "EOF",
	WHITESPACE:     "WHITESPACE",
	WORD:           "WORD",
	QUOTE:          "QUOTE",
	NUMBER:         "NUMBER",
	OPENED_BRACKET: "OPENED_BRACKET",
	CLOSED_BRACKET: "CLOSED_BRACKET",
	OPENED_BRACE:   "OPENED_BRACE",
	CLOSED_BRACE:   "CLOSED_BRACE",
	COMMA:          "COMMA",
	EQUAL:          "EQUAL",
	MINUS:          "MINUS",
	PLUS:           "PLUS",
}

// String returns the string representation of TokenType
func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}

	return "UNKNOWN"
}

// Position represents the location of a token in the source. Offset is the
// rune index (0-based), Line/Column are 1-based.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Token represents a lexical token
type Token struct {
	Type     TokenType
	Value    string
	Position Position
}

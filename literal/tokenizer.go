package literal

import (
	"fmt"
	"iter"
	"strings"
	"unicode"
)

// TokenIterator yields tokens up to and including EOF.
type TokenIterator iter.Seq2[Token, error]

// Tokenizer splits a subscript literal into tokens.
type Tokenizer struct {
	input          string
	skipWhitespace bool
}

// NewTokenizer creates a tokenizer. Whitespace tokens are dropped when
// skipWhitespace is set.
func NewTokenizer(input string, skipWhitespace bool) *Tokenizer {
	return &Tokenizer{input: input, skipWhitespace: skipWhitespace}
}

// Tokens returns an iterator of tokens
func (t *Tokenizer) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		lx := &lexer{
			src:    []rune(t.input),
			line:   1,
			column: 1,
		}

		for {
			token, err := lx.nextToken()
			if err != nil {
				yield(Token{}, err)
				return
			}

			if token.Type == EOF {
				yield(token, nil)
				return
			}

			if t.skipWhitespace && token.Type == WHITESPACE {
				continue
			}

			if !yield(token, nil) {
				return
			}
		}
	}
}

// AllTokens collects every token into a slice, stopping at the first error.
func (t *Tokenizer) AllTokens() ([]Token, error) {
	tokens := make([]Token, 0, 16)

	for token, err := range t.Tokens() {
		if err != nil {
			return tokens, err
		}

		tokens = append(tokens, token)
	}

	return tokens, nil
}

type lexer struct {
	src    []rune
	pos    int
	line   int
	column int
}

func (l *lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}

	return l.src[l.pos]
}

func (l *lexer) peekAt(offset int) rune {
	if l.pos+offset >= len(l.src) {
		return 0
	}

	return l.src[l.pos+offset]
}

func (l *lexer) advance() rune {
	r := l.src[l.pos]
	l.pos++

	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}

	return r
}

func (l *lexer) position() Position {
	return Position{Offset: l.pos, Line: l.line, Column: l.column}
}

func (l *lexer) nextToken() (Token, error) {
	if l.pos >= len(l.src) {
		return Token{Type: EOF, Position: l.position()}, nil
	}

	start := l.position()
	r := l.peek()

	single := map[rune]TokenType{
		'[': OPENED_BRACKET,
		']': CLOSED_BRACKET,
		'{': OPENED_BRACE,
		'}': CLOSED_BRACE,
		',': COMMA,
		'=': EQUAL,
		'-': MINUS,
		'+': PLUS,
	}

	switch {
	case unicode.IsSpace(r):
		var sb strings.Builder
		for unicode.IsSpace(l.peek()) {
			sb.WriteRune(l.advance())
		}

		return Token{Type: WHITESPACE, Value: sb.String(), Position: start}, nil
	case r == '"' || r == '\'':
		return l.readQuoted(start)
	case unicode.IsDigit(r) || (r == '.' && unicode.IsDigit(l.peekAt(1))):
		return l.readNumber(start)
	case isWordStart(r):
		var sb strings.Builder
		for isWordPart(l.peek()) {
			sb.WriteRune(l.advance())
		}

		return Token{Type: WORD, Value: sb.String(), Position: start}, nil
	}

	if tt, ok := single[r]; ok {
		l.advance()
		return Token{Type: tt, Value: string(r), Position: start}, nil
	}

	return Token{}, fmt.Errorf("%w '%c' at line %d, column %d", ErrUnexpectedCharacter, r, start.Line, start.Column)
}

func (l *lexer) readQuoted(start Position) (Token, error) {
	quote := l.advance()

	var sb strings.Builder

	for {
		if l.pos >= len(l.src) {
			return Token{}, fmt.Errorf("%w at line %d, column %d", ErrUnterminatedString, start.Line, start.Column)
		}

		r := l.advance()
		if r == quote {
			return Token{Type: QUOTE, Value: sb.String(), Position: start}, nil
		}

		if r == '\\' {
			if l.pos >= len(l.src) {
				return Token{}, fmt.Errorf("%w at line %d, column %d", ErrUnterminatedString, start.Line, start.Column)
			}

			switch esc := l.advance(); esc {
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			default:
				sb.WriteRune(esc)
			}

			continue
		}

		sb.WriteRune(r)
	}
}

// readNumber accepts digits with an optional fraction and exponent. The
// raw text is kept so the parser can decide the vector kind from it.
func (l *lexer) readNumber(start Position) (Token, error) {
	var sb strings.Builder

	for unicode.IsDigit(l.peek()) {
		sb.WriteRune(l.advance())
	}

	if l.peek() == '.' {
		sb.WriteRune(l.advance())

		for unicode.IsDigit(l.peek()) {
			sb.WriteRune(l.advance())
		}
	}

	if l.peek() == 'e' || l.peek() == 'E' {
		sb.WriteRune(l.advance())

		if l.peek() == '+' || l.peek() == '-' {
			sb.WriteRune(l.advance())
		}

		if !unicode.IsDigit(l.peek()) {
			return Token{}, fmt.Errorf("%w: %q at line %d, column %d", ErrInvalidNumber, sb.String(), start.Line, start.Column)
		}

		for unicode.IsDigit(l.peek()) {
			sb.WriteRune(l.advance())
		}
	}

	if isWordStart(l.peek()) {
		sb.WriteRune(l.advance())
		return Token{}, fmt.Errorf("%w: %q at line %d, column %d", ErrInvalidNumber, sb.String(), start.Line, start.Column)
	}

	return Token{Type: NUMBER, Value: sb.String(), Position: start}, nil
}

func isWordStart(r rune) bool {
	return r == '_' || r == '.' || unicode.IsLetter(r)
}

func isWordPart(r rune) bool {
	return isWordStart(r) || unicode.IsDigit(r)
}

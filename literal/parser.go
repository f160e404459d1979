package literal

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shibukawa/vecloc/location"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidLiteral indicates that a subscript literal could not be parsed.
	ErrInvalidLiteral = errors.New("literal: invalid subscript literal")
	// ErrMixedKinds indicates that a vector literal mixes strings, logicals and numbers.
	ErrMixedKinds = errors.New("literal: vector elements must share one kind")
)

var maxInteger = decimal.NewFromInt(math.MaxInt32)

// Parse parses a subscript literal such as `[1, -2, NA]`, `[a = TRUE]`,
// `"x"`, `2.5` or `NULL` into a vector.
func Parse(input string) (location.Vector, error) {
	tokens, err := NewTokenizer(input, true).AllTokens()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLiteral, err)
	}

	p := &parser{tokens: tokens}

	v, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Type != EOF {
		return nil, p.errorf(tok, "unexpected %q after literal", tok.Value)
	}

	return v, nil
}

// MustParse is Parse for literals known to be valid. It panics on error.
func MustParse(input string) location.Vector {
	v, err := Parse(input)
	if err != nil {
		panic(err)
	}

	return v
}

type elemKind int

const (
	elemNA elemKind = iota
	elemInteger
	elemDouble
	elemLogical
	elemString
)

type element struct {
	kind  elemKind
	i     int
	f     float64
	b     location.Bool
	s     string
	name  string
	named bool
	pos   Position
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: EOF}
	}

	return p.tokens[p.pos]
}

func (p *parser) peekAt(offset int) Token {
	if p.pos+offset >= len(p.tokens) {
		return Token{Type: EOF}
	}

	return p.tokens[p.pos+offset]
}

func (p *parser) next() Token {
	tok := p.peek()
	if tok.Type != EOF {
		p.pos++
	}

	return tok
}

func (p *parser) errorf(tok Token, format string, args ...any) error {
	return fmt.Errorf("%w: %s at line %d, column %d", ErrInvalidLiteral, fmt.Sprintf(format, args...), tok.Position.Line, tok.Position.Column)
}

func (p *parser) parseLiteral() (location.Vector, error) {
	tok := p.peek()

	switch tok.Type {
	case EOF:
		return nil, p.errorf(tok, "empty literal")
	case WORD:
		if tok.Value == "NULL" {
			p.next()
			return &location.Absent{}, nil
		}
	case OPENED_BRACKET:
		p.next()

		elems, err := p.parseElements(CLOSED_BRACKET)
		if err != nil {
			return nil, err
		}

		return buildVector(elems)
	case OPENED_BRACE:
		p.next()

		elems, err := p.parseElements(CLOSED_BRACE)
		if err != nil {
			return nil, err
		}

		return buildList(elems), nil
	}

	elem, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	return buildVector([]element{elem})
}

func (p *parser) parseElements(closing TokenType) ([]element, error) {
	elems := make([]element, 0)

	for {
		if p.peek().Type == closing {
			p.next()
			return elems, nil
		}

		elem, err := p.parseElement()
		if err != nil {
			return nil, err
		}

		elems = append(elems, elem)

		switch tok := p.next(); tok.Type {
		case COMMA:
			continue
		case closing:
			return elems, nil
		case EOF:
			return nil, p.errorf(tok, "missing closing %s", closing)
		default:
			return nil, p.errorf(tok, "expected ',' but found %q", tok.Value)
		}
	}
}

func (p *parser) parseElement() (element, error) {
	var (
		name  string
		named bool
	)

	if tok := p.peek(); (tok.Type == WORD || tok.Type == QUOTE) && p.peekAt(1).Type == EQUAL {
		name, named = tok.Value, true
		p.pos += 2
	}

	elem, err := p.parseValue()
	if err != nil {
		return element{}, err
	}

	elem.name, elem.named = name, named

	return elem, nil
}

func (p *parser) parseValue() (element, error) {
	tok := p.next()

	switch tok.Type {
	case QUOTE:
		return element{kind: elemString, s: tok.Value, pos: tok.Position}, nil
	case WORD:
		switch tok.Value {
		case "NA":
			return element{kind: elemNA, pos: tok.Position}, nil
		case "TRUE":
			return element{kind: elemLogical, b: location.True, pos: tok.Position}, nil
		case "FALSE":
			return element{kind: elemLogical, b: location.False, pos: tok.Position}, nil
		case "Inf":
			return element{kind: elemDouble, f: math.Inf(1), pos: tok.Position}, nil
		case "NaN":
			return element{kind: elemDouble, f: math.NaN(), pos: tok.Position}, nil
		}

		return element{}, p.errorf(tok, "unknown word %q", tok.Value)
	case MINUS, PLUS:
		elem, err := p.parseValue()
		if err != nil {
			return element{}, err
		}

		elem.pos = tok.Position
		if tok.Type == PLUS {
			return elem, nil
		}

		switch elem.kind {
		case elemInteger:
			elem.i = -elem.i
		case elemDouble:
			elem.f = -elem.f
		default:
			return element{}, p.errorf(tok, "sign must precede a number")
		}

		return elem, nil
	case NUMBER:
		return parseNumber(tok)
	case EOF:
		return element{}, p.errorf(tok, "unexpected end of literal")
	default:
		return element{}, p.errorf(tok, "unexpected %q", tok.Value)
	}
}

// parseNumber keeps integers exact. Text with a fraction or exponent is a
// double, and so is an integer beyond the 32-bit range.
func parseNumber(tok Token) (element, error) {
	d, err := decimal.NewFromString(tok.Value)
	if err != nil {
		return element{}, fmt.Errorf("%w: %w", ErrInvalidLiteral, err)
	}

	if strings.ContainsAny(tok.Value, ".eE") || d.Abs().GreaterThan(maxInteger) {
		f, _ := d.Float64()
		return element{kind: elemDouble, f: f, pos: tok.Position}, nil
	}

	return element{kind: elemInteger, i: int(d.IntPart()), pos: tok.Position}, nil
}

func collectNames(elems []element) []string {
	hasNames := false

	for _, e := range elems {
		if e.named {
			hasNames = true
			break
		}
	}

	if !hasNames {
		return nil
	}

	names := make([]string, len(elems))
	for i, e := range elems {
		names[i] = e.name
	}

	return names
}

func vectorKind(elems []element) (location.Kind, error) {
	var seen [elemString + 1]bool

	for _, e := range elems {
		seen[e.kind] = true
	}

	numeric := seen[elemInteger] || seen[elemDouble]
	groups := 0

	for _, present := range []bool{numeric, seen[elemLogical], seen[elemString]} {
		if present {
			groups++
		}
	}

	if groups > 1 {
		return 0, fmt.Errorf("%w: %w", ErrInvalidLiteral, ErrMixedKinds)
	}

	switch {
	case seen[elemString]:
		return location.KindCharacter, nil
	case seen[elemDouble]:
		return location.KindDouble, nil
	case seen[elemInteger]:
		return location.KindInteger, nil
	default:
		return location.KindLogical, nil
	}
}

func buildVector(elems []element) (location.Vector, error) {
	kind, err := vectorKind(elems)
	if err != nil {
		return nil, err
	}

	names := collectNames(elems)

	switch kind {
	case location.KindCharacter:
		values := make([]location.String, len(elems))
		for i, e := range elems {
			if e.kind == elemString {
				values[i] = location.Str(e.s)
			}
		}

		return &location.Character{Values: values, Names: names}, nil
	case location.KindDouble:
		values := make([]float64, len(elems))
		for i, e := range elems {
			switch e.kind {
			case elemDouble:
				values[i] = e.f
			case elemInteger:
				values[i] = float64(e.i)
			default:
				values[i] = location.NADouble()
			}
		}

		return &location.Double{Values: values, Names: names}, nil
	case location.KindInteger:
		values := make([]int, len(elems))
		for i, e := range elems {
			if e.kind == elemInteger {
				values[i] = e.i
			} else {
				values[i] = location.NAInteger
			}
		}

		return &location.Integer{Values: values, Names: names}, nil
	default:
		values := make([]location.Bool, len(elems))
		for i, e := range elems {
			if e.kind == elemLogical {
				values[i] = e.b
			} else {
				values[i] = location.NA
			}
		}

		return &location.Logical{Values: values, Names: names}, nil
	}
}

func buildList(elems []element) *location.List {
	values := make([]any, len(elems))

	for i, e := range elems {
		switch e.kind {
		case elemInteger:
			values[i] = e.i
		case elemDouble:
			values[i] = e.f
		case elemLogical:
			values[i] = e.b
		case elemString:
			values[i] = e.s
		}
	}

	return &location.List{Values: values, Names: collectNames(elems)}
}

package literal

import (
	"math"
	"testing"

	"github.com/shibukawa/vecloc/location"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  location.Vector
	}{
		{
			name:  "null",
			input: "NULL",
			want:  &location.Absent{},
		},
		{
			name:  "integer scalar",
			input: "5",
			want:  location.Ints(5),
		},
		{
			name:  "negative integers",
			input: "[-2, -4]",
			want:  location.Ints(-2, -4),
		},
		{
			name:  "integers with NA",
			input: "[1, NA, 0]",
			want:  location.Ints(1, location.NAInteger, 0),
		},
		{
			name:  "doubles promote integers",
			input: "[2.0, 3]",
			want:  location.Doubles(2, 3),
		},
		{
			name:  "exponent is double",
			input: "[1e1]",
			want:  location.Doubles(10),
		},
		{
			name:  "large integer becomes double",
			input: "3000000000",
			want:  location.Doubles(3000000000),
		},
		{
			name:  "logicals",
			input: "[TRUE, FALSE, NA]",
			want:  location.Logicals(location.True, location.False, location.NA),
		},
		{
			name:  "lone NA is logical",
			input: "NA",
			want:  location.Logicals(location.NA),
		},
		{
			name:  "empty vector is logical",
			input: "[]",
			want:  &location.Logical{Values: []location.Bool{}},
		},
		{
			name:  "strings",
			input: `["a", 'b c', NA]`,
			want:  &location.Character{Values: []location.String{location.Str("a"), location.Str("b c"), location.NAString}},
		},
		{
			name:  "named",
			input: `[a = 1, "x y" = 2, 3]`,
			want:  &location.Integer{Values: []int{1, 2, 3}, Names: []string{"a", "x y", ""}},
		},
		{
			name:  "trailing comma",
			input: "[1, 2,]",
			want:  location.Ints(1, 2),
		},
		{
			name:  "list",
			input: `{1, "a", TRUE, NA}`,
			want:  &location.List{Values: []any{1, "a", location.True, nil}},
		},
		{
			name:  "multiline",
			input: "[\n  1,\n  2\n]",
			want:  location.Ints(1, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_SpecialDoubles(t *testing.T) {
	got, err := Parse("[Inf, -Inf, NaN, .5]")
	require.NoError(t, err)

	d, ok := got.(*location.Double)
	require.True(t, ok)
	assert.True(t, math.IsInf(d.Values[0], 1))
	assert.True(t, math.IsInf(d.Values[1], -1))
	assert.True(t, math.IsNaN(d.Values[2]))
	assert.Equal(t, 0.5, d.Values[3])
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target error
	}{
		{"empty", "", ErrInvalidLiteral},
		{"mixed kinds", `[1, "a"]`, ErrMixedKinds},
		{"logical and number", `[TRUE, 1]`, ErrMixedKinds},
		{"missing bracket", "[1, 2", ErrInvalidLiteral},
		{"missing comma", "[1 2]", ErrInvalidLiteral},
		{"unknown word", "[foo]", ErrInvalidLiteral},
		{"unterminated string", `["abc`, ErrUnterminatedString},
		{"bad exponent", "1e", ErrInvalidNumber},
		{"trailing garbage", "1 2", ErrInvalidLiteral},
		{"sign before string", `-"a"`, ErrInvalidLiteral},
		{"unexpected character", "[1; 2]", ErrUnexpectedCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	inputs := []string{
		"NULL",
		"[1, -2, NA]",
		"[2.0, 2.5, Inf, -Inf]",
		"[TRUE, FALSE, NA]",
		`["a", NA]`,
		`[a = 1, "x y" = 2]`,
		`[a = TRUE]`,
		`{1, "a", NA}`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			v, err := Parse(input)
			require.NoError(t, err)
			assert.Equal(t, input, Format(v))

			again, err := Parse(Format(v))
			require.NoError(t, err)
			assert.Equal(t, v, again)
		})
	}
}

func TestTokenizer(t *testing.T) {
	tokens, err := NewTokenizer("[a = -1.5]", false).AllTokens()
	require.NoError(t, err)

	var types []TokenType
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}

	assert.Equal(t, []TokenType{
		OPENED_BRACKET, WORD, WHITESPACE, EQUAL, WHITESPACE, MINUS, NUMBER, CLOSED_BRACKET, EOF,
	}, types)
	assert.Equal(t, Position{Offset: 6, Line: 1, Column: 7}, tokens[6].Position)
	assert.Equal(t, "1.5", tokens[6].Value)
}

package mask

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/vecloc/location"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		expr  string
		size  int
		names []string
		want  []location.Bool
	}{
		{
			name: "even positions",
			expr: "pos % 2 == 0",
			size: 5,
			want: []location.Bool{location.False, location.True, location.False, location.True, location.False},
		},
		{
			name: "last element",
			expr: "pos == size",
			size: 3,
			want: []location.Bool{location.False, location.False, location.True},
		},
		{
			name:  "by name",
			expr:  `name.startsWith("x")`,
			size:  3,
			names: []string{"xa", "b", "xc"},
			want:  []location.Bool{location.True, location.False, location.True},
		},
		{
			name: "unnamed container sees empty names",
			expr: `name == ""`,
			size: 2,
			want: []location.Bool{location.True, location.True},
		},
		{
			name: "null is missing",
			expr: "null",
			size: 2,
			want: []location.Bool{location.NA, location.NA},
		},
		{
			name: "empty container",
			expr: "true",
			size: 0,
			want: []location.Bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.expr, tt.size, tt.names)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got.Values)
			assert.Zero(t, got.Names)
		})
	}
}

func TestBuild_ResolvesAsFullMask(t *testing.T) {
	m, err := Build("pos > 2", 4, nil)
	assert.NoError(t, err)

	loc, err := location.Resolve(m, 4, nil)
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 4}, loc.Values)
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name   string
		expr   string
		target error
	}{
		{"syntax", "pos ==", ErrInvalidPredicate},
		{"unknown variable", "idx == 1", ErrInvalidPredicate},
		{"integer result", "pos + 1", ErrNotBoolean},
		{"string result", "name", ErrNotBoolean},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.expr)
			assert.IsError(t, err, tt.target)
		})
	}
}

func TestPredicate_Eval(t *testing.T) {
	p, err := Compile("pos == 1")
	assert.NoError(t, err)
	assert.Equal(t, "pos == 1", p.Source())

	_, err = p.Eval(2, []string{"a"})
	assert.IsError(t, err, ErrNamesLength)

	_, err = p.Eval(-1, nil)
	assert.IsError(t, err, location.ErrInvalidSize)

	// the compiled program is reused across sizes
	a, err := p.Eval(1, nil)
	assert.NoError(t, err)
	assert.Equal(t, []location.Bool{location.True}, a.Values)

	b, err := p.Eval(3, nil)
	assert.NoError(t, err)
	assert.Equal(t, []location.Bool{location.True, location.False, location.False}, b.Values)
}

func TestPredicate_EvalError(t *testing.T) {
	p, err := Compile("10 / (pos - 2) > 0")
	assert.NoError(t, err)

	_, err = p.Eval(3, nil)
	assert.IsError(t, err, ErrEvaluation)
}

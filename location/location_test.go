package location

import (
	"math"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestIsNA(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want []bool
	}{
		{"integer", Ints(1, NAInteger), []bool{false, true}},
		{"double", Doubles(math.NaN(), 2, math.Inf(1)), []bool{true, false, false}},
		{"logical", Logicals(True, NA, False), []bool{false, true, false}},
		{"character", &Character{Values: []String{Str(""), NAString}}, []bool{false, true}},
		{"list", &List{Values: []any{nil, 1}}, []bool{true, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]bool, tt.v.Len())
			for i := range got {
				got[i] = IsNA(tt.v, i)
			}

			assert.Equal(t, tt.want, got)
		})
	}

	assert.False(t, IsNA(&Absent{}, 0))
}

func TestLocation_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Location
		want bool
	}{
		{"same values", Location{Values: []int{1, 2}}, Location{Values: []int{1, 2}}, true},
		{"missing equals missing", Location{Values: []int{NAInteger}}, Location{Values: []int{NAInteger}}, true},
		{"order matters", Location{Values: []int{1, 2}}, Location{Values: []int{2, 1}}, false},
		{"nil and empty names", Location{Values: []int{}}, Location{Values: []int{}, Names: []string{}}, true},
		{"names differ", Location{Values: []int{1}, Names: []string{"a"}}, Location{Values: []int{1}, Names: []string{"b"}}, false},
		{"names on one side", Location{Values: []int{1}, Names: []string{"a"}}, Location{Values: []int{1}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestLocation_ZeroBased(t *testing.T) {
	offsets, ok := Location{Values: []int{3, 1}}.ZeroBased()
	assert.True(t, ok)
	assert.Equal(t, []int{2, 0}, offsets)

	offsets, ok = Location{Values: []int{1, NAInteger}}.ZeroBased()
	assert.False(t, ok)
	assert.Zero(t, offsets)
}

func TestLocation_String(t *testing.T) {
	assert.Equal(t, "{}", Location{Values: []int{}}.String())
	assert.Equal(t, "{1, NA}", Location{Values: []int{1, NAInteger}}.String())
	assert.Equal(t, "{a = 2, b = NA}", Location{Values: []int{2, NAInteger}, Names: []string{"a", "b"}}.String())
}

func TestVector_Shape(t *testing.T) {
	m := &Integer{Values: []int{1, 2, 3, 4}, Dim: []int{2, 2}}
	assert.Equal(t, 2, m.Dims())
	assert.Equal(t, 4, m.Len())

	assert.Equal(t, 1, Ints(1).Dims())
	assert.Equal(t, 1, (&Absent{}).Dims())
	assert.Equal(t, "TRUE", True.String())
	assert.Equal(t, "NA", NA.String())
	assert.Equal(t, "character", KindCharacter.String())
}

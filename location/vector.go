// Package location resolves subscripts (positive or negative indices, logical
// masks and names) against a container of known size into one-based locations.
package location

import (
	"fmt"
	"math"
)

// NAInteger is the missing-value sentinel for integer subscripts and locations.
const NAInteger = math.MinInt32

// Kind identifies the variant of a Vector.
type Kind int

const (
	KindAbsent Kind = iota
	KindInteger
	KindDouble
	KindLogical
	KindCharacter
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "NULL"
	case KindInteger:
		return "integer"
	case KindDouble:
		return "double"
	case KindLogical:
		return "logical"
	case KindCharacter:
		return "character"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Bool is a tri-state logical element.
type Bool int8

const (
	False Bool = 0
	True  Bool = 1
	NA    Bool = -1
)

func (b Bool) String() string {
	switch b {
	case True:
		return "TRUE"
	case False:
		return "FALSE"
	default:
		return "NA"
	}
}

// String is a nullable character element. The zero value is NA.
type String struct {
	Value string
	Valid bool
}

// NAString is the missing character element.
var NAString = String{}

// Str returns a non-missing character element.
func Str(s string) String {
	return String{Value: s, Valid: true}
}

// Vector is the closed set of values that can be used as a subscript or as
// container names. Only the types in this package implement it.
type Vector interface {
	Kind() Kind
	Len() int
	// Dims returns the number of dimensions. Plain vectors have one.
	Dims() int
	// ElementNames returns the names parallel to the elements, or nil.
	ElementNames() []string

	isVector()
}

// Absent is the null subscript. It selects nothing.
type Absent struct{}

// Integer is an integer vector. NAInteger marks missing elements.
type Integer struct {
	Values []int
	Names  []string
	Dim    []int
}

// Double is a double vector. NaN marks missing elements.
type Double struct {
	Values []float64
	Names  []string
	Dim    []int
}

// Logical is a tri-state logical vector.
type Logical struct {
	Values []Bool
	Names  []string
	Dim    []int
}

// Character is a vector of nullable strings.
type Character struct {
	Values []String
	Names  []string
	Dim    []int
}

// List is a generic list. It is never a valid subscript.
type List struct {
	Values []any
	Names  []string
	Dim    []int
}

func dims(dim []int) int {
	if dim == nil {
		return 1
	}

	return len(dim)
}

func (*Absent) Kind() Kind             { return KindAbsent }
func (*Absent) Len() int               { return 0 }
func (*Absent) Dims() int              { return 1 }
func (*Absent) ElementNames() []string { return nil }
func (*Absent) isVector()              {}

func (*Integer) Kind() Kind { return KindInteger }

func (v *Integer) Len() int {
	if v == nil {
		return 0
	}

	return len(v.Values)
}

func (v *Integer) Dims() int {
	if v == nil {
		return 1
	}

	return dims(v.Dim)
}

func (v *Integer) ElementNames() []string {
	if v == nil {
		return nil
	}

	return v.Names
}

func (*Integer) isVector() {}

func (*Double) Kind() Kind { return KindDouble }

func (v *Double) Len() int {
	if v == nil {
		return 0
	}

	return len(v.Values)
}

func (v *Double) Dims() int {
	if v == nil {
		return 1
	}

	return dims(v.Dim)
}

func (v *Double) ElementNames() []string {
	if v == nil {
		return nil
	}

	return v.Names
}

func (*Double) isVector() {}

func (*Logical) Kind() Kind { return KindLogical }

func (v *Logical) Len() int {
	if v == nil {
		return 0
	}

	return len(v.Values)
}

func (v *Logical) Dims() int {
	if v == nil {
		return 1
	}

	return dims(v.Dim)
}

func (v *Logical) ElementNames() []string {
	if v == nil {
		return nil
	}

	return v.Names
}

func (*Logical) isVector() {}

func (*Character) Kind() Kind { return KindCharacter }

func (v *Character) Len() int {
	if v == nil {
		return 0
	}

	return len(v.Values)
}

func (v *Character) Dims() int {
	if v == nil {
		return 1
	}

	return dims(v.Dim)
}

func (v *Character) ElementNames() []string {
	if v == nil {
		return nil
	}

	return v.Names
}

func (*Character) isVector() {}

func (*List) Kind() Kind { return KindList }

func (v *List) Len() int {
	if v == nil {
		return 0
	}

	return len(v.Values)
}

func (v *List) Dims() int {
	if v == nil {
		return 1
	}

	return dims(v.Dim)
}

func (v *List) ElementNames() []string {
	if v == nil {
		return nil
	}

	return v.Names
}

func (*List) isVector() {}

// Ints builds an integer vector.
func Ints(values ...int) *Integer {
	return &Integer{Values: values}
}

// Doubles builds a double vector.
func Doubles(values ...float64) *Double {
	return &Double{Values: values}
}

// Logicals builds a logical vector.
func Logicals(values ...Bool) *Logical {
	return &Logical{Values: values}
}

// Strings builds a character vector without missing elements.
func Strings(values ...string) *Character {
	out := make([]String, len(values))
	for i, s := range values {
		out[i] = Str(s)
	}

	return &Character{Values: out}
}

// NADouble returns the missing double value.
func NADouble() float64 {
	return math.NaN()
}

// IsNA reports whether element i of v is missing. List elements are missing
// when they are nil.
func IsNA(v Vector, i int) bool {
	switch x := v.(type) {
	case *Integer:
		return x.Values[i] == NAInteger
	case *Double:
		return math.IsNaN(x.Values[i])
	case *Logical:
		return x.Values[i] == NA
	case *Character:
		return !x.Values[i].Valid
	case *List:
		return x.Values[i] == nil
	default:
		return false
	}
}

package location

import (
	"slices"
	"strconv"
	"strings"
)

// Location is the canonical form of a resolved subscript: one-based
// positions, NAInteger for missing slots, and optional names of the same
// length.
type Location struct {
	Values []int
	Names  []string
}

func emptyLocation() Location {
	return Location{Values: []int{}}
}

// Len returns the number of slots.
func (l Location) Len() int {
	return len(l.Values)
}

// IsNA reports whether slot i is missing.
func (l Location) IsNA(i int) bool {
	return l.Values[i] == NAInteger
}

// HasNames reports whether the location carries names.
func (l Location) HasNames() bool {
	return l.Names != nil
}

// Equal compares two locations slot by slot. Missing slots compare equal to
// each other, and a nil name slice equals an empty one.
func (l Location) Equal(other Location) bool {
	if !slices.Equal(l.Values, other.Values) {
		return false
	}

	if len(l.Names) == 0 && len(other.Names) == 0 {
		return true
	}

	return slices.Equal(l.Names, other.Names)
}

// ZeroBased returns the positions shifted to zero-based offsets. ok is false
// when a slot is missing, since a missing slot has no offset.
func (l Location) ZeroBased() (offsets []int, ok bool) {
	offsets = make([]int, len(l.Values))
	for i, v := range l.Values {
		if v == NAInteger {
			return nil, false
		}

		offsets[i] = v - 1
	}

	return offsets, true
}

// String renders the location as {1, 3, NA} or {a = 1, b = 3}.
func (l Location) String() string {
	var sb strings.Builder

	sb.WriteByte('{')

	for i, v := range l.Values {
		if i > 0 {
			sb.WriteString(", ")
		}

		if l.Names != nil {
			sb.WriteString(l.Names[i])
			sb.WriteString(" = ")
		}

		if v == NAInteger {
			sb.WriteString("NA")
		} else {
			sb.WriteString(strconv.Itoa(v))
		}
	}

	sb.WriteByte('}')

	return sb.String()
}

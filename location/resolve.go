package location

import "fmt"

// Options control resolution.
type Options struct {
	// ConvertNegative turns an all-negative subscript into its positive
	// complement. When false, any negative index is rejected with
	// ErrNegativeIndex, including one whose magnitude exceeds the size.
	ConvertNegative bool
}

// DefaultOptions returns the options used by Resolve.
func DefaultOptions() Options {
	return Options{ConvertNegative: true}
}

// Resolve converts subscript into locations within a container of size n.
// names are the container names; nil means the container is unnamed.
// Negative indices are inverted.
func Resolve(subscript Vector, n int, names Vector) (Location, error) {
	return ResolveWithOptions(subscript, n, names, DefaultOptions())
}

// ResolveWithOptions is Resolve with explicit options.
func ResolveWithOptions(subscript Vector, n int, names Vector, opts Options) (Location, error) {
	if n < 0 {
		return Location{}, fmt.Errorf("%w, got %d", ErrInvalidSize, n)
	}

	if subscript == nil {
		return emptyLocation(), nil
	}

	if d := subscript.Dims(); d != 1 {
		return Location{}, newShapeError(subscript, fmt.Sprintf("`i` must have one dimension, not %d", d))
	}

	if nm := subscript.ElementNames(); nm != nil && len(nm) != subscript.Len() {
		return Location{}, newShapeError(subscript, fmt.Sprintf("subscript has %d names for %d elements", len(nm), subscript.Len()))
	}

	switch sub := subscript.(type) {
	case *Absent:
		return emptyLocation(), nil
	case *Integer:
		if sub == nil {
			return emptyLocation(), nil
		}

		return intAsLocation(sub, sub.Values, sub.Names, n, opts)
	case *Double:
		if sub == nil {
			return emptyLocation(), nil
		}

		return dblAsLocation(sub, n, opts)
	case *Logical:
		if sub == nil {
			sub = &Logical{}
		}

		return lglAsLocation(sub, n)
	case *Character:
		if sub == nil {
			sub = &Character{}
		}

		return chrAsLocation(sub, names)
	case *List:
		return Location{}, newTypeError(subscript, -1, "`i` must be an integer, character, or logical vector, not a list")
	}

	return Location{}, newTypeError(subscript, -1, fmt.Sprintf("`i` must be an integer, character, or logical vector, not a %s", subscript.Kind()))
}

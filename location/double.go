package location

import (
	"fmt"
	"math"
	"strconv"
)

func dblAsLocation(subscript *Double, n int, opts Options) (Location, error) {
	data, err := castDoubleToInteger(subscript)
	if err != nil {
		return Location{}, err
	}

	return intAsLocation(subscript, data, subscript.Names, n, opts)
}

// castDoubleToInteger requires every non-missing value to be integral and
// within the integer range. NaN maps to NAInteger.
func castDoubleToInteger(subscript *Double) ([]int, error) {
	out := make([]int, len(subscript.Values))

	for i, v := range subscript.Values {
		switch {
		case math.IsNaN(v):
			out[i] = NAInteger
		case math.IsInf(v, 0), math.Abs(v) > math.MaxInt32:
			return nil, newTypeError(subscript, i, fmt.Sprintf("can't convert from double to integer: %s is out of the integer range", formatDouble(v)))
		case v != math.Trunc(v):
			return nil, newTypeError(subscript, i, fmt.Sprintf("can't convert from double to integer: %s has a fractional part", formatDouble(v)))
		default:
			out[i] = int(v)
		}
	}

	return out, nil
}

func formatDouble(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

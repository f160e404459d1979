package location

func lglAsLocation(subscript *Logical, n int) (Location, error) {
	m := len(subscript.Values)

	if m == n {
		out, positions := lglWhich(subscript.Values)
		return Location{Values: out, Names: sliceNames(subscript.Names, positions)}, nil
	}

	// A single TRUE selects everything and a single FALSE selects nothing.
	if m == 1 {
		var out []int

		switch subscript.Values[0] {
		case False:
			return emptyLocation(), nil
		case True:
			out = make([]int, n)
			for i := range out {
				out[i] = i + 1
			}
		default:
			out = make([]int, n)
			for i := range out {
				out[i] = NAInteger
			}
		}

		return Location{Values: out, Names: recycleName(subscript.Names, n)}, nil
	}

	return Location{}, newLengthError(subscript, n)
}

// lglWhich returns the 1-based positions of TRUE and NA elements, NA
// elements yielding NAInteger, together with their 0-based offsets.
func lglWhich(mask []Bool) (out []int, positions []int) {
	out = make([]int, 0, len(mask))
	positions = make([]int, 0, len(mask))

	for i, b := range mask {
		switch b {
		case True:
			out = append(out, i+1)
		case False:
			continue
		default:
			out = append(out, NAInteger)
		}

		positions = append(positions, i)
	}

	return out, positions
}

package location

// intAsLocation validates integer positions in a single pass. subscript is
// kept only for error context; data may differ from its values when the
// caller cast them from doubles.
func intAsLocation(subscript Vector, data []int, names []string, n int, opts Options) (Location, error) {
	nZero := 0

	for i, elt := range data {
		if elt == NAInteger {
			continue
		}

		if elt < 0 {
			if opts.ConvertNegative {
				return invertLocation(subscript, data, n)
			}

			return Location{}, newNegativeIndexError(subscript, n, i, elt)
		}

		if elt == 0 {
			nZero++
			continue
		}

		if elt > n {
			return Location{}, newOutOfBoundsError(subscript, n, i, elt)
		}
	}

	if nZero > 0 {
		return filterZero(data, names, nZero), nil
	}

	out := make([]int, len(data))
	copy(out, data)

	return Location{Values: out, Names: copyNames(names)}, nil
}

// invertLocation resolves an all-negative subscript to the positions it
// does not exclude. The exclusion mask goes through the logical resolver.
func invertLocation(subscript Vector, data []int, n int) (Location, error) {
	keep := make([]Bool, n)
	for i := range keep {
		keep[i] = True
	}

	for i, j := range data {
		if j == NAInteger {
			return Location{}, newMixedSignError(subscript, n, i, j)
		}

		if j == 0 {
			continue
		}

		if j > 0 {
			return Location{}, newMixedSignError(subscript, n, i, j)
		}

		idx := -j
		if idx > n {
			return Location{}, newOutOfBoundsError(subscript, n, i, j)
		}

		keep[idx-1] = False
	}

	return lglAsLocation(&Logical{Values: keep}, n)
}

func filterZero(data []int, names []string, nZero int) Location {
	out := make([]int, 0, len(data)-nZero)

	var outNames []string
	if names != nil {
		outNames = make([]string, 0, len(data)-nZero)
	}

	for i, elt := range data {
		if elt == 0 {
			continue
		}

		out = append(out, elt)
		if names != nil {
			outNames = append(outNames, names[i])
		}
	}

	return Location{Values: out, Names: outNames}
}

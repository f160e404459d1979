package location

func chrAsLocation(subscript *Character, names Vector) (Location, error) {
	var containerNames *Character

	switch nm := names.(type) {
	case nil, *Absent:
		return Location{}, newUnnamedContainerError(subscript)
	case *Character:
		if nm == nil {
			return Location{}, newUnnamedContainerError(subscript)
		}

		containerNames = nm
	default:
		return Location{}, newTypeError(subscript, -1, "`names` must be a character vector, not a "+names.Kind().String())
	}

	// First match wins; missing names never match.
	index := make(map[string]int, len(containerNames.Values))
	for k, s := range containerNames.Values {
		if !s.Valid {
			continue
		}

		if _, seen := index[s.Value]; !seen {
			index[s.Value] = k
		}
	}

	out := make([]int, len(subscript.Values))

	for i, s := range subscript.Values {
		if !s.Valid {
			out[i] = NAInteger
			continue
		}

		k, ok := index[s.Value]
		if !ok {
			return Location{}, newNameNotFoundError(subscript, names, i)
		}

		out[i] = k + 1
	}

	return Location{Values: out, Names: copyNames(subscript.Names)}, nil
}

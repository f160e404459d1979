package location

// sliceNames picks names at the given 0-based positions, in order.
func sliceNames(names []string, positions []int) []string {
	if names == nil {
		return nil
	}

	out := make([]string, len(positions))
	for i, p := range positions {
		out[i] = names[p]
	}

	return out
}

// recycleName stretches the single name of a length-1 subscript over n slots.
func recycleName(names []string, n int) []string {
	if names == nil {
		return nil
	}

	out := make([]string, n)
	for i := range out {
		out[i] = names[0]
	}

	return out
}

func copyNames(names []string) []string {
	if names == nil {
		return nil
	}

	out := make([]string, len(names))
	copy(out, names)

	return out
}

package cli

import (
	"fmt"

	"github.com/shibukawa/vecloc"
	"github.com/shibukawa/vecloc/location"
)

// ContainerFlags select the container a subscript is resolved against.
type ContainerFlags struct {
	Size      int      `short:"n" help:"Container size (defaults to the number of names)" default:"-1"`
	Names     []string `help:"Comma separated container names" sep:","`
	Container string   `short:"c" help:"Named container from the configuration"`
}

func (f ContainerFlags) resolve(config *vecloc.Config) (vecloc.ContainerSpec, error) {
	if f.Container != "" {
		if f.Names != nil || f.Size >= 0 {
			return vecloc.ContainerSpec{}, fmt.Errorf("%w: --container can't be combined with --size or --names", ErrContainerConflict)
		}

		return config.Container(f.Container)
	}

	var spec vecloc.ContainerSpec

	switch {
	case f.Names != nil:
		spec.Names = location.Strings(f.Names...)
		spec.Size = len(f.Names)

		if f.Size >= 0 && f.Size != spec.Size {
			return vecloc.ContainerSpec{}, fmt.Errorf("%w: --size %d doesn't match %d names", ErrContainerConflict, f.Size, spec.Size)
		}
	case f.Size >= 0:
		spec.Size = f.Size
	default:
		return vecloc.ContainerSpec{}, ErrNoContainer
	}

	return spec, nil
}

// plainNames lists container names for predicates. Missing names read as "".
func plainNames(names location.Vector) []string {
	chr, ok := names.(*location.Character)
	if !ok {
		return nil
	}

	out := make([]string, len(chr.Values))
	for i, s := range chr.Values {
		out[i] = s.Value
	}

	return out
}

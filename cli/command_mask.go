package cli

import (
	"fmt"

	"github.com/shibukawa/vecloc/format"
	"github.com/shibukawa/vecloc/literal"
	"github.com/shibukawa/vecloc/location"
	"github.com/shibukawa/vecloc/mask"
)

// MaskCmd represents the mask command
type MaskCmd struct {
	Predicate      string         `arg:"" help:"CEL predicate over pos, name and size, e.g. 'pos % 2 == 0'"`
	ContainerFlags ContainerFlags `embed:""`
	Show           bool           `help:"Print the mask as a subscript literal instead of resolving it"`
	Format         string         `short:"f" help:"Output format (table, json, csv, yaml, markdown)"`
	OutputFile     string         `short:"o" long:"output" help:"Output file (defaults to stdout)" type:"path"`
}

// Run executes the mask command
func (cmd *MaskCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx)
	if err != nil {
		return err
	}

	container, err := cmd.ContainerFlags.resolve(config)
	if err != nil {
		return err
	}

	ctx.infof("Evaluating %q over %d elements", cmd.Predicate, container.Size)

	m, err := mask.Build(cmd.Predicate, container.Size, plainNames(container.Names))
	if err != nil {
		return err
	}

	if cmd.Show {
		_, err := fmt.Fprintln(ctx.stdout(), literal.Format(m))
		return err
	}

	loc, err := location.Resolve(m, container.Size, container.Names)
	if err != nil {
		return report(ctx, err)
	}

	// Masks select by position; the container names label the result.
	if chr, ok := container.Names.(*location.Character); ok {
		loc.Names = make([]string, loc.Len())
		for i, v := range loc.Values {
			if v != location.NAInteger {
				loc.Names[i] = chr.Values[v-1].Value
			}
		}
	}

	return writeResult(ctx, config, cmd.Format, cmd.OutputFile, format.Result{
		Subscript: cmd.Predicate,
		Size:      container.Size,
		Location:  loc,
	})
}

package cli

import (
	"fmt"

	"github.com/shibukawa/vecloc"
	"github.com/shibukawa/vecloc/diagnostic"
	"github.com/shibukawa/vecloc/format"
	"github.com/shibukawa/vecloc/literal"
	"github.com/shibukawa/vecloc/location"
)

// ResolveCmd represents the resolve command
type ResolveCmd struct {
	Subscript         string         `arg:"" help:"Subscript literal, e.g. '[1, -2]', '[\"a\", \"b\"]' or 'TRUE'"`
	ContainerFlags    ContainerFlags `embed:""`
	Dim               int            `help:"Number of dimensions the subscript declares" default:"1"`
	NoConvertNegative bool           `help:"Reject negative locations instead of inverting them"`
	Format            string         `short:"f" help:"Output format (table, json, csv, yaml, markdown)"`
	OutputFile        string         `short:"o" long:"output" help:"Output file (defaults to stdout)" type:"path"`
}

// Run executes the resolve command
func (cmd *ResolveCmd) Run(ctx *Context) error {
	if cmd.Dim < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidDim, cmd.Dim)
	}

	config, err := LoadConfig(ctx)
	if err != nil {
		return err
	}

	subscript, err := literal.Parse(cmd.Subscript)
	if err != nil {
		return err
	}

	if cmd.Dim != 1 {
		subscript = withDims(subscript, cmd.Dim)
	}

	container, err := cmd.ContainerFlags.resolve(config)
	if err != nil {
		return err
	}

	opts := config.ResolveOptions()
	if cmd.NoConvertNegative {
		opts.ConvertNegative = false
	}

	ctx.infof("Resolving %s against %d elements", literal.Format(subscript), container.Size)

	loc, err := location.ResolveWithOptions(subscript, container.Size, container.Names, opts)
	if err != nil {
		return report(ctx, err)
	}

	return writeResult(ctx, config, cmd.Format, cmd.OutputFile, format.Result{
		Subscript: cmd.Subscript,
		Size:      container.Size,
		Location:  loc,
	})
}

// report renders resolution failures through the diagnostic reporter.
func report(ctx *Context, err error) error {
	if _, ok := location.AsError(err); !ok {
		return err
	}

	if !ctx.Quiet {
		diagnostic.NewWriterReporter(ctx.stderr(), !isNoColor()).Report(err)
	}

	return fmt.Errorf("%w: %w", ErrResolutionFailed, err)
}

func writeResult(ctx *Context, config *vecloc.Config, outputFormat, outputFile string, result format.Result) error {
	if outputFormat == "" {
		outputFormat = config.Defaults.Format
	}

	if !format.IsValidOutputFormat(outputFormat) {
		return fmt.Errorf("%w: %s", format.ErrInvalidOutputFormat, outputFormat)
	}

	output, closeOutput, err := ctx.openOutput(outputFile)
	if err != nil {
		return err
	}

	if err := format.NewFormatter(format.OutputFormat(outputFormat)).Write(result, output); err != nil {
		closeOutput()
		return err
	}

	return closeOutput()
}

// withDims declares d dimensions on v, keeping its length in the first one.
func withDims(v location.Vector, d int) location.Vector {
	dim := make([]int, d)
	if d > 0 {
		dim[0] = v.Len()
	}

	for i := 1; i < d; i++ {
		dim[i] = 1
	}

	switch x := v.(type) {
	case *location.Integer:
		x.Dim = dim
	case *location.Double:
		x.Dim = dim
	case *location.Logical:
		x.Dim = dim
	case *location.Character:
		x.Dim = dim
	case *location.List:
		x.Dim = dim
	}

	return v
}

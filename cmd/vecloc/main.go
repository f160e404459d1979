package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/shibukawa/vecloc/cli"
)

// CLI represents the command-line interface
var CLI struct {
	Config  string         `help:"Configuration file path" default:"vecloc.yaml"`
	Verbose bool           `help:"Enable verbose output" short:"v"`
	Quiet   bool           `help:"Suppress output" short:"q"`
	Resolve cli.ResolveCmd `cmd:"" help:"Resolve a subscript to locations"`
	Mask    cli.MaskCmd    `cmd:"" help:"Build a logical mask from a predicate and resolve it"`
	Check   cli.CheckCmd   `cmd:"" help:"Run resolution casebooks"`
	Version cli.VersionCmd `cmd:"" help:"Show version information"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("vecloc"),
		kong.Description("Resolve vector subscripts to validated positions."),
		kong.UsageOnError(),
	)

	appCtx := &cli.Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	err := ctx.Run(appCtx)
	if err == nil {
		return
	}

	// Diagnostics and summaries were already printed.
	if !errors.Is(err, cli.ErrResolutionFailed) && !errors.Is(err, cli.ErrCasesFailed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	os.Exit(1)
}

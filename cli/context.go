// Package cli implements the vecloc commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/shibukawa/vecloc"
)

// Error definitions
var (
	ErrNoContainer        = errors.New("no container given: use --size, --names or --container")
	ErrContainerConflict  = errors.New("container flags conflict")
	ErrResolutionFailed   = errors.New("subscript could not be resolved")
	ErrCasesFailed        = errors.New("some cases failed")
	ErrOutputFileCreation = errors.New("failed to create output file")
	ErrInvalidDim         = errors.New("--dim must be non-negative")
)

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool

	// Stdout and Stderr default to the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

func (ctx *Context) stdout() io.Writer {
	if ctx.Stdout != nil {
		return ctx.Stdout
	}

	return os.Stdout
}

func (ctx *Context) stderr() io.Writer {
	if ctx.Stderr != nil {
		return ctx.Stderr
	}

	return os.Stderr
}

// infof prints verbose progress to stderr so it never mixes with results.
func (ctx *Context) infof(format string, args ...any) {
	if ctx.Verbose && !ctx.Quiet {
		fmt.Fprintln(ctx.stderr(), color.BlueString(format, args...))
	}
}

// LoadConfig loads the configuration and applies its output settings
func LoadConfig(ctx *Context) (*vecloc.Config, error) {
	config, err := vecloc.LoadConfig(ctx.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	switch config.Output.Color {
	case vecloc.ColorNever:
		color.NoColor = true
	case vecloc.ColorAlways:
		color.NoColor = false
	}

	ctx.infof("Loaded configuration from %s", ctx.Config)

	return config, nil
}

// openOutput returns the file at path, or stdout when path is empty.
func (ctx *Context) openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return ctx.stdout(), func() error { return nil }, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrOutputFileCreation, err)
	}

	return file, file.Close, nil
}

func isNoColor() bool {
	return color.NoColor
}

package cli

import (
	"context"
	"fmt"

	"github.com/shibukawa/vecloc/casebook"
)

// CheckCmd represents the check command
type CheckCmd struct {
	Paths      []string `arg:"" optional:"" help:"Casebook files or directories (defaults to casebooks.dir)" type:"path"`
	RunPattern string   `short:"r" help:"Run only cases matching the regular expression"`
}

// Run executes the check command
func (cmd *CheckCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx)
	if err != nil {
		return err
	}

	paths := cmd.Paths
	if len(paths) == 0 {
		paths = []string{config.Casebooks.Dir}
	}

	runner := casebook.NewRunner(ctx.stderr())
	runner.SetVerbose(ctx.Verbose && !ctx.Quiet)

	if err := runner.SetRunPattern(cmd.RunPattern); err != nil {
		return err
	}

	if err := runner.SetFilePatterns(config.Casebooks.Patterns); err != nil {
		return err
	}

	summary, err := runner.Run(context.Background(), paths...)
	if err != nil {
		return fmt.Errorf("failed to run casebooks: %w", err)
	}

	if !ctx.Quiet {
		casebook.PrintSummary(ctx.stdout(), summary)
	}

	if summary.FailedCases > 0 {
		return fmt.Errorf("%w: %d of %d", ErrCasesFailed, summary.FailedCases, summary.TotalCases)
	}

	return nil
}

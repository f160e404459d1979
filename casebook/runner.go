package casebook

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/shibukawa/vecloc/location"
)

// Runner loads casebooks and resolves their cases.
type Runner struct {
	verbose    bool
	runPattern *regexp.Regexp
	patterns   []string
	output     io.Writer
}

// CaseResult is the outcome of one case.
type CaseResult struct {
	Case     Case
	Success  bool
	Got      location.Location
	GotError error
	Message  string
	Duration time.Duration
}

// Summary collects the results of one run.
type Summary struct {
	RunID         string
	TotalFiles    int
	TotalCases    int
	PassedCases   int
	FailedCases   int
	SkippedCases  int
	TotalDuration time.Duration
	Results       []CaseResult
}

// NewRunner creates a runner that writes progress to output.
func NewRunner(output io.Writer) *Runner {
	if output == nil {
		output = io.Discard
	}

	return &Runner{output: output}
}

// SetVerbose enables or disables per-case output
func (r *Runner) SetVerbose(verbose bool) {
	r.verbose = verbose
}

// SetRunPattern sets the case name filter pattern
func (r *Runner) SetRunPattern(pattern string) error {
	if pattern == "" {
		r.runPattern = nil
		return nil
	}

	regex, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid run pattern: %w", err)
	}

	r.runPattern = regex

	return nil
}

// SetFilePatterns sets the glob patterns matched against file names when
// walking directories. An empty list restores DefaultPatterns.
func (r *Runner) SetFilePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("invalid file pattern %q: %w", pattern, err)
		}
	}

	r.patterns = patterns

	return nil
}

// LoadFile parses one casebook, choosing the format by extension.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return ParseMarkdown(f, path)
	case ".yaml", ".yml":
		return ParseYAML(f, path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}
}

// DefaultPatterns match the file types LoadFile understands.
var DefaultPatterns = []string{"*.md", "*.markdown", "*.yaml", "*.yml"}

func matchesAny(patterns []string, path string) bool {
	base := filepath.Base(path)

	for _, pattern := range patterns {
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}

	return false
}

// FindFiles lists the casebooks under the given paths. Files named
// explicitly are returned whatever their name; directories are walked for
// files matching patterns, or DefaultPatterns when patterns is empty.
func FindFiles(patterns []string, paths ...string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	var files []string

	for _, root := range paths {
		err := walkAndProcessFiles(root, false, func(p string, info os.FileInfo) {
			if p == root || matchesAny(patterns, p) {
				files = append(files, p)
			}
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// Run loads every casebook under paths and resolves its cases.
func (r *Runner) Run(ctx context.Context, paths ...string) (*Summary, error) {
	files, err := FindFiles(r.patterns, paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to find casebooks: %w", err)
	}

	if r.verbose {
		fmt.Fprintf(r.output, "Found %d casebook files\n", len(files))
	}

	docs := make([]*Document, 0, len(files))

	for _, file := range files {
		doc, err := LoadFile(file)
		if err != nil {
			return nil, err
		}

		docs = append(docs, doc)
	}

	return r.RunDocuments(ctx, docs...)
}

// RunDocuments resolves the cases of already parsed casebooks.
func (r *Runner) RunDocuments(ctx context.Context, docs ...*Document) (*Summary, error) {
	summary := &Summary{
		RunID:      uuid.NewString(),
		TotalFiles: len(docs),
	}

	startTime := time.Now()

	for _, doc := range docs {
		for _, c := range doc.Cases {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			summary.TotalCases++

			if r.runPattern != nil && !r.runPattern.MatchString(c.Name) {
				summary.SkippedCases++
				continue
			}

			result := RunCase(c)
			summary.Results = append(summary.Results, result)

			if result.Success {
				summary.PassedCases++
				if r.verbose {
					fmt.Fprintf(r.output, "--- PASS: %s (%s)\n", c.Name, c.File)
				}
			} else {
				summary.FailedCases++
				if r.verbose {
					fmt.Fprintf(r.output, "--- FAIL: %s (%s)\n", c.Name, c.File)
					fmt.Fprintf(r.output, "    %s\n", result.Message)
				}
			}
		}
	}

	summary.TotalDuration = time.Since(startTime)

	return summary, nil
}

// RunCase resolves a single case and compares the outcome.
func RunCase(c Case) CaseResult {
	startTime := time.Now()
	result := CaseResult{Case: c}

	in, err := c.Input()
	if err != nil {
		result.GotError = err
		result.Message = err.Error()
		result.Duration = time.Since(startTime)

		return result
	}

	got, err := location.ResolveWithOptions(in.Subscript, in.Size, in.Names, in.Options)
	result.Got, result.GotError = got, err
	result.Duration = time.Since(startTime)

	if c.Error != "" {
		want, _ := location.ParseReason(c.Error)

		locErr, ok := location.AsError(err)

		switch {
		case err == nil:
			result.Message = fmt.Sprintf("expected %s error, got %s", want, got)
		case !ok:
			result.Message = fmt.Sprintf("expected %s error, got %v", want, err)
		case locErr.Reason != want:
			result.Message = fmt.Sprintf("expected %s error, got %s: %v", want, locErr.Reason, err)
		default:
			result.Success = true
		}

		return result
	}

	if err != nil {
		result.Message = fmt.Sprintf("unexpected error: %v", err)
		return result
	}

	want := c.Expected()

	if c.ExpectNames == nil {
		// Names are only compared when the case lists them.
		got.Names = nil
	}

	if !want.Equal(got) {
		result.Message = fmt.Sprintf("expected %s, got %s", want, result.Got)
		return result
	}

	result.Success = true

	return result
}

// PrintSummary prints the run summary
func PrintSummary(w io.Writer, summary *Summary) {
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "=== Casebook Summary (%s) ===\n", summary.RunID)
	fmt.Fprintf(w, "Files: %d\n", summary.TotalFiles)
	fmt.Fprintf(w, "Cases: %d total, %d passed, %d failed, %d skipped\n",
		summary.TotalCases, summary.PassedCases, summary.FailedCases, summary.SkippedCases)
	fmt.Fprintf(w, "Duration: %.3fs\n", summary.TotalDuration.Seconds())

	if summary.FailedCases > 0 {
		fmt.Fprintf(w, "\nFailed cases:\n")

		for _, result := range summary.Results {
			if result.Success {
				continue
			}

			where := result.Case.File
			if result.Case.Line > 0 {
				where = fmt.Sprintf("%s:%d", where, result.Case.Line)
			}

			fmt.Fprintf(w, "  %s (%s)\n", result.Case.Name, where)
			fmt.Fprintf(w, "    %s\n", color.RedString(result.Message))
		}
	}

	if summary.FailedCases == 0 {
		fmt.Fprintf(w, "\n%s\n", color.GreenString("All cases passed! ✅"))
	} else {
		fmt.Fprintf(w, "\n%s\n", color.RedString("Some cases failed! ❌"))
	}
}

package casebook

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/fatih/color"
	"github.com/shibukawa/vecloc/location"
	"github.com/shibukawa/vecloc/testhelper"
)

func markdownBook(t *testing.T) string {
	t.Helper()

	return testhelper.TrimIndent(t, `
	---
	title: Integer subscripts
	size: 5
	---
	# Integer casebook

	Positions checked against a container of five elements.

	## positive positions

	~~~yaml
	subscript: "[1, 3]"
	expect: [1, 3]
	~~~

	## out of bounds

	~~~yaml
	subscript: "6"
	error: out_of_bounds
	~~~

	## named container

	~~~yaml
	subscript: '["b", NA]'
	names: [a, b]
	expect: [2, null]
	~~~
	`)
}

func yamlCasebookSource(t *testing.T) string {
	t.Helper()

	return testhelper.TrimIndent(t, `
	size: 3
	convert_negative: false
	cases:
		- name: negative rejected
		  subscript: "-1"
		  error: negative_index
		- subscript: "[TRUE, NA, FALSE]"
		  expect: [1, null]
		- name: inverted
		  subscript: "-1"
		  convert_negative: true
		  expect: [2, 3]
	`)
}

func TestParseMarkdown(t *testing.T) {
	doc, err := ParseMarkdown(strings.NewReader(markdownBook(t)), "ints.md")
	assert.NoError(t, err)

	assert.Equal(t, "Integer subscripts", doc.Title)
	assert.Equal(t, 3, len(doc.Cases))

	first := doc.Cases[0]
	assert.Equal(t, "positive positions", first.Name)
	assert.Equal(t, "[1, 3]", first.Subscript)
	assert.Equal(t, 5, *first.Size)
	assert.Equal(t, "ints.md", first.File)
	assert.Equal(t, 9, first.Line)

	assert.Equal(t, "out_of_bounds", doc.Cases[1].Error)

	named := doc.Cases[2]
	assert.Zero(t, named.Size)
	assert.Equal(t, 2, len(named.Names))
	assert.Equal(t, location.Location{Values: []int{2, location.NAInteger}}, named.Expected())
}

func TestParseMarkdown_TitleFromHeading(t *testing.T) {
	src := testhelper.TrimIndent(t, `
	# Logical masks

	## recycled

	~~~yaml
	subscript: "TRUE"
	size: 2
	expect: [1, 2]
	~~~
	`)

	doc, err := ParseMarkdown(strings.NewReader(src), "lgl.md")
	assert.NoError(t, err)
	assert.Equal(t, "Logical masks", doc.Title)
	assert.Equal(t, 1, len(doc.Cases))
	assert.Equal(t, 3, doc.Cases[0].Line)
}

func TestParseYAML(t *testing.T) {
	doc, err := ParseYAML(strings.NewReader(yamlCasebookSource(t)), "ints.yaml")
	assert.NoError(t, err)
	assert.Equal(t, 3, len(doc.Cases))
	assert.Equal(t, "negative rejected", doc.Cases[0].Name)
	assert.Equal(t, "case 2", doc.Cases[1].Name)
	assert.False(t, *doc.Cases[0].ConvertNegative)
	assert.True(t, *doc.Cases[2].ConvertNegative)
}

func TestParse_InvalidCases(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		caller string
	}{
		{
			name:   "missing expectation",
			src:    "cases:\n  - subscript: \"1\"\n    size: 2\n",
			caller: testhelper.GetCaller(t),
		},
		{
			name:   "unknown error kind",
			src:    "cases:\n  - subscript: \"1\"\n    size: 2\n    error: boom\n",
			caller: testhelper.GetCaller(t),
		},
		{
			name:   "unknown key",
			src:    "cases:\n  - subscript: \"1\"\n    size: 2\n    expected: [1]\n",
			caller: testhelper.GetCaller(t),
		},
		{
			name:   "bad literal",
			src:    "cases:\n  - subscript: \"[1,\"\n    size: 2\n    expect: [1]\n",
			caller: testhelper.GetCaller(t),
		},
		{
			name:   "size and names disagree",
			src:    "cases:\n  - subscript: \"1\"\n    size: 3\n    names: [a]\n    expect: [1]\n",
			caller: testhelper.GetCaller(t),
		},
		{
			name:   "no container",
			src:    "cases:\n  - subscript: \"1\"\n    expect: [1]\n",
			caller: testhelper.GetCaller(t),
		},
		{
			name:   "expect and error",
			src:    "cases:\n  - subscript: \"1\"\n    size: 2\n    expect: [1]\n    error: shape\n",
			caller: testhelper.GetCaller(t),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML(strings.NewReader(tt.src), "bad.yaml")
			assert.IsError(t, err, ErrInvalidCase, tt.caller)
		})
	}
}

func TestParseMarkdown_InvalidFrontMatter(t *testing.T) {
	_, err := ParseMarkdown(strings.NewReader("---\nsize: 3\n"), "open.md")
	assert.IsError(t, err, ErrInvalidFrontMatter)
}

func TestRunCase(t *testing.T) {
	size := 3
	one := 1
	four := 4

	tests := []struct {
		name    string
		c       Case
		success bool
		message string
	}{
		{
			name:    "match",
			c:       Case{Subscript: "[1, NA]", Size: &size, Expect: []*int{&one, nil}},
			success: true,
		},
		{
			name:    "mismatch",
			c:       Case{Subscript: "1", Size: &size, Expect: []*int{&four}},
			message: "expected {4}, got {1}",
		},
		{
			name:    "expected error",
			c:       Case{Subscript: "4", Size: &size, Error: "out_of_bounds"},
			success: true,
		},
		{
			name:    "wrong error",
			c:       Case{Subscript: "[-1, 1]", Size: &size, Error: "out_of_bounds"},
			message: "expected out_of_bounds error, got mixed_sign",
		},
		{
			name:    "missing error",
			c:       Case{Subscript: "1", Size: &size, Error: "shape"},
			message: "expected shape error, got {1}",
		},
		{
			name:    "unexpected error",
			c:       Case{Subscript: "9", Size: &size, Expect: []*int{&one}},
			message: "unexpected error",
		},
		{
			name:    "names compared when listed",
			c:       Case{Subscript: "[x = 1]", Size: &size, Expect: []*int{&one}, ExpectNames: []string{"y"}},
			message: "expected {y = 1}, got {x = 1}",
		},
		{
			name:    "names ignored otherwise",
			c:       Case{Subscript: "[x = 1]", Size: &size, Expect: []*int{&one}},
			success: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RunCase(tt.c)
			assert.Equal(t, tt.success, result.Success, result.Message)
			assert.Contains(t, result.Message, tt.message)
		})
	}
}

func TestRunner_Run(t *testing.T) {
	dir := t.TempDir()
	testhelper.WriteFile(t, dir, "ints.md", markdownBook(t))
	testhelper.WriteFile(t, dir, "nested/ints.yaml", yamlCasebookSource(t))
	testhelper.WriteFile(t, dir, "notes.txt", "not a casebook")
	testhelper.WriteFile(t, dir, ".hidden/skip.yaml", "this: [is not parsed")

	var out bytes.Buffer

	runner := NewRunner(&out)
	runner.SetVerbose(true)

	summary, err := runner.Run(context.Background(), dir)
	assert.NoError(t, err)
	assert.Equal(t, 2, summary.TotalFiles)
	assert.Equal(t, 6, summary.TotalCases)
	assert.Equal(t, 6, summary.PassedCases)
	assert.Equal(t, 0, summary.FailedCases)
	assert.NotZero(t, summary.RunID)
	assert.Contains(t, out.String(), "Found 2 casebook files")
	assert.Contains(t, out.String(), "--- PASS: positive positions")
}

func TestRunner_RunPattern(t *testing.T) {
	dir := t.TempDir()
	path := testhelper.WriteFile(t, dir, "ints.yaml", yamlCasebookSource(t))

	runner := NewRunner(nil)
	assert.NoError(t, runner.SetRunPattern("^neg"))

	summary, err := runner.Run(context.Background(), path)
	assert.NoError(t, err)
	assert.Equal(t, 3, summary.TotalCases)
	assert.Equal(t, 1, summary.PassedCases)
	assert.Equal(t, 2, summary.SkippedCases)

	err = runner.SetRunPattern("[invalid")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid run pattern")
}

func TestRunner_Errors(t *testing.T) {
	dir := t.TempDir()
	runner := NewRunner(nil)

	_, err := runner.Run(context.Background(), filepath.Join(dir, "missing.md"))
	assert.Error(t, err)

	txt := testhelper.WriteFile(t, dir, "cases.txt", "")
	_, err = runner.Run(context.Background(), txt)
	assert.IsError(t, err, ErrUnsupportedFile)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	book := testhelper.WriteFile(t, dir, "ints.yaml", yamlCasebookSource(t))
	_, err = runner.Run(ctx, book)
	assert.IsError(t, err, context.Canceled)
}

func TestPrintSummary(t *testing.T) {
	color.NoColor = true

	size := 2
	failing := Case{Name: "too far", Subscript: "3", Size: &size, Expect: []*int{nil}, File: "x.md", Line: 7}

	doc := &Document{File: "x.md", Cases: []Case{failing}}

	summary, err := NewRunner(nil).RunDocuments(context.Background(), doc)
	assert.NoError(t, err)

	var out bytes.Buffer
	PrintSummary(&out, summary)

	assert.Contains(t, out.String(), "Cases: 1 total, 0 passed, 1 failed, 0 skipped")
	assert.Contains(t, out.String(), "too far (x.md:7)")
	assert.Contains(t, out.String(), "Some cases failed!")
}

func TestRunner_FilePatterns(t *testing.T) {
	dir := t.TempDir()
	testhelper.WriteFile(t, dir, "ints.md", markdownBook(t))
	testhelper.WriteFile(t, dir, "ints.yaml", yamlCasebookSource(t))

	runner := NewRunner(nil)
	assert.NoError(t, runner.SetFilePatterns([]string{"*.md"}))

	summary, err := runner.Run(context.Background(), dir)
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.TotalFiles)
	assert.Equal(t, 3, summary.TotalCases)

	assert.Error(t, runner.SetFilePatterns([]string{"["}))
}

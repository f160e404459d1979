// Package format renders resolved locations for the command line.
package format

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shibukawa/vecloc/location"
	"gopkg.in/yaml.v3"
)

var ErrInvalidOutputFormat = errors.New("invalid output format")

// OutputFormat represents the output format for resolved locations
type OutputFormat string

const (
	FormatTable    OutputFormat = "table"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatYAML     OutputFormat = "yaml"
	FormatMarkdown OutputFormat = "markdown"
)

// Result is one resolution to render.
type Result struct {
	Subscript string
	Size      int
	Location  location.Location
}

// Formatter formats resolution results
type Formatter struct {
	Format OutputFormat
}

// NewFormatter creates a new result formatter
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{
		Format: OutputFormat(strings.ToLower(string(format))),
	}
}

// Write formats result according to the configured format
func (f *Formatter) Write(result Result, output io.Writer) error {
	switch f.Format {
	case FormatTable:
		return f.formatAsTable(result, output)
	case FormatJSON:
		return f.formatAsJSON(result, output)
	case FormatCSV:
		return f.formatAsCSV(result, output)
	case FormatYAML:
		return f.formatAsYAML(result, output)
	case FormatMarkdown:
		return f.formatAsMarkdown(result, output)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidOutputFormat, f.Format)
	}
}

func header(loc location.Location) []string {
	if loc.HasNames() {
		return []string{"position", "name"}
	}

	return []string{"position"}
}

func row(loc location.Location, i int) []string {
	pos := "NA"
	if !loc.IsNA(i) {
		pos = strconv.Itoa(loc.Values[i])
	}

	if loc.HasNames() {
		return []string{pos, loc.Names[i]}
	}

	return []string{pos}
}

func footer(result Result) string {
	noun := "locations"
	if result.Location.Len() == 1 {
		noun = "location"
	}

	return fmt.Sprintf("%d %s, size %d", result.Location.Len(), noun, result.Size)
}

func (f *Formatter) formatAsTable(result Result, output io.Writer) error {
	loc := result.Location

	if loc.Len() == 0 {
		_, err := fmt.Fprintln(output, "No locations")
		return err
	}

	tw := tabwriter.NewWriter(output, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.ToUpper(strings.Join(header(loc), "\t")))

	for i := range loc.Values {
		fmt.Fprintln(tw, strings.Join(row(loc, i), "\t"))
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(output, "(%s)\n", footer(result))

	return err
}

func (f *Formatter) formatAsMarkdown(result Result, output io.Writer) error {
	loc := result.Location

	if loc.Len() == 0 {
		_, err := fmt.Fprintln(output, "No locations")
		return err
	}

	cols := header(loc)

	var sb strings.Builder

	sb.WriteString("| " + strings.Join(cols, " | ") + " |\n")
	sb.WriteString("|" + strings.Repeat(" --- |", len(cols)) + "\n")

	for i := range loc.Values {
		sb.WriteString("| " + strings.Join(row(loc, i), " | ") + " |\n")
	}

	fmt.Fprintf(&sb, "\n<!-- %s -->\n", footer(result))

	_, err := io.WriteString(output, sb.String())

	return err
}

type jsonEntry struct {
	Position *int   `json:"position"`
	Name     string `json:"name,omitempty"`
}

type jsonResult struct {
	Subscript string      `json:"subscript,omitempty"`
	Size      int         `json:"size"`
	Count     int         `json:"count"`
	Locations []jsonEntry `json:"locations"`
}

func (f *Formatter) formatAsJSON(result Result, output io.Writer) error {
	loc := result.Location

	entries := make([]jsonEntry, loc.Len())
	for i := range loc.Values {
		if !loc.IsNA(i) {
			entries[i].Position = &loc.Values[i]
		}

		if loc.HasNames() {
			entries[i].Name = loc.Names[i]
		}
	}

	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")

	return encoder.Encode(jsonResult{
		Subscript: result.Subscript,
		Size:      result.Size,
		Count:     loc.Len(),
		Locations: entries,
	})
}

func (f *Formatter) formatAsCSV(result Result, output io.Writer) error {
	writer := csv.NewWriter(output)
	loc := result.Location

	if err := writer.Write(header(loc)); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range loc.Values {
		if err := writer.Write(row(loc, i)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()

	return writer.Error()
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func stringNode(value string) *yaml.Node {
	node := scalarNode("!!str", value)
	// Literals such as [1, 2] must not be read back as YAML sequences.
	if strings.ContainsAny(value, "[]{},:#'\"") || value == "" {
		node.Style = yaml.DoubleQuotedStyle
	}

	return node
}

func intNode(v int) *yaml.Node {
	return scalarNode("!!int", strconv.Itoa(v))
}

func mappingNode(pairs ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: pairs}
}

// formatAsYAML builds the document node by node so keys and entries keep
// their order.
func (f *Formatter) formatAsYAML(result Result, output io.Writer) error {
	loc := result.Location

	entries := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}

	for i := range loc.Values {
		pos := scalarNode("!!null", "null")
		if !loc.IsNA(i) {
			pos = intNode(loc.Values[i])
		}

		entry := mappingNode(scalarNode("!!str", "position"), pos)
		if loc.HasNames() {
			entry.Content = append(entry.Content, scalarNode("!!str", "name"), stringNode(loc.Names[i]))
		}

		entries.Content = append(entries.Content, entry)
	}

	root := mappingNode()
	if result.Subscript != "" {
		root.Content = append(root.Content, scalarNode("!!str", "subscript"), stringNode(result.Subscript))
	}

	root.Content = append(root.Content,
		scalarNode("!!str", "size"), intNode(result.Size),
		scalarNode("!!str", "count"), intNode(loc.Len()),
		scalarNode("!!str", "locations"), entries,
	)

	encoder := yaml.NewEncoder(output)
	encoder.SetIndent(2)

	if err := encoder.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return fmt.Errorf("failed to marshal locations to YAML: %w", err)
	}

	return encoder.Close()
}

// IsValidOutputFormat checks if the output format is valid
func IsValidOutputFormat(format string) bool {
	f := OutputFormat(strings.ToLower(format))
	return f == FormatTable || f == FormatJSON || f == FormatCSV || f == FormatYAML || f == FormatMarkdown
}

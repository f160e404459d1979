package casebook

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

type frontMatter struct {
	Title    string `yaml:"title"`
	Defaults `yaml:",inline"`
}

// parseFrontMatter splits YAML front matter from markdown content. It
// returns the body and the number of lines the front matter occupied.
func parseFrontMatter(content string) (frontMatter, string, int, error) {
	var fm frontMatter

	if !strings.HasPrefix(content, "---\n") {
		return fm, content, 0, nil
	}

	endIndex := strings.Index(content[4:], "\n---")
	if endIndex == -1 {
		return fm, "", 0, ErrInvalidFrontMatter
	}

	endIndex += 4

	body := content[endIndex+4:]
	if err := yaml.Unmarshal([]byte(content[4:endIndex]), &fm); err != nil {
		return fm, "", 0, fmt.Errorf("%w: %w", ErrInvalidFrontMatter, err)
	}

	return fm, body, strings.Count(content[:endIndex+4], "\n"), nil
}

// ParseMarkdown reads a Markdown casebook. A level-1 heading names the
// casebook, every level-2 heading starts a case, and the fenced yaml block
// under it holds the case fields.
func ParseMarkdown(reader io.Reader, file string) (*Document, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	fm, body, offsetLines, err := parseFrontMatter(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	content := []byte(body)
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(content))

	document := &Document{Title: fm.Title, File: file, Defaults: fm.Defaults}

	var current *Case

	flush := func() error {
		if current == nil {
			return nil
		}

		current.apply(document.Defaults)

		if err := current.validate(); err != nil {
			return fmt.Errorf("%s:%d: %w", file, current.Line, err)
		}

		document.Cases = append(document.Cases, *current)
		current = nil

		return nil
	}

	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		switch n := node.(type) {
		case *ast.Heading:
			if n.Level == 1 {
				if document.Title == "" {
					document.Title = headingText(n, content)
				}

				continue
			}

			if n.Level != 2 {
				continue
			}

			if err := flush(); err != nil {
				return nil, err
			}

			current = &Case{
				Name: headingText(n, content),
				File: file,
				Line: lineOf(n, content) + offsetLines,
			}
		case *ast.FencedCodeBlock:
			if current == nil {
				continue
			}

			switch strings.ToLower(strings.TrimSpace(string(n.Language(content)))) {
			case "yaml", "yml":
			default:
				continue
			}

			var parsed Case
			if err := yaml.UnmarshalWithOptions(codeBlockContent(n, content), &parsed, yaml.Strict()); err != nil {
				return nil, fmt.Errorf("%s:%d: %w: %s: %w", file, current.Line, ErrInvalidCase, current.Name, err)
			}

			// The heading names the case unless the block overrides it.
			if parsed.Name == "" {
				parsed.Name = current.Name
			}

			parsed.File, parsed.Line = current.File, current.Line
			*current = parsed
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}

	return document, nil
}

// headingText extracts the plain text of a heading.
func headingText(heading ast.Node, content []byte) string {
	var result strings.Builder

	_ = ast.Walk(heading, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Text:
			result.Write(node.Segment.Value(content))
		case *ast.String:
			result.Write(node.Value)
		}

		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(result.String())
}

// lineOf returns the 1-based line a block node starts on.
func lineOf(node ast.Node, content []byte) int {
	if node.Lines() == nil || node.Lines().Len() == 0 {
		return 0
	}

	return bytes.Count(content[:node.Lines().At(0).Start], []byte("\n")) + 1
}

func codeBlockContent(block ast.Node, content []byte) []byte {
	var buf bytes.Buffer

	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(content))
	}

	return buf.Bytes()
}

package casebook

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

type yamlBook struct {
	Title    string `yaml:"title"`
	Defaults `yaml:",inline"`
	Cases    []Case `yaml:"cases"`
}

// ParseYAML reads a YAML casebook: optional defaults followed by a cases
// list. Unknown keys are rejected.
func ParseYAML(reader io.Reader, file string) (*Document, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	var book yamlBook
	if err := yaml.UnmarshalWithOptions(raw, &book, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", file, ErrInvalidCase, err)
	}

	document := &Document{Title: book.Title, File: file, Defaults: book.Defaults}

	for i, c := range book.Cases {
		if c.Name == "" {
			c.Name = fmt.Sprintf("case %d", i+1)
		}

		c.File = file
		c.apply(book.Defaults)

		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}

		document.Cases = append(document.Cases, c)
	}

	return document, nil
}

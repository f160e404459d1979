// Package casebook loads and runs resolution cases written in Markdown or
// YAML files.
package casebook

import (
	"errors"
	"fmt"

	"github.com/shibukawa/vecloc/literal"
	"github.com/shibukawa/vecloc/location"
)

// Sentinel errors
var (
	ErrInvalidFrontMatter = errors.New("invalid front matter")
	ErrInvalidCase        = errors.New("invalid case")
	ErrUnsupportedFile    = errors.New("unsupported casebook file")
)

// Defaults are applied to every case of a casebook that leaves the field
// unset.
type Defaults struct {
	Size            *int      `yaml:"size"`
	Names           []*string `yaml:"names"`
	ConvertNegative *bool     `yaml:"convert_negative"`
}

// Case is one resolution and its expected outcome. Expect and ExpectNames
// use null for a missing slot or name.
type Case struct {
	Name            string    `yaml:"name"`
	Subscript       string    `yaml:"subscript"`
	Size            *int      `yaml:"size"`
	Names           []*string `yaml:"names"`
	ConvertNegative *bool     `yaml:"convert_negative"`
	Expect          []*int    `yaml:"expect"`
	ExpectNames     []string  `yaml:"expect_names"`
	Error           string    `yaml:"error"`

	File string `yaml:"-"`
	Line int    `yaml:"-"`
}

// Document is a parsed casebook.
type Document struct {
	Title    string
	File     string
	Defaults Defaults
	Cases    []Case
}

// Input is a case ready to hand to the resolver.
type Input struct {
	Subscript location.Vector
	Size      int
	Names     location.Vector
	Options   location.Options
}

// apply fills unset fields from d.
func (c *Case) apply(d Defaults) {
	// size and names default together.
	if c.Size == nil && c.Names == nil {
		c.Size, c.Names = d.Size, d.Names
	}

	if c.ConvertNegative == nil {
		c.ConvertNegative = d.ConvertNegative
	}
}

func (c *Case) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidCase, c.Name, fmt.Sprintf(format, args...))
}

// validate checks the case once defaults have been applied.
func (c *Case) validate() error {
	if c.Subscript == "" {
		return c.errorf("subscript is required")
	}

	if _, err := literal.Parse(c.Subscript); err != nil {
		return c.errorf("%v", err)
	}

	if c.Size == nil && c.Names == nil {
		return c.errorf("size or names is required")
	}

	if c.Size != nil && c.Names != nil && *c.Size != len(c.Names) {
		return c.errorf("size %d doesn't match %d names", *c.Size, len(c.Names))
	}

	switch {
	case c.Error != "" && (c.Expect != nil || c.ExpectNames != nil):
		return c.errorf("expect and error are exclusive")
	case c.Error != "":
		if _, ok := location.ParseReason(c.Error); !ok {
			return c.errorf("unknown error kind %q", c.Error)
		}
	case c.Expect == nil:
		return c.errorf("expect or error is required")
	}

	if c.ExpectNames != nil && len(c.ExpectNames) != len(c.Expect) {
		return c.errorf("expect_names has %d entries for %d locations", len(c.ExpectNames), len(c.Expect))
	}

	return nil
}

// Input builds the resolver arguments.
func (c *Case) Input() (Input, error) {
	subscript, err := literal.Parse(c.Subscript)
	if err != nil {
		return Input{}, c.errorf("%v", err)
	}

	in := Input{Subscript: subscript, Options: location.DefaultOptions()}

	if c.ConvertNegative != nil {
		in.Options.ConvertNegative = *c.ConvertNegative
	}

	if c.Names != nil {
		values := make([]location.String, len(c.Names))
		for i, n := range c.Names {
			if n != nil {
				values[i] = location.Str(*n)
			}
		}

		in.Names = &location.Character{Values: values}
		in.Size = len(values)
	}

	if c.Size != nil {
		in.Size = *c.Size
	}

	return in, nil
}

// Expected returns the location the case expects.
func (c *Case) Expected() location.Location {
	values := make([]int, len(c.Expect))
	for i, v := range c.Expect {
		if v == nil {
			values[i] = location.NAInteger
		} else {
			values[i] = *v
		}
	}

	return location.Location{Values: values, Names: c.ExpectNames}
}

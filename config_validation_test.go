package vecloc

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLoadConfig_StrictMode_UnknownKeys(t *testing.T) {
	configPath := writeConfig(t, `
defaults:
  format: table
  unknown_default: true
unknown_key: "should cause error"
`)

	_, err := LoadConfig(configPath)
	assert.Error(t, err, "expected error for unknown keys in strict mode")
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	configPath := writeConfig(t, `
defaults:
  convert_negative: false
  format: markdown
containers:
  letters:
    size: 3
    names: [a, b, ~]
  numbers:
    size: 10
casebooks:
  dir: ./cases
  patterns: ["*.md"]
output:
  color: never
`)

	config, err := LoadConfig(configPath)
	assert.NoError(t, err)
	assert.False(t, *config.Defaults.ConvertNegative)
	assert.Equal(t, "markdown", config.Defaults.Format)
	assert.Equal(t, 2, len(config.Containers))
	assert.Zero(t, config.Containers["letters"].Names[2])
	assert.Equal(t, []string{"*.md"}, config.Casebooks.Patterns)
	assert.Equal(t, ColorNever, config.Output.Color)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{
			name:    "invalid format",
			content: "defaults:\n  format: xml\n",
			message: "defaults.format 'xml' is invalid",
		},
		{
			name:    "negative size",
			content: "containers:\n  c:\n    size: -1\n",
			message: "containers.c.size must be non-negative",
		},
		{
			name:    "names and names_file",
			content: "containers:\n  c:\n    names: [a]\n    names_file: names.txt\n",
			message: "names and names_file are exclusive",
		},
		{
			name:    "empty container",
			content: "containers:\n  c: {}\n",
			message: "size, names or names_file is required",
		},
		{
			name:    "size mismatch",
			content: "containers:\n  c:\n    size: 2\n    names: [a]\n",
			message: "size 2 doesn't match 1 names",
		},
		{
			name:    "bad pattern",
			content: "casebooks:\n  patterns: [\"[\"]\n",
			message: "invalid pattern",
		},
		{
			name:    "bad color",
			content: "output:\n  color: rainbow\n",
			message: "output.color 'rainbow' is invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			assert.IsError(t, err, ErrConfigValidation)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

// Package vecloc loads the project configuration shared by the vecloc
// command line and casebook runner.
package vecloc

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/shibukawa/vecloc/casebook"
	"github.com/shibukawa/vecloc/format"
	"github.com/shibukawa/vecloc/location"
)

// Config represents the vecloc configuration
type Config struct {
	Defaults   DefaultsConfig       `yaml:"defaults"`
	Containers map[string]Container `yaml:"containers"`
	Casebooks  CasebookConfig       `yaml:"casebooks"`
	Output     OutputConfig         `yaml:"output"`
}

// DefaultsConfig holds resolution defaults
type DefaultsConfig struct {
	ConvertNegative *bool  `yaml:"convert_negative"` // nil means true
	Format          string `yaml:"format"`
}

// Container describes a named container that subscripts can be resolved
// against. Names may come inline or from a file with one name per line.
type Container struct {
	Size      *int      `yaml:"size"`
	Names     []*string `yaml:"names"`
	NamesFile string    `yaml:"names_file"`
}

// CasebookConfig tells the check command where casebooks live
type CasebookConfig struct {
	Dir      string   `yaml:"dir"`
	Patterns []string `yaml:"patterns"`
}

// ColorMode controls colored console output
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// OutputConfig represents console output settings
type OutputConfig struct {
	Color ColorMode `yaml:"color"`
}

// ContainerSpec is a container ready to hand to the resolver.
type ContainerSpec struct {
	Size  int
	Names location.Vector // nil when the container is unnamed
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Strict mode rejects unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	applyDefaults(&config)
	expandConfigEnvVars(&config)

	return &config, nil
}

// validateConfig validates the configuration for common errors and inconsistencies
func validateConfig(config *Config) error {
	if config.Defaults.Format != "" && !format.IsValidOutputFormat(config.Defaults.Format) {
		return fmt.Errorf("%w: defaults.format '%s' is invalid: must be one of table, json, csv, yaml, markdown", ErrConfigValidation, config.Defaults.Format)
	}

	for name, container := range config.Containers {
		if container.Size != nil && *container.Size < 0 {
			return fmt.Errorf("%w: containers.%s.size must be non-negative, got %d", ErrConfigValidation, name, *container.Size)
		}

		if container.Names != nil && container.NamesFile != "" {
			return fmt.Errorf("%w: containers.%s: names and names_file are exclusive", ErrConfigValidation, name)
		}

		if container.Size == nil && container.Names == nil && container.NamesFile == "" {
			return fmt.Errorf("%w: containers.%s: size, names or names_file is required", ErrConfigValidation, name)
		}

		if container.Size != nil && container.Names != nil && *container.Size != len(container.Names) {
			return fmt.Errorf("%w: containers.%s: size %d doesn't match %d names", ErrConfigValidation, name, *container.Size, len(container.Names))
		}
	}

	for _, pattern := range config.Casebooks.Patterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("%w: casebooks.patterns: invalid pattern '%s'", ErrConfigValidation, pattern)
		}
	}

	switch config.Output.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: output.color '%s' is invalid: must be one of auto, always, never", ErrConfigValidation, config.Output.Color)
	}

	return nil
}

func boolPtr(b bool) *bool {
	return &b
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			ConvertNegative: boolPtr(true),
			Format:          string(format.FormatTable),
		},
		Containers: make(map[string]Container),
		Casebooks: CasebookConfig{
			Dir:      "./casebooks",
			Patterns: slices.Clone(casebook.DefaultPatterns),
		},
		Output: OutputConfig{
			Color: ColorAuto,
		},
	}
}

// applyDefaults applies default values to missing configuration fields
func applyDefaults(config *Config) {
	if config.Defaults.ConvertNegative == nil {
		config.Defaults.ConvertNegative = boolPtr(true)
	}

	if config.Defaults.Format == "" {
		config.Defaults.Format = string(format.FormatTable)
	} else {
		config.Defaults.Format = strings.ToLower(config.Defaults.Format)
	}

	if config.Containers == nil {
		config.Containers = make(map[string]Container)
	}

	if config.Casebooks.Dir == "" {
		config.Casebooks.Dir = "./casebooks"
	}

	if len(config.Casebooks.Patterns) == 0 {
		config.Casebooks.Patterns = slices.Clone(casebook.DefaultPatterns)
	}

	if config.Output.Color == "" {
		config.Output.Color = ColorAuto
	}
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

var (
	bracedEnvVar = regexp.MustCompile(`\$\{([^}]+)\}`)
	plainEnvVar  = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = bracedEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return plainEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}

// expandConfigEnvVars expands environment variables in path settings
func expandConfigEnvVars(config *Config) {
	for name, container := range config.Containers {
		container.NamesFile = expandEnvVars(container.NamesFile)
		config.Containers[name] = container
	}

	config.Casebooks.Dir = expandEnvVars(config.Casebooks.Dir)

	for i, pattern := range config.Casebooks.Patterns {
		config.Casebooks.Patterns[i] = expandEnvVars(pattern)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// ResolveOptions returns the resolver options the configuration selects.
func (c *Config) ResolveOptions() location.Options {
	opts := location.DefaultOptions()
	if c.Defaults.ConvertNegative != nil {
		opts.ConvertNegative = *c.Defaults.ConvertNegative
	}

	return opts
}

// Container looks up a named container and loads its names.
func (c *Config) Container(name string) (ContainerSpec, error) {
	container, ok := c.Containers[name]
	if !ok {
		return ContainerSpec{}, fmt.Errorf("%w: %s", ErrContainerNotFound, name)
	}

	names := container.Names

	if container.NamesFile != "" {
		loaded, err := readNamesFile(container.NamesFile)
		if err != nil {
			return ContainerSpec{}, err
		}

		names = loaded
	}

	var spec ContainerSpec

	if names != nil {
		values := make([]location.String, len(names))
		for i, n := range names {
			if n != nil {
				values[i] = location.Str(*n)
			}
		}

		spec.Names = &location.Character{Values: values}
		spec.Size = len(values)
	}

	if container.Size != nil {
		if names != nil && *container.Size != len(names) {
			return ContainerSpec{}, fmt.Errorf("%w: container %s: size %d doesn't match %d names", ErrConfigValidation, name, *container.Size, len(names))
		}

		spec.Size = *container.Size
	}

	return spec, nil
}

// readNamesFile reads one name per line. A trailing newline does not add
// an empty name.
func readNamesFile(path string) ([]*string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNamesFile, err)
	}

	text := strings.TrimSuffix(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if text == "" {
		return []*string{}, nil
	}

	lines := strings.Split(text, "\n")
	names := make([]*string, len(lines))

	for i := range lines {
		names[i] = &lines[i]
	}

	return names, nil
}

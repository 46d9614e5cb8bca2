// Package config loads the optional YAML settings file of the sparsemat CLI.
//
// Every field has a default; a missing file at the default location is not
// an error. Command-line flags override file values in cmd/sparsemat.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// DefaultPath is looked up in the working directory when -config is not given.
const DefaultPath = ".sparsemat.yaml"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds CLI settings.
type Config struct {
	// OutputDir is where result files are created.
	OutputDir string `yaml:"outputDir"`
	// ResultPrefix and ResultSuffix frame the result counter: results0.txt.
	ResultPrefix string `yaml:"resultPrefix"`
	ResultSuffix string `yaml:"resultSuffix"`
	// PruneZeros drops zero-valued entries from arithmetic results.
	PruneZeros bool `yaml:"pruneZeros"`
	// Color is one of auto, always, never.
	Color string `yaml:"color"`
	// ShowLimit caps the number of cells `show` renders as a grid.
	ShowLimit int `yaml:"showLimit"`

	Log Log `yaml:"log"`
}

// Log configures internal/logging.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		OutputDir:    ".",
		ResultPrefix: "results",
		ResultSuffix: ".txt",
		Color:        ColorAuto,
		ShowLimit:    400,
		Log:          Log{Level: "warn", Format: "text"},
	}
}

// Load reads path over the defaults. An empty path means DefaultPath, which
// may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	if err := Parse(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML into cfg, keeping fields the document does not set,
// and validates the result. Unknown keys are rejected.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return err
	}

	return cfg.Validate()
}

// Validate checks enumerated and bounded fields.
func (c *Config) Validate() error {
	c.Color = strings.ToLower(c.Color)
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of auto, always, never; got %q", c.Color)
	}
	if c.ResultPrefix == "" && c.ResultSuffix == "" {
		return errors.New("resultPrefix and resultSuffix cannot both be empty")
	}
	if strings.ContainsRune(c.ResultPrefix+c.ResultSuffix, os.PathSeparator) {
		return errors.New("resultPrefix and resultSuffix must not contain a path separator")
	}
	if c.ShowLimit < 0 {
		return fmt.Errorf("showLimit must be >= 0; got %d", c.ShowLimit)
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}

	return nil
}

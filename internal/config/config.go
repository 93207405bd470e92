// Package config holds the numy command configuration. A config file is YAML:
//
//	format: json
//	verbose: true
//	aliases:
//	  byte: u8
//	  double: f64
//
// Command line flags override values read from the file.
package config

import (
	"os"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Formats are the valid output formats.
var Formats = []string{"text", "json"}

// Config is the numy command configuration.
type Config struct {
	// Format is the output format, "text" or "json".
	Format string `yaml:"format"`
	// Verbose turns on debug logging to stderr.
	Verbose bool `yaml:"verbose"`
	// Aliases maps extra type names to the built in ones (i8 ... u64, int, uint, f32, f64).
	Aliases map[string]string `yaml:"aliases"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Format: "text"}
}

// Load reads the YAML file at path. Fields missing from the file keep their Default() values.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %q", path)
	}
	c, err := Parse(b)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %q", path)
	}
	return c, nil
}

// Parse decodes a YAML config.
func Parse(b []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, errors.Wrap(err, "bad yaml")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the format and that no alias is empty.
func (c Config) Validate() error {
	if !slices.Contains(Formats, c.Format) {
		return errors.Errorf("invalid format %q: must be one of %v", c.Format, Formats)
	}
	for k, v := range c.Aliases {
		if k == "" || v == "" {
			return errors.Errorf("alias %q => %q: neither side can be empty", k, v)
		}
	}
	return nil
}

package config

import (
	"fmt"
	"strings"
)

// Config is the decoded evreg configuration
type Config struct {
	Logging   Logging   `koanf:"logging" toml:"logging"`
	Output    Output    `koanf:"output" toml:"output"`
	Replay    Replay    `koanf:"replay" toml:"replay"`
	Signature Signature `koanf:"signature" toml:"signature"`
}

// Logging configures the global logger
type Logging struct {
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}

// Output configures report rendering
type Output struct {
	Format string `koanf:"format" toml:"format"`
	Width  int    `koanf:"width" toml:"width"`
	Styles string `koanf:"styles" toml:"styles"`
}

// Replay configures script replay
type Replay struct {
	ContinueOnError bool `koanf:"continue_on_error" toml:"continue_on_error"`
}

// Signature configures signature checks applied to scripts
type Signature struct {
	KnownTypes []string `koanf:"known_types" toml:"known_types"`
}

var validFormats = []string{"auto", "term", "terminal", "text", "plain", "json"}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	if c.Logging.Verbosity < 0 {
		return fmt.Errorf("logging.verbosity must be >= 0, got %d", c.Logging.Verbosity)
	}
	if c.Output.Width < 0 {
		return fmt.Errorf("output.width must be >= 0, got %d", c.Output.Width)
	}

	format := strings.ToLower(c.Output.Format)
	valid := false
	for _, f := range validFormats {
		if format == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("output.format must be one of %s, got %q", strings.Join(validFormats, ", "), c.Output.Format)
	}

	for _, t := range c.Signature.KnownTypes {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("signature.known_types must not contain empty entries")
		}
	}
	return nil
}

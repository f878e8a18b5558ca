// Package config loads settings for the json2xml command from a TOML file
// and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultInput is the input file read when none is named on the command line.
const DefaultInput = "fuente.txt"

// Config holds the settings of a translation run.
type Config struct {
	// Input file used when no argument is given.
	DefaultInput string `toml:"default_input"`

	// Maximum nesting depth of objects and arrays; 0 selects the default.
	MaxDepth int `toml:"max_depth"`

	// Accept comments and trailing commas in the input.
	AllowComments bool `toml:"jwcc"`

	// Log at debug level.
	Debug bool `toml:"debug"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{DefaultInput: DefaultInput}
}

// Load reads the TOML file at path over the defaults. Keys not known to
// Config are reported as an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %q: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) != 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("load config %q: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate reports whether the settings in c are usable.
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative (got %d)", c.MaxDepth)
	}
	if strings.TrimSpace(c.DefaultInput) == "" {
		return fmt.Errorf("default_input must not be empty")
	}
	return nil
}

// EnvVar describes an environment variable that overrides a setting.
type EnvVar struct {
	Name        string
	Description string
}

// Vars lists the environment variables read by ApplyEnv.
var Vars = []EnvVar{
	{"JSON2XML_DEFAULT_INPUT", "Input file used when none is given (default \"fuente.txt\")"},
	{"JSON2XML_MAX_DEPTH", "Maximum nesting depth of objects and arrays"},
	{"JSON2XML_JWCC", "Accept comments and trailing commas (e.g. JSON2XML_JWCC=1)"},
	{"JSON2XML_DEBUG", "Show additional debug information (e.g. JSON2XML_DEBUG=1)"},
}

var lookupEnv = os.LookupEnv

// ApplyEnv overrides the settings in c from the environment. A variable
// that is set but cannot be parsed is reported as an error.
func (c *Config) ApplyEnv() error {
	if v, ok := lookupEnv("JSON2XML_DEFAULT_INPUT"); ok && v != "" {
		c.DefaultInput = v
	}
	if v, ok := lookupEnv("JSON2XML_MAX_DEPTH"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid JSON2XML_MAX_DEPTH %q", v)
		}
		c.MaxDepth = n
	}
	for name, dst := range map[string]*bool{
		"JSON2XML_JWCC":  &c.AllowComments,
		"JSON2XML_DEBUG": &c.Debug,
	} {
		if v, ok := lookupEnv(name); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid %s %q: %w", name, v, err)
			}
			*dst = b
		}
	}
	return nil
}

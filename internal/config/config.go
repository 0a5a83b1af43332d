// Package config loads polyc settings from a TOML or YAML file and the
// environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file format.
type Format int

const (
	FormatAuto Format = iota // chosen by file extension
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	}
	return "unknown"
}

// Default values.
const (
	DefaultMemorySize = 1000
	DefaultLogLevel   = "warn"
)

// Config holds the settings of one polyc invocation.
type Config struct {
	MemorySize int    `toml:"memory_size" yaml:"memory_size"`
	LogLevel   string `toml:"log_level" yaml:"log_level"`
	Color      *bool  `toml:"color" yaml:"color"`
	ExtraTasks []int  `toml:"extra_tasks" yaml:"extra_tasks"`
	DumpBefore string `toml:"dump_before" yaml:"dump_before"`
	DumpAfter  string `toml:"dump_after" yaml:"dump_after"`

	// Path is the file the settings were read from, empty for defaults.
	Path string `toml:"-" yaml:"-"`
}

// DefaultPaths are tried in order when no file is named.
var DefaultPaths = []string{"polyc.toml", "polyc.yaml", "polyc.yml"}

// Default returns the settings used when no file exists.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the file at path. The format follows the extension; files
// without a known extension are read as TOML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	c, err := Parse(data, formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.Path = path
	return c, nil
}

// Parse decodes data, applies defaults and validates the result.
func Parse(data []byte, f Format) (*Config, error) {
	var c Config
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF; keep the zero Config.
		if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		md, err := toml.Decode(string(data), &c)
		if err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return nil, fmt.Errorf("unknown key %q", undec[0].String())
		}
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Discover loads path if it is not empty, else the first of DefaultPaths
// found in dir, else the defaults. Environment overrides are applied last.
func Discover(path, dir string) (*Config, error) {
	if path == "" {
		for _, p := range DefaultPaths {
			p = filepath.Join(dir, p)
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	c := Default()
	if path != "" {
		var err error
		if c, err = Load(path); err != nil {
			return nil, err
		}
	}
	if err := c.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return c, nil
}

// ApplyEnv applies POLYC_MEMORY_SIZE, POLYC_LOG_LEVEL and POLYC_COLOR as
// reported by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("POLYC_MEMORY_SIZE"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("POLYC_MEMORY_SIZE: %w", err)
		}
		c.MemorySize = n
	}
	if v, ok := lookup("POLYC_LOG_LEVEL"); ok {
		c.LogLevel = strings.TrimSpace(v)
	}
	if v, ok := lookup("POLYC_COLOR"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("POLYC_COLOR: %w", err)
		}
		c.Color = &b
	}
	return c.Validate()
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.MemorySize <= 0 {
		return fmt.Errorf("memory_size: must be positive, got %d", c.MemorySize)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	for _, t := range c.ExtraTasks {
		if t <= 0 {
			return fmt.Errorf("extra_tasks: invalid task %d", t)
		}
	}
	return nil
}

// UseColor reports whether colored diagnostics are allowed.
func (c *Config) UseColor() bool {
	return c.Color == nil || *c.Color
}

// Level returns the configured log level.
func (c *Config) Level() slog.Level {
	l, _ := ParseLevel(c.LogLevel)
	return l
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown level %q", s)
	}
	return l, nil
}

func (c *Config) applyDefaults() {
	if c.MemorySize == 0 {
		c.MemorySize = DefaultMemorySize
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	}
	return FormatAuto
}

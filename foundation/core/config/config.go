// File: config.go
// Title: Configuration Loading
// Description: Defines the typed configuration for the safecrt tools and
//              loads it from TOML or YAML files, chosen by file extension.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/safecrt/foundation/core/error"
	"github.com/msto63/safecrt/foundation/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config holds the complete tool configuration
type Config struct {
	Concat ConcatConfig `toml:"concat" yaml:"concat"`
	Log    LogConfig    `toml:"log" yaml:"log"`
	Time   TimeConfig   `toml:"time" yaml:"time"`

	// path of the file the configuration was read from, empty for defaults
	source string
}

// ConcatConfig holds the defaults applied to bounded string operations
type ConcatConfig struct {
	NullSlack bool `toml:"null_slack" yaml:"null_slack"`
	MaxLength int  `toml:"max_length" yaml:"max_length"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	File   string `toml:"file" yaml:"file"`
}

// TimeConfig holds clock rendering settings
type TimeConfig struct {
	Format string `toml:"format" yaml:"format"`
}

const (
	// DefaultLogLevel is used when log.level is not set
	DefaultLogLevel = "info"

	// DefaultLogFormat is used when log.format is not set
	DefaultLogFormat = "text"

	// DefaultTimeFormat is the strftime pattern used by "now"
	DefaultTimeFormat = "%Y-%m-%d %H:%M:%S"
)

// Default returns a configuration populated with default values
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, picking the format
// from the file extension
func Load(path string) (*Config, error) {
	return LoadWithFormat(path, FormatAuto)
}

// LoadWithFormat loads configuration from a file in the given format.
// Defaults fill unset keys and SAFECRT_* environment variables override
// file values. The result is validated before it is returned.
func LoadWithFormat(path string, format Format) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.Load")
	}

	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeIOError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	if format == FormatAuto {
		format = detectFormat(path)
	}

	cfg, err := Parse(data, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path).
			WithDetail("format", format.String())
	}
	cfg.source = path

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes configuration data in the given format and applies
// defaults. It does not read the environment or validate.
func Parse(data []byte, format Format) (*Config, error) {
	var cfg Config

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && len(bytes.TrimSpace(data)) > 0 {
			return nil, err
		}
	default:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, mdwerror.Newf("unknown config key %q", undecoded[0].String()).
				WithCode(mdwerror.CodeInvalidConfig).
				WithDetail("key", undecoded[0].String())
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Source returns the path the configuration was loaded from
func (c *Config) Source() string {
	return c.source
}

// ConcatOptions converts the concat section into stringx options
func (c *Config) ConcatOptions() stringx.Options {
	return stringx.Options{
		NullSlack: c.Concat.NullSlack,
		MaxLength: c.Concat.MaxLength,
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Concat.MaxLength == 0 {
		c.Concat.MaxLength = stringx.DefaultMaxLength
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Time.Format == "" {
		c.Time.Format = DefaultTimeFormat
	}
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

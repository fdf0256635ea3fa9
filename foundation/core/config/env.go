// File: env.go
// Title: Environment Overrides
// Description: Applies SAFECRT_* environment variables on top of file
//              configuration.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package config

import (
	"os"
	"strconv"

	mdwerror "github.com/msto63/safecrt/foundation/core/error"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "SAFECRT_"

// EnvConfigPath names the variable holding an explicit config file path
const EnvConfigPath = EnvPrefix + "CONFIG"

// envBinding maps one environment variable onto one config field
type envBinding struct {
	name string
	set  func(c *Config, value string) error
}

var envBindings = []envBinding{
	{"CONCAT_NULL_SLACK", func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		c.Concat.NullSlack = b
		return err
	}},
	{"CONCAT_MAX_LENGTH", func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		c.Concat.MaxLength = n
		return err
	}},
	{"LOG_LEVEL", func(c *Config, v string) error {
		c.Log.Level = v
		return nil
	}},
	{"LOG_FORMAT", func(c *Config, v string) error {
		c.Log.Format = v
		return nil
	}},
	{"LOG_FILE", func(c *Config, v string) error {
		c.Log.File = v
		return nil
	}},
	{"TIME_FORMAT", func(c *Config, v string) error {
		c.Time.Format = v
		return nil
	}},
}

// applyEnv overrides fields from SAFECRT_<SECTION>_<KEY> variables.
// Unset variables leave the field alone; an empty value is applied.
func (c *Config) applyEnv() error {
	for _, b := range envBindings {
		key := EnvPrefix + b.name
		value, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		if err := b.set(c, value); err != nil {
			return mdwerror.Wrap(err, "invalid environment override").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.applyEnv").
				WithDetail("variable", key).
				WithDetail("value", value)
		}
	}
	return nil
}

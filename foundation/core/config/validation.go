// File: validation.go
// Title: Configuration Validation
// Description: Checks a loaded configuration for values the tools cannot use.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package config

import (
	"strings"

	mdwerror "github.com/msto63/safecrt/foundation/core/error"
	mdwlog "github.com/msto63/safecrt/foundation/core/log"
)

// Validate reports the first invalid value as a coded error
func (c *Config) Validate() error {
	if c.Concat.MaxLength < 0 && c.Concat.MaxLength != NoMaxLength {
		return invalid("concat.max_length", c.Concat.MaxLength,
			"must be positive, or -1 to disable the limit")
	}

	if _, err := mdwlog.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level", c.Log.Level, err.Error())
	}

	if _, err := mdwlog.ParseFormat(c.Log.Format); err != nil {
		return invalid("log.format", c.Log.Format, err.Error())
	}

	if strings.TrimSpace(c.Time.Format) == "" {
		return invalid("time.format", c.Time.Format, "must not be empty")
	}

	return nil
}

// NoMaxLength in concat.max_length disables the upper bound on dmax
const NoMaxLength = -1

func invalid(key string, value interface{}, reason string) error {
	return mdwerror.Newf("invalid %s: %s", key, reason).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key).
		WithDetail("value", value)
}

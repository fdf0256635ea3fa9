// Package config loads the safecrt tool configuration.
//
// Package: config
// Title: Configuration Management
// Description: Typed configuration read from TOML or YAML files, completed
//              with defaults and overridden by SAFECRT_* environment
//              variables.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
//
// Keys:
//
//	[concat]
//	null_slack = false     # zero the tail after the terminator on success
//	max_length = 4096      # upper bound on dmax, -1 disables it
//
//	[log]
//	level  = "info"        # trace, debug, info, warn, error, audit
//	format = "text"        # json, text, console, logfmt
//	file   = ""            # append log output to this file
//
//	[time]
//	format = "%Y-%m-%d %H:%M:%S"
//
// Every key can be overridden with SAFECRT_<SECTION>_<KEY>, for example
// SAFECRT_CONCAT_NULL_SLACK=true or SAFECRT_LOG_LEVEL=debug.
//
// Usage:
//
//	cfg, err := config.LoadFromEnv()
//	if err != nil {
//		return err
//	}
//	st := stringx.CatWithOptions(buf, dmax, src, cfg.ConcatOptions())
//
// Discovery order for LoadFromEnv is SAFECRT_CONFIG, ./safecrt.toml,
// ./safecrt.yaml and $HOME/.config/safecrt/config.toml. Without any file
// the defaults are used.
package config

// File: discovery.go
// Title: Configuration File Discovery
// Description: Locates the configuration file from SAFECRT_CONFIG or a list
//              of conventional paths.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation of file discovery

package config

import (
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/safecrt/foundation/core/error"
)

// SearchPaths returns the conventional config file locations in the order
// they are tried
func SearchPaths() []string {
	paths := []string{
		"./safecrt.toml",
		"./safecrt.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "safecrt", "config.toml"))
	}
	return paths
}

// FindConfigFile returns the first existing file among paths
func FindConfigFile(paths []string) (string, error) {
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}

	return "", mdwerror.New("configuration file not found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", strings.Join(paths, ", "))
}

// LoadFromEnv loads the file named by SAFECRT_CONFIG, or else the first
// file found in SearchPaths. When neither exists the defaults are returned
// with environment overrides applied.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	if path, err := FindConfigFile(SearchPaths()); err == nil {
		return Load(path)
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

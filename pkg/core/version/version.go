// ============================================================================
// safecrt - Bounded C runtime string and clock helpers
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and its tools
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the safecrt packages
const (
	// Module version
	Module = "0.1.0"

	// Package versions
	Stringx = "0.1.0"
	Filex   = "0.1.0"
	Timex   = "0.1.0"
	CLI     = "0.1.0"
)

// Build metadata, set with -ldflags "-X .../version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given package name
func ComponentVersion(name string) string {
	switch name {
	case "stringx":
		return Stringx
	case "filex":
		return Filex
	case "timex":
		return Timex
	case "cli", "safecrt":
		return CLI
	default:
		return Module
	}
}

// Info returns a multi-line build description
func Info() string {
	return fmt.Sprintf("safecrt v%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s/%s\n",
		Module, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

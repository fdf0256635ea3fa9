// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so the logger can pick a
//              level and the CLI can decide how loudly to report a failure.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a rejected input that left all state untouched
	SeverityLow Severity = iota

	// SeverityMedium indicates a failure that callers can usually recover from
	SeverityMedium

	// SeverityHigh indicates a failure that may have left a buffer or file in
	// a partially written state
	SeverityHigh

	// SeverityCritical indicates a failure that points to memory corruption
	// or a broken invariant
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeOverlap, CodeInternal:
		return SeverityCritical
	case CodeInsufficientSpace, CodeTruncated, CodeIOError:
		return SeverityHigh
	case CodeNullPointer, CodeInvalidLength, CodeValueOutOfRange, CodeUnterminatedString,
		CodeInvalidInput, CodeInvalidMode, CodeInvalidConfig:
		return SeverityLow
	default:
		return SeverityMedium
	}
}

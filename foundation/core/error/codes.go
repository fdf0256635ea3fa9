// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across safecrt. Codes classify
//              buffer violations, file handle failures and configuration
//              problems so callers can branch on them without string matching.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation with buffer, file and config codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Buffer and string codes
	CodeNullPointer        Code = "NULL_POINTER"
	CodeInvalidLength      Code = "INVALID_LENGTH"
	CodeValueOutOfRange    Code = "VALUE_OUT_OF_RANGE"
	CodeUnterminatedString Code = "UNTERMINATED_STRING"
	CodeOverlap            Code = "OVERLAP"
	CodeInsufficientSpace  Code = "INSUFFICIENT_SPACE"
	CodeTruncated          Code = "TRUNCATED"

	// File handle codes
	CodeNotFound         Code = "NOT_FOUND"
	CodePermissionDenied Code = "PERMISSION_DENIED"
	CodeIOError          Code = "IO_ERROR"
	CodeInvalidMode      Code = "INVALID_MODE"

	// Configuration codes
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeNullPointer, CodeInvalidLength, CodeValueOutOfRange, CodeUnterminatedString,
		CodeOverlap, CodeInsufficientSpace, CodeTruncated,
		CodeNotFound, CodePermissionDenied, CodeIOError, CodeInvalidMode,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeNullPointer, CodeInvalidLength, CodeValueOutOfRange, CodeUnterminatedString,
		CodeOverlap, CodeInsufficientSpace, CodeTruncated:
		return "buffer"
	case CodeNotFound, CodePermissionDenied, CodeIOError, CodeInvalidMode:
		return "file"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code
func (c Code) ExitCode() int {
	switch c.Category() {
	case "buffer":
		return 2
	case "file":
		return 3
	case "configuration":
		return 4
	default:
		return 1
	}
}

// File: status.go
// Title: Outcome Codes for Bounded String Operations
// Description: Defines the closed set of outcomes returned by Cat and Cpy and
//              their mapping onto the foundation error codes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	mdwerror "github.com/msto63/safecrt/foundation/core/error"
)

// Status is the outcome of a bounded string operation. The zero value is
// success; every other value names exactly one rejected condition.
type Status int

const (
	StatusOK Status = iota
	StatusNullDestination
	StatusNullSource
	StatusZeroLength
	StatusExceedsMax
	StatusUnterminated
	StatusOverlap
	StatusNoSpace
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNullDestination:
		return "null destination"
	case StatusNullSource:
		return "null source"
	case StatusZeroLength:
		return "zero length"
	case StatusExceedsMax:
		return "length exceeds max"
	case StatusUnterminated:
		return "unterminated destination"
	case StatusOverlap:
		return "overlapping objects"
	case StatusNoSpace:
		return "not enough space for source"
	default:
		return "unknown status"
	}
}

// OK reports whether the operation succeeded
func (s Status) OK() bool {
	return s == StatusOK
}

// Code maps the status onto a foundation error code
func (s Status) Code() mdwerror.Code {
	switch s {
	case StatusNullDestination, StatusNullSource:
		return mdwerror.CodeNullPointer
	case StatusZeroLength:
		return mdwerror.CodeInvalidLength
	case StatusExceedsMax:
		return mdwerror.CodeValueOutOfRange
	case StatusUnterminated:
		return mdwerror.CodeUnterminatedString
	case StatusOverlap:
		return mdwerror.CodeOverlap
	case StatusNoSpace:
		return mdwerror.CodeInsufficientSpace
	case StatusOK:
		return ""
	default:
		return mdwerror.CodeInternal
	}
}

// Err converts a failed status into a coded error. It returns nil for StatusOK.
func (s Status) Err() error {
	if s == StatusOK {
		return nil
	}
	return mdwerror.New(s.String()).
		WithCode(s.Code()).
		WithOperation("stringx").
		WithDetail("status", int(s))
}

// Package error provides the coded error type used across safecrt.
//
// Package: error
// Title: safecrt Error Handling
// Description: This package implements a structured error type with codes,
//              severity, details and a captured stack. Buffer primitives
//              report a closed Status; Status.Err converts that status into
//              an *Error from this package so it can be logged and wrapped.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation with contextual errors and codes
//
// Usage:
//
//	import mdwerror "github.com/msto63/safecrt/foundation/core/error"
//
//	err := mdwerror.New("destination overlaps source").
//		WithCode(mdwerror.CodeOverlap).
//		WithOperation("stringx.Cat").
//		WithDetail("dmax", 16)
//
//	if mdwerror.HasCode(err, mdwerror.CodeOverlap) {
//		// handle overlap
//	}
package error

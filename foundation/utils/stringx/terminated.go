// File: terminated.go
// Title: NUL-Terminated Buffer Helpers
// Description: Bounded terminator scanning and address-range overlap tests
//              for byte slices holding NUL-terminated strings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	"bytes"
	"unsafe"
)

// Terminator marks the logical end of a string inside its buffer
const Terminator byte = 0

// Len returns the length of the NUL-terminated string in b, scanning at most
// max bytes. When no terminator is found the scan bound is returned, which
// is min(max, len(b)).
func Len(b []byte, max int) int {
	if max > len(b) {
		max = len(b)
	}
	if max <= 0 {
		return 0
	}
	if i := bytes.IndexByte(b[:max], Terminator); i >= 0 {
		return i
	}
	return max
}

// String returns the NUL-terminated string held in b. The slice end acts as
// the terminator when b contains no NUL byte.
func String(b []byte) string {
	return string(b[:Len(b, len(b))])
}

// Overlaps reports whether a and b share at least one byte of memory.
// Empty slices never overlap anything.
func Overlaps(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return aStart < bStart+uintptr(len(b)) && bStart < aStart+uintptr(len(a))
}

// sourceSpan returns the bytes of src an operation reads: the string and,
// when present inside the slice, its terminator.
func sourceSpan(src []byte) []byte {
	n := Len(src, len(src))
	if n < len(src) {
		n++
	}
	return src[:n]
}

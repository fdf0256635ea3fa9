// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides bounded, overlap-checked operations on
//              NUL-terminated strings held in caller-supplied byte buffers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation with Cat, Cpy and Printf

// Package stringx provides bounded operations on NUL-terminated strings.
//
// Package: stringx
// Title: Bounded String Buffers for safecrt
// Description: This package replaces unchecked append-to-buffer and
//              copy-to-buffer routines with variants that take a declared
//              destination capacity, detect overlapping source and
//              destination memory, and report every rejected input as a
//              Status instead of corrupting memory.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Overview
//
// A destination is a byte slice plus a declared capacity dmax, which counts
// the terminator slot and may not exceed len(dest). A source is a byte slice
// whose string ends at its first NUL byte, or at the end of the slice when it
// has none. Bytes outside dest[:dmax] and src are never touched.
//
// Outcomes
//
// Each call returns exactly one Status:
//
//	StatusOK               dest holds the result, terminated
//	StatusNullDestination  dest is nil
//	StatusNullSource       src is nil
//	StatusZeroLength       dmax <= 0
//	StatusExceedsMax       dmax > len(dest), or above Options.MaxLength
//	StatusUnterminated     no terminator in dest[:dmax] (Cat only)
//	StatusOverlap          dest[:dmax] and the bytes read from src intersect
//	StatusNoSpace          the result does not fit in dmax bytes
//
// Checks run in that order. All of them except StatusNoSpace leave dest
// untouched. Status.Err converts a failure into a coded error from the
// foundation error package.
//
// Overlap
//
// Overlap is decided by address-range intersection of dest[:dmax] and the
// source string including its terminator. Slices over different backing
// arrays never overlap; sub-slices of the same array overlap exactly when
// their byte ranges do. This rejects every layout where a byte-wise copy
// could read back bytes it already wrote.
//
// Usage Examples
//
//	dest := make([]byte, 16)
//	copy(dest, "foo")
//
//	if st := stringx.Cat(dest, len(dest), []byte("bar")); !st.OK() {
//	    return st.Err()
//	}
//	fmt.Println(stringx.String(dest)) // foobar
//
//	// zero the unused tail as well
//	stringx.CatWithOptions(dest, len(dest), []byte("baz"),
//	    stringx.Options{NullSlack: true})
//
//	// formatted print into a fixed buffer
//	var line [32]byte
//	stringx.Printf(line[:], "%s=%d", "dmax", 16)
//
// Thread Safety
//
// Functions hold no state. Callers must not mutate dest or src from another
// goroutine while a call is running.
package stringx

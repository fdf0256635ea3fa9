// File: concat.go
// Title: Bounded Concatenation and Copy
// Description: Implements destination-bounded, overlap-checked string
//              concatenation and copy on caller-supplied byte buffers. Every
//              rejected input is reported as a Status; nothing panics and
//              nothing is allocated.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation of Cat and Cpy

package stringx

// DefaultMaxLength is the conventional upper bound on a declared capacity
const DefaultMaxLength = 4 << 10

// Options adjusts the post-conditions of Cat and Cpy.
type Options struct {
	// NullSlack zeroes every byte after the terminator up to dmax on success.
	NullSlack bool

	// MaxLength rejects any dmax above it with StatusExceedsMax. Zero disables
	// the limit; dmax is still bounded by len(dest).
	MaxLength int
}

// Cat appends the NUL-terminated string in src to the NUL-terminated string
// in dest, treating dest[:dmax] as the whole destination.
//
// On success dest holds both strings followed by a terminator. On
// StatusNoSpace the prefix of src that fit has been copied and dest[dmax-1]
// is a terminator. Any other status leaves dest untouched.
func Cat(dest []byte, dmax int, src []byte) Status {
	return CatWithOptions(dest, dmax, src, Options{})
}

// CatWithOptions is Cat with explicit options.
func CatWithOptions(dest []byte, dmax int, src []byte, opts Options) Status {
	if st := checkArgs(dest, dmax, src, opts); st != StatusOK {
		return st
	}

	d := dest[:dmax]
	if Overlaps(d, sourceSpan(src)) {
		return StatusOverlap
	}

	end := Len(d, dmax)
	if end == dmax {
		return StatusUnterminated
	}

	return place(d[end:], src[:Len(src, len(src))], opts)
}

// Cpy copies the NUL-terminated string in src into dest[:dmax].
//
// Argument and overlap failures leave dest untouched. On StatusNoSpace
// dest[0] is set to the terminator so dest reads as the empty string.
func Cpy(dest []byte, dmax int, src []byte) Status {
	return CpyWithOptions(dest, dmax, src, Options{})
}

// CpyWithOptions is Cpy with explicit options.
func CpyWithOptions(dest []byte, dmax int, src []byte, opts Options) Status {
	if st := checkArgs(dest, dmax, src, opts); st != StatusOK {
		return st
	}

	d := dest[:dmax]
	if Overlaps(d, sourceSpan(src)) {
		return StatusOverlap
	}

	s := src[:Len(src, len(src))]
	if len(s) >= dmax {
		d[0] = Terminator
		return StatusNoSpace
	}

	return place(d, s, opts)
}

func checkArgs(dest []byte, dmax int, src []byte, opts Options) Status {
	switch {
	case dest == nil:
		return StatusNullDestination
	case src == nil:
		return StatusNullSource
	case dmax <= 0:
		return StatusZeroLength
	case dmax > len(dest):
		return StatusExceedsMax
	case opts.MaxLength > 0 && dmax > opts.MaxLength:
		return StatusExceedsMax
	}
	return StatusOK
}

// place writes s plus a terminator at the start of free. free always has at
// least one byte. When s does not fit, as much as fits is written and the
// last byte of free becomes the terminator.
func place(free, s []byte, opts Options) Status {
	if len(s) >= len(free) {
		n := copy(free[:len(free)-1], s)
		free[n] = Terminator
		return StatusNoSpace
	}

	n := copy(free, s)
	free[n] = Terminator
	if opts.NullSlack {
		clear(free[n+1:])
	}
	return StatusOK
}

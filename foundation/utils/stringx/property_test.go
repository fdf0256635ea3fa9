// File: property_test.go
// Title: Property Tests for Bounded Concatenation
// Description: Randomized checks of the invariants Cat must hold for any
//              input: exact results when the output fits, terminated
//              truncation when it does not, fixed statuses for invalid
//              arguments, overlap rejection and determinism.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial property test implementation

package stringx

import (
	"bytes"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestCatProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("disjoint buffers that fit produce the concatenation", prop.ForAll(
		func(d, s string, extra int) bool {
			dmax := len(d) + len(s) + 1 + extra
			dest := buffer(d, dmax)

			if Cat(dest, dmax, []byte(s)) != StatusOK {
				return false
			}
			return String(dest) == d+s && dest[len(d)+len(s)] == Terminator
		},
		gen.AlphaString(),
		gen.AlphaString(),
		gen.IntRange(0, 8),
	))

	properties.Property("results that do not fit report no space and stay terminated", prop.ForAll(
		func(d, s string, cut int) bool {
			if len(s) == 0 {
				return true
			}
			dmax := len(d) + 1 + cut%len(s)
			dest := buffer(d, dmax)

			if Cat(dest, dmax, []byte(s)) != StatusNoSpace {
				return false
			}
			return dest[dmax-1] == Terminator && String(dest) == (d + s)[:dmax-1]
		},
		gen.AlphaString(),
		gen.AlphaString(),
		gen.IntRange(0, 1000),
	))

	properties.Property("nil destination always reports null destination", prop.ForAll(
		func(dmax int, s string) bool {
			return Cat(nil, dmax, []byte(s)) == StatusNullDestination
		},
		gen.IntRange(-100, 100),
		gen.AlphaString(),
	))

	properties.Property("non-positive dmax reports zero length", prop.ForAll(
		func(dmax int, d string) bool {
			dest := buffer(d, len(d)+1)
			return Cat(dest, dmax, []byte("x")) == StatusZeroLength
		},
		gen.IntRange(-1000, 0),
		gen.AlphaString(),
	))

	properties.Property("destination without terminator reports unterminated", prop.ForAll(
		func(d string) bool {
			if len(d) == 0 {
				return true
			}
			return Cat([]byte(d), len(d), []byte("x")) == StatusUnterminated
		},
		gen.AlphaString(),
	))

	properties.Property("source nested in destination capacity is rejected untouched", prop.ForAll(
		func(d, s string, gap int) bool {
			off := len(d) + 1 + gap
			backing := make([]byte, off+len(s)+1)
			copy(backing, d)
			copy(backing[off:], s)
			snapshot := bytes.Clone(backing)

			if Cat(backing, len(backing), backing[off:]) != StatusOverlap {
				return false
			}
			return bytes.Equal(backing, snapshot)
		},
		gen.AlphaString(),
		gen.AlphaString(),
		gen.IntRange(0, 8),
	))

	properties.Property("destination nested in source string is rejected", prop.ForAll(
		func(s string, at int) bool {
			if len(s) == 0 {
				return true
			}
			backing := make([]byte, len(s)+8)
			copy(backing, s)
			i := at % len(s)

			return Cat(backing[i:], len(backing)-i, backing) == StatusOverlap
		},
		gen.AlphaString(),
		gen.IntRange(0, 1000),
	))

	properties.Property("repeated calls on fresh buffers are identical", prop.ForAll(
		func(d, s string, extra int) bool {
			dmax := len(d) + 1 + extra
			first := buffer(d, dmax)
			second := buffer(d, dmax)

			st1 := Cat(first, dmax, []byte(s))
			st2 := Cat(second, dmax, []byte(s))
			return st1 == st2 && bytes.Equal(first, second)
		},
		gen.AlphaString(),
		gen.AlphaString(),
		gen.IntRange(0, 16),
	))

	properties.TestingRun(t)
}

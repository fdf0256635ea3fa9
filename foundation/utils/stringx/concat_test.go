// File: concat_test.go
// Title: Unit Tests for Bounded Concatenation and Copy
// Description: Table-driven tests for Cat, Cpy, their options and the
//              overlap detection on shared backing arrays.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test implementation

package stringx

import (
	"bytes"
	"testing"
)

// buffer returns a zeroed buffer of size holding s at its start
func buffer(s string, size int) []byte {
	b := make([]byte, size)
	copy(b, s)
	return b
}

func TestCat(t *testing.T) {
	tests := []struct {
		name     string
		dest     []byte
		dmax     int
		src      []byte
		want     Status
		wantDest string
	}{
		{"fits with room", buffer("foo", 8), 8, []byte("bar"), StatusOK, "foobar"},
		{"fits exactly", buffer("foo", 7), 7, []byte("bar"), StatusOK, "foobar"},
		{"empty destination", buffer("", 4), 4, []byte("abc"), StatusOK, "abc"},
		{"empty source", buffer("foo", 4), 4, []byte{}, StatusOK, "foo"},
		{"source terminated early", buffer("foo", 8), 8, []byte("ba\x00zz"), StatusOK, "fooba"},
		{"dmax smaller than buffer", buffer("foo", 16), 7, []byte("bar"), StatusOK, "foobar"},
		{"one byte short", buffer("foo", 6), 6, []byte("bar"), StatusNoSpace, "fooba"},
		{"no room at all", buffer("foo", 4), 4, []byte("bar"), StatusNoSpace, "foo"},
		{"unterminated destination", []byte("abcd"), 4, []byte("x"), StatusUnterminated, "abcd"},
		{"terminator beyond dmax", buffer("abcd", 8), 4, []byte("x"), StatusUnterminated, "abcd"},
		{"nil destination", nil, 8, []byte("bar"), StatusNullDestination, ""},
		{"nil destination wins over everything", nil, 0, nil, StatusNullDestination, ""},
		{"nil source", buffer("foo", 8), 8, nil, StatusNullSource, "foo"},
		{"zero dmax", buffer("foo", 8), 0, []byte("bar"), StatusZeroLength, "foo"},
		{"negative dmax", buffer("foo", 8), -3, []byte("bar"), StatusZeroLength, "foo"},
		{"dmax beyond buffer", buffer("foo", 4), 5, []byte("b"), StatusExceedsMax, "foo"},
		{"empty non-nil destination", []byte{}, 1, []byte("b"), StatusExceedsMax, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cat(tt.dest, tt.dmax, tt.src)
			if got != tt.want {
				t.Fatalf("Cat() = %v; want %v", got, tt.want)
			}
			if tt.dest != nil && String(tt.dest) != tt.wantDest {
				t.Errorf("dest = %q; want %q", String(tt.dest), tt.wantDest)
			}
		})
	}
}

func TestCatNoSpaceTerminatesAtCapacity(t *testing.T) {
	dest := buffer("foo", 10)
	dest[8], dest[9] = 'Q', 'Q'

	if got := Cat(dest, 6, []byte("barbaz")); got != StatusNoSpace {
		t.Fatalf("Cat() = %v; want %v", got, StatusNoSpace)
	}
	if dest[5] != Terminator {
		t.Errorf("dest[dmax-1] = %q; want terminator", dest[5])
	}
	if !bytes.Equal(dest[:6], []byte("fooba\x00")) {
		t.Errorf("dest[:6] = %q; want %q", dest[:6], "fooba\x00")
	}
	if dest[8] != 'Q' || dest[9] != 'Q' {
		t.Error("Cat() wrote beyond dmax")
	}
}

func TestCatRejectionsLeaveDestinationUntouched(t *testing.T) {
	backing := buffer("foo", 12)
	copy(backing[4:], "bar")
	snapshot := bytes.Clone(backing)

	cases := map[string]func() Status{
		"zero length":  func() Status { return Cat(backing, 0, []byte("x")) },
		"exceeds max":  func() Status { return Cat(backing, 13, []byte("x")) },
		"overlap":      func() Status { return Cat(backing, 12, backing[4:]) },
		"unterminated": func() Status { return Cat(backing[:3], 3, []byte("x")) },
		"nil source":   func() Status { return Cat(backing, 12, nil) },
	}

	for name, call := range cases {
		t.Run(name, func(t *testing.T) {
			if got := call(); got.OK() {
				t.Fatalf("call succeeded with %v", got)
			}
			if !bytes.Equal(backing, snapshot) {
				t.Errorf("backing = %q; want %q", backing, snapshot)
			}
		})
	}
}

func TestCatOverlap(t *testing.T) {
	t.Run("source inside destination capacity", func(t *testing.T) {
		backing := buffer("foo", 16)
		copy(backing[8:], "bar")
		if got := Cat(backing, 16, backing[8:]); got != StatusOverlap {
			t.Errorf("Cat() = %v; want %v", got, StatusOverlap)
		}
	})

	t.Run("source in unused tail after terminator", func(t *testing.T) {
		backing := buffer("foo", 16)
		copy(backing[12:], "ab")
		if got := Cat(backing[:14], 14, backing[12:]); got != StatusOverlap {
			t.Errorf("Cat() = %v; want %v", got, StatusOverlap)
		}
	})

	t.Run("source runs into destination", func(t *testing.T) {
		backing := buffer("abcdef", 16)
		// src terminator at index 6 is the first byte of dest
		if got := Cat(backing[6:], 10, backing); got != StatusOverlap {
			t.Errorf("Cat() = %v; want %v", got, StatusOverlap)
		}
	})

	t.Run("same buffer", func(t *testing.T) {
		backing := buffer("foo", 8)
		if got := Cat(backing, 8, backing); got != StatusOverlap {
			t.Errorf("Cat() = %v; want %v", got, StatusOverlap)
		}
	})

	t.Run("source before destination and disjoint", func(t *testing.T) {
		backing := buffer("bar", 16)
		copy(backing[8:], "foo")
		if got := Cat(backing[8:], 8, backing[:8]); got != StatusOK {
			t.Fatalf("Cat() = %v; want %v", got, StatusOK)
		}
		if String(backing[8:]) != "foobar" {
			t.Errorf("dest = %q; want %q", String(backing[8:]), "foobar")
		}
	})

	t.Run("adjacent with dmax as boundary", func(t *testing.T) {
		backing := make([]byte, 8)
		copy(backing[4:], "bar")
		if got := Cat(backing, 4, backing[4:]); got != StatusOK {
			t.Fatalf("Cat() = %v; want %v", got, StatusOK)
		}
		if String(backing) != "bar" {
			t.Errorf("dest = %q; want %q", String(backing), "bar")
		}
	})
}

func TestCatWithOptions(t *testing.T) {
	t.Run("null slack clears tail", func(t *testing.T) {
		dest := []byte("foo\x00XYZW")
		if got := CatWithOptions(dest, 8, []byte("ab"), Options{NullSlack: true}); got != StatusOK {
			t.Fatalf("CatWithOptions() = %v; want %v", got, StatusOK)
		}
		if !bytes.Equal(dest, []byte("fooab\x00\x00\x00")) {
			t.Errorf("dest = %q", dest)
		}
	})

	t.Run("tail kept without null slack", func(t *testing.T) {
		dest := []byte("foo\x00XYZW")
		if got := Cat(dest, 8, []byte("ab")); got != StatusOK {
			t.Fatalf("Cat() = %v; want %v", got, StatusOK)
		}
		if !bytes.Equal(dest, []byte("fooab\x00ZW")) {
			t.Errorf("dest = %q", dest)
		}
	})

	t.Run("null slack stays inside dmax", func(t *testing.T) {
		dest := []byte("a\x00XXXXXX")
		if got := CatWithOptions(dest, 4, []byte("b"), Options{NullSlack: true}); got != StatusOK {
			t.Fatalf("CatWithOptions() = %v; want %v", got, StatusOK)
		}
		if !bytes.Equal(dest, []byte("ab\x00\x00XXXX")) {
			t.Errorf("dest = %q", dest)
		}
	})

	t.Run("max length", func(t *testing.T) {
		dest := buffer("foo", 8)
		if got := CatWithOptions(dest, 8, []byte("b"), Options{MaxLength: 4}); got != StatusExceedsMax {
			t.Errorf("CatWithOptions() = %v; want %v", got, StatusExceedsMax)
		}
		if got := CatWithOptions(dest, 4, []byte(""), Options{MaxLength: 4}); got != StatusOK {
			t.Errorf("CatWithOptions() = %v; want %v", got, StatusOK)
		}
	})
}

func TestCpy(t *testing.T) {
	tests := []struct {
		name     string
		dest     []byte
		dmax     int
		src      []byte
		want     Status
		wantDest string
	}{
		{"fits", buffer("old", 8), 8, []byte("hello"), StatusOK, "hello"},
		{"fits exactly", buffer("", 6), 6, []byte("hello"), StatusOK, "hello"},
		{"empty source", buffer("old", 4), 4, []byte{}, StatusOK, ""},
		{"no space empties destination", buffer("old", 8), 5, []byte("hello"), StatusNoSpace, ""},
		{"nil destination", nil, 4, []byte("a"), StatusNullDestination, ""},
		{"nil source", buffer("old", 4), 4, nil, StatusNullSource, "old"},
		{"zero dmax", buffer("old", 4), 0, []byte("a"), StatusZeroLength, "old"},
		{"dmax beyond buffer", buffer("old", 4), 9, []byte("a"), StatusExceedsMax, "old"},
		{"unterminated destination is fine", []byte("xxxx"), 4, []byte("ab"), StatusOK, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cpy(tt.dest, tt.dmax, tt.src)
			if got != tt.want {
				t.Fatalf("Cpy() = %v; want %v", got, tt.want)
			}
			if tt.dest != nil && String(tt.dest) != tt.wantDest {
				t.Errorf("dest = %q; want %q", String(tt.dest), tt.wantDest)
			}
		})
	}
}

func TestCpyOverlap(t *testing.T) {
	backing := buffer("hello", 16)
	snapshot := bytes.Clone(backing)

	if got := Cpy(backing[2:], 8, backing); got != StatusOverlap {
		t.Fatalf("Cpy() = %v; want %v", got, StatusOverlap)
	}
	if !bytes.Equal(backing, snapshot) {
		t.Errorf("backing = %q; want %q", backing, snapshot)
	}
}

func TestCpyNullSlack(t *testing.T) {
	dest := []byte("abcdefgh")
	if got := CpyWithOptions(dest, 8, []byte("xy"), Options{NullSlack: true}); got != StatusOK {
		t.Fatalf("CpyWithOptions() = %v; want %v", got, StatusOK)
	}
	if !bytes.Equal(dest, []byte("xy\x00\x00\x00\x00\x00\x00")) {
		t.Errorf("dest = %q", dest)
	}
}

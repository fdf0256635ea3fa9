// File: mode.go
// Title: Open Mode Parsing
// Description: Parses C stdio open modes ("r", "w+", "ab" ...) into os
//              open flags.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package filex

import (
	"os"

	mdwerror "github.com/msto63/safecrt/foundation/core/error"
)

// Mode is a parsed open mode
type Mode struct {
	raw    string
	flag   int
	read   bool
	write  bool
	append bool
}

// ParseMode parses a stdio mode string. The primary letter is one of r, w
// or a, optionally followed by + and b in either order.
func ParseMode(mode string) (Mode, error) {
	m := Mode{raw: mode}
	if len(mode) == 0 || len(mode) > 3 {
		return Mode{}, invalidMode(mode)
	}

	switch mode[0] {
	case 'r':
		m.read = true
	case 'w':
		m.write = true
		m.flag = os.O_CREATE | os.O_TRUNC
	case 'a':
		m.write = true
		m.append = true
		m.flag = os.O_CREATE | os.O_APPEND
	default:
		return Mode{}, invalidMode(mode)
	}

	var plus, binary bool
	for _, c := range mode[1:] {
		switch {
		case c == '+' && !plus:
			plus = true
		case c == 'b' && !binary:
			binary = true
		default:
			return Mode{}, invalidMode(mode)
		}
	}

	if plus {
		m.read, m.write = true, true
	}

	switch {
	case m.read && m.write:
		m.flag |= os.O_RDWR
	case m.write:
		m.flag |= os.O_WRONLY
	default:
		m.flag |= os.O_RDONLY
	}

	return m, nil
}

// String returns the mode as given to ParseMode
func (m Mode) String() string {
	return m.raw
}

// CanRead reports whether the mode allows reading
func (m Mode) CanRead() bool {
	return m.read
}

// CanWrite reports whether the mode allows writing
func (m Mode) CanWrite() bool {
	return m.write
}

// Append reports whether every write goes to the end of the file
func (m Mode) Append() bool {
	return m.append
}

// Flag returns the os.OpenFile flags for the mode
func (m Mode) Flag() int {
	return m.flag
}

func invalidMode(mode string) error {
	return mdwerror.Newf("invalid open mode %q", mode).
		WithCode(mdwerror.CodeInvalidMode).
		WithOperation("filex.ParseMode").
		WithDetail("mode", mode)
}

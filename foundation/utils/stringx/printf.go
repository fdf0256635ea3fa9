// File: printf.go
// Title: Bounded Formatted Print
// Description: snprintf-style formatting into a caller-supplied buffer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	"fmt"
)

// Printf formats according to format into dest, writing at most len(dest)-1
// bytes followed by a terminator. It returns the length the complete output
// would have had, so a result >= len(dest) means the output was truncated.
// A nil or empty dest returns -1.
func Printf(dest []byte, format string, args ...interface{}) int {
	if len(dest) == 0 {
		return -1
	}

	out := fmt.Appendf(nil, format, args...)
	n := copy(dest[:len(dest)-1], out)
	dest[n] = Terminator
	return len(out)
}

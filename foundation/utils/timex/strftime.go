// File: strftime.go
// Title: Bounded strftime
// Description: Renders a time with C strftime conversions into a caller
//              supplied, NUL-terminated buffer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package timex

import (
	"fmt"
	"strings"

	"github.com/msto63/safecrt/foundation/utils/stringx"
)

// Strftime formats t into dest following format and terminates the result.
// It returns the number of bytes written, not counting the terminator, or 0
// when dest is empty or too small; dest then holds the empty string.
//
// Supported conversions: %Y %m %d %H %M %S %y %b %B %a %A %j %p %I %Z %z
// %e and %%. Unknown conversions are copied unchanged.
func Strftime(dest []byte, format string, t Time) int {
	out := FormatStrftime(t, format)

	src := make([]byte, len(out)+1)
	copy(src, out)

	if st := stringx.Cpy(dest, len(dest), src); !st.OK() {
		return 0
	}
	return len(out)
}

// FormatStrftime renders t with strftime conversions into a string
func FormatStrftime(t Time, format string) string {
	tm := t.Std()

	var b strings.Builder
	b.Grow(len(format) * 2)

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+1 == len(format) {
			b.WriteByte('%')
			break
		}
		i++

		switch format[i] {
		case 'Y':
			fmt.Fprintf(&b, "%04d", tm.Year())
		case 'y':
			fmt.Fprintf(&b, "%02d", tm.Year()%100)
		case 'm':
			fmt.Fprintf(&b, "%02d", int(tm.Month()))
		case 'd':
			fmt.Fprintf(&b, "%02d", tm.Day())
		case 'e':
			fmt.Fprintf(&b, "%2d", tm.Day())
		case 'H':
			fmt.Fprintf(&b, "%02d", tm.Hour())
		case 'I':
			h := tm.Hour() % 12
			if h == 0 {
				h = 12
			}
			fmt.Fprintf(&b, "%02d", h)
		case 'M':
			fmt.Fprintf(&b, "%02d", tm.Minute())
		case 'S':
			fmt.Fprintf(&b, "%02d", tm.Second())
		case 'j':
			fmt.Fprintf(&b, "%03d", tm.YearDay())
		case 'p':
			if tm.Hour() < 12 {
				b.WriteString("AM")
			} else {
				b.WriteString("PM")
			}
		case 'b':
			b.WriteString(tm.Month().String()[:3])
		case 'B':
			b.WriteString(tm.Month().String())
		case 'a':
			b.WriteString(tm.Weekday().String()[:3])
		case 'A':
			b.WriteString(tm.Weekday().String())
		case 'Z':
			name, _ := tm.Zone()
			b.WriteString(name)
		case 'z':
			_, offset := tm.Zone()
			sign := byte('+')
			if offset < 0 {
				sign = '-'
				offset = -offset
			}
			fmt.Fprintf(&b, "%c%02d%02d", sign, offset/3600, offset%3600/60)
		case '%':
			b.WriteByte('%')
		default:
			b.WriteByte('%')
			b.WriteByte(format[i])
		}
	}

	return b.String()
}

// File: format.go
// Title: Named Time Layouts
// Description: Common time layouts addressable by name.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package timex

import (
	"strings"
	"time"
)

// Common time layouts
const (
	// ISO formats
	ISO8601     = "2006-01-02T15:04:05Z07:00"
	ISO8601Date = "2006-01-02"
	ISO8601Time = "15:04:05"

	// Business formats
	BusinessDateTime = "2006-01-02 15:04:05"

	// Short formats
	ShortDateTime = "01/02/2006 15:04"

	// Compact formats
	CompactDateTime = "20060102150405"

	// Log formats
	LogTimestamp = "2006-01-02 15:04:05.000"
)

var namedLayouts = map[string]string{
	"iso8601":      ISO8601,
	"iso8601-date": ISO8601Date,
	"iso8601-time": ISO8601Time,
	"business":     BusinessDateTime,
	"short":        ShortDateTime,
	"compact":      CompactDateTime,
	"log":          LogTimestamp,
}

// Format formats a time using the specified format name. Names not listed
// above are used as a Go layout.
func Format(t time.Time, format string) string {
	if layout, ok := namedLayouts[format]; ok {
		return t.Format(layout)
	}
	return t.Format(format)
}

// Render formats t with either strftime conversions, when format contains
// a %, or a named layout
func Render(t Time, format string) string {
	if strings.Contains(format, "%") {
		return FormatStrftime(t, format)
	}
	return Format(t.Std(), format)
}

// File: clock.go
// Title: Wall Clock Snapshot
// Description: Captures the time of day as seconds, milliseconds and zone.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package timex

import (
	"time"
)

// Time is a wall clock reading with millisecond resolution
type Time struct {
	Seconds  int64          // seconds since the Unix epoch
	Millis   uint16         // 0..999
	Location *time.Location // zone used when rendering; nil means UTC
}

// now is replaced in tests
var now = time.Now

// GetTimeOfDay returns the current local time
func GetTimeOfDay() Time {
	return FromTime(now())
}

// FromTime converts a time.Time, truncating below the millisecond
func FromTime(t time.Time) Time {
	return Time{
		Seconds:  t.Unix(),
		Millis:   uint16(t.Nanosecond() / int(time.Millisecond)),
		Location: t.Location(),
	}
}

// Millisecond returns the millisecond part of t
func Millisecond(t Time) uint16 {
	return t.Millis
}

// Std converts t back to a time.Time in its location
func (t Time) Std() time.Time {
	loc := t.Location
	if loc == nil {
		loc = time.UTC
	}
	return time.Unix(t.Seconds, int64(t.Millis)*int64(time.Millisecond)).In(loc)
}

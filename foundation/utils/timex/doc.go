// Package timex reads the wall clock and renders it into bounded buffers.
//
// Package: timex
// Title: Clock and Time Formatting
// Description: GetTimeOfDay snapshots the clock with millisecond
//              resolution. Strftime renders C strftime conversions into a
//              caller supplied buffer with the same bounds checks as
//              stringx.Cpy, and Format maps layout names onto Go layouts.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
//
// Usage:
//
//	buf := make([]byte, 32)
//	n := timex.Strftime(buf, "%Y-%m-%d %H:%M:%S", timex.GetTimeOfDay())
//	if n == 0 {
//		// buf too small
//	}
//	fmt.Println(string(buf[:n]))
package timex

// Package log provides structured logging for the safecrt tools.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with immutable contextual loggers,
//              pluggable output formats and integration with the coded
//              foundation errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
//
// Features:
// - JSON, text, console and logfmt output
// - Six levels; audit entries bypass the level filter
// - Persistent fields and a per-run correlation ID
// - LogError picks the level from the error severity
// - Timers that log the duration of an operation
//
// Usage:
//
//	import mdwlog "github.com/msto63/safecrt/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatText).
//		WithCorrelationID(runID)
//
//	st := stringx.Cat(buf, len(buf), src)
//	logger.Debug("concat", mdwlog.Fields{"status": st.String(), "dmax": len(buf)})
//	logger.LogError(st.Err())
//
// Thread Safety:
//
// A Logger is safe for concurrent use. Clones made by the With* methods
// share the output and serialize their writes to it.
package log

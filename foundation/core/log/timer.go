// File: timer.go
// Title: Performance Timer
// Description: Measures how long an operation took and logs the result.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
	}
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop logs the elapsed time at debug level. Later calls return 0 and log
// nothing.
func (t *Timer) Stop() time.Duration {
	return t.finish(nil)
}

// StopWithError logs err and the elapsed time at error level
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(err)
}

func (t *Timer) finish(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()

	if t.logger == nil {
		return elapsed
	}

	entryFields := t.fields.Merge(Fields{"operation": t.operation})
	level, message := LevelDebug, t.operation+" completed"
	if err != nil {
		level, message = LevelError, t.operation+" failed"
	}

	t.logger.mutex.RLock()
	if !level.ShouldLog(t.logger.level) {
		t.logger.mutex.RUnlock()
		return elapsed
	}
	entry := NewEntry(level, message)
	entry.Logger = t.logger.name
	entry.CorrelationID = t.logger.correlationID
	entry.Error = err
	entry.Duration = elapsed
	for k, v := range t.logger.contextFields {
		entry.Fields[k] = v
	}
	for k, v := range entryFields {
		entry.Fields[k] = v
	}
	formatter, output, writeMu := t.logger.formatter, t.logger.output, t.logger.writeMu
	t.logger.mutex.RUnlock()

	t.logger.write(formatter, output, writeMu, entry)
	return elapsed
}

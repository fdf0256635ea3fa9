// Package filex provides a stdio-style file handle and whole-file helpers.
//
// Package: filex
// Title: File Handle Utilities
// Description: File wraps *os.File behind open modes borrowed from C stdio
//              ("r", "w", "a", each optionally with "+" and "b"). Writes
//              are buffered, and every failure is reported as a coded
//              foundation error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
//
// # Modes
//
//	r   read; the file must exist
//	w   write; create or truncate
//	a   append; create if missing, every write goes to the end
//	r+  read and write; the file must exist
//	w+  read and write; create or truncate
//	a+  read anywhere, append writes
//
// A trailing or embedded "b" is accepted and ignored.
//
// # Errors
//
// Unknown modes and operations the mode does not allow return
// CodeInvalidMode. Missing files return CodeNotFound, permission problems
// CodePermissionDenied and every other OS failure CodeIOError.
//
// # Usage
//
//	f, err := filex.Open("run.log", "a")
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//	logger := mdwlog.New().WithOutput(f)
package filex

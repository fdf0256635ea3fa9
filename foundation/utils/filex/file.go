// File: file.go
// Title: Buffered File Handle
// Description: Implements File, a stdio-style handle over *os.File with a
//              buffered writer, mode checks and coded errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package filex

import (
	"bufio"
	"errors"
	"io"
	"os"
	"sync"

	mdwerror "github.com/msto63/safecrt/foundation/core/error"
)

// Whence selects the origin of a Seek
type Whence int

const (
	SeekSet Whence = io.SeekStart
	SeekCur Whence = io.SeekCurrent
	SeekEnd Whence = io.SeekEnd
)

// DefaultPerm is used for files created by Open
const DefaultPerm os.FileMode = 0o644

// bufferSize of the write buffer
const bufferSize = 8 * 1024

// File is an open file. Writes are buffered until Flush, Seek, Read or
// Close. A File is safe for concurrent use.
type File struct {
	mu   sync.Mutex
	name string
	mode Mode
	f    *os.File
	w    *bufio.Writer
}

// Open opens name with a stdio mode string
func Open(name, mode string) (*File, error) {
	m, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(name, m.Flag(), DefaultPerm)
	if err != nil {
		return nil, osError(err, "filex.Open", name)
	}

	file := &File{name: name, mode: m, f: f}
	if m.CanWrite() {
		file.w = bufio.NewWriterSize(f, bufferSize)
	}
	return file, nil
}

// Name returns the name the file was opened with
func (f *File) Name() string {
	return f.name
}

// Mode returns the open mode
func (f *File) Mode() Mode {
	return f.mode
}

// Read reads up to len(p) bytes. It returns io.EOF at end of file.
func (f *File) Read(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.check("filex.Read", f.mode.CanRead()); err != nil {
		return 0, err
	}
	if err := f.flushLocked(); err != nil {
		return 0, err
	}

	n, err := f.f.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, osError(err, "filex.Read", f.name)
	}
	return n, err
}

// Write buffers p for writing
func (f *File) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.check("filex.Write", f.mode.CanWrite()); err != nil {
		return 0, err
	}

	n, err := f.w.Write(p)
	if err != nil {
		return n, osError(err, "filex.Write", f.name)
	}
	return n, nil
}

// Seek flushes pending writes and sets the offset for the next Read or
// Write. It returns the new offset from the start of the file.
func (f *File) Seek(offset int64, whence Whence) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.check("filex.Seek", true); err != nil {
		return 0, err
	}
	if whence != SeekSet && whence != SeekCur && whence != SeekEnd {
		return 0, mdwerror.Newf("invalid whence %d", whence).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("filex.Seek").
			WithDetail("file", f.name)
	}
	if err := f.flushLocked(); err != nil {
		return 0, err
	}

	pos, err := f.f.Seek(offset, int(whence))
	if err != nil {
		return 0, osError(err, "filex.Seek", f.name)
	}
	return pos, nil
}

// Flush writes buffered data to the file
func (f *File) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.check("filex.Flush", true); err != nil {
		return err
	}
	return f.flushLocked()
}

// Close flushes pending writes and closes the file. Closing twice returns
// an error.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.check("filex.Close", true); err != nil {
		return err
	}

	flushErr := f.flushLocked()
	closeErr := f.f.Close()
	f.f = nil
	f.w = nil

	if flushErr != nil {
		return flushErr
	}
	if closeErr != nil {
		return osError(closeErr, "filex.Close", f.name)
	}
	return nil
}

func (f *File) check(op string, allowed bool) error {
	if f.f == nil {
		return mdwerror.Wrap(os.ErrClosed, "file is closed").
			WithCode(mdwerror.CodeIOError).
			WithOperation(op).
			WithDetail("file", f.name)
	}
	if !allowed {
		return mdwerror.Newf("operation not permitted in mode %q", f.mode).
			WithCode(mdwerror.CodeInvalidMode).
			WithOperation(op).
			WithDetail("file", f.name)
	}
	return nil
}

func (f *File) flushLocked() error {
	if f.w == nil || f.w.Buffered() == 0 {
		return nil
	}
	if err := f.w.Flush(); err != nil {
		return osError(err, "filex.Flush", f.name)
	}
	return nil
}

// osError converts an os error into a coded error
func osError(err error, op, name string) *mdwerror.Error {
	code := mdwerror.CodeIOError
	switch {
	case errors.Is(err, os.ErrNotExist):
		code = mdwerror.CodeNotFound
	case errors.Is(err, os.ErrPermission):
		code = mdwerror.CodePermissionDenied
	}
	return mdwerror.Wrap(err, op+" failed").
		WithCode(code).
		WithOperation(op).
		WithDetail("file", name)
}

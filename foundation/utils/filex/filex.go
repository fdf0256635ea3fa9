// File: filex.go
// Title: Whole-File Helpers
// Description: Existence checks and whole-file reads used by the command
//              line tools.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package filex

import (
	"io"
	"os"
	"sync"
)

// ===============================
// File Existence
// ===============================

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ===============================
// File Reading
// ===============================

var readBufferPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, bufferSize)
		return &b
	},
}

// ReadFile reads the whole file through a File handle
func ReadFile(path string) ([]byte, error) {
	f, err := Open(path, "rb")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bufp := readBufferPool.Get().(*[]byte)
	defer readBufferPool.Put(bufp)
	buf := *bufp

	var out []byte
	for {
		n, err := f.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	if out == nil {
		out = []byte{}
	}
	return out, nil
}

// ReadString reads the entire file and returns its contents as a string
func ReadString(path string) (string, error) {
	content, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// AppendString appends content to path, creating the file if necessary
func AppendString(path, content string) error {
	f, err := Open(path, "a")
	if err != nil {
		return err
	}
	if _, err := f.Write([]byte(content)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

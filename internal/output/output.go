// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package output implements the clipboard and file export used by sessions.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
)

// ErrNoClipboard is reported by SystemClipboard when the platform has no
// usable clipboard utility.
var ErrNoClipboard = errors.New("system clipboard is not available")

// SystemClipboard writes to the operating system clipboard.
// It implements session.Clipboard.
type SystemClipboard struct{}

// WriteAll replaces the contents of the system clipboard with text.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrNoClipboard
	}
	return clipboard.WriteAll(text)
}

// A DirExporter writes exported files into a directory.
// It implements session.Exporter.
type DirExporter struct {
	Dir string // if empty, the current directory

	// Written is the path of the most recent file written, if any.
	Written string
}

// Export writes data to the named file in e.Dir, creating the directory if
// necessary. The file is written to a temporary name and renamed into place,
// so an existing file is never left partly written.
func (e *DirExporter) Export(name string, data []byte) error {
	if name == "" || filepath.Base(name) != name {
		return fmt.Errorf("invalid export name %q", name)
	}
	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	_, werr := f.Write(data)
	cerr := f.Close()
	if err := errors.Join(werr, cerr); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return err
	}
	path := filepath.Join(dir, name)
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	e.Written = path
	return nil
}

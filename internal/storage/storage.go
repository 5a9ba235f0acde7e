package storage

import (
	"context"
	"errors"
	"io"
)

// Package storage contains the managed file storage root and its naming rules.
// All uploaded files live under a single root directory; nothing in this
// package touches paths outside of it.

var (
	// ErrInvalidName reports an original filename that cannot be mapped to a
	// storage name (empty, or carrying path-traversal segments).
	ErrInvalidName = errors.New("invalid file name")
	// ErrOutsideRoot reports a location that resolves outside the storage root.
	ErrOutsideRoot = errors.New("location outside storage root")
)

// FileInfo describes a file under the storage root.
type FileInfo struct {
	// Name is the storage-relative file name.
	Name string
	// Path is the absolute location under the root, authoritative for retrieval.
	Path string
	Size int64
}

// Storage is the capability for reading and writing files under the managed
// root. Save takes a name already assigned by AssignFileName; Open and
// Delete accept either absolute locations or root-relative names and refuse
// anything that escapes the root.
type Storage interface {
	// Save writes the reader's bytes to the named file under the root,
	// overwriting any existing file at that name.
	Save(ctx context.Context, name string, r io.Reader) (FileInfo, error)
	// Open resolves the location against the root and opens it for reading.
	Open(ctx context.Context, location string) (io.ReadCloser, FileInfo, error)
	// Delete removes the file at the location. A missing file is not an error.
	Delete(ctx context.Context, location string) error
	// Root returns the absolute storage root directory.
	Root() string
}

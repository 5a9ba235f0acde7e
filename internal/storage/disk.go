package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"docstore/internal/config"
)

// diskStorage implements Storage on a local directory tree through an afero
// filesystem. It is safe for concurrent use: every write target is
// independently randomized by the namer, so concurrent saves never conflict.
type diskStorage struct {
	fs   afero.Fs
	root string
}

// NewDisk creates a Storage rooted at cfg.Root, creating the directory if it
// is missing. Pass afero.NewOsFs() for real disk access; tests use MemMapFs.
func NewDisk(fs afero.Fs, cfg config.StorageConfig) (Storage, error) {
	if cfg.Root == "" {
		return nil, fmt.Errorf("storage root is required")
	}

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve storage root: %w", err)
	}
	if err := fs.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}

	return &diskStorage{fs: fs, root: root}, nil
}

func (d *diskStorage) Root() string { return d.root }

// resolve maps a stored location (absolute or root-relative) to an absolute
// path and verifies it lies inside the root. Records inserted through the
// metadata-only path may carry foreign locations; those are refused here.
func (d *diskStorage) resolve(location string) (string, error) {
	if location == "" {
		return "", ErrInvalidName
	}
	p := filepath.Clean(location)
	if !filepath.IsAbs(p) {
		p = filepath.Join(d.root, p)
	}

	rel, err := filepath.Rel(d.root, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, location)
	}
	return p, nil
}

// Save writes the bytes to root/name, overwriting if present.
func (d *diskStorage) Save(ctx context.Context, name string, r io.Reader) (FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return FileInfo{}, err
	}
	p, err := d.resolve(name)
	if err != nil {
		return FileInfo{}, err
	}

	f, err := d.fs.Create(p)
	if err != nil {
		return FileInfo{}, fmt.Errorf("create %s: %w", name, err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return FileInfo{}, fmt.Errorf("write %s: %w", name, err)
	}

	return FileInfo{Name: name, Path: p, Size: n}, nil
}

// Open resolves the location and opens it for reading.
func (d *diskStorage) Open(ctx context.Context, location string) (io.ReadCloser, FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, FileInfo{}, err
	}
	p, err := d.resolve(location)
	if err != nil {
		return nil, FileInfo{}, err
	}

	f, err := d.fs.Open(p)
	if err != nil {
		return nil, FileInfo{}, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, FileInfo{}, err
	}

	return f, FileInfo{Name: filepath.Base(p), Path: p, Size: st.Size()}, nil
}

// Delete removes the file at the location, ignoring missing files.
func (d *diskStorage) Delete(ctx context.Context, location string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := d.resolve(location)
	if err != nil {
		return err
	}

	if err := d.fs.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", location, err)
	}
	return nil
}

// Package fsutil adapts the local OS filesystem to the small interfaces the
// opener and listing packages consume.
package fsutil

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// OSFileSystem implements filesystem operations using the local OS filesystem primitives.
// It uses internal function fields to enable testability via functional injection.
type OSFileSystem struct {
	stat    func(name string) (os.FileInfo, error)
	readDir func(name string) ([]os.DirEntry, error)
	open    func(name string) (io.ReadCloser, error)
}

// NewOSFileSystem creates a new OSFileSystem with real OS syscalls.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{
		stat:    os.Stat,
		readDir: os.ReadDir,
		open: func(name string) (io.ReadCloser, error) {
			return os.Open(name)
		},
	}
}

// Stat returns file info for a path (follows symlinks).
func (r *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	info, err := r.stat(path)
	if err != nil {
		return nil, &StatError{Path: path, Cause: err}
	}
	return info, nil
}

// ReadFile reads the whole file.
func (r *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return r.ReadHead(path, 0)
}

// ReadHead reads at most limit bytes from the start of a file.
// A limit of 0 reads the entire file.
func (r *OSFileSystem) ReadHead(path string, limit int64) ([]byte, error) {
	if limit < 0 {
		return nil, &InvalidLimitError{Value: limit}
	}

	file, err := r.open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Cause: err}
	}
	defer file.Close()

	var reader io.Reader = file
	if limit > 0 {
		reader = io.LimitReader(file, limit)
	}
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, &ReadError{Path: path, Cause: err}
	}
	return content, nil
}

// ListDir lists the contents of a directory.
// Entries whose info vanished between the read and the stat are skipped.
func (r *OSFileSystem) ListDir(path string) ([]os.FileInfo, error) {
	entries, err := r.readDir(path)
	if err != nil {
		return nil, &ListError{Path: path, Cause: err}
	}

	infos := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, &ListError{Path: path, Cause: err}
		}
		infos = append(infos, info)
	}

	return infos, nil
}

// UserHomeDir returns the current user's home directory.
func (r *OSFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// Package fs defines the filesystem abstraction used by img-rotator.
// It provides the FS interface and the FileInfo type shared across the system.
package fs

import (
	"context"
	"time"
)

type FileInfo struct {
	Path  string
	Size  int64
	MTime time.Time
	IsDir bool
}

type FS interface {
	Stat(path string) (FileInfo, error)
	ReadDir(path string) ([]FileInfo, error)
	Rename(ctx context.Context, oldPath, newPath string) error
	Remove(ctx context.Context, path string) error

	// FreeSpace reports the bytes available to unprivileged writers at path.
	FreeSpace(path string) (uint64, error)

	// IsMountPoint reports whether path is the root of a mounted filesystem.
	IsMountPoint(path string) (bool, error)
}

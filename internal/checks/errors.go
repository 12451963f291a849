package checks

import (
	"fmt"
	"time"
)

// MountError reports a location that is not the root of a mounted
// filesystem.
type MountError struct {
	Path string
	Err  error
}

func (e *MountError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s is not a mounted filesystem: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s is not a mounted filesystem", e.Path)
}

func (e *MountError) Unwrap() error { return e.Err }

// DirectoryMissingError reports a required directory that does not exist.
type DirectoryMissingError struct {
	Path string
	Err  error
}

func (e *DirectoryMissingError) Error() string {
	return fmt.Sprintf("required directory missing: %s", e.Path)
}

func (e *DirectoryMissingError) Unwrap() error { return e.Err }

// InsufficientSpaceError reports free space below the configured floor.
type InsufficientSpaceError struct {
	Path      string
	Required  uint64
	Available uint64
}

func (e *InsufficientSpaceError) Error() string {
	return fmt.Sprintf("insufficient space at %s: %d bytes available, %d bytes required", e.Path, e.Available, e.Required)
}

// LockHeldError reports that another run holds the advisory lock.
type LockHeldError struct {
	Path string
	Age  time.Duration
}

func (e *LockHeldError) Error() string {
	return fmt.Sprintf("another run is in progress (lock %s, age %v)", e.Path, e.Age.Round(time.Second))
}

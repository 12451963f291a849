// Package blockcopy duplicates a block device into an image file.
// The orchestrator only depends on the Copier interface; the concrete
// implementation streams the device and syncs before reporting success.
package blockcopy

import (
	"context"
	"fmt"
)

// Progress receives the number of bytes copied so far. Implementations must
// not block; it is called from the copy loop.
type Progress func(copied int64)

type Copier interface {
	Copy(ctx context.Context, srcDevice, dstPath string, progress Progress) error
}

// CopyError reports a failed device copy with both endpoints.
type CopyError struct {
	Source string
	Dest   string
	Err    error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copying %s to %s: %v", e.Source, e.Dest, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }

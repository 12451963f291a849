package checks

import (
	"fmt"
	"os"
	"time"

	"github.com/rmarek/img-rotator/internal/logging"
)

// Lock is an advisory lock file making the single-instance assumption
// explicit: two runs against the same working directory refuse to overlap.
type Lock struct {
	path string
}

// AcquireLock creates the lock file exclusively. A lock older than maxAge is
// considered left over from a dead run and is removed first.
func AcquireLock(path string, maxAge time.Duration, log logging.Logger) (*Lock, error) {
	if info, err := os.Stat(path); err == nil {
		age := time.Since(info.ModTime())
		if age <= maxAge {
			return nil, &LockHeldError{Path: path, Age: age}
		}
		log.Warn("removing stale lock file %s (age %v)", path, age.Round(time.Second))
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("removing stale lock %s: %w", path, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		if os.IsExist(err) {
			return nil, &LockHeldError{Path: path}
		}
		return nil, fmt.Errorf("creating lock file %s: %w", path, err)
	}
	defer f.Close()

	hostname, _ := os.Hostname()
	content := fmt.Sprintf("pid=%d\nhost=%s\ntime=%s\n", os.Getpid(), hostname, time.Now().Format(time.RFC3339))
	if _, err := f.WriteString(content); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("writing lock file %s: %w", path, err)
	}

	return &Lock{path: path}, nil
}

// Release removes the lock file.
func (l *Lock) Release() error {
	return os.Remove(l.path)
}

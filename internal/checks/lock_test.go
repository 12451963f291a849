package checks

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rmarek/img-rotator/internal/logging"
)

func TestAcquireAndRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".backup.lock")

	lock, err := AcquireLock(path, time.Hour, logging.StdLogger{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("lock file missing: %v", err)
	}

	if err := lock.Release(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("lock file still present after release: %v", err)
	}
}

func TestAcquireWhileHeld(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".backup.lock")

	lock, err := AcquireLock(path, time.Hour, logging.StdLogger{})
	if err != nil {
		t.Fatal(err)
	}
	defer lock.Release()

	_, err = AcquireLock(path, time.Hour, logging.StdLogger{})
	var held *LockHeldError
	if !errors.As(err, &held) {
		t.Fatalf("err = %v, want LockHeldError", err)
	}
}

func TestAcquireRecoversStaleLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".backup.lock")
	if err := os.WriteFile(path, []byte("pid=1\n"), 0o640); err != nil {
		t.Fatal(err)
	}
	old := time.Now().Add(-2 * time.Hour)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatal(err)
	}

	lock, err := AcquireLock(path, time.Hour, logging.StdLogger{})
	if err != nil {
		t.Fatalf("stale lock not recovered: %v", err)
	}
	defer lock.Release()
}

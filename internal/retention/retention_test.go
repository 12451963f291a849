package retention

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rmarek/img-rotator/internal/logging"
)

const retentionDays = 7

func writeAged(t *testing.T, dir, name string, ageDays int, now time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("log"), 0o644); err != nil {
		t.Fatal(err)
	}
	mtime := now.Add(-time.Duration(ageDays) * 24 * time.Hour)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}
}

func exists(t *testing.T, dir, name string) bool {
	t.Helper()
	_, err := os.Stat(filepath.Join(dir, name))
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	return err == nil
}

// Only files strictly older than the retention window go away; a file aged
// exactly the window stays.
func TestSweepAgeBoundaries(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	writeAged(t, dir, "backup_06-30-2024.log", 0, now)
	writeAged(t, dir, "backup_06-24-2024.log", retentionDays-1, now)
	writeAged(t, dir, "backup_06-23-2024.log", retentionDays, now)
	writeAged(t, dir, "backup_06-22-2024.log", retentionDays+1, now)

	s := New(nil, logging.StdLogger{})
	s.now = func() time.Time { return now }

	deleted := s.Sweep(context.Background(), dir, retentionDays)
	if deleted != 1 {
		t.Fatalf("deleted = %d, want 1", deleted)
	}

	if !exists(t, dir, "backup_06-30-2024.log") ||
		!exists(t, dir, "backup_06-24-2024.log") ||
		!exists(t, dir, "backup_06-23-2024.log") {
		t.Fatal("a file inside the retention window was deleted")
	}
	if exists(t, dir, "backup_06-22-2024.log") {
		t.Fatal("file older than the window survived")
	}
}

func TestSweepMatchesSummariesToo(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	writeAged(t, dir, "backup_summary_06-01-2024.txt", retentionDays+3, now)
	writeAged(t, dir, "notes.txt", retentionDays+3, now)
	writeAged(t, dir, "sys_backup_06-01-2024.img", retentionDays+3, now)

	s := New(nil, logging.StdLogger{})
	s.now = func() time.Time { return now }

	if deleted := s.Sweep(context.Background(), dir, retentionDays); deleted != 1 {
		t.Fatalf("deleted = %d, want 1", deleted)
	}
	if exists(t, dir, "backup_summary_06-01-2024.txt") {
		t.Fatal("aged summary survived")
	}
	if !exists(t, dir, "notes.txt") || !exists(t, dir, "sys_backup_06-01-2024.img") {
		t.Fatal("non-log file was deleted")
	}
}

// A missing directory is a warning, not a failure.
func TestSweepMissingDir(t *testing.T) {
	s := New(nil, logging.StdLogger{})
	if deleted := s.Sweep(context.Background(), filepath.Join(t.TempDir(), "nope"), retentionDays); deleted != 0 {
		t.Fatalf("deleted = %d, want 0", deleted)
	}
}

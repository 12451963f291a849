package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

func TestStatAndReadDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.img")
	if err := os.WriteFile(path, []byte("12345"), 0o644); err != nil {
		t.Fatal(err)
	}

	fsys := New()

	info, err := fsys.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size != 5 || info.IsDir {
		t.Fatalf("info = %+v", info)
	}

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Path != path {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestRenameAndRemove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	if err := os.WriteFile(src, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	fsys := New()
	ctx := context.Background()

	if err := fsys.Rename(ctx, src, dst); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(dst); err != nil {
		t.Fatal(err)
	}

	if err := fsys.Remove(ctx, dst); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Fatalf("file survived remove: %v", err)
	}
}

func TestRemoveMissingIsPermanent(t *testing.T) {
	fsys := New()
	err := fsys.Remove(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v", err)
	}
}

func TestIsTransient(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{syscall.EBUSY, true},
		{syscall.EAGAIN, true},
		{syscall.ETIMEDOUT, true},
		{syscall.ENOENT, false},
		{errors.New("other"), false},
	}
	for _, tc := range cases {
		if got := isTransient(tc.err); got != tc.want {
			t.Fatalf("isTransient(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestFreeSpace(t *testing.T) {
	avail, err := New().FreeSpace(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if avail == 0 {
		t.Fatal("free space reported as zero for a writable temp dir")
	}
}

func TestIsMountPoint(t *testing.T) {
	fsys := New()

	mounted, err := fsys.IsMountPoint("/")
	if err != nil {
		t.Fatal(err)
	}
	if !mounted {
		t.Fatal("/ not detected as a mount point")
	}

	sub := filepath.Join(t.TempDir(), "plain")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	mounted, err = fsys.IsMountPoint(sub)
	if err != nil {
		t.Fatal(err)
	}
	if mounted {
		t.Fatal("plain directory detected as a mount point")
	}

	if _, err := fsys.IsMountPoint(filepath.Join(sub, "missing")); err == nil {
		t.Fatal("expected error for missing path")
	}
}

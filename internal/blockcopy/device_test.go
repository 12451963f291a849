package blockcopy

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCopySmallSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "source")
	dst := filepath.Join(dir, "dest.img")

	payload := bytes.Repeat([]byte("block"), 1000)
	if err := os.WriteFile(src, payload, 0o644); err != nil {
		t.Fatal(err)
	}

	var last int64
	c := &DeviceCopier{BufferSize: 512}
	if err := c.Copy(context.Background(), src, dst, func(n int64) { last = n }); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("destination differs from source (%d vs %d bytes)", len(got), len(payload))
	}
	if last != int64(len(payload)) {
		t.Fatalf("final progress = %d, want %d", last, len(payload))
	}
}

func TestCopyMissingSource(t *testing.T) {
	dir := t.TempDir()

	err := NewDeviceCopier().Copy(context.Background(), filepath.Join(dir, "nope"), filepath.Join(dir, "out"), nil)
	var ce *CopyError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want CopyError", err)
	}
}

func TestCopyCancelled(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "source")
	if err := os.WriteFile(src, make([]byte, 1<<20), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewDeviceCopier().Copy(ctx, src, filepath.Join(dir, "out"), nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled wrapped", err)
	}
	var ce *CopyError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want CopyError", err)
	}
}

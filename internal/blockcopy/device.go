package blockcopy

import (
	"context"
	"io"
	"os"
)

const defaultBufferSize = 4 << 20 // 4 MiB

// DeviceCopier reads a fixed-size source device and writes it to a
// destination file. All written bytes are fsynced before success is
// reported.
type DeviceCopier struct {
	BufferSize int
}

func NewDeviceCopier() *DeviceCopier {
	return &DeviceCopier{BufferSize: defaultBufferSize}
}

func (c *DeviceCopier) Copy(ctx context.Context, srcDevice, dstPath string, progress Progress) error {
	fail := func(err error) error {
		return &CopyError{Source: srcDevice, Dest: dstPath, Err: err}
	}

	in, err := os.Open(srcDevice)
	if err != nil {
		return fail(err)
	}
	defer in.Close()

	out, err := os.Create(dstPath)
	if err != nil {
		return fail(err)
	}
	defer func() {
		_ = out.Close()
	}()

	size := c.BufferSize
	if size <= 0 {
		size = defaultBufferSize
	}
	buf := make([]byte, size)

	var copied int64
	for {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}

		n, rerr := in.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				return fail(werr)
			}
			copied += int64(n)
			if progress != nil {
				progress(copied)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return fail(rerr)
		}
	}

	if err := out.Sync(); err != nil {
		return fail(err)
	}
	if err := out.Close(); err != nil {
		return fail(err)
	}

	return nil
}

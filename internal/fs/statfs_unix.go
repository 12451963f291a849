//go:build unix

package fs

import (
	"os"
	"path/filepath"
	"syscall"
)

// statfs_unix.go implements free-space and mount-point probing on Unix
// systems via Statfs and device-number comparison.

func freeSpace(path string) (uint64, error) {
	var st syscall.Statfs_t
	if err := syscall.Statfs(path, &st); err != nil {
		return 0, err
	}
	return st.Bavail * uint64(st.Bsize), nil
}

// isMountPoint reports whether path sits on a different device than its
// parent directory, which is what makes it a mounted filesystem root.
func isMountPoint(path string) (bool, error) {
	path = filepath.Clean(path)

	st, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	parent := filepath.Dir(path)
	if parent == path {
		// filesystem root
		return true, nil
	}

	pst, err := os.Stat(parent)
	if err != nil {
		return false, err
	}

	sys, ok := st.Sys().(*syscall.Stat_t)
	if !ok {
		return false, nil
	}
	psys, ok := pst.Sys().(*syscall.Stat_t)
	if !ok {
		return false, nil
	}

	return sys.Dev != psys.Dev, nil
}

// Package checks runs the pre-backup validation gates: mounts, directories,
// and free space. Every gate is pass/fail with no retry; a failure aborts
// the run before anything on disk is touched.
package checks

import (
	"github.com/rmarek/img-rotator/internal/fs"
	"github.com/rmarek/img-rotator/internal/logging"
)

// Checker performs pre-backup validation against a filesystem.
type Checker struct {
	fsys fs.FS
	log  logging.Logger

	workingDir string
	archiveDir string
	logDir     string
	minFree    uint64
}

func New(fsys fs.FS, log logging.Logger, workingDir, archiveDir, logDir string, minFree uint64) *Checker {
	if fsys == nil {
		fsys = fs.New()
	}
	return &Checker{
		fsys:       fsys,
		log:        log,
		workingDir: workingDir,
		archiveDir: archiveDir,
		logDir:     logDir,
		minFree:    minFree,
	}
}

// RunAll executes every gate in order: mounts, directories, free space.
// The first failure is returned and nothing after it runs.
func (c *Checker) RunAll() error {
	if err := c.CheckMounts(); err != nil {
		return err
	}
	if err := c.CheckDirectories(); err != nil {
		return err
	}
	if err := c.CheckSpace(); err != nil {
		return err
	}
	c.log.Debug("all precondition checks passed")
	return nil
}

// CheckMounts verifies the working and archive locations are mounted
// filesystem roots, not plain directories on the parent filesystem.
func (c *Checker) CheckMounts() error {
	for _, dir := range []string{c.workingDir, c.archiveDir} {
		c.log.Debug("checking mount: %s", dir)
		mounted, err := c.fsys.IsMountPoint(dir)
		if err != nil {
			return &MountError{Path: dir, Err: err}
		}
		if !mounted {
			return &MountError{Path: dir}
		}
	}
	return nil
}

// CheckDirectories verifies the working, archive, and log directories exist.
func (c *Checker) CheckDirectories() error {
	for _, dir := range []string{c.workingDir, c.archiveDir, c.logDir} {
		c.log.Debug("checking directory: %s", dir)
		info, err := c.fsys.Stat(dir)
		if err != nil {
			return &DirectoryMissingError{Path: dir, Err: err}
		}
		if !info.IsDir {
			return &DirectoryMissingError{Path: dir}
		}
	}
	return nil
}

// CheckSpace verifies free space at the working location meets the floor.
// Exactly the floor passes.
func (c *Checker) CheckSpace() error {
	c.log.Debug("checking free space at %s", c.workingDir)
	avail, err := c.fsys.FreeSpace(c.workingDir)
	if err != nil {
		return &InsufficientSpaceError{Path: c.workingDir, Required: c.minFree}
	}
	if avail < c.minFree {
		return &InsufficientSpaceError{Path: c.workingDir, Required: c.minFree, Available: avail}
	}
	return nil
}

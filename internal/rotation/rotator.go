// Package rotation implements the two-slot rotation state machine: inspect
// the working and archive locations, act on one of the four presence states,
// then create a fresh backup into the working location.
package rotation

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rmarek/img-rotator/internal/artifact"
	"github.com/rmarek/img-rotator/internal/blockcopy"
	"github.com/rmarek/img-rotator/internal/fs"
	"github.com/rmarek/img-rotator/internal/logging"
)

// Rotator runs the rotation decision exactly once per invocation.
type Rotator struct {
	fsys     fs.FS
	copier   blockcopy.Copier
	log      logging.Logger
	cooldown time.Duration
}

func New(fsys fs.FS, copier blockcopy.Copier, log logging.Logger, cooldown time.Duration) *Rotator {
	if fsys == nil {
		fsys = fs.New()
	}
	return &Rotator{
		fsys:     fsys,
		copier:   copier,
		log:      log,
		cooldown: cooldown,
	}
}

// Result records what a run did to the two slots.
type Result struct {
	State      State
	BackupPath string // the newly created backup in the working location
	Archived   string // path the previous working artifact was moved to, if any
	Evicted    string // archive artifact deleted in the Both case, if any
}

// Run inspects both locations, applies the action for the detected state,
// and creates a new backup of sourceDevice into workingDir. There is no
// rollback: a copy failure after moves or deletions leaves the intermediate
// state on disk.
func (r *Rotator) Run(ctx context.Context, workingDir, archiveDir, identity, sourceDevice string, day time.Time) (*Result, error) {
	working, err := artifact.Find(r.fsys, workingDir, identity, r.log)
	if err != nil {
		return nil, fmt.Errorf("inspecting working location: %w", err)
	}
	archive, err := artifact.Find(r.fsys, archiveDir, identity, r.log)
	if err != nil {
		return nil, fmt.Errorf("inspecting archive location: %w", err)
	}

	res := &Result{State: Detect(working, archive)}
	r.log.Info("rotation state: %s", res.State)

	switch res.State {
	case Both:
		r.log.Info("deleting archived backup %s", archive.Path)
		if err := r.fsys.Remove(ctx, archive.Path); err != nil {
			return nil, fmt.Errorf("deleting archive artifact %s: %w", archive.Path, err)
		}
		res.Evicted = archive.Path

		if err := r.wait(ctx); err != nil {
			return nil, err
		}

		if err := r.archive(ctx, working, archiveDir, res); err != nil {
			return nil, err
		}

	case WorkingOnly:
		if err := r.archive(ctx, working, archiveDir, res); err != nil {
			return nil, err
		}

	case ArchiveOnly, Neither:
		// nothing to rotate, the archive slot keeps whatever it has
	}

	dst := filepath.Join(workingDir, artifact.Name(identity, day))
	r.log.Info("creating backup %s from %s", dst, sourceDevice)

	var lastReported int64
	progress := func(copied int64) {
		// one debug line per GiB copied
		if copied-lastReported >= 1<<30 {
			lastReported = copied
			r.log.Debug("copied %d bytes", copied)
		}
	}

	if err := r.copier.Copy(ctx, sourceDevice, dst, progress); err != nil {
		return nil, &BackupCreationError{Path: dst, Err: err}
	}

	res.BackupPath = dst
	r.log.Info("backup created: %s", dst)
	return res, nil
}

// archive moves the working artifact into the archive slot. Ownership is
// transferred by rename, never by copy.
func (r *Rotator) archive(ctx context.Context, working *artifact.Artifact, archiveDir string, res *Result) error {
	dst := filepath.Join(archiveDir, working.Name)
	r.log.Info("moving %s to %s", working.Path, dst)
	if err := r.fsys.Rename(ctx, working.Path, dst); err != nil {
		return fmt.Errorf("moving working artifact to archive: %w", err)
	}
	res.Archived = dst
	return nil
}

// wait blocks for the configured cooldown between eviction and the
// move+copy sequence. Zero disables it.
func (r *Rotator) wait(ctx context.Context) error {
	if r.cooldown <= 0 {
		return nil
	}
	r.log.Info("cooldown: waiting %v", r.cooldown)
	t := time.NewTimer(r.cooldown)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

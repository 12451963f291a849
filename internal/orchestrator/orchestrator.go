// Package orchestrator drives one backup run end to end: precondition
// checks, advisory lock, log retention sweep, rotation, block copy, and the
// summary record.
package orchestrator

import (
	"context"
	"path/filepath"
	"time"

	"github.com/rmarek/img-rotator/internal/blockcopy"
	"github.com/rmarek/img-rotator/internal/checks"
	"github.com/rmarek/img-rotator/internal/config"
	"github.com/rmarek/img-rotator/internal/fs"
	"github.com/rmarek/img-rotator/internal/logging"
	"github.com/rmarek/img-rotator/internal/retention"
	"github.com/rmarek/img-rotator/internal/rotation"
	"github.com/rmarek/img-rotator/internal/summary"
)

const lockFileName = ".img-rotator.lock"

type Orchestrator struct {
	cfg    *config.Config
	fsys   fs.FS
	copier blockcopy.Copier
	log    logging.Logger
	now    func() time.Time
}

// New creates an orchestrator. Passing nil for filesystem or copier selects
// the OS-backed defaults.
func New(cfg *config.Config, log logging.Logger, filesystem fs.FS, copier blockcopy.Copier) *Orchestrator {
	if filesystem == nil {
		filesystem = fs.New()
	}
	if copier == nil {
		copier = blockcopy.NewDeviceCopier()
	}
	return &Orchestrator{
		cfg:    cfg,
		fsys:   filesystem,
		copier: copier,
		log:    log,
		now:    time.Now,
	}
}

// Check runs only the precondition gates. It mutates nothing.
func (o *Orchestrator) Check() error {
	return o.checker().RunAll()
}

// Run performs one backup run. Any error is terminal for the run; nothing is
// retried and partial rotation state is left as is.
func (o *Orchestrator) Run(ctx context.Context) (*rotation.Result, error) {
	sys := o.cfg.System
	o.log.Info("starting backup run for %s (source %s)", sys.Identity, sys.SourceDevice)

	if err := o.checker().RunAll(); err != nil {
		o.log.Error("precondition check failed: %v", err)
		return nil, err
	}

	lock, err := checks.AcquireLock(filepath.Join(sys.WorkingDir, lockFileName), o.cfg.Rotation.LockMaxAge, o.log)
	if err != nil {
		o.log.Error("lock acquisition failed: %v", err)
		return nil, err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			o.log.Warn("releasing lock: %v", err)
		}
	}()

	sweeper := retention.New(o.fsys, o.log)
	if n := sweeper.Sweep(ctx, o.cfg.LogDir(), o.cfg.Rotation.RetentionDays); n > 0 {
		o.log.Info("log retention: %d file(s) deleted", n)
	}

	rot := rotation.New(o.fsys, o.copier, o.log, o.cfg.Rotation.Cooldown)
	res, err := rot.Run(ctx, sys.WorkingDir, sys.ArchiveDir, sys.Identity, sys.SourceDevice, o.now())
	if err != nil {
		o.log.Error("rotation failed: %v", err)
		return nil, err
	}

	o.writeSummary(res)

	o.log.Info("backup run complete")
	return res, nil
}

func (o *Orchestrator) checker() *checks.Checker {
	sys := o.cfg.System
	return checks.New(o.fsys, o.log, sys.WorkingDir, sys.ArchiveDir, o.cfg.LogDir(), uint64(o.cfg.Rotation.MinFreeSpace))
}

// writeSummary records the run outcome. Failures here are warnings; the
// backup itself already succeeded.
func (o *Orchestrator) writeSummary(res *rotation.Result) {
	sys := o.cfg.System

	report := summary.Report{
		Identity:   sys.Identity,
		BackupPath: res.BackupPath,
		SizeBytes:  -1,
		When:       o.now(),
	}

	if info, err := o.fsys.Stat(res.BackupPath); err == nil {
		report.SizeBytes = info.Size
	} else {
		o.log.Warn("summary: cannot stat %s: %v", res.BackupPath, err)
	}

	report.WorkingFree = o.freeSpace(sys.WorkingDir)
	report.ArchiveFree = o.freeSpace(sys.ArchiveDir)

	path, err := summary.Write(o.cfg.LogDir(), report)
	if err != nil {
		o.log.Warn("summary: %v", err)
		return
	}
	o.log.Info("summary written: %s", path)
}

func (o *Orchestrator) freeSpace(dir string) summary.Space {
	avail, err := o.fsys.FreeSpace(dir)
	if err != nil {
		o.log.Warn("summary: free space at %s: %v", dir, err)
		return summary.Space{}
	}
	return summary.Space{Bytes: avail, Known: true}
}

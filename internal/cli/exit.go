package cli

import (
	"context"
	"errors"

	"github.com/rmarek/img-rotator/internal/checks"
	"github.com/rmarek/img-rotator/internal/rotation"
	"github.com/rmarek/img-rotator/internal/types"
)

// exitError carries an explicit exit code decided at the call site.
type exitError struct {
	code types.ExitCode
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// ExitCodeFor maps an error returned by Execute to the process exit code.
func ExitCodeFor(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	// Interruption beats everything else: a copy aborted by a signal is
	// reported as interrupted, not as a backup failure.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return types.ExitInterrupted
	}

	var spaceErr *checks.InsufficientSpaceError
	if errors.As(err, &spaceErr) {
		return types.ExitDiskSpaceError
	}

	var mountErr *checks.MountError
	var dirErr *checks.DirectoryMissingError
	if errors.As(err, &mountErr) || errors.As(err, &dirErr) {
		return types.ExitPreconditionError
	}

	var lockErr *checks.LockHeldError
	if errors.As(err, &lockErr) {
		return types.ExitLockError
	}

	var backupErr *rotation.BackupCreationError
	if errors.As(err, &backupErr) {
		return types.ExitBackupError
	}

	return types.ExitGenericError
}

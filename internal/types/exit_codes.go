// Package types defines shared application data types.
package types

// ExitCode represents the application's exit codes.
type ExitCode int

const (
	// ExitSuccess - Execution completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGenericError - Unspecified generic error.
	ExitGenericError ExitCode = 1

	// ExitConfigError - Configuration error.
	ExitConfigError ExitCode = 2

	// ExitPreconditionError - A precondition check failed (mounts, directories).
	ExitPreconditionError ExitCode = 3

	// ExitDiskSpaceError - Insufficient disk space at the working location.
	ExitDiskSpaceError ExitCode = 4

	// ExitLockError - Another run holds the advisory lock.
	ExitLockError ExitCode = 5

	// ExitBackupError - The block copy failed.
	ExitBackupError ExitCode = 6

	// ExitInterrupted - The run was interrupted by a signal.
	ExitInterrupted ExitCode = 7
)

// String returns a human-readable description of the exit code.
func (e ExitCode) String() string {
	switch e {
	case ExitSuccess:
		return "success"
	case ExitGenericError:
		return "generic error"
	case ExitConfigError:
		return "configuration error"
	case ExitPreconditionError:
		return "precondition failed"
	case ExitDiskSpaceError:
		return "insufficient disk space"
	case ExitLockError:
		return "lock held"
	case ExitBackupError:
		return "backup creation failed"
	case ExitInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

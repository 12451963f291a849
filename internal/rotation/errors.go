package rotation

import "fmt"

// BackupCreationError reports a failed block copy. Moves and deletions
// performed earlier in the same run are not rolled back; the filesystem is
// left in whatever intermediate state the partial run produced.
type BackupCreationError struct {
	Path string
	Err  error
}

func (e *BackupCreationError) Error() string {
	return fmt.Sprintf("creating backup %s: %v", e.Path, e.Err)
}

func (e *BackupCreationError) Unwrap() error { return e.Err }

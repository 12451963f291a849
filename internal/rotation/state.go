package rotation

import "github.com/rmarek/img-rotator/internal/artifact"

// State is the rotation situation at invocation time, derived from which of
// the two slots currently holds an artifact. It is never stored; the
// filesystem contents are the only persistent state.
type State int

const (
	Neither State = iota
	WorkingOnly
	ArchiveOnly
	Both
)

func (s State) String() string {
	switch s {
	case Neither:
		return "neither"
	case WorkingOnly:
		return "working-only"
	case ArchiveOnly:
		return "archive-only"
	case Both:
		return "both"
	default:
		return "unknown"
	}
}

// Detect derives the state from the presence of the two artifacts.
func Detect(working, archive *artifact.Artifact) State {
	switch {
	case working != nil && archive != nil:
		return Both
	case working != nil:
		return WorkingOnly
	case archive != nil:
		return ArchiveOnly
	default:
		return Neither
	}
}

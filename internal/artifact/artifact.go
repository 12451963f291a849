// Package artifact models the backup image files held in the working and
// archive locations and their naming convention.
package artifact

import (
	"strings"
	"time"
)

const (
	// StampLayout is the date portion of an artifact name, MM-DD-YYYY.
	StampLayout = "01-02-2006"

	nameInfix  = "_backup_"
	nameSuffix = ".img"
)

// Artifact describes one backup image found on disk.
type Artifact struct {
	Path  string
	Name  string
	Size  int64
	Stamp time.Time // date parsed from the file name
	MTime time.Time
}

// Name builds the artifact file name for the given identity and day,
// e.g. "sys_backup_06-01-2024.img".
func Name(identity string, day time.Time) string {
	return identity + nameInfix + day.Format(StampLayout) + nameSuffix
}

// Prefix returns the name prefix all artifacts of an identity share.
func Prefix(identity string) string {
	return identity + nameInfix
}

// parseStamp extracts the date from an artifact name. ok is false when the
// name does not follow the naming convention for this identity.
func parseStamp(name, identity string) (time.Time, bool) {
	prefix := Prefix(identity)
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, nameSuffix) {
		return time.Time{}, false
	}
	core := strings.TrimSuffix(strings.TrimPrefix(name, prefix), nameSuffix)
	t, err := time.Parse(StampLayout, core)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

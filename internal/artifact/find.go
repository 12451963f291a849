package artifact

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/rmarek/img-rotator/internal/fs"
	"github.com/rmarek/img-rotator/internal/logging"
)

// Find returns the artifact for identity in dir, or nil when the location is
// empty. A location should hold at most one artifact; when several files
// match, the newest one (by stamp, then mod time, then name) wins and the
// extras are reported so an operator can clean them up.
func Find(fsys fs.FS, dir, identity string, log logging.Logger) (*Artifact, error) {
	if fsys == nil {
		fsys = fs.New()
	}
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var matches []Artifact
	for _, e := range entries {
		if e.IsDir {
			continue
		}
		name := filepath.Base(e.Path)
		stamp, ok := parseStamp(name, identity)
		if !ok {
			continue
		}
		matches = append(matches, Artifact{
			Path:  e.Path,
			Name:  name,
			Size:  e.Size,
			Stamp: stamp,
			MTime: e.MTime,
		})
	}

	if len(matches) == 0 {
		return nil, nil
	}

	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].Stamp.Equal(matches[j].Stamp) {
			return matches[i].Stamp.After(matches[j].Stamp)
		}
		if !matches[i].MTime.Equal(matches[j].MTime) {
			return matches[i].MTime.After(matches[j].MTime)
		}
		return matches[i].Name > matches[j].Name
	})

	if len(matches) > 1 {
		for _, extra := range matches[1:] {
			log.Warn("ignoring extra artifact in %s: %s (using %s)", dir, extra.Name, matches[0].Name)
		}
	}

	return &matches[0], nil
}

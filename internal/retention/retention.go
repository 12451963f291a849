// Package retention deletes run logs and summaries that have aged out of the
// configured window. The sweep is best effort: filesystem errors are logged
// as warnings and never abort the run.
package retention

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/rmarek/img-rotator/internal/fs"
	"github.com/rmarek/img-rotator/internal/logging"
)

// patterns matched by the sweeper, by prefix and suffix.
var logPatterns = []struct {
	prefix string
	suffix string
}{
	{"backup_", ".log"},
	{"backup_summary_", ".txt"},
}

type Sweeper struct {
	fsys fs.FS
	log  logging.Logger
	now  func() time.Time
}

func New(fsys fs.FS, log logging.Logger) *Sweeper {
	if fsys == nil {
		fsys = fs.New()
	}
	return &Sweeper{
		fsys: fsys,
		log:  log,
		now:  time.Now,
	}
}

// Sweep deletes every matching file in dir whose modification time is
// strictly older than days. It returns the number of files deleted.
func (s *Sweeper) Sweep(ctx context.Context, dir string, days int) int {
	entries, err := s.fsys.ReadDir(dir)
	if err != nil {
		s.log.Warn("log retention: reading %s: %v", dir, err)
		return 0
	}

	cutoff := s.now().Add(-time.Duration(days) * 24 * time.Hour)

	deleted := 0
	for _, e := range entries {
		if e.IsDir {
			continue
		}
		name := filepath.Base(e.Path)
		if !matchesLogPattern(name) {
			continue
		}
		if !e.MTime.Before(cutoff) {
			continue
		}
		if err := s.fsys.Remove(ctx, e.Path); err != nil {
			s.log.Warn("log retention: removing %s: %v", e.Path, err)
			continue
		}
		s.log.Info("log retention: deleted %s (age %v)", name, s.now().Sub(e.MTime).Round(time.Hour))
		deleted++
	}

	return deleted
}

func matchesLogPattern(name string) bool {
	for _, p := range logPatterns {
		if strings.HasPrefix(name, p.prefix) && strings.HasSuffix(name, p.suffix) {
			return true
		}
	}
	return false
}

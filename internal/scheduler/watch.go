package scheduler

import (
	"context"
	"path/filepath"

	"github.com/rmarek/img-rotator/internal/fsprobe"
)

// watchConfig chooses the reload strategy based on config.
func (s *Scheduler) watchConfig(ctx context.Context) {
	s.mu.RLock()
	mode := s.cfg.Schedule.Reload.Mode
	s.mu.RUnlock()

	switch mode {
	case "fsnotify":
		if err := s.watchFsnotify(ctx); err != nil {
			s.log.Error("config watch failed: %v", err)
		}

	case "poll":
		s.watchPoll(ctx)

	default: // "auto"
		res := fsprobe.Probe(filepath.Dir(s.configPath))
		if res.FsnotifySupported {
			if err := s.watchFsnotify(ctx); err != nil {
				s.log.Error("config watch failed: %v", err)
			}
			return
		}
		s.log.Warn("fsnotify disabled: %s", res.Reason)
		s.watchPoll(ctx)
	}
}

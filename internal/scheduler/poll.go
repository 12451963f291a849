package scheduler

import (
	"context"
	"os"
	"time"
)

// watchPoll reloads the config when its modification time advances. Used
// where fsnotify is unreliable (network filesystems, some containers).
func (s *Scheduler) watchPoll(ctx context.Context) {
	s.mu.RLock()
	interval := s.cfg.Schedule.Reload.PollInterval
	s.mu.RUnlock()

	var lastModTime time.Time
	if info, err := os.Stat(s.configPath); err == nil {
		lastModTime = info.ModTime()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			info, err := os.Stat(s.configPath)
			if err != nil {
				continue
			}
			if info.ModTime().After(lastModTime) {
				lastModTime = info.ModTime()
				s.reload()
			}
		}
	}
}

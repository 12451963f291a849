// Package scheduler runs the orchestrator on a cron schedule and hot-reloads
// the configuration between runs. Triggers go through a single-slot mailbox,
// so a run in progress absorbs overlapping triggers instead of stacking them.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/rmarek/img-rotator/internal/config"
	"github.com/rmarek/img-rotator/internal/logging"
	"github.com/rmarek/img-rotator/internal/mailbox"
)

// RunFunc performs one backup run with the given config.
type RunFunc func(ctx context.Context, cfg *config.Config) error

// Trigger records why a run fired.
type Trigger struct {
	At     time.Time
	Reason string
}

type Scheduler struct {
	mu         sync.RWMutex
	configPath string
	cfg        *config.Config
	log        logging.Logger
	run        RunFunc
	mb         *mailbox.Mailbox[Trigger]
	cron       *cron.Cron
	entry      cron.EntryID
}

func New(configPath string, cfg *config.Config, log logging.Logger, run RunFunc) *Scheduler {
	return &Scheduler{
		configPath: configPath,
		cfg:        cfg,
		log:        log,
		run:        run,
		mb:         mailbox.New[Trigger](),
	}
}

// Start blocks until the context is cancelled, firing a run on every cron
// tick. Runs are strictly serialized.
func (s *Scheduler) Start(ctx context.Context) error {
	spec := s.cfg.Schedule.Cron
	if spec == "" {
		return fmt.Errorf("schedule.cron must be set for daemon mode")
	}

	s.cron = cron.New()
	entry, err := s.cron.AddFunc(spec, func() { s.Trigger("schedule") })
	if err != nil {
		return fmt.Errorf("parsing cron spec %q: %w", spec, err)
	}
	s.entry = entry
	s.cron.Start()
	defer s.cron.Stop()

	if s.cfg.Schedule.Reload.Enabled {
		go s.watchConfig(ctx)
	}

	s.log.Info("scheduler started (cron %q)", spec)

	for {
		trig, ok := s.mb.Take(ctx)
		if !ok {
			s.log.Info("scheduler stopped")
			return ctx.Err()
		}

		s.mu.RLock()
		cfg := s.cfg
		s.mu.RUnlock()

		s.log.Info("run triggered (%s)", trig.Reason)
		if err := s.run(ctx, cfg); err != nil {
			s.log.Error("run failed: %v", err)
		}
	}
}

// Trigger requests a run. The latest pending trigger wins.
func (s *Scheduler) Trigger(reason string) {
	s.mb.Put(Trigger{At: time.Now(), Reason: reason})
}

// reload re-reads the config file and swaps it in for subsequent runs. A
// changed cron spec re-registers the schedule entry.
func (s *Scheduler) reload() {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		s.log.Error("config reload failed: %v", err)
		return
	}

	s.mu.Lock()
	oldSpec := s.cfg.Schedule.Cron
	s.cfg = cfg

	if s.cron != nil && cfg.Schedule.Cron != oldSpec {
		s.cron.Remove(s.entry)
		entry, err := s.cron.AddFunc(cfg.Schedule.Cron, func() { s.Trigger("schedule") })
		if err != nil {
			s.log.Error("new cron spec %q rejected, keeping %q: %v", cfg.Schedule.Cron, oldSpec, err)
			entry, _ = s.cron.AddFunc(oldSpec, func() { s.Trigger("schedule") })
		}
		s.entry = entry
	}
	s.mu.Unlock()

	s.log.Info("config reloaded from %s", s.configPath)
}

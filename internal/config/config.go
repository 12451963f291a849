package config

import (
	"fmt"
	"path/filepath"
	"time"
)

const (
	// DefaultMinFreeSpace is the free-space floor required at the working
	// location before a backup is attempted.
	DefaultMinFreeSpace = 10 << 30 // 10 GiB

	DefaultCooldown      = 300 * time.Second
	DefaultRetentionDays = 30
	DefaultLockMaxAge    = 6 * time.Hour
	DefaultPollInterval  = 30 * time.Second
)

type Config struct {
	System   SystemConfig   `yaml:"system"`
	Rotation RotationConfig `yaml:"rotation"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SystemConfig identifies what gets backed up and where the two slots live.
type SystemConfig struct {
	Identity     string `yaml:"identity"`
	SourceDevice string `yaml:"sourceDevice"`
	WorkingDir   string `yaml:"workingDir"`
	ArchiveDir   string `yaml:"archiveDir"`
}

type RotationConfig struct {
	RetentionDays int           `yaml:"retentionDays"`
	Cooldown      time.Duration `yaml:"cooldown"`     // delay before move+copy when both slots are full
	MinFreeSpace  int64         `yaml:"minFreeSpace"` // bytes
	LockMaxAge    time.Duration `yaml:"lockMaxAge"`   // locks older than this are considered stale
}

type ScheduleConfig struct {
	Cron   string       `yaml:"cron"` // daemon mode only, standard 5-field spec
	Reload ReloadConfig `yaml:"reload"`
}

type ReloadConfig struct {
	Enabled      bool          `yaml:"enabled"`
	Mode         string        `yaml:"mode"` // "auto", "poll", "fsnotify"
	PollInterval time.Duration `yaml:"pollInterval"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
}

// LogDir returns the directory holding run logs and summaries.
func (c *Config) LogDir() string {
	return filepath.Join(c.System.WorkingDir, "backup_logs")
}

func (c *Config) applyDefaults() {
	if c.Rotation.RetentionDays == 0 {
		c.Rotation.RetentionDays = DefaultRetentionDays
	}
	if c.Rotation.Cooldown == 0 {
		c.Rotation.Cooldown = DefaultCooldown
	}
	if c.Rotation.MinFreeSpace == 0 {
		c.Rotation.MinFreeSpace = DefaultMinFreeSpace
	}
	if c.Rotation.LockMaxAge == 0 {
		c.Rotation.LockMaxAge = DefaultLockMaxAge
	}
	if c.Schedule.Reload.Mode == "" {
		c.Schedule.Reload.Mode = "auto"
	}
	if c.Schedule.Reload.PollInterval == 0 {
		c.Schedule.Reload.PollInterval = DefaultPollInterval
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate rejects configs that cannot drive a run.
func (c *Config) Validate() error {
	if c.System.Identity == "" {
		return fmt.Errorf("system.identity must be set")
	}
	if c.System.SourceDevice == "" {
		return fmt.Errorf("system.sourceDevice must be set")
	}
	if c.System.WorkingDir == "" {
		return fmt.Errorf("system.workingDir must be set")
	}
	if c.System.ArchiveDir == "" {
		return fmt.Errorf("system.archiveDir must be set")
	}
	if c.System.WorkingDir == c.System.ArchiveDir {
		return fmt.Errorf("system.workingDir and system.archiveDir must differ")
	}
	if c.Rotation.RetentionDays < 0 {
		return fmt.Errorf("rotation.retentionDays cannot be negative")
	}
	if c.Rotation.Cooldown < 0 {
		return fmt.Errorf("rotation.cooldown cannot be negative")
	}
	if c.Rotation.MinFreeSpace < 0 {
		return fmt.Errorf("rotation.minFreeSpace cannot be negative")
	}
	switch c.Schedule.Reload.Mode {
	case "auto", "poll", "fsnotify":
	default:
		return fmt.Errorf("schedule.reload.mode %q is not one of auto, poll, fsnotify", c.Schedule.Reload.Mode)
	}
	return nil
}

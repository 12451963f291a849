package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	lineTimeFormat = "2006-01-02 15:04:05"
	fileDateLayout = "01-02-2006"
)

// RunLog writes timestamped lines to the per-day log file and mirrors them to
// the terminal. One line per event: "[YYYY-MM-DD HH:MM:SS] message".
type RunLog struct {
	mu     sync.Mutex
	level  Level
	file   *os.File
	mirror io.Writer
	now    func() time.Time
}

// LogFileName returns the run log file name for the given day.
func LogFileName(day time.Time) string {
	return "backup_" + day.Format(fileDateLayout) + ".log"
}

// OpenRunLog opens (append mode) the run log for the given day inside dir.
// The mirror writer receives a copy of every line; nil means os.Stdout.
func OpenRunLog(dir string, day time.Time, level Level, mirror io.Writer) (*RunLog, error) {
	path := filepath.Join(dir, LogFileName(day))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening run log %s: %w", path, err)
	}
	if mirror == nil {
		mirror = os.Stdout
	}
	return &RunLog{
		level:  level,
		file:   file,
		mirror: mirror,
		now:    time.Now,
	}, nil
}

// Close flushes and closes the underlying log file.
func (l *RunLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Sync()
	if cerr := l.file.Close(); err == nil {
		err = cerr
	}
	l.file = nil
	return err
}

func (l *RunLog) Debug(msg string, args ...any) { l.write(LevelDebug, "DEBUG: ", msg, args...) }
func (l *RunLog) Info(msg string, args ...any)  { l.write(LevelInfo, "", msg, args...) }
func (l *RunLog) Warn(msg string, args ...any)  { l.write(LevelWarn, "WARN: ", msg, args...) }
func (l *RunLog) Error(msg string, args ...any) { l.write(LevelError, "ERROR: ", msg, args...) }

func (l *RunLog) write(level Level, prefix, msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	line := fmt.Sprintf("[%s] %s%s\n", l.now().Format(lineTimeFormat), prefix, fmt.Sprintf(msg, args...))

	if l.file != nil {
		_, _ = l.file.WriteString(line)
	}
	if l.mirror != nil {
		_, _ = io.WriteString(l.mirror, line)
	}
}

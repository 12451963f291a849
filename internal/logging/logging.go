// Package logging provides the logger interface used across img-rotator and
// the per-run log file writer.
package logging

import "log"

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// StdLogger logs to the standard library logger. It is the fallback when a
// run log file cannot be opened.
type StdLogger struct{}

func (StdLogger) Debug(msg string, args ...any) { log.Printf("DEBUG: "+msg, args...) }
func (StdLogger) Info(msg string, args ...any)  { log.Printf("INFO: "+msg, args...) }
func (StdLogger) Warn(msg string, args ...any)  { log.Printf("WARN: "+msg, args...) }
func (StdLogger) Error(msg string, args ...any) { log.Printf("ERROR: "+msg, args...) }

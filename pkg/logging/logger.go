// Package logging implements a named, severity-filtered logger that fans records out to a fixed
// set of sink kinds. Loggers are constructed explicitly and passed to whatever needs them; there
// is no package-level logger.
package logging

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// TimeFormat is the timestamp layout used in every record.
const TimeFormat = "2006-01-02 15:04:05"

// Logger sends messages at or above its level to each of its sinks.
type Logger struct {
	name  string
	level Level
	sinks []Sink

	mu  *sync.Mutex
	now func() time.Time
}

// New returns a logger with the given name and minimum level. A logger without sinks drops every
// message.
func New(name string, level Level, sinks ...Sink) *Logger {
	return &Logger{
		name:  name,
		level: level,
		sinks: sinks,
		mu:    &sync.Mutex{},
		now:   time.Now,
	}
}

// Discard returns a logger that drops every message.
func Discard() *Logger {
	return New("", Fatal+1)
}

// Name returns the logger name.
func (l *Logger) Name() string { return l.name }

// Level returns the logger's minimum level.
func (l *Logger) Level() Level { return l.level }

// Enabled reports whether messages at level pass the logger's own threshold.
func (l *Logger) Enabled(level Level) bool {
	return l != nil && level >= l.level && len(l.sinks) > 0
}

// Named returns a child logger that shares this logger's sinks and level. The child name is
// appended to the parent's, separated by a slash.
func (l *Logger) Named(name string) *Logger {
	child := *l
	if l.name != "" {
		child.name = l.name + "/" + name
	} else {
		child.name = name
	}
	return &child
}

// Log formats a message with fmt.Sprintf and sends it to every sink whose level admits it.
func (l *Logger) Log(level Level, msg string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	r := record{
		Timestamp: l.now().Format(TimeFormat),
		Level:     level.String(),
		Logger:    l.name,
		Message:   fmt.Sprintf(msg, args...),
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.sinks {
		// Sink write errors are dropped so one bad sink cannot block the rest.
		_ = s.emit(r, level)
	}
}

func (l *Logger) Debug(msg string, args ...any) { l.Log(Debug, msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.Log(Info, msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.Log(Warn, msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.Log(Error, msg, args...) }
func (l *Logger) Fatal(msg string, args ...any) { l.Log(Fatal, msg, args...) }

// Close releases file handles held by the logger's sinks. Loggers derived with Named share sinks,
// so only the root logger should be closed.
func (l *Logger) Close() error {
	var errs []error
	for _, s := range l.sinks {
		if err := s.close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

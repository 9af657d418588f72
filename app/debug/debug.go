// Package debug provides conditional logging of diagnostic messages,
// active only when debug mode is turned on.
package debug

import (
	log "github.com/go-pkgz/lgr"
)

// Logger prints messages prefixed with the application name when enabled.
// Zero value is a disabled logger.
type Logger struct {
	Name    string
	Enabled bool
	L       log.L // sink, lgr default logger if nil
}

// New makes a Logger for the given name.
func New(name string, enabled bool) *Logger {
	return &Logger{Name: name, Enabled: enabled}
}

// Message writes "[<name>] <text>" if the logger is enabled, no-op otherwise.
func (l *Logger) Message(text string) {
	if l == nil || !l.Enabled {
		return
	}
	sink := l.L
	if sink == nil {
		sink = log.Default()
	}
	sink.Logf("[DEBUG] [%s] %s", l.Name, text)
}

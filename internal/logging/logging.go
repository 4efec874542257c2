// Package logging provides the leveled logger shared by the engine, the
// snapshot store and the interpreter.
package logging

import (
	"io"
	"log"
)

// Logger writes leveled messages to a single stream. Debug messages are
// dropped unless debug output is switched on. The method set matches
// badger.Logger so the store can log through it.
type Logger struct {
	out   *log.Logger
	debug bool
}

// New creates a Logger writing to w. A nil w discards everything.
func New(w io.Writer, debug bool) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{
		out:   log.New(w, "", 0),
		debug: debug,
	}
}

// Discard returns a Logger that writes nothing.
func Discard() *Logger {
	return New(io.Discard, false)
}

// SetDebug switches debug output on or off.
func (l *Logger) SetDebug(on bool) {
	l.debug = on
}

// Errorf logs an error.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.out.Printf("ERROR: "+format, args...)
}

// Warningf logs a warning.
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.out.Printf("WARNING: "+format, args...)
}

// Infof logs an informational message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.out.Printf("INFO: "+format, args...)
}

// Debugf logs a debug message when debug output is on.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.debug {
		return
	}
	l.out.Printf("DEBUG: "+format, args...)
}

// Quiet wraps l so that only errors and warnings get through. The store uses
// it to keep badger's start-up chatter out of the interpreter's log.
func Quiet(l *Logger) *QuietLogger {
	return &QuietLogger{l}
}

// QuietLogger drops Infof and Debugf.
type QuietLogger struct {
	*Logger
}

// Infof discards the message.
func (q *QuietLogger) Infof(string, ...interface{}) {}

// Debugf discards the message.
func (q *QuietLogger) Debugf(string, ...interface{}) {}

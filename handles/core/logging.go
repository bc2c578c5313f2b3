package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// debugSwitch is shared by a logger and the loggers named from it.
type debugSwitch struct {
	mu sync.Mutex
	on bool
}

// DefaultLogger writes debug and info lines to one writer and warnings and errors to another.
type DefaultLogger struct {
	debug  *debugSwitch
	prefix string
	out    *log.Logger
	err    *log.Logger
}

func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	return NewWriterLogger(prefix, debug, os.Stdout, os.Stderr)
}

// NewWriterLogger is NewDefaultLogger with explicit destinations. Timestamps are only added for
// the standard streams.
func NewWriterLogger(prefix string, debug bool, out, errw io.Writer) *DefaultLogger {
	flags := 0
	if out == os.Stdout || errw == os.Stderr {
		flags = log.LstdFlags | log.Lmicroseconds
	}
	return &DefaultLogger{
		debug:  &debugSwitch{on: debug},
		prefix: prefix,
		out:    log.New(out, "", flags),
		err:    log.New(errw, "", flags),
	}
}

// Named returns a logger for a component of l. It writes to the same destinations and follows
// l's debug switch.
func (l *DefaultLogger) Named(component string) Logger {
	prefix := component
	if l.prefix != "" {
		prefix = l.prefix + "/" + component
	}
	return &DefaultLogger{debug: l.debug, prefix: prefix, out: l.out, err: l.err}
}

func (l *DefaultLogger) DebugEnabled() bool {
	l.debug.mu.Lock()
	defer l.debug.mu.Unlock()
	return l.debug.on
}

func (l *DefaultLogger) SetDebug(enabled bool) {
	l.debug.mu.Lock()
	l.debug.on = enabled
	l.debug.mu.Unlock()
}

func (l *DefaultLogger) print(level Level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	dst := l.out
	if level >= LevelWarn {
		dst = l.err
	}
	if l.prefix != "" {
		dst.Printf("[%s] %s: %s", l.prefix, level, msg)
		return
	}
	dst.Printf("%s: %s", level, msg)
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	if l.DebugEnabled() {
		l.print(LevelDebug, format, args...)
	}
}

func (l *DefaultLogger) Infof(format string, args ...any)  { l.print(LevelInfo, format, args...) }
func (l *DefaultLogger) Warnf(format string, args ...any)  { l.print(LevelWarn, format, args...) }
func (l *DefaultLogger) Errorf(format string, args ...any) { l.print(LevelError, format, args...) }

type nopLogger struct{}

func NewNopLogger() Logger { return &nopLogger{} }
func (n *nopLogger) DebugEnabled() bool                { return false }
func (n *nopLogger) SetDebug(enabled bool)             {}
func (n *nopLogger) Debugf(format string, args ...any) {}
func (n *nopLogger) Infof(format string, args ...any)  {}
func (n *nopLogger) Warnf(format string, args ...any)  {}
func (n *nopLogger) Errorf(format string, args ...any) {}

// LoggerOr returns l, or a no-op logger when l is nil. Never returns nil.
func LoggerOr(l Logger) Logger {
	if l == nil {
		return NewNopLogger()
	}
	return l
}

// Named scopes l to a component when l supports it and returns l unchanged otherwise.
func Named(l Logger, component string) Logger {
	if n, ok := l.(interface{ Named(string) Logger }); ok {
		return n.Named(component)
	}
	return LoggerOr(l)
}

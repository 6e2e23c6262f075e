// Package applog is the logging collaborator spec.md treats as external,
// specified only at its interface (spec.md §1, §9: "the one-warning-per-
// unknown-type memo should be a field on a renderer context, not a file
// static"). No structured logging library appears anywhere in the retrieved
// example pack, so the default implementation sits directly on the standard
// library's log.Logger.
package applog

import (
	"io"
	"log"
	"sync"
)

// Logger is the minimal surface the renderer needs: leveled logging plus a
// per-key "log this only once" helper for the warnings spec.md §7 requires
// to be emitted a single time per unknown block name or sprite type.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	WarnOnce(key string, format string, args ...any)
}

// stdLogger is the default Logger, backed by the standard library's log
// package and a mutex-guarded set of already-warned keys.
type stdLogger struct {
	mu     sync.Mutex
	warned map[string]bool
	out    *log.Logger
}

// New returns a Logger that writes to w with an "isomap: " prefix.
func New(w io.Writer) Logger {
	return &stdLogger{
		warned: make(map[string]bool),
		out:    log.New(w, "isomap: ", log.LstdFlags),
	}
}

func (l *stdLogger) Infof(format string, args ...any) {
	l.out.Printf("INFO "+format, args...)
}

func (l *stdLogger) Warnf(format string, args ...any) {
	l.out.Printf("WARN "+format, args...)
}

func (l *stdLogger) Errorf(format string, args ...any) {
	l.out.Printf("ERROR "+format, args...)
}

// WarnOnce logs the formatted message under key the first time it is seen
// and silently no-ops on subsequent calls with the same key. Concurrent
// calls from multiple shard workers are safe (spec.md §5: "The progress
// reporter ... must accept concurrent updates atomically" — the same
// discipline applies to this memo).
func (l *stdLogger) WarnOnce(key string, format string, args ...any) {
	l.mu.Lock()
	already := l.warned[key]
	if !already {
		l.warned[key] = true
	}
	l.mu.Unlock()
	if already {
		return
	}
	l.Warnf(format, args...)
}

// Noop is a Logger that discards everything, useful for tests.
var Noop Logger = noopLogger{}

type noopLogger struct{}

func (noopLogger) Infof(string, ...any)           {}
func (noopLogger) Warnf(string, ...any)           {}
func (noopLogger) Errorf(string, ...any)          {}
func (noopLogger) WarnOnce(string, string, ...any) {}

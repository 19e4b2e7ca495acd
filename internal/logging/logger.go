// Package logging provides the package-level structured logger threaded
// through catalog loading, lexicon ingestion, and query execution.
package logging

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	global *zap.Logger
)

func init() {
	global = zap.NewNop()
}

// L returns the current global logger. Safe for concurrent use.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// SetGlobal replaces the global logger, returning the previous one so
// callers (notably tests) can restore it.
func SetGlobal(l *zap.Logger) *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	prev := global
	global = l
	return prev
}

// NewProduction builds the CLI's default logger: structured JSON to
// stderr at info level and above.
func NewProduction() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	return cfg.Build()
}

// NewREPLLogger builds a development-style logger that writes to path
// instead of stdout/stderr, so the REPL's full-screen UI is never
// corrupted by log output.
func NewREPLLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

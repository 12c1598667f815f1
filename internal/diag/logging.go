package diag

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Logger names names by name; "others" are
// implementation-defined and simply use slog.With("logger", name).
const (
	LoggerCodeStore = "codestore"
	LoggerRecompile = "recompile"
)

// Loggers is the process-wide named-logger registry. Enabling recompile
// retention keeps every RecompilationRecord (compile unit, time, message)
// for later inspection — deliberately memory-leaky, so callers opt in via
// EnableRecompileRetention. No return value is carried in a record.
type Loggers struct {
	mu                 sync.Mutex
	base               *slog.Logger
	recompileRetention bool
	retained           []RecompilationRecord
}

// RecompilationRecord is what gets retained when recompile retention is
// enabled.
type RecompilationRecord struct {
	CompileUnit int32
	At          time.Time
	Message     string
}

// NewLoggers wraps base (or slog.Default() if nil) as the two named
// loggers' shared backend.
func NewLoggers(base *slog.Logger) *Loggers {
	if base == nil {
		base = slog.Default()
	}
	return &Loggers{base: base}
}

// Named returns the slog.Logger for name, tagged so call sites can be
// filtered by logger name downstream.
func (l *Loggers) Named(name string) *slog.Logger {
	return l.base.With("logger", name)
}

// CodeStore is the named logger for code-cache outcomes. codecache.Cache
// logs a refused non-serializable entry to its logger; its Get and Put
// return read and write errors to the caller rather than logging them.
func (l *Loggers) CodeStore() *slog.Logger { return l.Named(LoggerCodeStore) }

// Recompile returns the named logger for recompilation events.
// RecordRecompilation logs through it and, if retention is enabled, appends
// each record to an in-memory slice that never shrinks.
func (l *Loggers) Recompile() *slog.Logger { return l.Named(LoggerRecompile) }

// EnableRecompileRetention turns on retaining recompilation records,
// explicitly noted upstream as memory-leaky — intended for
// interactive debugging sessions, not long-running production processes.
func (l *Loggers) EnableRecompileRetention() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.recompileRetention = true
}

// RecordRecompilation logs at the "recompile" logger and, if retention is
// enabled, retains the record.
func (l *Loggers) RecordRecompilation(ctx context.Context, rec RecompilationRecord) {
	l.Recompile().InfoContext(ctx, rec.Message, "compileUnit", rec.CompileUnit, "at", rec.At)
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.recompileRetention {
		l.retained = append(l.retained, rec)
	}
}

// Retained returns every retained recompilation record so far; empty if
// retention was never enabled.
func (l *Loggers) Retained() []RecompilationRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]RecompilationRecord, len(l.retained))
	copy(out, l.retained)
	return out
}

package optimistic

import (
	"sync"
	"time"

	"github.com/google/pprof/profile"

	"github.com/cwbudde/ecmacore/internal/types"
)

// RecompilationEvent records one UnwarrantedOptimismException's resolution:
// the compile unit re-entering the fixed pipeline with the offending
// program point's type widened so the same deopt does not recur.
// ReturnValue is the deopt site's pre-destruction return value, carried over
// from the exception that triggered the recompile; NewRecompilationEvent
// only retains it when the owning RecompileLog has retention enabled, since
// under normal operation (log disabled) pinning an arbitrary runtime value
// past the exception that produced it is a leak with no consumer to justify
// it.
type RecompilationEvent struct {
	CompileUnit int32
	Point       ProgramPoint
	From        *types.Type
	To          *types.Type
	At          time.Time
	ReturnValue any
}

// NewRecompilationEvent builds the event describing exc's resolution,
// widening exc.Point's type from From to To. ReturnValue is copied from
// exc only when log has retention enabled; otherwise it is dropped at
// construction time rather than scrubbed later.
func NewRecompilationEvent(log *RecompileLog, compileUnit int32, exc *UnwarrantedOptimismException, from, to *types.Type, at time.Time) RecompilationEvent {
	ev := RecompilationEvent{CompileUnit: compileUnit, Point: exc.Point, From: from, To: to, At: at}
	if log != nil && log.Enabled {
		ev.ReturnValue = exc.ReturnValue
	}
	return ev
}

// RecompileLog accumulates RecompilationEvents for diagnostics, gated by
// Enabled — production compiles typically leave this off; it is switched on
// for diagnostic tooling.
type RecompileLog struct {
	mu      sync.Mutex
	Enabled bool
	events  []RecompilationEvent
}

func NewRecompileLog(enabled bool) *RecompileLog {
	return &RecompileLog{Enabled: enabled}
}

// Record appends ev if the log is enabled; a no-op otherwise so call sites
// never need to branch on Enabled themselves.
func (l *RecompileLog) Record(ev RecompilationEvent) {
	if !l.Enabled {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

func (l *RecompileLog) Events() []RecompilationEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]RecompilationEvent, len(l.events))
	copy(out, l.events)
	return out
}

// DumpProfile renders the accumulated recompilation events as a
// pprof Profile — one sample per event, location keyed by compile unit, so
// `go tool pprof -top` groups deopt counts by compile unit out of the box.
// This reuses google/pprof's profile.proto encoding purely as a convenient,
// already-tooled histogram format; it is not a CPU/heap profile.
func (l *RecompileLog) DumpProfile() *profile.Profile {
	events := l.Events()

	p := &profile.Profile{
		SampleType: []*profile.ValueType{{Type: "recompiles", Unit: "count"}},
		TimeNanos:  nowOrZero(events),
	}

	funcByUnit := map[int32]*profile.Function{}
	locByUnit := map[int32]*profile.Location{}
	var nextID uint64 = 1

	for _, ev := range events {
		fn, ok := funcByUnit[ev.CompileUnit]
		if !ok {
			fn = &profile.Function{ID: nextID, Name: compileUnitName(ev.CompileUnit)}
			nextID++
			funcByUnit[ev.CompileUnit] = fn
			p.Function = append(p.Function, fn)
		}
		loc, ok := locByUnit[ev.CompileUnit]
		if !ok {
			loc = &profile.Location{
				ID:   nextID,
				Line: []profile.Line{{Function: fn, Line: int64(ev.Point)}},
			}
			nextID++
			locByUnit[ev.CompileUnit] = loc
			p.Location = append(p.Location, loc)
		}
		p.Sample = append(p.Sample, &profile.Sample{
			Location: []*profile.Location{loc},
			Value:    []int64{1},
		})
	}
	return p
}

func nowOrZero(events []RecompilationEvent) int64 {
	if len(events) == 0 {
		return 0
	}
	return events[0].At.UnixNano()
}

func compileUnitName(id int32) string {
	if id == 0 {
		return "<program>"
	}
	return "compile-unit-" + itoa(id)
}

func itoa(n int32) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [12]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

package optimistic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/ecmacore/internal/types"
)

func TestProgramPointValid(t *testing.T) {
	assert.False(t, InvalidProgramPoint.Valid())
	assert.True(t, ProgramPoint(0).Valid())
	assert.True(t, ProgramPoint(42).Valid())
}

func TestAllocatorNextIsMonotonic(t *testing.T) {
	var a Allocator
	assert.Equal(t, ProgramPoint(0), a.Next())
	assert.Equal(t, ProgramPoint(1), a.Next())
	assert.Equal(t, ProgramPoint(2), a.Next())
}

type fakeOptimisticNode struct {
	optimistic, pessimistic *types.Type
}

func (f fakeOptimisticNode) MostOptimisticType() *types.Type  { return f.optimistic }
func (f fakeOptimisticNode) MostPessimisticType() *types.Type { return f.pessimistic }
func (f fakeOptimisticNode) CanBeOptimistic() bool            { return f.optimistic != f.pessimistic }

func TestGetMostOptimisticTypeDispatchesToNode(t *testing.T) {
	n := fakeOptimisticNode{optimistic: types.INT, pessimistic: types.NUMBER}
	assert.Equal(t, types.INT, GetMostOptimisticType(n))
	assert.Equal(t, types.NUMBER, GetMostPessimisticType(n))
	assert.True(t, CanBeOptimistic(n))
}

func TestGetMostOptimisticTypeFallsBackToObjectForUnknownNode(t *testing.T) {
	assert.Equal(t, types.OBJECT, GetMostOptimisticType("not a node"))
	assert.Equal(t, types.OBJECT, GetMostPessimisticType(42))
	assert.False(t, CanBeOptimistic(struct{}{}))
}

func TestNewUnwarrantedOptimismExceptionPanicsOnInvalidPoint(t *testing.T) {
	assert.Panics(t, func() {
		NewUnwarrantedOptimismException(InvalidProgramPoint, "oops")
	})
}

func TestUnwarrantedOptimismExceptionError(t *testing.T) {
	err := NewUnwarrantedOptimismException(ProgramPoint(3), "hello")
	assert.Equal(t, ProgramPoint(3), err.Point)
	assert.Equal(t, "hello", err.ReturnValue)
	assert.Contains(t, err.Error(), "program point 3")
}

func TestNewRecompilationEventRetainsReturnValueOnlyWhenEnabled(t *testing.T) {
	exc := NewUnwarrantedOptimismException(ProgramPoint(3), 42.0)

	disabled := NewRecompileLog(false)
	evDisabled := NewRecompilationEvent(disabled, 1, exc, types.INT, types.NUMBER, time.Unix(0, 0))
	assert.Nil(t, evDisabled.ReturnValue)

	enabled := NewRecompileLog(true)
	evEnabled := NewRecompilationEvent(enabled, 1, exc, types.INT, types.NUMBER, time.Unix(0, 0))
	assert.Equal(t, 42.0, evEnabled.ReturnValue)
}

func TestRecompileLogRecordsOnlyWhenEnabled(t *testing.T) {
	disabled := NewRecompileLog(false)
	disabled.Record(RecompilationEvent{CompileUnit: 1, Point: 0, From: types.INT, To: types.NUMBER, At: time.Unix(0, 0)})
	assert.Empty(t, disabled.Events())

	enabled := NewRecompileLog(true)
	ev := RecompilationEvent{CompileUnit: 1, Point: 2, From: types.INT, To: types.NUMBER, At: time.Unix(0, 0)}
	enabled.Record(ev)
	require.Len(t, enabled.Events(), 1)
	assert.Equal(t, ev, enabled.Events()[0])
}

func TestRecompileLogEventsReturnsACopy(t *testing.T) {
	l := NewRecompileLog(true)
	l.Record(RecompilationEvent{CompileUnit: 1, Point: 0})
	events := l.Events()
	events[0].CompileUnit = 99
	assert.Equal(t, int32(1), l.Events()[0].CompileUnit)
}

func TestRecompileLogDumpProfileGroupsByCompileUnit(t *testing.T) {
	l := NewRecompileLog(true)
	l.Record(RecompilationEvent{CompileUnit: 1, Point: 5, At: time.Unix(100, 0)})
	l.Record(RecompilationEvent{CompileUnit: 1, Point: 9, At: time.Unix(100, 0)})
	l.Record(RecompilationEvent{CompileUnit: 2, Point: 1, At: time.Unix(100, 0)})

	p := l.DumpProfile()
	require.Len(t, p.Function, 2)
	require.Len(t, p.Location, 2)
	assert.Len(t, p.Sample, 3)
}

func TestRecompileLogDumpProfileEmpty(t *testing.T) {
	l := NewRecompileLog(true)
	p := l.DumpProfile()
	assert.Empty(t, p.Sample)
	assert.Zero(t, p.TimeNanos)
}

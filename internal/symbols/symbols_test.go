package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/ecmacore/internal/types"
)

func TestSymbolPinningIsIdempotent(t *testing.T) {
	s := New("x", IsVar, 0)
	require.Nil(t, s.PinnedType())

	pinned := s.WithPinnedType(types.NUMBER)
	assert.Equal(t, types.NUMBER, pinned.PinnedType())
	assert.Nil(t, s.PinnedType(), "original symbol must stay unchanged")

	same := pinned.WithPinnedType(types.NUMBER)
	assert.Same(t, pinned, same, "pinning the same type twice must return the identical symbol")
}

func TestSymbolSlotAssignment(t *testing.T) {
	s := New("y", IsVar, 0)
	_, ok := s.SlotFor(types.NUMBER)
	assert.False(t, ok)

	withSlot := s.WithSlot(types.NUMBER, 3)
	slot, ok := withSlot.SlotFor(types.NUMBER)
	require.True(t, ok)
	assert.EqualValues(t, 3, slot)

	// original unaffected
	_, ok = s.SlotFor(types.NUMBER)
	assert.False(t, ok)

	same := withSlot.WithSlot(types.NUMBER, 3)
	assert.Same(t, withSlot, same)
}

func TestTableDefineLookupAndOrder(t *testing.T) {
	tbl := NewTable(New("a", IsVar, 0), New("b", IsLet, 1))
	assert.Equal(t, 2, tbl.Len())
	assert.NotNil(t, tbl.Lookup("a"))
	assert.Nil(t, tbl.Lookup("missing"))

	withC := tbl.WithDefine(New("c", IsConst, 2))
	assert.Equal(t, 2, tbl.Len(), "original table must stay unchanged")
	assert.Equal(t, 3, withC.Len())

	names := make([]string, 0, 3)
	for _, s := range withC.All() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestTableDefineDuplicatePanics(t *testing.T) {
	tbl := NewTable(New("a", IsVar, 0))
	assert.Panics(t, func() { tbl.WithDefine(New("a", IsVar, 1)) })
}

func TestTableReplaceSymbols(t *testing.T) {
	a := New("a", IsVar, 0)
	b := New("b", IsVar, 1)
	tbl := NewTable(a, b)

	pinnedA := a.WithPinnedType(types.NUMBER)
	replaced := tbl.ReplaceSymbols(map[string]*Symbol{"a": pinnedA})
	assert.Same(t, pinnedA, replaced.Lookup("a"))
	assert.Same(t, b, replaced.Lookup("b"))
	assert.Same(t, a, tbl.Lookup("a"), "original table must stay unchanged")

	unchanged := tbl.ReplaceSymbols(map[string]*Symbol{"a": a})
	assert.Same(t, tbl, unchanged)
}

func TestEmptyTableIsSafeToQuery(t *testing.T) {
	assert.Equal(t, 0, Empty.Len())
	assert.Nil(t, Empty.Lookup("x"))
	assert.False(t, Empty.HasSymbol("x"))
	assert.Empty(t, Empty.All())
}

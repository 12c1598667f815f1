package codegentest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwbudde/ecmacore/internal/codegen"
	"github.com/cwbudde/ecmacore/internal/types"
)

func TestRecorderCapturesCallsInOrder(t *testing.T) {
	r := New()
	r.LoadSlot(2, types.INT)
	r.Arithmetic(codegen.Add, types.INT)
	r.ConvertTo(types.INT, types.NUMBER)
	r.DoReturn(types.NUMBER)

	assert.Equal(t, []Entry{
		{Op: "LoadSlot", Args: []string{"2", "int"}},
		{Op: "Arithmetic", Args: []string{"Add", "int"}},
		{Op: "ConvertTo", Args: []string{"int", "number"}},
		{Op: "DoReturn", Args: []string{"number"}},
	}, r.Entries)
}

func TestEntryString(t *testing.T) {
	e := Entry{Op: "Ldc", Args: []string{"1", "int"}}
	assert.Equal(t, "Ldc 1 int", e.String())
}

package diag

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterScriptStackKeepsOnlyScriptFrames(t *testing.T) {
	raw := []RawFrame{
		{Tag: "<foo.js>.<program>"},
		{Tag: "<foo.js>.bar$1$baz"},
		{Tag: "native:invoke"},
	}
	got := FilterScriptStack(raw)
	require.Len(t, got, 2)
	assert.Equal(t, Frame{FileName: "foo.js", FunctionName: "<program>"}, got[0])
	assert.Equal(t, Frame{FileName: "foo.js", FunctionName: "baz"}, got[1])
}

func TestErrorTaxonomyMessages(t *testing.T) {
	pos := Position{File: "foo.js", Line: 3, Column: 5}

	var err error = &IllegalArgumentError{Pos: pos, Message: "key can not be empty"}
	assert.Contains(t, err.Error(), "key can not be empty")

	err = &ClassCastError{Pos: pos, GotType: "int", WantType: "string"}
	assert.Contains(t, err.Error(), "cannot cast int to string")

	err = &UnwarrantedOptimismError{ProgramPoint: 7, Observed: "x"}
	assert.Contains(t, err.Error(), "pp=7")
}

func TestRecompileRetention(t *testing.T) {
	loggers := NewLoggers(slog.New(slog.NewTextHandler(io.Discard, nil)))
	loggers.EnableRecompileRetention()
	loggers.RecordRecompilation(context.Background(), RecompilationRecord{CompileUnit: 1, Message: "widened"})
	assert.Len(t, loggers.Retained(), 1)
}

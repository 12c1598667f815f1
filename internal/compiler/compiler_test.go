package compiler

import (
	"fmt"
	"sort"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/ecmacore/internal/ir"
	"github.com/cwbudde/ecmacore/internal/optimistic"
	"github.com/cwbudde/ecmacore/internal/token"
	"github.com/cwbudde/ecmacore/internal/types"
)

func makeProgram() *ir.Function {
	tok := token.New(token.KindUnknown, 0, 1)
	one := ir.NewLiteral(tok, 1, ir.LiteralNumber, 1.0)
	two := ir.NewLiteral(tok, 1, ir.LiteralNumber, 2.0)
	sum := ir.NewBinary(tok, 1, ir.OpAdd, one, two)
	stmt := ir.NewExpressionStatement(tok, 1, sum)
	body := ir.NewBlock(tok, 1, []ir.Statement{stmt}, nil, 0)
	return ir.NewFunction(tok, 1, nil, nil, body, ir.FunctionScript)
}

func TestPipelineRunsAllStagesInOrder(t *testing.T) {
	u := &Unit{CompileUnit: 1, Program: makeProgram()}
	p := NewPipeline(SymbolScopeStage{}, FlowStage{}, OptimisticTypingStage{}, CodegenReadinessStage{})

	require.NoError(t, p.Run(u))
	require.Len(t, u.TypeMap, 1)
	for _, typ := range u.TypeMap {
		assert.Equal(t, types.NUMBER, typ)
	}
}

func TestPipelineStopsOnNilProgram(t *testing.T) {
	u := &Unit{}
	p := NewPipeline(SymbolScopeStage{}, FlowStage{}, OptimisticTypingStage{}, CodegenReadinessStage{})
	err := p.Run(u)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "symbol-scope")
}

func TestFlowStageWiresLoopsSwitchesAndFinally(t *testing.T) {
	tok := token.New(token.KindUnknown, 0, 1)
	one := ir.NewLiteral(tok, 1, ir.LiteralNumber, 1.0)

	loopBody := ir.NewBlock(tok, 1, nil, nil, 0)
	loop := ir.NewWhile(tok, 1, one, loopBody, false)

	sw := ir.NewSwitch(tok, 1, one, []*ir.Case{ir.NewCase(tok, 1, nil, nil)})

	tryBody := ir.NewBlock(tok, 1, nil, nil, 0)
	finally := ir.NewBlock(tok, 1, []ir.Statement{ir.NewExpressionStatement(tok, 1, one)}, nil, 0)
	tryStmt := ir.NewTry(tok, 1, tryBody, nil, finally)

	root := ir.NewBlock(tok, 1, []ir.Statement{loop, sw, tryStmt}, nil, 0)
	fn := ir.NewFunction(tok, 1, nil, nil, root, ir.FunctionScript)

	u := &Unit{CompileUnit: 1, Program: fn}
	require.NoError(t, (FlowStage{}).Run(u))

	body := u.Program.Body().Statements()
	wiredLoop := body[0].(*ir.While)
	wiredSwitch := body[1].(*ir.Switch)
	wiredTry := body[2].(*ir.Try)

	assert.NotEmpty(t, wiredLoop.ContinueLabel())
	assert.NotEmpty(t, wiredLoop.BreakLabel())

	assert.NotEmpty(t, wiredSwitch.TagSymbolName())
	assert.NotEmpty(t, wiredSwitch.BreakLabel())
	assert.True(t, u.Program.Body().Symbols().HasSymbol(wiredSwitch.TagSymbolName()))

	assert.True(t, wiredTry.FinallyInlined())
	assert.Len(t, wiredTry.Block().Statements(), 1)
}

func TestPipelineOutputMatchesSnapshot(t *testing.T) {
	u := &Unit{CompileUnit: 1, Program: makeProgram()}
	p := NewPipeline(SymbolScopeStage{}, FlowStage{}, OptimisticTypingStage{}, CodegenReadinessStage{})
	require.NoError(t, p.Run(u))

	pps := make([]optimistic.ProgramPoint, 0, len(u.TypeMap))
	for pp := range u.TypeMap {
		pps = append(pps, pp)
	}
	sort.Slice(pps, func(i, j int) bool { return pps[i] < pps[j] })

	out := u.Program.String() + "\n"
	for _, pp := range pps {
		out += fmt.Sprintf("pp=%d -> %s\n", pp, u.TypeMap[pp])
	}
	snaps.MatchSnapshot(t, out)
}

package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/ecmacore/internal/ir"
	"github.com/cwbudde/ecmacore/internal/token"
	"github.com/cwbudde/ecmacore/internal/types"
)

func tok() token.Token { return token.New(token.KindUnknown, 0, 1) }

func TestInstallConversionPrepends(t *testing.T) {
	var chain *ir.LocalVariableConversion
	chain = InstallConversion(chain, "x", types.INT, types.NUMBER)
	chain = InstallConversion(chain, "y", types.BOOLEAN, types.INT)

	assert.Equal(t, "y", chain.SymbolName)
	assert.Equal(t, "x", chain.Next.SymbolName)
	assert.Nil(t, chain.Next.Next)
}

func TestConvergeAddsMissingSideForEachBranch(t *testing.T) {
	var a, b *ir.LocalVariableConversion
	a = InstallConversion(a, "x", types.INT, types.NUMBER)
	b = InstallConversion(b, "y", types.BOOLEAN, types.INT)

	aExtra, bExtra := Converge(a, b)

	require.NotNil(t, aExtra)
	assert.Equal(t, "y", aExtra.SymbolName)
	assert.Equal(t, types.INT, aExtra.To)

	require.NotNil(t, bExtra)
	assert.Equal(t, "x", bExtra.SymbolName)
	assert.Equal(t, types.NUMBER, bExtra.To)
}

func TestConvergeNoExtraWhenSymbolsMatch(t *testing.T) {
	var a, b *ir.LocalVariableConversion
	a = InstallConversion(a, "x", types.INT, types.NUMBER)
	b = InstallConversion(b, "x", types.INT, types.NUMBER)

	aExtra, bExtra := Converge(a, b)
	assert.Nil(t, aExtra)
	assert.Nil(t, bExtra)
}

func TestWireLoopAssignsDistinctLabels(t *testing.T) {
	counter := NewLabelCounter()
	w := ir.NewWhile(tok(), 1, nil, ir.NewBlock(tok(), 1, nil, nil, 0), false)
	wired := WireLoop(w, counter)
	assert.NotEmpty(t, wired.ContinueLabel())
	assert.NotEmpty(t, wired.BreakLabel())
	assert.NotEqual(t, wired.ContinueLabel(), wired.BreakLabel())
}

func TestWireForAssignsDistinctLabels(t *testing.T) {
	counter := NewLabelCounter()
	f := ir.NewFor(tok(), 1, nil, nil, nil, ir.NewBlock(tok(), 1, nil, nil, 0))
	wired := WireFor(f, counter)
	assert.NotEmpty(t, wired.ContinueLabel())
	assert.NotEmpty(t, wired.BreakLabel())
	assert.NotEqual(t, wired.ContinueLabel(), wired.BreakLabel())
}

func TestWireLoopAndWireForShareCounterAcrossCalls(t *testing.T) {
	counter := NewLabelCounter()
	w1 := WireLoop(ir.NewWhile(tok(), 1, nil, ir.NewBlock(tok(), 1, nil, nil, 0), false), counter)
	w2 := WireLoop(ir.NewWhile(tok(), 1, nil, ir.NewBlock(tok(), 1, nil, nil, 0), false), counter)
	assert.NotEqual(t, w1.ContinueLabel(), w2.ContinueLabel())
	assert.NotEqual(t, w1.BreakLabel(), w2.BreakLabel())
}

func TestWireSwitchInstallsTagSymbolOnBlock(t *testing.T) {
	block := ir.NewBlock(tok(), 1, nil, nil, 0)
	sw := ir.NewSwitch(tok(), 1, ir.NewIdent(tok(), 1, "x"), nil)

	wiredSwitch, newBlock := WireSwitch(sw, block, nil)

	require.NotEmpty(t, wiredSwitch.TagSymbolName())
	assert.NotEmpty(t, wiredSwitch.BreakLabel())
	assert.True(t, newBlock.Symbols().HasSymbol(wiredSwitch.TagSymbolName()))
	assert.False(t, block.Symbols().HasSymbol(wiredSwitch.TagSymbolName()))
}

func TestInlineFinallyDuplicatesOntoBlockAndCatch(t *testing.T) {
	finallyStmt := ir.NewExpressionStatement(tok(), 1, ir.NewIdent(tok(), 1, "cleanup"))
	finally := ir.NewBlock(tok(), 1, []ir.Statement{finallyStmt}, nil, 0)
	tryBlock := ir.NewBlock(tok(), 1, nil, nil, 0)
	catchBody := ir.NewBlock(tok(), 1, nil, nil, 0)
	catch, err := ir.NewCatch(tok(), 1, ir.CatchBindingIdentifier, ir.NewIdent(tok(), 1, "e"), nil, catchBody)
	require.NoError(t, err)

	tr := ir.NewTry(tok(), 1, tryBlock, []*ir.Catch{catch}, finally)
	inlined := InlineFinally(tr, NewLabelCounter())

	assert.True(t, inlined.FinallyInlined())
	assert.Len(t, inlined.Block().Statements(), 1)
	require.Len(t, inlined.Catches(), 1)
	assert.Len(t, inlined.Catches()[0].Body().Statements(), 1)
	assert.NotEmpty(t, inlined.FinallyLabel())
}

func TestInlineFinallyIsNoopWithoutFinally(t *testing.T) {
	tryBlock := ir.NewBlock(tok(), 1, nil, nil, 0)
	tr := ir.NewTry(tok(), 1, tryBlock, nil, nil)
	assert.Same(t, tr, InlineFinally(tr, NewLabelCounter()))
}

func TestInlineFinallyIsIdempotent(t *testing.T) {
	finally := ir.NewBlock(tok(), 1, []ir.Statement{ir.NewExpressionStatement(tok(), 1, ir.NewIdent(tok(), 1, "cleanup"))}, nil, 0)
	tryBlock := ir.NewBlock(tok(), 1, nil, nil, 0)
	tr := ir.NewTry(tok(), 1, tryBlock, nil, finally)

	counter := NewLabelCounter()
	once := InlineFinally(tr, counter)
	twice := InlineFinally(once, counter)
	assert.Same(t, once, twice)
}

package lexcontext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNode struct {
	kind  NodeKind
	flags int32
	label string
}

func (n *fakeNode) Kind() NodeKind      { return n.kind }
func (n *fakeNode) FlagBits() int32     { return n.flags }
func (n *fakeNode) WithFlagBits(bits int32) Node {
	cp := *n
	cp.flags = bits
	return &cp
}
func (n *fakeNode) BreakLabel() string    { return n.label }
func (n *fakeNode) ContinueLabel() string { return n.label }
func (n *fakeNode) LabelName() string     { return n.label }
func (n *fakeNode) HasSymbol(name string) bool { return name == n.label }
func (n *fakeNode) IsSplit() bool         { return false }

func TestPushPanicsOnDuplicateNode(t *testing.T) {
	lc := New()
	n := &fakeNode{kind: KindBlock}
	lc.Push(n)
	assert.Panics(t, func() { lc.Push(n) })
}

func TestPopPanicsWhenNotTop(t *testing.T) {
	lc := New()
	a := &fakeNode{kind: KindBlock}
	b := &fakeNode{kind: KindFunction}
	lc.Push(a)
	lc.Push(b)
	assert.Panics(t, func() { lc.Pop(a) })
}

func TestPopAppliesAccumulatedFlags(t *testing.T) {
	lc := New()
	n := &fakeNode{kind: KindBlock}
	lc.Push(n)
	lc.SetFlag(n, FlagNeedsScope)
	out := lc.Pop(n)
	assert.Equal(t, FlagNeedsScope, out.(*fakeNode).FlagBits())
}

func TestApplyTopFlagsKeepsNodeOnStack(t *testing.T) {
	lc := New()
	n := &fakeNode{kind: KindBlock}
	lc.Push(n)
	lc.SetFlag(n, FlagNeedsScope)
	flagged := lc.ApplyTopFlags(n)
	require.Equal(t, 1, lc.Depth())
	assert.Equal(t, flagged, lc.Top())
}

func TestSetBlockNeedsScopeAlsoFlagsEnclosingFunction(t *testing.T) {
	lc := New()
	fn := &fakeNode{kind: KindFunction}
	block := &fakeNode{kind: KindBlock}
	lc.Push(fn)
	lc.Push(block)
	lc.SetBlockNeedsScope(block)
	assert.Equal(t, FlagNeedsScope, lc.GetFlags(block))
	assert.Equal(t, FlagHasScopeBlock, lc.GetFlags(fn))
}

func TestReplacePanicsWhenNotTop(t *testing.T) {
	lc := New()
	a := &fakeNode{kind: KindBlock}
	lc.Push(a)
	assert.Panics(t, func() { lc.Replace(&fakeNode{kind: KindBlock}, a) })
}

func TestCurrentFunctionAndOutermostFunction(t *testing.T) {
	lc := New()
	outer := &fakeNode{kind: KindFunction}
	inner := &fakeNode{kind: KindFunction}
	block := &fakeNode{kind: KindBlock}
	lc.Push(outer)
	lc.Push(inner)
	lc.Push(block)

	assert.Equal(t, Node(inner), lc.CurrentFunction())
	assert.Equal(t, Node(outer), lc.OutermostFunction())
}

func TestCurrentBlockAndParentBlock(t *testing.T) {
	lc := New()
	outerBlock := &fakeNode{kind: KindBlock}
	innerBlock := &fakeNode{kind: KindBlock}
	lc.Push(outerBlock)
	lc.Push(innerBlock)

	assert.Equal(t, Node(innerBlock), lc.CurrentBlock())
	assert.Equal(t, Node(outerBlock), lc.ParentBlock())
}

func TestCurrentLoopAndInLoop(t *testing.T) {
	lc := New()
	assert.False(t, lc.InLoop())
	loop := &fakeNode{kind: KindWhile}
	lc.Push(loop)
	assert.True(t, lc.InLoop())
	assert.Equal(t, Node(loop), lc.CurrentLoop())
}

func TestGetBreakableUnlabeledFindsNearestBreakable(t *testing.T) {
	lc := New()
	loop := &fakeNode{kind: KindWhile, label: "L1"}
	lc.Push(loop)
	assert.Equal(t, Node(loop), lc.GetBreakable(""))
}

func TestGetBreakableLabeledFindsMatchingLabel(t *testing.T) {
	lc := New()
	outer := &fakeNode{kind: KindLabel, label: "outer"}
	lc.Push(outer)
	assert.Equal(t, Node(outer), lc.GetBreakable("outer"))
	assert.Nil(t, lc.GetBreakable("missing"))
}

func TestGetContinueToUnlabeledReturnsCurrentLoop(t *testing.T) {
	lc := New()
	loop := &fakeNode{kind: KindFor}
	lc.Push(loop)
	assert.Equal(t, Node(loop), lc.GetContinueTo(""))
}

func TestGetContinueToLabeledResolvesThroughLabel(t *testing.T) {
	lc := New()
	label := &fakeNode{kind: KindLabel, label: "outer"}
	loop := &fakeNode{kind: KindWhile}
	lc.Push(label)
	lc.Push(loop)
	assert.Equal(t, Node(loop), lc.GetContinueTo("outer"))
}

func TestInUnprotectedSwitchContext(t *testing.T) {
	lc := New()
	sw := &fakeNode{kind: KindSwitch}
	block := &fakeNode{kind: KindBlock}
	lc.Push(sw)
	lc.Push(block)
	assert.True(t, lc.InUnprotectedSwitchContext())
}

func TestGetDefiningBlockFindsNearestEnclosingScope(t *testing.T) {
	lc := New()
	outer := &fakeNode{kind: KindBlock, label: "x"}
	inner := &fakeNode{kind: KindBlock, label: "y"}
	lc.Push(outer)
	lc.Push(inner)
	assert.Equal(t, Node(inner), lc.GetDefiningBlock("y"))
	assert.Equal(t, Node(outer), lc.GetDefiningBlock("x"))
	assert.Nil(t, lc.GetDefiningBlock("z"))
}

func TestGetDefiningFunctionWalksUpFromDefiningBlock(t *testing.T) {
	lc := New()
	fn := &fakeNode{kind: KindFunction}
	block := &fakeNode{kind: KindBlock, label: "x"}
	lc.Push(fn)
	lc.Push(block)
	assert.Equal(t, Node(fn), lc.GetDefiningFunction("x"))
	assert.Nil(t, lc.GetDefiningFunction("missing"))
}

func TestAncestorsCollectsMatchingKindsUntilStopAt(t *testing.T) {
	lc := New()
	outer := &fakeNode{kind: KindBlock}
	fn := &fakeNode{kind: KindFunction}
	inner := &fakeNode{kind: KindBlock}
	lc.Push(outer)
	lc.Push(fn)
	lc.Push(inner)

	blocks := lc.Ancestors(KindBlock, outer)
	assert.Equal(t, []Node{inner, outer}, blocks)
}

func TestIsExternalTargetTrueWhenSplitSeenBeforeTarget(t *testing.T) {
	lc := New()
	target := &fakeNode{kind: KindBlock}
	split := &fakeNode{kind: KindFunction}
	inner := &fakeNode{kind: KindBlock}
	lc.Push(target)
	lc.Push(split)
	lc.Push(inner)

	assert.True(t, lc.IsExternalTarget(split, target))
}

func TestIsExternalTargetFalseWhenTargetSeenBeforeSplit(t *testing.T) {
	lc := New()
	split := &fakeNode{kind: KindFunction}
	target := &fakeNode{kind: KindBlock}
	inner := &fakeNode{kind: KindBlock}
	lc.Push(split)
	lc.Push(target)
	lc.Push(inner)

	assert.False(t, lc.IsExternalTarget(split, target))
}

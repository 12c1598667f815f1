package lexcontext

// Flag bits accumulated on Block/Function frames. Only the bits the
// walker itself needs to reason about (NEEDS_SCOPE's atomic dual-set) are
// defined here; the richer function-level flag word (USES_THIS, HAS_EVAL,
// ...) lives on internal/ir.Function itself and is set directly by the
// symbol/scope pass, not through SetFlag.
const (
	FlagNeedsScope    int32 = 1 << 0
	FlagHasScopeBlock int32 = 1 << 1
)

type frame struct {
	node  Node
	flags int32
}

// LexicalContext is a stack of enclosing IR nodes with per-frame flag
// accumulation. All operations below are assertions:
// violating one (pushing a node already present, popping/replacing
// something other than the current top) is a programmer error in a pass,
// not a runtime condition, so they panic rather than return an error.
type LexicalContext struct {
	frames []frame
}

// New returns an empty LexicalContext.
func New() *LexicalContext { return &LexicalContext{} }

// Push grows the stack by one frame for node and returns node (fluent),
// `push(node)`. Panics if node is already on the stack.
func (lc *LexicalContext) Push(node Node) Node {
	for _, f := range lc.frames {
		if f.node == node {
			panic("lexcontext: push of a node already on the stack")
		}
	}
	lc.frames = append(lc.frames, frame{node: node})
	return node
}

// Pop removes the top frame, which must be node. If node accumulated flags
// during its lifetime on the stack and is a FlagCarrier, Pop returns the
// result of applying those flags (a possibly-new node instance) rather
// than node itself — the caller (a pass's leaveX) must install the
// returned node into its parent.
func (lc *LexicalContext) Pop(node Node) Node {
	top := lc.mustTop("pop")
	if top.node != node {
		panic("lexcontext: pop of a node that is not the current top")
	}
	lc.frames = lc.frames[:len(lc.frames)-1]
	return applyFlags(top)
}

// ApplyTopFlags applies the top frame's accumulated flags to node (which
// must be the current top) without popping it, for use inside a leaveX
// implementation that still needs the node on the stack for its own
// children's sake. Returns the (possibly new) flagged node and, if it
// differs from node, updates the frame in place so a subsequent Pop sees
// the already-applied flags.
func (lc *LexicalContext) ApplyTopFlags(node Node) Node {
	top := lc.mustTop("applyTopFlags")
	if top.node != node {
		panic("lexcontext: applyTopFlags on a node that is not the current top")
	}
	applied := applyFlags(*top)
	if applied != node {
		top.node = applied
		top.flags = 0
	}
	return applied
}

func applyFlags(f frame) Node {
	fc, ok := f.node.(FlagCarrier)
	if !ok || f.flags == 0 {
		return f.node
	}
	combined := fc.FlagBits() | f.flags
	if combined == fc.FlagBits() {
		return f.node
	}
	return fc.WithFlagBits(combined)
}

// SetFlag OR-accumulates bits onto node's frame. node need not be the top
// of the stack (an ancestor block/function is a common target, e.g.
// SetBlockNeedsScope setting HAS_SCOPE_BLOCK on the enclosing function).
func (lc *LexicalContext) SetFlag(node Node, bits int32) {
	idx := lc.mustFind(node)
	lc.frames[idx].flags |= bits
}

// GetFlags returns node's currently accumulated flags (not yet merged with
// its intrinsic FlagBits()).
func (lc *LexicalContext) GetFlags(node Node) int32 {
	return lc.frames[lc.mustFind(node)].flags
}

// SetBlockNeedsScope sets NEEDS_SCOPE on block and, atomically, sets
// HAS_SCOPE_BLOCK on the nearest enclosing function frame, so the two
// flags never drift out of sync.
func (lc *LexicalContext) SetBlockNeedsScope(block Node) {
	idx := lc.mustFind(block)
	lc.frames[idx].flags |= FlagNeedsScope
	for i := idx - 1; i >= 0; i-- {
		if lc.frames[i].node.Kind() == KindFunction {
			lc.frames[i].flags |= FlagHasScopeBlock
			return
		}
	}
}

// Replace swaps the top frame's node for replacement, asserting old is the
// current top — the primitive the node-replacement-in-lexical-context
// protocol is built on.
func (lc *LexicalContext) Replace(old, replacement Node) {
	top := lc.mustTop("replace")
	if top.node != old {
		panic("lexcontext: replace of a node that is not the current top")
	}
	top.node = replacement
}

func (lc *LexicalContext) mustTop(op string) *frame {
	if len(lc.frames) == 0 {
		panic("lexcontext: " + op + " on an empty context")
	}
	return &lc.frames[len(lc.frames)-1]
}

func (lc *LexicalContext) mustFind(node Node) int {
	for i := len(lc.frames) - 1; i >= 0; i-- {
		if lc.frames[i].node == node {
			return i
		}
	}
	panic("lexcontext: node is not on the context stack")
}

// Depth returns the number of frames currently on the stack.
func (lc *LexicalContext) Depth() int { return len(lc.frames) }

// Top returns the current top frame's node, or nil if the stack is empty.
func (lc *LexicalContext) Top() Node {
	if len(lc.frames) == 0 {
		return nil
	}
	return lc.frames[len(lc.frames)-1].node
}

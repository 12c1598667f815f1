// Package flow installs the control-flow metadata a later optimistic-typing
// pass consumes: local-variable conversion chains at join points, loop
// continue/break label wiring, switch tag symbols, and inlined-finally
// rewriting.
//
// The If/While/For/Switch/Try node shapes follow conventional control-flow
// node families, generalized to ES5.1's semantics, with a scope-stack
// walk pattern generalized to lexcontext.LexicalContext.
package flow

import (
	"github.com/cwbudde/ecmacore/internal/ir"
	"github.com/cwbudde/ecmacore/internal/symbols"
	"github.com/cwbudde/ecmacore/internal/types"
)

// InstallConversion prepends a (symbolName, from, to) entry onto an
// existing chain, used when a join predecessor needs an additional
// local-variable conversion recorded ahead of the ones already installed.
func InstallConversion(existing *ir.LocalVariableConversion, symbolName string, from, to *types.Type) *ir.LocalVariableConversion {
	return &ir.LocalVariableConversion{SymbolName: symbolName, From: from, To: to, Next: existing}
}

// Converge compares the conversion chains from two join predecessors (e.g.
// a ternary's two branches, or an if/else's two arms) and returns the extra
// conversions each one needs: every symbol present in only one
// predecessor's chain gets an entry on the *other* branch's extra chain,
// with From and To both set to that symbol's target type, so both arrive
// at the join with the same per-symbol type. A symbol present in both
// chains gets no extra entry, even when the two target types differ.
func Converge(a, b *ir.LocalVariableConversion) (aExtra, bExtra *ir.LocalVariableConversion) {
	aSet := conversionTargets(a)
	bSet := conversionTargets(b)
	for key, to := range bSet {
		if _, ok := aSet[key]; !ok {
			aExtra = InstallConversion(aExtra, key, to, to)
		}
	}
	for key, to := range aSet {
		if _, ok := bSet[key]; !ok {
			bExtra = InstallConversion(bExtra, key, to, to)
		}
	}
	return aExtra, bExtra
}

func conversionTargets(c *ir.LocalVariableConversion) map[string]*types.Type {
	out := make(map[string]*types.Type)
	for n := c; n != nil; n = n.Next {
		if _, seen := out[n.SymbolName]; !seen {
			out[n.SymbolName] = n.To
		}
	}
	return out
}

// LabelCounter hands out unique synthetic label names for loop
// continue/break targets and switch tag symbols — a monotonically
// increasing integer suffix for collision-free synthetic identifiers.
type LabelCounter struct{ next int }

func NewLabelCounter() *LabelCounter { return &LabelCounter{} }

func (c *LabelCounter) nextLabel(prefix string) string {
	c.next++
	return prefixLabel(prefix, c.next)
}

func prefixLabel(prefix string, n int) string {
	const digits = "0123456789"
	if n == 0 {
		return prefix + "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = digits[n%10]
		n /= 10
	}
	return prefix + string(buf[i:])
}

// WireLoop assigns unique continue/break labels to a loop node that has
// none yet.
func WireLoop(w *ir.While, counter *LabelCounter) *ir.While {
	if counter == nil {
		counter = NewLabelCounter()
	}
	return w.WithContinueLabel(counter.nextLabel("L")).WithBreakLabel(counter.nextLabel("L"))
}

// WireFor assigns unique continue/break labels to a for-family loop node.
func WireFor(f *ir.For, counter *LabelCounter) *ir.For {
	if counter == nil {
		counter = NewLabelCounter()
	}
	return f.WithContinueLabel(counter.nextLabel("L")).WithBreakLabel(counter.nextLabel("L"))
}

// WireSwitch installs a break label and a synthetic tag-holder symbol on a
// switch, so the tag expression is evaluated once and compared against
// each case's test rather than re-evaluated per case.
func WireSwitch(s *ir.Switch, block *ir.Block, counter *LabelCounter) (*ir.Switch, *ir.Block) {
	if counter == nil {
		counter = NewLabelCounter()
	}
	tagName := counter.nextLabel("$tag")
	sym := symbols.New(tagName, symbols.IsVar|symbols.IsHoisted, block.Symbols().Len())
	newBlock := block.WithSymbols(block.Symbols().WithDefine(sym))
	return s.WithBreakLabel(counter.nextLabel("L")).WithTagSymbolName(tagName), newBlock
}

// InlineFinally duplicates finally onto the try block's normal-exit path
// and onto every catch's exit path, wrapping each copy in a Block whose
// sole statement is a Label carrying a counter-assigned unique name, then
// marks the try as FinallyInlined with that label recorded as its
// FinallyLabel. The copies sit at the fall-through end of the try block
// and of each catch body; a return or throw from inside them gets no copy
// here. lexcontext.GetInlinedFinally/GetTryNodeForInlinedFinally let a
// later pass route a break/continue through that label rather than around
// it.
func InlineFinally(t *ir.Try, counter *LabelCounter) *ir.Try {
	if t.Finally() == nil || t.FinallyInlined() {
		return t
	}
	if counter == nil {
		counter = NewLabelCounter()
	}
	finally := t.Finally()
	label := counter.nextLabel("$finally")
	labeled := ir.NewLabel(finally.Tok(), finally.Finish(), label, finally)
	wrapper := ir.NewBlock(finally.Tok(), finally.Finish(), []ir.Statement{labeled}, nil, 0)

	block := appendBlock(t.Block(), wrapper)
	var catches []*ir.Catch
	if t.Catches() != nil {
		catches = make([]*ir.Catch, len(t.Catches()))
		for i, c := range t.Catches() {
			catches[i] = c.WithBody(appendBlock(c.Body(), wrapper))
		}
	}
	return t.WithFinallyInlined(block, catches, label)
}

func appendBlock(base *ir.Block, tail ir.Statement) *ir.Block {
	stmts := append(append([]ir.Statement{}, base.Statements()...), tail)
	return base.WithStatements(stmts)
}

// Package compiler wires the fixed pass pipeline:
// parse → symbol/scope → flow → optimistic typing → codegen, with a total
// order no pass may violate by observing a partially-constructed
// later-pass result.
//
// Pipeline follows the same ordered-list-of-named-steps shape a
// configurable pass manager would, generalized from a variable-length
// analysis pass list to a fixed four-stage pipeline (a Pipeline here
// always runs exactly these stages, in this order — there is no AddPass).
package compiler

import (
	"fmt"

	"github.com/cwbudde/ecmacore/internal/flow"
	"github.com/cwbudde/ecmacore/internal/ir"
	"github.com/cwbudde/ecmacore/internal/lexcontext"
	"github.com/cwbudde/ecmacore/internal/optimistic"
	"github.com/cwbudde/ecmacore/internal/types"
)

// Unit is one compilation unit's pipeline state, threaded through every
// stage. CompileUnit is a dense, process-assigned identifier, the same one
// RecompilationEvent carries.
type Unit struct {
	CompileUnit int32
	Program     *ir.Function
	Allocator   *optimistic.Allocator
	RecompileLog *optimistic.RecompileLog
	// TypeMap is the pp -> pessimistic-type map built by
	// OptimisticTypingStage, serializable via internal/types' type-map
	// codec for round-tripping through a code-cache entry.
	TypeMap map[optimistic.ProgramPoint]*types.Type
}

// Stage is one named pipeline step. Run may mutate u.Program (every IR
// setter returns a new node, so a stage reassigns u.Program rather than
// mutating in place) and must return a non-nil error only for a condition
// that should halt the pipeline entirely.
type Stage interface {
	Name() string
	Run(u *Unit) error
}

// Pipeline runs a fixed stage order; unlike a configurable pass manager,
// stage membership is not exposed here — parsing is assumed already
// done, so Pipeline begins at symbol/scope and ends at codegen-readiness;
// the final stage is a readiness gate only, since the concrete bytecode
// emitter lives outside this module.
type Pipeline struct {
	stages []Stage
}

// NewPipeline returns the fixed pipeline in its mandated order.
func NewPipeline(symbolScope, flowStage, optimisticStage, codegenReadiness Stage) *Pipeline {
	return &Pipeline{stages: []Stage{symbolScope, flowStage, optimisticStage, codegenReadiness}}
}

// Run executes every stage in order, stopping at the first error so no
// later stage ever observes a partially-constructed earlier-stage result.
func (p *Pipeline) Run(u *Unit) error {
	for _, s := range p.stages {
		if err := s.Run(u); err != nil {
			return fmt.Errorf("compiler: stage %q: %w", s.Name(), err)
		}
	}
	return nil
}

// SymbolScopeStage verifies every Block reachable from u.Program carries
// a non-nil symbol table (ir.NewBlock already defaults this, so this
// stage is the pipeline's explicit place to assert the invariant rather
// than silently relying on constructor defaults).
type SymbolScopeStage struct{}

func (SymbolScopeStage) Name() string { return "symbol-scope" }

func (SymbolScopeStage) Run(u *Unit) error {
	if u.Program == nil {
		return fmt.Errorf("compiler: unit has no program")
	}
	lc := lexcontext.New()
	var bad error
	ir.Walk(walkerFunc(func(n ir.Node) bool {
		if b, ok := n.(*ir.Block); ok && b.Symbols() == nil {
			bad = fmt.Errorf("compiler: block at %v has no symbol table", b.Tok())
			return false
		}
		return bad == nil
	}), lc, u.Program)
	return bad
}

// walkerFunc adapts a plain enter-only predicate to ir.Visitor, since
// this stage never replaces nodes, only inspects them.
type walkerFunc func(ir.Node) bool

func (f walkerFunc) Enter(n ir.Node) bool { return f(n) }
func (f walkerFunc) Leave(n ir.Node) ir.Node { return n }

// FlowStage installs the control-flow metadata internal/flow computes:
// unique continue/break labels on every loop, a synthetic tag symbol plus
// break label on every switch, and finally-inlining on every try that has
// a finally clause. One LabelCounter is shared across the whole walk so
// labels stay unique within a compile unit. A second walk then rewrites
// every Break/Continue that exits across an inlined-finally try so it runs
// the crossed try's finally first, in addition to the copies InlineFinally
// puts at the end of the try block and of each catch body. Return and
// throw are not rewritten.
type FlowStage struct{}

func (FlowStage) Name() string { return "flow" }

func (FlowStage) Run(u *Unit) error {
	if u.Program == nil {
		return fmt.Errorf("compiler: unit has no program")
	}
	counter := flow.NewLabelCounter()
	lc := lexcontext.New()
	rewritten := ir.Walk(&flowVisitor{counter: counter}, lc, u.Program)
	fn, ok := rewritten.(*ir.Function)
	if !ok {
		return fmt.Errorf("compiler: flow stage: program root is no longer a function")
	}

	bcLC := lexcontext.New()
	rewritten = ir.Walk(&breakContinueVisitor{lc: bcLC}, bcLC, fn)
	fn, ok = rewritten.(*ir.Function)
	if !ok {
		return fmt.Errorf("compiler: flow stage: program root is no longer a function")
	}
	u.Program = fn
	return nil
}

// flowVisitor drives internal/flow's per-node-kind wiring over the walk:
// loops and trys are wired directly on Leave, while a switch needs its
// enclosing block (to host the synthetic tag symbol) so it is wired when
// that block is left instead.
type flowVisitor struct {
	counter *flow.LabelCounter
}

func (f *flowVisitor) Enter(ir.Node) bool { return true }

func (f *flowVisitor) Leave(n ir.Node) ir.Node {
	switch t := n.(type) {
	case *ir.While:
		if t.ContinueLabel() == "" {
			return flow.WireLoop(t, f.counter)
		}
		return t
	case *ir.For:
		if t.ContinueLabel() == "" {
			return flow.WireFor(t, f.counter)
		}
		return t
	case *ir.Try:
		return flow.InlineFinally(t, f.counter)
	case *ir.Block:
		return f.wireSwitches(t)
	default:
		return n
	}
}

// wireSwitches rewires every top-level Switch statement in b that has not
// already been wired, threading the growing symbol table through each
// successive WireSwitch call so two switches in the same block never
// collide on their tag names.
func (f *flowVisitor) wireSwitches(b *ir.Block) *ir.Block {
	stmts := b.Statements()
	changed := false
	cur := b
	newStmts := make([]ir.Statement, len(stmts))
	copy(newStmts, stmts)
	for i, s := range stmts {
		sw, ok := s.(*ir.Switch)
		if !ok || sw.TagSymbolName() != "" {
			continue
		}
		newSwitch, newBlock := flow.WireSwitch(sw, cur, f.counter)
		newStmts[i] = newSwitch
		cur = newBlock
		changed = true
	}
	if !changed {
		return b
	}
	return cur.WithStatements(newStmts)
}

// breakContinueVisitor rewrites every Break/Continue whose resolved target
// lies outside one or more enclosing inlined-finally trys into a block
// that runs each crossed try's finally — nearest enclosing first — before
// the original jump. It runs as a second pass after flowVisitor so every
// Try it sees already carries its FinallyLabel.
type breakContinueVisitor struct {
	lc *lexcontext.LexicalContext
}

func (v *breakContinueVisitor) Enter(ir.Node) bool { return true }

func (v *breakContinueVisitor) Leave(n ir.Node) ir.Node {
	switch t := n.(type) {
	case *ir.Break:
		return v.route(t, v.lc.GetBreakable(t.Label()))
	case *ir.Continue:
		return v.route(t, v.lc.GetContinueTo(t.Label()))
	default:
		return n
	}
}

// route prepends a labeled copy of every inlined finally between the
// current position and target (nearest first) ahead of stmt, so the
// finally still runs even though stmt exits the try from the middle of its
// body rather than falling off the end.
func (v *breakContinueVisitor) route(stmt ir.Statement, target lexcontext.Node) ir.Node {
	if target == nil {
		return stmt
	}
	var crossed []ir.Statement
	for _, n := range v.lc.Ancestors(lexcontext.KindTry, target) {
		tryNode, ok := n.(*ir.Try)
		if !ok || !tryNode.FinallyInlined() {
			continue
		}
		finally := tryNode.Finally()
		labeled := ir.NewLabel(finally.Tok(), finally.Finish(), tryNode.FinallyLabel(), finally)
		crossed = append(crossed, ir.NewBlock(finally.Tok(), finally.Finish(), []ir.Statement{labeled}, nil, 0))
	}
	if len(crossed) == 0 {
		return stmt
	}
	crossed = append(crossed, stmt)
	return ir.NewBlock(stmt.Tok(), stmt.Finish(), crossed, nil, 0)
}

// OptimisticTypingStage walks every Binary/Unary node reachable from
// u.Program and records its most-pessimistic type into u.TypeMap — the map
// later rounds-tripped through the code cache — keyed by the node's program
// point, or by a freshly allocated one if it has none. The nodes themselves
// are not rewritten, so a freshly allocated point is not stored on the node.
type OptimisticTypingStage struct{}

func (OptimisticTypingStage) Name() string { return "optimistic-typing" }

func (OptimisticTypingStage) Run(u *Unit) error {
	if u.Program == nil {
		return fmt.Errorf("compiler: unit has no program")
	}
	if u.Allocator == nil {
		u.Allocator = &optimistic.Allocator{}
	}
	if u.TypeMap == nil {
		u.TypeMap = make(map[optimistic.ProgramPoint]*types.Type)
	}
	lc := lexcontext.New()
	ir.Walk(walkerFunc(func(n ir.Node) bool {
		switch t := n.(type) {
		case *ir.Binary:
			pp := optimistic.ProgramPoint(t.ProgramPoint())
			if !pp.Valid() {
				pp = u.Allocator.Next()
			}
			u.TypeMap[pp] = t.MostPessimisticType()
		case *ir.Unary:
			pp := optimistic.ProgramPoint(t.ProgramPoint())
			if !pp.Valid() {
				pp = u.Allocator.Next()
			}
			u.TypeMap[pp] = t.MostPessimisticType()
		}
		return true
	}), lc, u.Program)
	return nil
}

// CodegenReadinessStage is the pipeline's terminal stage: it asserts the
// unit's program is non-nil and ready to be handed to an external
// BytecodeOps sink, without emitting anything itself — the concrete
// emitter stays out of scope for this module.
type CodegenReadinessStage struct{}

func (CodegenReadinessStage) Name() string { return "codegen-readiness" }

func (CodegenReadinessStage) Run(u *Unit) error {
	if u.Program == nil {
		return fmt.Errorf("compiler: unit has no program to hand to codegen")
	}
	return nil
}

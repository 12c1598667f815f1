package ir

import (
	"github.com/cwbudde/ecmacore/internal/lexcontext"
	"github.com/cwbudde/ecmacore/internal/token"
)

// If is an if/else statement; Alt is nil for a bodyless else.
type If struct {
	token  token.Token
	finish int
	test   Expression
	cons   Statement
	alt    Statement
}

func NewIf(tok token.Token, finish int, test Expression, cons, alt Statement) *If {
	return &If{token: tok, finish: finish, test: test, cons: cons, alt: alt}
}

func (n *If) Tok() token.Token         { return n.token }
func (n *If) Finish() int              { return n.finish }
func (n *If) Test() Expression         { return n.test }
func (n *If) Consequent() Statement    { return n.cons }
func (n *If) Alternate() Statement     { return n.alt }
func (n *If) statementNode()           {}
func (n *If) Kind() lexcontext.NodeKind { return lexcontext.KindIf }

// IsTerminal holds only when both arms exist and both are terminal.
func (n *If) IsTerminal() bool {
	return n.alt != nil && n.cons != nil && n.cons.IsTerminal() && n.alt.IsTerminal()
}

func (n *If) String() string {
	s := "if (" + n.test.String() + ") " + n.cons.String()
	if n.alt != nil {
		s += " else " + n.alt.String()
	}
	return s
}

func (n *If) WithTest(e Expression) *If {
	if sameExpr(n.test, e) {
		return n
	}
	cp := *n
	cp.test = e
	return &cp
}

func (n *If) WithConsequent(s Statement) *If {
	if sameStmt(n.cons, s) {
		return n
	}
	cp := *n
	cp.cons = s
	return &cp
}

func (n *If) WithAlternate(s Statement) *If {
	if sameStmt(n.alt, s) {
		return n
	}
	cp := *n
	cp.alt = s
	return &cp
}

// Case is one arm of a Switch; Test is nil for the default clause.
type Case struct {
	token  token.Token
	finish int
	test   Expression
	body   []Statement
}

func NewCase(tok token.Token, finish int, test Expression, body []Statement) *Case {
	return &Case{token: tok, finish: finish, test: test, body: body}
}

func (n *Case) Tok() token.Token          { return n.token }
func (n *Case) Finish() int               { return n.finish }
func (n *Case) Test() Expression          { return n.test }
func (n *Case) IsDefault() bool           { return n.test == nil }
func (n *Case) Body() []Statement         { return n.body }
func (n *Case) Kind() lexcontext.NodeKind { return lexcontext.KindCase }

func (n *Case) String() string {
	if n.IsDefault() {
		return "default: ..."
	}
	return "case " + n.test.String() + ": ..."
}

func (n *Case) WithTest(e Expression) *Case {
	if sameExpr(n.test, e) {
		return n
	}
	cp := *n
	cp.test = e
	return &cp
}

func (n *Case) WithBody(body []Statement) *Case {
	cp := *n
	cp.body = body
	return &cp
}

// Switch flags.
const (
	SwitchHasDefault uint8 = 1 << iota
)

// Switch dispatches on Tag against each Case's Test. TagSymbolName, when
// non-empty, names the synthetic temporary the flow pass introduced to
// hold Tag's value across cases.
type Switch struct {
	token         token.Token
	finish        int
	tag           Expression
	cases         []*Case
	flags         uint8
	breakLabel    string
	tagSymbolName string
}

func NewSwitch(tok token.Token, finish int, tag Expression, cases []*Case) *Switch {
	s := &Switch{token: tok, finish: finish, tag: tag, cases: cases}
	for _, c := range cases {
		if c.IsDefault() {
			s.flags |= SwitchHasDefault
		}
	}
	return s
}

func (n *Switch) Tok() token.Token          { return n.token }
func (n *Switch) Finish() int               { return n.finish }
func (n *Switch) Tag() Expression           { return n.tag }
func (n *Switch) Cases() []*Case            { return n.cases }
func (n *Switch) HasDefault() bool          { return n.flags&SwitchHasDefault != 0 }
func (n *Switch) TagSymbolName() string     { return n.tagSymbolName }
func (n *Switch) statementNode()            {}
func (n *Switch) Kind() lexcontext.NodeKind { return lexcontext.KindSwitch }
func (n *Switch) BreakLabel() string        { return n.breakLabel }

// IsTerminal holds only with a default clause present and every clause's
// body terminal (no clause falls out the bottom). An empty clause falls
// through into the next one; an empty last clause falls out the bottom.
func (n *Switch) IsTerminal() bool {
	if !n.HasDefault() {
		return false
	}
	for i, c := range n.cases {
		if len(c.body) == 0 {
			if i == len(n.cases)-1 {
				return false
			}
			continue
		}
		if !c.body[len(c.body)-1].IsTerminal() {
			return false
		}
	}
	return true
}

func (n *Switch) String() string { return "switch (" + n.tag.String() + ") { ... }" }

func (n *Switch) WithTag(e Expression) *Switch {
	if sameExpr(n.tag, e) {
		return n
	}
	cp := *n
	cp.tag = e
	return &cp
}

func (n *Switch) WithCases(cases []*Case) *Switch {
	cp := *n
	cp.cases = cases
	cp.flags &^= SwitchHasDefault
	for _, c := range cases {
		if c.IsDefault() {
			cp.flags |= SwitchHasDefault
		}
	}
	return &cp
}

func (n *Switch) WithBreakLabel(label string) *Switch {
	if n.breakLabel == label {
		return n
	}
	cp := *n
	cp.breakLabel = label
	return &cp
}

func (n *Switch) WithTagSymbolName(name string) *Switch {
	if n.tagSymbolName == name {
		return n
	}
	cp := *n
	cp.tagSymbolName = name
	return &cp
}

// While models both `while` and, via IsDoWhile, `do...while` as a single
// loop node, distinguished by a flag rather than duplicated node kinds.
type While struct {
	token         token.Token
	finish        int
	test          Expression
	body          Statement
	isDoWhile     bool
	continueLabel string
	breakLabel    string
}

func NewWhile(tok token.Token, finish int, test Expression, body Statement, isDoWhile bool) *While {
	return &While{token: tok, finish: finish, test: test, body: body, isDoWhile: isDoWhile}
}

func (n *While) Tok() token.Token          { return n.token }
func (n *While) Finish() int               { return n.finish }
func (n *While) Test() Expression          { return n.test }
func (n *While) Body() Statement           { return n.body }
func (n *While) IsDoWhile() bool           { return n.isDoWhile }
func (n *While) statementNode()            {}
func (n *While) IsTerminal() bool          { return false }
func (n *While) Kind() lexcontext.NodeKind { return lexcontext.KindWhile }
func (n *While) ContinueLabel() string     { return n.continueLabel }
func (n *While) BreakLabel() string        { return n.breakLabel }

// MustEnter reports whether the loop body always runs at least once
// (true only for do-while).
func (n *While) MustEnter() bool { return n.isDoWhile }

func (n *While) String() string {
	if n.isDoWhile {
		return "do " + n.body.String() + " while (" + n.test.String() + ");"
	}
	return "while (" + n.test.String() + ") " + n.body.String()
}

func (n *While) WithTest(e Expression) *While {
	if sameExpr(n.test, e) {
		return n
	}
	cp := *n
	cp.test = e
	return &cp
}

func (n *While) WithBody(s Statement) *While {
	if sameStmt(n.body, s) {
		return n
	}
	cp := *n
	cp.body = s
	return &cp
}

func (n *While) WithContinueLabel(label string) *While {
	if n.continueLabel == label {
		return n
	}
	cp := *n
	cp.continueLabel = label
	return &cp
}

func (n *While) WithBreakLabel(label string) *While {
	if n.breakLabel == label {
		return n
	}
	cp := *n
	cp.breakLabel = label
	return &cp
}

// For flags, packed into a single word, distinguishing for-in/for-of/
// for-each's iteration protocol from plain C-style for.
const (
	ForIsForIn uint8 = 1 << iota
	ForIsForEach
	ForIsForOf
	ForPerIterationScope
)

// For covers the C-style `for(init;test;update)` as well as for-in/for-of/
// for-each, distinguished by flags rather than separate node kinds, to
// avoid triplicating the codegen visitor entry.
type For struct {
	token         token.Token
	finish        int
	init          Node // *Var, Expression, or nil
	test          Expression
	update        Expression
	left          Expression // for-in/for-of/for-each binding target
	right         Expression // for-in/for-of/for-each iterated expression
	body          Statement
	flags         uint8
	continueLabel string
	breakLabel    string
}

func NewFor(tok token.Token, finish int, init Node, test, update Expression, body Statement) *For {
	return &For{token: tok, finish: finish, init: init, test: test, update: update, body: body}
}

func NewForIn(tok token.Token, finish int, left, right Expression, body Statement, flags uint8) *For {
	return &For{token: tok, finish: finish, left: left, right: right, body: body, flags: flags}
}

func (n *For) Tok() token.Token          { return n.token }
func (n *For) Finish() int               { return n.finish }
func (n *For) Init() Node                { return n.init }
func (n *For) Test() Expression          { return n.test }
func (n *For) Update() Expression        { return n.update }
func (n *For) Left() Expression          { return n.left }
func (n *For) Right() Expression         { return n.right }
func (n *For) Body() Statement           { return n.body }
func (n *For) IsForIn() bool             { return n.flags&ForIsForIn != 0 }
func (n *For) IsForEach() bool           { return n.flags&ForIsForEach != 0 }
func (n *For) IsForOf() bool             { return n.flags&ForIsForOf != 0 }
func (n *For) PerIterationScope() bool   { return n.flags&ForPerIterationScope != 0 }
func (n *For) statementNode()            {}
func (n *For) IsTerminal() bool          { return false }
func (n *For) Kind() lexcontext.NodeKind { return lexcontext.KindFor }
func (n *For) ContinueLabel() string     { return n.continueLabel }
func (n *For) BreakLabel() string        { return n.breakLabel }

// MustEnter is always false for for/for-in/for-of/for-each: the test (or
// the iterator's first next()) always runs before the body can.
func (n *For) MustEnter() bool { return false }

func (n *For) String() string {
	if n.IsForIn() || n.IsForOf() || n.IsForEach() {
		kw := "in"
		if n.IsForOf() {
			kw = "of"
		}
		return "for (" + n.left.String() + " " + kw + " " + n.right.String() + ") " + n.body.String()
	}
	return "for (...) " + n.body.String()
}

func (n *For) WithInit(init Node) *For {
	cp := *n
	cp.init = init
	return &cp
}

func (n *For) WithTest(e Expression) *For {
	if sameExpr(n.test, e) {
		return n
	}
	cp := *n
	cp.test = e
	return &cp
}

func (n *For) WithUpdate(e Expression) *For {
	if sameExpr(n.update, e) {
		return n
	}
	cp := *n
	cp.update = e
	return &cp
}

func (n *For) WithLeft(e Expression) *For {
	if sameExpr(n.left, e) {
		return n
	}
	cp := *n
	cp.left = e
	return &cp
}

func (n *For) WithRight(e Expression) *For {
	if sameExpr(n.right, e) {
		return n
	}
	cp := *n
	cp.right = e
	return &cp
}

func (n *For) WithBody(s Statement) *For {
	if sameStmt(n.body, s) {
		return n
	}
	cp := *n
	cp.body = s
	return &cp
}

func (n *For) WithPerIterationScope(v bool) *For {
	if n.PerIterationScope() == v {
		return n
	}
	cp := *n
	if v {
		cp.flags |= ForPerIterationScope
	} else {
		cp.flags &^= ForPerIterationScope
	}
	return &cp
}

func (n *For) WithContinueLabel(label string) *For {
	if n.continueLabel == label {
		return n
	}
	cp := *n
	cp.continueLabel = label
	return &cp
}

func (n *For) WithBreakLabel(label string) *For {
	if n.breakLabel == label {
		return n
	}
	cp := *n
	cp.breakLabel = label
	return &cp
}

// CatchBindingKind distinguishes a catch clause's parameter shape: a plain
// identifier, an array-destructuring pattern, or an object-destructuring
// pattern.
type CatchBindingKind uint8

const (
	CatchBindingIdentifier CatchBindingKind = iota
	CatchBindingArrayPattern
	CatchBindingObjectPattern
)

// Catch is one of a try's catch clauses. Condition is nil for a plain
// `catch (e)`; when present, it is the catch-if guard expression (`catch (e)
// if (cond)`), evaluated against the thrown value before this clause's body
// runs — a thrown value that matches no conditional catch falls through to
// propagate past the try, same as if no catch had matched at all.
// IsSyntheticRethrow marks a catch built by newSyntheticRethrowCatch to
// re-raise past an inlined finally rather than one that came from source;
// no pass in this module creates such a catch.
type Catch struct {
	token              token.Token
	finish             int
	bindingKind        CatchBindingKind
	param              *Ident
	condition          Expression
	body               *Block
	isSyntheticRethrow bool
}

// NewCatch rejects an identifier-kind catch with a nil param at
// construction time. bindingKind is recorded as given and is not checked
// against param. condition may be nil for an unconditional catch.
func NewCatch(tok token.Token, finish int, bindingKind CatchBindingKind, param *Ident, condition Expression, body *Block) (*Catch, error) {
	if param == nil && bindingKind == CatchBindingIdentifier {
		return nil, &invalidCatchParameterError{reason: "missing catch parameter"}
	}
	return &Catch{token: tok, finish: finish, bindingKind: bindingKind, param: param, condition: condition, body: body}, nil
}

func newSyntheticRethrowCatch(tok token.Token, finish int, param *Ident, body *Block) *Catch {
	return &Catch{token: tok, finish: finish, bindingKind: CatchBindingIdentifier, param: param, body: body, isSyntheticRethrow: true}
}

type invalidCatchParameterError struct{ reason string }

func (e *invalidCatchParameterError) Error() string { return "invalid catch parameter: " + e.reason }

func (n *Catch) Tok() token.Token              { return n.token }
func (n *Catch) Finish() int                   { return n.finish }
func (n *Catch) BindingKind() CatchBindingKind { return n.bindingKind }
func (n *Catch) Param() *Ident                 { return n.param }
func (n *Catch) Condition() Expression         { return n.condition }
func (n *Catch) Body() *Block                  { return n.body }
func (n *Catch) IsSyntheticRethrow() bool      { return n.isSyntheticRethrow }
func (n *Catch) Kind() lexcontext.NodeKind     { return lexcontext.KindCatch }

func (n *Catch) String() string {
	s := "catch (" + n.param.String() + ")"
	if n.condition != nil {
		s += " if (" + n.condition.String() + ")"
	}
	return s + " " + n.body.String()
}

func (n *Catch) WithParam(p *Ident) *Catch {
	if n.param == p {
		return n
	}
	cp := *n
	cp.param = p
	return &cp
}

func (n *Catch) WithCondition(e Expression) *Catch {
	if sameExpr(n.condition, e) {
		return n
	}
	cp := *n
	cp.condition = e
	return &cp
}

func (n *Catch) WithBody(b *Block) *Catch {
	if n.body == b {
		return n
	}
	cp := *n
	cp.body = b
	return &cp
}

// Try flags.
const (
	TryFinallyInlined uint8 = 1 << iota
)

// Try models try/catch/finally. Catches holds the list of catch clauses in
// source order (nil/empty when the try has no catch); a conditional catch
// (Catch.Condition != nil) that doesn't match falls through to the next
// one, so a catch list with only conditional clauses can still propagate
// the exception. Finally is nil when there is no finally clause. When
// FinallyInlined is set, the flow pass has appended a copy of Finally to
// the end of Block and of each catch body (a return or throw out of the
// middle of them gets no copy), and Finally is kept here only for
// source-fidelity printing, not for codegen traversal; FinallyLabel is the
// unique label the inlined copies were wrapped in, letting break/continue
// resolve back to the owning try (see lexcontext.GetTryNodeForInlinedFinally).
type Try struct {
	token        token.Token
	finish       int
	block        *Block
	catches      []*Catch
	finally      *Block
	finallyLabel string
	flags        uint8
}

func NewTry(tok token.Token, finish int, block *Block, catches []*Catch, finally *Block) *Try {
	return &Try{token: tok, finish: finish, block: block, catches: catches, finally: finally}
}

func (n *Try) Tok() token.Token          { return n.token }
func (n *Try) Finish() int               { return n.finish }
func (n *Try) Block() *Block             { return n.block }
func (n *Try) Catches() []*Catch         { return n.catches }
func (n *Try) Finally() *Block           { return n.finally }
func (n *Try) FinallyInlined() bool      { return n.flags&TryFinallyInlined != 0 }
func (n *Try) FinallyLabel() string      { return n.finallyLabel }
func (n *Try) statementNode()            {}
func (n *Try) Kind() lexcontext.NodeKind { return lexcontext.KindTry }

// IsTerminal holds when every exit path is terminal: the finally alone
// being terminal is enough regardless of the rest; otherwise the block and
// every catch body must be terminal, and — since a thrown value can run
// out of conditional catches to match — the catch list must end in an
// unconditional catch so no exit path can fall through uncaught.
func (n *Try) IsTerminal() bool {
	if n.finally != nil && n.finally.IsTerminal() {
		return true
	}
	if len(n.catches) == 0 {
		return n.block.IsTerminal()
	}
	if !n.block.IsTerminal() {
		return false
	}
	for _, c := range n.catches {
		if !c.body.IsTerminal() {
			return false
		}
	}
	return n.catches[len(n.catches)-1].condition == nil
}

func (n *Try) String() string { return "try " + n.block.String() }

func (n *Try) WithBlock(b *Block) *Try {
	if n.block == b {
		return n
	}
	cp := *n
	cp.block = b
	return &cp
}

func (n *Try) WithCatches(cs []*Catch) *Try {
	cp := *n
	cp.catches = cs
	return &cp
}

func (n *Try) WithFinally(b *Block) *Try {
	if n.finally == b {
		return n
	}
	cp := *n
	cp.finally = b
	return &cp
}

// WithFinallyInlined marks that finally has been duplicated onto every
// exit path under the unique label finallyLabel; callers pass the
// already-rewritten block/catches alongside.
func (n *Try) WithFinallyInlined(block *Block, catches []*Catch, finallyLabel string) *Try {
	cp := *n
	cp.block = block
	cp.catches = catches
	cp.finallyLabel = finallyLabel
	cp.flags |= TryFinallyInlined
	return &cp
}

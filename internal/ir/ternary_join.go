package ir

import (
	"github.com/cwbudde/ecmacore/internal/token"
	"github.com/cwbudde/ecmacore/internal/types"
)

// LocalVariableConversion is a single (symbol, from, to) entry in the
// singly-linked list a JoinPredecessor carries at a control-flow join
// point. SymbolName identifies the symbol by name rather than pointer,
// matching the non-owning back-reference discipline Ident uses.
type LocalVariableConversion struct {
	SymbolName string
	From       *types.Type
	To         *types.Type
	Next       *LocalVariableConversion
}

// HasLiveConversion walks the chain starting at c and reports whether any
// entry's To-type has a slot on the given symbol — a conversion is live
// if the symbol has a slot for its To-type. hasSlot abstracts the
// symbol-table lookup so this package need not import internal/symbols.
func HasLiveConversion(c *LocalVariableConversion, hasSlot func(symbolName string, t *types.Type) bool) bool {
	for n := c; n != nil; n = n.Next {
		if hasSlot(n.SymbolName, n.To) {
			return true
		}
	}
	return false
}

// JoinPredecessorExpression wraps a subexpression with the conversion
// chain that applies when control reaches this point from a join (e.g. a
// ternary's two branches converging on a common type).
type JoinPredecessorExpression struct {
	token      token.Token
	finish     int
	expr       Expression
	conversion *LocalVariableConversion
}

func NewJoinPredecessorExpression(expr Expression) *JoinPredecessorExpression {
	if expr == nil {
		return &JoinPredecessorExpression{}
	}
	return &JoinPredecessorExpression{token: expr.Tok(), finish: expr.Finish(), expr: expr}
}

func (j *JoinPredecessorExpression) Tok() token.Token { return j.token }
func (j *JoinPredecessorExpression) Finish() int      { return j.finish }
func (j *JoinPredecessorExpression) Expression() Expression { return j.expr }
func (j *JoinPredecessorExpression) Conversion() *LocalVariableConversion { return j.conversion }
func (j *JoinPredecessorExpression) expressionNode() {}
func (j *JoinPredecessorExpression) String() string {
	if j.expr == nil {
		return ""
	}
	return j.expr.String()
}

func (j *JoinPredecessorExpression) WithExpression(e Expression) *JoinPredecessorExpression {
	if sameExpr(j.expr, e) {
		return j
	}
	cp := *j
	cp.expr = e
	return &cp
}

func (j *JoinPredecessorExpression) WithConversion(c *LocalVariableConversion) *JoinPredecessorExpression {
	if j.conversion == c {
		return j
	}
	cp := *j
	cp.conversion = c
	return &cp
}

// Ternary is `test ? ifTrue : ifFalse`; both branches are wrapped in a
// JoinPredecessorExpression since they converge at the ternary's result.
type Ternary struct {
	token   token.Token
	finish  int
	test    Expression
	ifTrue  *JoinPredecessorExpression
	ifFalse *JoinPredecessorExpression
}

func NewTernary(tok token.Token, finish int, test Expression, ifTrue, ifFalse Expression) *Ternary {
	return &Ternary{
		token: tok, finish: finish, test: test,
		ifTrue:  NewJoinPredecessorExpression(ifTrue),
		ifFalse: NewJoinPredecessorExpression(ifFalse),
	}
}

func (t *Ternary) Tok() token.Token                   { return t.token }
func (t *Ternary) Finish() int                        { return t.finish }
func (t *Ternary) Test() Expression                   { return t.test }
func (t *Ternary) IfTrue() *JoinPredecessorExpression  { return t.ifTrue }
func (t *Ternary) IfFalse() *JoinPredecessorExpression { return t.ifFalse }
func (t *Ternary) expressionNode()                    {}
func (t *Ternary) String() string {
	return "(" + t.test.String() + " ? " + t.ifTrue.String() + " : " + t.ifFalse.String() + ")"
}

// Type is widestReturnType of the two branch types.
func (t *Ternary) Type(branchType func(Expression) *types.Type) *types.Type {
	return types.WidestReturnType(branchType(t.ifTrue.Expression()), branchType(t.ifFalse.Expression()))
}

func (t *Ternary) WithTest(e Expression) *Ternary {
	if sameExpr(t.test, e) {
		return t
	}
	cp := *t
	cp.test = e
	return &cp
}

func (t *Ternary) WithIfTrue(j *JoinPredecessorExpression) *Ternary {
	if t.ifTrue == j {
		return t
	}
	cp := *t
	cp.ifTrue = j
	return &cp
}

func (t *Ternary) WithIfFalse(j *JoinPredecessorExpression) *Ternary {
	if t.ifFalse == j {
		return t
	}
	cp := *t
	cp.ifFalse = j
	return &cp
}

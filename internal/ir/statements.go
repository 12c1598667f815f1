package ir

import (
	"github.com/cwbudde/ecmacore/internal/lexcontext"
	"github.com/cwbudde/ecmacore/internal/token"
)

// ExpressionStatement wraps an expression evaluated for effect.
type ExpressionStatement struct {
	token  token.Token
	finish int
	expr   Expression
}

func NewExpressionStatement(tok token.Token, finish int, expr Expression) *ExpressionStatement {
	return &ExpressionStatement{token: tok, finish: finish, expr: expr}
}

func (s *ExpressionStatement) Tok() token.Token     { return s.token }
func (s *ExpressionStatement) Finish() int          { return s.finish }
func (s *ExpressionStatement) Expression() Expression { return s.expr }
func (s *ExpressionStatement) statementNode()       {}
func (s *ExpressionStatement) IsTerminal() bool     { return false }
func (s *ExpressionStatement) String() string       { return s.expr.String() + ";" }

func (s *ExpressionStatement) WithExpression(e Expression) *ExpressionStatement {
	if sameExpr(s.expr, e) {
		return s
	}
	cp := *s
	cp.expr = e
	return &cp
}

// VarKind distinguishes var/let/const declaration semantics.
type VarKind uint8

const (
	VarVar VarKind = iota
	VarLet
	VarConst
)

func (k VarKind) String() string {
	switch k {
	case VarLet:
		return "let"
	case VarConst:
		return "const"
	default:
		return "var"
	}
}

// Var is a var/let/const declaration with an optional initializer.
type Var struct {
	token  token.Token
	finish int
	kind   VarKind
	name   *Ident
	init   Expression // nil if uninitialized
}

func NewVar(tok token.Token, finish int, kind VarKind, name *Ident, init Expression) *Var {
	return &Var{token: tok, finish: finish, kind: kind, name: name, init: init}
}

func (v *Var) Tok() token.Token  { return v.token }
func (v *Var) Finish() int       { return v.finish }
func (v *Var) Kind() VarKind     { return v.kind }
func (v *Var) Name() *Ident      { return v.name }
func (v *Var) Init() Expression  { return v.init }
func (v *Var) statementNode()    {}
func (v *Var) IsTerminal() bool  { return false }
func (v *Var) String() string {
	if v.init == nil {
		return v.kind.String() + " " + v.name.String() + ";"
	}
	return v.kind.String() + " " + v.name.String() + " = " + v.init.String() + ";"
}

func (v *Var) WithName(n *Ident) *Var {
	if v.name == n {
		return v
	}
	cp := *v
	cp.name = n
	return &cp
}

func (v *Var) WithInit(e Expression) *Var {
	if sameExpr(v.init, e) {
		return v
	}
	cp := *v
	cp.init = e
	return &cp
}

// Throw is always terminal.
type Throw struct {
	token  token.Token
	finish int
	expr   Expression
}

func NewThrow(tok token.Token, finish int, expr Expression) *Throw {
	return &Throw{token: tok, finish: finish, expr: expr}
}

func (t *Throw) Tok() token.Token      { return t.token }
func (t *Throw) Finish() int           { return t.finish }
func (t *Throw) Expression() Expression { return t.expr }
func (t *Throw) statementNode()        {}
func (t *Throw) IsTerminal() bool      { return true }
func (t *Throw) String() string        { return "throw " + t.expr.String() + ";" }

func (t *Throw) WithExpression(e Expression) *Throw {
	if sameExpr(t.expr, e) {
		return t
	}
	cp := *t
	cp.expr = e
	return &cp
}

// Return is always terminal. Expr is nil for a bare `return;`.
type Return struct {
	token  token.Token
	finish int
	expr   Expression
	isYield bool
}

func NewReturn(tok token.Token, finish int, expr Expression) *Return {
	return &Return{token: tok, finish: finish, expr: expr}
}

func NewYield(tok token.Token, finish int, expr Expression) *Return {
	return &Return{token: tok, finish: finish, expr: expr, isYield: true}
}

func (r *Return) Tok() token.Token      { return r.token }
func (r *Return) Finish() int           { return r.finish }
func (r *Return) Expression() Expression { return r.expr }
func (r *Return) IsYield() bool         { return r.isYield }
func (r *Return) statementNode()        {}
func (r *Return) IsTerminal() bool      { return true }
func (r *Return) String() string {
	kw := "return"
	if r.isYield {
		kw = "yield"
	}
	if r.expr == nil {
		return kw + ";"
	}
	return kw + " " + r.expr.String() + ";"
}

func (r *Return) WithExpression(e Expression) *Return {
	if sameExpr(r.expr, e) {
		return r
	}
	cp := *r
	cp.expr = e
	return &cp
}

// Break/Continue carry an optional label name; "" means the nearest
// unlabeled target.
type Break struct {
	token  token.Token
	finish int
	label  string
}

func NewBreak(tok token.Token, finish int, label string) *Break {
	return &Break{token: tok, finish: finish, label: label}
}

func (b *Break) Tok() token.Token  { return b.token }
func (b *Break) Finish() int      { return b.finish }
func (b *Break) Label() string    { return b.label }
func (b *Break) statementNode()   {}
func (b *Break) IsTerminal() bool { return true }
func (b *Break) String() string {
	if b.label == "" {
		return "break;"
	}
	return "break " + b.label + ";"
}

type Continue struct {
	token  token.Token
	finish int
	label  string
}

func NewContinue(tok token.Token, finish int, label string) *Continue {
	return &Continue{token: tok, finish: finish, label: label}
}

func (c *Continue) Tok() token.Token  { return c.token }
func (c *Continue) Finish() int       { return c.finish }
func (c *Continue) Label() string     { return c.label }
func (c *Continue) statementNode()    {}
func (c *Continue) IsTerminal() bool  { return true }
func (c *Continue) String() string {
	if c.label == "" {
		return "continue;"
	}
	return "continue " + c.label + ";"
}

// Label wraps a statement with a name that Break/Continue can target.
type Label struct {
	token  token.Token
	finish int
	name   string
	body   Statement
}

func NewLabel(tok token.Token, finish int, name string, body Statement) *Label {
	return &Label{token: tok, finish: finish, name: name, body: body}
}

func (l *Label) Tok() token.Token  { return l.token }
func (l *Label) Finish() int       { return l.finish }
func (l *Label) Name() string      { return l.name }
func (l *Label) Body() Statement   { return l.body }
func (l *Label) statementNode()    {}
func (l *Label) IsTerminal() bool  { return l.body != nil && l.body.IsTerminal() }
func (l *Label) String() string    { return l.name + ": " + l.body.String() }
func (l *Label) Kind() lexcontext.NodeKind { return lexcontext.KindLabel }
func (l *Label) LabelName() string         { return l.name }

// BreakLabel satisfies lexcontext.Breakable, returning the label's own
// name; a labeled break with that name resolves to this Label.
func (l *Label) BreakLabel() string { return l.name }

func (l *Label) WithBody(s Statement) *Label {
	if sameStmt(l.body, s) {
		return l
	}
	cp := *l
	cp.body = s
	return &cp
}

package ir

import (
	"github.com/cwbudde/ecmacore/internal/token"
	"github.com/cwbudde/ecmacore/internal/types"
)

const invalidProgramPoint = -1

// Access represents `base.prop`.
type Access struct {
	token        token.Token
	finish       int
	base         Expression
	property     string
	isFunction   bool // is the callee of a Call
	isSuper      bool
	programPoint int32
	pinnedType   *types.Type
}

func NewAccess(tok token.Token, finish int, base Expression, property string) *Access {
	return &Access{token: tok, finish: finish, base: base, property: property, programPoint: invalidProgramPoint}
}

func (a *Access) Tok() token.Token      { return a.token }
func (a *Access) Finish() int           { return a.finish }
func (a *Access) Base() Expression      { return a.base }
func (a *Access) Property() string      { return a.property }
func (a *Access) IsFunction() bool      { return a.isFunction }
func (a *Access) IsSuper() bool         { return a.isSuper }
func (a *Access) ProgramPoint() int32   { return a.programPoint }
func (a *Access) expressionNode()       {}
func (a *Access) String() string        { return a.base.String() + "." + a.property }

// Type returns the pinned type, or OBJECT if none has been assigned yet.
func (a *Access) Type() *types.Type {
	if a.pinnedType != nil {
		return a.pinnedType
	}
	return types.OBJECT
}

func (a *Access) WithBase(e Expression) *Access {
	if sameExpr(a.base, e) {
		return a
	}
	cp := *a
	cp.base = e
	return &cp
}

func (a *Access) WithIsFunction(v bool) *Access {
	if a.isFunction == v {
		return a
	}
	cp := *a
	cp.isFunction = v
	return &cp
}

func (a *Access) WithProgramPoint(pp int32) *Access {
	if a.programPoint == pp {
		return a
	}
	cp := *a
	cp.programPoint = pp
	return &cp
}

func (a *Access) WithType(t *types.Type) *Access {
	if a.pinnedType == t {
		return a
	}
	cp := *a
	cp.pinnedType = t
	return &cp
}

// Index represents `base[idx]`.
type Index struct {
	token        token.Token
	finish       int
	base         Expression
	index        Expression
	isFunction   bool
	programPoint int32
	pinnedType   *types.Type
}

func NewIndex(tok token.Token, finish int, base, index Expression) *Index {
	return &Index{token: tok, finish: finish, base: base, index: index, programPoint: invalidProgramPoint}
}

func (x *Index) Tok() token.Token    { return x.token }
func (x *Index) Finish() int         { return x.finish }
func (x *Index) Base() Expression    { return x.base }
func (x *Index) Index() Expression   { return x.index }
func (x *Index) IsFunction() bool    { return x.isFunction }
func (x *Index) ProgramPoint() int32 { return x.programPoint }
func (x *Index) expressionNode()     {}
func (x *Index) String() string      { return x.base.String() + "[" + x.index.String() + "]" }

func (x *Index) Type() *types.Type {
	if x.pinnedType != nil {
		return x.pinnedType
	}
	return types.OBJECT
}

func (x *Index) WithBase(e Expression) *Index {
	if sameExpr(x.base, e) {
		return x
	}
	cp := *x
	cp.base = e
	return &cp
}

func (x *Index) WithIndex(e Expression) *Index {
	if sameExpr(x.index, e) {
		return x
	}
	cp := *x
	cp.index = e
	return &cp
}

func (x *Index) WithProgramPoint(pp int32) *Index {
	if x.programPoint == pp {
		return x
	}
	cp := *x
	cp.programPoint = pp
	return &cp
}

func (x *Index) WithType(t *types.Type) *Index {
	if x.pinnedType == t {
		return x
	}
	cp := *x
	cp.pinnedType = t
	return &cp
}

// Call represents `f(args)` or, when IsNew is set, `new f(args)`.
type Call struct {
	token          token.Token
	finish         int
	callee         Expression
	args           []Expression
	isNew          bool
	isApplyToCall  bool
	evalArgs       []Expression // non-nil only when callee is the identifier "eval"
	programPoint   int32
	pinnedType     *types.Type
}

func NewCall(tok token.Token, finish int, callee Expression, args []Expression, isNew bool) *Call {
	return &Call{token: tok, finish: finish, callee: callee, args: args, isNew: isNew, programPoint: invalidProgramPoint}
}

func (c *Call) Tok() token.Token       { return c.token }
func (c *Call) Finish() int            { return c.finish }
func (c *Call) Callee() Expression     { return c.callee }
func (c *Call) Args() []Expression     { return c.args }
func (c *Call) IsNew() bool            { return c.isNew }
func (c *Call) IsApplyToCall() bool    { return c.isApplyToCall }
func (c *Call) EvalArgs() []Expression { return c.evalArgs }
func (c *Call) ProgramPoint() int32    { return c.programPoint }
func (c *Call) expressionNode()        {}

// Type is OBJECT by default; a prior optimistic pass may pin INT as the
// most optimistic guess.
func (c *Call) Type() *types.Type {
	if c.pinnedType != nil {
		return c.pinnedType
	}
	return types.OBJECT
}

func (c *Call) WithCallee(e Expression) *Call {
	if sameExpr(c.callee, e) {
		return c
	}
	cp := *c
	cp.callee = e
	return &cp
}

func (c *Call) WithArgs(args []Expression) *Call {
	cp := *c
	cp.args = args
	return &cp
}

func (c *Call) WithIsApplyToCall(v bool) *Call {
	if c.isApplyToCall == v {
		return c
	}
	cp := *c
	cp.isApplyToCall = v
	return &cp
}

func (c *Call) WithEvalArgs(args []Expression) *Call {
	cp := *c
	cp.evalArgs = args
	return &cp
}

func (c *Call) WithProgramPoint(pp int32) *Call {
	if c.programPoint == pp {
		return c
	}
	cp := *c
	cp.programPoint = pp
	return &cp
}

func (c *Call) WithType(t *types.Type) *Call {
	if c.pinnedType == t {
		return c
	}
	cp := *c
	cp.pinnedType = t
	return &cp
}

func (c *Call) String() string {
	s := c.callee.String() + "("
	for i, a := range c.args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	s += ")"
	if c.isNew {
		s = "new " + s
	}
	return s
}

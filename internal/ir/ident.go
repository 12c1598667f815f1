package ir

import (
	"github.com/cwbudde/ecmacore/internal/token"
	"github.com/cwbudde/ecmacore/internal/types"
)

// Ident is a reference to a named binding. It is a non-owning back
// reference: the owning Symbol lives in the defining block's symbol
// table; an ident node holds a non-owning back reference looked up by
// name.
type Ident struct {
	token      token.Token
	finish     int
	name       string
	typ        *types.Type // pinned type, nil until a pass narrows it
	isFunction bool        // is the callee of a Call
}

func NewIdent(tok token.Token, finish int, name string) *Ident {
	return &Ident{token: tok, finish: finish, name: name}
}

func (i *Ident) Tok() token.Token   { return i.token }
func (i *Ident) Finish() int        { return i.finish }
func (i *Ident) Name() string       { return i.name }
func (i *Ident) Type() *types.Type  { return i.typ }
func (i *Ident) IsFunction() bool   { return i.isFunction }
func (i *Ident) expressionNode()    {}
func (i *Ident) String() string     { return i.name }

// WithType returns i unchanged if t is already pinned, else a copy with the
// new pinned type.
func (i *Ident) WithType(t *types.Type) *Ident {
	if i.typ == t {
		return i
	}
	cp := *i
	cp.typ = t
	return &cp
}

// WithIsFunction returns i unchanged if isFunction already matches.
func (i *Ident) WithIsFunction(v bool) *Ident {
	if i.isFunction == v {
		return i
	}
	cp := *i
	cp.isFunction = v
	return &cp
}

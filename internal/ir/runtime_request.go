package ir

import (
	"github.com/cwbudde/ecmacore/internal/token"
	"github.com/cwbudde/ecmacore/internal/types"
)

// RuntimeRequest enumerates the fallback "ask the runtime to do this op"
// operations a Runtime node may carry.
type RuntimeRequest uint8

const (
	ReqAdd RuntimeRequest = iota
	ReqEq
	ReqEqStrict
	ReqNe
	ReqNeStrict
	ReqLt
	ReqLe
	ReqGt
	ReqGe
	ReqIn
	ReqInstanceof
	ReqIsUndefined
	ReqIsNotUndefined
	ReqTypeof
	ReqReferenceError
	ReqNew
	ReqDebugger
	ReqGetTemplateObject
)

// reverse maps each comparison request to its logical reverse (a < b  <=>
// b > a); used when canonicalizing comparisons ahead of codegen.
var reverseOf = map[RuntimeRequest]RuntimeRequest{
	ReqLt: ReqGt, ReqGt: ReqLt,
	ReqLe: ReqGe, ReqGe: ReqLe,
}

// invertOf maps each comparison request to its logical negation (a==b <=>
// !(a!=b)).
var invertOf = map[RuntimeRequest]RuntimeRequest{
	ReqEq: ReqNe, ReqNe: ReqEq,
	ReqEqStrict: ReqNeStrict, ReqNeStrict: ReqEqStrict,
	ReqLt: ReqGe, ReqGe: ReqLt,
	ReqLe: ReqGt, ReqGt: ReqLe,
	ReqIsUndefined: ReqIsNotUndefined, ReqIsNotUndefined: ReqIsUndefined,
}

// Reverse returns the reversed-operand-order request, or req unchanged if
// it has no defined reverse (non-comparisons).
func (req RuntimeRequest) Reverse() RuntimeRequest {
	if r, ok := reverseOf[req]; ok {
		return r
	}
	return req
}

// Invert returns the logically negated request, or req unchanged if it has
// no defined inverse.
func (req RuntimeRequest) Invert() RuntimeRequest {
	if r, ok := invertOf[req]; ok {
		return r
	}
	return req
}

// Runtime is the catch-all node for operations the IR chooses not to model
// directly and instead asks the runtime to perform.
type Runtime struct {
	token   token.Token
	finish  int
	request RuntimeRequest
	args    []Expression
}

func NewRuntime(tok token.Token, finish int, request RuntimeRequest, args []Expression) *Runtime {
	return &Runtime{token: tok, finish: finish, request: request, args: args}
}

func (r *Runtime) Tok() token.Token        { return r.token }
func (r *Runtime) Finish() int             { return r.finish }
func (r *Runtime) Request() RuntimeRequest { return r.request }
func (r *Runtime) Args() []Expression      { return r.args }
func (r *Runtime) expressionNode()         {}
func (r *Runtime) String() string          { return "runtime-request" }

func (r *Runtime) WithArgs(args []Expression) *Runtime {
	cp := *r
	cp.args = args
	return &cp
}

// Type returns this request's return type, as determined by its request.
func (r *Runtime) Type() *types.Type {
	switch r.request {
	case ReqAdd:
		return types.OBJECT
	case ReqEq, ReqEqStrict, ReqNe, ReqNeStrict, ReqLt, ReqLe, ReqGt, ReqGe,
		ReqIn, ReqInstanceof, ReqIsUndefined, ReqIsNotUndefined:
		return types.BOOLEAN
	case ReqTypeof:
		return types.STRING
	case ReqNew, ReqGetTemplateObject:
		return types.OBJECT
	case ReqReferenceError, ReqDebugger:
		return types.UNDEFINED
	default:
		return types.OBJECT
	}
}

// Error is a parse-error placeholder node, kept in the tree so later passes
// can still walk around it rather than aborting the whole compile.
type Error struct {
	token   token.Token
	finish  int
	Message string
}

func NewError(tok token.Token, finish int, message string) *Error {
	return &Error{token: tok, finish: finish, Message: message}
}

func (e *Error) Tok() token.Token    { return e.token }
func (e *Error) Finish() int         { return e.finish }
func (e *Error) expressionNode()     {}
func (e *Error) String() string      { return "<error: " + e.Message + ">" }

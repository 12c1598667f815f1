package ir

import (
	"github.com/cwbudde/ecmacore/internal/lexcontext"
	"github.com/cwbudde/ecmacore/internal/token"
	"github.com/cwbudde/ecmacore/internal/types"
)

// FunctionKind distinguishes the ES5.1 function shapes the IR must
// represent distinctly for codegen purposes.
type FunctionKind uint8

const (
	FunctionNormal FunctionKind = iota
	FunctionScript // the top-level program body, modeled as a Function
	FunctionGetter
	FunctionSetter
	FunctionArrow
)

// Function flags, a dense bitset word for per-function booleans rather
// than one bool field each.
const (
	FuncIsProgram uint64 = 1 << iota
	FuncIsDeclared
	FuncUsesArguments
	FuncDefinesArguments
	FuncUsesSelfSymbol
	FuncUsesThis
	FuncHasEval
	FuncHasNestedEval
	FuncUsesAncestorScope
	FuncIsSplit
	FuncIsDeoptimizable
	FuncIsCached
	FuncHasApplyToCall
	FuncIsES6Method
	FuncIsClassConstructor
	FuncIsSubclassConstructor
	FuncUsesNewTarget
	FuncHasExpressionBody
)

// CacheState tracks a Function's relationship to the on-disk code cache.
type CacheState uint8

const (
	CacheStateUncached CacheState = iota
	CacheStateHit
	CacheStateMiss
	CacheStateRefused // e.g. contains a non-serializable constant
)

// Function is a function or the top-level program, modeled uniformly:
// the top-level program is itself a Function with FunctionKind SCRIPT.
type Function struct {
	token        token.Token
	finish       int
	identifier   *Ident // nil for anonymous functions and the script function
	parameters   []*Ident
	body         *Block
	kind         FunctionKind
	flags        uint64
	compileUnit  int32 // weak reference to the owning compile unit; Function does not own it
	returnType   *types.Type
	cacheState   CacheState
}

func NewFunction(tok token.Token, finish int, identifier *Ident, parameters []*Ident, body *Block, kind FunctionKind) *Function {
	return &Function{
		token:      tok,
		finish:     finish,
		identifier: identifier,
		parameters: parameters,
		body:       body,
		kind:       kind,
		returnType: types.OBJECT,
	}
}

func (f *Function) Tok() token.Token          { return f.token }
func (f *Function) Finish() int               { return f.finish }
func (f *Function) Identifier() *Ident        { return f.identifier }
func (f *Function) Parameters() []*Ident      { return f.parameters }
func (f *Function) Body() *Block              { return f.body }
func (f *Function) FunctionKind() FunctionKind { return f.kind }
func (f *Function) ReturnType() *types.Type   { return f.returnType }
func (f *Function) CacheState() CacheState    { return f.cacheState }
func (f *Function) CompileUnit() int32        { return f.compileUnit }
func (f *Function) statementNode()            {}
func (f *Function) expressionNode()           {} // function expressions are Expressions too
func (f *Function) Kind() lexcontext.NodeKind { return lexcontext.KindFunction }
func (f *Function) IsTerminal() bool          { return false }
func (f *Function) FlagBits() int32           { return int32(f.flags) }

// IsSplit satisfies lexcontext.SplitNode.
func (f *Function) IsSplit() bool { return f.flags&FuncIsSplit != 0 }

func (f *Function) Has(flag uint64) bool { return f.flags&flag != 0 }

func (f *Function) String() string {
	name := "<anonymous>"
	if f.identifier != nil {
		name = f.identifier.Name()
	}
	s := "function " + name + "(...)"
	if f.body != nil {
		s += " " + f.body.String()
	}
	return s
}

// WithFlagBits satisfies lexcontext.FlagCarrier. The walker only ever
// accumulates the low two bits (NEEDS_SCOPE/HAS_SCOPE_BLOCK) through this
// path; the richer semantic flags above are set directly via WithFlags by
// the symbol/scope pass.
func (f *Function) WithFlagBits(bits int32) Node {
	merged := (f.flags &^ 0b11) | uint64(bits)
	if merged == f.flags {
		return f
	}
	cp := *f
	cp.flags = merged
	return &cp
}

func (f *Function) WithFlags(flags uint64) *Function {
	if f.flags == flags {
		return f
	}
	cp := *f
	cp.flags = flags
	return &cp
}

func (f *Function) WithBody(b *Block) *Function {
	if f.body == b {
		return f
	}
	cp := *f
	cp.body = b
	return &cp
}

func (f *Function) WithParameters(params []*Ident) *Function {
	cp := *f
	cp.parameters = params
	return &cp
}

func (f *Function) WithReturnType(t *types.Type) *Function {
	if f.returnType == t {
		return f
	}
	cp := *f
	cp.returnType = t
	return &cp
}

func (f *Function) WithCompileUnit(id int32) *Function {
	if f.compileUnit == id {
		return f
	}
	cp := *f
	cp.compileUnit = id
	return &cp
}

func (f *Function) WithCacheState(s CacheState) *Function {
	if f.cacheState == s {
		return f
	}
	cp := *f
	cp.cacheState = s
	return &cp
}

// Package codegen defines the collaborator interfaces the compiler core
// emits into and links against, without owning a concrete bytecode target:
// the concrete emitter and its target instruction set are deliberately
// out of scope — the core only needs a BytecodeOps sink to hand
// finished IR to.
//
// Named after a conventional OpCode catalogue (load/store slot,
// arithmetic, cmp, array ops), generalized from a concrete stack-machine
// encoding to an abstract sink interface, since this package intentionally
// has no concrete emitter of its own — any caller (a real bytecode
// backend, or codegentest's recording double)
// supplies one.
package codegen

import "github.com/cwbudde/ecmacore/internal/types"

// CompareOp selects which flavor of comparison BytecodeOps.Cmp emits: the
// two forms differ only in which way a NaN operand tips the result
// (CmpG treats NaN as greater, CmpL as less).
type CompareOp int

const (
	CmpG CompareOp = iota // NaN compares as greater
	CmpL                  // NaN compares as less
)

// ArithOp is one of the arithmetic operators BytecodeOps.Arithmetic emits,
// generalized across both the int and double stack categories (the
// concrete sink decides which encoding to pick from the operand Type's
// BytecodeStackType()).
type ArithOp int

const (
	Add ArithOp = iota
	Sub
	Mul
	Div
	Rem
	Neg
)

// BytecodeOps is the instruction sink the compiler core writes into
// during codegen. A concrete bytecode backend, or the
// recording double in codegen/codegentest, implements this.
type BytecodeOps interface {
	// LoadSlot pushes the value of the local/global/upvalue slot
	// identified by index, typed per t's stack category.
	LoadSlot(index int32, t *types.Type)
	// StoreSlot pops the top of stack into slot index.
	StoreSlot(index int32, t *types.Type)
	// Ldc pushes a constant-pool literal.
	Ldc(value any, t *types.Type)
	// LoadUndefined pushes the runtime's UNDEFINED_DOUBLE sentinel.
	LoadUndefined()
	// LoadForcedInitializer pushes a symbol's declared-but-unassigned
	// zero value (e.g. hoisted var before its initializer runs).
	LoadForcedInitializer(t *types.Type)
	// Arithmetic pops operand(s) for op and pushes the result, typed t.
	Arithmetic(op ArithOp, t *types.Type)
	// Cmp pops two values and pushes a tri-state comparison result.
	Cmp(op CompareOp, t *types.Type)
	// ConvertTo emits the narrowing/widening conversion from->to.
	ConvertTo(from, to *types.Type)
	// DoReturn pops the return value (if t is non-nil) and returns.
	DoReturn(t *types.Type)
	// ALoad/AStore/NewArray cover array element access and creation.
	ALoad(elem *types.Type)
	AStore(elem *types.Type)
	NewArray(elem *types.Type, length int32)
}

// ConversionRank is the tri-state comparison result LinkerServices'
// CompareConversion returns
type ConversionRank int

const (
	Type1Better ConversionRank = iota
	Type2Better
	Indeterminate
)

// LinkerServices is the host-interop surface the compiler core calls into
// to resolve method-handle-style conversions.
type LinkerServices interface {
	GetTypeConverter(from, to *types.Type) (MethodHandle, bool)
	AsType(h MethodHandle, t *types.Type) MethodHandle
	// CompareConversion ranks converting src to t1 versus t2, with the
	// core-specific override that converting a rope-string representation
	// to String/CharSequence always ranks Type1Better regardless of the
	// host's own ranking.
	CompareConversion(src, t1, t2 *types.Type) ConversionRank
}

// MethodHandle is an opaque handle a MethodHandleFunctionality
// implementation hands back; the compiler core never inspects it, only
// threads it through further combinators.
type MethodHandle interface{ methodHandleMarker() }

// MethodHandleFunctionality mirrors the host's method-handle combinator
// set, abstracted so the compiler core depends only on this
// interface and never on a concrete host linking API.
type MethodHandleFunctionality interface {
	FilterArguments(h MethodHandle, pos int, filters ...MethodHandle) MethodHandle
	FilterReturnValue(h, filter MethodHandle) MethodHandle
	GuardWithTest(test, target, fallback MethodHandle) MethodHandle
	InsertArguments(h MethodHandle, pos int, values ...any) MethodHandle
	DropArguments(h MethodHandle, pos int, types ...*types.Type) MethodHandle
	FoldArguments(target, combiner MethodHandle) MethodHandle
	Cast(h MethodHandle, t *types.Type) MethodHandle
	Identity(t *types.Type) MethodHandle
	Constant(t *types.Type, value any) MethodHandle
	Throw(t *types.Type, exceptionType *types.Type) MethodHandle
	Catch(target MethodHandle, exceptionType *types.Type, handler MethodHandle) MethodHandle
	BindTo(h MethodHandle, receiver any) MethodHandle
	FindGetter(refc any, name string, t *types.Type) (MethodHandle, error)
	FindSetter(refc any, name string, t *types.Type) (MethodHandle, error)
	FindStaticGetter(refc any, name string, t *types.Type) (MethodHandle, error)
	FindStaticSetter(refc any, name string, t *types.Type) (MethodHandle, error)
	FindVirtual(refc any, name string, paramTypes ...*types.Type) (MethodHandle, error)
	FindSpecial(refc any, name string, paramTypes ...*types.Type) (MethodHandle, error)
	ElementGetter(arrayType *types.Type) MethodHandle
	ElementSetter(arrayType *types.Type) MethodHandle
	AsCollector(h MethodHandle, arrayType *types.Type, arrayLength int) MethodHandle
	AsSpreader(h MethodHandle, arrayType *types.Type, arrayLength int) MethodHandle
	NewSwitchPoint() SwitchPoint
}

// SwitchPoint gives deoptimization a single invalidation point that every
// guarded method handle can check cheaply, mirroring the host's
// SwitchPoint primitive.
type SwitchPoint interface {
	GuardWithTest(target, fallback MethodHandle) MethodHandle
	Invalidate()
}

// Package diag implements the compiler core's error taxonomy, its two
// named loggers ("codestore", "recompile"), and the user-visible
// script-stack-frame filter.
//
// The position+source+message error shape and StackFrame/StackTrace
// carrier follow a conventional compiler-error design, generalized from a
// single parser-error type into the full taxonomy below. The two named
// loggers use stdlib log/slog.
package diag

import "fmt"

// Position is a 1-indexed file/line/column triple, carried by every
// taxonomy member that can report one.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// ParserError covers syntactic/lexical problems, regex-flag violations,
// invalid catch bindings, and JSON parse failures lifted to a
// SyntaxError-equivalent.
type ParserError struct {
	Pos     Position
	Message string
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("SyntaxError at %s: %s", e.Pos, e.Message)
}

// UnsupportedOperationError covers a non-callable invoked, a
// non-constructor new, an unsupported conversion, or getDefaultValue
// failing to produce a primitive.
type UnsupportedOperationError struct {
	Pos     Position
	Message string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported operation at %s: %s", e.Pos, e.Message)
}

// IllegalArgumentError covers Bindings-interface key violations and a
// non-class/non-static-class type argument to convert.
type IllegalArgumentError struct {
	Pos     Position
	Message string
}

func (e *IllegalArgumentError) Error() string {
	return fmt.Sprintf("illegal argument at %s: %s", e.Pos, e.Message)
}

// ClassCastError is the other half of the "Illegal-argument / class-cast"
// taxonomy entry: a value's concrete type could not be cast to the type a
// call site required.
type ClassCastError struct {
	Pos     Position
	GotType string
	WantType string
}

func (e *ClassCastError) Error() string {
	return fmt.Sprintf("cannot cast %s to %s at %s", e.GotType, e.WantType, e.Pos)
}

// UnwarrantedOptimismError carries the program point and actual value
// that violated an optimistic type assumption. Optimism failures are
// caught internally and never surfaced to the host; this type exists for
// the internal catch frame and for tests, not for a host-facing error
// channel.
type UnwarrantedOptimismError struct {
	ProgramPoint int32
	Observed     any
}

func (e *UnwarrantedOptimismError) Error() string {
	return fmt.Sprintf("unwarranted optimism at pp=%d: observed %v", e.ProgramPoint, e.Observed)
}

// EngineError is the ECMA-level error: a script throw producing a
// script-side error object. HomeGlobal is an opaque pointer to the global
// the mirror wraps, attached so the host sees a TypeError-compatible
// mirror.
type EngineError struct {
	Pos        Position
	ECMAError  any
	HomeGlobal any
	ScriptStack ScriptStack
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine exception at %s: %v", e.Pos, e.ECMAError)
}

// FileName, LineNumber, ColumnNumber, and ScriptStackFrames implement the
// "User-visible failure" contract: fileName/lineNumber/
// columnNumber plus a filtered script stack and the raw ecmaError.
func (e *EngineError) FileName() string       { return e.Pos.File }
func (e *EngineError) LineNumber() int        { return e.Pos.Line }
func (e *EngineError) ColumnNumber() int      { return e.Pos.Column }
func (e *EngineError) ScriptStackFrames() ScriptStack { return e.ScriptStack }

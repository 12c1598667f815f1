package optimistic

import "fmt"

// UnwarrantedOptimismException is raised when a program point's runtime
// type no longer fits the type the compiler speculated on. It carries the
// program point that failed and the runtime value actually produced there
// — not the assumed/observed *types*, since by the time the exception is
// caught the compiler has already thrown away its static reasoning and all
// that is left to act on is the concrete value the deopt site computed.
// RecompilationEvent.ReturnValue is populated straight from this field.
type UnwarrantedOptimismException struct {
	ReturnValue any
	Point       ProgramPoint
}

func (e *UnwarrantedOptimismException) Error() string {
	return fmt.Sprintf("unwarranted optimism at program point %d: returned %#v", e.Point, e.ReturnValue)
}

// NewUnwarrantedOptimismException validates pp at construction time —
// raising this exception for an InvalidProgramPoint is a compiler bug, not
// a runtime condition, so it panics rather than return a value whose
// Point field can never be looked up.
func NewUnwarrantedOptimismException(pp ProgramPoint, returnValue any) *UnwarrantedOptimismException {
	if !pp.Valid() {
		panic("optimistic: UnwarrantedOptimismException raised for an invalid program point")
	}
	return &UnwarrantedOptimismException{Point: pp, ReturnValue: returnValue}
}

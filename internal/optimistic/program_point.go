// Package optimistic implements the optimistic-typing protocol: assigning
// each speculatively-typed expression a ProgramPoint, dispatching to its
// most-optimistic/most-pessimistic type, and raising
// UnwarrantedOptimismException/RecompilationEvent when a program point's
// guess turns out wrong at run time.
//
// A recompilation event carries a position the way a compiler diagnostic
// would, but as a typed exception rather than a diagnostic: the recompile
// trigger re-enters the same fixed pipeline internal/compiler drives.
package optimistic

import "github.com/cwbudde/ecmacore/internal/types"

// ProgramPoint identifies one optimistically-typed expression within a
// compile unit. -1 (InvalidProgramPoint) marks an expression that has not
// been assigned one yet.
type ProgramPoint int32

const InvalidProgramPoint ProgramPoint = -1

// Valid reports whether pp has been assigned a real value.
func (pp ProgramPoint) Valid() bool { return pp != InvalidProgramPoint }

// Allocator hands out monotonically increasing ProgramPoints within a
// single compile unit; the zero value is ready to use.
type Allocator struct{ next int32 }

func (a *Allocator) Next() ProgramPoint {
	pp := ProgramPoint(a.next)
	a.next++
	return pp
}

// optimisticNode is the structural capability an IR node needs to
// participate in optimistic typing, kept narrow and local (rather than
// importing internal/ir's concrete Binary/Unary types by name) to avoid a
// hard dependency on every node kind the lattice might ever grow.
type optimisticNode interface {
	MostOptimisticType() *types.Type
	MostPessimisticType() *types.Type
	CanBeOptimistic() bool
}

// GetMostOptimisticType dispatches to n's own most-optimistic type, or
// OBJECT for a node kind that does not implement optimisticNode (covers
// ir.Binary/Unary and any future optimistically-typed node).
func GetMostOptimisticType(n any) *types.Type {
	if on, ok := n.(optimisticNode); ok {
		return on.MostOptimisticType()
	}
	return types.OBJECT
}

// GetMostPessimisticType mirrors GetMostOptimisticType for the pessimistic
// bound.
func GetMostPessimisticType(n any) *types.Type {
	if on, ok := n.(optimisticNode); ok {
		return on.MostPessimisticType()
	}
	return types.OBJECT
}

// CanBeOptimistic reports whether n's optimistic and pessimistic types
// differ, i.e. whether there is anything to speculate on at all.
func CanBeOptimistic(n any) bool {
	if on, ok := n.(optimisticNode); ok {
		return on.CanBeOptimistic()
	}
	return false
}

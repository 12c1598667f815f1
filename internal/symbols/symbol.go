// Package symbols implements the per-block symbol table: an
// insertion-ordered, copy-on-write map from name to Symbol, where each
// Symbol tracks its declaration kind, per-type bytecode slot assignments,
// and whether its type has been pinned by the optimistic-typing pass.
// Each block owns its own SymbolTable.
//
// The shape follows a conventional tree-walk-interpreter symbol table,
// reworked here for immutable, per-block (rather than stack-mutated)
// scoping and the per-type slot bookkeeping an optimistically-typed
// compiler needs. Name lookup is case-sensitive and covers one table only;
// there is no outer-scope chaining and no overload set.
package symbols

import "github.com/cwbudde/ecmacore/internal/types"

// Flag bits a Symbol carries.
type Flag uint16

const (
	IsVar Flag = 1 << iota
	IsLet
	IsConst
	IsParam
	IsScope   // the synthetic `arguments`/scope-holder slot
	IsCatch   // bound by a catch clause
	IsHoisted // var hoisted to function top
)

// Symbol is one named binding in a Block's SymbolTable. Symbols are
// immutable; WithX methods return a modified copy.
type Symbol struct {
	name    string
	flags   Flag
	pinned  *types.Type // nil until the optimistic-typing pass pins a type
	slots   map[*types.Type]int32
	ordinal int // insertion order, for deterministic slot allocation
}

// New creates a Symbol with no pinned type and no slots assigned.
func New(name string, flags Flag, ordinal int) *Symbol {
	return &Symbol{name: name, flags: flags, ordinal: ordinal}
}

func (s *Symbol) Name() string   { return s.name }
func (s *Symbol) Flags() Flag    { return s.flags }
func (s *Symbol) Ordinal() int   { return s.ordinal }
func (s *Symbol) Is(f Flag) bool { return s.flags&f != 0 }

// PinnedType returns the type the optimistic pass has committed this
// symbol to, or nil if it is still polymorphic/OBJECT by default.
func (s *Symbol) PinnedType() *types.Type { return s.pinned }

// WithPinnedType returns s unchanged if t is already pinned, preserving
// the reference-equality invariant that pinning is idempotent.
func (s *Symbol) WithPinnedType(t *types.Type) *Symbol {
	if s.pinned == t {
		return s
	}
	cp := s.clone()
	cp.pinned = t
	return cp
}

// SlotFor returns the bytecode local-variable slot assigned for t, and
// whether one has been assigned yet. Each distinct type a symbol is ever
// read/written as gets its own slot, since ES5.1 locals are
// polymorphic-by-type rather than polymorphic-by-value.
func (s *Symbol) SlotFor(t *types.Type) (int32, bool) {
	slot, ok := s.slots[t]
	return slot, ok
}

// WithSlot returns a copy of s with slot assigned for t, unless that exact
// assignment already exists.
func (s *Symbol) WithSlot(t *types.Type, slot int32) *Symbol {
	if existing, ok := s.slots[t]; ok && existing == slot {
		return s
	}
	cp := s.clone()
	if cp.slots == nil {
		cp.slots = make(map[*types.Type]int32, 1)
	} else {
		cp.slots = cloneSlots(cp.slots)
	}
	cp.slots[t] = slot
	return cp
}

// Types returns every type this symbol currently has a slot assigned for,
// in no particular order.
func (s *Symbol) Types() []*types.Type {
	out := make([]*types.Type, 0, len(s.slots))
	for t := range s.slots {
		out = append(out, t)
	}
	return out
}

func (s *Symbol) clone() *Symbol {
	cp := *s
	return &cp
}

func cloneSlots(m map[*types.Type]int32) map[*types.Type]int32 {
	cp := make(map[*types.Type]int32, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}

// Package types implements the width-ordered Type lattice that every IR
// expression's optimistic/pessimistic type computation is built on.
// Types are interned singletons: two Type values
// describing the same lattice element are always the same pointer, so
// equality is pointer equality everywhere in this module.
package types

import "fmt"

// BytecodeStackCategory is the target-VM stack slot kind a Type maps to.
// The concrete bytecode emitter is an external collaborator;
// this module only needs the category tag it would select on.
type BytecodeStackCategory byte

const (
	CategoryUninitialized BytecodeStackCategory = 'U'
	CategoryObject        BytecodeStackCategory = 'A'
	CategoryInt           BytecodeStackCategory = 'I'
	CategoryLong          BytecodeStackCategory = 'J'
	CategoryDouble        BytecodeStackCategory = 'D'
	CategoryBoolean       BytecodeStackCategory = 'Z'
)

// kind names the lattice element independent of its interned identity, for
// switch statements inside this package that must not leak outside it.
type kind uint8

const (
	kindUnknown kind = iota
	kindBoolean
	kindInt
	kindLong
	kindNumber
	kindObject
	kindString
	kindCharSequence
	kindScriptObject
	kindUndefined
	kindIntArray
	kindLongArray
	kindNumberArray
	kindObjectArray
	kindThis
	kindScope
	kindSlot2
)

// Type is one element of the lattice. Every exported singleton below is the
// sole instance for its kind; construct no others.
type Type struct {
	name     string
	debug    string
	kind     kind
	weight   int
	slots    int
	category BytecodeStackCategory
	isArray  bool
	elem     *Type // element type, for array kinds only
}

func (t *Type) String() string { return t.name }

// Name is the human-readable type name.
func (t *Type) Name() string { return t.name }

// DebugName is the longer debug descriptor used in IR dumps.
func (t *Type) DebugName() string { return t.debug }

// Weight is the lattice ordering key used by widest/narrowest.
func (t *Type) Weight() int { return t.weight }

// SlotCount is 1 for category-1 types, 2 for category-2 (long, number).
func (t *Type) SlotCount() int { return t.slots }

// IsArray reports whether this is one of the typed-array element types.
func (t *Type) IsArray() bool { return t.isArray }

// ElementType returns the element type of an array type, or nil otherwise.
func (t *Type) ElementType() *Type { return t.elem }

// BytecodeStackType returns the target-VM stack category for this type.
func (t *Type) BytecodeStackType() BytecodeStackCategory { return t.category }

// maxObjectWeight caps object-family weights so that no array/object
// subtype outweighs a plain OBJECT widened against it.
const maxObjectWeight = 100

// Singletons. Weights follow the lattice order
// UNKNOWN < BOOLEAN < INT < LONG < NUMBER < OBJECT, with the remaining
// object-family types sharing OBJECT's capped weight.
var (
	UNKNOWN = &Type{name: "unknown", debug: "unknown", kind: kindUnknown, weight: -1, slots: 1, category: CategoryUninitialized}

	BOOLEAN = &Type{name: "boolean", debug: "boolean", kind: kindBoolean, weight: 0, slots: 1, category: CategoryBoolean}
	INT     = &Type{name: "int", debug: "int", kind: kindInt, weight: 1, slots: 1, category: CategoryInt}
	LONG    = &Type{name: "long", debug: "long", kind: kindLong, weight: 2, slots: 2, category: CategoryLong}
	NUMBER  = &Type{name: "number", debug: "double", kind: kindNumber, weight: 3, slots: 2, category: CategoryDouble}

	OBJECT       = &Type{name: "object", debug: "Object", kind: kindObject, weight: maxObjectWeight, slots: 1, category: CategoryObject}
	STRING       = &Type{name: "string", debug: "String", kind: kindString, weight: maxObjectWeight, slots: 1, category: CategoryObject}
	CHARSEQUENCE = &Type{name: "charsequence", debug: "CharSequence", kind: kindCharSequence, weight: maxObjectWeight, slots: 1, category: CategoryObject}
	SCRIPT_OBJECT = &Type{name: "script_object", debug: "ScriptObject", kind: kindScriptObject, weight: maxObjectWeight, slots: 1, category: CategoryObject}
	UNDEFINED    = &Type{name: "undefined", debug: "Undefined", kind: kindUndefined, weight: maxObjectWeight, slots: 1, category: CategoryObject}

	THIS  = &Type{name: "this", debug: "this", kind: kindThis, weight: maxObjectWeight, slots: 1, category: CategoryObject}
	SCOPE = &Type{name: "scope", debug: "scope", kind: kindScope, weight: maxObjectWeight, slots: 1, category: CategoryObject}

	// SLOT_2 is a marker for the hidden second half of a category-2 slot;
	// it has no bytecode stack type of its own.
	SLOT_2 = &Type{name: "slot_2", debug: "<slot 2>", kind: kindSlot2, weight: -1, slots: 1, category: CategoryUninitialized}
)

var (
	INT_ARRAY    = newArrayType("int_array", "int[]", kindIntArray, INT)
	LONG_ARRAY   = newArrayType("long_array", "long[]", kindLongArray, LONG)
	NUMBER_ARRAY = newArrayType("number_array", "double[]", kindNumberArray, NUMBER)
	OBJECT_ARRAY = newArrayType("object_array", "Object[]", kindObjectArray, OBJECT)
)

func newArrayType(name, debug string, k kind, elem *Type) *Type {
	return &Type{name: name, debug: debug, kind: k, weight: maxObjectWeight, slots: 1, category: CategoryObject, isArray: true, elem: elem}
}

// all is the full interning table, keyed by kind, guaranteeing singleton
// identity for every Type value.
var all = map[kind]*Type{
	kindUnknown:      UNKNOWN,
	kindBoolean:      BOOLEAN,
	kindInt:          INT,
	kindLong:         LONG,
	kindNumber:       NUMBER,
	kindObject:       OBJECT,
	kindString:       STRING,
	kindCharSequence: CHARSEQUENCE,
	kindScriptObject: SCRIPT_OBJECT,
	kindUndefined:    UNDEFINED,
	kindIntArray:     INT_ARRAY,
	kindLongArray:    LONG_ARRAY,
	kindNumberArray:  NUMBER_ARRAY,
	kindObjectArray:  OBJECT_ARRAY,
	kindThis:         THIS,
	kindScope:        SCOPE,
	kindSlot2:        SLOT_2,
}

// Lookup returns the interned Type for a human name, or nil if unknown. It
// exists so diagnostics can round-trip a name without a big switch
// statement; ReadTypeMap decodes byte tags instead.
func Lookup(name string) *Type {
	for _, t := range all {
		if t.name == name {
			return t
		}
	}
	return nil
}

// IsObjectFamily reports whether a type is OBJECT or one of its
// weight-maxed relatives (strings, arrays, script objects, undefined).
func IsObjectFamily(t *Type) bool {
	return t.weight == maxObjectWeight
}

// IsNumeric reports whether t is one of INT, LONG, NUMBER.
func IsNumeric(t *Type) bool {
	return t == INT || t == LONG || t == NUMBER
}

func assertSingleton(t *Type) {
	if all[t.kind] != t {
		panic(fmt.Sprintf("types: %s is not the interned singleton for its kind", t.name))
	}
}

func init() {
	for _, t := range all {
		assertSingleton(t)
	}
}

package types

import "fmt"

// Converter is the subset of the runtime's JSType helpers that the
// lattice needs to decide whether a conversion between two Types is
// representable at all. The actual
// instruction emission for a conversion is delegated to a BytecodeOps sink
// (internal/codegen); this interface only answers "is from→to legal", never
// performs the conversion itself.
type Converter interface {
	// CanConvert reports whether a value statically typed `from` can be
	// converted to `to` using one of the runtime's documented primitive
	// <-> object rules (toBoolean, toInt32, toNumber, toString, ...).
	CanConvert(from, to *Type) bool
}

// defaultConverter implements the ECMAScript-like conversion policy that
// every Type subtype in the lattice legally supports
// "Each Type subtype implements exactly the set of operations legal on its
// representation; illegal ones fail at build time."
type defaultConverter struct{}

// DefaultConverter is used when a pass does not have a runtime.JSType
// implementation wired in yet (e.g. unit tests of the lattice in
// isolation). Production pipelines pass their own Converter, typically
// internal/runtime's reference JSType adapter.
var DefaultConverter Converter = defaultConverter{}

func (defaultConverter) CanConvert(from, to *Type) bool {
	if from == to {
		return true
	}
	switch {
	case from == UNKNOWN || to == UNKNOWN:
		return false
	case to == OBJECT, to == CHARSEQUENCE, to == SCRIPT_OBJECT, to == UNDEFINED, to == STRING:
		// Every primitive boxes to an object-family type.
		return true
	case IsNumeric(from) && IsNumeric(to):
		return true
	case from == BOOLEAN && IsNumeric(to):
		return true
	case IsObjectFamily(from) && IsNumeric(to):
		// toNumber()/toInt32()/toUint32() on an object via toPrimitive.
		return true
	case IsObjectFamily(from) && to == BOOLEAN:
		return true
	case from.isArray && to == OBJECT:
		return true
	default:
		return false
	}
}

// ConvertOrPanic asserts a conversion is legal under c: illegal conversions
// must fail at build time, not silently degrade at run time; it is a
// programmer error, not a runtime condition, to request an illegal
// conversion from a pass, so this panics rather than returning an error.
func ConvertOrPanic(c Converter, from, to *Type) {
	if !c.CanConvert(from, to) {
		panic(fmt.Sprintf("types: unsupported conversion %s -> %s", from.Name(), to.Name()))
	}
}

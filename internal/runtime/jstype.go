// Package runtime defines the narrow slice of the hosting runtime's value
// conversions the compiler core depends on: toBoolean/toInt32/toUint32/
// toLong/toNumber/toString/toPrimitive/isPrimitive. The runtime's actual
// value representation is out of scope; this package only needs an
// interface the core can call through, plus a reference implementation for
// tests and for embedders that have no richer host object model of their
// own yet.
//
// Same string<->number<->bool conversion function shapes a tree-walking
// interpreter's builtins would expose, rewritten against Go's `any`
// instead of a bespoke Value struct, since this module's IR carries no
// runtime value
// representation of its own.
package runtime

import (
	"math"
	"strconv"
	"strings"
)

// UndefinedDouble is the distinguished NaN used as the double
// representation of "undefined".
var UndefinedDouble = math.NaN()

// Hint is the ECMA 8.6.2 toPrimitive hint.
type Hint int

const (
	HintDefault Hint = iota
	HintNumber
	HintString
)

// JSType is the conversion surface the compiler core's type lattice and IR
// constant-folding consult. A production embedding wires in its own value
// representation behind this interface; Reference below is a faithful
// ECMAScript-5.1-shaped implementation over Go's `any`.
type JSType interface {
	ToBoolean(v any) bool
	ToInt32(v any) int32
	ToUint32(v any) uint32
	ToLong(v any) int64
	ToNumber(v any) float64
	ToString(v any) string
	// ToPrimitive implements ECMA 8.6.2's getDefaultValue ordering for a
	// value that is not already primitive, given a conversion hint.
	ToPrimitive(v any, hint Hint) (any, bool)
	IsPrimitive(v any) bool
}

// Reference is the default JSType: Go bool/int32/int64/float64/string are
// primitive; anything else is treated as a host object whose toPrimitive is
// resolved through its Coerce func (typically the mirror
// package's JSObject.GetDefaultValue).
type Reference struct {
	// Coerce resolves toPrimitive for non-Go-primitive values (scripted
	// objects). It is optional; nil means such values never reduce to a
	// primitive (IsPrimitive/ToPrimitive fail closed).
	Coerce func(v any, hint Hint) (any, bool)
}

var _ JSType = (*Reference)(nil)

func (r *Reference) IsPrimitive(v any) bool {
	switch v.(type) {
	case nil, bool, int32, int64, float64, string:
		return true
	default:
		return false
	}
}

func (r *Reference) ToPrimitive(v any, hint Hint) (any, bool) {
	if r.IsPrimitive(v) {
		return v, true
	}
	if r.Coerce != nil {
		return r.Coerce(v, hint)
	}
	return nil, false
}

func (r *Reference) ToBoolean(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case int32:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0 && !math.IsNaN(x)
	case string:
		return x != ""
	default:
		if p, ok := r.ToPrimitive(v, HintDefault); ok {
			return r.ToBoolean(p)
		}
		return true // non-reducible objects are truthy, per ECMA ToBoolean
	}
}

func (r *Reference) ToNumber(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case bool:
		if x {
			return 1
		}
		return 0
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case float64:
		return x
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return UndefinedDouble
		}
		return f
	default:
		if p, ok := r.ToPrimitive(v, HintNumber); ok {
			return r.ToNumber(p)
		}
		return UndefinedDouble
	}
}

func (r *Reference) ToInt32(v any) int32 {
	n := r.ToNumber(v)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	// ECMA 9.5 ToInt32: modulo 2^32 into a signed 32-bit range.
	u := uint32(int64(math.Trunc(n)))
	return int32(u)
}

func (r *Reference) ToUint32(v any) uint32 {
	n := r.ToNumber(v)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return uint32(int64(math.Trunc(n)))
}

func (r *Reference) ToLong(v any) int64 {
	n := r.ToNumber(v)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return int64(math.Trunc(n))
}

func (r *Reference) ToString(v any) string {
	switch x := v.(type) {
	case nil:
		return "undefined"
	case bool:
		if x {
			return "true"
		}
		return "false"
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		if math.IsNaN(x) {
			return "NaN"
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	default:
		if p, ok := r.ToPrimitive(v, HintString); ok {
			return r.ToString(p)
		}
		return "[object Object]"
	}
}

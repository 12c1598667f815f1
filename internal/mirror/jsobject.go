// Package mirror implements the host-boundary object contract: JSObject,
// the capability interface native (Go) code uses to poke at a script
// object without knowing its concrete representation, plus the two
// concrete adapters names — ScriptObjectMirror (a
// home-global-aware wrapper) and a java.util.Map-style Bindings adapter
// with its exact key-validation error behavior.
//
// The field map + class-hierarchy lookup shape generalizes a conventional
// object-instance representation to a property-bag host object, using an
// interface for the class-info lookup to avoid a circular import between
// mirror and the value representation it wraps.
package mirror

import (
	"errors"

	"github.com/cwbudde/ecmacore/internal/runtime"
)

// ErrNotCallable is returned by Call when the receiver does not represent
// a callable script object.
var ErrNotCallable = errors.New("mirror: not a function")

// ErrNotConstructable is returned by NewObject when the receiver cannot be
// used as a constructor.
var ErrNotConstructable = errors.New("mirror: not a constructor")

// ErrEvalUnsupported is returned by Eval when the receiver has no attached
// evaluator (the common case for anything but the global object).
var ErrEvalUnsupported = errors.New("mirror: eval not supported")

// UnsupportedOperationError is the error kind GetDefaultValue (and, at the
// wrapper layer, Call/NewObject) raise for a capability the receiver does
// not implement. Key is a short machine-readable tag in the same style as
// an ECMA message key ("cannot.get.default.number"), suitable for
// look-up in a localized message table.
type UnsupportedOperationError struct {
	Key     string
	Message string
}

func (e *UnsupportedOperationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Key
}

// Callable is implemented by any value a JSObject field can hold that
// GetDefaultValue's valueOf/toString lookup — or a host Call — can invoke.
type Callable interface {
	Call(thisArg any, args ...any) (any, error)
}

// JSObject is the capability surface host code gets for any object that
// crossed the script/native boundary, independent of how it is actually
// represented. It mirrors the ECMA 8.6.2-shaped contract a scripting
// engine's host-object interface exposes: named members, indexed slots,
// function/constructor/eval entry points, enumeration, and the
// getDefaultValue primitive-coercion hook.
type JSObject interface {
	// Named members.
	Get(name string) (any, bool)
	Set(name string, value any)
	Delete(name string) bool
	Keys() []string
	HasMember(name string) bool
	ClassName() string

	// Indexed slots (array-element access, distinct from named members).
	GetSlot(index int) (any, bool)
	SetSlot(index int, value any)
	HasSlot(index int) bool

	// Enumeration, matching java.util.Map's keySet()/values() shape.
	KeySet() []string
	Values() []any

	// Callable/constructable/evaluable entry points; the abstract base
	// fails all three with a capability-specific error.
	Call(thisArg any, args ...any) (any, error)
	NewObject(args ...any) (any, error)
	Eval(source string) (any, error)

	// Classification.
	IsFunction() bool
	IsArray() bool

	// IsInstance reports whether candidate was constructed by this
	// object acting as a constructor function.
	IsInstance(candidate any) bool
	// IsInstanceOf reports whether this object is an instance of class,
	// the mirror image of IsInstance.
	IsInstanceOf(class any) bool

	// GetDefaultValue implements ECMA 8.6.2's toPrimitive hint-ordering:
	// for a Number (or Default) hint, valueOf is tried before toString;
	// for a String hint, the order reverses. A call result counts as a
	// hint match when it is primitive and, for Number, not itself a
	// string (a string result is held as a fallback, not an immediate
	// match, so a later hint-matching call still wins — see the worked
	// valueOf-returns-string/toString-returns-number case). If nothing
	// callable ever returns a primitive, GetDefaultValue fails with an
	// UnsupportedOperationError keyed cannot.get.default.number/string.
	GetDefaultValue(hint runtime.Hint) (any, error)
}

// AbstractJSObject is a default base other JSObjects can embed: every
// method reports "not supported" rather than panicking, so an embedder
// can override only the handful of members it actually implements.
type AbstractJSObject struct{}

func (AbstractJSObject) Get(string) (any, bool) { return nil, false }
func (AbstractJSObject) Set(string, any)        {}
func (AbstractJSObject) Delete(string) bool     { return false }
func (AbstractJSObject) Keys() []string         { return nil }
func (AbstractJSObject) HasMember(string) bool  { return false }
func (AbstractJSObject) ClassName() string      { return "Object" }

func (AbstractJSObject) GetSlot(int) (any, bool) { return nil, false }
func (AbstractJSObject) SetSlot(int, any)        {}
func (AbstractJSObject) HasSlot(int) bool        { return false }

func (AbstractJSObject) KeySet() []string { return nil }
func (AbstractJSObject) Values() []any    { return nil }

func (AbstractJSObject) Call(any, ...any) (any, error) { return nil, ErrNotCallable }
func (AbstractJSObject) NewObject(...any) (any, error) { return nil, ErrNotConstructable }
func (AbstractJSObject) Eval(string) (any, error)      { return nil, ErrEvalUnsupported }

func (AbstractJSObject) IsFunction() bool { return false }
func (AbstractJSObject) IsArray() bool    { return false }

func (AbstractJSObject) IsInstance(any) bool   { return false }
func (AbstractJSObject) IsInstanceOf(any) bool { return false }

// resolveDefaultValue implements ECMA 8.6.2's toPrimitive over whatever
// self.Get("valueOf")/self.Get("toString") resolve to, so a concrete
// JSObject's GetDefaultValue only needs to forward here with itself as
// self (to invoke valueOf/toString with the right thisArg).
func resolveDefaultValue(self JSObject, hint runtime.Hint) (any, error) {
	order := [2]string{"valueOf", "toString"}
	if hint == runtime.HintString {
		order = [2]string{"toString", "valueOf"}
	}

	var fallback any
	haveFallback := false

	for _, name := range order {
		v, called, err := invokeMember(self, name)
		if err != nil {
			// A genuine script-side throw aborts the whole lookup rather
			// than silently falling through to the other method, matching
			// OrdinaryToPrimitive's abrupt-completion behavior; the mirror
			// layer catches it here and re-raises as unsupported-operation.
			wrapped := attachGlobal(err, CurrentGlobal())
			return nil, &UnsupportedOperationError{Key: defaultValueErrorKey(hint), Message: wrapped.Error()}
		}
		if !called || !isPrimitive(v) {
			continue
		}
		if !haveFallback {
			fallback, haveFallback = v, true
		}
		if hintMatches(hint, v) {
			return v, nil
		}
	}
	if haveFallback {
		return fallback, nil
	}
	return nil, &UnsupportedOperationError{Key: defaultValueErrorKey(hint)}
}

// invokeMember looks up name and, if it resolves to a Callable, invokes
// it with self as thisArg. called reports whether name existed and was
// callable at all, distinguishing "nothing to try" (resolveDefaultValue
// moves on to the other method) from "tried it and it threw" (err is
// non-nil and must propagate).
func invokeMember(self JSObject, name string) (v any, called bool, err error) {
	member, ok := self.Get(name)
	if !ok {
		return nil, false, nil
	}
	fn, ok := member.(Callable)
	if !ok {
		return nil, false, nil
	}
	v, err = fn.Call(self)
	return v, true, err
}

func hintMatches(hint runtime.Hint, v any) bool {
	if hint == runtime.HintString {
		_, ok := v.(string)
		return ok
	}
	_, isString := v.(string)
	return !isString
}

func defaultValueErrorKey(hint runtime.Hint) string {
	if hint == runtime.HintString {
		return "cannot.get.default.string"
	}
	return "cannot.get.default.number"
}

func isPrimitive(v any) bool {
	switch v.(type) {
	case nil, bool, int32, int64, float64, string:
		return true
	default:
		return false
	}
}

// GetDefaultValue on the bare abstract base never has a valueOf/toString
// to invoke, so it always fails; an embedder that wants ECMA 8.6.2
// coercion calls resolveDefaultValue itself once it has real members (see
// ScriptObjectMirror.GetDefaultValue).
func (AbstractJSObject) GetDefaultValue(hint runtime.Hint) (any, error) {
	return nil, &UnsupportedOperationError{Key: defaultValueErrorKey(hint)}
}

package mirror

import "fmt"

// Bindings adapts a JSObject to the java.util.Map<String,Object>-shaped
// contract host embedders expect, with the exact
// key-validation error behavior that scenario specifies: a nil key raises
// NilKeyError (the Go analogue of a NullPointerException, since Go has no
// null-safe map key to begin with); an empty string key raises
// IllegalArgumentError("key can not be empty"); any non-string key raises
// ClassCastError naming the offending concrete type.
type Bindings struct {
	obj JSObject
}

func NewBindings(obj JSObject) *Bindings { return &Bindings{obj: obj} }

// NilKeyError is raised for a nil key, mirroring a host Map's
// NullPointerException on Map.get(null)/put(null, ...).
type NilKeyError struct{}

func (NilKeyError) Error() string { return "key is null" }

// IllegalArgumentError carries a host-style "illegal argument" message.
type IllegalArgumentError struct{ Message string }

func (e IllegalArgumentError) Error() string { return e.Message }

// ClassCastError names the type that could not be cast to string, matching
// a host Map implementation's ClassCastException on a non-String key.
type ClassCastError struct{ GotType string }

func (e ClassCastError) Error() string {
	return fmt.Sprintf("cannot cast %s to java.lang.String", e.GotType)
}

// validateKey enforces three checks in order: nil, then non-string, then
// empty.
func validateKey(key any) (string, error) {
	if key == nil {
		return "", NilKeyError{}
	}
	s, ok := key.(string)
	if !ok {
		return "", ClassCastError{GotType: fmt.Sprintf("%T", key)}
	}
	if s == "" {
		return "", IllegalArgumentError{Message: "key can not be empty"}
	}
	return s, nil
}

// Get returns the value bound to key, or an error if key fails validation.
func (b *Bindings) Get(key any) (any, error) {
	name, err := validateKey(key)
	if err != nil {
		return nil, err
	}
	v, _ := b.obj.Get(name)
	return v, nil
}

// Put sets the value bound to key, or returns an error if key fails
// validation.
func (b *Bindings) Put(key any, value any) error {
	name, err := validateKey(key)
	if err != nil {
		return err
	}
	b.obj.Set(name, value)
	return nil
}

// ContainsKey reports whether key is bound, or returns an error if key
// fails validation.
func (b *Bindings) ContainsKey(key any) (bool, error) {
	name, err := validateKey(key)
	if err != nil {
		return false, err
	}
	return b.obj.HasMember(name), nil
}

// Remove unbinds key, or returns an error if key fails validation.
func (b *Bindings) Remove(key any) (bool, error) {
	name, err := validateKey(key)
	if err != nil {
		return false, err
	}
	return b.obj.Delete(name), nil
}

// KeySet returns every bound key.
func (b *Bindings) KeySet() []string { return b.obj.Keys() }

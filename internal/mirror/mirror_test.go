package mirror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/ecmacore/internal/runtime"
)

func TestScriptObjectMirrorHomeGlobalSwap(t *testing.T) {
	home := &Global{Name: "realm-a"}
	m := NewScriptObjectMirror("Point", home)
	m.Set("x", 1.0)

	require.Equal(t, home, m.HomeGlobal())
	other := &Global{Name: "realm-b"}
	m.SetHomeGlobal(other)
	assert.Equal(t, other, m.HomeGlobal())

	v, ok := m.Get("x")
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestScriptObjectMirrorToJSONCompatible(t *testing.T) {
	inner := NewScriptObjectMirror("Inner", nil)
	inner.Set("n", 2.0)
	outer := NewScriptObjectMirror("Outer", nil)
	outer.Set("child", inner)
	outer.Set("list", []any{1.0, inner})

	got := outer.ToJSONCompatible()
	child, ok := got["child"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 2.0, child["n"])

	list, ok := got["list"].([]any)
	require.True(t, ok)
	require.Len(t, list, 2)
	_, ok = list[1].(map[string]any)
	assert.True(t, ok)
}

func TestScriptObjectMirrorSwapsAmbientGlobalAroundCall(t *testing.T) {
	home := &Global{Name: "realm-a"}
	m := NewScriptObjectMirror("Obj", home)

	assert.Nil(t, CurrentGlobal())
	var seenDuring *Global
	m.SetCallable(func(any, ...any) (any, error) {
		seenDuring = CurrentGlobal()
		return nil, nil
	})
	_, _ = m.Call(nil)

	assert.Equal(t, home, seenDuring)
	assert.Nil(t, CurrentGlobal())
}

func TestScriptObjectMirrorReleasesAmbientGlobalOnPanic(t *testing.T) {
	home := &Global{Name: "realm-a"}
	m := NewScriptObjectMirror("Obj", home)
	m.SetCallable(func(any, ...any) (any, error) {
		panic("boom")
	})

	func() {
		defer func() { recover() }()
		_, _ = m.Call(nil)
	}()

	assert.Nil(t, CurrentGlobal())
}

func TestScriptObjectMirrorCallNewObjectEval(t *testing.T) {
	m := NewScriptObjectMirror("Fn", &Global{Name: "g"})
	assert.False(t, m.IsFunction())

	_, err := m.Call(nil)
	assert.ErrorIs(t, err, ErrNotCallable)

	m.SetCallable(func(thisArg any, args ...any) (any, error) { return len(args), nil })
	assert.True(t, m.IsFunction())
	v, err := m.Call(nil, 1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = m.NewObject()
	assert.ErrorIs(t, err, ErrNotConstructable)
	m.SetConstructor(func(args ...any) (any, error) { return "instance", nil })
	v, err = m.NewObject()
	require.NoError(t, err)
	assert.Equal(t, "instance", v)

	_, err = m.Eval("1+1")
	assert.ErrorIs(t, err, ErrEvalUnsupported)
	m.SetEvaluator(func(source string) (any, error) { return 2.0, nil })
	v, err = m.Eval("1+1")
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestScriptObjectMirrorCallErrorAttachesAmbientGlobal(t *testing.T) {
	home := &Global{Name: "realm-a"}
	m := NewScriptObjectMirror("Fn", home)
	m.SetCallable(func(any, ...any) (any, error) { return nil, errors.New("boom") })

	_, err := m.Call(nil)
	var eng *EngineException
	require.ErrorAs(t, err, &eng)
	assert.Equal(t, home, eng.Global)
	assert.Contains(t, eng.Error(), "realm-a")
}

func TestScriptObjectMirrorSlots(t *testing.T) {
	m := NewScriptObjectMirror("Arr", nil)
	m.SetArrayLike(true)
	assert.True(t, m.IsArray())

	assert.False(t, m.HasSlot(0))
	m.SetSlot(0, "first")
	v, ok := m.GetSlot(0)
	require.True(t, ok)
	assert.Equal(t, "first", v)
	assert.True(t, m.HasSlot(0))
}

type callableFunc func(thisArg any, args ...any) (any, error)

func (f callableFunc) Call(thisArg any, args ...any) (any, error) { return f(thisArg, args...) }

func TestGetDefaultValuePrefersHintMatchingResult(t *testing.T) {
	m := NewScriptObjectMirror("Obj", nil)
	m.Set("valueOf", callableFunc(func(any, ...any) (any, error) { return "a string", nil }))
	m.Set("toString", callableFunc(func(any, ...any) (any, error) { return 3.0, nil }))

	v, err := m.GetDefaultValue(runtime.HintNumber)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

func TestGetDefaultValueUsesFallbackWhenNoHintMatch(t *testing.T) {
	m := NewScriptObjectMirror("Obj", nil)
	m.Set("valueOf", callableFunc(func(any, ...any) (any, error) { return "a string", nil }))

	v, err := m.GetDefaultValue(runtime.HintNumber)
	require.NoError(t, err)
	assert.Equal(t, "a string", v)
}

func TestGetDefaultValueFailsWithoutAnyPrimitive(t *testing.T) {
	m := NewScriptObjectMirror("Obj", nil)
	_, err := m.GetDefaultValue(runtime.HintNumber)
	var uo *UnsupportedOperationError
	require.ErrorAs(t, err, &uo)
	assert.Equal(t, "cannot.get.default.number", uo.Key)
}

func TestGetDefaultValueTranslatesEngineExceptionToUnsupportedOperation(t *testing.T) {
	m := NewScriptObjectMirror("Obj", &Global{Name: "g"})
	m.Set("valueOf", callableFunc(func(any, ...any) (any, error) { return nil, errors.New("thrown") }))

	_, err := m.GetDefaultValue(runtime.HintNumber)
	var uo *UnsupportedOperationError
	require.ErrorAs(t, err, &uo)
}

func TestBindingsKeyValidation(t *testing.T) {
	obj := NewScriptObjectMirror("Obj", nil)
	b := NewBindings(obj)

	require.NoError(t, b.Put("a", 1.0))
	v, err := b.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	_, err = b.Get(nil)
	assert.ErrorAs(t, err, &NilKeyError{})

	_, err = b.Get("")
	var iae IllegalArgumentError
	require.ErrorAs(t, err, &iae)
	assert.Equal(t, "key can not be empty", iae.Message)

	_, err = b.Get(42)
	var cce ClassCastError
	require.ErrorAs(t, err, &cce)
	assert.Equal(t, "int", cce.GotType)
}

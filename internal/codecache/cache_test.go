package codecache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachePutGetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(dir)
	require.NoError(t, err)

	key := FunctionKey{Digest: "abc123", Name: "fib"}
	blob := []byte("compiled-bytecode")

	require.NoError(t, c.Put(key, MinSourceSize, []any{1.0, "x", nil}, blob))
	got, err := c.Get(key)
	require.NoError(t, err)
	assert.Equal(t, blob, got)
}

func TestCacheMiss(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)

	_, err = c.Get(FunctionKey{Digest: "nope", Name: "x"})
	assert.ErrorIs(t, err, ErrMiss)
}

func TestCacheRefusesUndersizedSource(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)

	err = c.Put(FunctionKey{Digest: "abc", Name: "tiny"}, 10, nil, []byte("x"))
	assert.ErrorIs(t, err, errRefused)
}

func TestCacheDropsEntryWithNonSerializableConstant(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)

	key := FunctionKey{Digest: "abc", Name: "hasFunc"}
	badConstant := func() {}
	require.NoError(t, c.Put(key, MinSourceSize, []any{1.0, badConstant}, []byte("blob")))

	_, err = c.Get(key)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestCacheDropsEntryWithNonSerializableNestedConstant(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)

	key := FunctionKey{Digest: "abc", Name: "nested"}
	nested := []any{1.0, []any{"ok", make(chan int)}}
	require.NoError(t, c.Put(key, MinSourceSize, nested, []byte("blob")))

	_, err = c.Get(key)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestAnonymousFunctionKeysDoNotCollide(t *testing.T) {
	a := NewAnonymousFunctionKey("same-digest")
	b := NewAnonymousFunctionKey("same-digest")
	assert.NotEqual(t, a.Name, b.Name)
}

func TestStatsCountsEntries(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, c.Put(FunctionKey{Digest: "d1", Name: "f1"}, MinSourceSize, nil, []byte("aaaa")))
	require.NoError(t, c.Put(FunctionKey{Digest: "d2", Name: "f2"}, MinSourceSize, nil, []byte("bbbb")))

	stat, err := c.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stat.Entries)
	assert.Equal(t, int64(8), stat.TotalSize)
	assert.Contains(t, stat.String(), "2 entries")
}

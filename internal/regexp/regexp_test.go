package regexp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileValidFlags(t *testing.T) {
	re, err := Compile("a+b", "gim")
	require.NoError(t, err)
	assert.True(t, re.Global)
	assert.True(t, re.Regexp().MatchString("xxaabxx"))
}

func TestCompileRepeatedFlag(t *testing.T) {
	_, err := Compile("a", "gg")
	var fe *FlagError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "repeated.flag", fe.Rule)
}

func TestCompileUnsupportedFlag(t *testing.T) {
	_, err := Compile("a", "u")
	var fe *FlagError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "unsupported.flag", fe.Rule)
}

func TestEmptyPatternNormalized(t *testing.T) {
	re, err := Compile("", "")
	require.NoError(t, err)
	assert.Equal(t, "(?:)", re.Source)
	assert.True(t, re.Regexp().MatchString(""))
}

func TestCacheReturnsSameInstanceOnHit(t *testing.T) {
	c := NewCache(8)
	a, err := c.Create("foo", "i")
	require.NoError(t, err)
	b, err := c.Create("foo", "i")
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestCacheEvictsOldestBeyondLimit(t *testing.T) {
	c := NewCache(2)
	_, _ = c.Create("a", "")
	_, _ = c.Create("b", "")
	_, _ = c.Create("c", "")

	_, hitA := c.entries.Load(cacheKey("a", ""))
	_, hitC := c.entries.Load(cacheKey("c", ""))
	assert.False(t, hitA)
	assert.True(t, hitC)
}

func TestValidateDiscardsResult(t *testing.T) {
	c := NewCache(8)
	assert.NoError(t, c.Validate("[a-z]+", "i"))
	assert.Error(t, c.Validate("[a-z", ""))
}

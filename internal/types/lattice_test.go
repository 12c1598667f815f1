package types

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidestBoundaryScenarios(t *testing.T) {
	assert.Same(t, LONG, Widest(INT, LONG))
	assert.Same(t, OBJECT, Widest(NUMBER, OBJECT))
	assert.Same(t, OBJECT, Widest(INT_ARRAY, NUMBER_ARRAY))
	assert.Same(t, NUMBER, Widest(BOOLEAN, NUMBER))
	assert.Same(t, OBJECT, WidestReturnType(BOOLEAN, NUMBER))
}

func TestWidestCommutativeAndAssociative(t *testing.T) {
	all := []*Type{UNKNOWN, BOOLEAN, INT, LONG, NUMBER, OBJECT, STRING, INT_ARRAY, NUMBER_ARRAY}
	for _, a := range all {
		for _, b := range all {
			require.Same(t, Widest(a, b), Widest(b, a), "widest(%s,%s) must commute", a, b)
			for _, c := range all {
				left := Widest(a, Widest(b, c))
				right := Widest(Widest(a, b), c)
				require.Same(t, left, right, "widest must associate over %s,%s,%s", a, b, c)
			}
			w := Widest(a, b)
			maxWeight := a.Weight()
			if b.Weight() > maxWeight {
				maxWeight = b.Weight()
			}
			require.GreaterOrEqual(t, w.Weight(), maxWeight)
		}
	}
}

func TestNarrowestChoosesLowerWeight(t *testing.T) {
	assert.Same(t, INT, Narrowest(INT, LONG))
	assert.Same(t, BOOLEAN, Narrowest(BOOLEAN, NUMBER))
}

func TestIsAssignableFrom(t *testing.T) {
	assert.True(t, IsAssignableFrom(OBJECT, STRING))
	assert.True(t, IsAssignableFrom(STRING, OBJECT))
	assert.True(t, IsAssignableFrom(INT, INT))
	assert.False(t, IsAssignableFrom(INT, LONG))
}

func TestIsEquivalentTo(t *testing.T) {
	assert.True(t, IsEquivalentTo(OBJECT, STRING))
	assert.True(t, IsEquivalentTo(INT, INT))
	assert.False(t, IsEquivalentTo(INT, LONG))
}

func TestTypeMapRoundTrip(t *testing.T) {
	in := TypeMap{
		1:  OBJECT,
		2:  NUMBER,
		17: LONG,
	}
	var buf bytes.Buffer
	require.NoError(t, WriteTypeMap(&buf, in))

	out, err := ReadTypeMap(&buf)
	require.NoError(t, err)
	require.Equal(t, len(in), len(out))
	for pp, typ := range in {
		assert.Same(t, typ, out[pp])
	}
}

func TestTypeMapDropsUnknown(t *testing.T) {
	in := TypeMap{1: OBJECT, 2: UNKNOWN, 3: BOOLEAN}
	var buf bytes.Buffer
	require.NoError(t, WriteTypeMap(&buf, in))

	out, err := ReadTypeMap(&buf)
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Same(t, OBJECT, out[1])
}

func TestDefaultConverter(t *testing.T) {
	c := DefaultConverter
	assert.True(t, c.CanConvert(BOOLEAN, INT))
	assert.True(t, c.CanConvert(INT, OBJECT))
	assert.True(t, c.CanConvert(OBJECT, BOOLEAN))
	assert.False(t, c.CanConvert(UNKNOWN, INT))
}

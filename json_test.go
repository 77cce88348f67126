package jpcfile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectPreservesOrder(t *testing.T) {
	o := NewObject()
	o.Set("zeta", int64(1))
	o.Set("alpha", "x")
	o.Set("mid", true)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, o.Keys())

	b, err := json.Marshal(o)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":1,"alpha":"x","mid":true}`, string(b))

	// Re-setting an existing key keeps its position.
	o.Set("zeta", int64(2))
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, o.Keys())
}

func TestObjectUnmarshal(t *testing.T) {
	const doc = `{"a":1,"b":2.5,"c":"hi","d":true,"e":[1,{"x":7}],"f":{"y":8}}`
	o := NewObject()
	require.NoError(t, json.Unmarshal([]byte(doc), o))
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, o.Keys())

	n, err := o.Int("a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	f, err := o.Float("b")
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)
	s, err := o.String("c")
	require.NoError(t, err)
	assert.Equal(t, "hi", s)
	v, err := o.Bool("d")
	require.NoError(t, err)
	assert.True(t, v)

	arr, err := o.Array("e")
	require.NoError(t, err)
	require.Len(t, arr, 2)
	nested, ok := arr[1].(*Object)
	require.True(t, ok)
	n, err = nested.Int("x")
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	sub, err := o.Object("f")
	require.NoError(t, err)
	n, err = sub.Int("y")
	require.NoError(t, err)
	assert.Equal(t, int64(8), n)

	// Round trip keeps member order.
	b, err := json.Marshal(o)
	require.NoError(t, err)
	assert.Equal(t, doc, string(b))
}

func TestObjectKeyErrors(t *testing.T) {
	o := NewObject()
	o.Set("s", "text")

	_, err := o.Int("s")
	var kerr *KeyError
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, "s", kerr.Key)

	_, err = o.Int("absent")
	require.ErrorAs(t, err, &kerr)
	_, err = o.Array("s")
	require.ErrorAs(t, err, &kerr)

	// Fractional numbers are accepted as integers, source-style.
	o.Set("n", json.Number("2.0"))
	n, err := o.Int("n")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestObjectCompact(t *testing.T) {
	o := NewObject()
	o.Set("B", int64(2))
	o.Set("A", "x")
	assert.Equal(t, `{"B":2,"A":"x"}`, o.Compact())

	// The keyed accessor is unaffected by the compact renderer.
	s, err := o.String("A")
	require.NoError(t, err)
	assert.Equal(t, "x", s)
}

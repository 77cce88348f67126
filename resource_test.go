package jpcfile

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tableResolver resolves names against a fixed list, standing in for a
// container.
type tableResolver []string

func (r tableResolver) TextureIndex(name string) (int16, bool) {
	for i, n := range r {
		if n == name {
			return int16(i), true
		}
	}
	return 0, false
}

func testResource() *Resource {
	r := &Resource{Index: 3}
	r.Dynamics = NewDynamicsBlock()
	r.Dynamics.Rate.V = 1
	r.BaseShape = NewBaseShape()
	r.BaseShape.TextureIndex.V = 0
	fb := NewFieldBlock()
	fb.Param1.V = 2
	r.FieldBlocks = []*FieldBlock{fb}
	kb := NewKeyBlock()
	kb.Keyframes = []*Keyframe{{Time: 0, Value: 1}}
	r.KeyBlocks = []*KeyBlock{kb}
	r.TextureNames = []string{"flame", "smoke"}
	return r
}

func TestResourceRoundTrip(t *testing.T) {
	r := testResource()
	r.ChildShape = NewChildShape()
	r.ChildShape.Life.V = 20

	out, warns := r.PackBinary(tableResolver{"flame", "smoke"})
	assert.Empty(t, warns)

	// Header: index, section count, block counts, texture count.
	assert.Equal(t, int16(3), int16(binary.BigEndian.Uint16(out[0:])))
	assert.Equal(t, uint16(6), binary.BigEndian.Uint16(out[2:]))
	assert.Equal(t, uint8(1), out[4])
	assert.Equal(t, uint8(1), out[5])
	assert.Equal(t, uint8(2), out[6])

	got := &Resource{}
	n, err := got.UnpackBinary(out, 0)
	require.NoError(t, err)
	assert.Equal(t, len(out), n)
	require.NotNil(t, got.Dynamics)
	require.NotNil(t, got.BaseShape)
	require.NotNil(t, got.ChildShape)
	assert.Nil(t, got.ExtraShape)
	require.Len(t, got.FieldBlocks, 1)
	require.Len(t, got.KeyBlocks, 1)
	assert.Equal(t, []int16{0, 1}, got.textureIndices)
	assert.Equal(t, uint16(20), got.ChildShape.Life.V)

	got.TextureNames = []string{"flame", "smoke"}
	out2, warns := got.PackBinary(tableResolver{"flame", "smoke"})
	assert.Empty(t, warns)
	assert.Equal(t, out, out2)
}

func TestResourceSectionCountMismatch(t *testing.T) {
	r := testResource()
	out, _ := r.PackBinary(tableResolver{"flame", "smoke"})

	// Declare two field blocks while the stream holds one.
	bad := append([]byte(nil), out...)
	bad[4] = 2
	got := &Resource{}
	_, err := got.UnpackBinary(bad, 0)
	var cerr *SectionCountError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "field", cerr.Kind)
	assert.Equal(t, 2, cerr.Declared)
	assert.Equal(t, 1, cerr.Found)
}

func TestResourceUnknownTag(t *testing.T) {
	r := testResource()
	out, _ := r.PackBinary(tableResolver{"flame", "smoke"})

	bad := append([]byte(nil), out...)
	copy(bad[resourceHeader:], "ZZZZ")
	got := &Resource{}
	_, err := got.UnpackBinary(bad, 0)
	var terr *TagError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "ZZZZ", terr.Tag)
	assert.Equal(t, resourceHeader, terr.Offset)
}

func TestResourceDropsUnresolvedTextures(t *testing.T) {
	r := testResource()
	r.TextureNames = []string{"flame", "missing", "smoke"}
	out, warns := r.PackBinary(tableResolver{"flame", "smoke"})
	require.Len(t, warns, 1)
	var merr *MissingTextureError
	require.ErrorAs(t, warns[0], &merr)
	assert.Equal(t, "missing", merr.Name)
	assert.Equal(t, int16(3), merr.Resource)

	// Only the two resolved entries make it into the table.
	assert.Equal(t, uint8(2), out[6])
}

func TestResourceJSONRoundTrip(t *testing.T) {
	r := testResource()
	r.ExtraShape = NewExtraShape()
	r.ExtraShape.RotateSpeed.V = 0.5
	data, _ := r.PackBinary(tableResolver{"flame", "smoke"})

	obj := r.PackJSON()
	assert.True(t, obj.Has("dynamicsBlock"))
	assert.True(t, obj.Has("baseShape"))
	assert.True(t, obj.Has("extraShape"))
	assert.False(t, obj.Has("childShape"))
	names, err := obj.Array("textures")
	require.NoError(t, err)
	assert.Len(t, names, 2)

	got := &Resource{Index: r.Index}
	require.NoError(t, got.UnpackJSON(obj))
	got.Index = r.Index
	data2, _ := got.PackBinary(tableResolver{"flame", "smoke"})
	assert.Equal(t, data, data2)
}

func TestResourceReplaceWith(t *testing.T) {
	r := testResource()
	other := &Resource{Index: 9, Name: "spark"}
	other.Dynamics = NewDynamicsBlock()
	other.BaseShape = NewBaseShape()
	other.TextureNames = []string{"spark00"}

	r.ReplaceWith(other)
	assert.Equal(t, int16(3), r.Index)
	assert.Equal(t, "spark", r.Name)
	assert.Equal(t, []string{"spark00"}, r.TextureNames)
	assert.Empty(t, r.FieldBlocks)

	// Deep copy, not aliasing.
	r.Dynamics.Rate.V = 5
	assert.Zero(t, other.Dynamics.Rate.V)
}

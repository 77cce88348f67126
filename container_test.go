package jpcfile

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContainer() *Container {
	c := &Container{}
	c.AddTexture(&Texture{Name: "flame", Data: []byte{1, 2, 3, 4}})
	c.AddTexture(&Texture{Name: "smoke", Data: make([]byte, 64)})

	r := testResource()
	r.Index = 0
	c.AddResource(r)
	return c
}

func TestContainerRoundTrip(t *testing.T) {
	c := testContainer()
	out, warns := c.PackBinary()
	assert.Empty(t, warns)

	assert.Equal(t, Magic, string(out[:8]))
	assert.Equal(t, uint16(1), binary.BigEndian.Uint16(out[0x8:]))
	assert.Equal(t, uint16(2), binary.BigEndian.Uint16(out[0xA:]))
	texOff := binary.BigEndian.Uint32(out[0xC:])
	assert.Zero(t, texOff%32)
	assert.Equal(t, TagTexture, string(out[texOff:texOff+4]))

	got := &Container{}
	require.NoError(t, got.UnpackBinary(out, 0))
	require.Len(t, got.Resources, 1)
	require.Len(t, got.Textures, 2)
	assert.Equal(t, "flame", got.Textures[0].Name)
	assert.Equal(t, []byte{1, 2, 3, 4}, got.Textures[0].Data[:4])
	assert.Equal(t, []string{"flame", "smoke"}, got.Resources[0].TextureNames)

	out2, warns := got.PackBinary()
	assert.Empty(t, warns)
	assert.Equal(t, out, out2)
}

func TestContainerInvalidMagic(t *testing.T) {
	c := testContainer()
	out, _ := c.PackBinary()
	copy(out, "JPAC1-00")
	err := (&Container{}).UnpackBinary(out, 0)
	require.ErrorIs(t, err, ErrInvalidMagic)

	err = (&Container{}).UnpackBinary([]byte("short"), 0)
	var terr *TruncatedError
	require.ErrorAs(t, err, &terr)
}

func TestContainerSilentTextureDrop(t *testing.T) {
	c := &Container{}
	c.AddTexture(&Texture{Name: "tex_a"})
	c.AddTexture(&Texture{Name: "tex_b"})
	r := testResource()
	r.TextureNames = []string{"tex_a", "tex_c"}
	c.AddResource(r)

	out, warns := c.PackBinary()
	require.Len(t, warns, 1)
	var merr *MissingTextureError
	require.ErrorAs(t, warns[0], &merr)
	assert.Equal(t, "tex_c", merr.Name)

	got := &Container{}
	require.NoError(t, got.UnpackBinary(out, 0))
	assert.Equal(t, []string{"tex_a"}, got.Resources[0].TextureNames)
}

func TestContainerReindexAfterReorder(t *testing.T) {
	c := testContainer()
	// Swap the texture table; names must resolve to the new slots, not
	// stale cached indices.
	c.Textures[0], c.Textures[1] = c.Textures[1], c.Textures[0]

	out, warns := c.PackBinary()
	assert.Empty(t, warns)
	got := &Container{}
	require.NoError(t, got.UnpackBinary(out, 0))
	assert.Equal(t, []string{"flame", "smoke"}, got.Resources[0].TextureNames)

	id, ok := c.TextureIndex("flame")
	require.True(t, ok)
	assert.Equal(t, int16(1), id)
}

func TestContainerValidate(t *testing.T) {
	c := testContainer()
	assert.Empty(t, c.Validate())

	c.Resources[0].TextureNames = append(c.Resources[0].TextureNames, "ghost")
	c.AddTexture(&Texture{Name: "a_far_too_long_texture_name"})
	errs := c.Validate()
	require.Len(t, errs, 2)
	var nerr *TextureNameError
	require.ErrorAs(t, errs[0], &nerr)
	var merr *MissingTextureError
	require.ErrorAs(t, errs[1], &merr)
	assert.Equal(t, "ghost", merr.Name)
}

func TestContainerTextureIndexOutOfRange(t *testing.T) {
	c := testContainer()
	out, _ := c.PackBinary()

	// Point the resource's first table entry past the texture list. The
	// TDB1 chunk is the last section of the only resource, right before
	// the texture stream padding.
	texOff := binary.BigEndian.Uint32(out[0xC:])
	idx := -1
	for at := containerHeader; at < int(texOff); at++ {
		if string(out[at:at+4]) == TagTextureTable {
			idx = at
			break
		}
	}
	require.GreaterOrEqual(t, idx, 0)
	binary.BigEndian.PutUint16(out[idx+chunkHeader:], 9)

	err := (&Container{}).UnpackBinary(out, 0)
	var ierr *TextureIndexError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, int16(9), ierr.Value)
	assert.Equal(t, 2, ierr.Count)
}

func TestContainerResourceManagement(t *testing.T) {
	c := testContainer()
	r2 := &Resource{}
	r2.Dynamics = NewDynamicsBlock()
	r2.BaseShape = NewBaseShape()
	c.AddResource(r2)
	assert.Equal(t, int16(1), r2.Index)

	c.RemoveResource(0)
	require.Len(t, c.Resources, 1)
	assert.Equal(t, int16(0), c.Resources[0].Index)

	tex, ok := c.Texture("smoke")
	require.True(t, ok)
	assert.Equal(t, "smoke", tex.Name)
	_, ok = c.Texture("nope")
	assert.False(t, ok)

	// AddTexture replaces in place on name collision.
	c.AddTexture(&Texture{Name: "smoke", Data: []byte{7}})
	id, _ := c.TextureIndex("smoke")
	assert.Equal(t, int16(1), id)
	tex, _ = c.Texture("smoke")
	assert.Equal(t, []byte{7}, tex.Data)
}

func TestContainerJSONRoundTrip(t *testing.T) {
	c := testContainer()
	obj := c.PackJSON()
	assert.Equal(t, []string{"particles", "textures"}, obj.Keys())

	got := &Container{}
	require.NoError(t, got.UnpackJSON(obj))
	require.Len(t, got.Resources, 1)
	assert.Equal(t, int16(0), got.Resources[0].Index)
	// Placeholder textures are created for names without payloads.
	require.Len(t, got.Textures, 2)
	assert.Empty(t, got.Textures[0].Data)
}

func TestTextureRecord(t *testing.T) {
	tex := &Texture{Name: "flame", Data: []byte{1, 2, 3}}
	out := tex.PackBinary()
	require.Zero(t, len(out)%32)
	assert.Equal(t, TagTexture, string(out[:4]))
	assert.Equal(t, uint32(len(out)), binary.BigEndian.Uint32(out[4:]))

	got := &Texture{}
	n, err := got.UnpackBinary(out, 0)
	require.NoError(t, err)
	assert.Equal(t, len(out), n)
	assert.Equal(t, "flame", got.Name)
	// Alignment padding stays with the payload.
	assert.Equal(t, len(out)-textureHeader, len(got.Data))
	assert.Equal(t, []byte{1, 2, 3}, got.Data[:3])

	assert.NotEqual(t, (&Texture{}).Digest(), tex.Digest())

	dup := tex.Clone()
	dup.Data[0] = 9
	assert.Equal(t, byte(1), tex.Data[0])

	other := &Texture{Name: "smoke", Data: []byte{5}}
	tex.ReplaceWith(other)
	assert.Equal(t, "smoke", tex.Name)
	assert.Equal(t, []byte{5}, tex.Data)
}

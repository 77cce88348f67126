package jpcfile

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseShapeScrollConditional(t *testing.T) {
	b := NewBaseShape()
	plain := b.PackBinary()
	assert.Equal(t, baseShapeHeader, len(plain))

	require.NoError(t, b.Flags.SetBool("IsEnableTexScrollAnim", true))
	b.TexIncTransX.Inner().(*F32Field).V = 0.01
	scrolled := b.PackBinary()
	assert.Equal(t, baseShapeHeader+baseShapeScrollSize, len(scrolled))

	require.NoError(t, b.Flags.SetBool("IsEnableTexScrollAnim", false))
	assert.Equal(t, len(plain), len(b.PackBinary()))
}

func TestBaseShapeExtraRegionLayout(t *testing.T) {
	b := NewBaseShape()
	require.NoError(t, b.TextureFlags.SetBool("IsEnableTexAnim", true))
	require.NoError(t, b.ColorFlags.SetBool("IsPrimaryColorAnimEnabled", true))
	require.NoError(t, b.ColorFlags.SetBool("IsEnvironmentColorAnimEnabled", true))

	b.TextureIndexAnimData = []uint8{0, 1, 2, 3, 4} // aligns to 8
	b.PrimaryColorData = []*ColorKeyframe{
		{Frame: 0, Color: [4]byte{255, 0, 0, 255}},
		{Frame: 10, Color: [4]byte{0, 255, 0, 255}},
	} // 12 bytes, aligned
	b.EnvironmentColorData = []*ColorKeyframe{
		{Frame: 5, Color: [4]byte{1, 2, 3, 4}},
	} // 6 bytes, aligns to 8

	out := b.PackBinary()
	body := out[chunkHeader:]

	// Counts written back into the header.
	assert.Equal(t, uint8(5), body[bspTexAnimCountPos])
	assert.Equal(t, uint8(2), body[bspPrimaryCountPos])
	assert.Equal(t, uint8(1), body[bspEnvCountPos])

	// Sub-regions in order, each independently 4-byte aligned. With no
	// scroll floats the extra region starts at chunk offset 0x34.
	primOff := int(binary.BigEndian.Uint16(body[bspPrimaryOffsetPos:]))
	envOff := int(binary.BigEndian.Uint16(body[bspEnvOffsetPos:]))
	assert.Equal(t, baseShapeHeader+8, primOff)
	assert.Equal(t, baseShapeHeader+8+12, envOff)
	assert.Equal(t, baseShapeHeader+8+12+8, len(out))

	// The offsets point at the records themselves.
	assert.Equal(t, uint16(10), binary.BigEndian.Uint16(out[primOff+6:]))
	assert.Equal(t, byte(1), out[envOff+2])

	got := NewBaseShape()
	require.NoError(t, got.UnpackBinary(out, 0))
	assert.Equal(t, b.TextureIndexAnimData, got.TextureIndexAnimData)
	require.Len(t, got.PrimaryColorData, 2)
	assert.Equal(t, uint16(10), got.PrimaryColorData[1].Frame)
	require.Len(t, got.EnvironmentColorData, 1)
	assert.Equal(t, [4]byte{1, 2, 3, 4}, got.EnvironmentColorData[0].Color)
	assert.Equal(t, out, got.PackBinary())
}

func TestBaseShapeExtraRegionAfterScroll(t *testing.T) {
	b := NewBaseShape()
	require.NoError(t, b.Flags.SetBool("IsEnableTexScrollAnim", true))
	require.NoError(t, b.ColorFlags.SetBool("IsPrimaryColorAnimEnabled", true))
	b.PrimaryColorData = []*ColorKeyframe{{Frame: 1, Color: [4]byte{9, 9, 9, 9}}}

	out := b.PackBinary()
	primOff := int(binary.BigEndian.Uint16(out[chunkHeader+bspPrimaryOffsetPos:]))
	assert.Equal(t, baseShapeHeader+baseShapeScrollSize, primOff)

	got := NewBaseShape()
	require.NoError(t, got.UnpackBinary(out, 0))
	require.Len(t, got.PrimaryColorData, 1)
	assert.Equal(t, uint16(1), got.PrimaryColorData[0].Frame)
	assert.True(t, got.TexInitScaleX.Present())
}

func TestBaseShapeJSONRoundTrip(t *testing.T) {
	b := NewBaseShape()
	require.NoError(t, b.Flags.Set("ShapeType", uint32(ShapeBillboard)))
	require.NoError(t, b.TextureFlags.SetBool("IsEnableTexAnim", true))
	b.TextureIndexAnimData = []uint8{3, 1}
	b.BaseSizeX.V = 10
	b.PrimaryColor.V = [4]byte{255, 255, 255, 255}
	data := b.PackBinary()

	obj := b.PackJSON()
	// Composite members trail the flat fields.
	keys := obj.Keys()
	assert.Equal(t, "TextureIndexAnimData", keys[len(keys)-3])
	assert.Equal(t, "EnvironmentColorKeyframes", keys[len(keys)-2])
	assert.Equal(t, "PrimaryColorKeyframes", keys[len(keys)-1])

	got := NewBaseShape()
	require.NoError(t, got.UnpackJSON(obj))
	assert.Equal(t, data, got.PackBinary())
}

func TestBaseShapeClone(t *testing.T) {
	b := NewBaseShape()
	require.NoError(t, b.ColorFlags.SetBool("IsPrimaryColorAnimEnabled", true))
	b.PrimaryColorData = []*ColorKeyframe{{Frame: 2, Color: [4]byte{8, 8, 8, 8}}}
	c := b.Clone()
	c.PrimaryColorData[0].Frame = 99
	assert.Equal(t, uint16(2), b.PrimaryColorData[0].Frame)
	assert.Equal(t, b.PackBinary(), func() []byte { c.PrimaryColorData[0].Frame = 2; return c.PackBinary() }())
}

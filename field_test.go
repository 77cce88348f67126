package jpcfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveFieldsRoundTrip(t *testing.T) {
	u8 := NewU8("a")
	u8.V = 0xAB
	s8 := NewS8("b")
	s8.V = -5
	u16 := NewU16("c")
	u16.V = 0xBEEF
	u32 := NewU32("d")
	u32.V = 0xDEADBEEF
	f32 := NewF32("e")
	f32.V = 1.5
	bl := NewBool("f")
	bl.V = true
	raw := NewRaw("g")
	raw.V = [4]byte{1, 2, 3, 4}

	fields := []Field{u8, s8, u16, u32, f32, bl, raw, Pad(3)}

	var buf []byte
	for _, f := range fields {
		buf = f.PackBinary(buf)
	}
	require.Len(t, buf, 1+1+2+4+4+1+4+3)

	// Big-endian layout.
	assert.Equal(t, []byte{0xAB, 0xFB, 0xBE, 0xEF, 0xDE, 0xAD, 0xBE, 0xEF}, buf[:8])
	assert.Equal(t, []byte{0x3F, 0xC0, 0x00, 0x00}, buf[8:12])
	assert.Equal(t, []byte{0, 0, 0}, buf[len(buf)-3:])

	got := []Field{NewU8("a"), NewS8("b"), NewU16("c"), NewU32("d"), NewF32("e"), NewBool("f"), NewRaw("g"), Pad(3)}
	off := 0
	for _, f := range got {
		require.NoError(t, f.UnpackBinary(buf, off))
		off += f.Size()
	}
	assert.Equal(t, u8.V, got[0].(*U8Field).V)
	assert.Equal(t, s8.V, got[1].(*S8Field).V)
	assert.Equal(t, u16.V, got[2].(*U16Field).V)
	assert.Equal(t, u32.V, got[3].(*U32Field).V)
	assert.Equal(t, f32.V, got[4].(*F32Field).V)
	assert.Equal(t, bl.V, got[5].(*BoolField).V)
	assert.Equal(t, raw.V, got[6].(*RawField).V)
}

func TestFieldTruncated(t *testing.T) {
	buf := []byte{1, 2}
	f := NewU32("value")
	err := f.UnpackBinary(buf, 0)
	var terr *TruncatedError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "value", terr.Field)
	assert.Equal(t, 0, terr.Offset)
}

func TestPadFieldIsInert(t *testing.T) {
	p := Pad(2)
	require.NoError(t, p.UnpackBinary(nil, 0))
	assert.Equal(t, []byte{0xFF, 0, 0}, p.PackBinary([]byte{0xFF}))
	obj := NewObject()
	p.PackJSON(obj)
	assert.Empty(t, obj.Keys())
}

func TestRawFieldJSONHex(t *testing.T) {
	f := NewRaw("Color")
	f.V = [4]byte{0xFF, 0x80, 0x00, 0xFF}
	obj := NewObject()
	f.PackJSON(obj)
	s, err := obj.String("Color")
	require.NoError(t, err)
	assert.Equal(t, "ff8000ff", s)

	g := NewRaw("Color")
	require.NoError(t, g.UnpackJSON(obj))
	assert.Equal(t, f.V, g.V)
}

func TestAlignHelpers(t *testing.T) {
	assert.Equal(t, 0, alignLen(0, 4))
	assert.Equal(t, 4, alignLen(1, 4))
	assert.Equal(t, 4, alignLen(4, 4))
	assert.Equal(t, 32, alignLen(17, 32))
	assert.Equal(t, []byte{1, 0, 0, 0}, pad([]byte{1}, 4))
}

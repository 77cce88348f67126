package jpcfile

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamicsBlockRoundTrip(t *testing.T) {
	b := NewDynamicsBlock()
	require.NoError(t, b.Flags.Set("VolumeType", uint32(VolumeSphere)))
	require.NoError(t, b.Flags.SetBool("FollowEmitter", true))
	b.EmitterScaleX.V = 2
	b.Rate.V = 0.5
	b.MaxFrame.V = 300
	b.RateStep.V = 1

	out := b.PackBinary()
	assert.Equal(t, TagDynamics, string(out[:4]))
	assert.Equal(t, uint32(len(out)), binary.BigEndian.Uint32(out[4:]))
	assert.Zero(t, len(out)%4)

	got := NewDynamicsBlock()
	require.NoError(t, got.UnpackBinary(out, 0))
	assert.Equal(t, b.Flags.Word(), got.Flags.Word())
	assert.Equal(t, float32(2), got.EmitterScaleX.V)
	assert.Equal(t, float32(0.5), got.Rate.V)
	assert.Equal(t, uint16(300), got.MaxFrame.V)
	assert.Equal(t, uint8(1), got.RateStep.V)

	assert.Equal(t, out, got.PackBinary())
}

func TestDynamicsBlockJSONRoundTrip(t *testing.T) {
	b := NewDynamicsBlock()
	require.NoError(t, b.Flags.Set("VolumeType", uint32(VolumeTorus)))
	b.Spread.V = 0.25
	b.Lifetime.V = 60
	data := b.PackBinary()

	obj := b.PackJSON()
	// Flag members come before plain fields, in declaration order.
	assert.Equal(t, "VolumeType", obj.Keys()[0])
	assert.True(t, obj.Has(binaryDataKey))

	got := NewDynamicsBlock()
	require.NoError(t, got.UnpackJSON(obj))
	assert.Equal(t, data, got.PackBinary())
}

func TestChunkJSONWithoutBinaryData(t *testing.T) {
	b := NewFieldBlock()
	require.NoError(t, b.Flags.Set("FieldType", uint32(FieldVortex)))
	b.Param1.V = 3
	data := b.PackBinary()

	obj := b.PackJSON()
	trimmed := NewObject()
	for _, k := range obj.Keys() {
		if k == binaryDataKey {
			continue
		}
		v, _ := obj.Get(k)
		trimmed.Set(k, v)
	}

	got := NewFieldBlock()
	require.NoError(t, got.UnpackJSON(trimmed))
	assert.Equal(t, data, got.PackBinary())
}

func TestChunkTruncated(t *testing.T) {
	b := NewFieldBlock()
	data := b.PackBinary()
	var terr *TruncatedError
	require.ErrorAs(t, b.UnpackBinary(data[:10], 0), &terr)

	// A lying size header is also truncation.
	bad := append([]byte(nil), data...)
	binary.BigEndian.PutUint32(bad[4:], uint32(len(bad)+8))
	require.ErrorAs(t, b.UnpackBinary(bad, 0), &terr)
}

func TestKeyBlockRoundTrip(t *testing.T) {
	b := NewKeyBlock()
	b.KeyType.V = uint8(KeyScale)
	b.Loop.V = true
	b.Keyframes = []*Keyframe{
		{Time: 0, Value: 1, TangentIn: 0.1, TangentOut: 0.2},
		{Time: 30, Value: 0, TangentIn: -1, TangentOut: -1},
	}

	out := b.PackBinary()
	assert.Equal(t, chunkHeader+4+2*keyframeSize, len(out))
	// The count byte tracks the list.
	assert.Equal(t, uint8(2), out[chunkHeader+1])

	got := NewKeyBlock()
	require.NoError(t, got.UnpackBinary(out, 0))
	require.Len(t, got.Keyframes, 2)
	assert.Equal(t, float32(30), got.Keyframes[1].Time)
	assert.True(t, got.Loop.V)
	assert.Equal(t, out, got.PackBinary())
}

func TestKeyBlockJSONRoundTrip(t *testing.T) {
	b := NewKeyBlock()
	b.KeyType.V = uint8(KeyRate)
	b.Keyframes = []*Keyframe{{Time: 5, Value: 2.5}}
	data := b.PackBinary()

	obj := b.PackJSON()
	kf, err := obj.Array("Keyframes")
	require.NoError(t, err)
	require.Len(t, kf, 1)

	got := NewKeyBlock()
	require.NoError(t, got.UnpackJSON(obj))
	assert.Equal(t, data, got.PackBinary())
}

func TestCloneIndependence(t *testing.T) {
	b := NewKeyBlock()
	b.KeyType.V = 3
	b.Keyframes = []*Keyframe{{Time: 1, Value: 2}}
	c := b.Clone()
	c.KeyType.V = 9
	c.Keyframes[0].Value = 7
	assert.Equal(t, uint8(3), b.KeyType.V)
	assert.Equal(t, float32(2), b.Keyframes[0].Value)

	d := NewDynamicsBlock()
	d.Rate.V = 1.5
	e := d.Clone()
	e.Rate.V = 9
	assert.Equal(t, float32(1.5), d.Rate.V)
}

func TestChunkChangeDiagnostics(t *testing.T) {
	var out bytes.Buffer
	prev := Diagnostics
	Diagnostics = hclog.New(&hclog.LoggerOptions{
		Level:  hclog.Debug,
		Output: &out,
	})
	defer func() { Diagnostics = prev }()

	b := NewDynamicsBlock()
	b.Rate.V = 0.5
	data := b.PackBinary()

	got := NewDynamicsBlock()
	require.NoError(t, got.UnpackBinary(data, 0))
	require.Equal(t, xxhash.Sum64(got.shadow), got.shadowSum)

	// Repacking an untouched chunk stays quiet.
	out.Reset()
	got.PackBinary()
	assert.NotContains(t, out.String(), "chunk changed since decode")

	got.Rate.V = 2
	out.Reset()
	repacked := got.PackBinary()
	assert.Contains(t, out.String(), "chunk changed since decode")
	assert.Contains(t, out.String(), "field changed")
	assert.Equal(t, xxhash.Sum64(got.shadow), got.shadowSum)

	check := NewDynamicsBlock()
	require.NoError(t, check.UnpackBinary(repacked, 0))
	assert.Equal(t, float32(2), check.Rate.V)
}

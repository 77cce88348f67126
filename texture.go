package jpcfile

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

const (
	// textureNameLen is the width of the fixed name slot in a texture
	// record.
	textureNameLen = 0x14

	// textureHeader is the tag+size header, a reserved word, and the name
	// slot together.
	textureHeader = 0x20
)

// Texture is one named BTI image record (tag "TEX1"). The image payload
// is carried opaquely; nothing in the container format depends on its
// contents.
type Texture struct {
	// Name is the texture's file name, at most 20 bytes of ASCII. It is
	// the key resources reference the texture by.
	Name string

	// Data is the BTI payload, alignment bytes included.
	Data []byte
}

// UnpackBinary decodes the texture record at off and returns the total
// number of bytes it occupies.
func (t *Texture) UnpackBinary(buf []byte, off int) (int, error) {
	if off < 0 || off+textureHeader > len(buf) {
		return 0, &TruncatedError{Field: TagTexture, Offset: off}
	}
	size := int(int32(binary.BigEndian.Uint32(buf[off+4:])))
	if size < textureHeader || off+size > len(buf) {
		return 0, &TruncatedError{Field: TagTexture, Offset: off + 4}
	}
	name := buf[off+0xC : off+0xC+textureNameLen]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	t.Name = string(name)
	t.Data = append([]byte(nil), buf[off+textureHeader:off+size]...)
	return size, nil
}

// PackBinary encodes the texture record, padding the payload to a
// 32-byte boundary. Names longer than the fixed slot are truncated.
func (t *Texture) PackBinary() []byte {
	payload := pad(t.Data, 32)
	out := make([]byte, 0, textureHeader+len(payload))
	out = append(out, TagTexture...)
	out = binary.BigEndian.AppendUint32(out, uint32(textureHeader+len(payload)))
	out = binary.BigEndian.AppendUint32(out, 0)

	name := make([]byte, textureNameLen)
	copy(name, t.Name)
	out = append(out, name...)
	return append(out, payload...)
}

// Digest returns a 256-bit BLAKE2b digest of the payload, for spotting
// duplicate images across containers without comparing them byte by
// byte.
func (t *Texture) Digest() [blake2b.Size256]byte {
	return blake2b.Sum256(t.Data)
}

// Clone returns an independent copy of the texture.
func (t *Texture) Clone() *Texture {
	return &Texture{Name: t.Name, Data: append([]byte(nil), t.Data...)}
}

// ReplaceWith overwrites the texture's name and payload with a copy of
// other's. Resources referencing the old name must be repointed by the
// caller.
func (t *Texture) ReplaceWith(other *Texture) {
	t.Name = other.Name
	t.Data = append([]byte(nil), other.Data...)
}

package jpcfile

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
)

// Field is a single slot in a chunk's fixed byte layout. A Field knows its
// name in the structured-text form, its width in the byte stream, and how
// to move its value between both forms. All multi-byte values are
// big-endian.
type Field interface {
	// Name returns the key under which the field appears in the
	// structured-text form. Pad fields have no name.
	Name() string

	// Size returns the number of bytes the field occupies in the stream.
	// Conditional fields report 0 while absent.
	Size() int

	// UnpackBinary decodes the field's value from buf at off.
	UnpackBinary(buf []byte, off int) error

	// PackBinary appends the field's encoding to b.
	PackBinary(b []byte) []byte

	// PackJSON writes the field's value under its name to obj.
	PackJSON(obj *Object)

	// UnpackJSON reads the field's value from obj.
	UnpackJSON(obj *Object) error

	// CopyFrom copies the value of src, which must be the same concrete
	// type, into the field. Chunk clones copy field lists positionally.
	CopyFrom(src Field)
}

////////////////////////////////////////////////////////////////

// U8Field is an unsigned byte field.
type U8Field struct {
	name string
	V    uint8
}

func NewU8(name string) *U8Field { return &U8Field{name: name} }

func (f *U8Field) Name() string { return f.name }
func (f *U8Field) Size() int    { return 1 }

func (f *U8Field) UnpackBinary(buf []byte, off int) error {
	if off < 0 || off+1 > len(buf) {
		return &TruncatedError{Field: f.name, Offset: off}
	}
	f.V = buf[off]
	return nil
}

func (f *U8Field) PackBinary(b []byte) []byte { return append(b, f.V) }

func (f *U8Field) PackJSON(obj *Object) { obj.Set(f.name, int64(f.V)) }

func (f *U8Field) UnpackJSON(obj *Object) error {
	v, err := obj.Int(f.name)
	if err != nil {
		return err
	}
	f.V = uint8(v)
	return nil
}

func (f *U8Field) CopyFrom(src Field) { f.V = src.(*U8Field).V }

////////////////////////////////////////////////////////////////

// S8Field is a signed byte field.
type S8Field struct {
	name string
	V    int8
}

func NewS8(name string) *S8Field { return &S8Field{name: name} }

func (f *S8Field) Name() string { return f.name }
func (f *S8Field) Size() int    { return 1 }

func (f *S8Field) UnpackBinary(buf []byte, off int) error {
	if off < 0 || off+1 > len(buf) {
		return &TruncatedError{Field: f.name, Offset: off}
	}
	f.V = int8(buf[off])
	return nil
}

func (f *S8Field) PackBinary(b []byte) []byte { return append(b, byte(f.V)) }

func (f *S8Field) PackJSON(obj *Object) { obj.Set(f.name, int64(f.V)) }

func (f *S8Field) UnpackJSON(obj *Object) error {
	v, err := obj.Int(f.name)
	if err != nil {
		return err
	}
	f.V = int8(v)
	return nil
}

func (f *S8Field) CopyFrom(src Field) { f.V = src.(*S8Field).V }

////////////////////////////////////////////////////////////////

// U16Field is an unsigned 16-bit field.
type U16Field struct {
	name string
	V    uint16
}

func NewU16(name string) *U16Field { return &U16Field{name: name} }

func (f *U16Field) Name() string { return f.name }
func (f *U16Field) Size() int    { return 2 }

func (f *U16Field) UnpackBinary(buf []byte, off int) error {
	if off < 0 || off+2 > len(buf) {
		return &TruncatedError{Field: f.name, Offset: off}
	}
	f.V = binary.BigEndian.Uint16(buf[off:])
	return nil
}

func (f *U16Field) PackBinary(b []byte) []byte {
	return binary.BigEndian.AppendUint16(b, f.V)
}

func (f *U16Field) PackJSON(obj *Object) { obj.Set(f.name, int64(f.V)) }

func (f *U16Field) UnpackJSON(obj *Object) error {
	v, err := obj.Int(f.name)
	if err != nil {
		return err
	}
	f.V = uint16(v)
	return nil
}

func (f *U16Field) CopyFrom(src Field) { f.V = src.(*U16Field).V }

////////////////////////////////////////////////////////////////

// U32Field is an unsigned 32-bit field.
type U32Field struct {
	name string
	V    uint32
}

func NewU32(name string) *U32Field { return &U32Field{name: name} }

func (f *U32Field) Name() string { return f.name }
func (f *U32Field) Size() int    { return 4 }

func (f *U32Field) UnpackBinary(buf []byte, off int) error {
	if off < 0 || off+4 > len(buf) {
		return &TruncatedError{Field: f.name, Offset: off}
	}
	f.V = binary.BigEndian.Uint32(buf[off:])
	return nil
}

func (f *U32Field) PackBinary(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, f.V)
}

func (f *U32Field) PackJSON(obj *Object) { obj.Set(f.name, int64(f.V)) }

func (f *U32Field) UnpackJSON(obj *Object) error {
	v, err := obj.Int(f.name)
	if err != nil {
		return err
	}
	f.V = uint32(v)
	return nil
}

func (f *U32Field) CopyFrom(src Field) { f.V = src.(*U32Field).V }

////////////////////////////////////////////////////////////////

// F32Field is a 32-bit float field.
type F32Field struct {
	name string
	V    float32
}

func NewF32(name string) *F32Field { return &F32Field{name: name} }

func (f *F32Field) Name() string { return f.name }
func (f *F32Field) Size() int    { return 4 }

func (f *F32Field) UnpackBinary(buf []byte, off int) error {
	if off < 0 || off+4 > len(buf) {
		return &TruncatedError{Field: f.name, Offset: off}
	}
	f.V = math.Float32frombits(binary.BigEndian.Uint32(buf[off:]))
	return nil
}

func (f *F32Field) PackBinary(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, math.Float32bits(f.V))
}

func (f *F32Field) PackJSON(obj *Object) { obj.Set(f.name, float64(f.V)) }

func (f *F32Field) UnpackJSON(obj *Object) error {
	v, err := obj.Float(f.name)
	if err != nil {
		return err
	}
	f.V = float32(v)
	return nil
}

func (f *F32Field) CopyFrom(src Field) { f.V = src.(*F32Field).V }

////////////////////////////////////////////////////////////////

// BoolField is a bool stored as a single byte; any nonzero byte decodes
// as true.
type BoolField struct {
	name string
	V    bool
}

func NewBool(name string) *BoolField { return &BoolField{name: name} }

func (f *BoolField) Name() string { return f.name }
func (f *BoolField) Size() int    { return 1 }

func (f *BoolField) UnpackBinary(buf []byte, off int) error {
	if off < 0 || off+1 > len(buf) {
		return &TruncatedError{Field: f.name, Offset: off}
	}
	f.V = buf[off] != 0
	return nil
}

func (f *BoolField) PackBinary(b []byte) []byte {
	if f.V {
		return append(b, 1)
	}
	return append(b, 0)
}

func (f *BoolField) PackJSON(obj *Object) { obj.Set(f.name, f.V) }

func (f *BoolField) UnpackJSON(obj *Object) error {
	v, err := obj.Bool(f.name)
	if err != nil {
		return err
	}
	f.V = v
	return nil
}

func (f *BoolField) CopyFrom(src Field) { f.V = src.(*BoolField).V }

////////////////////////////////////////////////////////////////

// RawField is an opaque 4-byte span, used for packed colors and fields
// whose interpretation is unknown. The structured-text form is a hex
// string.
type RawField struct {
	name string
	V    [4]byte
}

func NewRaw(name string) *RawField { return &RawField{name: name} }

func (f *RawField) Name() string { return f.name }
func (f *RawField) Size() int    { return 4 }

func (f *RawField) UnpackBinary(buf []byte, off int) error {
	if off < 0 || off+4 > len(buf) {
		return &TruncatedError{Field: f.name, Offset: off}
	}
	copy(f.V[:], buf[off:])
	return nil
}

func (f *RawField) PackBinary(b []byte) []byte { return append(b, f.V[:]...) }

func (f *RawField) PackJSON(obj *Object) { obj.Set(f.name, hex.EncodeToString(f.V[:])) }

func (f *RawField) UnpackJSON(obj *Object) error {
	s, err := obj.String(f.name)
	if err != nil {
		return err
	}
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != len(f.V) {
		return fmt.Errorf("member %q is not %d hex bytes", f.name, len(f.V))
	}
	copy(f.V[:], raw)
	return nil
}

func (f *RawField) CopyFrom(src Field) { f.V = src.(*RawField).V }

////////////////////////////////////////////////////////////////

// PadField consumes n bytes on decode without reading them, and emits n
// zero bytes on encode. It exists purely to keep the fields around it at
// their fixed offsets; it has no name and no structured-text presence.
type PadField int

func Pad(n int) PadField { return PadField(n) }

func (p PadField) Name() string { return "" }
func (p PadField) Size() int    { return int(p) }
func (p PadField) UnpackBinary([]byte, int) error { return nil }

func (p PadField) PackBinary(b []byte) []byte {
	return append(b, make([]byte, int(p))...)
}

func (p PadField) PackJSON(*Object) {}
func (p PadField) UnpackJSON(*Object) error { return nil }
func (p PadField) CopyFrom(Field) {}

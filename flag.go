package jpcfile

import "encoding/binary"

// FlagKind is the value interpretation of a flag descriptor.
type FlagKind int

const (
	// FlagBool descriptors read as a nonzero test.
	FlagBool FlagKind = iota
	// FlagInt descriptors read as the masked bits unchanged.
	FlagInt
	// FlagEnum descriptors read as an index into a value-name table and
	// fail on values outside it.
	FlagEnum
)

// flagDesc addresses a bit range inside a flag word.
type flagDesc struct {
	name  string
	shift uint
	mask  uint32
	kind  FlagKind
	enum  []string // value names when kind is FlagEnum
}

// FlagField is an integer field whose bits are individually meaningful.
// Descriptors address bit ranges by (shift, mask) and are emitted to the
// structured-text form in the order they were assigned; that order has no
// other semantic effect.
type FlagField struct {
	name  string
	width int // backing word width in bytes: 1, 2, or 4
	word  uint32
	descs []flagDesc
}

func NewFlags8(name string) *FlagField  { return &FlagField{name: name, width: 1} }
func NewFlags16(name string) *FlagField { return &FlagField{name: name, width: 2} }
func NewFlags32(name string) *FlagField { return &FlagField{name: name, width: 4} }

// Assign registers a bool- or int-kinded descriptor.
func (f *FlagField) Assign(name string, shift uint, mask uint32, kind FlagKind) {
	f.descs = append(f.descs, flagDesc{name: name, shift: shift, mask: mask, kind: kind})
}

// AssignEnum registers an enum-kinded descriptor whose values index names.
func (f *FlagField) AssignEnum(name string, shift uint, mask uint32, names []string) {
	f.descs = append(f.descs, flagDesc{name: name, shift: shift, mask: mask, kind: FlagEnum, enum: names})
}

func (f *FlagField) find(name string) (*flagDesc, error) {
	for i := range f.descs {
		if f.descs[i].name == name {
			return &f.descs[i], nil
		}
	}
	return nil, &UnknownFlagError{Word: f.name, Flag: name}
}

// Get returns the descriptor's bits, masked and shifted down. Enum-kinded
// descriptors fail with EnumValueError on values outside their table; the
// raw value is still returned alongside the error.
func (f *FlagField) Get(name string) (uint32, error) {
	d, err := f.find(name)
	if err != nil {
		return 0, err
	}
	v := (f.word >> d.shift) & d.mask
	if d.kind == FlagEnum && int(v) >= len(d.enum) {
		return v, &EnumValueError{Word: f.name, Flag: name, Value: v}
	}
	return v, nil
}

// GetBool returns the descriptor's bits as a nonzero test.
func (f *FlagField) GetBool(name string) (bool, error) {
	v, err := f.Get(name)
	return v != 0, err
}

// Set stores v into the descriptor's bits, leaving all other bits of the
// word untouched. Bits of v outside the mask are silently truncated.
func (f *FlagField) Set(name string, v uint32) error {
	d, err := f.find(name)
	if err != nil {
		return err
	}
	f.word = f.word&^(d.mask<<d.shift) | (v&d.mask)<<d.shift
	return nil
}

// SetBool stores a bool-kinded value.
func (f *FlagField) SetBool(name string, v bool) error {
	if v {
		return f.Set(name, 1)
	}
	return f.Set(name, 0)
}

// Bit reports whether the single bit at shift is set. It reads the raw
// word and needs no descriptor; conditional fields use it as their
// presence predicate.
func (f *FlagField) Bit(shift uint) bool {
	return f.word>>shift&1 != 0
}

// Word returns the raw backing word.
func (f *FlagField) Word() uint32 { return f.word }

// SetWord replaces the raw backing word.
func (f *FlagField) SetWord(v uint32) { f.word = v }

////////////////////////////////////////////////////////////////

func (f *FlagField) Name() string { return f.name }
func (f *FlagField) Size() int    { return f.width }

func (f *FlagField) UnpackBinary(buf []byte, off int) error {
	if off < 0 || off+f.width > len(buf) {
		return &TruncatedError{Field: f.name, Offset: off}
	}
	switch f.width {
	case 1:
		f.word = uint32(buf[off])
	case 2:
		f.word = uint32(binary.BigEndian.Uint16(buf[off:]))
	default:
		f.word = binary.BigEndian.Uint32(buf[off:])
	}
	return nil
}

func (f *FlagField) PackBinary(b []byte) []byte {
	switch f.width {
	case 1:
		return append(b, uint8(f.word))
	case 2:
		return binary.BigEndian.AppendUint16(b, uint16(f.word))
	default:
		return binary.BigEndian.AppendUint32(b, f.word)
	}
}

// PackJSON emits one member per descriptor, in declaration order. Enum
// values are emitted as their raw integers, matching the binary form.
func (f *FlagField) PackJSON(obj *Object) {
	for _, d := range f.descs {
		v := (f.word >> d.shift) & d.mask
		if d.kind == FlagBool {
			obj.Set(d.name, v != 0)
		} else {
			obj.Set(d.name, int64(v))
		}
	}
}

// UnpackJSON rebuilds the word from one member per descriptor. Bits not
// covered by any descriptor are reset to zero.
func (f *FlagField) UnpackJSON(obj *Object) error {
	var word uint32
	for _, d := range f.descs {
		var v uint32
		if d.kind == FlagBool {
			b, err := obj.Bool(d.name)
			if err != nil {
				return err
			}
			if b {
				v = 1
			}
		} else {
			n, err := obj.Int(d.name)
			if err != nil {
				return err
			}
			v = uint32(n)
		}
		word = word&^(d.mask<<d.shift) | (v&d.mask)<<d.shift
	}
	f.word = word
	return nil
}

func (f *FlagField) CopyFrom(src Field) { f.word = src.(*FlagField).word }

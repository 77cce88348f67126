package jpcfile

import "encoding/hex"

// Keyframe is one fixed 16-byte animation key record: a time, a value,
// and the two curve tangents around it.
type Keyframe struct {
	Time       float32
	Value      float32
	TangentIn  float32
	TangentOut float32
}

// keyframeSize is the encoded width of one keyframe record.
const keyframeSize = 16

func (k *Keyframe) unpackBinary(buf []byte, off int) error {
	fields := [4]*float32{&k.Time, &k.Value, &k.TangentIn, &k.TangentOut}
	names := [4]string{"Time", "Value", "TangentIn", "TangentOut"}
	for i, p := range fields {
		f := F32Field{name: names[i]}
		if err := f.UnpackBinary(buf, off+4*i); err != nil {
			return err
		}
		*p = f.V
	}
	return nil
}

func (k *Keyframe) packBinary(b []byte) []byte {
	for _, v := range [4]float32{k.Time, k.Value, k.TangentIn, k.TangentOut} {
		f := F32Field{V: v}
		b = f.PackBinary(b)
	}
	return b
}

func (k *Keyframe) packJSON() *Object {
	obj := NewObject()
	obj.Set("Time", float64(k.Time))
	obj.Set("Value", float64(k.Value))
	obj.Set("TangentIn", float64(k.TangentIn))
	obj.Set("TangentOut", float64(k.TangentOut))
	return obj
}

func (k *Keyframe) unpackJSON(obj *Object) error {
	fields := [4]*float32{&k.Time, &k.Value, &k.TangentIn, &k.TangentOut}
	names := [4]string{"Time", "Value", "TangentIn", "TangentOut"}
	for i, p := range fields {
		v, err := obj.Float(names[i])
		if err != nil {
			return err
		}
		*p = float32(v)
	}
	return nil
}

////////////////////////////////////////////////////////////////

// KeyBlock animates one emitter parameter over time with a list of
// keyframes (tag "KFA1"). The fixed header names the animated parameter
// and whether the animation loops; the keyframe records follow it
// immediately. KeyCount is recomputed from Keyframes on every encode.
type KeyBlock struct {
	chunkCore

	KeyType  *U8Field // a KeyType value
	KeyCount *U8Field
	Loop     *BoolField

	Keyframes []*Keyframe
}

func NewKeyBlock() *KeyBlock {
	b := &KeyBlock{
		KeyType:  NewU8("KeyType"),
		KeyCount: NewU8("KeyCount"),
		Loop:     NewBool("Loop"),
	}
	b.tag = TagKeyBlock
	b.fields = []Field{b.KeyType, b.KeyCount, NewU8("Unused"), b.Loop}
	return b
}

func (b *KeyBlock) UnpackBinary(buf []byte, off int) error {
	body, err := b.readHeader(buf, off)
	if err != nil {
		return err
	}
	b.setShadow(append([]byte(nil), buf[off+chunkHeader:off+chunkHeader+body]...))
	if err := b.unpackFields(buf, off+chunkHeader); err != nil {
		return err
	}
	b.Keyframes = nil
	base := off + chunkHeader + 4
	for i := 0; i < int(b.KeyCount.V); i++ {
		k := &Keyframe{}
		if err := k.unpackBinary(buf, base+keyframeSize*i); err != nil {
			return err
		}
		b.Keyframes = append(b.Keyframes, k)
	}
	return nil
}

func (b *KeyBlock) PackBinary() []byte {
	b.KeyCount.V = uint8(len(b.Keyframes))
	body := b.packFields()
	for _, k := range b.Keyframes {
		body = k.packBinary(body)
	}
	b.identifyChanges(body)
	return b.frame(body)
}

func (b *KeyBlock) PackJSON() *Object {
	obj := NewObject()
	for _, f := range b.fields {
		f.PackJSON(obj)
	}
	keys := []any{}
	for _, k := range b.Keyframes {
		keys = append(keys, k.packJSON())
	}
	obj.Set("Keyframes", keys)
	obj.Set(binaryDataKey, hex.EncodeToString(b.shadow))
	return obj
}

func (b *KeyBlock) UnpackJSON(obj *Object) error {
	if err := b.chunkCore.UnpackJSON(obj); err != nil {
		return err
	}
	arr, err := obj.Array("Keyframes")
	if err != nil {
		return err
	}
	b.Keyframes = nil
	for _, v := range arr {
		ko, ok := v.(*Object)
		if !ok {
			return &KeyError{Key: "Keyframes", Want: "array of objects"}
		}
		k := &Keyframe{}
		if err := k.unpackJSON(ko); err != nil {
			return err
		}
		b.Keyframes = append(b.Keyframes, k)
	}
	return nil
}

// Clone returns a structurally independent copy of the block.
func (b *KeyBlock) Clone() *KeyBlock {
	c := NewKeyBlock()
	c.copyCore(&b.chunkCore)
	for _, k := range b.Keyframes {
		dup := *k
		c.Keyframes = append(c.Keyframes, &dup)
	}
	return c
}

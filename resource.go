package jpcfile

import (
	"encoding/binary"
)

// resourceHeader is the fixed header preceding a resource's section
// stream: index, section count, field block count, key block count,
// texture count, then a pad byte.
const resourceHeader = 8

// TextureResolver maps texture names to their slot in a texture table.
// Container implements it over its texture list.
type TextureResolver interface {
	// TextureIndex returns the table slot of the named texture, or false
	// if the name is not in the table.
	TextureIndex(name string) (int16, bool)
}

// Resource is one particle effect: an emitter definition assembled from
// tagged sections. Dynamics and BaseShape are present in every shipped
// resource; the other shapes and the animation blocks are optional.
//
// Texture references are held as names. The binary form stores table
// indices instead; decoding translates them through the owning
// container's texture table, and encoding translates them back through a
// TextureResolver.
type Resource struct {
	// Index is the resource's slot in its container.
	Index int16

	// Name is an optional human-readable label. It is not stored in the
	// binary form and round-trips only through external name lists.
	Name string

	Dynamics    *DynamicsBlock
	FieldBlocks []*FieldBlock
	KeyBlocks   []*KeyBlock
	BaseShape   *BaseShape
	ExtraShape  *ExtraShape
	ChildShape  *ChildShape
	ExTexShape  *ExTexShape

	// TextureNames are the referenced textures in table order.
	TextureNames []string

	// textureIndices carries the raw TDB1 values between UnpackBinary and
	// the container's name translation.
	textureIndices []int16
}

// sectionSize reads a section's declared size without decoding it.
func sectionSize(buf []byte, off int) (int, error) {
	if off < 0 || off+chunkHeader > len(buf) {
		return 0, &TruncatedError{Field: "section", Offset: off}
	}
	size := int(int32(binary.BigEndian.Uint32(buf[off+4:])))
	if size < chunkHeader || off+size > len(buf) {
		return 0, &TruncatedError{Field: "section", Offset: off + 4}
	}
	return size, nil
}

// UnpackBinary decodes the resource whose header starts at off and
// returns the total number of bytes it occupies. Texture references are
// left as raw table indices until the container translates them.
func (r *Resource) UnpackBinary(buf []byte, off int) (int, error) {
	if off < 0 || off+resourceHeader > len(buf) {
		return 0, &TruncatedError{Field: "resource header", Offset: off}
	}
	r.Index = int16(binary.BigEndian.Uint16(buf[off:]))
	sections := int(int16(binary.BigEndian.Uint16(buf[off+2:])))
	fieldCount := int(buf[off+4])
	keyCount := int(buf[off+5])
	textureCount := int(buf[off+6])

	r.Dynamics = nil
	r.FieldBlocks = nil
	r.KeyBlocks = nil
	r.BaseShape = nil
	r.ExtraShape = nil
	r.ChildShape = nil
	r.ExTexShape = nil
	r.TextureNames = nil
	r.textureIndices = nil

	total := resourceHeader
	pos := off + resourceHeader
	for i := 0; i < sections; i++ {
		size, err := sectionSize(buf, pos)
		if err != nil {
			return 0, err
		}
		switch tag := string(buf[pos : pos+4]); tag {
		case TagDynamics:
			r.Dynamics = NewDynamicsBlock()
			err = r.Dynamics.UnpackBinary(buf, pos)
		case TagFieldBlock:
			b := NewFieldBlock()
			if err = b.UnpackBinary(buf, pos); err == nil {
				r.FieldBlocks = append(r.FieldBlocks, b)
			}
		case TagKeyBlock:
			b := NewKeyBlock()
			if err = b.UnpackBinary(buf, pos); err == nil {
				r.KeyBlocks = append(r.KeyBlocks, b)
			}
		case TagBaseShape:
			r.BaseShape = NewBaseShape()
			err = r.BaseShape.UnpackBinary(buf, pos)
		case TagExtraShape:
			r.ExtraShape = NewExtraShape()
			err = r.ExtraShape.UnpackBinary(buf, pos)
		case TagChildShape:
			r.ChildShape = NewChildShape()
			err = r.ChildShape.UnpackBinary(buf, pos)
		case TagExTexShape:
			r.ExTexShape = NewExTexShape()
			err = r.ExTexShape.UnpackBinary(buf, pos)
		case TagTextureTable:
			for j := 0; j < textureCount; j++ {
				at := pos + chunkHeader + 2*j
				if at+2 > pos+size {
					return 0, &TruncatedError{Field: TagTextureTable, Offset: at}
				}
				r.textureIndices = append(r.textureIndices, int16(binary.BigEndian.Uint16(buf[at:])))
			}
		default:
			return 0, &TagError{Tag: tag, Offset: pos}
		}
		if err != nil {
			return 0, err
		}
		total += size
		pos += size
	}

	if keyCount != len(r.KeyBlocks) {
		return 0, &SectionCountError{Kind: "key", Declared: keyCount, Found: len(r.KeyBlocks)}
	}
	if fieldCount != len(r.FieldBlocks) {
		return 0, &SectionCountError{Kind: "field", Declared: fieldCount, Found: len(r.FieldBlocks)}
	}
	return total, nil
}

// PackBinary encodes the resource, resolving texture names through res.
// Names res does not know are dropped from the texture table; each drop
// is reported as a MissingTextureError in the warning list, and encoding
// continues without them.
func (r *Resource) PackBinary(res TextureResolver) ([]byte, []error) {
	var warns []error

	indices := make([]int16, 0, len(r.TextureNames))
	for _, name := range r.TextureNames {
		id, ok := res.TextureIndex(name)
		if !ok {
			warns = append(warns, &MissingTextureError{Resource: r.Index, Name: name})
			continue
		}
		indices = append(indices, id)
	}

	out := make([]byte, 0, 256)
	out = binary.BigEndian.AppendUint16(out, uint16(r.Index))
	out = binary.BigEndian.AppendUint16(out, 0) // section count, written below
	out = append(out, uint8(len(r.FieldBlocks)), uint8(len(r.KeyBlocks)), uint8(len(indices)), 0)

	sections := 1 // the texture table is always emitted
	appendSection := func(c Chunk) {
		out = append(out, c.PackBinary()...)
		sections++
	}
	if r.Dynamics != nil {
		appendSection(r.Dynamics)
	}
	for _, b := range r.FieldBlocks {
		appendSection(b)
	}
	for _, b := range r.KeyBlocks {
		appendSection(b)
	}
	if r.BaseShape != nil {
		appendSection(r.BaseShape)
	}
	if r.ExtraShape != nil {
		appendSection(r.ExtraShape)
	}
	if r.ChildShape != nil {
		appendSection(r.ChildShape)
	}
	if r.ExTexShape != nil {
		appendSection(r.ExTexShape)
	}
	binary.BigEndian.PutUint16(out[2:], uint16(sections))

	var table []byte
	for _, id := range indices {
		table = binary.BigEndian.AppendUint16(table, uint16(id))
	}
	table = pad(table, 4)
	out = append(out, TagTextureTable...)
	out = binary.BigEndian.AppendUint32(out, uint32(chunkHeader+len(table)))
	out = append(out, table...)

	return out, warns
}

// PackJSON emits the resource's structured-text form. Absent blocks are
// omitted rather than emitted as null members.
func (r *Resource) PackJSON() *Object {
	obj := NewObject()
	if r.Dynamics != nil {
		obj.Set("dynamicsBlock", r.Dynamics.PackJSON())
	}
	if len(r.FieldBlocks) > 0 {
		a := make([]any, len(r.FieldBlocks))
		for i, b := range r.FieldBlocks {
			a[i] = b.PackJSON()
		}
		obj.Set("fieldBlocks", a)
	}
	if len(r.KeyBlocks) > 0 {
		a := make([]any, len(r.KeyBlocks))
		for i, b := range r.KeyBlocks {
			a[i] = b.PackJSON()
		}
		obj.Set("keyBlocks", a)
	}
	if r.BaseShape != nil {
		obj.Set("baseShape", r.BaseShape.PackJSON())
	}
	if r.ExtraShape != nil {
		obj.Set("extraShape", r.ExtraShape.PackJSON())
	}
	if r.ChildShape != nil {
		obj.Set("childShape", r.ChildShape.PackJSON())
	}
	if r.ExTexShape != nil {
		obj.Set("exTexShape", r.ExTexShape.PackJSON())
	}
	names := make([]any, len(r.TextureNames))
	for i, n := range r.TextureNames {
		names[i] = n
	}
	obj.Set("textures", names)
	return obj
}

// UnpackJSON reads the resource from its structured-text form. The index
// is not part of that form; it is assigned when the resource joins a
// container.
func (r *Resource) UnpackJSON(obj *Object) error {
	r.Index = -1
	r.Dynamics = nil
	r.FieldBlocks = nil
	r.KeyBlocks = nil
	r.BaseShape = nil
	r.ExtraShape = nil
	r.ChildShape = nil
	r.ExTexShape = nil
	r.textureIndices = nil

	if obj.Has("dynamicsBlock") {
		o, err := obj.Object("dynamicsBlock")
		if err != nil {
			return err
		}
		r.Dynamics = NewDynamicsBlock()
		if err := r.Dynamics.UnpackJSON(o); err != nil {
			return err
		}
	}
	if obj.Has("fieldBlocks") {
		a, err := obj.Array("fieldBlocks")
		if err != nil {
			return err
		}
		for _, v := range a {
			o, ok := v.(*Object)
			if !ok {
				return &KeyError{Key: "fieldBlocks", Want: "array of objects"}
			}
			b := NewFieldBlock()
			if err := b.UnpackJSON(o); err != nil {
				return err
			}
			r.FieldBlocks = append(r.FieldBlocks, b)
		}
	}
	if obj.Has("keyBlocks") {
		a, err := obj.Array("keyBlocks")
		if err != nil {
			return err
		}
		for _, v := range a {
			o, ok := v.(*Object)
			if !ok {
				return &KeyError{Key: "keyBlocks", Want: "array of objects"}
			}
			b := NewKeyBlock()
			if err := b.UnpackJSON(o); err != nil {
				return err
			}
			r.KeyBlocks = append(r.KeyBlocks, b)
		}
	}
	if obj.Has("baseShape") {
		o, err := obj.Object("baseShape")
		if err != nil {
			return err
		}
		r.BaseShape = NewBaseShape()
		if err := r.BaseShape.UnpackJSON(o); err != nil {
			return err
		}
	}
	if obj.Has("extraShape") {
		o, err := obj.Object("extraShape")
		if err != nil {
			return err
		}
		r.ExtraShape = NewExtraShape()
		if err := r.ExtraShape.UnpackJSON(o); err != nil {
			return err
		}
	}
	if obj.Has("childShape") {
		o, err := obj.Object("childShape")
		if err != nil {
			return err
		}
		r.ChildShape = NewChildShape()
		if err := r.ChildShape.UnpackJSON(o); err != nil {
			return err
		}
	}
	if obj.Has("exTexShape") {
		o, err := obj.Object("exTexShape")
		if err != nil {
			return err
		}
		r.ExTexShape = NewExTexShape()
		if err := r.ExTexShape.UnpackJSON(o); err != nil {
			return err
		}
	}

	names, err := obj.Array("textures")
	if err != nil {
		return err
	}
	r.TextureNames = nil
	for _, v := range names {
		s, ok := v.(string)
		if !ok {
			return &KeyError{Key: "textures", Want: "array of strings"}
		}
		r.TextureNames = append(r.TextureNames, s)
	}
	return nil
}

// Clone returns a structurally independent copy of the resource.
func (r *Resource) Clone() *Resource {
	c := &Resource{
		Index:        r.Index,
		Name:         r.Name,
		TextureNames: append([]string(nil), r.TextureNames...),
	}
	if r.Dynamics != nil {
		c.Dynamics = r.Dynamics.Clone()
	}
	for _, b := range r.FieldBlocks {
		c.FieldBlocks = append(c.FieldBlocks, b.Clone())
	}
	for _, b := range r.KeyBlocks {
		c.KeyBlocks = append(c.KeyBlocks, b.Clone())
	}
	if r.BaseShape != nil {
		c.BaseShape = r.BaseShape.Clone()
	}
	if r.ExtraShape != nil {
		c.ExtraShape = r.ExtraShape.Clone()
	}
	if r.ChildShape != nil {
		c.ChildShape = r.ChildShape.Clone()
	}
	if r.ExTexShape != nil {
		c.ExTexShape = r.ExTexShape.Clone()
	}
	return c
}

// ReplaceWith overwrites every part of the resource except its container
// slot with a deep copy of other.
func (r *Resource) ReplaceWith(other *Resource) {
	index := r.Index
	*r = *other.Clone()
	r.Index = index
}

package jpcfile

import (
	"encoding/binary"
)

// containerHeader is the magic, the two counts, and the texture-table
// offset together.
const containerHeader = 16

// Container is the top level of a JPAC2-10 file: an ordered list of
// particle resources followed by a table of named textures. Resources
// reference textures by name; the container owns the textures and is the
// resolver that turns names back into table slots at encode time.
type Container struct {
	Resources []*Resource
	Textures  []*Texture
}

// UnpackBinary decodes a whole container from buf starting at off.
//
// Textures are decoded first even though they come last in the byte
// stream: resources store only table indices, and translating them to
// names needs the table. Then the resource stream right after the header
// is decoded and every index is resolved.
func (c *Container) UnpackBinary(buf []byte, off int) error {
	if off < 0 || off+containerHeader > len(buf) {
		return &TruncatedError{Field: "container header", Offset: off}
	}
	if string(buf[off:off+len(Magic)]) != Magic {
		return ErrInvalidMagic
	}
	resourceCount := int(binary.BigEndian.Uint16(buf[off+0x8:]))
	textureCount := int(binary.BigEndian.Uint16(buf[off+0xA:]))
	textureOffset := int(binary.BigEndian.Uint32(buf[off+0xC:]))

	c.Textures = nil
	pos := off + textureOffset
	for i := 0; i < textureCount; i++ {
		t := &Texture{}
		n, err := t.UnpackBinary(buf, pos)
		if err != nil {
			return err
		}
		c.Textures = append(c.Textures, t)
		pos += n
	}

	c.Resources = nil
	pos = off + containerHeader
	for i := 0; i < resourceCount; i++ {
		r := &Resource{}
		n, err := r.UnpackBinary(buf, pos)
		if err != nil {
			return err
		}
		for _, id := range r.textureIndices {
			if int(id) < 0 || int(id) >= len(c.Textures) {
				return &TextureIndexError{Resource: r.Index, Value: id, Count: len(c.Textures)}
			}
			r.TextureNames = append(r.TextureNames, c.Textures[id].Name)
		}
		r.textureIndices = nil
		c.Resources = append(c.Resources, r)
		pos += n
	}
	return nil
}

// PackBinary encodes the whole container. The resource region is padded
// to a 32-byte boundary and the texture-table offset is backfilled into
// the header before the textures are appended.
//
// Texture references that do not resolve are dropped from the output;
// the warning list carries a MissingTextureError for each. Callers that
// must not write lossy output should run Validate first.
func (c *Container) PackBinary() ([]byte, []error) {
	var warns []error

	out := make([]byte, 0, 1024)
	out = append(out, Magic...)
	out = binary.BigEndian.AppendUint16(out, uint16(len(c.Resources)))
	out = binary.BigEndian.AppendUint16(out, uint16(len(c.Textures)))
	out = binary.BigEndian.AppendUint32(out, 0) // texture-table offset, backfilled

	for _, r := range c.Resources {
		data, w := r.PackBinary(c)
		warns = append(warns, w...)
		out = append(out, data...)
	}

	out = pad(out, 32)
	binary.BigEndian.PutUint32(out[0xC:], uint32(len(out)))

	// Texture records are individually 32-byte aligned, so no further
	// padding is needed between or after them.
	for _, t := range c.Textures {
		out = append(out, t.PackBinary()...)
	}
	return out, warns
}

// TextureIndex returns the table slot of the named texture. It
// implements TextureResolver; resources re-resolve names through it on
// every encode, so reordering the texture list never leaves stale
// indices behind.
func (c *Container) TextureIndex(name string) (int16, bool) {
	for i, t := range c.Textures {
		if t.Name == name {
			return int16(i), true
		}
	}
	return 0, false
}

// Texture returns the named texture, or false if the container has none
// by that name.
func (c *Container) Texture(name string) (*Texture, bool) {
	for _, t := range c.Textures {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// AddTexture appends t to the texture table. If a texture with the same
// name already exists it is replaced in place instead, keeping its slot.
func (c *Container) AddTexture(t *Texture) {
	for i, have := range c.Textures {
		if have.Name == t.Name {
			c.Textures[i] = t
			return
		}
	}
	c.Textures = append(c.Textures, t)
}

// AddResource appends r to the resource list and assigns its index.
func (c *Container) AddResource(r *Resource) {
	r.Index = int16(len(c.Resources))
	c.Resources = append(c.Resources, r)
}

// RemoveResource deletes the resource at slot i and renumbers the
// resources after it.
func (c *Container) RemoveResource(i int) {
	if i < 0 || i >= len(c.Resources) {
		return
	}
	c.Resources = append(c.Resources[:i], c.Resources[i+1:]...)
	for j := i; j < len(c.Resources); j++ {
		c.Resources[j].Index = int16(j)
	}
}

// Validate reports, without encoding, every condition that would make
// PackBinary drop data: texture references that do not resolve and
// texture names too long for their fixed name slot. A nil result means a
// following PackBinary emits no warnings.
func (c *Container) Validate() []error {
	var errs []error
	for _, t := range c.Textures {
		if len(t.Name) > textureNameLen {
			errs = append(errs, &TextureNameError{Name: t.Name})
		}
	}
	for _, r := range c.Resources {
		for _, name := range r.TextureNames {
			if _, ok := c.TextureIndex(name); !ok {
				errs = append(errs, &MissingTextureError{Resource: r.Index, Name: name})
			}
		}
	}
	return errs
}

// PackJSON emits the container's structured-text form: the resources
// under "particles" and the texture names under "textures". Texture
// payloads are binary and travel separately.
func (c *Container) PackJSON() *Object {
	obj := NewObject()
	particles := make([]any, len(c.Resources))
	for i, r := range c.Resources {
		particles[i] = r.PackJSON()
	}
	obj.Set("particles", particles)
	names := make([]any, len(c.Textures))
	for i, t := range c.Textures {
		names[i] = t.Name
	}
	obj.Set("textures", names)
	return obj
}

// UnpackJSON reads resources from the container's structured-text form
// and re-indexes them. Members of "textures" with no matching texture in
// the table become empty placeholder textures; callers are expected to
// attach payloads afterwards.
func (c *Container) UnpackJSON(obj *Object) error {
	particles, err := obj.Array("particles")
	if err != nil {
		return err
	}
	c.Resources = nil
	for i, v := range particles {
		o, ok := v.(*Object)
		if !ok {
			return &KeyError{Key: "particles", Want: "array of objects"}
		}
		r := &Resource{}
		if err := r.UnpackJSON(o); err != nil {
			return err
		}
		r.Index = int16(i)
		c.Resources = append(c.Resources, r)
	}

	names, err := obj.Array("textures")
	if err != nil {
		return err
	}
	for _, v := range names {
		s, ok := v.(string)
		if !ok {
			return &KeyError{Key: "textures", Want: "array of strings"}
		}
		if _, ok := c.Texture(s); !ok {
			c.AddTexture(&Texture{Name: s})
		}
	}
	return nil
}

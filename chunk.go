package jpcfile

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/hashicorp/go-hclog"
)

// Diagnostics receives re-encode change reports from chunks: whenever a
// chunk's fresh encoding differs from the bytes it was decoded from, the
// changed fields are logged with their before and after values. Reports
// are informational; encoding proceeds regardless. The default sink
// discards everything.
var Diagnostics hclog.Logger = hclog.NewNullLogger()

// Chunk is one tagged, sized section of a resource's byte layout.
type Chunk interface {
	// Tag returns the section's 4-byte ASCII tag.
	Tag() string

	// UnpackBinary decodes the chunk from buf, with its tag+size header
	// at off.
	UnpackBinary(buf []byte, off int) error

	// PackBinary encodes the chunk, padding the body to a 4-byte boundary
	// and recomputing the size header.
	PackBinary() []byte

	// PackJSON emits the chunk's structured-text form.
	PackJSON() *Object

	// UnpackJSON reads the chunk's values from its structured-text form.
	UnpackJSON(obj *Object) error
}

// chunkHeader is the width of a tag+size section header.
const chunkHeader = 8

// binaryDataKey carries a chunk's raw body in the structured-text form.
// It feeds change diagnostics only; imports that omit it are still
// reconstructed exactly from the typed fields.
const binaryDataKey = "BinaryDataDONOTEDIT"

// chunkCore drives an ordered field list against both streams and keeps
// the raw-bytes shadow for change diagnostics. Chunk kinds with only a
// fixed layout use its methods directly; kinds with variable trailing
// data override UnpackBinary, PackBinary, and the JSON pair.
type chunkCore struct {
	tag       string
	fields    []Field
	shadow    []byte // body bytes from the last decode or encode
	shadowSum uint64 // xxhash of shadow, cached when shadow is stored
}

func (c *chunkCore) Tag() string { return c.tag }

// setShadow stashes body as the reference bytes together with its hash,
// which identifyChanges uses as the cheap unchanged precheck.
func (c *chunkCore) setShadow(body []byte) {
	c.shadow = body
	c.shadowSum = xxhash.Sum64(body)
}

// readHeader bounds-checks the tag+size header at off and returns the
// body length (header excluded, trailing padding included).
func (c *chunkCore) readHeader(buf []byte, off int) (int, error) {
	if off < 0 || off+chunkHeader > len(buf) {
		return 0, &TruncatedError{Field: c.tag, Offset: off}
	}
	size := int(int32(binary.BigEndian.Uint32(buf[off+4:])))
	if size < chunkHeader || off+size > len(buf) {
		return 0, &TruncatedError{Field: c.tag, Offset: off + 4}
	}
	return size - chunkHeader, nil
}

// unpackFields runs the field list against buf starting at off, each
// field consuming its own width.
func (c *chunkCore) unpackFields(buf []byte, off int) error {
	for _, f := range c.fields {
		if err := f.UnpackBinary(buf, off); err != nil {
			return err
		}
		off += f.Size()
	}
	return nil
}

// packFields produces the fixed-layout portion of the body.
func (c *chunkCore) packFields() []byte {
	var b []byte
	for _, f := range c.fields {
		b = f.PackBinary(b)
	}
	return b
}

func (c *chunkCore) UnpackBinary(buf []byte, off int) error {
	body, err := c.readHeader(buf, off)
	if err != nil {
		return err
	}
	c.setShadow(append([]byte(nil), buf[off+chunkHeader:off+chunkHeader+body]...))
	return c.unpackFields(buf, off+chunkHeader)
}

func (c *chunkCore) PackBinary() []byte {
	body := c.packFields()
	c.identifyChanges(body)
	return c.frame(body)
}

// frame prepends the tag and recomputed size to the padded body, and
// stores the body as the new shadow.
func (c *chunkCore) frame(body []byte) []byte {
	c.setShadow(body)
	padded := pad(body, 4)
	out := make([]byte, 0, chunkHeader+len(padded))
	out = append(out, c.tag...)
	out = binary.BigEndian.AppendUint32(out, uint32(chunkHeader+len(padded)))
	return append(out, padded...)
}

// identifyChanges compares a freshly packed body against the shadow and
// logs a before/after value diff for each field whose bytes changed.
func (c *chunkCore) identifyChanges(body []byte) {
	if c.shadow == nil {
		return
	}
	if len(body) > 0 && xxhash.Sum64(body) == c.shadowSum && bytes.Equal(body, c.shadow) {
		return
	}
	Diagnostics.Debug("chunk changed since decode",
		"tag", c.tag,
		"old", hex.EncodeToString(c.shadow),
		"new", hex.EncodeToString(body))
	off := 0
	for _, f := range c.fields {
		size := f.Size()
		if off+size > len(c.shadow) || off+size > len(body) {
			break
		}
		if size > 0 && !bytes.Equal(c.shadow[off:off+size], body[off:off+size]) {
			newObj := NewObject()
			f.PackJSON(newObj)
			if err := f.UnpackBinary(c.shadow, off); err == nil {
				oldObj := NewObject()
				f.PackJSON(oldObj)
				Diagnostics.Debug("field changed",
					"tag", c.tag,
					"field", f.Name(),
					"old", oldObj.Compact(),
					"new", newObj.Compact())
			}
			// Restore the value that was just packed.
			f.UnpackBinary(body, off)
		}
		off += size
	}
}

func (c *chunkCore) PackJSON() *Object {
	obj := NewObject()
	for _, f := range c.fields {
		f.PackJSON(obj)
	}
	obj.Set(binaryDataKey, hex.EncodeToString(c.shadow))
	return obj
}

func (c *chunkCore) UnpackJSON(obj *Object) error {
	if err := c.unpackShadowJSON(obj); err != nil {
		return err
	}
	for _, f := range c.fields {
		if err := f.UnpackJSON(obj); err != nil {
			return err
		}
	}
	return nil
}

// unpackShadowJSON seeds the shadow from the raw-bytes member, when
// present.
func (c *chunkCore) unpackShadowJSON(obj *Object) error {
	s, err := obj.String(binaryDataKey)
	if err != nil {
		// Optional member; reconstruction needs only the typed fields.
		c.shadow, c.shadowSum = nil, 0
		return nil
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", c.tag, binaryDataKey, err)
	}
	c.setShadow(raw)
	return nil
}

// copyCore copies the shadow and every field value from src. The two
// cores must come from the same chunk constructor, so the field lists
// align positionally.
func (c *chunkCore) copyCore(src *chunkCore) {
	c.shadow = append([]byte(nil), src.shadow...)
	c.shadowSum = src.shadowSum
	for i, f := range c.fields {
		f.CopyFrom(src.fields[i])
	}
}

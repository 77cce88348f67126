package jpcfile

import (
	"errors"
	"fmt"
)

// ErrInvalidMagic indicates input that does not begin with the JPAC2-10
// magic.
var ErrInvalidMagic = errors.New("not a JPAC2-10 container")

// TruncatedError indicates a buffer that ended before a field or chunk's
// declared width.
type TruncatedError struct {
	// Field is the field name or chunk tag being decoded.
	Field string
	// Offset is the byte offset at which decoding stopped.
	Offset int
}

func (err *TruncatedError) Error() string {
	return fmt.Sprintf("truncated input at %#x decoding %s", err.Offset, err.Field)
}

// TagError indicates a section tag not in the recognized set. Unrecognized
// tags mean a new format variant or corrupted data, so the whole resource
// decode is aborted rather than dropping the section.
type TagError struct {
	Tag    string
	Offset int
}

func (err *TagError) Error() string {
	return fmt.Sprintf("unknown section tag %q at %#x", err.Tag, err.Offset)
}

// SectionCountError indicates a mismatch between the block counts a
// resource header declares and the blocks actually found in its section
// stream.
type SectionCountError struct {
	// Kind is the block kind being counted: "field" or "key".
	Kind     string
	Declared int
	Found    int
}

func (err *SectionCountError) Error() string {
	return fmt.Sprintf("expected %d %s blocks, found %d", err.Declared, err.Kind, err.Found)
}

// UnknownFlagError indicates a flag name with no descriptor registered on
// its word. This is a programming-contract violation: chunk constructors
// register every name their code uses.
type UnknownFlagError struct {
	// Word is the name of the flag word.
	Word string
	// Flag is the unregistered descriptor name.
	Flag string
}

func (err *UnknownFlagError) Error() string {
	return fmt.Sprintf("flag word %s has no descriptor %q", err.Word, err.Flag)
}

// EnumValueError indicates an enum-kinded flag descriptor holding a value
// outside its value table.
type EnumValueError struct {
	Word  string
	Flag  string
	Value uint32
}

func (err *EnumValueError) Error() string {
	return fmt.Sprintf("flag %s.%s holds out-of-range enum value %d", err.Word, err.Flag, err.Value)
}

// MissingTextureError indicates a texture name that does not resolve in
// the owning container. At encode time the reference is silently dropped
// from the output; Container.Validate reports the same condition ahead of
// time so a caller can block the save instead.
type MissingTextureError struct {
	// Resource is the index of the referencing resource.
	Resource int16
	// Name is the unresolved texture name.
	Name string
}

func (err *MissingTextureError) Error() string {
	return fmt.Sprintf("resource %d references unknown texture %q", err.Resource, err.Name)
}

// TextureIndexError indicates a texture-table entry pointing outside the
// container's texture list.
type TextureIndexError struct {
	// Resource is the index of the referencing resource.
	Resource int16
	// Value is the out-of-range table entry.
	Value int16
	// Count is the number of textures in the container.
	Count int
}

func (err *TextureIndexError) Error() string {
	return fmt.Sprintf("resource %d references texture %d of %d", err.Resource, err.Value, err.Count)
}

// TextureNameError indicates a texture name too long for the fixed name
// slot of its record. Encoding would truncate it, breaking the name the
// resources reference it by.
type TextureNameError struct {
	Name string
}

func (err *TextureNameError) Error() string {
	return fmt.Sprintf("texture name %q exceeds %d bytes", err.Name, 0x14)
}

// KeyError indicates a missing or mistyped member in the structured-text
// form.
type KeyError struct {
	Key  string
	Want string
}

func (err *KeyError) Error() string {
	return fmt.Sprintf("member %q missing or not a %s", err.Key, err.Want)
}

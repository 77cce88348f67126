package jpcfile

// ConditionalField wraps a field that is only present in the byte and
// structured-text streams while a bit in a sibling flag word is set. The
// predicate is re-evaluated on every access, never cached, since the
// governing word can change between construction and encoding.
//
// While absent the field contributes zero bytes and is skipped on decode;
// the inner field keeps its last-known value, so reading it is not an
// error. Callers that care about presence must check Present first.
type ConditionalField struct {
	inner Field
	flags *FlagField
	bit   uint
}

// Conditional wraps inner so it is present only while bit of flags is
// set.
func Conditional(inner Field, flags *FlagField, bit uint) *ConditionalField {
	return &ConditionalField{inner: inner, flags: flags, bit: bit}
}

// Present reports whether the governing bit is currently set.
func (f *ConditionalField) Present() bool { return f.flags.Bit(f.bit) }

// Inner returns the wrapped field regardless of presence.
func (f *ConditionalField) Inner() Field { return f.inner }

func (f *ConditionalField) Name() string { return f.inner.Name() }

// Size returns 0 while the governing bit is clear.
func (f *ConditionalField) Size() int {
	if !f.Present() {
		return 0
	}
	return f.inner.Size()
}

func (f *ConditionalField) UnpackBinary(buf []byte, off int) error {
	if !f.Present() {
		return nil
	}
	return f.inner.UnpackBinary(buf, off)
}

func (f *ConditionalField) PackBinary(b []byte) []byte {
	if !f.Present() {
		return b
	}
	return f.inner.PackBinary(b)
}

func (f *ConditionalField) PackJSON(obj *Object) {
	if f.Present() {
		f.inner.PackJSON(obj)
	}
}

func (f *ConditionalField) UnpackJSON(obj *Object) error {
	if !f.Present() {
		return nil
	}
	return f.inner.UnpackJSON(obj)
}

func (f *ConditionalField) CopyFrom(src Field) {
	f.inner.CopyFrom(src.(*ConditionalField).inner)
}

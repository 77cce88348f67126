package jpcfile

// ExTexShape configures indirect texturing and the optional second
// texture layer (tag "ETX1"). The chunk is a fixed 32-byte body with no
// variable regions.
type ExTexShape struct {
	chunkCore

	Flags *FlagField

	IndirectTextureMatrix00 *F32Field
	IndirectTextureMatrix01 *F32Field
	IndirectTextureMatrix02 *F32Field
	IndirectTextureMatrix10 *F32Field
	IndirectTextureMatrix11 *F32Field
	IndirectTextureMatrix12 *F32Field
	MatrixScale             *S8Field
	IndirectTextureIndex    *U8Field
	SecondTextureIndex      *U8Field
}

func NewExTexShape() *ExTexShape {
	e := &ExTexShape{
		Flags: NewFlags32("ExTexFlags"),

		IndirectTextureMatrix00: NewF32("IndirectTextureMatrix[0][0]"),
		IndirectTextureMatrix01: NewF32("IndirectTextureMatrix[0][1]"),
		IndirectTextureMatrix02: NewF32("IndirectTextureMatrix[0][2]"),
		IndirectTextureMatrix10: NewF32("IndirectTextureMatrix[1][0]"),
		IndirectTextureMatrix11: NewF32("IndirectTextureMatrix[1][1]"),
		IndirectTextureMatrix12: NewF32("IndirectTextureMatrix[1][2]"),
		MatrixScale:             NewS8("MatrixScale"),
		IndirectTextureIndex:    NewU8("IndirectTextureIndex"),
		SecondTextureIndex:      NewU8("SecondTextureIndex"),
	}

	e.Flags.AssignEnum("IndirectTextureMode", 0, 0x1, indirectTextureModeNames)
	e.Flags.Assign("UseSecondTextureIndex", 8, 0x1, FlagBool)

	e.tag = TagExTexShape
	e.fields = []Field{
		e.Flags,
		e.IndirectTextureMatrix00, e.IndirectTextureMatrix01, e.IndirectTextureMatrix02,
		e.IndirectTextureMatrix10, e.IndirectTextureMatrix11, e.IndirectTextureMatrix12,
		e.MatrixScale, e.IndirectTextureIndex, e.SecondTextureIndex, Pad(0x1),
	}
	return e
}

// Clone returns a structurally independent copy of the chunk.
func (e *ExTexShape) Clone() *ExTexShape {
	c := NewExTexShape()
	c.copyCore(&e.chunkCore)
	return c
}

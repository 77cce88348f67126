package jpcfile

// FieldBlock holds the parameters of one force field acting on a
// resource's particles (tag "FLD1"). A resource may carry any number.
type FieldBlock struct {
	chunkCore

	Flags *FlagField

	PositionX  *F32Field
	PositionY  *F32Field
	PositionZ  *F32Field
	DirectionX *F32Field
	DirectionY *F32Field
	DirectionZ *F32Field

	Param1 *F32Field
	Param2 *F32Field
	Param3 *F32Field

	FadeIn       *F32Field
	FadeOut      *F32Field
	EnterTime    *F32Field
	DistanceTime *F32Field
	Cycle        *U8Field
}

func NewFieldBlock() *FieldBlock {
	b := &FieldBlock{
		Flags: NewFlags32("FieldFlags"),

		PositionX:  NewF32("PositionX"),
		PositionY:  NewF32("PositionY"),
		PositionZ:  NewF32("PositionZ"),
		DirectionX: NewF32("DirectionX"),
		DirectionY: NewF32("DirectionY"),
		DirectionZ: NewF32("DirectionZ"),

		Param1: NewF32("Param1"),
		Param2: NewF32("Param2"),
		Param3: NewF32("Param3"),

		FadeIn:       NewF32("FadeIn"),
		FadeOut:      NewF32("FadeOut"),
		EnterTime:    NewF32("EnterTime"),
		DistanceTime: NewF32("DistanceTime"),
		Cycle:        NewU8("Cycle"),
	}

	b.Flags.AssignEnum("FieldType", 0, 0xF, fieldTypeNames)
	b.Flags.AssignEnum("VelocityType", 8, 0x03, fieldAddTypeNames)
	b.Flags.Assign("NoInheritRotate", 17, 0x1, FlagBool)
	b.Flags.Assign("AirDrag", 18, 0x1, FlagBool)
	b.Flags.Assign("FadeUseEnterTime", 19, 0x1, FlagBool)
	b.Flags.Assign("FadeUseDistanceTime", 20, 0x1, FlagBool)
	b.Flags.Assign("FadeUseFadeIn", 21, 0x1, FlagBool)
	b.Flags.Assign("FadeUseFadeOut", 22, 0x1, FlagBool)

	b.tag = TagFieldBlock
	b.fields = []Field{
		b.Flags,
		b.PositionX, b.PositionY, b.PositionZ,
		b.DirectionX, b.DirectionY, b.DirectionZ,
		b.Param1, b.Param2, b.Param3,
		b.FadeIn, b.FadeOut,
		b.EnterTime, b.DistanceTime,
		b.Cycle, Pad(3),
	}
	return b
}

// Clone returns a structurally independent copy of the block.
func (b *FieldBlock) Clone() *FieldBlock {
	c := NewFieldBlock()
	c.copyCore(&b.chunkCore)
	return c
}

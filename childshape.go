package jpcfile

// ChildShape configures the secondary particles a resource spawns from
// its primary ones (tag "SSP1"). The chunk is a fixed 64-byte body with
// no variable regions.
type ChildShape struct {
	chunkCore

	Flags *FlagField

	PositionRandom        *F32Field
	BaseVelocity          *F32Field
	BaseVelocityRandom    *F32Field
	VelocityInfluenceRate *F32Field
	Gravity               *F32Field
	GlobalScale2DX        *F32Field
	GlobalScale2DY        *F32Field
	InheritScale          *F32Field
	InheritAlpha          *F32Field
	InheritRGB            *F32Field
	PrimaryColor          *RawField
	EnvironmentColor      *RawField
	Timing                *F32Field
	Life                  *U16Field
	Rate                  *U16Field
	Step                  *U8Field
	TextureIndex          *U8Field
	RotateSpeed           *U16Field
}

func NewChildShape() *ChildShape {
	s := &ChildShape{
		Flags: NewFlags32("Flags"),

		PositionRandom:        NewF32("PositionRandom"),
		BaseVelocity:          NewF32("BaseVelocity"),
		BaseVelocityRandom:    NewF32("BaseVelocityRandom"),
		VelocityInfluenceRate: NewF32("VelocityInfluenceRate"),
		Gravity:               NewF32("Gravity"),
		GlobalScale2DX:        NewF32("GlobalScale2DX"),
		GlobalScale2DY:        NewF32("GlobalScale2DY"),
		InheritScale:          NewF32("InheritScale"),
		InheritAlpha:          NewF32("InheritAlpha"),
		InheritRGB:            NewF32("InheritRGB"),
		PrimaryColor:          NewRaw("PrimaryColor"),
		EnvironmentColor:      NewRaw("EnvironmentColor"),
		Timing:                NewF32("Timing"),
		Life:                  NewU16("Life"),
		Rate:                  NewU16("Rate"),
		Step:                  NewU8("Step"),
		TextureIndex:          NewU8("TextureIndex"),
		RotateSpeed:           NewU16("RotateSpeed"),
	}

	s.Flags.AssignEnum("ShapeType", 0, 0xF, shapeTypeNames)
	s.Flags.AssignEnum("DirectionType", 4, 0x7, directionTypeNames)
	s.Flags.AssignEnum("RotationType", 7, 0x7, rotationTypeNames)
	s.Flags.AssignEnum("PlaneType", 10, 0x1, planeTypeNames)
	s.Flags.Assign("IsInheritedScale", 16, 0x01, FlagBool)
	s.Flags.Assign("IsInheritedAlpha", 17, 0x01, FlagBool)
	s.Flags.Assign("IsInheritedRGB", 18, 0x01, FlagBool)
	s.Flags.Assign("FlagsUnk19", 19, 0x01, FlagBool)
	s.Flags.Assign("FlagsUnk20", 20, 0x01, FlagBool)
	s.Flags.Assign("IsEnableField", 21, 0x01, FlagBool)
	s.Flags.Assign("IsEnableScaleOut", 22, 0x01, FlagBool)
	s.Flags.Assign("IsEnableAlphaOut", 23, 0x01, FlagBool)
	s.Flags.Assign("IsEnableRotate", 24, 0x01, FlagBool)

	s.tag = TagChildShape
	s.fields = []Field{
		s.Flags, s.PositionRandom, s.BaseVelocity, s.BaseVelocityRandom,
		s.VelocityInfluenceRate, s.Gravity, s.GlobalScale2DX, s.GlobalScale2DY,
		s.InheritScale, s.InheritAlpha, s.InheritRGB, s.PrimaryColor,
		s.EnvironmentColor, s.Timing, s.Life, s.Rate, s.Step,
		s.TextureIndex, s.RotateSpeed,
	}
	return s
}

// Clone returns a structurally independent copy of the chunk.
func (s *ChildShape) Clone() *ChildShape {
	c := NewChildShape()
	c.copyCore(&s.chunkCore)
	return c
}

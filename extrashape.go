package jpcfile

// ExtraShape describes the optional scale, alpha, and rotation animation
// of a resource's particles (tag "ESP1"). The chunk is a fixed 88-byte
// body with no variable regions.
type ExtraShape struct {
	chunkCore

	Flags *FlagField

	ScaleInTiming           *F32Field
	ScaleOutTiming          *F32Field
	ScaleInValueX           *F32Field
	ScaleOutValueX          *F32Field
	ScaleInValueY           *F32Field
	ScaleOutValueY          *F32Field
	ScaleOutRandom          *F32Field
	ScaleAnimationXMaxFrame *U16Field
	ScaleAnimationYMaxFrame *U16Field

	AlphaInTiming      *F32Field
	AlphaOutTiming     *F32Field
	AlphaInValue       *F32Field
	AlphaBaseValue     *F32Field
	AlphaOutValue      *F32Field
	AlphaWaveFrequency *F32Field
	AlphaWaveRandom    *F32Field
	AlphaWaveAmplitude *F32Field

	RotateAngle       *F32Field
	RotateAngleRandom *F32Field
	RotateSpeed       *F32Field
	RotateSpeedRandom *F32Field
	RotateDirection   *F32Field
}

func NewExtraShape() *ExtraShape {
	e := &ExtraShape{
		Flags: NewFlags32("ExtraShapeFlags"),

		ScaleInTiming:           NewF32("ScaleInTiming"),
		ScaleOutTiming:          NewF32("ScaleOutTiming"),
		ScaleInValueX:           NewF32("ScaleInValueX"),
		ScaleOutValueX:          NewF32("ScaleOutValueX"),
		ScaleInValueY:           NewF32("ScaleInValueY"),
		ScaleOutValueY:          NewF32("ScaleOutValueY"),
		ScaleOutRandom:          NewF32("ScaleOutRandom"),
		ScaleAnimationXMaxFrame: NewU16("ScaleAnimationXMaxFrame"),
		ScaleAnimationYMaxFrame: NewU16("ScaleAnimationYMaxFrame"),

		AlphaInTiming:      NewF32("AlphaInTiming"),
		AlphaOutTiming:     NewF32("AlphaOutTiming"),
		AlphaInValue:       NewF32("AlphaInValue"),
		AlphaBaseValue:     NewF32("AlphaBaseValue"),
		AlphaOutValue:      NewF32("AlphaOutValue"),
		AlphaWaveFrequency: NewF32("AlphaWaveFrequency"),
		AlphaWaveRandom:    NewF32("AlphaWaveRandom"),
		AlphaWaveAmplitude: NewF32("AlphaWaveAmplitude"),

		RotateAngle:       NewF32("RotateAngle"),
		RotateAngleRandom: NewF32("RotateAngleRandom"),
		RotateSpeed:       NewF32("RotateSpeed"),
		RotateSpeedRandom: NewF32("RotateSpeedRandom"),
		RotateDirection:   NewF32("RotateDirection"),
	}

	e.Flags.Assign("IsEnableScale", 0, 0x1, FlagBool)
	e.Flags.Assign("IsDiffXY", 1, 0x1, FlagBool)
	// Bits 2 and 3 are either both set or both clear in shipped data.
	e.Flags.Assign("FlagsUnk2", 2, 0x1, FlagBool)
	e.Flags.Assign("FlagsUnk3", 3, 0x1, FlagBool)
	e.Flags.AssignEnum("ScaleAnimTypeX", 8, 0x03, calcScaleAnimTypeNames)
	e.Flags.AssignEnum("ScaleAnimTypeY", 10, 0x03, calcScaleAnimTypeNames)
	e.Flags.Assign("PivotX", 12, 0x03, FlagInt)
	e.Flags.Assign("PivotY", 14, 0x03, FlagInt)
	e.Flags.Assign("IsEnableAlpha", 16, 0x1, FlagBool)
	e.Flags.Assign("IsEnableSinWave", 17, 0x1, FlagBool)
	e.Flags.Assign("IsEnableRotate", 24, 0x1, FlagBool)

	e.tag = TagExtraShape
	e.fields = []Field{
		e.Flags, e.ScaleInTiming, e.ScaleOutTiming, e.ScaleInValueX, e.ScaleOutValueX,
		e.ScaleInValueY, e.ScaleOutValueY, e.ScaleOutRandom,
		e.ScaleAnimationXMaxFrame, e.ScaleAnimationYMaxFrame,
		e.AlphaInTiming, e.AlphaOutTiming, e.AlphaInValue, e.AlphaBaseValue,
		e.AlphaOutValue, e.AlphaWaveFrequency, e.AlphaWaveRandom, e.AlphaWaveAmplitude,
		e.RotateAngle, e.RotateAngleRandom, e.RotateSpeed, e.RotateSpeedRandom,
		e.RotateDirection,
	}
	return e
}

// Clone returns a structurally independent copy of the chunk.
func (e *ExtraShape) Clone() *ExtraShape {
	c := NewExtraShape()
	c.copyCore(&e.chunkCore)
	return c
}

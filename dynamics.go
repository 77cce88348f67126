package jpcfile

// DynamicsBlock holds the emitter dynamics parameters of a resource
// (tag "BEM1"): volume shape, emission rates, initial velocities, and
// emitter transform. Every resource carries exactly one.
type DynamicsBlock struct {
	chunkCore

	Flags   *FlagField
	Unknown *RawField

	EmitterScaleX       *F32Field
	EmitterScaleY       *F32Field
	EmitterScaleZ       *F32Field
	EmitterTranslationX *F32Field
	EmitterTranslationY *F32Field
	EmitterTranslationZ *F32Field
	EmitterDirectionX   *F32Field
	EmitterDirectionY   *F32Field
	EmitterDirectionZ   *F32Field

	InitialVelocityOmni      *F32Field
	InitialVelocityAxis      *F32Field
	InitialVelocityRandom    *F32Field
	InitialVelocityDirection *F32Field
	Spread                   *F32Field
	InitialVelocityRatio     *F32Field
	Rate                     *F32Field
	RateRandom               *F32Field
	LifetimeRandom           *F32Field
	VolumeSweep              *F32Field
	VolumeMinimumRadius      *F32Field
	AirResistance            *F32Field
	MomentRandom             *F32Field

	EmitterRotationXDeg *U16Field
	EmitterRotationYDeg *U16Field
	EmitterRotationZDeg *U16Field
	MaxFrame            *U16Field
	StartFrame          *U16Field
	Lifetime            *U16Field
	VolumeSize          *U16Field
	DivisionNumber      *U16Field
	RateStep            *U8Field
}

func NewDynamicsBlock() *DynamicsBlock {
	b := &DynamicsBlock{
		Flags:   NewFlags32("Flags"),
		Unknown: NewRaw("Unknown"),

		EmitterScaleX:       NewF32("EmitterScaleX"),
		EmitterScaleY:       NewF32("EmitterScaleY"),
		EmitterScaleZ:       NewF32("EmitterScaleZ"),
		EmitterTranslationX: NewF32("EmitterTranslationX"),
		EmitterTranslationY: NewF32("EmitterTranslationY"),
		EmitterTranslationZ: NewF32("EmitterTranslationZ"),
		EmitterDirectionX:   NewF32("EmitterDirectionX"),
		EmitterDirectionY:   NewF32("EmitterDirectionY"),
		EmitterDirectionZ:   NewF32("EmitterDirectionZ"),

		InitialVelocityOmni:      NewF32("InitialVelocityOmni"),
		InitialVelocityAxis:      NewF32("InitialVelocityAxis"),
		InitialVelocityRandom:    NewF32("InitialVelocityRandom"),
		InitialVelocityDirection: NewF32("InitialVelocityDirection"),
		Spread:                   NewF32("Spread"),
		InitialVelocityRatio:     NewF32("InitialVelocityRatio"),
		Rate:                     NewF32("Rate"),
		RateRandom:               NewF32("RateRandom"),
		LifetimeRandom:           NewF32("LifetimeRandom"),
		VolumeSweep:              NewF32("VolumeSweep"),
		VolumeMinimumRadius:      NewF32("VolumeMinimumRadius"),
		AirResistance:            NewF32("AirResistance"),
		MomentRandom:             NewF32("MomentRandom"),

		EmitterRotationXDeg: NewU16("EmitterRotationXDeg"),
		EmitterRotationYDeg: NewU16("EmitterRotationYDeg"),
		EmitterRotationZDeg: NewU16("EmitterRotationZDeg"),
		MaxFrame:            NewU16("MaxFrame"),
		StartFrame:          NewU16("StartFrame"),
		Lifetime:            NewU16("Lifetime"),
		VolumeSize:          NewU16("VolumeSize"),
		DivisionNumber:      NewU16("DivisionNumber"),
		RateStep:            NewU8("RateStep"),
	}

	b.Flags.AssignEnum("VolumeType", 8, 0x07, volumeTypeNames)
	b.Flags.Assign("FixedDensity", 0, 0x01, FlagBool)
	b.Flags.Assign("FixedInterval", 1, 0x01, FlagBool)
	b.Flags.Assign("InheritScale", 2, 0x01, FlagBool)
	b.Flags.Assign("FollowEmitter", 3, 0x01, FlagBool)
	b.Flags.Assign("FollowEmitterChild", 4, 0x01, FlagBool)

	b.tag = TagDynamics
	b.fields = []Field{
		b.Flags, b.Unknown,
		b.EmitterScaleX, b.EmitterScaleY, b.EmitterScaleZ,
		b.EmitterTranslationX, b.EmitterTranslationY, b.EmitterTranslationZ,
		b.EmitterDirectionX, b.EmitterDirectionY, b.EmitterDirectionZ,
		b.InitialVelocityOmni, b.InitialVelocityAxis, b.InitialVelocityRandom,
		b.InitialVelocityDirection, b.Spread, b.InitialVelocityRatio,
		b.Rate, b.RateRandom, b.LifetimeRandom, b.VolumeSweep,
		b.VolumeMinimumRadius, b.AirResistance, b.MomentRandom,
		b.EmitterRotationXDeg, b.EmitterRotationYDeg, b.EmitterRotationZDeg,
		b.MaxFrame, b.StartFrame, b.Lifetime, b.VolumeSize,
		b.DivisionNumber, b.RateStep, Pad(3),
	}
	return b
}

// Clone returns a structurally independent copy of the block.
func (b *DynamicsBlock) Clone() *DynamicsBlock {
	c := NewDynamicsBlock()
	c.copyCore(&b.chunkCore)
	return c
}

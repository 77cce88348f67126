package jpcfile

import "strconv"

// Enumerated values carried in flag descriptors and typed header bytes.
// The numeric values are the wire encoding and must not be reordered.

func enumString(names []string, v uint32) string {
	if int(v) < len(names) {
		return names[v]
	}
	return "Unknown(" + strconv.FormatUint(uint64(v), 10) + ")"
}

// VolumeType enumerates emitter volume shapes.
type VolumeType uint8

const (
	VolumeCube VolumeType = iota
	VolumeSphere
	VolumeCylinder
	VolumeTorus
	VolumePoint
	VolumeCircle
	VolumeLine
)

var volumeTypeNames = []string{"Cube", "Sphere", "Cylinder", "Torus", "Point", "Circle", "Line"}

func (t VolumeType) String() string { return enumString(volumeTypeNames, uint32(t)) }

// FieldType enumerates force field kinds.
type FieldType uint8

const (
	FieldGravity FieldType = iota
	FieldAir
	FieldMagnet
	FieldNewton
	FieldVortex
	FieldRandom
	FieldDrag
	FieldConvection
	FieldSpin
)

var fieldTypeNames = []string{"Gravity", "Air", "Magnet", "Newton", "Vortex", "Random", "Drag", "Convection", "Spin"}

func (t FieldType) String() string { return enumString(fieldTypeNames, uint32(t)) }

// FieldAddType enumerates how a field's force is applied to a particle's
// velocity.
type FieldAddType uint8

const (
	FieldAddFieldAccel FieldAddType = iota
	FieldAddBaseVelocity
	FieldAddFieldVelocity
)

var fieldAddTypeNames = []string{"FieldAccel", "BaseVelocity", "FieldVelocity"}

func (t FieldAddType) String() string { return enumString(fieldAddTypeNames, uint32(t)) }

// KeyType enumerates which emitter parameter a keyframe block animates.
type KeyType uint8

const (
	KeyRate KeyType = iota
	KeyVolumeSize
	KeyVolumeSweep
	KeyVolumeMinRadius
	KeyLifetime
	KeyMoment
	KeyInitVeloOmni
	KeyInitVeloAxis
	KeyInitVeloDirection
	KeySpread
	KeyScale
)

var keyTypeNames = []string{
	"Rate", "VolumeSize", "VolumeSweep", "VolumeMinRadius", "Lifetime",
	"Moment", "InitVeloOmni", "InitVeloAxis", "InitVeloDirection", "Spread",
	"Scale",
}

func (t KeyType) String() string { return enumString(keyTypeNames, uint32(t)) }

// ShapeType enumerates particle render shapes.
type ShapeType uint8

const (
	ShapePoint ShapeType = iota
	ShapeLine
	ShapeBillboard
	ShapeDirection
	ShapeDirectionCross
	ShapeStripe
	ShapeStripeCross
	ShapeRotation
	ShapeRotationCross
	ShapeDirBillboard
	ShapeYBillboard
)

var shapeTypeNames = []string{
	"Point", "Line", "Billboard", "Direction", "DirectionCross", "Stripe",
	"StripeCross", "Rotation", "RotationCross", "DirectionBillboard",
	"YBillboard",
}

func (t ShapeType) String() string { return enumString(shapeTypeNames, uint32(t)) }

// DirectionType enumerates direction sources for directional shapes.
type DirectionType uint8

const (
	DirVelocity DirectionType = iota
	DirPosition
	DirPositionInverse
	DirEmitterDirection
	DirPreviousParticle
	DirUnknown5
)

var directionTypeNames = []string{"Velocity", "Position", "PositionInverse", "EmitterDirection", "PreviousParticle", "Dir5"}

func (t DirectionType) String() string { return enumString(directionTypeNames, uint32(t)) }

// RotationType enumerates particle rotation axes.
type RotationType uint8

const (
	RotY RotationType = iota
	RotX
	RotZ
	RotXYZ
	RotYJiggle
)

var rotationTypeNames = []string{"Y", "X", "Z", "XYZ", "YJiggle"}

func (t RotationType) String() string { return enumString(rotationTypeNames, uint32(t)) }

// PlaneType enumerates billboard plane orientations.
type PlaneType uint8

const (
	PlaneXY PlaneType = iota
	PlaneXZ
)

var planeTypeNames = []string{"XY", "XZ"}

func (t PlaneType) String() string { return enumString(planeTypeNames, uint32(t)) }

// BlendMode enumerates blend equation modes.
type BlendMode uint8

const (
	BlendNone BlendMode = iota
	BlendBlend
	BlendLogic
)

var blendModeNames = []string{"None", "Blend", "Logic"}

func (t BlendMode) String() string { return enumString(blendModeNames, uint32(t)) }

// BlendFactor enumerates blend source/destination factors. Values 4 and 5
// alias 2 and 3 in hardware; both encodings occur in shipped data.
type BlendFactor uint8

const (
	FactorZero BlendFactor = iota
	FactorOne
	FactorSourceColor
	FactorInverseSourceColor
	FactorSourceColorExtra
	FactorInverseSourceColorExtra
	FactorSourceAlpha
	FactorInverseSourceAlpha
	FactorDestinationAlpha
	FactorInverseDestinationAlpha
)

var blendFactorNames = []string{
	"Zero", "One", "SourceColor", "InverseSourceColor", "SourceColorExtra",
	"InverseSourceColorExtra", "SourceAlpha", "InverseSourceAlpha",
	"DestinationAlpha", "InverseDestinationAlpha",
}

func (t BlendFactor) String() string { return enumString(blendFactorNames, uint32(t)) }

// CompareType enumerates alpha/depth comparison functions.
type CompareType uint8

const (
	CompareNever CompareType = iota
	CompareLess
	CompareLessEqual
	CompareEqual
	CompareNotEqual
	CompareGreaterEqual
	CompareGreater
	CompareAlways
)

var compareTypeNames = []string{
	"Never", "LessThan", "LessThanEqual", "Equal", "NotEqual",
	"GreaterThanEqual", "GreaterThan", "Always",
}

func (t CompareType) String() string { return enumString(compareTypeNames, uint32(t)) }

// AlphaOperator enumerates how the two alpha compares combine.
type AlphaOperator uint8

const (
	AlphaOpAnd AlphaOperator = iota
	AlphaOpOr
	AlphaOpXor
	AlphaOpXnor
)

var alphaOperatorNames = []string{"And", "Or", "Xor", "Xnor"}

func (t AlphaOperator) String() string { return enumString(alphaOperatorNames, uint32(t)) }

// IndirectTextureMode enumerates indirect texturing modes.
type IndirectTextureMode uint8

const (
	IndirectOff IndirectTextureMode = iota
	IndirectNormal
)

var indirectTextureModeNames = []string{"Off", "Normal"}

func (t IndirectTextureMode) String() string { return enumString(indirectTextureModeNames, uint32(t)) }

// CalcIndexType enumerates how animation frame indices advance.
type CalcIndexType uint8

const (
	CalcIndexNormal CalcIndexType = iota
	CalcIndexRepeat
	CalcIndexReverse
	CalcIndexMerge
	CalcIndexRandom
)

var calcIndexTypeNames = []string{"Normal", "Repeat", "Reverse", "Merge", "Random"}

func (t CalcIndexType) String() string { return enumString(calcIndexTypeNames, uint32(t)) }

// CalcScaleAnimType enumerates how scale animations repeat.
type CalcScaleAnimType uint8

const (
	CalcScaleNormal CalcScaleAnimType = iota
	CalcScaleRepeat
	CalcScaleReverse
)

var calcScaleAnimTypeNames = []string{"Normal", "Repeat", "Reverse"}

func (t CalcScaleAnimType) String() string { return enumString(calcScaleAnimTypeNames, uint32(t)) }

package jpcfile

import (
	"encoding/binary"
	"encoding/hex"
)

// ColorKeyframe is one fixed 6-byte color animation record: a frame index
// and a packed RGBA color.
type ColorKeyframe struct {
	Frame uint16
	Color [4]byte
}

// colorKeyframeSize is the encoded width of one color keyframe record.
const colorKeyframeSize = 6

func (k *ColorKeyframe) unpackBinary(buf []byte, off int) error {
	if off < 0 || off+colorKeyframeSize > len(buf) {
		return &TruncatedError{Field: "ColorKeyframe", Offset: off}
	}
	k.Frame = binary.BigEndian.Uint16(buf[off:])
	copy(k.Color[:], buf[off+2:])
	return nil
}

func (k *ColorKeyframe) packBinary(b []byte) []byte {
	b = binary.BigEndian.AppendUint16(b, k.Frame)
	return append(b, k.Color[:]...)
}

func (k *ColorKeyframe) packJSON() *Object {
	obj := NewObject()
	obj.Set("Frame", int64(k.Frame))
	obj.Set("Color", hex.EncodeToString(k.Color[:]))
	return obj
}

func (k *ColorKeyframe) unpackJSON(obj *Object) error {
	frame, err := obj.Int("Frame")
	if err != nil {
		return err
	}
	s, err := obj.String("Color")
	if err != nil {
		return err
	}
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != len(k.Color) {
		return &KeyError{Key: "Color", Want: "4 hex bytes"}
	}
	k.Frame = uint16(frame)
	copy(k.Color[:], raw)
	return nil
}

////////////////////////////////////////////////////////////////

// Fixed offsets within the BSP1 chunk. Header positions are relative to
// the chunk start (tag byte 0); body positions are the same offsets minus
// the 8-byte tag+size header. The extra-data region begins right after
// the fixed header, pushed back by the ten texture-scroll floats when the
// scroll-animation flag is set.
const (
	baseShapeHeader     = 0x34 // chunk-relative end of the fixed header
	baseShapeScrollSize = 0x28 // the ten conditional scroll floats

	bspPrimaryOffsetPos = 0x4  // body-relative, u16
	bspEnvOffsetPos     = 0x6  // body-relative, u16
	bspTexAnimCountPos  = 0x17 // body-relative, u8
	bspPrimaryCountPos  = 0x1A // body-relative, u8
	bspEnvCountPos      = 0x1B // body-relative, u8

	bspTexScrollBit   = 24 // on Flags
	bspTexAnimBit     = 0  // on TextureFlags
	bspPrimaryAnimBit = 1  // on ColorFlags
	bspEnvAnimBit     = 3  // on ColorFlags
)

// BaseShape holds the base particle shape and render state of a resource
// (tag "BSP1"): blend/alpha/depth modes, base colors, and the texture and
// color animation tables. Every resource carries exactly one.
//
// Beyond the fixed header the chunk has a variable extra-data region
// holding, in order when enabled by their flags: the per-frame
// texture-index bytes, the primary color keyframes, and the environment
// color keyframes, each independently padded to a 4-byte boundary. The
// region's sub-offsets and element counts are recomputed and written back
// into the header on every encode.
type BaseShape struct {
	chunkCore

	Flags     *FlagField
	BaseSizeX *F32Field
	BaseSizeY *F32Field

	BlendModeFlags    *FlagField
	AlphaCompareFlags *FlagField
	AlphaReference0   *U8Field
	AlphaReference1   *U8Field
	ZModeFlags        *FlagField
	TextureFlags      *FlagField
	TextureIndex      *U8Field
	ColorFlags        *FlagField

	ColorAnimationMaxFrame     *U16Field
	PrimaryColor               *RawField
	EnvironmentColor           *RawField
	AnimationRandom            *U8Field
	ColorLoopOffsetMask        *U8Field
	TextureIndexLoopOffsetMask *U8Field

	// Texture scroll transform, present only while the scroll-animation
	// flag (Flags bit 24) is set.
	TexInitTransX   *ConditionalField
	TexInitTransY   *ConditionalField
	TexInitScaleX   *ConditionalField
	TexInitScaleY   *ConditionalField
	TexInitRotation *ConditionalField
	TexIncTransX    *ConditionalField
	TexIncTransY    *ConditionalField
	TexIncScaleX    *ConditionalField
	TexIncScaleY    *ConditionalField
	TexIncRotation  *ConditionalField

	TextureIndexAnimData []uint8
	PrimaryColorData     []*ColorKeyframe
	EnvironmentColorData []*ColorKeyframe
}

func NewBaseShape() *BaseShape {
	b := &BaseShape{
		Flags:     NewFlags32("BaseShapeFlags"),
		BaseSizeX: NewF32("BaseSizeX"),
		BaseSizeY: NewF32("BaseSizeY"),

		BlendModeFlags:    NewFlags16("BlendModeFlags"),
		AlphaCompareFlags: NewFlags8("AlphaCompareFlags"),
		AlphaReference0:   NewU8("AlphaReference0"),
		AlphaReference1:   NewU8("AlphaReference1"),
		ZModeFlags:        NewFlags8("ZModeFlags"),
		TextureFlags:      NewFlags8("TextureFlags"),
		TextureIndex:      NewU8("TextureIndex"),
		ColorFlags:        NewFlags8("ColorFlags"),

		ColorAnimationMaxFrame:     NewU16("ColorAnimationMaxFrame"),
		PrimaryColor:               NewRaw("PrimaryColor"),
		EnvironmentColor:           NewRaw("EnvironmentColor"),
		AnimationRandom:            NewU8("AnimationRandom"),
		ColorLoopOffsetMask:        NewU8("ColorLoopOffsetMask"),
		TextureIndexLoopOffsetMask: NewU8("TextureIndexLoopOffsetMask"),
	}

	b.Flags.AssignEnum("ShapeType", 0, 0xF, shapeTypeNames)
	b.Flags.AssignEnum("DirectionType", 4, 0x7, directionTypeNames)
	b.Flags.AssignEnum("RotationType", 7, 0x7, rotationTypeNames)
	b.Flags.AssignEnum("PlaneType", 10, 0x1, planeTypeNames)
	b.Flags.Assign("FlagsUnk11", 11, 0x1, FlagBool)
	b.Flags.Assign("IsGlobalColorAnimation", 12, 0x01, FlagBool)
	b.Flags.Assign("FlagsUnk13", 13, 0x1, FlagBool)
	b.Flags.Assign("IsGlobalTextureAnimation", 14, 0x01, FlagBool)
	b.Flags.Assign("ColorInSelect", 15, 0x7, FlagInt)
	b.Flags.Assign("AlphaInSelect", 18, 0x1, FlagInt)
	// Bit 19 is never set in shipped data.
	b.Flags.Assign("IsEnableProjection", 20, 0x01, FlagBool)
	b.Flags.Assign("IsDrawForwardAhead", 21, 0x1, FlagBool)
	b.Flags.Assign("IsDrawPrintAhead", 22, 0x1, FlagBool)
	b.Flags.Assign("FlagsUnk23", 23, 0x1, FlagBool)
	b.Flags.Assign("IsEnableTexScrollAnim", bspTexScrollBit, 0x1, FlagBool)
	b.Flags.Assign("DoubleTilingS", 25, 0x1, FlagBool)
	b.Flags.Assign("DoubleTilingT", 26, 0x1, FlagBool)
	b.Flags.Assign("IsNoDrawParent", 27, 0x1, FlagBool)
	b.Flags.Assign("IsNoDrawChild", 28, 0x1, FlagBool)

	b.BlendModeFlags.AssignEnum("BlendMode", 0, 0x3, blendModeNames)
	b.BlendModeFlags.AssignEnum("SourceFactor", 2, 0xF, blendFactorNames)
	b.BlendModeFlags.AssignEnum("DestinationFactor", 6, 0xF, blendFactorNames)
	b.BlendModeFlags.Assign("BlendModeFlagsUnk10", 10, 0x1, FlagBool)
	b.BlendModeFlags.Assign("BlendModeFlagsUnk14", 14, 0x1, FlagBool)

	b.AlphaCompareFlags.AssignEnum("AlphaCompareType0", 0, 0x7, compareTypeNames)
	b.AlphaCompareFlags.AssignEnum("AlphaOperator", 3, 0x03, alphaOperatorNames)
	b.AlphaCompareFlags.AssignEnum("AlphaCompareType1", 5, 0x7, compareTypeNames)

	b.ZModeFlags.Assign("DepthTest", 0, 0x1, FlagBool)
	b.ZModeFlags.AssignEnum("DepthCompareType", 1, 0x7, compareTypeNames)
	b.ZModeFlags.Assign("DepthWrite", 4, 0x1, FlagBool)
	b.ZModeFlags.Assign("ZModeFlagsUnk5", 5, 0x1, FlagInt)

	b.TextureFlags.Assign("IsEnableTexAnim", bspTexAnimBit, 0x1, FlagBool)
	b.TextureFlags.Assign("TexFlagsUnk1", 1, 0x1, FlagBool)
	b.TextureFlags.AssignEnum("TexCalcIndexType", 2, 0x7, calcIndexTypeNames)

	b.ColorFlags.Assign("ColorFlagsUnk0", 0, 0x1, FlagBool)
	b.ColorFlags.Assign("IsPrimaryColorAnimEnabled", bspPrimaryAnimBit, 0x1, FlagBool)
	b.ColorFlags.Assign("ColorFlagsUnk2", 2, 0x1, FlagBool)
	b.ColorFlags.Assign("IsEnvironmentColorAnimEnabled", bspEnvAnimBit, 0x1, FlagBool)
	b.ColorFlags.AssignEnum("ColorCalcIndexType", 4, 0x7, calcIndexTypeNames)

	scroll := func(name string, def float32) *ConditionalField {
		f := NewF32(name)
		f.V = def
		return Conditional(f, b.Flags, bspTexScrollBit)
	}
	b.TexInitTransX = scroll("TexInitTransX", 0)
	b.TexInitTransY = scroll("TexInitTransY", 0)
	b.TexInitScaleX = scroll("TexInitScaleX", 1)
	b.TexInitScaleY = scroll("TexInitScaleY", 1)
	b.TexInitRotation = scroll("TexInitRotation", 0)
	b.TexIncTransX = scroll("TexIncTransX", 0)
	b.TexIncTransY = scroll("TexIncTransY", 0)
	b.TexIncScaleX = scroll("TexIncScaleX", 1)
	b.TexIncScaleY = scroll("TexIncScaleY", 1)
	b.TexIncRotation = scroll("TexIncRotation", 0)

	b.tag = TagBaseShape
	b.fields = []Field{
		b.Flags, Pad(0x4), b.BaseSizeX, b.BaseSizeY,
		b.BlendModeFlags, b.AlphaCompareFlags,
		b.AlphaReference0, b.AlphaReference1,
		b.ZModeFlags, b.TextureFlags, Pad(0x1), b.TextureIndex,
		b.ColorFlags, Pad(0x2), b.ColorAnimationMaxFrame,
		b.PrimaryColor, b.EnvironmentColor,
		b.AnimationRandom, b.ColorLoopOffsetMask,
		b.TextureIndexLoopOffsetMask, Pad(0x3),
		b.TexInitTransX, b.TexInitTransY, b.TexInitScaleX, b.TexInitScaleY,
		b.TexInitRotation,
		b.TexIncTransX, b.TexIncTransY, b.TexIncScaleX, b.TexIncScaleY,
		b.TexIncRotation,
	}
	return b
}

func (b *BaseShape) UnpackBinary(buf []byte, off int) error {
	body, err := b.readHeader(buf, off)
	if err != nil {
		return err
	}
	b.setShadow(append([]byte(nil), buf[off+chunkHeader:off+chunkHeader+body]...))
	if err := b.unpackFields(buf, off+chunkHeader); err != nil {
		return err
	}
	if body < baseShapeHeader-chunkHeader {
		return &TruncatedError{Field: b.tag, Offset: off + chunkHeader + body}
	}

	primaryOffset := int(binary.BigEndian.Uint16(buf[off+chunkHeader+bspPrimaryOffsetPos:]))
	envOffset := int(binary.BigEndian.Uint16(buf[off+chunkHeader+bspEnvOffsetPos:]))
	texAnimCount := int(buf[off+chunkHeader+bspTexAnimCountPos])
	primaryCount := int(buf[off+chunkHeader+bspPrimaryCountPos])
	envCount := int(buf[off+chunkHeader+bspEnvCountPos])

	extraOffset := off + baseShapeHeader
	if b.Flags.Bit(bspTexScrollBit) {
		extraOffset += baseShapeScrollSize
	}

	b.TextureIndexAnimData = nil
	if b.TextureFlags.Bit(bspTexAnimBit) {
		if extraOffset+texAnimCount > len(buf) {
			return &TruncatedError{Field: "TextureIndexAnimData", Offset: extraOffset}
		}
		b.TextureIndexAnimData = append([]uint8(nil), buf[extraOffset:extraOffset+texAnimCount]...)
	}

	b.PrimaryColorData = nil
	if b.ColorFlags.Bit(bspPrimaryAnimBit) {
		for i := 0; i < primaryCount; i++ {
			k := &ColorKeyframe{}
			if err := k.unpackBinary(buf, off+primaryOffset+colorKeyframeSize*i); err != nil {
				return err
			}
			b.PrimaryColorData = append(b.PrimaryColorData, k)
		}
	}

	b.EnvironmentColorData = nil
	if b.ColorFlags.Bit(bspEnvAnimBit) {
		for i := 0; i < envCount; i++ {
			k := &ColorKeyframe{}
			if err := k.unpackBinary(buf, off+envOffset+colorKeyframeSize*i); err != nil {
				return err
			}
			b.EnvironmentColorData = append(b.EnvironmentColorData, k)
		}
	}
	return nil
}

func (b *BaseShape) PackBinary() []byte {
	body := b.packFields()

	var extra []byte
	extraOffset := baseShapeHeader
	if b.Flags.Bit(bspTexScrollBit) {
		extraOffset += baseShapeScrollSize
	}
	if b.TextureFlags.Bit(bspTexAnimBit) {
		extra = append(extra, b.TextureIndexAnimData...)
		extra = pad(extra, 4)
		body[bspTexAnimCountPos] = uint8(len(b.TextureIndexAnimData))
	}
	if b.ColorFlags.Bit(bspPrimaryAnimBit) {
		binary.BigEndian.PutUint16(body[bspPrimaryOffsetPos:], uint16(extraOffset+len(extra)))
		for _, k := range b.PrimaryColorData {
			extra = k.packBinary(extra)
		}
		extra = pad(extra, 4)
		body[bspPrimaryCountPos] = uint8(len(b.PrimaryColorData))
	}
	if b.ColorFlags.Bit(bspEnvAnimBit) {
		binary.BigEndian.PutUint16(body[bspEnvOffsetPos:], uint16(extraOffset+len(extra)))
		for _, k := range b.EnvironmentColorData {
			extra = k.packBinary(extra)
		}
		extra = pad(extra, 4)
		body[bspEnvCountPos] = uint8(len(b.EnvironmentColorData))
	}
	body = append(body, extra...)

	b.identifyChanges(body)
	return b.frame(body)
}

func (b *BaseShape) PackJSON() *Object {
	obj := NewObject()
	for _, f := range b.fields {
		f.PackJSON(obj)
	}
	obj.Set(binaryDataKey, hex.EncodeToString(b.shadow))

	anim := []any{}
	if b.TextureFlags.Bit(bspTexAnimBit) {
		for _, v := range b.TextureIndexAnimData {
			anim = append(anim, int64(v))
		}
	}
	obj.Set("TextureIndexAnimData", anim)

	env := []any{}
	if b.ColorFlags.Bit(bspEnvAnimBit) {
		for _, k := range b.EnvironmentColorData {
			env = append(env, k.packJSON())
		}
	}
	obj.Set("EnvironmentColorKeyframes", env)

	primary := []any{}
	if b.ColorFlags.Bit(bspPrimaryAnimBit) {
		for _, k := range b.PrimaryColorData {
			primary = append(primary, k.packJSON())
		}
	}
	obj.Set("PrimaryColorKeyframes", primary)
	return obj
}

func (b *BaseShape) UnpackJSON(obj *Object) error {
	if err := b.chunkCore.UnpackJSON(obj); err != nil {
		return err
	}

	anim, err := obj.Array("TextureIndexAnimData")
	if err != nil {
		return err
	}
	b.TextureIndexAnimData = nil
	for _, v := range anim {
		n, ok := intValue(v)
		if !ok {
			return &KeyError{Key: "TextureIndexAnimData", Want: "array of integers"}
		}
		b.TextureIndexAnimData = append(b.TextureIndexAnimData, uint8(n))
	}

	unpackColors := func(key string, dst *[]*ColorKeyframe) error {
		arr, err := obj.Array(key)
		if err != nil {
			return err
		}
		*dst = nil
		for _, v := range arr {
			ko, ok := v.(*Object)
			if !ok {
				return &KeyError{Key: key, Want: "array of objects"}
			}
			k := &ColorKeyframe{}
			if err := k.unpackJSON(ko); err != nil {
				return err
			}
			*dst = append(*dst, k)
		}
		return nil
	}
	if err := unpackColors("PrimaryColorKeyframes", &b.PrimaryColorData); err != nil {
		return err
	}
	return unpackColors("EnvironmentColorKeyframes", &b.EnvironmentColorData)
}

// Clone returns a structurally independent copy of the chunk.
func (b *BaseShape) Clone() *BaseShape {
	c := NewBaseShape()
	c.copyCore(&b.chunkCore)
	c.TextureIndexAnimData = append([]uint8(nil), b.TextureIndexAnimData...)
	for _, k := range b.PrimaryColorData {
		dup := *k
		c.PrimaryColorData = append(c.PrimaryColorData, &dup)
	}
	for _, k := range b.EnvironmentColorData {
		dup := *k
		c.EnvironmentColorData = append(c.EnvironmentColorData, &dup)
	}
	return c
}

package jpcfile

// Magic identifies a JPAC2-10 container. It doubles as the format version:
// other JPA revisions carry a different suffix and are not recognized.
const Magic = "JPAC2-10"

// Section tags of the resource stream.
const (
	TagDynamics     = "BEM1" // emitter dynamics parameters
	TagFieldBlock   = "FLD1" // force field parameters
	TagKeyBlock     = "KFA1" // keyframe animation block
	TagBaseShape    = "BSP1" // base particle shape and render state
	TagExtraShape   = "ESP1" // scale/alpha/rotation animation
	TagChildShape   = "SSP1" // child particle shape
	TagExTexShape   = "ETX1" // indirect texture shape
	TagTextureTable = "TDB1" // texture-index table
	TagTexture      = "TEX1" // texture record, outside the resource stream
)

// alignLen rounds n up to a multiple of to, which must be a power of two.
func alignLen(n, to int) int {
	return (n + to - 1) &^ (to - 1)
}

// pad appends zero bytes to b until its length is a multiple of to.
func pad(b []byte, to int) []byte {
	return append(b, make([]byte, alignLen(len(b), to)-len(b))...)
}

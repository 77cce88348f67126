// The jpcfile package handles the decoding, encoding, and manipulation of
// JPAC2-10 particle containers.
//
// A container file holds a list of particle Resources followed by a table
// of named Textures. Each Resource is a sequence of tagged, sized binary
// chunks: a dynamics block ("BEM1"), field-effect blocks ("FLD1"),
// keyframe blocks ("KFA1"), shape blocks ("BSP1", "ESP1", "SSP1", "ETX1"),
// and a texture-index table ("TDB1"). Chunks are built from Fields, which
// describe their own width, name, and placement; flag words expose bit
// ranges through named descriptors, and some fields are only present in
// the stream when a sibling flag bit is set.
//
// The types in this package form the in-memory model: a Container owns
// Resources and Textures, Resources own their chunks, and chunks own their
// fields. Texture references held by Resources are plain names and are
// resolved against the owning Container at encode time, so reordering the
// texture table never leaves stale indices behind.
//
// Every chunk also maps to a structured-text (JSON) form keyed by field
// names, in field declaration order, suitable for hand editing and
// round-tripping back to bytes. On re-encode, chunks compare their fresh
// encoding against the bytes they were decoded from and report per-field
// differences through Diagnostics; the report is informational and never
// blocks encoding.
//
// The jpc sub-package wraps this model with stream-level Decoder and
// Encoder types.
package jpcfile

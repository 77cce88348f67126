// Package jpc implements a stream codec for the JPAC2-10 particle
// container format, wrapping the in-memory model of package jpcfile.
package jpc

import (
	"strconv"
	"strings"
)

// DataError wraps an error that occurred while encoding or decoding byte
// data.
type DataError struct {
	// Offset is the byte offset where the error occurred.
	Offset int64

	Cause error
}

func (err DataError) Error() string {
	var s strings.Builder
	s.WriteString("data error")
	if err.Offset >= 0 {
		s.WriteString(" at ")
		s.Write(strconv.AppendInt(nil, err.Offset, 10))
	}
	if err.Cause != nil {
		s.WriteString(": ")
		s.WriteString(err.Cause.Error())
	}
	return s.String()
}

func (err DataError) Unwrap() error {
	return err.Cause
}

// DuplicateTextureError is a decode warning indicating two texture
// records sharing one name. Resources reference textures by name, so
// only the first record is reachable.
type DuplicateTextureError struct {
	Name string
}

func (err DuplicateTextureError) Error() string {
	return "duplicate texture name " + strconv.Quote(err.Name)
}

package jpc

import (
	"io"

	"github.com/anaminus/parse"
	"github.com/jsysapi/jpcfile"
	"github.com/jsysapi/jpcfile/errors"
)

// Encoder encodes a jpcfile.Container into a stream of bytes.
type Encoder struct{}

func encodeError(w *parse.BinaryWriter, err error) error {
	w.Add(0, err)
	err = w.Err()
	if err != nil {
		return DataError{Offset: w.N(), Cause: err}
	}
	return nil
}

// Encode writes the binary form of c to w.
//
// Warnings carry a jpcfile.MissingTextureError for every texture
// reference that was dropped because its name does not resolve in c.
// Callers that must not write lossy output should run c.Validate before
// encoding.
func (Encoder) Encode(w io.Writer, c *jpcfile.Container) (warn, err error) {
	if w == nil {
		return nil, errors.New("nil writer")
	}
	if c == nil {
		return nil, errors.New("nil container")
	}

	data, ws := c.PackBinary()
	warn = errors.Union(ws...)

	fw := parse.NewBinaryWriter(w)
	if fw.Bytes(data) {
		return warn, encodeError(fw, nil)
	}
	_, err = fw.End()
	return warn, err
}

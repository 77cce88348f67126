package jpc

import (
	"bytes"
	"io"

	"github.com/anaminus/parse"
	"github.com/jsysapi/jpcfile"
	"github.com/jsysapi/jpcfile/errors"
)

// Decoder decodes a stream of bytes into a jpcfile.Container.
type Decoder struct{}

func decodeError(r *parse.BinaryReader, err error) error {
	r.Add(0, err)
	err = r.Err()
	if err != nil {
		return DataError{Offset: r.N(), Cause: err}
	}
	return nil
}

// Decode reads data from r and decodes it into a container.
//
// Warnings report recoverable oddities in otherwise valid input,
// currently texture records with duplicate names.
func (Decoder) Decode(r io.Reader) (c *jpcfile.Container, warn, err error) {
	if r == nil {
		return nil, nil, errors.New("nil reader")
	}
	fr := parse.NewBinaryReader(r)

	// Check signature before committing to reading the whole stream.
	sig := make([]byte, len(jpcfile.Magic))
	if fr.Bytes(sig) {
		return nil, nil, decodeError(fr, nil)
	}
	if !bytes.Equal(sig, []byte(jpcfile.Magic)) {
		return nil, nil, decodeError(fr, jpcfile.ErrInvalidMagic)
	}

	// The container addresses its texture stream by absolute offset, so
	// the rest must be in memory before decoding.
	rest, failed := fr.All()
	if failed {
		return nil, nil, decodeError(fr, nil)
	}
	if _, err := fr.End(); err != nil {
		return nil, nil, err
	}
	buf := make([]byte, 0, len(sig)+len(rest))
	buf = append(buf, sig...)
	buf = append(buf, rest...)

	c = &jpcfile.Container{}
	if err := c.UnpackBinary(buf, 0); err != nil {
		return nil, nil, err
	}

	var warns errors.Errors
	seen := make(map[string]bool, len(c.Textures))
	for _, t := range c.Textures {
		if seen[t.Name] {
			warns = warns.Append(DuplicateTextureError{Name: t.Name})
			continue
		}
		seen[t.Name] = true
	}
	return c, warns.Return(), nil
}

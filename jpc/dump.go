package jpc

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"github.com/jsysapi/jpcfile"
	"github.com/jsysapi/jpcfile/errors"
)

// Dump writes to w a readable representation of the container decoded
// from r.
func (d Decoder) Dump(w io.Writer, r io.Reader) (warn, err error) {
	if r == nil {
		return nil, errors.New("nil reader")
	}
	if w == nil {
		return nil, errors.New("nil writer")
	}

	c, warn, err := d.Decode(r)
	if err != nil {
		return warn, err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Resources: %d", len(c.Resources))
	fmt.Fprintf(bw, "\nTextures: %d", len(c.Textures))
	for i, res := range c.Resources {
		fmt.Fprintf(bw, "\nResource #%d: {", i)
		dumpNewline(bw, 1)
		fmt.Fprintf(bw, "Index: %d", res.Index)
		dumpResourceChunks(bw, res)
		dumpNewline(bw, 1)
		fmt.Fprintf(bw, "Textures: %q", res.TextureNames)
		fmt.Fprint(bw, "\n}")
	}
	for _, t := range c.Textures {
		sum := t.Digest()
		fmt.Fprintf(bw, "\nTexture %s: {", strconv.Quote(t.Name))
		dumpNewline(bw, 1)
		fmt.Fprintf(bw, "Size: %d", len(t.Data))
		dumpNewline(bw, 1)
		fmt.Fprintf(bw, "Digest: %x", sum[:])
		fmt.Fprint(bw, "\n}")
	}
	fmt.Fprint(bw, "\n")

	return warn, bw.Flush()
}

func dumpResourceChunks(w *bufio.Writer, res *jpcfile.Resource) {
	chunks := []jpcfile.Chunk{}
	if res.Dynamics != nil {
		chunks = append(chunks, res.Dynamics)
	}
	for _, b := range res.FieldBlocks {
		chunks = append(chunks, b)
	}
	for _, b := range res.KeyBlocks {
		chunks = append(chunks, b)
	}
	if res.BaseShape != nil {
		chunks = append(chunks, res.BaseShape)
	}
	if res.ExtraShape != nil {
		chunks = append(chunks, res.ExtraShape)
	}
	if res.ChildShape != nil {
		chunks = append(chunks, res.ChildShape)
	}
	if res.ExTexShape != nil {
		chunks = append(chunks, res.ExTexShape)
	}
	for _, chunk := range chunks {
		dumpNewline(w, 1)
		dumpTag(w, chunk.Tag())
		w.WriteString(": {")
		obj := chunk.PackJSON()
		for _, key := range obj.Keys() {
			dumpNewline(w, 2)
			fmt.Fprintf(w, "%s: ", key)
			dumpValue(w, 2, key, obj)
		}
		dumpNewline(w, 1)
		w.WriteString("}")
	}
}

func dumpValue(w *bufio.Writer, indent int, key string, obj *jpcfile.Object) {
	v, _ := obj.Get(key)
	switch v := v.(type) {
	case string:
		// Hex-encoded members render as byte windows, the rest as quoted
		// strings.
		if raw, err := hex.DecodeString(v); err == nil && len(v) > 0 && len(v)%2 == 0 {
			dumpBytes(w, indent, raw)
			return
		}
		w.WriteString(strconv.Quote(v))
	case []any:
		fmt.Fprintf(w, "(len:%d) %v", len(v), v)
	default:
		fmt.Fprintf(w, "%v", v)
	}
}

func dumpNewline(w *bufio.Writer, indent int) {
	w.WriteByte('\n')
	for i := 0; i < indent; i++ {
		w.WriteByte('\t')
	}
}

func dumpTag(w *bufio.Writer, tag string) {
	for _, c := range []byte(tag) {
		if unicode.IsPrint(rune(c)) {
			w.WriteByte(c)
		} else {
			w.WriteByte('.')
		}
	}
}

func dumpBytes(w *bufio.Writer, indent int, b []byte) {
	fmt.Fprintf(w, "(len:%d)", len(b))
	const width = 16
	for j := 0; j < len(b); j += width {
		dumpNewline(w, indent+1)
		w.WriteString("| ")
		for i := j; i < j+width; {
			if i < len(b) {
				s := strconv.FormatUint(uint64(b[i]), 16)
				if len(s) == 1 {
					w.WriteString("0")
				}
				w.WriteString(s)
			} else if len(b) < width {
				break
			} else {
				w.WriteString("  ")
			}
			i++
			if i%8 == 0 && i < j+width {
				w.WriteString("  ")
			} else {
				w.WriteString(" ")
			}
		}
		w.WriteString("|")
		n := len(b)
		if j+width < n {
			n = j + width
		}
		for i := j; i < n; i++ {
			if 32 <= b[i] && b[i] <= 126 {
				w.WriteRune(rune(b[i]))
			} else {
				w.WriteByte('.')
			}
		}
		w.WriteByte('|')
	}
}

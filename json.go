package jpcfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Object is a JSON object that preserves member order. Chunks emit their
// fields in declaration order, which a plain map cannot represent.
//
// Values stored in an Object are *Object, []any, string, bool, nil, or
// numbers (int64, float64, or json.Number after unmarshaling).
type Object struct {
	keys []string
	vals map[string]any
}

func NewObject() *Object {
	return &Object{vals: map[string]any{}}
}

// Set stores val under key, appending key to the member order if it is
// new.
func (o *Object) Set(key string, val any) {
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = val
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Has reports whether key is a member of the object.
func (o *Object) Has(key string) bool {
	_, ok := o.vals[key]
	return ok
}

// Keys returns the member names in order. The slice is shared; callers
// must not modify it.
func (o *Object) Keys() []string {
	return o.keys
}

// intValue converts a decoded JSON value to an integer.
func intValue(val any) (int64, bool) {
	switch v := val.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			// Accept numbers written with a fractional part.
			f, ferr := v.Float64()
			if ferr != nil {
				return 0, false
			}
			return int64(f), true
		}
		return n, true
	}
	return 0, false
}

// Int returns the member under key as an integer.
func (o *Object) Int(key string) (int64, error) {
	n, ok := intValue(o.vals[key])
	if !ok {
		return 0, &KeyError{Key: key, Want: "integer"}
	}
	return n, nil
}

// Float returns the member under key as a float.
func (o *Object) Float(key string) (float64, error) {
	switch v := o.vals[key].(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, &KeyError{Key: key, Want: "number"}
		}
		return f, nil
	}
	return 0, &KeyError{Key: key, Want: "number"}
}

// Bool returns the member under key as a bool.
func (o *Object) Bool(key string) (bool, error) {
	if v, ok := o.vals[key].(bool); ok {
		return v, nil
	}
	return false, &KeyError{Key: key, Want: "bool"}
}

// String returns the member under key as a string.
func (o *Object) String(key string) (string, error) {
	if v, ok := o.vals[key].(string); ok {
		return v, nil
	}
	return "", &KeyError{Key: key, Want: "string"}
}

// Array returns the member under key as an array.
func (o *Object) Array(key string) ([]any, error) {
	if v, ok := o.vals[key].([]any); ok {
		return v, nil
	}
	return nil, &KeyError{Key: key, Want: "array"}
}

// Object returns the member under key as a nested object.
func (o *Object) Object(key string) (*Object, error) {
	if v, ok := o.vals[key].(*Object); ok {
		return v, nil
	}
	return nil, &KeyError{Key: key, Want: "object"}
}

func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.vals[k])
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o *Object) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("expected JSON object")
	}
	obj, err := decodeObject(dec)
	if err != nil {
		return err
	}
	*o = *obj
	return nil
}

func decodeObject(dec *json.Decoder) (*Object, error) {
	o := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		o.Set(key, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return o, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch d {
	case '{':
		return decodeObject(dec)
	case '[':
		a := []any{}
		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			a = append(a, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return a, nil
	}
	return nil, fmt.Errorf("unexpected delimiter %v", d)
}

// Compact renders the object as a compact JSON string, for diagnostics
// output.
func (o *Object) Compact() string {
	b, err := json.Marshal(o)
	if err != nil {
		return "{}"
	}
	return string(b)
}

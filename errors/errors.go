// The errors package provides list-of-errors primitives for codecs that
// accumulate non-fatal warnings alongside a result.
package errors

import (
	"errors"
	"strconv"
	"strings"
)

// New mirrors the standard library, so importers that only build simple
// errors do not need a second import.
func New(text string) error {
	return errors.New(text)
}

// Errors is a list of errors.
type Errors []error

// Error formats the list with one message per tab-indented line. Lines
// within a message are indented along with it.
func (errs Errors) Error() string {
	switch len(errs) {
	case 0:
		return "no errors"
	case 1:
		return errs[0].Error()
	}
	var buf strings.Builder
	buf.WriteString(strconv.Itoa(len(errs)))
	buf.WriteString(" errors:")
	for _, err := range errs {
		buf.WriteString("\n\t")
		buf.WriteString(strings.ReplaceAll(err.Error(), "\n", "\n\t"))
	}
	return buf.String()
}

// Unwrap exposes the list to errors.Is and errors.As traversal.
func (errs Errors) Unwrap() []error {
	return errs
}

// Append returns errs with each err appended to it. Arguments that are
// nil are skipped.
func (errs Errors) Append(err ...error) Errors {
	for _, err := range err {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Return prepares errs to be returned by a function by returning nil if
// errs is empty.
func (errs Errors) Return() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Union combines a number of errors into one Errors. Any errs that are
// Errors are concatenated directly. Returns nil if all errs are nil.
func Union(errs ...error) error {
	var e Errors
	for _, err := range errs {
		switch err := err.(type) {
		case nil:
			continue
		case Errors:
			e = e.Append(err...)
		default:
			e = append(e, err)
		}
	}
	return e.Return()
}

// List flattens err into a slice. A nil err produces a nil slice; an
// Errors value produces its elements; anything else produces a
// single-element slice.
func List(err error) []error {
	switch err := err.(type) {
	case nil:
		return nil
	case Errors:
		return err
	default:
		return []error{err}
	}
}

// Package csv writes records as comma separated values, one per line.
package csv

import (
	"encoding/csv"
	"io"

	"golang.org/x/xerrors"
)

// ErrNotRecorder is returned when encoding a value that can't produce a
// record.
var ErrNotRecorder = xerrors.New("csv: value does not implement Recorder")

// Produces a list of fields making up a record.
type Recorder interface {
	Record() []string
}

// Produces the column names for a Recorder's fields. Written once, before
// the first record.
type Headerer interface {
	Header() []string
}

// An Encoder writes CSV records to an output stream.
type Encoder struct {
	w      *csv.Writer
	header bool
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: csv.NewWriter(w)}
}

// Encode writes a CSV record representing v to the stream followed by a
// newline character. Value given must implement the Recorder interface. If v
// also implements Headerer, the first call writes its header.
func (enc *Encoder) Encode(v interface{}) (err error) {
	defer func() {
		if r, ok := recover().(error); ok {
			err = xerrors.Errorf("recovered: %w", r)
		}
	}()

	rec, ok := v.(Recorder)
	if !ok {
		return xerrors.Errorf("%T: %w", v, ErrNotRecorder)
	}

	if !enc.header {
		enc.header = true
		if h, ok := v.(Headerer); ok {
			if err = enc.w.Write(h.Header()); err != nil {
				return xerrors.Errorf("writing header: %w", err)
			}
		}
	}

	if err = enc.w.Write(rec.Record()); err != nil {
		return xerrors.Errorf("writing record: %w", err)
	}
	enc.w.Flush()

	return enc.w.Error()
}

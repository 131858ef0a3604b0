// Package stream reads and writes streams of concatenated JSON values
// (for example newline-delimited JSON) on top of quill's chained
// decoding.
//
// The core decoder works on fully resident buffers; this package adds
// the incremental layer: a Reader refills its buffer from an io.Reader
// and drains complete values from it one at a time, a Writer emits one
// value per line.
package stream

import (
	"io"

	"github.com/pkg/errors"

	"github.com/Neumenon/quill/quill"
)

// defaultChunk is the refill granularity for Reader.
const defaultChunk = 32 * 1024

// Reader yields successive JSON values from a byte stream.
type Reader struct {
	src   io.Reader
	dec   *quill.Decoder
	buf   []byte
	chunk int
	eof   bool
}

// NewReader creates a Reader over src using the default decoder.
func NewReader(src io.Reader) *Reader {
	return NewReaderSize(src, nil, defaultChunk)
}

// NewReaderSize creates a Reader with an explicit decoder and refill
// chunk size. A nil decoder selects the process-wide default; chunk
// sizes below 1 fall back to the default.
func NewReaderSize(src io.Reader, dec *quill.Decoder, chunk int) *Reader {
	if dec == nil {
		dec = quill.NewDecoder(nil)
	}
	if chunk < 1 {
		chunk = defaultChunk
	}
	return &Reader{src: src, dec: dec, chunk: chunk}
}

// Next returns the next complete value from the stream, or io.EOF once
// the stream is exhausted. A truncated final value surfaces as the
// decoder's unterminated-value error.
func (r *Reader) Next() (*quill.Value, error) {
	for {
		if len(r.buf) > 0 {
			v, n, err := r.dec.DecodeNext(r.buf)
			switch {
			case err == nil && n == len(r.buf) && !r.eof:
				// The value ends exactly at the buffer edge. A numeral
				// or literal there may continue in the next chunk, so
				// refill before committing.
			case err == nil:
				r.buf = r.buf[n:]
				return v, nil
			case isUnterminated(err) && !r.eof:
				// Incomplete value, more input may arrive.
			default:
				if isUnterminated(err) && blank(r.buf) {
					return nil, io.EOF
				}
				return nil, err
			}
		} else if r.eof {
			return nil, io.EOF
		}

		if err := r.fill(); err != nil {
			return nil, err
		}
	}
}

func (r *Reader) fill() error {
	if r.eof {
		return nil
	}
	tmp := make([]byte, r.chunk)
	n, err := r.src.Read(tmp)
	r.buf = append(r.buf, tmp[:n]...)
	if err == io.EOF {
		r.eof = true
		return nil
	}
	return errors.Wrap(err, "stream: read")
}

func isUnterminated(err error) bool {
	derr, ok := err.(*quill.DecodeError)
	return ok && derr.Kind == quill.ErrorUnterminatedValue
}

func blank(data []byte) bool {
	for _, c := range data {
		switch c {
		case ' ', '\t', '\n', '\r':
		default:
			return false
		}
	}
	return true
}

// Writer emits one JSON value per line.
type Writer struct {
	dst  io.Writer
	opts quill.Options
}

// NewWriter creates a Writer emitting under the given encode options.
func NewWriter(dst io.Writer, opts quill.Options) *Writer {
	return &Writer{dst: dst, opts: opts}
}

// Write serializes v followed by a newline.
func (w *Writer) Write(v *quill.Value) error {
	out, err := quill.MarshalWithOptions(v, w.opts)
	if err != nil {
		return errors.Wrap(err, "stream: marshal")
	}
	out = append(out, '\n')
	_, err = w.dst.Write(out)
	return errors.Wrap(err, "stream: write")
}

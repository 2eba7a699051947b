package flushio

import (
	"bufio"
	"io"
	"strconv"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

var discardWriteFlusher WriteFlusher = nopFlusher{io.Discard}

// NewWriteFlusher creates a new flushable writer: if the given writer is a
// buffer, a wrapping with a noop Flush is returned; otherwise, unless the
// original writer WriteFlusher, a new bufio.Writer is returned.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	// discard writer does not need flushing
	if w == io.Discard {
		return discardWriteFlusher
	}

	if wf, is := w.(WriteFlusher); is {
		return wf
	}

	// in memory buffers, as implemented by types like bytes.Buffer and
	// strings.Builder, do not need to be flushed
	type buffer interface {
		io.Writer
		Cap() int
		Len() int
		Grow(n int)
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}

	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

// IntWriter writes one decimal integer per line into a WriteFlusher.
type IntWriter struct {
	WriteFlusher
	buf []byte
}

// NewIntWriter wraps w, see NewWriteFlusher.
func NewIntWriter(w io.Writer) *IntWriter {
	return &IntWriter{WriteFlusher: NewWriteFlusher(w)}
}

// WriteInt writes val followed by a line feed.
func (iw *IntWriter) WriteInt(val int64) error {
	iw.buf = strconv.AppendInt(iw.buf[:0], val, 10)
	iw.buf = append(iw.buf, '\n')
	_, err := iw.Write(iw.buf)
	return err
}

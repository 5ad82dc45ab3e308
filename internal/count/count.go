// Package count provides readers and writers that count the bytes passing
// through them and compute their xxHash32 digest.
package count

import (
	"hash"
	"io"

	"github.com/pierrec/xxHash/xxHash32"
)

// Reader counts and hashes the bytes read from the underlying reader.
type Reader struct {
	R io.Reader
	N int64
	h hash.Hash32
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{R: r, h: xxHash32.New(0)}
}

// Read reads from the underlying reader.
func (r *Reader) Read(p []byte) (n int, err error) {
	n, err = r.R.Read(p)
	r.N += int64(n)
	r.h.Write(p[:n])
	return n, err
}

// Sum32 returns the xxHash32 digest of the bytes read so far.
func (r *Reader) Sum32() uint32 { return r.h.Sum32() }

// Writer counts and hashes the bytes written to the underlying writer.
type Writer struct {
	W io.Writer
	N int64
	h hash.Hash32
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{W: w, h: xxHash32.New(0)}
}

// Write writes to the underlying writer. Only the bytes accepted by it are
// counted.
func (w *Writer) Write(p []byte) (n int, err error) {
	n, err = w.W.Write(p)
	w.N += int64(n)
	w.h.Write(p[:n])
	return n, err
}

// Sum32 returns the xxHash32 digest of the bytes written so far.
func (w *Writer) Sum32() uint32 { return w.h.Sum32() }

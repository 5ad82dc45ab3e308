package lz77

import "io"

// Window is the sliding window of the codec: a circular buffer holding the
// most recent bytes. Logical index 0 is the oldest byte retained, index
// Len()-1 the most recent one. Once the window is full every new byte
// overwrites the oldest one.
//
// The backing slice never grows. The start field is the physical index of
// the oldest byte; it only moves after the window became full.
type Window struct {
	data  []byte
	start int
	n     int
}

// NewWindow creates a window with the given capacity. The capacity must be
// positive.
func NewWindow(capacity int) (*Window, error) {
	if capacity <= 0 {
		return nil, ErrWindowCap
	}
	return &Window{data: make([]byte, capacity)}, nil
}

// phys converts the logical index i into an index of the data slice. All
// index computations of the type go through this function.
func (w *Window) phys(i int) int {
	return (w.start + i) % len(w.data)
}

// head returns the physical index where the next byte will be stored.
func (w *Window) head() int {
	return w.phys(w.n)
}

// advance registers k bytes stored at the head index. k must not exceed
// len(w.data)-head().
func (w *Window) advance(k int) {
	if w.n < len(w.data) {
		// start is zero as long as the window is not full
		w.n += k
		return
	}
	w.start = w.phys(k)
}

// Len returns the number of bytes in the window.
func (w *Window) Len() int { return w.n }

// Cap returns the capacity of the window.
func (w *Window) Cap() int { return len(w.data) }

// Reset empties the window.
func (w *Window) Reset() {
	w.start = 0
	w.n = 0
}

// ByteAt returns the byte at logical index i. It panics if i is outside
// the range [0,Len()).
func (w *Window) ByteAt(i int) byte {
	if !(0 <= i && i < w.n) {
		panic("lz77: window index out of range")
	}
	return w.data[w.phys(i)]
}

// Push appends c to the window. If the window is full, the oldest byte is
// dropped.
func (w *Window) Push(c byte) {
	w.data[w.head()] = c
	w.advance(1)
}

// Write appends all bytes of p to the window. The result is the same as
// calling Push for every byte. Write never returns an error.
func (w *Window) Write(p []byte) (n int, err error) {
	n = len(p)
	if len(p) > len(w.data) {
		p = p[len(p)-len(w.data):]
	}
	for len(p) > 0 {
		k := copy(w.data[w.head():], p)
		w.advance(k)
		p = p[k:]
	}
	return n, nil
}

// ReadFull reads exactly n bytes from r directly into the window. Errors
// of r are returned unchanged; the bytes read before the error remain in
// the window. A read ending early returns io.EOF if no byte has been read
// and io.ErrUnexpectedEOF otherwise, as io.ReadFull does.
func (w *Window) ReadFull(r io.Reader, n int) error {
	total := n
	for n > 0 {
		j := w.head()
		q := w.data[j:]
		if len(q) > n {
			q = q[:n]
		}
		k, err := io.ReadFull(r, q)
		w.advance(k)
		n -= k
		if err != nil {
			if err == io.EOF && n < total {
				err = io.ErrUnexpectedEOF
			}
			return err
		}
	}
	return nil
}

// CopyAt copies bytes starting at the logical index i into p and returns
// the number of bytes copied. It copies min(len(p), Len()-i) bytes.
func (w *Window) CopyAt(p []byte, i int) int {
	if !(0 <= i && i <= w.n) {
		panic("lz77: window index out of range")
	}
	if m := w.n - i; len(p) > m {
		p = p[:m]
	}
	j := w.phys(i)
	k := copy(p, w.data[j:])
	if k < len(p) {
		k += copy(p[k:], w.data)
	}
	return k
}

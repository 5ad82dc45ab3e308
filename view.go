package lz77

// Buffer is an indexable sequence of bytes of known length. Searchers look
// for matches in a Buffer.
type Buffer interface {
	Len() int
	ByteAt(i int) byte
}

// Bytes makes a byte slice usable as Buffer.
type Bytes []byte

// Len returns the length of the slice.
func (b Bytes) Len() int { return len(b) }

// ByteAt returns b[i].
func (b Bytes) ByteAt(i int) byte { return b[i] }

// Concat is a read-only view of two buffers as if they had been
// concatenated. Neither buffer is copied or modified. The lengths are
// captured by Join, so the view must not be used after one of the buffers
// has changed.
type Concat struct {
	a, b Buffer
	na   int
	nb   int
}

// Join returns the view of a followed by b.
func Join(a, b Buffer) Concat {
	return Concat{a: a, b: b, na: a.Len(), nb: b.Len()}
}

// Len returns the combined length of both buffers.
func (c Concat) Len() int { return c.na + c.nb }

// ByteAt returns the byte at index i of the concatenation.
func (c Concat) ByteAt(i int) byte {
	if i < c.na {
		return c.a.ByteAt(i)
	}
	return c.b.ByteAt(i - c.na)
}

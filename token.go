package lz77

import (
	"encoding/binary"
	"fmt"
)

// tokenLen is the size of a serialized token in bytes.
const tokenLen = 2

// Token is the 16-bit header of every record in the compressed stream. The
// high bits store the distance, the low bits the length. A distance of zero
// marks a literal run; the length field holds the number of literal bytes
// following the token minus one. A match record stores the match distance
// and length and is followed by exactly one literal byte.
type Token struct {
	word       uint16
	lengthBits uint8
}

// NewToken returns a zero token whose length field has lengthBits bits. The
// distance field gets the remaining 16-lengthBits bits. lengthBits must be
// in the range 1..15.
func NewToken(lengthBits int) (Token, error) {
	if !(1 <= lengthBits && lengthBits <= 15) {
		return Token{}, ErrFieldSize
	}
	return Token{lengthBits: uint8(lengthBits)}, nil
}

// LengthBits returns the size of the length field.
func (t Token) LengthBits() int { return int(t.lengthBits) }

// lengthMask returns the bits of the word used by the length field.
func (t Token) lengthMask() uint16 {
	return 1<<t.lengthBits - 1
}

// Distance returns the distance field.
func (t Token) Distance() int {
	return int(t.word >> t.lengthBits)
}

// Length returns the length field.
func (t Token) Length() int {
	return int(t.word & t.lengthMask())
}

// SetDistance sets the distance field. If d doesn't fit into the field
// ErrFieldOverflow is returned and the token is not modified.
func (t *Token) SetDistance(d int) error {
	if !(0 <= d && d <= 0xffff) {
		return ErrFieldOverflow
	}
	u := uint16(d)
	if (u<<t.lengthBits)>>t.lengthBits != u {
		return ErrFieldOverflow
	}
	t.word = u<<t.lengthBits | t.word&t.lengthMask()
	return nil
}

// SetLength sets the length field. If l doesn't fit into the field
// ErrFieldOverflow is returned and the token is not modified.
func (t *Token) SetLength(l int) error {
	if !(0 <= l && l <= 0xffff) {
		return ErrFieldOverflow
	}
	u := uint16(l)
	k := 16 - t.lengthBits
	if (u<<k)>>k != u {
		return ErrFieldOverflow
	}
	t.word = t.word&^t.lengthMask() | u
	return nil
}

// set assigns both fields.
func (t *Token) set(d, l int) error {
	if err := t.SetDistance(d); err != nil {
		return err
	}
	return t.SetLength(l)
}

// AppendBinary appends the big-endian representation of the token to b.
func (t Token) AppendBinary(b []byte) ([]byte, error) {
	return binary.BigEndian.AppendUint16(b, t.word), nil
}

// MarshalBinary returns the two bytes of the token.
func (t Token) MarshalBinary() (data []byte, err error) {
	return t.AppendBinary(make([]byte, 0, tokenLen))
}

// UnmarshalBinary reads the token from the two bytes in p. The size of the
// length field is kept.
func (t *Token) UnmarshalBinary(p []byte) error {
	if len(p) != tokenLen {
		return fmt.Errorf("lz77: token has %d bytes; want %d",
			len(p), tokenLen)
	}
	t.word = binary.BigEndian.Uint16(p)
	return nil
}

// String returns the distance and length of the token.
func (t Token) String() string {
	return fmt.Sprintf("(%d, %d)", t.Distance(), t.Length())
}

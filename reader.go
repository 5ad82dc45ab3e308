package lz77

import (
	"errors"
	"fmt"
	"io"

	"github.com/ulikunitz/lz77/xlog"
)

// readerState describes the progress of the Reader.
type readerState int

const (
	// stateIdle: the next record must be read
	stateIdle readerState = iota
	// stateEmitting: remaining bytes of the last record must be
	// delivered
	stateEmitting
	// stateExhausted: the stream ended at a record boundary
	stateExhausted
)

// Reader decompresses a record stream. It must use the same WindowBits
// value as the Writer that produced the stream.
type Reader struct {
	r      io.Reader
	cfg    Config
	window *Window
	tok    Token
	buf    [tokenLen]byte
	state  readerState
	// bytes of the last record not yet delivered
	remaining int
	err       error
}

// NewReader creates a Reader using DefaultConfig.
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderConfig(r, DefaultConfig())
}

// NewReaderConfig creates a Reader for the given configuration. The
// Searcher field is ignored.
//
// The window of the reader holds at least 2^(16-WindowBits) bytes, which is
// more than the window of the Writer for WindowBits less than 9. A record
// may produce that many bytes and they must still be available when Read
// delivers them. Distances are always counted from the end of the window,
// so the larger window doesn't change the output.
func NewReaderConfig(r io.Reader, cfg Config) (*Reader, error) {
	if r == nil {
		return nil, errors.New("lz77: NewReaderConfig: reader must not be nil")
	}
	cfg.SetDefaults()
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	capacity := cfg.WindowCap()
	if f := cfg.lookaheadLen(); f > capacity {
		capacity = f
	}
	window, err := NewWindow(capacity)
	if err != nil {
		return nil, err
	}
	tok, err := NewToken(cfg.lengthBits())
	if err != nil {
		return nil, err
	}
	return &Reader{r: r, cfg: cfg, window: window, tok: tok}, nil
}

// WindowBits returns the window size exponent used by the reader.
func (r *Reader) WindowBits() int { return r.cfg.WindowBits }

// Read decompresses data into p. It supports short buffers; a record that
// doesn't fit into p is delivered by the following calls. At the end of the
// stream Read returns io.EOF. A stream ending inside a record results in an
// error wrapping ErrCorrupt.
func (r *Reader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		switch r.state {
		case stateExhausted:
			if n == 0 {
				return 0, io.EOF
			}
			return n, nil
		case stateEmitting:
			k := r.window.CopyAt(p[n:], r.window.Len()-r.remaining)
			n += k
			r.remaining -= k
			if r.remaining == 0 {
				r.state = stateIdle
			}
		case stateIdle:
			if r.err != nil {
				return n, r.err
			}
			if err = r.readRecord(); err != nil {
				if err == io.EOF {
					r.state = stateExhausted
					continue
				}
				r.err = err
				return n, err
			}
		}
	}
	return n, nil
}

// readRecord reads the next record and decodes it into the window. It
// returns io.EOF if the stream ends before the first token byte.
func (r *Reader) readRecord() error {
	if _, err := io.ReadFull(r.r, r.buf[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return fmt.Errorf("%w: truncated token", ErrCorrupt)
		}
		return err
	}
	if err := r.tok.UnmarshalBinary(r.buf[:]); err != nil {
		return err
	}
	dist, length := r.tok.Distance(), r.tok.Length()
	if dist == 0 {
		xlog.Printf(r.cfg.Logger, "literals %v", r.tok)
		if err := r.window.ReadFull(r.r, length+1); err != nil {
			return payloadErr(err)
		}
		r.setEmitting(length + 1)
		return nil
	}
	if dist > r.window.Len() {
		return fmt.Errorf("%w: distance %d exceeds decoded data %d",
			ErrCorrupt, dist, r.window.Len())
	}
	xlog.Printf(r.cfg.Logger, "match %v", r.tok)
	for i := 0; i < length; i++ {
		r.window.Push(r.window.ByteAt(r.window.Len() - dist))
	}
	if err := r.window.ReadFull(r.r, 1); err != nil {
		return payloadErr(err)
	}
	r.setEmitting(length + 1)
	return nil
}

func (r *Reader) setEmitting(n int) {
	r.remaining = n
	r.state = stateEmitting
}

// payloadErr converts the end of the stream inside a record into a
// corruption error.
func payloadErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: truncated record", ErrCorrupt)
	}
	return err
}

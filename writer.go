package lz77

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/ulikunitz/lz77/xlog"
)

// Writer compresses the data written to it and writes the record stream to
// the underlying writer.
//
// The Writer holds back up to 2^(16-WindowBits)+1 bytes for the match
// search and a literal run of the same size. Call Flush or Close to write
// them. A Writer that becomes unreachable without having been closed is
// closed by a finalizer on a best-effort basis; errors there are only
// reported to the debug logger.
type Writer struct {
	w      io.Writer
	cfg    Config
	window *Window
	// lookahead has the capacity F+1
	ahead []byte
	// pending literal run with capacity F
	lits   []byte
	tok    Token
	buf    []byte
	err    error
	closed bool
}

// NewWriter creates a Writer using DefaultConfig.
func NewWriter(w io.Writer) (*Writer, error) {
	return NewWriterConfig(w, DefaultConfig())
}

// NewWriterConfig creates a Writer for the given configuration.
func NewWriterConfig(w io.Writer, cfg Config) (*Writer, error) {
	if w == nil {
		return nil, errors.New("lz77: NewWriterConfig: writer must not be nil")
	}
	cfg.SetDefaults()
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	window, err := NewWindow(cfg.WindowCap())
	if err != nil {
		return nil, err
	}
	tok, err := NewToken(cfg.lengthBits())
	if err != nil {
		return nil, err
	}
	f := cfg.lookaheadLen()
	lw := &Writer{
		w:      w,
		cfg:    cfg,
		window: window,
		ahead:  make([]byte, 0, f+1),
		lits:   make([]byte, 0, f),
		tok:    tok,
		buf:    make([]byte, 0, tokenLen+f),
	}
	runtime.SetFinalizer(lw, (*Writer).finalize)
	return lw, nil
}

// WindowBits returns the window size exponent used by the writer.
func (w *Writer) WindowBits() int { return w.cfg.WindowBits }

// Write compresses the bytes of p. The returned count includes the bytes
// that are buffered. An error of the underlying writer is returned by all
// following calls.
func (w *Writer) Write(p []byte) (n int, err error) {
	if w.closed {
		return 0, ErrClosed
	}
	if w.err != nil {
		return 0, w.err
	}
	keyLen := w.cfg.MaxMatchLen()
	for len(p) > 0 {
		a := len(w.ahead)
		k := copy(w.ahead[a:cap(w.ahead)], p)
		w.ahead = w.ahead[:a+k]
		p = p[k:]
		n += k
		if len(w.ahead) < cap(w.ahead) {
			break
		}
		if err = w.step(keyLen); err != nil {
			w.err = err
			return n, err
		}
	}
	return n, nil
}

// step encodes the start of the lookahead buffer. The key for the search
// consists of the first keyLen bytes of the lookahead; the lookahead must
// contain at least keyLen+1 bytes.
func (w *Writer) step(keyLen int) error {
	haystack := Join(w.window, Bytes(w.ahead))
	m, ok := w.cfg.Searcher.FindLongestMatch(haystack, w.ahead[:keyLen])
	if !ok {
		w.lits = append(w.lits, w.ahead[0])
		if len(w.lits) == cap(w.lits) {
			if err := w.flushLiterals(); err != nil {
				return err
			}
		}
		w.advance(1)
		return nil
	}
	if err := w.flushLiterals(); err != nil {
		return err
	}
	dist := w.window.Len() - m.Pos
	if err := w.writeMatch(dist, m.Len, w.ahead[m.Len]); err != nil {
		return err
	}
	w.advance(m.Len + 1)
	return nil
}

// advance moves n bytes from the lookahead into the window.
func (w *Writer) advance(n int) {
	w.window.Write(w.ahead[:n])
	k := copy(w.ahead, w.ahead[n:])
	w.ahead = w.ahead[:k]
}

// writeMatch writes a match record.
func (w *Writer) writeMatch(dist, length int, c byte) error {
	if err := w.tok.set(dist, length); err != nil {
		// the searcher contract has been violated
		return fmt.Errorf("lz77: match (%d, %d) doesn't fit token: %w",
			dist, length, err)
	}
	xlog.Printf(w.cfg.Logger, "match %v %q", w.tok, c)
	w.buf, _ = w.tok.AppendBinary(w.buf[:0])
	w.buf = append(w.buf, c)
	_, err := w.w.Write(w.buf)
	return err
}

// flushLiterals writes the pending literal run as a single record.
func (w *Writer) flushLiterals() error {
	if len(w.lits) == 0 {
		return nil
	}
	if err := w.tok.set(0, len(w.lits)-1); err != nil {
		panic(err)
	}
	xlog.Printf(w.cfg.Logger, "literals %v", w.tok)
	w.buf, _ = w.tok.AppendBinary(w.buf[:0])
	w.buf = append(w.buf, w.lits...)
	w.lits = w.lits[:0]
	_, err := w.w.Write(w.buf)
	return err
}

// drain encodes all buffered bytes. The search key shrinks with the
// lookahead.
func (w *Writer) drain() error {
	if w.err != nil {
		return w.err
	}
	for len(w.ahead) > 0 {
		if err := w.step(len(w.ahead) - 1); err != nil {
			w.err = err
			return err
		}
	}
	if err := w.flushLiterals(); err != nil {
		w.err = err
		return err
	}
	return nil
}

type flusher interface {
	Flush() error
}

// Flush writes all buffered data and calls the Flush method of the
// underlying writer if it has one. The window is kept, so the stream can be
// continued. Flush without pending data writes nothing.
func (w *Writer) Flush() error {
	if w.closed {
		return ErrClosed
	}
	if err := w.drain(); err != nil {
		return err
	}
	if f, ok := w.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Close flushes the writer. It doesn't close the underlying writer. Calling
// Close a second time returns ErrClosed.
func (w *Writer) Close() error {
	if w.closed {
		return ErrClosed
	}
	runtime.SetFinalizer(w, nil)
	err := w.Flush()
	w.closed = true
	return err
}

// finalize closes a writer that has been dropped without Close. It must not
// crash the program, so panics of the underlying writer are recovered.
func (w *Writer) finalize() {
	defer func() {
		if r := recover(); r != nil {
			xlog.Printf(w.cfg.Logger, "finalizer panic %v", r)
		}
	}()
	if w.closed {
		return
	}
	if err := w.Close(); err != nil {
		xlog.Printf(w.cfg.Logger, "finalizer close error %s", err)
	}
}

package lz77

import "errors"

// Configuration errors. They are returned when a Config, Window or Token is
// created or modified; values are never truncated silently.
var (
	ErrWindowBits    = errors.New("lz77: window bits out of range 1..15")
	ErrFieldSize     = errors.New("lz77: invalid token field size")
	ErrFieldOverflow = errors.New("lz77: value overflows token field")
	ErrWindowCap     = errors.New("lz77: window capacity must be positive")
)

// ErrCorrupt indicates that the compressed stream ended inside a record or
// contains a reference before the start of the decoded data. Errors returned
// by the Reader wrap it; use errors.Is to test for it.
var ErrCorrupt = errors.New("lz77: corrupt stream")

// ErrClosed is returned by a Writer that has already been closed.
var ErrClosed = errors.New("lz77: writer already closed")

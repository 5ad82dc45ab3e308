package lz77

import (
	"errors"

	"github.com/ulikunitz/lz77/xlog"
)

// DefaultWindowBits is the window size exponent used by NewWriter and
// NewReader.
const DefaultWindowBits = 12

// Limits for Config.WindowBits. The token has 16 bits and both fields need at
// least one of them.
const (
	MinWindowBits = 1
	MaxWindowBits = 15
)

// Config provides the parameters for a Writer or a Reader. WindowBits must be
// the same for the Writer and the Reader of a stream; the stream doesn't
// record it.
type Config struct {
	// WindowBits sets the window capacity to 2^WindowBits-1 bytes and the
	// size of the token length field to 16-WindowBits bits.
	WindowBits int

	// Searcher finds the matches for the Writer. If it is nil,
	// SetDefaults installs a LinearSearcher.
	Searcher Searcher

	// Logger receives a trace of the records written and read. A nil
	// Logger disables the trace.
	Logger xlog.Logger
}

// DefaultConfig returns the configuration used by NewWriter and NewReader.
func DefaultConfig() Config {
	return Config{WindowBits: DefaultWindowBits}
}

// SetDefaults replaces zero values with default values. WindowBits is not
// touched, because a zero value is as invalid as any other value outside the
// range 1..15.
func (cfg *Config) SetDefaults() {
	if cfg.Searcher == nil {
		cfg.Searcher = LinearSearcher{}
	}
}

// Verify checks the configuration. Usually call SetDefaults before this
// method.
func (cfg *Config) Verify() error {
	if cfg == nil {
		return errors.New("lz77: Config pointer must not be nil")
	}
	if !(MinWindowBits <= cfg.WindowBits && cfg.WindowBits <= MaxWindowBits) {
		return ErrWindowBits
	}
	if cfg.Searcher == nil {
		return errors.New("lz77: Config field Searcher is nil")
	}
	return nil
}

// WindowCap returns the capacity of the sliding window, 2^WindowBits-1.
func (cfg *Config) WindowCap() int {
	return 1<<cfg.WindowBits - 1
}

// lengthBits returns the size of the token length field.
func (cfg *Config) lengthBits() int {
	return 16 - cfg.WindowBits
}

// lookaheadLen returns F, the number of bytes a literal run may have and the
// size of the search key plus one.
func (cfg *Config) lookaheadLen() int {
	return 1 << cfg.lengthBits()
}

// MaxMatchLen returns the longest match a record can describe.
func (cfg *Config) MaxMatchLen() int {
	return cfg.lookaheadLen() - 1
}

/*
Package xlog provides a Logger interface and supporting functions to switch
debug output of the lz77 codec on and off.

The log.Logger type of the standard library cannot be disabled, and a nil
*log.Logger panics when used. The codec only needs a way to trace the records
it writes and reads, and that trace should cost nothing when it is switched
off. A nil Logger is therefore valid everywhere in this package: the
functions return immediately without formatting their arguments.

The glog package, full path github.com/golang/glog, provides more
functionality but depends on flag.Parse() to be called, which doesn't work for
a library used in tests and by commands with their own flag handling.
*/
package xlog

import (
	"fmt"
	"io"
	"log"
)

// Logger is the interface required for debug output. The *log.Logger type
// supports it.
type Logger interface {
	Output(calldepth int, s string) error
}

// New returns a logger writing to w with the given prefix and no flags. If
// w is nil, New returns a nil Logger, which disables the output.
func New(w io.Writer, prefix string) Logger {
	if w == nil {
		return nil
	}
	return log.New(w, prefix, 0)
}

// Print outputs the arguments using the logger. If the logger is nil nothing
// will be printed.
func Print(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Printf prints the arguments using the format string. If the logger argument
// is nil nothing will be printed.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println prints the arguments and adds a newline. If the logger argument is
// nil nothing will be printed.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}

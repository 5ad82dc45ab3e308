// Command lz77 compresses and decompresses files with the lz77 stream
// format.
//
//	lz77 compress   INPUT OUTPUT [-w N] [-v] [--searcher linear|hash] [--trace]
//	lz77 decompress INPUT OUTPUT [-w N] [-v] [--trace]
//
// The window size exponent used for decompression must be the one used for
// compression; the format doesn't store it.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ulikunitz/lz77"
	"github.com/ulikunitz/lz77/internal/count"
	"github.com/ulikunitz/lz77/xlog"
)

// options collects the flags shared by both sub-commands.
type options struct {
	windowBits int
	verbose    bool
	trace      bool
	searcher   string
}

func (o *options) addFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&o.windowBits, "window", "w",
		lz77.DefaultWindowBits, "window size exponent (1..15)")
	cmd.Flags().BoolVarP(&o.verbose, "verbose", "v", false,
		"print byte counts and digests")
	cmd.Flags().BoolVar(&o.trace, "trace", false,
		"log every record to standard error")
}

// config converts the options into a codec configuration.
func (o *options) config() (lz77.Config, error) {
	cfg := lz77.Config{WindowBits: o.windowBits}
	switch o.searcher {
	case "", "linear":
		cfg.Searcher = lz77.LinearSearcher{}
	case "hash":
		cfg.Searcher = lz77.HashSearcher{}
	default:
		return cfg, errors.Errorf("unknown searcher %q", o.searcher)
	}
	if o.trace {
		cfg.Logger = xlog.New(os.Stderr, "lz77 trace: ")
	}
	cfg.SetDefaults()
	if err := cfg.Verify(); err != nil {
		return cfg, errors.Wrapf(err, "window %d", o.windowBits)
	}
	return cfg, nil
}

// codec transforms the data read from r and writes it to w.
type codec func(w io.Writer, r io.Reader, cfg lz77.Config) error

// run opens the input and output files and applies the codec. The counts and
// digests of both sides are printed to out in verbose mode.
func run(out io.Writer, inPath, outPath string, o *options, c codec) (err error) {
	cfg, err := o.config()
	if err != nil {
		return err
	}
	in, err := os.Open(inPath)
	if err != nil {
		return errors.Wrap(err, "input")
	}
	defer in.Close()
	f, err := os.Create(outPath)
	if err != nil {
		return errors.Wrap(err, "output")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "close %s", outPath)
		}
	}()

	cr := count.NewReader(bufio.NewReader(in))
	cw := count.NewWriter(f)
	bw := bufio.NewWriter(cw)
	if err = c(bw, cr, cfg); err != nil {
		return errors.Wrapf(err, "%s", inPath)
	}
	if err = bw.Flush(); err != nil {
		return errors.Wrapf(err, "write %s", outPath)
	}
	if o.verbose {
		fmt.Fprintf(out, "Read:    %d bytes (xxh32 %08x)\n",
			cr.N, cr.Sum32())
		fmt.Fprintf(out, "Written: %d bytes (xxh32 %08x)\n",
			cw.N, cw.Sum32())
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lz77",
		Short:         "compress and decompress files using pure LZ77",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCompressCmd(), newDecompressCmd())
	return root
}

func main() {
	cmdName := filepath.Base(os.Args[0])
	log.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	log.SetFlags(0)

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

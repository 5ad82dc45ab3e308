package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ulikunitz/lz77"
)

func decompress(w io.Writer, r io.Reader, cfg lz77.Config) error {
	lr, err := lz77.NewReaderConfig(r, cfg)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, lr)
	return errors.Wrap(err, "decompress")
}

func newDecompressCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "decompress INPUT OUTPUT",
		Short: "decompress INPUT into OUTPUT",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), args[0], args[1], &o,
				decompress)
		},
	}
	o.addFlags(cmd)
	return cmd
}

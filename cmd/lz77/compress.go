package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ulikunitz/lz77"
)

func compress(w io.Writer, r io.Reader, cfg lz77.Config) error {
	lw, err := lz77.NewWriterConfig(w, cfg)
	if err != nil {
		return err
	}
	if _, err = io.Copy(lw, r); err != nil {
		lw.Close()
		return errors.Wrap(err, "compress")
	}
	return lw.Close()
}

func newCompressCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "compress INPUT OUTPUT",
		Short: "compress INPUT into OUTPUT",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), args[0], args[1], &o,
				compress)
		},
	}
	o.addFlags(cmd)
	cmd.Flags().StringVar(&o.searcher, "searcher", "linear",
		"match finder: linear or hash")
	return cmd
}

package main

import (
	"fmt"
	"sync"
	"testing"

	"github.com/ulikunitz/lz77"
	"github.com/ulikunitz/lz77/internal/tuning"
	"github.com/ulikunitz/zdata"
)

var (
	_silesiaFiles []tuning.File
	silesiaOnce   sync.Once
)

// silesiaFiles returns the samples of the Silesia corpus. The size of the
// samples is fixed by the first call.
func silesiaFiles(limit int) []tuning.File {
	silesiaOnce.Do(func() {
		var err error
		_silesiaFiles, err = tuning.Files(zdata.Silesia, limit)
		if err != nil {
			panic(fmt.Errorf("silesiaFiles() error %w", err))
		}
	})
	return _silesiaFiles
}

// writerBenchmark returns a benchmark function compressing all files with
// the given configuration. The compression ratio is reported as c/u.
func writerBenchmark(files []tuning.File, cfg lz77.Config) func(b *testing.B) {
	return func(b *testing.B) {
		size := tuning.Size(files)
		b.SetBytes(size)
		var (
			err            error
			compressedSize int64
		)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			compressedSize, err = tuning.Compress(files, cfg)
			if err != nil {
				b.Fatalf("tuning.Compress error %s", err)
			}
		}
		b.StopTimer()
		r := float64(compressedSize) / float64(size)
		b.ReportMetric(r, "c/u")
	}
}

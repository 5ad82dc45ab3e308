// Package tuning loads benchmark corpora and measures the lz77 compressor on
// them.
package tuning

import (
	"bytes"
	"io"
	"io/fs"

	"github.com/ulikunitz/lz77"
)

// File is a named sample of a corpus.
type File struct {
	Name string
	Data []byte
}

// Files reads all regular files of the corpus. If limit is positive, only
// the first limit bytes of each file are kept.
func Files(corpus fs.FS, limit int) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			if limit > 0 && len(data) > limit {
				data = data[:limit]
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	return files, err
}

// Size returns the total number of bytes in files.
func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}

type countWriter struct {
	n int64
}

func (w *countWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	w.n += int64(n)
	return n, nil
}

// Compress compresses every file separately and returns the total size of
// the compressed streams.
func Compress(files []File, cfg lz77.Config) (compressedSize int64, err error) {
	for _, f := range files {
		cw := &countWriter{}
		w, err := lz77.NewWriterConfig(cw, cfg)
		if err != nil {
			return compressedSize, err
		}
		_, err = io.Copy(w, bytes.NewReader(f.Data))
		if err != nil {
			w.Close()
			return compressedSize, err
		}
		err = w.Close()
		compressedSize += cw.n
		if err != nil {
			return compressedSize, err
		}
	}
	return compressedSize, nil
}

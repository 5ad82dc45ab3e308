package lz77_test

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ulikunitz/lz77"
)

func Example() {
	const text = "The quick brown fox jumps over the lazy dog. " +
		"The quick brown fox jumps over the lazy dog.\n"
	var buf bytes.Buffer
	w, err := lz77.NewWriter(&buf)
	if err != nil {
		log.Fatalf("lz77.NewWriter error %s", err)
	}
	if _, err = io.WriteString(w, text); err != nil {
		log.Fatalf("io.WriteString error %s", err)
	}
	if err = w.Close(); err != nil {
		log.Fatalf("w.Close() error %s", err)
	}
	r, err := lz77.NewReader(&buf)
	if err != nil {
		log.Fatalf("lz77.NewReader error %s", err)
	}
	if _, err = io.Copy(os.Stdout, r); err != nil {
		log.Fatalf("io.Copy error %s", err)
	}
	// Output:
	// The quick brown fox jumps over the lazy dog. The quick brown fox jumps over the lazy dog.
}

func ExampleNewWriterConfig() {
	var buf bytes.Buffer
	cfg := lz77.Config{WindowBits: 8, Searcher: lz77.HashSearcher{}}
	w, err := lz77.NewWriterConfig(&buf, cfg)
	if err != nil {
		log.Fatalf("lz77.NewWriterConfig error %s", err)
	}
	if _, err = w.Write([]byte("aaaaaaaaaa")); err != nil {
		log.Fatalf("w.Write error %s", err)
	}
	if err = w.Close(); err != nil {
		log.Fatalf("w.Close() error %s", err)
	}
	fmt.Printf("% x\n", buf.Bytes())
	// Output:
	// 00 01 61 61 02 07 61
}

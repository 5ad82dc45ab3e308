package count

import (
	"bytes"
	"io"
	"testing"

	"github.com/pierrec/xxHash/xxHash32"
)

func TestReader(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog.")
	r := NewReader(bytes.NewReader(data))
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("io.ReadAll error %s", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("got %q; want %q", got, data)
	}
	if r.N != int64(len(data)) {
		t.Fatalf("r.N = %d; want %d", r.N, len(data))
	}
	if s, w := r.Sum32(), xxHash32.Checksum(data, 0); s != w {
		t.Fatalf("r.Sum32() = %#08x; want %#08x", s, w)
	}
}

func TestWriter(t *testing.T) {
	data := []byte("abcabcabc")
	buf := new(bytes.Buffer)
	w := NewWriter(buf)
	for i := 0; i < len(data); i += 2 {
		j := i + 2
		if j > len(data) {
			j = len(data)
		}
		if _, err := w.Write(data[i:j]); err != nil {
			t.Fatalf("w.Write error %s", err)
		}
	}
	if w.N != int64(len(data)) {
		t.Fatalf("w.N = %d; want %d", w.N, len(data))
	}
	if s, x := w.Sum32(), xxHash32.Checksum(data, 0); s != x {
		t.Fatalf("w.Sum32() = %#08x; want %#08x", s, x)
	}
	if !bytes.Equal(buf.Bytes(), data) {
		t.Fatalf("underlying buffer %q; want %q", buf.Bytes(), data)
	}
}

package lz77

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"
)

func newTestReader(t testing.TB, data []byte, windowBits int) *Reader {
	t.Helper()
	r, err := NewReaderConfig(bytes.NewReader(data),
		Config{WindowBits: windowBits})
	if err != nil {
		t.Fatalf("NewReaderConfig error %s", err)
	}
	return r
}

func TestNewReaderConfig(t *testing.T) {
	for _, wb := range []int{0, 16, -1} {
		_, err := NewReaderConfig(bytes.NewReader(nil),
			Config{WindowBits: wb})
		if err != ErrWindowBits {
			t.Errorf("WindowBits %d: error %v; want %v", wb, err,
				ErrWindowBits)
		}
	}
	if _, err := NewReader(nil); err == nil {
		t.Errorf("NewReader(nil) returned no error")
	}
	r, err := NewReader(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	if r.WindowBits() != DefaultWindowBits {
		t.Fatalf("WindowBits() = %d; want %d", r.WindowBits(),
			DefaultWindowBits)
	}
}

func TestReader_Records(t *testing.T) {
	tests := []struct {
		name   string
		stream []byte
		want   string
	}{
		{"empty", nil, ""},
		{"literals", []byte{0x00, 0x02, 'a', 'b', 'c'}, "abc"},
		{"run", []byte{0x00, 0x01, 'a', 'a', 0x00, 0x27, 'a'},
			"aaaaaaaaaa"},
		{"overlap", []byte{0x00, 0x01, 'a', 'b', 0x00, 0x25, 'c'},
			"abababac"},
		{"copy", []byte{0x00, 0x03, 'w', 'x', 'y', 'z', 0x00, 0x43, '!'},
			"wxyzwxy!"},
	}
	for _, tc := range tests {
		r := newTestReader(t, tc.stream, 12)
		data, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("%s: io.ReadAll error %s", tc.name, err)
		}
		if string(data) != tc.want {
			t.Errorf("%s: got %q; want %q", tc.name, data, tc.want)
		}
	}
}

func TestReader_Corrupt(t *testing.T) {
	tests := []struct {
		name   string
		stream []byte
	}{
		{"half token", []byte{0x00}},
		{"short literals", []byte{0x00, 0x05, 'a'}},
		{"missing literals", []byte{0x00, 0x00}},
		{"distance before start", []byte{0x00, 0x25, 'c'}},
		{"distance too large",
			[]byte{0x00, 0x01, 'a', 'b', 0x00, 0x35, 'c'}},
		{"missing trailing byte",
			[]byte{0x00, 0x01, 'a', 'b', 0x00, 0x25}},
		{"token after record", []byte{0x00, 0x00, 'a', 0x00}},
	}
	for _, tc := range tests {
		r := newTestReader(t, tc.stream, 12)
		_, err := io.ReadAll(r)
		if !errors.Is(err, ErrCorrupt) {
			t.Errorf("%s: error %v; want %v", tc.name, err,
				ErrCorrupt)
			continue
		}
		p := make([]byte, 10)
		if n, err2 := r.Read(p); n != 0 || err2 != err {
			t.Errorf("%s: Read after error returned %d, %v; want 0, %v",
				tc.name, n, err2, err)
		}
	}
}

func TestReader_UnderlyingError(t *testing.T) {
	errTest := errors.New("test error")
	r, err := NewReader(&errReader{err: errTest})
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	if _, err = r.Read(make([]byte, 4)); err != errTest {
		t.Fatalf("r.Read error %v; want %v", err, errTest)
	}
}

func TestReader_ShortBuffers(t *testing.T) {
	stream := []byte{0x00, 0x03, 'w', 'x', 'y', 'z', 0x00, 0x43, '!',
		0x00, 0x00, '?'}
	want := "wxyzwxy!?"
	for _, size := range []int{1, 2, 3, 5} {
		r := newTestReader(t, stream, 12)
		var out []byte
		p := make([]byte, size)
		for {
			n, err := r.Read(p)
			out = append(out, p[:n]...)
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("size %d: r.Read error %s", size, err)
			}
		}
		if string(out) != want {
			t.Fatalf("size %d: got %q; want %q", size, out, want)
		}
	}
}

func TestReader_OneByteReader(t *testing.T) {
	stream := []byte{0x00, 0x01, 'a', 'b', 0x00, 0x25, 'c'}
	r, err := NewReaderConfig(iotest.OneByteReader(bytes.NewReader(stream)),
		Config{WindowBits: 12})
	if err != nil {
		t.Fatalf("NewReaderConfig error %s", err)
	}
	if err = iotest.TestReader(r, []byte("abababac")); err != nil {
		t.Fatal(err)
	}
}

func TestReader_LongLiteralRun(t *testing.T) {
	// With 3 window bits a literal run has up to 8192 bytes, more than
	// the writer's window of 7 bytes.
	const wb = 3
	data := make([]byte, 8192)
	for i := range data {
		data[i] = byte(i * 13)
	}
	tok, _ := NewToken(16 - wb)
	tok.set(0, len(data)-1)
	stream, _ := tok.AppendBinary(nil)
	stream = append(stream, data...)
	r := newTestReader(t, stream, wb)
	got, err := io.ReadAll(iotest.HalfReader(r))
	if err != nil {
		t.Fatalf("io.ReadAll error %s", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("literal run not reproduced")
	}
}

package wire

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReaderSkipsBlankLines(t *testing.T) {
	t.Parallel()

	r := NewReader(strings.NewReader("\n  \n{\"a\":1}\n\t\r\n{\"b\":2}\r\n\n"))

	for _, want := range []string{`{"a":1}`, `{"b":2}`} {
		got, err := r.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if string(got) != want {
			t.Fatalf("Next() = %q, want %q", got, want)
		}
	}
	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("Next() error = %v, want io.EOF", err)
	}
}

func TestReaderReturnsUnterminatedLastLine(t *testing.T) {
	t.Parallel()

	r := NewReader(strings.NewReader(`{"type":"tool_result"}`))
	got, err := r.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if string(got) != `{"type":"tool_result"}` {
		t.Fatalf("Next() = %q", got)
	}
	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("Next() error = %v, want io.EOF", err)
	}
	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("Next() after EOF error = %v, want io.EOF", err)
	}
}

func TestReaderHandlesLongLines(t *testing.T) {
	t.Parallel()

	long := `{"type":"task_start","input":{"ticket":"` + strings.Repeat("x", 1<<20) + `"}}`
	r := NewReader(strings.NewReader(long + "\n"))
	got, err := r.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if len(got) != len(long) {
		t.Fatalf("Next() returned %d bytes, want %d", len(got), len(long))
	}
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestReaderPropagatesReadErrors(t *testing.T) {
	t.Parallel()

	readErr := errors.New("pipe broken")
	r := NewReader(failingReader{err: readErr})
	if _, err := r.Next(); !errors.Is(err, readErr) {
		t.Fatalf("Next() error = %v, want %v", err, readErr)
	}
}

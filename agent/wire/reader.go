package wire

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// Reader yields newline-delimited lines, skipping blank ones.
type Reader struct {
	r   *bufio.Reader
	err error
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next returns the next non-blank line with surrounding whitespace removed.
// A final line without a trailing newline is still returned; io.EOF follows it.
func (r *Reader) Next() ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	for {
		line, err := r.r.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			r.err = err
			return nil, err
		}
		trimmed := bytes.TrimSpace(line)
		if err != nil {
			r.err = err
		}
		if len(trimmed) > 0 {
			return trimmed, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

package wire

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	contractx "github.com/tanpawarit/runledger-agent/agent/contract"
)

type flusher interface {
	Flush() error
}

// Writer emits one compact JSON object per line and flushes after each one.
type Writer struct {
	dst io.Writer
	buf *bufio.Writer
	enc *json.Encoder
}

func NewWriter(w io.Writer) *Writer {
	buf := bufio.NewWriter(w)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	return &Writer{dst: w, buf: buf, enc: enc}
}

func (w *Writer) Write(msg contractx.Outbound) error {
	if msg == nil {
		return fmt.Errorf("%w: nil outbound message", contractx.ErrEncode)
	}
	// Encode only touches buf once the whole value has marshaled.
	if err := w.enc.Encode(msg); err != nil {
		return fmt.Errorf("%w: %s: %v", contractx.ErrEncode, msg.Kind(), err)
	}
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", msg.Kind(), err)
	}
	if f, ok := w.dst.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush %s: %w", msg.Kind(), err)
		}
	}
	return nil
}

package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	contractx "github.com/tanpawarit/runledger-agent/agent/contract"
)

// Decode parses one line into an inbound message. Invalid UTF-8, malformed
// JSON, or a task_start whose input is not an object fails with ErrDecode.
// Unknown or missing types decode to contract.Ignored.
func Decode(line []byte) (contractx.Inbound, error) {
	if !utf8.Valid(line) {
		return nil, fmt.Errorf("%w: message is not valid UTF-8", contractx.ErrDecode)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(line, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", contractx.ErrDecode, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: message is not an object", contractx.ErrDecode)
	}

	var kind string
	if raw, ok := fields["type"]; ok {
		if err := json.Unmarshal(raw, &kind); err != nil {
			return contractx.Ignored{Type: string(raw)}, nil
		}
	}

	switch contractx.Kind(kind) {
	case contractx.KindTaskStart:
		return decodeTaskStart(fields)
	case contractx.KindToolResult:
		return decodeToolResult(fields), nil
	default:
		return contractx.Ignored{Type: kind}, nil
	}
}

func decodeTaskStart(fields map[string]json.RawMessage) (contractx.TaskStart, error) {
	raw, ok := fields["input"]
	if !ok || isNull(raw) {
		return contractx.TaskStart{Ticket: ""}, nil
	}

	var input map[string]json.RawMessage
	if err := json.Unmarshal(raw, &input); err != nil {
		return contractx.TaskStart{}, fmt.Errorf("%w: task_start input must be an object: %v", contractx.ErrDecode, err)
	}

	rawTicket, ok := input["ticket"]
	if !ok || isNull(rawTicket) {
		return contractx.TaskStart{Ticket: ""}, nil
	}
	var ticket any
	dec := json.NewDecoder(bytes.NewReader(rawTicket))
	dec.UseNumber()
	if err := dec.Decode(&ticket); err != nil {
		return contractx.TaskStart{}, fmt.Errorf("%w: task_start input.ticket: %v", contractx.ErrDecode, err)
	}
	return contractx.TaskStart{Ticket: ticket}, nil
}

func decodeToolResult(fields map[string]json.RawMessage) contractx.ToolResult {
	var out contractx.ToolResult
	if raw, ok := fields["call_id"]; ok {
		// non-string ids are dropped; the payload is never inspected
		_ = json.Unmarshal(raw, &out.CallID)
	}
	if raw, ok := fields["result"]; ok {
		out.Result = raw
	}
	return out
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

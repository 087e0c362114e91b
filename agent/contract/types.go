package contract

import (
	"bytes"
	"encoding/json"
)

type Kind string

const (
	KindTaskStart   Kind = "task_start"
	KindToolResult  Kind = "tool_result"
	KindToolCall    Kind = "tool_call"
	KindFinalOutput Kind = "final_output"
)

// Inbound is one decoded orchestrator message.
type Inbound interface {
	Kind() Kind
	inbound()
}

// Outbound is one message the agent writes back.
type Outbound interface {
	Kind() Kind
	outbound()
}

// TaskStart carries input.ticket as sent. It is usually a string, but any
// other JSON value is kept (numbers as json.Number) and echoed unchanged.
type TaskStart struct {
	Ticket any
}

type ToolResult struct {
	CallID string
	Result json.RawMessage
}

// Ignored carries a message whose type the agent does not handle.
type Ignored struct {
	Type string
}

func (TaskStart) Kind() Kind { return KindTaskStart }
func (TaskStart) inbound() {}

func (ToolResult) Kind() Kind { return KindToolResult }
func (ToolResult) inbound() {}

func (m Ignored) Kind() Kind { return Kind(m.Type) }
func (Ignored) inbound() {}

func (ToolCall) Kind() Kind { return KindToolCall }
func (ToolCall) outbound() {}

func (FinalOutput) Kind() Kind { return KindFinalOutput }
func (FinalOutput) outbound() {}

type ToolCall struct {
	Name   string         `json:"name"`
	CallID string         `json:"call_id"`
	Args   map[string]any `json:"args"`
}

type FinalOutput struct {
	Output Answer `json:"output"`
}

type Answer struct {
	Category string `json:"category"`
	Reply    string `json:"reply"`
}

// MarshalJSON puts the type discriminator ahead of the payload fields.
func (c ToolCall) MarshalJSON() ([]byte, error) {
	args := c.Args
	if args == nil {
		args = map[string]any{}
	}
	return marshalCompact(struct {
		Type   Kind           `json:"type"`
		Name   string         `json:"name"`
		CallID string         `json:"call_id"`
		Args   map[string]any `json:"args"`
	}{
		Type:   KindToolCall,
		Name:   c.Name,
		CallID: c.CallID,
		Args:   args,
	})
}

func (f FinalOutput) MarshalJSON() ([]byte, error) {
	return marshalCompact(struct {
		Type   Kind   `json:"type"`
		Output Answer `json:"output"`
	}{
		Type:   KindFinalOutput,
		Output: f.Output,
	})
}

// marshalCompact encodes without HTML escaping so tickets round-trip verbatim.
func marshalCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

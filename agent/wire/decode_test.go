package wire

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	contractx "github.com/tanpawarit/runledger-agent/agent/contract"
)

func TestDecodeTaskStart(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		line string
		want string
	}{
		"ticket":         {line: `{"type":"task_start","input":{"ticket":"T-42"}}`, want: "T-42"},
		"empty input":    {line: `{"type":"task_start","input":{}}`, want: ""},
		"no input":       {line: `{"type":"task_start"}`, want: ""},
		"null input":     {line: `{"type":"task_start","input":null}`, want: ""},
		"null ticket":    {line: `{"type":"task_start","input":{"ticket":null}}`, want: ""},
		"extra fields":   {line: `{"type":"task_start","run":"r1","input":{"ticket":"a b","lang":"en"}}`, want: "a b"},
		"unicode ticket": {line: `{"type":"task_start","input":{"ticket":"รีเซ็ต <pw> & é"}}`, want: "รีเซ็ต <pw> & é"},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			msg, err := Decode([]byte(tc.line))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			task, ok := msg.(contractx.TaskStart)
			if !ok {
				t.Fatalf("Decode() = %T, want TaskStart", msg)
			}
			if task.Ticket != tc.want {
				t.Fatalf("ticket = %q, want %q", task.Ticket, tc.want)
			}
		})
	}
}

func TestDecodeTaskStartKeepsNonStringTicket(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		line string
		want any
	}{
		"number": {line: `{"type":"task_start","input":{"ticket":42}}`, want: json.Number("42")},
		"big":    {line: `{"type":"task_start","input":{"ticket":12345678901234567890}}`, want: json.Number("12345678901234567890")},
		"bool":   {line: `{"type":"task_start","input":{"ticket":false}}`, want: false},
		"object": {line: `{"type":"task_start","input":{"ticket":{"id":7}}}`, want: map[string]any{"id": json.Number("7")}},
		"array":  {line: `{"type":"task_start","input":{"ticket":["a",1.5]}}`, want: []any{"a", json.Number("1.5")}},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			msg, err := Decode([]byte(tc.line))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			task, ok := msg.(contractx.TaskStart)
			if !ok {
				t.Fatalf("Decode() = %T, want TaskStart", msg)
			}
			if !reflect.DeepEqual(task.Ticket, tc.want) {
				t.Fatalf("ticket = %#v, want %#v", task.Ticket, tc.want)
			}
		})
	}
}

func TestDecodeToolResultKeepsPayloadOpaque(t *testing.T) {
	t.Parallel()

	msg, err := Decode([]byte(`{"type":"tool_result","call_id":"c1","result":{"hits":[1,2]}}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	res, ok := msg.(contractx.ToolResult)
	if !ok {
		t.Fatalf("Decode() = %T, want ToolResult", msg)
	}
	if res.CallID != "c1" {
		t.Fatalf("call_id = %q, want c1", res.CallID)
	}
	if string(res.Result) != `{"hits":[1,2]}` {
		t.Fatalf("result = %s", res.Result)
	}

	msg, err = Decode([]byte(`{"type":"tool_result","call_id":7}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if _, ok := msg.(contractx.ToolResult); !ok {
		t.Fatalf("Decode() = %T, want ToolResult", msg)
	}
}

func TestDecodeIgnoredKinds(t *testing.T) {
	t.Parallel()

	for _, line := range []string{
		`{"type":"heartbeat"}`,
		`{"type":"tool_call","name":"x"}`,
		`{"input":{"ticket":"T-1"}}`,
		`{"type":42}`,
		`{"type":null}`,
		`{}`,
	} {
		msg, err := Decode([]byte(line))
		if err != nil {
			t.Fatalf("Decode(%s) error = %v", line, err)
		}
		if _, ok := msg.(contractx.Ignored); !ok {
			t.Fatalf("Decode(%s) = %T, want Ignored", line, msg)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	for _, line := range []string{
		`not json`,
		`{"type":"task_start"`,
		`{"type":"task_start"} trailing`,
		`null`,
		`[1,2]`,
		`"task_start"`,
		`{"type":"task_start","input":"T-42"}`,
		"{\"type\":\"task_start\",\"input\":{\"ticket\":\"\xff\"}}",
		"\xfe{\"type\":\"tool_result\"}",
	} {
		if _, err := Decode([]byte(line)); !errors.Is(err, contractx.ErrDecode) {
			t.Fatalf("Decode(%s) error = %v, want ErrDecode", line, err)
		}
	}
}

package state

import (
	"errors"
	"fmt"

	contractx "github.com/tanpawarit/runledger-agent/agent/contract"
)

// Phase is where the loop stands in the task_start -> tool_result exchange.
type Phase string

const (
	AwaitingTask       Phase = "awaiting_task"
	AwaitingToolResult Phase = "awaiting_tool_result"
	Done               Phase = "done"
)

var ErrInvalidTransition = errors.New("invalid phase transition")

// Machine tracks the loop phase. It is owned by a single loop and is not
// safe for concurrent use.
type Machine struct {
	phase Phase
}

func NewMachine() *Machine {
	return &Machine{phase: AwaitingTask}
}

func (m *Machine) Phase() Phase {
	return m.phase
}

func (m *Machine) IsDone() bool {
	return m.phase == Done
}

// Expects reports whether kind moves the machine out of its current phase.
func (m *Machine) Expects(kind contractx.Kind) bool {
	_, ok := next(m.phase, kind)
	return ok
}

// Advance moves to the phase that follows kind. The phase is unchanged on error.
func (m *Machine) Advance(kind contractx.Kind) error {
	to, ok := next(m.phase, kind)
	if !ok {
		return fmt.Errorf("%w: phase=%s kind=%s", ErrInvalidTransition, m.phase, kind)
	}
	m.phase = to
	return nil
}

func next(from Phase, kind contractx.Kind) (Phase, bool) {
	switch {
	case from == AwaitingTask && kind == contractx.KindTaskStart:
		return AwaitingToolResult, true
	case from == AwaitingToolResult && kind == contractx.KindToolResult:
		return Done, true
	default:
		return from, false
	}
}

package loopnode

import (
	"context"
	"fmt"

	contractx "github.com/tanpawarit/runledger-agent/agent/contract"
	statex "github.com/tanpawarit/runledger-agent/agent/state"
)

// Dispatch picks the reply for the inbound message and advances the machine.
// Messages the current phase does not await leave both untouched.
func Dispatch(
	ctx context.Context,
	in *GraphState,
	machine *statex.Machine,
	script contractx.Script,
) (*GraphState, error) {
	if in == nil || in.Inbound == nil {
		return nil, fmt.Errorf("%w: graph state is incomplete", contractx.ErrValidation)
	}

	in.From = machine.Phase()
	in.To = in.From
	if !machine.Expects(in.Inbound.Kind()) {
		return in, nil
	}

	msg, err := reply(ctx, in.Inbound, script)
	if err != nil {
		return nil, err
	}
	if err := machine.Advance(in.Inbound.Kind()); err != nil {
		return nil, err
	}

	in.Message = msg
	in.To = machine.Phase()
	return in, nil
}

func reply(ctx context.Context, inbound contractx.Inbound, script contractx.Script) (contractx.Outbound, error) {
	switch m := inbound.(type) {
	case contractx.TaskStart:
		return script.ToolCall(ctx, m)
	case contractx.ToolResult:
		return script.FinalOutput(ctx, m)
	default:
		return nil, fmt.Errorf("%w: no reply for kind=%s", contractx.ErrValidation, inbound.Kind())
	}
}

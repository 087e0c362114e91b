package loopnode

import (
	"fmt"

	contractx "github.com/tanpawarit/runledger-agent/agent/contract"
	statex "github.com/tanpawarit/runledger-agent/agent/state"
)

func FinalizeOutput(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	if in.Message != nil {
		want := expectedReply(in.To)
		if in.Message.Kind() != want {
			return GraphOutput{}, fmt.Errorf("%w: reply kind=%s does not match phase=%s", contractx.ErrValidation, in.Message.Kind(), in.To)
		}
	}

	var received contractx.Kind
	if in.Inbound != nil {
		received = in.Inbound.Kind()
	}
	return GraphOutput{
		Received: received,
		Message:  in.Message,
		Phase:    in.To,
		Done:     in.To == statex.Done,
	}, nil
}

// expectedReply is the outbound kind that lands the loop in phase.
func expectedReply(phase statex.Phase) contractx.Kind {
	switch phase {
	case statex.AwaitingToolResult:
		return contractx.KindToolCall
	case statex.Done:
		return contractx.KindFinalOutput
	default:
		return ""
	}
}

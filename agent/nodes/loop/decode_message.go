package loopnode

import (
	contractx "github.com/tanpawarit/runledger-agent/agent/contract"
	statex "github.com/tanpawarit/runledger-agent/agent/state"
	wirex "github.com/tanpawarit/runledger-agent/agent/wire"
)

type GraphInput struct {
	Line []byte
}

type GraphOutput struct {
	Received contractx.Kind
	// Message is nil when the inbound line was ignored.
	Message contractx.Outbound
	Phase   statex.Phase
	Done    bool
}

type GraphState struct {
	Inbound contractx.Inbound
	From    statex.Phase

	Message contractx.Outbound
	To      statex.Phase
}

func DecodeMessage(in GraphInput) (*GraphState, error) {
	msg, err := wirex.Decode(in.Line)
	if err != nil {
		return nil, err
	}
	return &GraphState{Inbound: msg}, nil
}

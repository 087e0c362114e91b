package script

import (
	"context"

	contractx "github.com/tanpawarit/runledger-agent/agent/contract"
	toolx "github.com/tanpawarit/runledger-agent/agent/tool"
)

var _ contractx.Script = (*Scripted)(nil)

// Scripted answers every task with the same tool call and final output.
type Scripted struct {
	cfg Config
}

func New(cfg Config) (*Scripted, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// fail at startup rather than on the first task
	if _, err := toolx.NewCall(cfg.ToolName, cfg.CallID, map[string]any{cfg.QueryArg: ""}); err != nil {
		return nil, err
	}
	return &Scripted{cfg: cfg}, nil
}

func (s *Scripted) ToolCall(_ context.Context, task contractx.TaskStart) (contractx.ToolCall, error) {
	ticket := task.Ticket
	if ticket == nil {
		ticket = ""
	}
	return toolx.NewCall(s.cfg.ToolName, s.cfg.CallID, map[string]any{
		s.cfg.QueryArg: ticket,
	})
}

// FinalOutput ignores the tool result entirely.
func (s *Scripted) FinalOutput(_ context.Context, _ contractx.ToolResult) (contractx.FinalOutput, error) {
	return contractx.FinalOutput{
		Output: contractx.Answer{
			Category: s.cfg.Category,
			Reply:    s.cfg.Reply,
		},
	}, nil
}

package contract

import "context"

// Script decides the content of the two messages the agent ever sends.
type Script interface {
	ToolCall(ctx context.Context, task TaskStart) (ToolCall, error)
	FinalOutput(ctx context.Context, result ToolResult) (FinalOutput, error)
}

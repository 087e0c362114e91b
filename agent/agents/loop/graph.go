package loop

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"
	nodex "github.com/tanpawarit/runledger-agent/agent/nodes/loop"
)

func (l *Loop) compileHandleLineGraph(
	ctx context.Context,
) (compose.Runnable[nodex.GraphInput, nodex.GraphOutput], error) {
	graph := compose.NewGraph[nodex.GraphInput, nodex.GraphOutput]()

	if err := graph.AddLambdaNode("decode_message",
		compose.InvokableLambda(func(ctx context.Context, in nodex.GraphInput) (*nodex.GraphState, error) {
			return nodex.DecodeMessage(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node decode_message: %w", err)
	}

	if err := graph.AddLambdaNode("dispatch",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.Dispatch(ctx, in, l.machine, l.script)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node dispatch: %w", err)
	}

	if err := graph.AddLambdaNode("finalize_output",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (nodex.GraphOutput, error) {
			return nodex.FinalizeOutput(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node finalize_output: %w", err)
	}

	edges := [][2]string{
		{compose.START, "decode_message"},
		{"decode_message", "dispatch"},
		{"dispatch", "finalize_output"},
		{"finalize_output", compose.END},
	}

	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("loop.handle_line"))
	if err != nil {
		return nil, fmt.Errorf("compile loop graph: %w", err)
	}
	return runner, nil
}

// Package loop drives the line-delimited JSON exchange with the orchestrator:
// one task_start is answered with one tool_call, the following tool_result
// with one final_output, after which the loop stops reading.
package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cloudwego/eino/compose"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/runledger-agent/agent/contract"
	nodex "github.com/tanpawarit/runledger-agent/agent/nodes/loop"
	statex "github.com/tanpawarit/runledger-agent/agent/state"
	wirex "github.com/tanpawarit/runledger-agent/agent/wire"
)

type Config struct {
	// RunID tags every log line of the run. Generated when empty.
	RunID string
}

// Loop answers a single task over one input/output pair.
type Loop struct {
	script  contractx.Script
	machine *statex.Machine

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]

	runID  string
	logger zerolog.Logger
}

// New builds a loop waiting for task_start, with its per-line graph compiled.
func New(script contractx.Script, cfg Config) (*Loop, error) {
	if script == nil {
		return nil, errors.New("script is required")
	}

	runID := strings.TrimSpace(cfg.RunID)
	if runID == "" {
		runID = uuid.NewString()
	}

	l := &Loop{
		script:  script,
		machine: statex.NewMachine(),
		runID:   runID,
		logger:  log.With().Str("run_id", runID).Logger(),
	}

	graphRunner, err := l.compileHandleLineGraph(context.Background())
	if err != nil {
		return nil, err
	}
	l.graphRunner = graphRunner

	return l, nil
}

func (l *Loop) RunID() string {
	return l.runID
}

func (l *Loop) Phase() statex.Phase {
	return l.machine.Phase()
}

// Run reads messages from in and writes replies to out until the final output
// has been written or in is exhausted. A malformed line aborts the run with an
// error wrapping contract.ErrDecode. Reads block without timeout.
func (l *Loop) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if l.machine.IsDone() {
		return nil
	}

	reader := wirex.NewReader(in)
	writer := wirex.NewWriter(out)

	for {
		line, err := reader.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.logger.Debug().Str("phase", string(l.machine.Phase())).Msg("input closed")
				return nil
			}
			return fmt.Errorf("read message: %w", err)
		}

		res, err := l.graphRunner.Invoke(ctx, nodex.GraphInput{Line: line})
		if err != nil {
			return err
		}
		if res.Message == nil {
			l.logger.Debug().
				Str("kind", string(res.Received)).
				Str("phase", string(res.Phase)).
				Msg("message ignored")
			continue
		}

		if err := writer.Write(res.Message); err != nil {
			return err
		}
		l.logger.Info().
			Str("received", string(res.Received)).
			Str("kind", string(res.Message.Kind())).
			Str("phase", string(res.Phase)).
			Msg("message sent")

		if res.Done {
			return nil
		}
	}
}

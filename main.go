package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	loopx "github.com/tanpawarit/runledger-agent/agent/agents/loop"
	scriptx "github.com/tanpawarit/runledger-agent/agent/script"
	toolx "github.com/tanpawarit/runledger-agent/agent/tool"
	configx "github.com/tanpawarit/runledger-agent/pkg/config"
	_ "github.com/tanpawarit/runledger-agent/pkg/logger/autoload"
)

type AppConfig struct {
	RunID string `envconfig:"RUN_ID" split_words:"true"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("RUNLEDGER")
	scriptCfg := configx.MustNew[scriptx.Config]("AGENT")

	script, err := scriptx.New(*scriptCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid agent script")
	}

	agent, err := loopx.New(script, loopx.Config{RunID: appCfg.RunID})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build protocol loop")
	}

	tools := make([]string, 0, 1)
	for _, info := range toolx.Infos() {
		tools = append(tools, info.Name)
	}
	log.Info().Str("run_id", agent.RunID()).Strs("tools", tools).Str("tool", scriptCfg.ToolName).Msg("agent ready")

	if err := agent.Run(context.Background(), os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Str("run_id", agent.RunID()).Str("phase", string(agent.Phase())).Msg("protocol loop failed")
		os.Exit(1)
	}
}

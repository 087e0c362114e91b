// Package autoload configures the global logger from LOG_* environment
// variables when imported.
package autoload

import (
	"github.com/rs/zerolog/log"
	configx "github.com/tanpawarit/runledger-agent/pkg/config"
	logx "github.com/tanpawarit/runledger-agent/pkg/logger"
)

func init() {
	conf, err := configx.New[logx.Config]("LOG")
	if err != nil {
		logx.Init()
		log.Warn().Err(err).Msg("logger config invalid, using defaults")
		return
	}
	logx.Init(*conf)
}

package logx

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config selects the log format and level. Logs always go to stderr unless
// Output is set: stdout carries the protocol.
type Config struct {
	Debug        bool   `split_words:"true" default:"false"`
	PrettyFormat bool   `split_words:"true" default:"false"`
	Level        string `split_words:"true"`

	Output io.Writer `ignored:"true"`
}

var DefaultConfig = &Config{
	Debug:        false,
	PrettyFormat: false,
}

func safe(opts ...Config) *Config {
	if len(opts) == 0 {
		return DefaultConfig
	}
	return &opts[0]
}

func Init(opts ...Config) {
	conf := safe(opts...)

	out := conf.Output
	if out == nil {
		out = os.Stderr
	}

	if conf.PrettyFormat {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out}).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
	}

	log.Logger = log.Logger.Level(conf.level())
	log.Logger = log.Logger.With().Caller().Stack().Logger()
}

// level resolves Level first, then Debug. Unknown names fall back to info.
func (c *Config) level() zerolog.Level {
	if raw := strings.TrimSpace(c.Level); raw != "" {
		if lvl, err := zerolog.ParseLevel(strings.ToLower(raw)); err == nil && lvl != zerolog.NoLevel {
			return lvl
		}
	}
	if c.Debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

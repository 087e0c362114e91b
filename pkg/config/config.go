package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

// EnvFileVar names a file to load when no -env flag is given.
const EnvFileVar = "RUNLEDGER_ENV_FILE"

func MustNew[T any](prefix string) *T {
	conf, err := New[T](prefix)
	if err != nil {
		panic(err)
	}
	return conf
}

// New loads the env file named by -env or EnvFileVar, if any, into the
// process environment, then fills T from variables named PREFIX_FIELD via
// envconfig. Nothing is read from the working directory unless asked for.
func New[T any](prefix string) (*T, error) {
	if path := resolveEnvPath(os.Args[1:]); path != "" {
		if err := exportEnvironment(path); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	var conf T
	if err := envconfig.Process(prefix, &conf); err != nil {
		return nil, err
	}

	return &conf, nil
}

// resolveEnvPath looks for -env in args, then EnvFileVar. Unknown arguments
// are tolerated so the binary can be launched with whatever the harness passes.
func resolveEnvPath(args []string) string {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	envFile := fs.String("env", "", "path to .env file")
	for len(args) > 0 {
		if err := fs.Parse(args); err == nil {
			break
		}
		// skip the argument that failed and keep scanning
		rest := fs.Args()
		if len(rest) >= len(args) {
			rest = args[1:]
		}
		args = rest
	}
	if path := strings.TrimSpace(*envFile); path != "" {
		return path
	}
	return strings.TrimSpace(os.Getenv(EnvFileVar))
}

// exportEnvironment reads any format viper understands. Variables already set
// in the environment win over the file.
func exportEnvironment(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	if strings.HasPrefix(baseName(filepath), ".env") {
		v.SetConfigType("env")
	}
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	for k, val := range v.AllSettings() {
		key := strings.ToUpper(k)
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, fmt.Sprint(val)); err != nil {
			return err
		}
	}

	return nil
}

func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

package logger

import (
	"io"
	"os"
	"time"

	"luxhome/config"
	"luxhome/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global logger. Local and development runs get the console writer,
// every other environment emits JSON lines tagged with the app name.
func Init(cfg *config.Config) {
	InitWithWriter(cfg, os.Stdout)
}

func InitWithWriter(cfg *config.Config, out io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.Server.Env == constant.ServerEnvLocal || cfg.Server.Env == constant.ServerEnvDevelopment {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).With().Timestamp()
	if cfg.App.Name != "" {
		ctx = ctx.Str("app", cfg.App.Name)
	}

	log.Logger = ctx.Logger()

	zerolog.SetGlobalLevel(Level(cfg.Server.LogLevel))
}

// Level parses LOG_LEVEL. Unknown or empty values select info.
func Level(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return level
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"luxhome/config"
	"luxhome/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restore(t *testing.T) {
	t.Helper()

	original := log.Logger
	level := zerolog.GlobalLevel()

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
	})
}

func TestInitWithWriter(t *testing.T) {
	t.Run("json lines outside development", func(t *testing.T) {
		restore(t)

		cfg := &config.Config{}
		cfg.Server.Env = "production"
		cfg.Server.LogLevel = "warn"
		cfg.App.Name = "luxhome"

		var buf bytes.Buffer
		logger.InitWithWriter(cfg, &buf)

		log.Info().Msg("dropped")
		log.Warn().Str("slug", "sea-view-loft").Msg("tour cache miss")

		line := map[string]any{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "luxhome", line["app"])
		assert.Equal(t, "sea-view-loft", line["slug"])
		assert.Equal(t, "tour cache miss", line["message"])
		assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	})

	t.Run("console output locally", func(t *testing.T) {
		restore(t)

		cfg := &config.Config{}
		cfg.Server.Env = "local"

		var buf bytes.Buffer
		logger.InitWithWriter(cfg, &buf)

		log.Info().Msg("server ready")

		assert.Contains(t, buf.String(), "server ready")
		assert.False(t, json.Valid(buf.Bytes()))
	})
}

func TestLevel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want zerolog.Level
	}{
		{name: "debug", in: "debug", want: zerolog.DebugLevel},
		{name: "error", in: "error", want: zerolog.ErrorLevel},
		{name: "disabled", in: "disabled", want: zerolog.Disabled},
		{name: "empty", in: "", want: zerolog.InfoLevel},
		{name: "unknown", in: "verbose", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.Level(tt.in))
		})
	}
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	logger.ErrorWithStack(errors.New("failed to insert data (tour_room)"))

	assert.Contains(t, buf.String(), "failed to insert data (tour_room)")
	assert.Contains(t, buf.String(), "logger_test.go")
}

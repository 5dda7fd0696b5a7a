package redis

import (
	"context"
	"net"
	"time"

	"luxhome/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	dialTimeout = 5 * time.Second
	ioTimeout   = 3 * time.Second
	pingTimeout = 5 * time.Second
)

// New connects to the primary Redis that backs the tour cache and the rate limiter.
// The process exits when the server cannot be reached at start up.
func New(config *config.Config) *goRedis.Client {
	primary := config.Cache.Redis.Primary
	addr := net.JoinHostPort(primary.Host, primary.Port)

	client := goRedis.NewClient(&goRedis.Options{
		Addr:         addr,
		Password:     primary.Password,
		DB:           primary.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	err := client.Ping(ctx).Err()

	cancel()

	if err != nil {
		log.Fatal().Err(err).Str("addr", addr).Msg("Failed to connect to Redis")
	}

	log.Info().Str("addr", addr).Int("db", primary.DB).Msg("Connected to Redis")

	return client
}

package redis

import (
	"context"
	"jamat/config"
	"net"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 3 * time.Second

// New returns a client even when the first ping fails; rate limiting fails open until redis is reachable.
func New(config *config.Config) *goRedis.Client {
	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(config.Cache.Redis.Primary.Host, config.Cache.Redis.Primary.Port),
		Password: config.Cache.Redis.Primary.Password,
		DB:       config.Cache.Redis.Primary.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Warn().Err(err).Str("host", config.Cache.Redis.Primary.Host).Msg("Redis is not reachable, continuing without it")

		return client
	}

	log.Info().
		Int("db", config.Cache.Redis.Primary.DB).
		Str("host", config.Cache.Redis.Primary.Host).
		Str("port", config.Cache.Redis.Primary.Port).
		Msg("Connected to Redis")

	return client
}

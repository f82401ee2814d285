package redis

import (
	"Inkwell/internal/api/config"
	"context"
	log "log/slog"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
)

var Rdb *redis.Client

// InitRedis 建立 Redis 连接并确认可达
func InitRedis(cfg config.RedisConfig) error {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,

		MaintNotificationsConfig: &maintnotifications.Config{
			Mode: maintnotifications.ModeDisabled,
		},
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return errors.Wrap(err, "ping redis")
	}

	Rdb = client
	log.Info("redis connected", "addr", cfg.Addr)
	return nil
}

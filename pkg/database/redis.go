package database

import (
	"context"
	"fmt"
	"time"

	"signoria_backend/internal/config"
	"signoria_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// InitRedis connects the catalog cache client. Redis is optional at runtime
// (the cache degrades to a miss) but a dead address at boot is a config error.
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     50,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("redis ping %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	logger.Log.Info("Redis connection established",
		zap.String("host", cfg.Host), zap.Int("port", cfg.Port))
	return rdb, nil
}

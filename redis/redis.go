package redis

import (
	"context"
	"os"

	"github.com/caregivers-platform/backend/logger"
	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// Init connects the reminder-dedupe client. REDIS_ADDR defaults to
// localhost:6379.
func Init() error {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	Client = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	if _, err := Client.Ping(Ctx).Result(); err != nil {
		return err
	}
	logger.Log.Infow("connected to redis", "addr", addr)
	return nil
}

package database

import (
	"context"
	"fmt"
	"geics-service/internal/app/config"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const redisProbeTimeout = 2 * time.Second

// NewRedisClient probes Redis the same way NewMongoDB probes Mongo; a nil
// client selects the in-memory session store.
func NewRedisClient(driverConfig *config.DriverConfig, log *logrus.Logger) *redis.Client {
	ctx, cancel := context.WithTimeout(context.Background(), redisProbeTimeout)
	defer cancel()

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
	})

	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		log.Warnf("Redis not available, using in-memory session store: %s", err.Error())
		return nil
	}

	log.Println("Successfully connected to redis")
	return rdb
}

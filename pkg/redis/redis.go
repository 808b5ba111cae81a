package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// IRedis is a read-through cache for classification payloads. A miss
// is reported through the ok flag, not an error, so callers can treat
// cache trouble as a miss.
type IRedis interface {
	GetResult(ctx context.Context, key string) (string, bool)
	SetResult(ctx context.Context, key string, payload string, expiration time.Duration) error
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func (r *redisClient) GetResult(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	} else if err != nil {
		logrus.Debug(fmt.Sprintf("Cache lookup failed for key %s: %v", key, err))
		return "", false
	}
	return val, true
}

func (r *redisClient) SetResult(ctx context.Context, key string, payload string, expiration time.Duration) error {
	err := r.client.Set(ctx, key, payload, expiration).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error caching result for key %s: %v", key, err))
		return err
	}
	return nil
}

package redisstore

import (
	"context"
	"time"

	"skipass-api/internal/pkg/config"

	"github.com/go-redis/redis/v8"
)

// Client is the subset of redis commands the stores use.
type Client interface {
	Ping(ctx context.Context) error
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
	SAdd(ctx context.Context, key string, members ...any) error
	SRem(ctx context.Context, key string, members ...any) error
	SMembers(ctx context.Context, key string) ([]string, error)
	Close() error
}

var _ Client = (*redisClient)(nil)

type redisClient struct {
	cli *redis.Client
}

func NewClient(ctx context.Context, cfg config.RedisConfig) (Client, error) {
	c := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, err
	}
	return &redisClient{cli: c}, nil
}

func (c *redisClient) Ping(ctx context.Context) error { return c.cli.Ping(ctx).Err() }

func (c *redisClient) Get(ctx context.Context, key string) (string, error) {
	return c.cli.Get(ctx, key).Result()
}

func (c *redisClient) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	return c.cli.Set(ctx, key, value, expiration).Err()
}

func (c *redisClient) Del(ctx context.Context, keys ...string) error {
	return c.cli.Del(ctx, keys...).Err()
}

func (c *redisClient) SAdd(ctx context.Context, key string, members ...any) error {
	return c.cli.SAdd(ctx, key, members...).Err()
}

func (c *redisClient) SRem(ctx context.Context, key string, members ...any) error {
	return c.cli.SRem(ctx, key, members...).Err()
}

func (c *redisClient) SMembers(ctx context.Context, key string) ([]string, error) {
	return c.cli.SMembers(ctx, key).Result()
}

func (c *redisClient) Close() error { return c.cli.Close() }

// IsMiss reports whether err is the redis "key does not exist" reply.
func IsMiss(err error) bool {
	return err == redis.Nil
}

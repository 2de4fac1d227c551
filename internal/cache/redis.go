// Package cache provides Redis-backed caching for hot reads. Every helper
// fails open: when Redis is down the caller falls through to the database.
package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"prolink/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// client is nil when Redis is unavailable.
var client *redis.Client

// errorCountingHook feeds command failures into the Prometheus error counter,
// labelled per command so a misbehaving command stands out.
type errorCountingHook struct{}

func (errorCountingHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (errorCountingHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if err != nil && !errors.Is(err, redis.Nil) {
			middleware.RedisErrors.WithLabelValues(cmd.Name()).Inc()
		}
		return err
	}
}

func (errorCountingHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if err != nil && !errors.Is(err, redis.Nil) {
			for _, cmd := range cmds {
				if cmd.Err() != nil && !errors.Is(cmd.Err(), redis.Nil) {
					middleware.RedisErrors.WithLabelValues(cmd.Name()).Inc()
				}
			}
		}
		return err
	}
}

// Options resolves the REDIS_URL setting, which may be a bare host:port or a
// full redis:// URL carrying credentials and a database number.
func Options(target string) (*redis.Options, error) {
	if strings.Contains(target, "://") {
		return redis.ParseURL(target)
	}
	return &redis.Options{Addr: target}, nil
}

// InitRedis connects to Redis at the given target. On any failure the client
// stays nil and the application runs uncached.
func InitRedis(target string) {
	opts, err := Options(target)
	if err != nil {
		middleware.Logger.Warn("invalid REDIS_URL, running without cache", "error", err)
		client = nil
		return
	}

	c := redis.NewClient(opts)
	c.AddHook(errorCountingHook{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn("Redis unreachable, running without cache",
			"addr", opts.Addr, "error", err)
		client = nil
		return
	}

	middleware.Logger.Info("Redis connected", "addr", opts.Addr)
	client = c
}

// GetClient returns the current Redis client instance.
func GetClient() *redis.Client {
	return client
}

// SetClient replaces the client instance. Intended for tests.
func SetClient(c *redis.Client) {
	client = c
}

// Package redis holds the Redis-backed adapters: a ports.BlobStore storing
// each blob as a string key, and a ports.EventBus over Redis Pub/Sub.
// Both namespace their keys and channels with a common prefix so several
// deployments can share one Redis.
package redis

import (
	"context"
	"fmt"

	"logistics/internal/pkg/errs"

	goredis "github.com/redis/go-redis/v9"
)

// NewClient parses a redis:// URL and checks the server answers.
func NewClient(ctx context.Context, url string) (*goredis.Client, error) {
	if url == "" {
		return nil, errs.NewValueIsRequiredError("redis url")
	}

	opt, err := goredis.ParseURL(url)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("redis url", err)
	}

	rdb := goredis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

/*
Package pagecache invalidates cached renderings of public site pages.

The marketing frontend caches rendered pages in Redis under "page:<path>".
Instead of each admin mutation enumerating path strings at its call site,
every content entity declares the view paths it affects (PathProvider);
the service layer hands those paths to an [Invalidator] after each
successful write.

# Failure Semantics

Purge failures are logged and swallowed: a stale public page is an
acceptable degradation, while failing the admin's write because Redis was
briefly unreachable is not.
*/
package pagecache

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/argusintel/argus/internal/platform/constants"
	"github.com/argusintel/argus/pkg/slice"
)

// PathProvider is implemented by content entities that know which public
// view paths display them.
type PathProvider interface {
	// AffectedPaths returns the site paths whose cached rendering this
	// entity contributes to (e.g. "/", "/services", "/services/edge-sensing").
	AffectedPaths() []string
}

// Invalidator purges cached page renderings.
type Invalidator interface {
	// Invalidate removes the cache entries for the given site paths.
	// Implementations must never return an error to the caller's write path.
	Invalidate(ctx context.Context, paths ...string)
}

// # Redis Implementation

// RedisInvalidator purges page cache keys from Redis.
type RedisInvalidator struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisInvalidator constructs a Redis-backed [Invalidator].
func NewRedisInvalidator(client *redis.Client, logger *slog.Logger) *RedisInvalidator {
	return &RedisInvalidator{client: client, logger: logger}
}

// Invalidate deletes the "page:<path>" keys for every given path.
func (invalidator *RedisInvalidator) Invalidate(ctx context.Context, paths ...string) {
	if len(paths) == 0 {
		return
	}

	keys := slice.Map(paths, Key)

	if err := invalidator.client.Del(ctx, keys...).Err(); err != nil {
		invalidator.logger.Warn("page_cache_purge_failed",
			slog.Any("error", err),
			slog.Int("paths", len(paths)),
		)
		return
	}

	invalidator.logger.Debug("page_cache_purged", slog.Int("paths", len(paths)))
}

// Key maps a site path to its Redis cache key.
func Key(path string) string {
	return constants.RedisPrefixPageCache + path
}

// # Test Support

// Noop is an [Invalidator] that does nothing. Used in tests and in
// deployments that run without a page cache.
type Noop struct{}

// Invalidate implements [Invalidator].
func (Noop) Invalidate(context.Context, ...string) {}

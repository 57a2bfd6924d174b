package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/argusintel/argus/internal/platform/apperr"
	"github.com/argusintel/argus/internal/platform/constants"
	"github.com/argusintel/argus/internal/platform/sec"
)

// RedisTokenRepository stores one-shot tokens (password reset, email
// verification) in Redis with a TTL. Tokens are hashed before use as keys
// so a Redis snapshot cannot be replayed against the API.
type RedisTokenRepository struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisResetTokenRepository constructs the repository for password
// reset tokens.
func NewRedisResetTokenRepository(client *redis.Client) *RedisTokenRepository {
	return &RedisTokenRepository{client: client, keyPrefix: constants.RedisPrefixResetToken}
}

// NewRedisVerifyTokenRepository constructs the repository for email
// verification tokens.
func NewRedisVerifyTokenRepository(client *redis.Client) *RedisTokenRepository {
	return &RedisTokenRepository{client: client, keyPrefix: constants.RedisPrefixVerifyToken}
}

func (repository *RedisTokenRepository) key(token string) string {
	return repository.keyPrefix + sec.HashToken(token)
}

func (repository *RedisTokenRepository) Set(context context.Context, token, userID string, ttl time.Duration) error {
	if err := repository.client.Set(context, repository.key(token), userID, ttl).Err(); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (repository *RedisTokenRepository) Get(context context.Context, token string) (string, error) {
	userID, err := repository.client.Get(context, repository.key(token)).Result()
	if err == redis.Nil {
		return "", apperr.Unauthorized("Invalid or expired token")
	}
	if err != nil {
		return "", apperr.Internal(err)
	}
	return userID, nil
}

func (repository *RedisTokenRepository) Delete(context context.Context, token string) error {
	if err := repository.client.Del(context, repository.key(token)).Err(); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

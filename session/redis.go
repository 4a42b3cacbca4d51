package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCredentials persists the credential pair in Redis, for shared or lab
// machines where the local filesystem is wiped between logins. The token and
// role live as fields of a single hash so Load and Store stay atomic per key.
type RedisCredentials struct {
	client redis.UniversalClient
	key    string
	ttl    time.Duration
}

// NewRedisCredentials returns a Redis-backed credential store. The credential
// is kept under "<prefix>:credential". A non-zero ttl bounds how long an
// untouched credential survives; Store refreshes it.
func NewRedisCredentials(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisCredentials {
	if prefix == "" {
		prefix = "pmcli"
	}
	return &RedisCredentials{
		client: client,
		key:    prefix + ":credential",
		ttl:    ttl,
	}
}

// Load reads the persisted credential hash.
func (r *RedisCredentials) Load(ctx context.Context) (Credential, error) {
	fields, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return Credential{}, fmt.Errorf("load credential from redis: %w", err)
	}

	cred := Credential{
		Token: fields["token"],
		Role:  fields["role"],
	}
	if cred.Token == "" {
		return Credential{}, ErrNoCredential
	}
	return cred, nil
}

// Store writes the credential hash and refreshes its TTL.
func (r *RedisCredentials) Store(ctx context.Context, cred Credential) error {
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, r.key, "token", cred.Token, "role", cred.Role)
	if r.ttl > 0 {
		pipe.Expire(ctx, r.key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store credential in redis: %w", err)
	}
	return nil
}

// Clear deletes the credential hash. Deleting an absent key is not an error.
func (r *RedisCredentials) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("clear credential in redis: %w", err)
	}
	return nil
}

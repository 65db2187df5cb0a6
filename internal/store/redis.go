package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"payrise-engine/internal/domain"
)

const redisKeyPrefix = "payrise:company:"

// Redis stores profiles as JSON with a native expiry equal to the cache TTL,
// so stale entries disappear on their own.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// OpenRedis parses redisURL and verifies connectivity.
func OpenRedis(ctx context.Context, redisURL string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return NewRedis(client, ttl), nil
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func redisKey(companyID string) string {
	return redisKeyPrefix + domain.NormalizeCompanyName(companyID)
}

func (r *Redis) GetProfile(ctx context.Context, companyID string) (domain.CompanyProfile, bool, error) {
	val, err := r.client.Get(ctx, redisKey(companyID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.CompanyProfile{}, false, nil
	}
	if err != nil {
		return domain.CompanyProfile{}, false, err
	}
	var p domain.CompanyProfile
	if err := json.Unmarshal(val, &p); err != nil {
		return domain.CompanyProfile{}, false, fmt.Errorf("decode profile %s: %w", companyID, err)
	}
	return p, true, nil
}

func (r *Redis) PutProfile(ctx context.Context, p domain.CompanyProfile) error {
	if domain.NormalizeCompanyName(p.CompanyID) == "" {
		return nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, redisKey(p.CompanyID), b, r.ttl).Err()
}

// PruneProfiles is a no-op: Redis expires keys itself.
func (r *Redis) PruneProfiles(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

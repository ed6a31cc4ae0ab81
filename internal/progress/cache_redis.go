package progress

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/studypal/engine/internal/platform/cache"
)

const (
	profileKeyPrefix = "studypal:profile:"
	profileTTL       = 10 * time.Minute
)

// ProfileCache caches derived learning-path profiles. Misses and backend
// errors both read as "not cached"; the profile is always recomputable.
type ProfileCache interface {
	Get(ctx context.Context, userID string) (*Profile, bool)
	Set(ctx context.Context, p Profile)
	Invalidate(ctx context.Context, userID string)
}

// RedisProfileCache stores profiles as JSON in Redis with a short TTL,
// invalidated whenever the user logs a new attempt.
type RedisProfileCache struct {
	cache *cache.Cache
}

// NewRedisProfileCache wraps a platform cache client.
func NewRedisProfileCache(c *cache.Cache) *RedisProfileCache {
	return &RedisProfileCache{cache: c}
}

func (r *RedisProfileCache) Get(ctx context.Context, userID string) (*Profile, bool) {
	data, err := r.cache.Client.Get(ctx, profileKeyPrefix+userID).Bytes()
	if err != nil {
		return nil, false
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		slog.Warn("dropping corrupt cached profile", "user_id", userID, "error", err)
		r.Invalidate(ctx, userID)
		return nil, false
	}
	return &p, true
}

func (r *RedisProfileCache) Set(ctx context.Context, p Profile) {
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := r.cache.Client.Set(ctx, profileKeyPrefix+p.UserID, data, profileTTL).Err(); err != nil {
		slog.Warn("profile cache write failed", "user_id", p.UserID, "error", err)
	}
}

func (r *RedisProfileCache) Invalidate(ctx context.Context, userID string) {
	if err := r.cache.Client.Del(ctx, profileKeyPrefix+userID).Err(); err != nil {
		slog.Warn("profile cache invalidation failed", "user_id", userID, "error", err)
	}
}

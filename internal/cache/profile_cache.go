package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"marketChat/internal/interfaces"
	"marketChat/internal/models"
)

// ProfileCache fronts the identity collaborator with a redis TTL cache.
// Misses and redis failures fall through to the underlying provider; lookup
// failures are never cached.
type ProfileCache struct {
	redis    *redis.Client
	ctx      context.Context
	ttl      time.Duration
	provider interfaces.ProfileProvider
}

func NewProfileCache(redis *redis.Client, ctx context.Context, ttl time.Duration, provider interfaces.ProfileProvider) *ProfileCache {
	return &ProfileCache{
		redis:    redis,
		ctx:      ctx,
		ttl:      ttl,
		provider: provider,
	}
}

func (pc *ProfileCache) GetProfileSummary(userID string) (*models.ProfileSummary, error) {
	key := cacheKey(userID)

	if raw, err := pc.redis.Get(pc.ctx, key).Result(); err == nil {
		var summary models.ProfileSummary
		if err := json.Unmarshal([]byte(raw), &summary); err == nil {
			return &summary, nil
		}
	}

	summary, err := pc.provider.GetProfileSummary(userID)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(summary); err == nil {
		if err := pc.redis.Set(pc.ctx, key, raw, pc.ttl).Err(); err != nil {
			log.Printf("Failed to cache profile %s: %v", userID, err)
		}
	}

	return summary, nil
}

func cacheKey(userID string) string {
	return "profile:" + userID
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dealflow-srv/internal/model"
	"dealflow-srv/internal/preference/repository"
	"dealflow-srv/pkg/log"
	pkgRedis "dealflow-srv/pkg/redis"
)

// cacheKey holds the last known preference document. No TTL: the mirror is
// only replaced by a newer save.
const cacheKey = "preferences:cache"

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}

func (r *implRepository) Get(ctx context.Context) (*model.PreferenceDoc, error) {
	raw, err := r.redis.Get(ctx, cacheKey)
	if err != nil {
		if errors.Is(err, pkgRedis.ErrNotFound) {
			return nil, repository.ErrSettingsNotFound
		}
		r.l.Errorf(ctx, "preference.repository.redis.Get: redis Get failed: %v", err)
		return nil, err
	}

	var doc model.PreferenceDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached preferences: %w", err)
	}
	return &doc, nil
}

func (r *implRepository) Set(ctx context.Context, doc model.PreferenceDoc) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := r.redis.Set(ctx, cacheKey, raw, 0); err != nil {
		r.l.Errorf(ctx, "preference.repository.redis.Set: redis Set failed: %v", err)
		return err
	}
	return nil
}

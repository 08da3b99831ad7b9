package redis

import (
	"context"
	"encoding/json"
	"errors"

	"dealflow-srv/internal/mandate/repository"
	"dealflow-srv/pkg/log"
	pkgRedis "dealflow-srv/pkg/redis"
)

const slotPrefix = "mandate:"

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

func New(redis pkgRedis.IRedis, l log.Logger) repository.MandateRepository {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}

func (r *implRepository) Get(ctx context.Context, slot string) (json.RawMessage, error) {
	raw, err := r.redis.Get(ctx, slotPrefix+slot)
	if err != nil {
		if errors.Is(err, pkgRedis.ErrNotFound) {
			return nil, repository.ErrMandateNotFound
		}
		r.l.Errorf(ctx, "mandate.repository.redis.Get: redis Get failed: %v", err)
		return nil, err
	}

	return json.RawMessage(raw), nil
}

// Set stores the document verbatim. No TTL: the profile lives until the
// client overwrites it.
func (r *implRepository) Set(ctx context.Context, slot string, doc json.RawMessage) error {
	if err := r.redis.Set(ctx, slotPrefix+slot, []byte(doc), 0); err != nil {
		r.l.Errorf(ctx, "mandate.repository.redis.Set: redis Set failed: %v", err)
		return err
	}
	return nil
}

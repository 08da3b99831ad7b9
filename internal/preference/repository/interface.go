package repository

import (
	"context"

	"dealflow-srv/internal/model"
)

//go:generate mockery --name SettingsRepository
type SettingsRepository interface {
	LoadLatest(ctx context.Context) (*model.PreferenceDoc, error)
	Save(ctx context.Context, doc model.PreferenceDoc) error
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	SettingsRepository
}

// CacheRepository mirrors the last known preference document so reads keep
// working when the structured store is down.
//
//go:generate mockery --name CacheRepository
type CacheRepository interface {
	Get(ctx context.Context) (*model.PreferenceDoc, error)
	Set(ctx context.Context, doc model.PreferenceDoc) error
}

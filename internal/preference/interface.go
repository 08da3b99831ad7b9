package preference

import (
	"context"

	"dealflow-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Load(ctx context.Context) (model.Prefs, error)
	Save(ctx context.Context, prefs model.Prefs) (SaveOutput, error)
}

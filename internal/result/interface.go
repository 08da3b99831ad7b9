package result

import (
	"context"

	"dealflow-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Resolve(ctx context.Context, id string) (model.Results, error)
	ListReports(ctx context.Context) ([]model.ReportMeta, error)
}

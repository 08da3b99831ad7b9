package repository

import (
	"context"

	"dealflow-srv/internal/model"
)

//go:generate mockery --name ResultRepository
type ResultRepository interface {
	GetByPK(ctx context.Context, id int64) (*model.ResultRow, error)
	GetByReportID(ctx context.Context, reportID string) (*model.ResultRow, error)
	GetLatest(ctx context.Context) (*model.ResultRow, error)
	ListMetas(ctx context.Context) ([]model.ReportMeta, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ResultRepository
}

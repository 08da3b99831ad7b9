package analysis

import (
	"context"

	"dealflow-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Start(ctx context.Context, input StartInput) (StartOutput, error)
	Status(ctx context.Context, jobID string) ([]model.AgentStatus, error)
	ReportPDFURL(jobID string) string
}

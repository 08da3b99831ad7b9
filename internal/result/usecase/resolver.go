package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"dealflow-srv/internal/model"
	"dealflow-srv/internal/result"
)

// Resolve finds a result payload for id, in strict order, stopping at the
// first hit: store by primary key, store by report_id newest-first, latest
// store row regardless of id, the analysis engine, the bundled fixture.
// Store probes are speculative and their failures are swallowed; a
// configured engine is authoritative and its failures propagate.
func (uc *implUseCase) Resolve(ctx context.Context, id string) (model.Results, error) {
	if uc.repo != nil {
		if row := uc.resolveFromStore(ctx, id); row != nil {
			return normalizeResults(row.Data), nil
		}
		// Store configured but empty-handed: best effort ends at the fixture.
		return demoResults(), nil
	}

	if uc.engine != nil {
		raw, err := uc.engine.GetResults(ctx, id)
		if err != nil {
			uc.l.Errorf(ctx, "result.usecase.Resolve: engine GetResults failed: %v", err)
			return model.Results{}, fmt.Errorf("%w: %v", result.ErrEngineFailed, err)
		}
		return normalizeResults(raw), nil
	}

	return demoResults(), nil
}

func (uc *implUseCase) resolveFromStore(ctx context.Context, id string) *model.ResultRow {
	if pk, err := strconv.ParseInt(id, 10, 64); err == nil {
		row, err := uc.repo.GetByPK(ctx, pk)
		if err == nil && row != nil {
			return row
		}
		uc.logProbeMiss(ctx, "GetByPK", err)
	}

	row, err := uc.repo.GetByReportID(ctx, id)
	if err == nil && row != nil {
		return row
	}
	uc.logProbeMiss(ctx, "GetByReportID", err)

	row, err = uc.repo.GetLatest(ctx)
	if err == nil && row != nil {
		return row
	}
	uc.logProbeMiss(ctx, "GetLatest", err)

	return nil
}

func (uc *implUseCase) logProbeMiss(ctx context.Context, step string, err error) {
	if err != nil {
		uc.l.Warnf(ctx, "result.usecase.resolveFromStore: %s missed: %v", step, err)
	}
}

// ListReports lists stored result metadata, newest first. Without a store
// the demo fixture is advertised as a single report.
func (uc *implUseCase) ListReports(ctx context.Context) ([]model.ReportMeta, error) {
	if uc.repo == nil {
		return []model.ReportMeta{{ID: 1, CreatedAt: time.Now(), ReportID: "demo"}}, nil
	}

	metas, err := uc.repo.ListMetas(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "result.usecase.ListReports: ListMetas failed: %v", err)
		return nil, err
	}
	return metas, nil
}

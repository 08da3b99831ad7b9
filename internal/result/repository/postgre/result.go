package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dealflow-srv/internal/model"
	"dealflow-srv/internal/result/repository"
	"dealflow-srv/pkg/probe"
)

// GetByPK fetches a result row by numeric primary key, probing table name
// variants in order.
func (r *implRepository) GetByPK(ctx context.Context, id int64) (*model.ResultRow, error) {
	var row *model.ResultRow
	err := r.prober.Do(ctx, func(ctx context.Context, table string) error {
		query := fmt.Sprintf(`SELECT id, created_at, report_id, data FROM %q WHERE id = $1`, table)
		var scanErr error
		row, scanErr = r.scanRow(r.db.QueryRowContext(ctx, query, id))
		return scanErr
	})
	if err != nil {
		return nil, r.mapError(ctx, "GetByPK", err)
	}
	return row, nil
}

// GetByReportID fetches the newest result row whose report_id matches.
func (r *implRepository) GetByReportID(ctx context.Context, reportID string) (*model.ResultRow, error) {
	var row *model.ResultRow
	err := r.prober.Do(ctx, func(ctx context.Context, table string) error {
		query := fmt.Sprintf(`SELECT id, created_at, report_id, data FROM %q WHERE report_id = $1 ORDER BY created_at DESC LIMIT 1`, table)
		var scanErr error
		row, scanErr = r.scanRow(r.db.QueryRowContext(ctx, query, reportID))
		return scanErr
	})
	if err != nil {
		return nil, r.mapError(ctx, "GetByReportID", err)
	}
	return row, nil
}

// GetLatest fetches the single most recently created result row.
func (r *implRepository) GetLatest(ctx context.Context) (*model.ResultRow, error) {
	var row *model.ResultRow
	err := r.prober.Do(ctx, func(ctx context.Context, table string) error {
		query := fmt.Sprintf(`SELECT id, created_at, report_id, data FROM %q ORDER BY created_at DESC LIMIT 1`, table)
		var scanErr error
		row, scanErr = r.scanRow(r.db.QueryRowContext(ctx, query))
		return scanErr
	})
	if err != nil {
		return nil, r.mapError(ctx, "GetLatest", err)
	}
	return row, nil
}

// ListMetas lists stored results without payloads, newest first.
func (r *implRepository) ListMetas(ctx context.Context) ([]model.ReportMeta, error) {
	var metas []model.ReportMeta
	err := r.prober.Do(ctx, func(ctx context.Context, table string) error {
		query := fmt.Sprintf(`SELECT id, created_at, report_id FROM %q ORDER BY created_at DESC`, table)
		rows, queryErr := r.db.QueryContext(ctx, query)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()

		metas = metas[:0]
		for rows.Next() {
			var m model.ReportMeta
			var reportID sql.NullString
			if scanErr := rows.Scan(&m.ID, &m.CreatedAt, &reportID); scanErr != nil {
				return scanErr
			}
			m.ReportID = reportID.String
			metas = append(metas, m)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, r.mapError(ctx, "ListMetas", err)
	}
	return metas, nil
}

func (r *implRepository) scanRow(row *sql.Row) (*model.ResultRow, error) {
	var res model.ResultRow
	var reportID sql.NullString
	if err := row.Scan(&res.ID, &res.CreatedAt, &reportID, &res.Data); err != nil {
		return nil, err
	}
	res.ReportID = reportID.String
	return &res, nil
}

func (r *implRepository) mapError(ctx context.Context, op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, probe.ErrNoCandidate) {
		return repository.ErrResultNotFound
	}
	r.l.Errorf(ctx, "result.repository.postgre.%s: query failed: %v", op, err)
	return err
}

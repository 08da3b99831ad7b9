package postgre

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealflow-srv/internal/result/repository"
	"dealflow-srv/pkg/log"
)

func newTestRepo(t *testing.T) (repository.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return New(db, log.NewNop()), mock
}

func TestGetByPKFallsThroughTableVariants(t *testing.T) {
	repo, mock := newTestRepo(t)

	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, created_at, report_id, data FROM "results" WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnError(&pq.Error{Code: "42P01"})
	mock.ExpectQuery(`SELECT id, created_at, report_id, data FROM "Results" WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "report_id", "data"}).
			AddRow(int64(7), created, "rep-7", []byte(`{"insights":[]}`)))

	row, err := repo.GetByPK(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), row.ID)
	assert.Equal(t, "rep-7", row.ReportID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByPKCachesResolvedVariant(t *testing.T) {
	repo, mock := newTestRepo(t)

	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	rows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "created_at", "report_id", "data"}).
			AddRow(int64(1), created, "", []byte(`{}`))
	}

	mock.ExpectQuery(`FROM "results" WHERE id`).WillReturnError(&pq.Error{Code: "42P01"})
	mock.ExpectQuery(`FROM "Results" WHERE id`).WillReturnRows(rows())
	// Second call goes straight to the resolved variant.
	mock.ExpectQuery(`FROM "Results" WHERE id`).WillReturnRows(rows())

	_, err := repo.GetByPK(context.Background(), 1)
	require.NoError(t, err)
	_, err = repo.GetByPK(context.Background(), 1)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByPKNotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`FROM "results" WHERE id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "report_id", "data"}))

	_, err := repo.GetByPK(context.Background(), 99)
	assert.ErrorIs(t, err, repository.ErrResultNotFound)
}

func TestGetByPKAllVariantsMissing(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`FROM "results" WHERE id`).WillReturnError(&pq.Error{Code: "42P01"})
	mock.ExpectQuery(`FROM "Results" WHERE id`).WillReturnError(&pq.Error{Code: "42P01"})

	_, err := repo.GetByPK(context.Background(), 1)
	assert.ErrorIs(t, err, repository.ErrResultNotFound)
}

func TestGetByPKRealErrorPropagates(t *testing.T) {
	repo, mock := newTestRepo(t)

	errBoom := errors.New("connection reset")
	mock.ExpectQuery(`FROM "results" WHERE id`).WillReturnError(errBoom)

	_, err := repo.GetByPK(context.Background(), 1)
	assert.ErrorIs(t, err, errBoom)
}

func TestListMetasNewestFirst(t *testing.T) {
	repo, mock := newTestRepo(t)

	newer := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	older := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, created_at, report_id FROM "results" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "report_id"}).
			AddRow(int64(2), newer, "rep-2").
			AddRow(int64(1), older, nil))

	metas, err := repo.ListMetas(context.Background())
	require.NoError(t, err)
	require.Len(t, metas, 2)
	assert.Equal(t, int64(2), metas[0].ID)
	assert.Equal(t, "rep-2", metas[0].ReportID)
	assert.Empty(t, metas[1].ReportID)
}

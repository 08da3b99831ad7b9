package postgre

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealflow-srv/internal/model"
	"dealflow-srv/internal/preference/repository"
	"dealflow-srv/pkg/log"
)

func newTestRepo(t *testing.T) (repository.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return New(db, log.NewNop()), mock
}

func doc() model.PreferenceDoc {
	return model.PreferenceDoc{
		AnalysisAgents: model.AnalysisAgents{MarketFit: true, Financials: true, Tech: true},
		General: model.GeneralPreferences{
			InterfaceLanguage: "German",
			TargetRiskProfile: "High",
		},
	}
}

func TestLoadLatestSplitsColumns(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT personal_settings, analyse_settings FROM "settings" ORDER BY created_at DESC LIMIT 1`).
		WillReturnRows(sqlmock.NewRows([]string{"personal_settings", "analyse_settings"}).
			AddRow([]byte(`{"interface_language":"French","target_risk_profile":"Low"}`),
				[]byte(`{"market_fit":true,"legal":true}`)))

	got, err := repo.LoadLatest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "French", got.General.InterfaceLanguage)
	assert.Equal(t, "Low", got.General.TargetRiskProfile)
	assert.True(t, got.AnalysisAgents.MarketFit)
	assert.True(t, got.AnalysisAgents.Legal)
	assert.False(t, got.AnalysisAgents.Financials)
}

func TestLoadLatestTableVariantFallthrough(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`FROM "settings" ORDER BY`).WillReturnError(&pq.Error{Code: "42P01"})
	mock.ExpectQuery(`FROM "Settings" ORDER BY`).
		WillReturnRows(sqlmock.NewRows([]string{"personal_settings", "analyse_settings"}).
			AddRow(nil, nil))

	got, err := repo.LoadLatest(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadLatestEmptyTable(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`FROM "settings" ORDER BY`).
		WillReturnRows(sqlmock.NewRows([]string{"personal_settings", "analyse_settings"}))

	_, err := repo.LoadLatest(context.Background())
	assert.ErrorIs(t, err, repository.ErrSettingsNotFound)
}

func TestSaveUpdatesMostRecentRow(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(`UPDATE "settings" SET personal_settings`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), doc())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveInsertsWhenTableEmpty(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(`UPDATE "settings" SET personal_settings`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "settings"`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Save(context.Background(), doc())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveMissingTableTriesNextVariant(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(`UPDATE "settings" SET personal_settings`).
		WillReturnError(&pq.Error{Code: "42P01"})
	mock.ExpectExec(`UPDATE "Settings" SET personal_settings`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), doc())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

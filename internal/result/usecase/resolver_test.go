package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealflow-srv/internal/model"
	"dealflow-srv/internal/result"
	"dealflow-srv/internal/result/repository"
	"dealflow-srv/pkg/enginesrv"
	"dealflow-srv/pkg/log"
)

type stubRepo struct {
	byPK       *model.ResultRow
	byReportID *model.ResultRow
	latest     *model.ResultRow
	metas      []model.ReportMeta
	err        error

	calls []string
}

func (s *stubRepo) GetByPK(_ context.Context, _ int64) (*model.ResultRow, error) {
	s.calls = append(s.calls, "pk")
	if s.byPK == nil {
		return nil, firstErr(s.err, repository.ErrResultNotFound)
	}
	return s.byPK, nil
}

func (s *stubRepo) GetByReportID(_ context.Context, _ string) (*model.ResultRow, error) {
	s.calls = append(s.calls, "report_id")
	if s.byReportID == nil {
		return nil, firstErr(s.err, repository.ErrResultNotFound)
	}
	return s.byReportID, nil
}

func (s *stubRepo) GetLatest(_ context.Context) (*model.ResultRow, error) {
	s.calls = append(s.calls, "latest")
	if s.latest == nil {
		return nil, firstErr(s.err, repository.ErrResultNotFound)
	}
	return s.latest, nil
}

func (s *stubRepo) ListMetas(_ context.Context) ([]model.ReportMeta, error) {
	return s.metas, s.err
}

func firstErr(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

type stubEngine struct {
	results json.RawMessage
	err     error
}

func (s *stubEngine) StartJob(context.Context, enginesrv.StartRequest) (*enginesrv.StartResponse, error) {
	return nil, nil
}
func (s *stubEngine) GetStatus(context.Context, string) ([]enginesrv.AgentStatus, error) {
	return nil, nil
}
func (s *stubEngine) GetResults(context.Context, string) (json.RawMessage, error) {
	return s.results, s.err
}
func (s *stubEngine) SaveSettings(context.Context, json.RawMessage) error { return nil }
func (s *stubEngine) ReportPDFURL(string) string                          { return "" }

func row(data string) *model.ResultRow {
	return &model.ResultRow{ID: 1, CreatedAt: time.Now(), Data: json.RawMessage(data)}
}

func TestResolveStoreByPK(t *testing.T) {
	repo := &stubRepo{byPK: row(`{"mainKpi":{"label":"pk hit"}}`)}
	uc := New(repo, nil, log.NewNop())

	res, err := uc.Resolve(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "pk hit", res.MainKPI.Label)
	assert.Equal(t, []string{"pk"}, repo.calls)
}

func TestResolveNonNumericIDSkipsPK(t *testing.T) {
	repo := &stubRepo{byReportID: row(`{"mainKpi":{"label":"by report id"}}`)}
	uc := New(repo, nil, log.NewNop())

	res, err := uc.Resolve(context.Background(), "rep-abc")
	require.NoError(t, err)
	assert.Equal(t, "by report id", res.MainKPI.Label)
	assert.Equal(t, []string{"report_id"}, repo.calls)
}

func TestResolveFallsBackToLatest(t *testing.T) {
	repo := &stubRepo{latest: row(`{"mainKpi":{"label":"latest"}}`)}
	uc := New(repo, nil, log.NewNop())

	res, err := uc.Resolve(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "latest", res.MainKPI.Label)
	assert.Equal(t, []string{"pk", "report_id", "latest"}, repo.calls)
}

func TestResolveStoreEmptyFallsToFixture(t *testing.T) {
	repo := &stubRepo{}
	uc := New(repo, nil, log.NewNop())

	res, err := uc.Resolve(context.Background(), "42")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Insights)
	assert.Equal(t, demoResults().MainKPI.Label, res.MainKPI.Label)
}

func TestResolveStoreErrorsAreSwallowed(t *testing.T) {
	repo := &stubRepo{err: errors.New("connection refused")}
	uc := New(repo, nil, log.NewNop())

	res, err := uc.Resolve(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, demoResults().MainKPI.Label, res.MainKPI.Label)
}

func TestResolveEngineAuthoritative(t *testing.T) {
	engine := &stubEngine{results: json.RawMessage(`{"mainKpi":{"label":"from engine"}}`)}
	uc := New(nil, engine, log.NewNop())

	res, err := uc.Resolve(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "from engine", res.MainKPI.Label)
}

func TestResolveEngineFailurePropagates(t *testing.T) {
	engine := &stubEngine{err: errors.New("unexpected status code: 503")}
	uc := New(nil, engine, log.NewNop())

	_, err := uc.Resolve(context.Background(), "abc")
	assert.ErrorIs(t, err, result.ErrEngineFailed)
}

func TestResolveNothingConfiguredServesFixture(t *testing.T) {
	uc := New(nil, nil, log.NewNop())

	res, err := uc.Resolve(context.Background(), "anything")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Insights)
	assert.NotEmpty(t, res.GreenFlags)
}

func TestListReportsDemoMode(t *testing.T) {
	uc := New(nil, nil, log.NewNop())

	metas, err := uc.ListReports(context.Background())
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, "demo", metas[0].ReportID)
}

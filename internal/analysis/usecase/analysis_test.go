package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealflow-srv/internal/analysis"
	"dealflow-srv/internal/model"
	"dealflow-srv/pkg/enginesrv"
	"dealflow-srv/pkg/log"
	"dealflow-srv/pkg/minio"
)

type stubStorage struct {
	minio.MinIO

	mu       sync.Mutex
	uploaded []string
	deleted  []string
	failFor  string
}

func (s *stubStorage) UploadFile(_ context.Context, req *minio.UploadRequest) (*minio.FileInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failFor != "" && req.OriginalName == s.failFor {
		return nil, errors.New("bucket unavailable")
	}
	s.uploaded = append(s.uploaded, req.ObjectName)
	return &minio.FileInfo{ObjectName: req.ObjectName, BucketName: req.BucketName}, nil
}

func (s *stubStorage) FileExists(_ context.Context, _, objectName string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.uploaded {
		if o == objectName {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubStorage) DeleteFile(_ context.Context, _, objectName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, objectName)
	return nil
}

type stubEngine struct {
	startReq  *enginesrv.StartRequest
	startResp *enginesrv.StartResponse
	startErr  error

	mu          sync.Mutex
	statusCalls int
	statusResp  []enginesrv.AgentStatus
	statusErr   error
}

func (e *stubEngine) StartJob(_ context.Context, req enginesrv.StartRequest) (*enginesrv.StartResponse, error) {
	e.startReq = &req
	return e.startResp, e.startErr
}

func (e *stubEngine) GetStatus(context.Context, string) ([]enginesrv.AgentStatus, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.statusCalls++
	return e.statusResp, e.statusErr
}

func (e *stubEngine) statusCallCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.statusCalls
}

func (e *stubEngine) GetResults(context.Context, string) (json.RawMessage, error) {
	return nil, errors.New("not implemented")
}

func (e *stubEngine) SaveSettings(context.Context, json.RawMessage) error { return nil }

func (e *stubEngine) ReportPDFURL(jobID string) string {
	return "https://engine.local/report/" + jobID + ".pdf"
}

type stubProducer struct {
	mu        sync.Mutex
	published [][]byte
}

func (p *stubProducer) Publish(_, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, value)
	return nil
}

func (p *stubProducer) Close() error       { return nil }
func (p *stubProducer) HealthCheck() error { return nil }

func (p *stubProducer) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.published)
}

func newDemoUseCase(repo *memJobRepo, storage *stubStorage, producer *stubProducer) analysis.UseCase {
	return New(repo, storage, nil, producer, log.NewNop(), Config{Bucket: "deals-test"})
}

func TestStartDemoUploadsAndQueuesRoster(t *testing.T) {
	repo := newMemJobRepo()
	storage := &stubStorage{}
	uc := newDemoUseCase(repo, storage, nil)

	out, err := uc.Start(context.Background(), analysis.StartInput{
		Files: []analysis.UploadFile{
			{Name: "Pitch Deck (Final).pdf", Size: 1024, ContentType: "application/pdf", Reader: strings.NewReader("x")},
		},
		Preferences: json.RawMessage(`{"agents":{"marketFit":true,"financials":true,"tech":false,"legal":true}}`),
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.JobID)
	assert.Empty(t, out.Errors)

	require.Len(t, storage.uploaded, 1)
	assert.Equal(t, "deals/pitch-deck-final.pdf", storage.uploaded[0])

	names := make([]string, 0, len(out.Agents))
	for _, a := range out.Agents {
		assert.Equal(t, model.AgentQueued, a.Status)
		assert.Equal(t, 0, a.Progress)
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"Market Fit", "Financials", "Legal"}, names)

	stored, err := repo.GetAgents(context.Background(), out.JobID)
	require.NoError(t, err)
	assert.Equal(t, names, stored)
}

func TestStartDemoDefaultRoster(t *testing.T) {
	uc := newDemoUseCase(newMemJobRepo(), &stubStorage{}, nil)

	out, err := uc.Start(context.Background(), analysis.StartInput{})
	require.NoError(t, err)

	names := make([]string, 0, len(out.Agents))
	for _, a := range out.Agents {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"Market Fit", "Financials", "Tech"}, names)
}

func TestStartCollectsUploadErrors(t *testing.T) {
	storage := &stubStorage{failFor: "broken.pdf"}
	uc := New(newMemJobRepo(), storage, nil, nil, log.NewNop(), Config{
		Bucket:      "deals-test",
		MaxFileSize: 10,
	})

	out, err := uc.Start(context.Background(), analysis.StartInput{
		Files: []analysis.UploadFile{
			{Name: "broken.pdf", Size: 5, Reader: strings.NewReader("x")},
			{Name: "huge.pdf", Size: 200, Reader: strings.NewReader("x")},
			{Name: "ok.pdf", Size: 5, Reader: strings.NewReader("x")},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.JobID)

	require.Len(t, out.Errors, 2)
	assert.Equal(t, "broken.pdf", out.Errors[0].FileName)
	assert.Equal(t, "huge.pdf", out.Errors[1].FileName)
	assert.Contains(t, out.Errors[1].Message, "byte limit")

	require.Len(t, storage.uploaded, 1)
	assert.Equal(t, "deals/ok.pdf", storage.uploaded[0])
}

func TestStartEngineForwardsDocumentPaths(t *testing.T) {
	repo := newMemJobRepo()
	storage := &stubStorage{}
	engine := &stubEngine{
		startResp: &enginesrv.StartResponse{
			JobID: "eng-42",
			Agents: []enginesrv.AgentStatus{
				{Name: "Market Fit", Status: "Queued"},
				{Name: "Financials", Status: "Queued"},
			},
		},
	}
	uc := New(repo, storage, engine, nil, log.NewNop(), Config{Bucket: "deals-test"})

	out, err := uc.Start(context.Background(), analysis.StartInput{
		Files:   []analysis.UploadFile{{Name: "deck.pdf", Size: 10, Reader: strings.NewReader("x")}},
		Context: "Series A SaaS",
	})
	require.NoError(t, err)
	assert.Equal(t, "eng-42", out.JobID)

	require.NotNil(t, engine.startReq)
	assert.Equal(t, "Series A SaaS", engine.startReq.Context)
	assert.Equal(t, []string{"deals/deck.pdf"}, engine.startReq.Documents)

	stored, err := repo.GetAgents(context.Background(), "eng-42")
	require.NoError(t, err)
	assert.Equal(t, []string{"Market Fit", "Financials"}, stored)
}

func TestStartEngineFailure(t *testing.T) {
	engine := &stubEngine{startErr: errors.New("connection refused")}
	uc := New(newMemJobRepo(), &stubStorage{}, engine, nil, log.NewNop(), Config{Bucket: "deals-test"})

	_, err := uc.Start(context.Background(), analysis.StartInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, analysis.ErrEngineFailed)
}

func TestStartEngineFailureRemovesUploads(t *testing.T) {
	storage := &stubStorage{}
	engine := &stubEngine{startErr: errors.New("connection refused")}
	uc := New(newMemJobRepo(), storage, engine, nil, log.NewNop(), Config{Bucket: "deals-test"})

	_, err := uc.Start(context.Background(), analysis.StartInput{
		Files: []analysis.UploadFile{{Name: "deck.pdf", Size: 10, Reader: strings.NewReader("x")}},
	})
	require.ErrorIs(t, err, analysis.ErrEngineFailed)
	assert.Equal(t, []string{"deals/deck.pdf"}, storage.deleted)
}

func TestUploadSuffixesOnNameCollision(t *testing.T) {
	storage := &stubStorage{}
	uc := newDemoUseCase(newMemJobRepo(), storage, nil)

	for i := 0; i < 3; i++ {
		_, err := uc.Start(context.Background(), analysis.StartInput{
			Files: []analysis.UploadFile{{Name: "deck.pdf", Size: 10, Reader: strings.NewReader("x")}},
		})
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"deals/deck.pdf", "deals/deck-1.pdf", "deals/deck-2.pdf"}, storage.uploaded)
}

func TestRestartedWatcherKeepsPolling(t *testing.T) {
	producer := &stubProducer{}
	engine := &stubEngine{
		statusResp: []enginesrv.AgentStatus{{Name: "Tech", Status: "Done", Progress: 100}},
	}
	uc := New(newMemJobRepo(), &stubStorage{}, engine, producer, log.NewNop(), Config{Bucket: "deals-test"})

	impl := uc.(*implUseCase)
	impl.watchEvery = 5 * time.Millisecond

	impl.startWatcher("eng-42")
	impl.startWatcher("eng-42")

	require.Eventually(t, func() bool { return producer.count() == 1 }, time.Second, 5*time.Millisecond,
		"surviving watcher should keep polling and publish the completion")
	assert.GreaterOrEqual(t, engine.statusCallCount(), 1)

	require.Eventually(t, func() bool {
		impl.watcherMu.Lock()
		defer impl.watcherMu.Unlock()
		return len(impl.watchers) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestStatusRequiresJobID(t *testing.T) {
	uc := newDemoUseCase(newMemJobRepo(), &stubStorage{}, nil)

	_, err := uc.Status(context.Background(), "")
	assert.ErrorIs(t, err, analysis.ErrNoJobID)
}

func TestStatusEngineMapsAgents(t *testing.T) {
	engine := &stubEngine{
		statusResp: []enginesrv.AgentStatus{
			{Name: "Tech", Status: "Running", Progress: 40, Note: "Reviewing architecture", UpdatedAt: "2026-03-14T09:00:00Z"},
		},
	}
	uc := New(newMemJobRepo(), &stubStorage{}, engine, nil, log.NewNop(), Config{Bucket: "deals-test"})

	agents, err := uc.Status(context.Background(), "eng-42")
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, model.AgentRunning, agents[0].Status)
	assert.Equal(t, 40, agents[0].Progress)
	require.NotNil(t, agents[0].UpdatedAt)
	assert.Equal(t, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC), agents[0].UpdatedAt.UTC())
}

func TestStatusDemoPublishesCompletionOnce(t *testing.T) {
	repo := newMemJobRepo()
	producer := &stubProducer{}
	uc := newDemoUseCase(repo, &stubStorage{}, producer)

	out, err := uc.Start(context.Background(), analysis.StartInput{})
	require.NoError(t, err)

	impl := uc.(*implUseCase)
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	repo.mu.Lock()
	repo.startedAt[out.JobID] = base
	repo.mu.Unlock()
	impl.sim.now = func() time.Time { return base.Add(30 * time.Second) }

	agents, err := uc.Status(context.Background(), out.JobID)
	require.NoError(t, err)
	assert.True(t, model.Done(agents))
	assert.Equal(t, 1, producer.count())

	_, err = uc.Status(context.Background(), out.JobID)
	require.NoError(t, err)
	assert.Equal(t, 1, producer.count())

	var event struct {
		JobID  string `json:"job_id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(producer.published[0], &event))
	assert.Equal(t, out.JobID, event.JobID)
	assert.Equal(t, "completed", event.Status)
}

func TestReportPDFURL(t *testing.T) {
	demo := newDemoUseCase(newMemJobRepo(), &stubStorage{}, nil)
	assert.Equal(t, "/demo/report.pdf", demo.ReportPDFURL("any"))

	engine := &stubEngine{}
	withEngine := New(newMemJobRepo(), &stubStorage{}, engine, nil, log.NewNop(), Config{Bucket: "deals-test"})
	assert.Equal(t, "https://engine.local/report/eng-42.pdf", withEngine.ReportPDFURL("eng-42"))
}

package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"dealflow-srv/internal/analysis"
	"dealflow-srv/internal/analysis/repository"
	"dealflow-srv/internal/model"
	"dealflow-srv/pkg/enginesrv"
	"dealflow-srv/pkg/minio"
	"dealflow-srv/pkg/util"
)

const demoReportURL = "/demo/report.pdf"

// defaultRoster runs when preferences carry no agent flags.
var defaultRoster = []string{"Market Fit", "Financials", "Tech"}

// Start uploads the submitted documents and dispatches a new analysis job,
// to the engine when one is configured, otherwise simulated locally.
// Per-file upload failures collect into the output and never block the
// start.
func (uc *implUseCase) Start(ctx context.Context, input analysis.StartInput) (analysis.StartOutput, error) {
	paths, uploadErrs := uc.uploadFiles(ctx, input.Files)

	if uc.engine != nil {
		resp, err := uc.engine.StartJob(ctx, enginesrv.StartRequest{
			Context:     input.Context,
			Preferences: input.Preferences,
			Documents:   paths,
		})
		if err != nil {
			uc.l.Errorf(ctx, "analysis.usecase.Start: engine StartJob failed: %v", err)
			uc.removeUploads(ctx, paths)
			return analysis.StartOutput{}, fmt.Errorf("%w: %v", analysis.ErrEngineFailed, err)
		}

		agents := fromEngineAgents(resp.Agents)
		uc.rememberRoster(ctx, resp.JobID, agentNames(agents))
		uc.startWatcher(resp.JobID)

		return analysis.StartOutput{JobID: resp.JobID, Agents: agents, Errors: uploadErrs}, nil
	}

	jobID := newJobID()
	roster := rosterFromPreferences(input.Preferences)

	uc.rememberRoster(ctx, jobID, roster)
	if _, err := uc.jobs.EnsureStartedAt(ctx, jobID, uc.sim.now()); err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.Start: EnsureStartedAt failed: %v", err)
	}

	agents := make([]model.AgentStatus, 0, len(roster))
	for _, name := range roster {
		agents = append(agents, model.AgentStatus{Name: name, Status: model.AgentQueued, Progress: 0})
	}

	return analysis.StartOutput{JobID: jobID, Agents: agents, Errors: uploadErrs}, nil
}

// Status snapshots a job's per-agent progress: from the engine when one is
// configured, otherwise from the local simulator. The first demo snapshot
// that observes every agent done publishes the one-time completion event.
func (uc *implUseCase) Status(ctx context.Context, jobID string) ([]model.AgentStatus, error) {
	if jobID == "" {
		return nil, analysis.ErrNoJobID
	}

	if uc.engine != nil {
		engineAgents, err := uc.engine.GetStatus(ctx, jobID)
		if err != nil {
			uc.l.Errorf(ctx, "analysis.usecase.Status: engine GetStatus failed: %v", err)
			return nil, fmt.Errorf("%w: %v", analysis.ErrEngineFailed, err)
		}
		return fromEngineAgents(engineAgents), nil
	}

	roster, err := uc.jobs.GetAgents(ctx, jobID)
	if err != nil || len(roster) == 0 {
		if err != nil && !errors.Is(err, repository.ErrJobNotFound) {
			uc.l.Warnf(ctx, "analysis.usecase.Status: GetAgents failed: %v", err)
		}
		roster = defaultRoster
	}

	agents, err := uc.sim.status(ctx, jobID, roster)
	if err != nil {
		return nil, err
	}

	if model.Done(agents) {
		uc.publishCompletion(ctx, jobID)
	}

	return agents, nil
}

// ReportPDFURL returns where the job's PDF export lives.
func (uc *implUseCase) ReportPDFURL(jobID string) string {
	if uc.engine != nil {
		return uc.engine.ReportPDFURL(jobID)
	}
	return demoReportURL
}

func (uc *implUseCase) uploadFiles(ctx context.Context, files []analysis.UploadFile) ([]string, []model.UploadError) {
	paths := make([]string, 0, len(files))
	uploadErrs := make([]model.UploadError, 0)

	for _, f := range files {
		if f.Size > uc.config.MaxFileSize {
			uploadErrs = append(uploadErrs, model.UploadError{
				FileName: f.Name,
				Message:  fmt.Sprintf("file exceeds the %d byte limit", uc.config.MaxFileSize),
			})
			continue
		}

		objectName := uc.objectNameFor(ctx, f.Name)
		_, err := uc.storage.UploadFile(ctx, &minio.UploadRequest{
			BucketName:   uc.config.Bucket,
			ObjectName:   objectName,
			OriginalName: f.Name,
			Reader:       f.Reader,
			Size:         f.Size,
			ContentType:  f.ContentType,
		})
		if err != nil {
			uc.l.Errorf(ctx, "analysis.usecase.uploadFiles: upload %s failed: %v", f.Name, err)
			uploadErrs = append(uploadErrs, model.UploadError{FileName: f.Name, Message: err.Error()})
			continue
		}
		paths = append(paths, objectName)
	}

	return paths, uploadErrs
}

// objectNameFor slugs the file name into an object path, suffixing it when
// an earlier upload already claimed the slug so documents never overwrite
// each other.
func (uc *implUseCase) objectNameFor(ctx context.Context, name string) string {
	slug := util.Slugify(name)
	objectName := uc.config.UploadPrefix + "/" + slug

	exists, err := uc.storage.FileExists(ctx, uc.config.Bucket, objectName)
	if err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.objectNameFor: FileExists failed: %v", err)
		return objectName
	}
	if !exists {
		return objectName
	}

	ext := filepath.Ext(slug)
	base := strings.TrimSuffix(slug, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s/%s-%d%s", uc.config.UploadPrefix, base, i, ext)
		exists, err := uc.storage.FileExists(ctx, uc.config.Bucket, candidate)
		if err != nil || !exists {
			return candidate
		}
	}
}

// removeUploads deletes documents whose job never started. Best effort.
func (uc *implUseCase) removeUploads(ctx context.Context, paths []string) {
	for _, p := range paths {
		if err := uc.storage.DeleteFile(ctx, uc.config.Bucket, p); err != nil {
			uc.l.Warnf(ctx, "analysis.usecase.removeUploads: delete %s failed: %v", p, err)
		}
	}
}

func (uc *implUseCase) rememberRoster(ctx context.Context, jobID string, roster []string) {
	if err := uc.jobs.SetAgents(ctx, jobID, roster); err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.rememberRoster: SetAgents failed: %v", err)
	}
}

// rosterFromPreferences derives which agents run from the client preference
// document's agent flags.
func rosterFromPreferences(prefs json.RawMessage) []string {
	if len(prefs) == 0 {
		return defaultRoster
	}

	var doc struct {
		Agents *struct {
			MarketFit  bool `json:"marketFit"`
			Financials bool `json:"financials"`
			Tech       bool `json:"tech"`
			Legal      bool `json:"legal"`
		} `json:"agents"`
	}
	if err := json.Unmarshal(prefs, &doc); err != nil || doc.Agents == nil {
		return defaultRoster
	}

	roster := make([]string, 0, 4)
	if doc.Agents.MarketFit {
		roster = append(roster, "Market Fit")
	}
	if doc.Agents.Financials {
		roster = append(roster, "Financials")
	}
	if doc.Agents.Tech {
		roster = append(roster, "Tech")
	}
	if doc.Agents.Legal {
		roster = append(roster, "Legal")
	}
	if len(roster) == 0 {
		return defaultRoster
	}
	return roster
}

// newJobID generates the local job token: random base-36, like the ones
// demo clients have always produced.
func newJobID() string {
	return strconv.FormatInt(rand.Int63(), 36)
}

func fromEngineAgents(in []enginesrv.AgentStatus) []model.AgentStatus {
	out := make([]model.AgentStatus, 0, len(in))
	for _, a := range in {
		st := model.AgentStatus{
			Name:     a.Name,
			Status:   model.AgentState(a.Status),
			Progress: a.Progress,
			Note:     a.Note,
		}
		if t, err := time.Parse(time.RFC3339, a.UpdatedAt); err == nil {
			st.UpdatedAt = &t
		}
		out = append(out, st)
	}
	return out
}

func agentNames(agents []model.AgentStatus) []string {
	names := make([]string, 0, len(agents))
	for _, a := range agents {
		names = append(names, a.Name)
	}
	return names
}

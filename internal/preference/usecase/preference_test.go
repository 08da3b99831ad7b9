package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealflow-srv/internal/model"
	"dealflow-srv/internal/preference/repository"
	"dealflow-srv/pkg/log"
)

type stubSettingsRepo struct {
	doc     *model.PreferenceDoc
	loadErr error
	saveErr error
	saved   []model.PreferenceDoc
}

func (s *stubSettingsRepo) LoadLatest(_ context.Context) (*model.PreferenceDoc, error) {
	return s.doc, s.loadErr
}

func (s *stubSettingsRepo) Save(_ context.Context, doc model.PreferenceDoc) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, doc)
	return nil
}

type stubCache struct {
	doc    *model.PreferenceDoc
	getErr error
	setErr error
}

func (s *stubCache) Get(_ context.Context) (*model.PreferenceDoc, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.doc == nil {
		return nil, repository.ErrSettingsNotFound
	}
	return s.doc, nil
}

func (s *stubCache) Set(_ context.Context, doc model.PreferenceDoc) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.doc = &doc
	return nil
}

func germanDoc() *model.PreferenceDoc {
	return &model.PreferenceDoc{
		AnalysisAgents: model.AnalysisAgents{MarketFit: true, Legal: true},
		General: model.GeneralPreferences{
			InterfaceLanguage: "German",
			TargetRiskProfile: "High",
		},
	}
}

func TestLoadFromStore(t *testing.T) {
	repo := &stubSettingsRepo{doc: germanDoc()}
	uc := New(repo, &stubCache{}, nil, log.NewNop())

	p, err := uc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "de", p.Language)
	assert.Equal(t, "high", p.RiskProfile)
	assert.True(t, p.Agents.Legal)
}

func TestLoadStoreMissFallsToCache(t *testing.T) {
	repo := &stubSettingsRepo{loadErr: repository.ErrSettingsNotFound}
	cache := &stubCache{doc: germanDoc()}
	uc := New(repo, cache, nil, log.NewNop())

	p, err := uc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "de", p.Language)
}

func TestLoadNothingAnywhereGivesDefaults(t *testing.T) {
	uc := New(nil, &stubCache{}, nil, log.NewNop())

	p, err := uc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPrefs(), p)
}

func TestSaveMirrorsToCache(t *testing.T) {
	repo := &stubSettingsRepo{}
	cache := &stubCache{}
	uc := New(repo, cache, nil, log.NewNop())

	out, err := uc.Save(context.Background(), model.Prefs{Language: "fr", RiskProfile: "low"})
	require.NoError(t, err)
	assert.True(t, out.Success)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, "French", repo.saved[0].General.InterfaceLanguage)
	require.NotNil(t, cache.doc)
	assert.Equal(t, "French", cache.doc.General.InterfaceLanguage)
}

func TestSaveStoreFailureStillMirrorsLocally(t *testing.T) {
	repo := &stubSettingsRepo{saveErr: errors.New("disk full")}
	cache := &stubCache{}
	uc := New(repo, cache, nil, log.NewNop())

	out, err := uc.Save(context.Background(), model.DefaultPrefs())
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.NotEmpty(t, out.Message)
	assert.NotNil(t, cache.doc, "failed saves still mirror locally")
}

func TestSaveDemoModeSucceedsWithoutPersisting(t *testing.T) {
	cache := &stubCache{}
	uc := New(nil, cache, nil, log.NewNop())

	out, err := uc.Save(context.Background(), model.DefaultPrefs())
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Contains(t, out.Message, "Demo")
	assert.NotNil(t, cache.doc)
}

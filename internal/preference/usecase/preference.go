package usecase

import (
	"context"
	"encoding/json"

	"dealflow-srv/internal/model"
	"dealflow-srv/internal/preference"
)

// Load returns the current preferences: the store's most recent row when
// available, otherwise the local cache mirror, otherwise the defaults. Load
// never fails; any miss just moves down the chain.
func (uc *implUseCase) Load(ctx context.Context) (model.Prefs, error) {
	if uc.repo != nil {
		doc, err := uc.repo.LoadLatest(ctx)
		if err == nil && doc != nil {
			return normalize(*doc), nil
		}
		uc.l.Warnf(ctx, "preference.usecase.Load: store miss: %v", err)
	}

	doc, err := uc.cache.Get(ctx)
	if err == nil && doc != nil {
		return normalize(*doc), nil
	}

	return model.DefaultPrefs(), nil
}

// Save persists preferences to whichever collaborator is configured and
// always mirrors the document to the local cache, even when the durable
// save fails, so the user's choices survive locally.
func (uc *implUseCase) Save(ctx context.Context, prefs model.Prefs) (preference.SaveOutput, error) {
	doc := denormalize(prefs)

	saveErr := uc.persist(ctx, doc)

	if err := uc.cache.Set(ctx, doc); err != nil {
		uc.l.Errorf(ctx, "preference.usecase.Save: cache mirror failed: %v", err)
	}

	if saveErr != nil {
		uc.l.Errorf(ctx, "preference.usecase.Save: durable save failed: %v", saveErr)
		return preference.SaveOutput{
			Success: false,
			Message: "Settings could not be saved remotely; kept locally.",
		}, nil
	}

	if uc.repo == nil && uc.engine == nil {
		return preference.SaveOutput{
			Success: true,
			Message: "Demo mode: settings apply to this session only.",
		}, nil
	}

	return preference.SaveOutput{Success: true}, nil
}

func (uc *implUseCase) persist(ctx context.Context, doc model.PreferenceDoc) error {
	if uc.repo != nil {
		return uc.repo.Save(ctx, doc)
	}

	if uc.engine != nil {
		raw, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		return uc.engine.SaveSettings(ctx, json.RawMessage(raw))
	}

	// Demo mode: nothing durable to write.
	return nil
}

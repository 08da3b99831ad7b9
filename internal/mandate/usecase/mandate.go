package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dealflow-srv/internal/mandate"
	"dealflow-srv/internal/mandate/repository"
)

const (
	slotFacts = "facts"
	slotSoft  = "soft"
)

// emptyDoc is what a profile looks like before onboarding has written one.
var emptyDoc = json.RawMessage(`{}`)

func (uc *implUseCase) GetFacts(ctx context.Context) (json.RawMessage, error) {
	return uc.get(ctx, slotFacts)
}

func (uc *implUseCase) PutFacts(ctx context.Context, doc json.RawMessage) error {
	return uc.put(ctx, slotFacts, doc)
}

func (uc *implUseCase) GetSoft(ctx context.Context) (json.RawMessage, error) {
	return uc.get(ctx, slotSoft)
}

func (uc *implUseCase) PutSoft(ctx context.Context, doc json.RawMessage) error {
	return uc.put(ctx, slotSoft, doc)
}

func (uc *implUseCase) get(ctx context.Context, slot string) (json.RawMessage, error) {
	doc, err := uc.repo.Get(ctx, slot)
	if err != nil {
		if errors.Is(err, repository.ErrMandateNotFound) {
			return emptyDoc, nil
		}
		uc.l.Errorf(ctx, "mandate.usecase.get: load %s failed: %v", slot, err)
		return nil, fmt.Errorf("%w: %v", mandate.ErrStoreFailed, err)
	}
	return doc, nil
}

func (uc *implUseCase) put(ctx context.Context, slot string, doc json.RawMessage) error {
	if !json.Valid(doc) {
		return mandate.ErrInvalidDocument
	}

	if err := uc.repo.Set(ctx, slot, doc); err != nil {
		uc.l.Errorf(ctx, "mandate.usecase.put: save %s failed: %v", slot, err)
		return fmt.Errorf("%w: %v", mandate.ErrStoreFailed, err)
	}
	return nil
}

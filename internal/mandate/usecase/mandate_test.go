package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealflow-srv/internal/mandate"
	"dealflow-srv/internal/mandate/repository"
	"dealflow-srv/pkg/log"
)

type stubMandateRepo struct {
	docs   map[string]json.RawMessage
	getErr error
	setErr error
}

func newStubMandateRepo() *stubMandateRepo {
	return &stubMandateRepo{docs: make(map[string]json.RawMessage)}
}

func (r *stubMandateRepo) Get(_ context.Context, slot string) (json.RawMessage, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	doc, ok := r.docs[slot]
	if !ok {
		return nil, repository.ErrMandateNotFound
	}
	return doc, nil
}

func (r *stubMandateRepo) Set(_ context.Context, slot string, doc json.RawMessage) error {
	if r.setErr != nil {
		return r.setErr
	}
	r.docs[slot] = doc
	return nil
}

func TestGetBeforeOnboarding(t *testing.T) {
	uc := New(newStubMandateRepo(), log.NewNop())

	doc, err := uc.GetFacts(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(doc))

	doc, err = uc.GetSoft(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(doc))
}

func TestPutThenGet(t *testing.T) {
	repo := newStubMandateRepo()
	uc := New(repo, log.NewNop())
	ctx := context.Background()

	facts := json.RawMessage(`{"fund":"Northwind","signals":{"team":5}}`)
	require.NoError(t, uc.PutFacts(ctx, facts))

	got, err := uc.GetFacts(ctx)
	require.NoError(t, err)
	assert.Equal(t, facts, got)

	// Facts and soft answers live in separate slots.
	soft, err := uc.GetSoft(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(soft))
}

func TestPutRejectsInvalidJSON(t *testing.T) {
	repo := newStubMandateRepo()
	uc := New(repo, log.NewNop())

	err := uc.PutFacts(context.Background(), json.RawMessage(`{"fund":`))
	assert.ErrorIs(t, err, mandate.ErrInvalidDocument)
	assert.Empty(t, repo.docs)
}

func TestStoreFailures(t *testing.T) {
	repo := newStubMandateRepo()
	repo.getErr = errors.New("connection reset")
	repo.setErr = errors.New("connection reset")
	uc := New(repo, log.NewNop())

	_, err := uc.GetSoft(context.Background())
	assert.ErrorIs(t, err, mandate.ErrStoreFailed)

	err = uc.PutSoft(context.Background(), json.RawMessage(`{}`))
	assert.ErrorIs(t, err, mandate.ErrStoreFailed)
}

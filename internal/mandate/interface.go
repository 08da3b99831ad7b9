package mandate

import (
	"context"
	"encoding/json"
)

// UseCase manages the investor's onboarding profile: the structured facts
// document and the free-form soft answers. Both are client-authored JSON
// persisted verbatim.
//
//go:generate mockery --name UseCase
type UseCase interface {
	GetFacts(ctx context.Context) (json.RawMessage, error)
	PutFacts(ctx context.Context, doc json.RawMessage) error
	GetSoft(ctx context.Context) (json.RawMessage, error)
	PutSoft(ctx context.Context, doc json.RawMessage) error
}

package repository

import (
	"context"
	"encoding/json"
)

// MandateRepository persists the onboarding documents in keyed slots,
// byte-for-byte as the client wrote them.
//
//go:generate mockery --name MandateRepository
type MandateRepository interface {
	Get(ctx context.Context, slot string) (json.RawMessage, error)
	Set(ctx context.Context, slot string, doc json.RawMessage) error
}

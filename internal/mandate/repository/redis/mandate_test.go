package redis

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealflow-srv/internal/mandate/repository"
	"dealflow-srv/pkg/log"
	pkgRedis "dealflow-srv/pkg/redis"
)

func newTestRepo(t *testing.T) repository.MandateRepository {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return New(pkgRedis.NewFromClient(client), log.NewNop())
}

func TestGetMissingSlot(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), "facts")
	assert.ErrorIs(t, err, repository.ErrMandateNotFound)
}

func TestRoundTripPreservesBytes(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Field order and whitespace must survive untouched.
	doc := json.RawMessage(`{"fund":"Northwind Capital",  "checkSize": {"min": 500000,"max":2000000},"signals":{"team":5,"market":3}}`)
	require.NoError(t, repo.Set(ctx, "facts", doc))

	got, err := repo.Get(ctx, "facts")
	require.NoError(t, err)
	assert.Equal(t, []byte(doc), []byte(got))
}

func TestSlotsAreIndependent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "facts", json.RawMessage(`{"fund":"A"}`)))
	require.NoError(t, repo.Set(ctx, "soft", json.RawMessage(`{"thesis":"contrarian"}`)))

	facts, err := repo.Get(ctx, "facts")
	require.NoError(t, err)
	assert.JSONEq(t, `{"fund":"A"}`, string(facts))

	soft, err := repo.Get(ctx, "soft")
	require.NoError(t, err)
	assert.JSONEq(t, `{"thesis":"contrarian"}`, string(soft))
}

func TestOverwriteReplacesDocument(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "soft", json.RawMessage(`{"v":1}`)))
	require.NoError(t, repo.Set(ctx, "soft", json.RawMessage(`{"v":2}`)))

	got, err := repo.Get(ctx, "soft")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(got))
}

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealflow-srv/internal/analysis/repository"
	"dealflow-srv/pkg/log"
	pkgRedis "dealflow-srv/pkg/redis"
)

func newTestRepo(t *testing.T) repository.JobRepository {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return New(pkgRedis.NewFromClient(client), log.NewNop())
}

func TestEnsureStartedAtWritesOnce(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	later := first.Add(30 * time.Second)

	got, err := repo.EnsureStartedAt(ctx, "job-1", first)
	require.NoError(t, err)
	assert.Equal(t, first.UnixMilli(), got.UnixMilli())

	// A later caller must observe the original start time.
	got, err = repo.EnsureStartedAt(ctx, "job-1", later)
	require.NoError(t, err)
	assert.Equal(t, first.UnixMilli(), got.UnixMilli())
}

func TestEnsureStartedAtIsPerJob(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	a := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	b := a.Add(time.Minute)

	gotA, err := repo.EnsureStartedAt(ctx, "job-a", a)
	require.NoError(t, err)
	gotB, err := repo.EnsureStartedAt(ctx, "job-b", b)
	require.NoError(t, err)

	assert.Equal(t, a.UnixMilli(), gotA.UnixMilli())
	assert.Equal(t, b.UnixMilli(), gotB.UnixMilli())
}

func TestAgentsRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	names := []string{"Market Fit", "Financials", "Tech"}
	require.NoError(t, repo.SetAgents(ctx, "job-1", names))

	got, err := repo.GetAgents(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, names, got)
}

func TestMarkCompletedWinsOnce(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	won, err := repo.MarkCompleted(ctx, "job-1")
	require.NoError(t, err)
	assert.True(t, won)

	won, err = repo.MarkCompleted(ctx, "job-1")
	require.NoError(t, err)
	assert.False(t, won)
}

func TestGetAgentsUnknownJob(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetAgents(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrJobNotFound)
}

package bindingrepo

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/libin99527/newapi-checkin/internal/domain"
	"github.com/libin99527/newapi-checkin/internal/sqlite"
)

func newTestRepo(t *testing.T) *Repository {
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "bindings.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Binding{}))
	return New(db)
}

func TestBind(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("first bind succeeds", func(t *testing.T) {
		repo := newTestRepo(t)
		err := repo.Bind(ctx, "caller-1", "alice", now)
		assert.NoError(t, err)

		binding, err := repo.FindByCaller(ctx, "caller-1")
		assert.NoError(t, err)
		assert.Equal(t, "alice", binding.AccountName)
		assert.Nil(t, binding.LastCheckin)
	})

	t.Run("second bind for same caller rejected", func(t *testing.T) {
		repo := newTestRepo(t)
		require.NoError(t, repo.Bind(ctx, "caller-1", "alice", now))

		err := repo.Bind(ctx, "caller-1", "bob", now)
		assert.ErrorIs(t, err, ErrCallerAlreadyBound)
	})

	t.Run("second caller for same account rejected", func(t *testing.T) {
		repo := newTestRepo(t)
		require.NoError(t, repo.Bind(ctx, "caller-1", "alice", now))

		err := repo.Bind(ctx, "caller-2", "alice", now)
		assert.ErrorIs(t, err, ErrAccountAlreadyBound)
	})
}

func TestBindConcurrentSameAccount(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Now()

	var g errgroup.Group
	results := make([]error, 8)
	for i := 0; i < 8; i++ {
		i := i
		g.Go(func() error {
			results[i] = repo.Bind(ctx, fmt.Sprintf("caller-%d", i), "alice", now)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	var ok int
	for _, err := range results {
		if err == nil {
			ok++
		} else {
			assert.ErrorIs(t, err, ErrAccountAlreadyBound)
		}
	}
	assert.Equal(t, 1, ok)
}

func TestFindByAccount(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Bind(ctx, "caller-1", "alice", time.Now()))

	binding, err := repo.FindByAccount(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, "caller-1", binding.CallerID)

	binding, err = repo.FindByAccount(ctx, "nobody")
	assert.NoError(t, err)
	assert.Nil(t, binding)
}

func TestMarkCheckin(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Bind(ctx, "caller-1", "alice", now))

	assert.NoError(t, repo.MarkCheckin(ctx, "caller-1", now))
	binding, err := repo.FindByCaller(ctx, "caller-1")
	assert.NoError(t, err)
	assert.NotNil(t, binding.LastCheckin)

	assert.ErrorIs(t, repo.MarkCheckin(ctx, "missing", now), ErrBindingNotFound)
}

func TestMarkCheckinIfNewDay(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	dayStart := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	yesterday := dayStart.Add(-time.Hour)
	now := dayStart.Add(time.Minute)

	require.NoError(t, repo.Bind(ctx, "caller-1", "alice", yesterday))

	// Never checked in: eligible.
	assert.NoError(t, repo.MarkCheckinIfNewDay(ctx, "caller-1", now, dayStart))

	// Marked this day already: compare-and-set misses.
	err := repo.MarkCheckinIfNewDay(ctx, "caller-1", now.Add(time.Minute), dayStart)
	assert.ErrorIs(t, err, ErrNotEligible)

	// Next civil day it hits again.
	nextStart := dayStart.Add(24 * time.Hour)
	assert.NoError(t, repo.MarkCheckinIfNewDay(ctx, "caller-1", nextStart.Add(time.Minute), nextStart))

	assert.ErrorIs(t, repo.MarkCheckinIfNewDay(ctx, "missing", now, dayStart), ErrBindingNotFound)
}

func TestMarkCheckinIfNewDayConcurrent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	dayStart := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	now := dayStart.Add(time.Minute)
	require.NoError(t, repo.Bind(ctx, "caller-1", "alice", dayStart.Add(-time.Hour)))

	var g errgroup.Group
	results := make([]error, 8)
	for i := 0; i < 8; i++ {
		i := i
		g.Go(func() error {
			results[i] = repo.MarkCheckinIfNewDay(ctx, "caller-1", now, dayStart)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	var ok int
	for _, err := range results {
		if err == nil {
			ok++
		} else {
			assert.ErrorIs(t, err, ErrNotEligible)
		}
	}
	assert.Equal(t, 1, ok)
}

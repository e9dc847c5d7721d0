package drawrepo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libin99527/newapi-checkin/internal/domain"
	"github.com/libin99527/newapi-checkin/internal/sqlite"
)

func newTestRepo(t *testing.T) *Repository {
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "draws.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.LotteryDraw{}))
	return New(db)
}

func TestRecordAndCountSince(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	dayStart := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	// Yesterday's draw must not count.
	require.NoError(t, repo.Record(ctx, "caller-1", "普通奖", 100000, dayStart.Add(-time.Hour)))
	// Boundary itself counts.
	require.NoError(t, repo.Record(ctx, "caller-1", "谢谢参与", 0, dayStart))
	require.NoError(t, repo.Record(ctx, "caller-1", "大奖", 500000, dayStart.Add(2*time.Hour)))
	// Another caller's draw never counts.
	require.NoError(t, repo.Record(ctx, "caller-2", "普通奖", 100000, dayStart.Add(time.Hour)))

	count, err := repo.CountSince(ctx, "caller-1", dayStart)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = repo.CountSince(ctx, "caller-1", dayStart.Add(-2*time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = repo.CountSince(ctx, "caller-3", dayStart)
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

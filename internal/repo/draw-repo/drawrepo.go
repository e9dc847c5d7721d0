package drawrepo

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/libin99527/newapi-checkin/internal/domain"
)

// Repository is the append-only lottery draw log. Rows are never updated or
// deleted; they are read back only as "draws so far today" counts.
type Repository struct {
	db *gorm.DB
	mu sync.Mutex
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Record(ctx context.Context, callerID, prizeName string, prizeQuota int64, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	draw := domain.LotteryDraw{
		CallerID:   callerID,
		PrizeName:  prizeName,
		PrizeQuota: prizeQuota,
		DrawnAt:    now,
	}
	if err := r.db.WithContext(ctx).Create(&draw).Error; err != nil {
		zap.L().Error("can't record lottery draw", zap.Error(err))
		return err
	}
	return nil
}

// CountSince counts the caller's draws with drawn_at at or after boundary,
// normally the start of the current civil day.
func (r *Repository) CountSince(ctx context.Context, callerID string, boundary time.Time) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.LotteryDraw{}).
		Where("caller_id = ? AND drawn_at >= ?", callerID, boundary).
		Count(&count).Error
	if err != nil {
		zap.L().Error("can't count lottery draws", zap.Error(err))
		return 0, err
	}
	return int(count), nil
}

package bindingrepo

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/libin99527/newapi-checkin/internal/domain"
)

var (
	ErrCallerAlreadyBound  = errors.New("caller already has a binding")
	ErrAccountAlreadyBound = errors.New("account already bound to another caller")
	ErrBindingNotFound     = errors.New("binding not found")
	ErrNotEligible         = errors.New("check-in already marked for this day")
)

// Repository stores the caller-to-account bindings. The store is owned by
// this process alone; the mutex serializes writers on top of the SQLite
// transaction so concurrent binds and check-in marks cannot interleave.
type Repository struct {
	db *gorm.DB
	mu sync.Mutex
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Bind creates the binding after re-checking both uniqueness directions
// inside one transaction: one binding per caller, one caller per account.
func (r *Repository) Bind(ctx context.Context, callerID, accountName string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Binding
		err := tx.Where("caller_id = ?", callerID).First(&existing).Error
		if err == nil {
			return ErrCallerAlreadyBound
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			zap.L().Error("can't check caller binding", zap.Error(err))
			return err
		}

		err = tx.Where("account_name = ?", accountName).First(&existing).Error
		if err == nil {
			return ErrAccountAlreadyBound
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			zap.L().Error("can't check account binding", zap.Error(err))
			return err
		}

		binding := domain.Binding{
			CallerID:    callerID,
			AccountName: accountName,
			BoundAt:     now,
		}
		if err := tx.Create(&binding).Error; err != nil {
			zap.L().Error("can't save binding", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) FindByCaller(ctx context.Context, callerID string) (*domain.Binding, error) {
	var binding domain.Binding
	err := r.db.WithContext(ctx).Where("caller_id = ?", callerID).First(&binding).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		zap.L().Error("can't find binding by caller", zap.Error(err))
		return nil, err
	}
	return &binding, nil
}

func (r *Repository) FindByAccount(ctx context.Context, accountName string) (*domain.Binding, error) {
	var binding domain.Binding
	err := r.db.WithContext(ctx).Where("account_name = ?", accountName).First(&binding).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		zap.L().Error("can't find binding by account", zap.Error(err))
		return nil, err
	}
	return &binding, nil
}

// MarkCheckin sets last_checkin unconditionally. Used when the daily limit
// is disabled by configuration.
func (r *Repository) MarkCheckin(ctx context.Context, callerID string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := r.db.WithContext(ctx).Model(&domain.Binding{}).
		Where("caller_id = ?", callerID).
		Update("last_checkin", now)
	if res.Error != nil {
		zap.L().Error("can't update check-in time", zap.Error(res.Error))
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrBindingNotFound
	}
	return nil
}

// MarkCheckinIfNewDay advances last_checkin only when it still predates
// dayStart. The compare-and-set serializes racing check-ins for the same
// caller: at most one of them hits the row.
func (r *Repository) MarkCheckinIfNewDay(ctx context.Context, callerID string, now, dayStart time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := r.db.WithContext(ctx).Model(&domain.Binding{}).
		Where("caller_id = ? AND (last_checkin IS NULL OR last_checkin < ?)", callerID, dayStart).
		Update("last_checkin", now)
	if res.Error != nil {
		zap.L().Error("can't update check-in time", zap.Error(res.Error))
		return res.Error
	}
	if res.RowsAffected == 0 {
		binding, err := r.FindByCaller(ctx, callerID)
		if err != nil {
			return err
		}
		if binding == nil {
			return ErrBindingNotFound
		}
		return ErrNotEligible
	}
	return nil
}

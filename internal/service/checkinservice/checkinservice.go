package checkinservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/libin99527/newapi-checkin/internal/clock"
	"github.com/libin99527/newapi-checkin/internal/config"
	"github.com/libin99527/newapi-checkin/internal/domain"
	bindingrepo "github.com/libin99527/newapi-checkin/internal/repo/binding-repo"
)

type BindingRepo interface {
	FindByCaller(ctx context.Context, callerID string) (*domain.Binding, error)
	MarkCheckin(ctx context.Context, callerID string, now time.Time) error
	MarkCheckinIfNewDay(ctx context.Context, callerID string, now, dayStart time.Time) error
}

type Ledger interface {
	AddQuota(ctx context.Context, username string, delta int64) error
}

var (
	ErrNotBound          = errors.New("caller has no bound account")
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrRemoteUnavailable = errors.New("remote ledger unavailable")
)

type Service struct {
	bindingRepo BindingRepo
	ledger      Ledger
	settings    *config.Settings
	clock       *clock.Policy
}

func New(bindingRepo BindingRepo, ledger Ledger, settings *config.Settings, clockPolicy *clock.Policy) *Service {
	return &Service{
		bindingRepo: bindingRepo,
		ledger:      ledger,
		settings:    settings,
		clock:       clockPolicy,
	}
}

type CheckinResult struct {
	Account string
	Amount  int64
}

// CheckIn grants the daily quota. The remote increment happens strictly
// before the local check-in marker: a failed grant must never consume the
// day. The reverse window (remote applied, local mark lost to a racing
// check-in or a crash) is accepted and logged, not compensated.
func (s *Service) CheckIn(ctx context.Context, callerID string, now time.Time) (*CheckinResult, error) {
	binding, err := s.bindingRepo.FindByCaller(ctx, callerID)
	if err != nil {
		zap.L().Error("can't look up caller binding", zap.Error(err))
		return nil, err
	}
	if binding == nil {
		return nil, ErrNotBound
	}

	limited := s.settings.DailyLimitEnabled()
	if limited && !s.clock.IsNewDay(binding.LastCheckin, now) {
		return nil, ErrAlreadyCheckedIn
	}

	amount := s.settings.CheckinQuota()
	if err := s.ledger.AddQuota(ctx, binding.AccountName, amount); err != nil {
		zap.L().Error("check-in grant failed on remote ledger", zap.Error(err))
		return nil, ErrRemoteUnavailable
	}

	if limited {
		err = s.bindingRepo.MarkCheckinIfNewDay(ctx, callerID, now, s.clock.DayStart(now))
		if errors.Is(err, bindingrepo.ErrNotEligible) {
			// A concurrent check-in won the compare-and-set after our remote
			// grant went through. Accepted inconsistency window: the remote
			// side got two increments, the caller still sees one success.
			zap.L().Warn("check-in marker lost to a concurrent claim",
				zap.String("account", binding.AccountName))
			return nil, ErrAlreadyCheckedIn
		}
	} else {
		err = s.bindingRepo.MarkCheckin(ctx, callerID, now)
	}
	if err != nil {
		zap.L().Error("can't commit check-in marker", zap.Error(err))
		return nil, err
	}

	zap.L().Info("check-in granted",
		zap.String("account", binding.AccountName),
		zap.Int64("amount", amount))
	return &CheckinResult{Account: binding.AccountName, Amount: amount}, nil
}

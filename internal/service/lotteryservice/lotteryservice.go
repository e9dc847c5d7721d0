package lotteryservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/libin99527/newapi-checkin/internal/clock"
	"github.com/libin99527/newapi-checkin/internal/config"
	"github.com/libin99527/newapi-checkin/internal/domain"
	"github.com/libin99527/newapi-checkin/internal/lottery"
)

type BindingRepo interface {
	FindByCaller(ctx context.Context, callerID string) (*domain.Binding, error)
}

type DrawRepo interface {
	Record(ctx context.Context, callerID, prizeName string, prizeQuota int64, now time.Time) error
	CountSince(ctx context.Context, callerID string, boundary time.Time) (int, error)
}

type Ledger interface {
	AddQuota(ctx context.Context, username string, delta int64) error
}

type Engine interface {
	Select(prizes []domain.Prize) (*domain.Prize, bool)
}

var (
	ErrLotteryDisabled    = errors.New("lottery is disabled")
	ErrLotteryUnavailable = errors.New("lottery prize table unavailable")
	ErrNotBound           = errors.New("caller has no bound account")
)

// DailyLimitError reports how many draws the caller already spent today.
type DailyLimitError struct {
	Count int
	Limit int
}

func (e *DailyLimitError) Error() string {
	return fmt.Sprintf("daily draw limit reached: %d of %d", e.Count, e.Limit)
}

type Service struct {
	bindingRepo BindingRepo
	drawRepo    DrawRepo
	ledger      Ledger
	engine      Engine
	settings    *config.Settings
	clock       *clock.Policy
}

func New(bindingRepo BindingRepo, drawRepo DrawRepo, ledger Ledger, engine Engine, settings *config.Settings, clockPolicy *clock.Policy) *Service {
	return &Service{
		bindingRepo: bindingRepo,
		drawRepo:    drawRepo,
		ledger:      ledger,
		engine:      engine,
		settings:    settings,
		clock:       clockPolicy,
	}
}

type DrawResult struct {
	Prize     domain.Prize
	Applied   bool
	Remaining int
}

// Draw runs one lottery attempt. The draw is recorded locally before the
// remote quota apply: once executed, a draw consumes one of the day's slots
// even if the apply fails afterwards. In that case the result carries
// Applied=false instead of an error, so the caller can report the won prize
// and escalate the missing quota manually.
func (s *Service) Draw(ctx context.Context, callerID string, now time.Time) (*DrawResult, error) {
	if !s.settings.LotteryEnabled() {
		return nil, ErrLotteryDisabled
	}

	binding, err := s.bindingRepo.FindByCaller(ctx, callerID)
	if err != nil {
		zap.L().Error("can't look up caller binding", zap.Error(err))
		return nil, err
	}
	if binding == nil {
		return nil, ErrNotBound
	}

	limit := s.settings.LotteryDailyLimit()
	count, err := s.drawRepo.CountSince(ctx, callerID, s.clock.DayStart(now))
	if err != nil {
		zap.L().Error("can't count today's draws", zap.Error(err))
		return nil, err
	}
	if count >= limit {
		return nil, &DailyLimitError{Count: count, Limit: limit}
	}

	prize, ok := s.engine.Select(s.settings.Prizes())
	if !ok {
		zap.L().Error("lottery enabled but prize table has no positive weight")
		return nil, ErrLotteryUnavailable
	}

	if err := s.drawRepo.Record(ctx, callerID, prize.Name, prize.Quota, now); err != nil {
		zap.L().Error("can't record lottery draw", zap.Error(err))
		return nil, err
	}

	result := &DrawResult{Prize: *prize, Applied: true, Remaining: limit - count - 1}
	if prize.Quota > 0 {
		if err := s.ledger.AddQuota(ctx, binding.AccountName, prize.Quota); err != nil {
			zap.L().Error("prize quota apply failed after draw was recorded",
				zap.String("account", binding.AccountName),
				zap.String("prize", prize.Name),
				zap.Error(err))
			result.Applied = false
		}
	}

	zap.L().Info("lottery draw executed",
		zap.String("account", binding.AccountName),
		zap.String("prize", prize.Name),
		zap.Bool("applied", result.Applied))
	return result, nil
}

// Status is the lottery overview for one caller.
type Status struct {
	Enabled    bool
	DailyLimit int
	UsedToday  int
	Prizes     []PrizeStatus
}

type PrizeStatus struct {
	Prize       domain.Prize
	Probability float64
}

func (s *Service) Status(ctx context.Context, callerID string, now time.Time) (*Status, error) {
	count, err := s.drawRepo.CountSince(ctx, callerID, s.clock.DayStart(now))
	if err != nil {
		zap.L().Error("can't count today's draws", zap.Error(err))
		return nil, err
	}

	prizes := s.settings.Prizes()
	total := lottery.TotalWeight(prizes)
	entries := make([]PrizeStatus, len(prizes))
	for i, p := range prizes {
		var prob float64
		if total > 0 {
			prob = p.Weight / total
		}
		entries[i] = PrizeStatus{Prize: p, Probability: prob}
	}

	return &Status{
		Enabled:    s.settings.LotteryEnabled(),
		DailyLimit: s.settings.LotteryDailyLimit(),
		UsedToday:  count,
		Prizes:     entries,
	}, nil
}

package config

import (
	"sync"

	"github.com/libin99527/newapi-checkin/internal/domain"
)

// Settings holds the toggles and limits that admin operations may change at
// runtime. It is built once from Config, passed explicitly to the services
// and mutated only through its methods.
type Settings struct {
	mu sync.RWMutex

	checkinQuota      int64
	enableDailyLimit  bool
	lotteryEnabled    bool
	lotteryDailyLimit int
	prizes            []domain.Prize
}

func NewSettings(cfg *Config) *Settings {
	return &Settings{
		checkinQuota:      cfg.CheckinQuota,
		enableDailyLimit:  cfg.EnableDailyLimit,
		lotteryEnabled:    cfg.LotteryEnabled,
		lotteryDailyLimit: cfg.LotteryDailyLimit,
		prizes:            cfg.PrizeTable(),
	}
}

func (s *Settings) CheckinQuota() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.checkinQuota
}

func (s *Settings) DailyLimitEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enableDailyLimit
}

func (s *Settings) LotteryEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lotteryEnabled
}

func (s *Settings) SetLotteryEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lotteryEnabled = enabled
}

func (s *Settings) LotteryDailyLimit() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lotteryDailyLimit
}

// Prizes returns the prize table in configured order. Callers must not
// mutate the returned slice.
func (s *Settings) Prizes() []domain.Prize {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prizes
}

package bindservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/libin99527/newapi-checkin/internal/clock"
	"github.com/libin99527/newapi-checkin/internal/domain"
	bindingrepo "github.com/libin99527/newapi-checkin/internal/repo/binding-repo"
)

type BindingRepo interface {
	Bind(ctx context.Context, callerID, accountName string, now time.Time) error
	FindByCaller(ctx context.Context, callerID string) (*domain.Binding, error)
	FindByAccount(ctx context.Context, accountName string) (*domain.Binding, error)
}

type Ledger interface {
	VerifyCredential(ctx context.Context, username, secret string) (bool, error)
	GetBalance(ctx context.Context, username string) (*domain.AccountBalance, error)
}

var (
	ErrCallerAlreadyBound  = errors.New("caller already bound to an account")
	ErrAccountAlreadyBound = errors.New("account already bound to another caller")
	ErrInvalidCredential   = errors.New("invalid account credentials")
	ErrNotBound            = errors.New("caller has no bound account")
	ErrRemoteUnavailable   = errors.New("remote ledger unavailable")
)

type Service struct {
	bindingRepo BindingRepo
	ledger      Ledger
	clock       *clock.Policy
}

func New(bindingRepo BindingRepo, ledger Ledger, clockPolicy *clock.Policy) *Service {
	return &Service{
		bindingRepo: bindingRepo,
		ledger:      ledger,
		clock:       clockPolicy,
	}
}

// Bind links a caller to a New-API account after verifying the credentials
// against the remote ledger. On ErrCallerAlreadyBound the existing binding
// is returned so the caller can be told which account holds it.
func (s *Service) Bind(ctx context.Context, callerID, username, password string, now time.Time) (*domain.Binding, error) {
	existing, err := s.bindingRepo.FindByCaller(ctx, callerID)
	if err != nil {
		zap.L().Error("can't look up caller binding", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return existing, ErrCallerAlreadyBound
	}

	bound, err := s.bindingRepo.FindByAccount(ctx, username)
	if err != nil {
		zap.L().Error("can't look up account binding", zap.Error(err))
		return nil, err
	}
	if bound != nil {
		return nil, ErrAccountAlreadyBound
	}

	ok, err := s.ledger.VerifyCredential(ctx, username, password)
	if err != nil {
		zap.L().Error("credential check failed on transport", zap.Error(err))
		return nil, ErrRemoteUnavailable
	}
	if !ok {
		return nil, ErrInvalidCredential
	}

	if err := s.bindingRepo.Bind(ctx, callerID, username, now); err != nil {
		// Both uniqueness checks run again inside the insert transaction,
		// so a racing bind surfaces here.
		switch {
		case errors.Is(err, bindingrepo.ErrCallerAlreadyBound):
			return nil, ErrCallerAlreadyBound
		case errors.Is(err, bindingrepo.ErrAccountAlreadyBound):
			return nil, ErrAccountAlreadyBound
		}
		zap.L().Error("can't save binding", zap.Error(err))
		return nil, err
	}

	binding, err := s.bindingRepo.FindByCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	zap.L().Info("caller bound to account", zap.String("account", username))
	return binding, nil
}

// BindingStatus is the my-binding view: the binding plus whether a check-in
// is still available on the current civil day.
type BindingStatus struct {
	Binding    domain.Binding
	CanCheckin bool
}

func (s *Service) MyBinding(ctx context.Context, callerID string, now time.Time) (*BindingStatus, error) {
	binding, err := s.bindingRepo.FindByCaller(ctx, callerID)
	if err != nil {
		zap.L().Error("can't look up caller binding", zap.Error(err))
		return nil, err
	}
	if binding == nil {
		return nil, ErrNotBound
	}

	return &BindingStatus{
		Binding:    *binding,
		CanCheckin: s.clock.IsNewDay(binding.LastCheckin, now),
	}, nil
}

// Balance reads the bound account's quota from the remote ledger.
func (s *Service) Balance(ctx context.Context, callerID string) (string, *domain.AccountBalance, error) {
	binding, err := s.bindingRepo.FindByCaller(ctx, callerID)
	if err != nil {
		zap.L().Error("can't look up caller binding", zap.Error(err))
		return "", nil, err
	}
	if binding == nil {
		return "", nil, ErrNotBound
	}

	balance, err := s.ledger.GetBalance(ctx, binding.AccountName)
	if err != nil {
		zap.L().Error("can't read remote balance", zap.Error(err))
		return "", nil, ErrRemoteUnavailable
	}
	return binding.AccountName, balance, nil
}

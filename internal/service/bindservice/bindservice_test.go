package bindservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/libin99527/newapi-checkin/internal/clock"
	"github.com/libin99527/newapi-checkin/internal/domain"
	bindingrepo "github.com/libin99527/newapi-checkin/internal/repo/binding-repo"
)

func NewMock(t *testing.T) (*Service, *MockBindingRepo, *MockLedger) {
	ctrl := gomock.NewController(t)
	bindingRepo := NewMockBindingRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	service := New(bindingRepo, ledger, clock.New(8))
	defer ctrl.Finish()
	return service, bindingRepo, ledger
}

func TestBind(t *testing.T) {
	now := time.Now()
	aliceBinding := &domain.Binding{CallerID: "caller-1", AccountName: "alice", BoundAt: now}

	tests := []struct {
		name          string
		callerID      string
		username      string
		password      string
		prepareMock   func(repo *MockBindingRepo, ledger *MockLedger)
		expectedErr   error
		expectAccount string
	}{
		{
			name:     "Successful bind",
			callerID: "caller-1",
			username: "alice",
			password: "pw1",
			prepareMock: func(repo *MockBindingRepo, ledger *MockLedger) {
				repo.EXPECT().FindByCaller(gomock.Any(), "caller-1").Return(nil, nil)
				repo.EXPECT().FindByAccount(gomock.Any(), "alice").Return(nil, nil)
				ledger.EXPECT().VerifyCredential(gomock.Any(), "alice", "pw1").Return(true, nil)
				repo.EXPECT().Bind(gomock.Any(), "caller-1", "alice", now).Return(nil)
				repo.EXPECT().FindByCaller(gomock.Any(), "caller-1").Return(aliceBinding, nil)
			},
			expectAccount: "alice",
		},
		{
			name:     "Caller already bound",
			callerID: "caller-1",
			username: "bob",
			password: "pw2",
			prepareMock: func(repo *MockBindingRepo, ledger *MockLedger) {
				repo.EXPECT().FindByCaller(gomock.Any(), "caller-1").Return(aliceBinding, nil)
			},
			expectedErr:   ErrCallerAlreadyBound,
			expectAccount: "alice",
		},
		{
			name:     "Account bound to another caller",
			callerID: "caller-2",
			username: "alice",
			password: "pw1",
			prepareMock: func(repo *MockBindingRepo, ledger *MockLedger) {
				repo.EXPECT().FindByCaller(gomock.Any(), "caller-2").Return(nil, nil)
				repo.EXPECT().FindByAccount(gomock.Any(), "alice").Return(aliceBinding, nil)
			},
			expectedErr: ErrAccountAlreadyBound,
		},
		{
			name:     "Wrong credentials",
			callerID: "caller-2",
			username: "bob",
			password: "wrong",
			prepareMock: func(repo *MockBindingRepo, ledger *MockLedger) {
				repo.EXPECT().FindByCaller(gomock.Any(), "caller-2").Return(nil, nil)
				repo.EXPECT().FindByAccount(gomock.Any(), "bob").Return(nil, nil)
				ledger.EXPECT().VerifyCredential(gomock.Any(), "bob", "wrong").Return(false, nil)
			},
			expectedErr: ErrInvalidCredential,
		},
		{
			name:     "Ledger unreachable",
			callerID: "caller-2",
			username: "bob",
			password: "pw2",
			prepareMock: func(repo *MockBindingRepo, ledger *MockLedger) {
				repo.EXPECT().FindByCaller(gomock.Any(), "caller-2").Return(nil, nil)
				repo.EXPECT().FindByAccount(gomock.Any(), "bob").Return(nil, nil)
				ledger.EXPECT().VerifyCredential(gomock.Any(), "bob", "pw2").Return(false, errors.New("connection refused"))
			},
			expectedErr: ErrRemoteUnavailable,
		},
		{
			name:     "Racing bind loses on insert",
			callerID: "caller-2",
			username: "bob",
			password: "pw2",
			prepareMock: func(repo *MockBindingRepo, ledger *MockLedger) {
				repo.EXPECT().FindByCaller(gomock.Any(), "caller-2").Return(nil, nil)
				repo.EXPECT().FindByAccount(gomock.Any(), "bob").Return(nil, nil)
				ledger.EXPECT().VerifyCredential(gomock.Any(), "bob", "pw2").Return(true, nil)
				repo.EXPECT().Bind(gomock.Any(), "caller-2", "bob", now).Return(bindingrepo.ErrAccountAlreadyBound)
			},
			expectedErr: ErrAccountAlreadyBound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, ledger := NewMock(t)
			tt.prepareMock(repo, ledger)

			binding, err := service.Bind(context.Background(), tt.callerID, tt.username, tt.password, now)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectAccount != "" {
				assert.NotNil(t, binding)
				assert.Equal(t, tt.expectAccount, binding.AccountName)
			}
		})
	}
}

func TestMyBinding(t *testing.T) {
	tz := time.FixedZone("UTC+8", 8*3600)
	lastCheckin := time.Date(2024, 1, 1, 23, 59, 0, 0, tz)
	now := time.Date(2024, 1, 2, 0, 1, 0, 0, tz)

	tests := []struct {
		name        string
		prepareMock func(repo *MockBindingRepo)
		now         time.Time
		expectedErr error
		canCheckin  bool
	}{
		{
			name: "Bound with check-in available on a new day",
			prepareMock: func(repo *MockBindingRepo) {
				repo.EXPECT().FindByCaller(gomock.Any(), "caller-1").Return(&domain.Binding{
					CallerID:    "caller-1",
					AccountName: "alice",
					LastCheckin: &lastCheckin,
				}, nil)
			},
			now:        now,
			canCheckin: true,
		},
		{
			name: "Bound and already checked in today",
			prepareMock: func(repo *MockBindingRepo) {
				repo.EXPECT().FindByCaller(gomock.Any(), "caller-1").Return(&domain.Binding{
					CallerID:    "caller-1",
					AccountName: "alice",
					LastCheckin: &lastCheckin,
				}, nil)
			},
			now:        lastCheckin,
			canCheckin: false,
		},
		{
			name: "Not bound",
			prepareMock: func(repo *MockBindingRepo) {
				repo.EXPECT().FindByCaller(gomock.Any(), "caller-1").Return(nil, nil)
			},
			now:         now,
			expectedErr: ErrNotBound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := NewMock(t)
			tt.prepareMock(repo)

			status, err := service.MyBinding(context.Background(), "caller-1", tt.now)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, status)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.canCheckin, status.CanCheckin)
			}
		})
	}
}

func TestBalance(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(repo *MockBindingRepo, ledger *MockLedger)
		expectedErr error
		expectQuota int64
	}{
		{
			name: "Balance readout",
			prepareMock: func(repo *MockBindingRepo, ledger *MockLedger) {
				repo.EXPECT().FindByCaller(gomock.Any(), "caller-1").Return(&domain.Binding{CallerID: "caller-1", AccountName: "alice"}, nil)
				ledger.EXPECT().GetBalance(gomock.Any(), "alice").Return(&domain.AccountBalance{Quota: 1500000, UsedQuota: 300000}, nil)
			},
			expectQuota: 1500000,
		},
		{
			name: "Not bound",
			prepareMock: func(repo *MockBindingRepo, ledger *MockLedger) {
				repo.EXPECT().FindByCaller(gomock.Any(), "caller-1").Return(nil, nil)
			},
			expectedErr: ErrNotBound,
		},
		{
			name: "Remote failure",
			prepareMock: func(repo *MockBindingRepo, ledger *MockLedger) {
				repo.EXPECT().FindByCaller(gomock.Any(), "caller-1").Return(&domain.Binding{CallerID: "caller-1", AccountName: "alice"}, nil)
				ledger.EXPECT().GetBalance(gomock.Any(), "alice").Return(nil, errors.New("timeout"))
			},
			expectedErr: ErrRemoteUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, ledger := NewMock(t)
			tt.prepareMock(repo, ledger)

			account, balance, err := service.Balance(context.Background(), "caller-1")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "alice", account)
				assert.Equal(t, tt.expectQuota, balance.Quota)
			}
		})
	}
}

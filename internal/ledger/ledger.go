// Package ledger talks to the remote New-API users table. The service only
// ever reads quota and increments it; used_quota and credential fields stay
// untouched. Business "no" answers (missing or soft-deleted account, wrong
// secret) are reported separately from transport failures so callers can
// tell a retry-worthy error from a final one.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/libin99527/newapi-checkin/internal/domain"
	"github.com/libin99527/newapi-checkin/internal/pg"
	"github.com/libin99527/newapi-checkin/pkg/auth"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrNegativeDelta   = errors.New("quota delta must be non-negative")
)

type Client struct {
	db          pg.Database
	hashService auth.HashServiceInterface
}

func New(db pg.Database, hashService auth.HashServiceInterface) *Client {
	return &Client{
		db:          db,
		hashService: hashService,
	}
}

// VerifyCredential checks a secret against the stored bcrypt hash. It fails
// closed: false on missing account, soft-deleted account, or hash mismatch.
// A non-nil error means transport failure and still reports false.
func (c *Client) VerifyCredential(ctx context.Context, username, secret string) (bool, error) {
	var id int64
	var passwordHash string
	err := c.db.QueryRow(ctx,
		"SELECT id, password FROM users WHERE username = $1 AND deleted_at IS NULL",
		username,
	).Scan(&id, &passwordHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		zap.L().Error("can't query account for credential check", zap.Error(err))
		return false, fmt.Errorf("query account: %w", err)
	}

	return c.hashService.ComparePassword(passwordHash, secret), nil
}

// GetBalance reads quota and used_quota of a remote account.
func (c *Client) GetBalance(ctx context.Context, username string) (*domain.AccountBalance, error) {
	var balance domain.AccountBalance
	err := c.db.QueryRow(ctx,
		"SELECT quota, used_quota FROM users WHERE username = $1 AND deleted_at IS NULL",
		username,
	).Scan(&balance.Quota, &balance.UsedQuota)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrAccountNotFound
		}
		zap.L().Error("can't read account balance", zap.Error(err))
		return nil, fmt.Errorf("read balance: %w", err)
	}
	return &balance, nil
}

// AddQuota increments the account quota by delta. Exactly one live row must
// be affected; zero rows means the account disappeared between resolution
// and mutation and is reported as ErrAccountNotFound, never retried here.
func (c *Client) AddQuota(ctx context.Context, username string, delta int64) error {
	if delta < 0 {
		return ErrNegativeDelta
	}

	tag, err := c.db.Exec(ctx,
		"UPDATE users SET quota = quota + $1 WHERE username = $2 AND deleted_at IS NULL",
		delta, username,
	)
	if err != nil {
		zap.L().Error("can't increment account quota", zap.Error(err))
		return fmt.Errorf("increment quota: %w", err)
	}
	if tag.RowsAffected() != 1 {
		zap.L().Error("quota increment hit no rows", zap.String("username", username))
		return ErrAccountNotFound
	}
	return nil
}

package storage

import (
	"context"
	"errors"

	"github.com/duongpm13/cat-battle/internal/game/lucky"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// Account is one registered player identity.
type Account struct {
	AccountID   string
	TelegramID  string
	DisplayName string
}

// Statistic holds the aggregate balances surfaced on login.
type Statistic struct {
	AccountID string
	Ton       float64
	Bnb       float64
	Plays     int64
}

// AccountStore persists account and statistic records.
type AccountStore interface {
	PutAccount(ctx context.Context, account Account) error
	AccountByTelegramID(ctx context.Context, telegramID string) (Account, error)
	PutStatistic(ctx context.Context, statistic Statistic) error
	StatisticByAccountID(ctx context.Context, accountID string) (Statistic, error)
}

// LedgerStore persists the cat lucky stage ledger, keyed by account.
//
// UpdateLedger runs apply inside a single transaction holding the write
// lock, so concurrent plays for one account serialize on the row. apply
// receives the current ledger (or the default when no row exists) and
// returns the next ledger plus whether it must be written. An error from
// apply rolls the transaction back and propagates unmodified.
type LedgerStore interface {
	Ledger(ctx context.Context, accountID string) (lucky.Ledger, error)
	UpdateLedger(ctx context.Context, accountID string, apply func(lucky.Ledger) (lucky.Ledger, bool, error)) (lucky.Ledger, error)
}

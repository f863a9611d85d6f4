package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/duongpm13/cat-battle/internal/storage"
)

// PutAccount inserts or replaces an account record.
func (s *Store) PutAccount(ctx context.Context, account storage.Account) error {
	account.AccountID = strings.TrimSpace(account.AccountID)
	account.TelegramID = strings.TrimSpace(account.TelegramID)
	if account.AccountID == "" {
		return fmt.Errorf("account id is required")
	}
	if account.TelegramID == "" {
		return fmt.Errorf("telegram id is required")
	}
	if account.DisplayName == "" {
		account.DisplayName = account.TelegramID
	}

	now := toMillis(time.Now())
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO accounts (account_id, telegram_id, display_name, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(account_id) DO UPDATE SET
    telegram_id = excluded.telegram_id,
    display_name = excluded.display_name,
    updated_at = excluded.updated_at
`,
		account.AccountID,
		account.TelegramID,
		account.DisplayName,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("put account: %w", err)
	}
	return nil
}

// AccountByTelegramID looks up the account registered for a telegram id.
func (s *Store) AccountByTelegramID(ctx context.Context, telegramID string) (storage.Account, error) {
	var account storage.Account
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT account_id, telegram_id, display_name
FROM accounts
WHERE telegram_id = ?
`, strings.TrimSpace(telegramID))
	if err := row.Scan(&account.AccountID, &account.TelegramID, &account.DisplayName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Account{}, storage.ErrNotFound
		}
		return storage.Account{}, fmt.Errorf("query account: %w", err)
	}
	return account, nil
}

// PutStatistic inserts or replaces an aggregate statistics record.
func (s *Store) PutStatistic(ctx context.Context, statistic storage.Statistic) error {
	statistic.AccountID = strings.TrimSpace(statistic.AccountID)
	if statistic.AccountID == "" {
		return fmt.Errorf("account id is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO statistics (account_id, ton, bnb, plays, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(account_id) DO UPDATE SET
    ton = excluded.ton,
    bnb = excluded.bnb,
    plays = excluded.plays,
    updated_at = excluded.updated_at
`,
		statistic.AccountID,
		statistic.Ton,
		statistic.Bnb,
		statistic.Plays,
		toMillis(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("put statistic: %w", err)
	}
	return nil
}

// StatisticByAccountID loads the aggregate statistics for an account.
func (s *Store) StatisticByAccountID(ctx context.Context, accountID string) (storage.Statistic, error) {
	var statistic storage.Statistic
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT account_id, ton, bnb, plays
FROM statistics
WHERE account_id = ?
`, strings.TrimSpace(accountID))
	if err := row.Scan(&statistic.AccountID, &statistic.Ton, &statistic.Bnb, &statistic.Plays); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Statistic{}, storage.ErrNotFound
		}
		return storage.Statistic{}, fmt.Errorf("query statistic: %w", err)
	}
	return statistic, nil
}

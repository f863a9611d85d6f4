package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/duongpm13/cat-battle/internal/game/lucky"
	"github.com/duongpm13/cat-battle/internal/storage"
)

const ledgerQuery = `
SELECT account_id, stage, current_stage_result, collected_coin, collected_gem,
       collected_shard, collected_ton, collected_bnb, collected_plays, lock_until
FROM cat_lucky
WHERE account_id = ?
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLedger(row rowScanner) (lucky.Ledger, error) {
	var ledger lucky.Ledger
	var encodedResult string
	var lockUntil int64
	if err := row.Scan(
		&ledger.AccountID,
		&ledger.Stage,
		&encodedResult,
		&ledger.CollectedCoin,
		&ledger.CollectedGem,
		&ledger.CollectedShard,
		&ledger.CollectedTon,
		&ledger.CollectedBnb,
		&ledger.CollectedPlays,
		&lockUntil,
	); err != nil {
		return lucky.Ledger{}, err
	}
	slots, err := lucky.DecodeSlots(encodedResult)
	if err != nil {
		return lucky.Ledger{}, fmt.Errorf("decode stage result: %w", err)
	}
	ledger.CurrentStageResult = slots
	ledger.LockUntil = fromMillis(lockUntil)
	return ledger, nil
}

// Ledger loads the cat lucky ledger for an account.
func (s *Store) Ledger(ctx context.Context, accountID string) (lucky.Ledger, error) {
	row := s.sqlDB.QueryRowContext(ctx, ledgerQuery, strings.TrimSpace(accountID))
	ledger, err := scanLedger(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return lucky.Ledger{}, storage.ErrNotFound
		}
		return lucky.Ledger{}, fmt.Errorf("query ledger: %w", err)
	}
	return ledger, nil
}

// UpdateLedger applies a read-modify-write to an account's ledger inside a
// single write transaction.
//
// A missing row is presented to apply as the default ledger; the first
// persisted play therefore creates the row. When apply reports no write
// (a stale-stage refresh) the transaction commits without touching the
// table, so a follow-up read observes the prior state.
func (s *Store) UpdateLedger(ctx context.Context, accountID string, apply func(lucky.Ledger) (lucky.Ledger, bool, error)) (lucky.Ledger, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return lucky.Ledger{}, fmt.Errorf("account id is required")
	}
	if apply == nil {
		return lucky.Ledger{}, fmt.Errorf("apply func is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return lucky.Ledger{}, fmt.Errorf("begin ledger transaction: %w", err)
	}

	current, err := scanLedger(tx.QueryRowContext(ctx, ledgerQuery, accountID))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			_ = tx.Rollback()
			return lucky.Ledger{}, fmt.Errorf("query ledger: %w", err)
		}
		current = lucky.NewLedger(accountID, nil)
	}

	next, write, err := apply(current)
	if err != nil {
		_ = tx.Rollback()
		return lucky.Ledger{}, err
	}

	if !write {
		if err := tx.Commit(); err != nil {
			return lucky.Ledger{}, fmt.Errorf("commit ledger transaction: %w", err)
		}
		return next, nil
	}

	if _, err := tx.ExecContext(ctx, `
INSERT INTO cat_lucky (
    account_id, stage, current_stage_result, collected_coin, collected_gem,
    collected_shard, collected_ton, collected_bnb, collected_plays,
    lock_until, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(account_id) DO UPDATE SET
    stage = excluded.stage,
    current_stage_result = excluded.current_stage_result,
    collected_coin = excluded.collected_coin,
    collected_gem = excluded.collected_gem,
    collected_shard = excluded.collected_shard,
    collected_ton = excluded.collected_ton,
    collected_bnb = excluded.collected_bnb,
    collected_plays = excluded.collected_plays,
    lock_until = excluded.lock_until,
    updated_at = excluded.updated_at
`,
		accountID,
		next.Stage,
		lucky.EncodeSlots(next.CurrentStageResult),
		next.CollectedCoin,
		next.CollectedGem,
		next.CollectedShard,
		next.CollectedTon,
		next.CollectedBnb,
		next.CollectedPlays,
		toMillis(next.LockUntil),
		toMillis(time.Now()),
	); err != nil {
		_ = tx.Rollback()
		return lucky.Ledger{}, fmt.Errorf("write ledger: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return lucky.Ledger{}, fmt.Errorf("commit ledger transaction: %w", err)
	}
	return next, nil
}

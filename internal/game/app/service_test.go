package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/duongpm13/cat-battle/internal/game/lucky"
	"github.com/duongpm13/cat-battle/internal/storage"
)

var testClock = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

// fakeLedgerStore keeps ledgers in memory and counts writes so tests can
// assert which plays persisted.
type fakeLedgerStore struct {
	ledgers map[string]lucky.Ledger
	writes  int
	loadErr error
}

func newFakeLedgerStore() *fakeLedgerStore {
	return &fakeLedgerStore{ledgers: map[string]lucky.Ledger{}}
}

func (f *fakeLedgerStore) Ledger(_ context.Context, accountID string) (lucky.Ledger, error) {
	if f.loadErr != nil {
		return lucky.Ledger{}, f.loadErr
	}
	ledger, ok := f.ledgers[accountID]
	if !ok {
		return lucky.Ledger{}, storage.ErrNotFound
	}
	return ledger, nil
}

func (f *fakeLedgerStore) UpdateLedger(_ context.Context, accountID string, apply func(lucky.Ledger) (lucky.Ledger, bool, error)) (lucky.Ledger, error) {
	if f.loadErr != nil {
		return lucky.Ledger{}, f.loadErr
	}
	current, ok := f.ledgers[accountID]
	if !ok {
		current = lucky.NewLedger(accountID, func() time.Time { return testClock })
	}
	next, write, err := apply(current)
	if err != nil {
		return lucky.Ledger{}, err
	}
	if write {
		f.ledgers[accountID] = next
		f.writes++
	}
	return next, nil
}

func testService(store storage.LedgerStore) *GameService {
	return NewGameService(store, lucky.Engine{
		Now:  func() time.Time { return testClock },
		Intn: func(n int) int { return 3 },
	})
}

func TestGetStatusSynthesizesDefault(t *testing.T) {
	store := newFakeLedgerStore()
	service := testService(store)

	ledger, err := service.GetStatus(context.Background(), "acct-1")
	if err != nil {
		t.Fatalf("get status: %v", err)
	}
	if ledger.AccountID != "acct-1" {
		t.Fatalf("account id = %q", ledger.AccountID)
	}
	if ledger.Stage != 0 || len(ledger.CurrentStageResult) != 0 || ledger.CollectedCoin != 0 {
		t.Fatalf("expected default ledger, got %+v", ledger)
	}
	if !ledger.LockUntil.Equal(testClock) {
		t.Fatalf("lock until = %v, want injected now", ledger.LockUntil)
	}
}

func TestGetStatusPropagatesStoreFailure(t *testing.T) {
	store := newFakeLedgerStore()
	store.loadErr = errors.New("disk gone")
	service := testService(store)

	if _, err := service.GetStatus(context.Background(), "acct-1"); !errors.Is(err, store.loadErr) {
		t.Fatalf("expected store failure to propagate, got %v", err)
	}
}

func TestPlayAdvancesAndPersists(t *testing.T) {
	store := newFakeLedgerStore()
	service := testService(store)

	ledger, outcome, err := service.Play(context.Background(), "acct-1", 0, false)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if outcome != lucky.PlayOutcomeAdvanced {
		t.Fatalf("outcome = %v, want advanced", outcome)
	}
	if ledger.Stage != 1 || ledger.CollectedCoin != 100 {
		t.Fatalf("ledger = %+v", ledger)
	}
	if store.writes != 1 {
		t.Fatalf("writes = %d, want 1", store.writes)
	}

	persisted, err := service.GetStatus(context.Background(), "acct-1")
	if err != nil {
		t.Fatalf("get status: %v", err)
	}
	if persisted.Stage != 1 {
		t.Fatalf("persisted stage = %d, want 1", persisted.Stage)
	}
}

func TestPlayStaleStageWritesNothing(t *testing.T) {
	store := newFakeLedgerStore()
	store.ledgers["acct-1"] = lucky.Ledger{
		AccountID: "acct-1",
		Stage:     2,
		CurrentStageResult: []lucky.Slot{
			{Type: lucky.SlotTypeCoin, Value: 100},
			{Type: lucky.SlotTypeGameOver, Value: 1},
			{Type: lucky.SlotTypeCoin, Value: 100},
			{Type: lucky.SlotTypeCoin, Value: 100},
		},
	}
	service := testService(store)

	ledger, outcome, err := service.Play(context.Background(), "acct-1", 5, false)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if outcome != lucky.PlayOutcomeRefreshed {
		t.Fatalf("outcome = %v, want refreshed", outcome)
	}
	if ledger.Stage != 2 {
		t.Fatalf("echoed stage = %d, want 2", ledger.Stage)
	}
	if store.writes != 0 {
		t.Fatalf("writes = %d, want 0", store.writes)
	}
}

func TestPlayLockedPropagatesWithoutWrite(t *testing.T) {
	store := newFakeLedgerStore()
	locked := lucky.NewLedger("acct-1", func() time.Time { return testClock })
	locked.LockUntil = testClock.Add(time.Minute)
	store.ledgers["acct-1"] = locked
	service := testService(store)

	_, _, err := service.Play(context.Background(), "acct-1", 0, false)
	if !errors.Is(err, lucky.ErrGameLocked) {
		t.Fatalf("expected ErrGameLocked, got %v", err)
	}
	if store.writes != 0 {
		t.Fatalf("writes = %d, want 0", store.writes)
	}
}

func TestPlayGameOverResetsRun(t *testing.T) {
	store := newFakeLedgerStore()
	store.ledgers["acct-1"] = lucky.Ledger{
		AccountID: "acct-1",
		Stage:     3,
		CurrentStageResult: []lucky.Slot{
			{Type: lucky.SlotTypeGameOver, Value: 1},
			{Type: lucky.SlotTypeCoin, Value: 100},
			{Type: lucky.SlotTypeCoin, Value: 100},
			{Type: lucky.SlotTypeCoin, Value: 100},
		},
		CollectedCoin: 300,
	}
	service := testService(store)

	ledger, outcome, err := service.Play(context.Background(), "acct-1", 3, false)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if outcome != lucky.PlayOutcomeGameOver {
		t.Fatalf("outcome = %v, want game over", outcome)
	}
	if ledger.Stage != 0 || len(ledger.CurrentStageResult) != 0 {
		t.Fatalf("expected reset ledger, got %+v", ledger)
	}
	if ledger.CollectedCoin != 300 {
		t.Fatalf("accumulators must survive the reset, got %d", ledger.CollectedCoin)
	}
}

func TestPlayEndGamePersistsAsIs(t *testing.T) {
	store := newFakeLedgerStore()
	store.ledgers["acct-1"] = lucky.Ledger{
		AccountID: "acct-1",
		Stage:     2,
		CurrentStageResult: []lucky.Slot{
			{Type: lucky.SlotTypeCoin, Value: 100},
			{Type: lucky.SlotTypeGameOver, Value: 1},
			{Type: lucky.SlotTypeCoin, Value: 100},
			{Type: lucky.SlotTypeCoin, Value: 100},
		},
		CollectedCoin: 200,
	}
	service := testService(store)

	ledger, outcome, err := service.Play(context.Background(), "acct-1", 2, true)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if outcome != lucky.PlayOutcomeCashedOut {
		t.Fatalf("outcome = %v, want cashed out", outcome)
	}
	if ledger.Stage != 2 || ledger.CollectedCoin != 200 {
		t.Fatalf("cash out changed progress: %+v", ledger)
	}
	if store.writes != 1 {
		t.Fatalf("writes = %d, want 1", store.writes)
	}
}

package lucky

import "time"

// Ledger is the durable per-account progression record. It is owned by the
// transition engine; storage only loads and saves it.
type Ledger struct {
	// AccountID keys the ledger; immutable once the ledger exists.
	AccountID string
	// Stage is the index of the stage in progress. Zero means no run is in
	// progress or the run was just reset.
	Stage int
	// CurrentStageResult is the precomputed outcome sequence for the
	// current stage. Its first element is the one resolved by the next
	// play. Empty when no stage is active.
	CurrentStageResult []Slot
	// Accumulators are monotonically non-decreasing while the ledger lives.
	// A game-over reset clears only Stage and CurrentStageResult.
	CollectedCoin  int64
	CollectedGem   int64
	CollectedShard int64
	CollectedTon   int64
	CollectedBnb   int64
	// CollectedPlays counts resolved slots across all runs.
	CollectedPlays int64
	// LockUntil refuses new plays before it passes.
	LockUntil time.Time
}

// NewLedger returns the default ledger for an account with no prior plays.
// A missing row and the default ledger are equivalent.
func NewLedger(accountID string, now func() time.Time) Ledger {
	if now == nil {
		now = time.Now
	}
	return Ledger{
		AccountID: accountID,
		LockUntil: now().UTC(),
	}
}

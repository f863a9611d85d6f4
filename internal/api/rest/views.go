package rest

import (
	"time"

	"github.com/duongpm13/cat-battle/internal/game/lucky"
)

// LedgerView is the canonical JSON projection of a stage ledger. Every
// response that includes game state uses it, with the outcome sequence in
// its persisted TYPE:value comma encoding.
type LedgerView struct {
	Stage              int       `json:"stage"`
	CurrentStageResult string    `json:"current_stage_result"`
	CollectedCoin      int64     `json:"collected_coin"`
	CollectedGem       int64     `json:"collected_gem"`
	CollectedShard     int64     `json:"collected_shard"`
	CollectedTon       int64     `json:"collected_ton"`
	CollectedBnb       int64     `json:"collected_bnb"`
	CollectedPlays     int64     `json:"collected_plays"`
	LockUntil          time.Time `json:"lock_until"`
}

// NewLedgerView projects a ledger into its response shape.
func NewLedgerView(ledger lucky.Ledger) LedgerView {
	return LedgerView{
		Stage:              ledger.Stage,
		CurrentStageResult: lucky.EncodeSlots(ledger.CurrentStageResult),
		CollectedCoin:      ledger.CollectedCoin,
		CollectedGem:       ledger.CollectedGem,
		CollectedShard:     ledger.CollectedShard,
		CollectedTon:       ledger.CollectedTon,
		CollectedBnb:       ledger.CollectedBnb,
		CollectedPlays:     ledger.CollectedPlays,
		LockUntil:          ledger.LockUntil,
	}
}

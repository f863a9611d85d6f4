package lucky

import (
	"time"

	apperrors "github.com/duongpm13/cat-battle/internal/platform/errors"
)

var (
	// ErrGameLocked indicates the cooldown has not expired yet.
	ErrGameLocked = apperrors.New(apperrors.CodeGameLocked, "play is locked until the cooldown expires")
	// ErrStageResultInvalid indicates a persisted outcome sequence holds an
	// unresolvable slot.
	ErrStageResultInvalid = apperrors.New(apperrors.CodeStageResultInvalid, "stage result holds an unresolvable slot")
)

// PlayInput is one client-submitted move.
type PlayInput struct {
	// RequestedStage is the stage the client believes is in progress.
	RequestedStage int
	// EndGame stops the run without resolving the pending slot.
	EndGame bool
}

// PlayOutcome reports how a play resolved.
type PlayOutcome int

const (
	// PlayOutcomeUnspecified represents an invalid outcome value.
	PlayOutcomeUnspecified PlayOutcome = iota
	// PlayOutcomeRefreshed means the client stage was stale; the ledger was
	// echoed back untouched so the client can resynchronize.
	PlayOutcomeRefreshed
	// PlayOutcomeCashedOut means the run stopped without resolving a slot.
	PlayOutcomeCashedOut
	// PlayOutcomeAdvanced means a coin slot resolved and the run moved to
	// the next stage.
	PlayOutcomeAdvanced
	// PlayOutcomeGameOver means the game-over slot resolved and the run
	// reset to stage zero.
	PlayOutcomeGameOver
)

func (o PlayOutcome) String() string {
	switch o {
	case PlayOutcomeRefreshed:
		return "Refreshed"
	case PlayOutcomeCashedOut:
		return "Cashed out"
	case PlayOutcomeAdvanced:
		return "Advanced"
	case PlayOutcomeGameOver:
		return "Game over"
	default:
		return "Unspecified"
	}
}

// Mutated reports whether the outcome requires a persistence write.
func (o PlayOutcome) Mutated() bool {
	switch o {
	case PlayOutcomeCashedOut, PlayOutcomeAdvanced, PlayOutcomeGameOver:
		return true
	default:
		return false
	}
}

// Engine is the authoritative state machine for one play action.
//
// Now and Intn are injected so transitions are deterministic under test;
// both default to the real clock and the shared math/rand source. Cooldown,
// when positive, stamps LockUntil after every resolved slot. The zero value
// keeps the lock column read-only.
type Engine struct {
	Now      func() time.Time
	Intn     func(n int) int
	Cooldown time.Duration
}

// Play applies one move to a ledger and returns the next ledger.
//
// The ledger is passed and returned by value; the caller persists the
// result only when the outcome's Mutated method reports true. A locked
// ledger fails with ErrGameLocked before anything else is considered. A
// stale RequestedStage is not an error: the input ledger is returned
// untouched with PlayOutcomeRefreshed.
func (e Engine) Play(ledger Ledger, input PlayInput) (Ledger, PlayOutcome, error) {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	if now().Before(ledger.LockUntil) {
		return ledger, PlayOutcomeUnspecified, ErrGameLocked
	}

	if input.RequestedStage != ledger.Stage {
		return ledger, PlayOutcomeRefreshed, nil
	}

	// A stage with no generated result cannot be resolved; populate it
	// before looking at the move.
	if len(ledger.CurrentStageResult) == 0 {
		ledger.CurrentStageResult = GenerateStageOutcomes(e.Intn)
	}

	if input.EndGame {
		return ledger, PlayOutcomeCashedOut, nil
	}

	first := ledger.CurrentStageResult[0]
	switch first.Type {
	case SlotTypeGameOver:
		ledger.Stage = 0
		ledger.CurrentStageResult = nil
		ledger.CollectedPlays++
		if e.Cooldown > 0 {
			ledger.LockUntil = now().UTC().Add(e.Cooldown)
		}
		return ledger, PlayOutcomeGameOver, nil
	case SlotTypeCoin:
		ledger.Stage++
		ledger.CollectedCoin += first.Value
		ledger.CollectedPlays++
		// The old sequence is discarded in full once its first element is
		// consumed.
		ledger.CurrentStageResult = GenerateStageOutcomes(e.Intn)
		if e.Cooldown > 0 {
			ledger.LockUntil = now().UTC().Add(e.Cooldown)
		}
		return ledger, PlayOutcomeAdvanced, nil
	default:
		return ledger, PlayOutcomeUnspecified, ErrStageResultInvalid
	}
}

// Package app wires the cat lucky engine to storage for the request
// handlers.
package app

import (
	"context"
	"errors"

	"github.com/duongpm13/cat-battle/internal/game/lucky"
	"github.com/duongpm13/cat-battle/internal/storage"
)

// GameService exposes the cat lucky operations over an authenticated
// account id. It trusts the id completely; authentication happens at the
// HTTP boundary.
type GameService struct {
	store  storage.LedgerStore
	engine lucky.Engine
}

// NewGameService builds the game service over a ledger store.
func NewGameService(store storage.LedgerStore, engine lucky.Engine) *GameService {
	return &GameService{
		store:  store,
		engine: engine,
	}
}

// GetStatus returns the account's ledger, or the default ledger when the
// account has never played. It never mutates state.
func (s *GameService) GetStatus(ctx context.Context, accountID string) (lucky.Ledger, error) {
	ledger, err := s.store.Ledger(ctx, accountID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return lucky.NewLedger(accountID, s.engine.Now), nil
		}
		return lucky.Ledger{}, err
	}
	return ledger, nil
}

// Play applies one move for the account and returns the resulting ledger.
//
// The engine decides whether the move mutates state; a stale requested
// stage commits nothing and echoes the current ledger back. Engine errors
// (the cooldown lock, a corrupt stage result) roll back and propagate
// unmodified, so a failed play is never followed by a persisted write.
func (s *GameService) Play(ctx context.Context, accountID string, requestedStage int, endGame bool) (lucky.Ledger, lucky.PlayOutcome, error) {
	var outcome lucky.PlayOutcome
	ledger, err := s.store.UpdateLedger(ctx, accountID, func(current lucky.Ledger) (lucky.Ledger, bool, error) {
		next, playOutcome, err := s.engine.Play(current, lucky.PlayInput{
			RequestedStage: requestedStage,
			EndGame:        endGame,
		})
		if err != nil {
			return current, false, err
		}
		outcome = playOutcome
		return next, playOutcome.Mutated(), nil
	})
	if err != nil {
		return lucky.Ledger{}, lucky.PlayOutcomeUnspecified, err
	}
	return ledger, outcome, nil
}

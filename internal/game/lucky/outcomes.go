package lucky

import "math/rand"

const (
	// StageSlotCount is the fixed number of slots per stage.
	StageSlotCount = 4
	// CoinSlotValue is the coin award carried by every coin slot.
	CoinSlotValue = 100
	// GameOverSlotValue is the value carried by the game-over slot.
	GameOverSlotValue = 1
)

// GenerateStageOutcomes produces the outcome sequence for one stage: exactly
// StageSlotCount slots, one game-over slot at a uniformly random index and
// coin slots everywhere else.
//
// intn must behave like rand.Intn, returning a value in [0, n). Passing nil
// uses the shared math/rand source; tests inject a deterministic function or
// a seeded rand.Rand's Intn method.
func GenerateStageOutcomes(intn func(n int) int) []Slot {
	if intn == nil {
		intn = rand.Intn
	}
	gameOverIndex := intn(StageSlotCount)
	slots := make([]Slot, StageSlotCount)
	for i := range slots {
		if i == gameOverIndex {
			slots[i] = Slot{Type: SlotTypeGameOver, Value: GameOverSlotValue}
		} else {
			slots[i] = Slot{Type: SlotTypeCoin, Value: CoinSlotValue}
		}
	}
	return slots
}

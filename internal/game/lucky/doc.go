// Package lucky implements the cat lucky stage-progression game.
//
// A run is a sequence of stages. Each stage has a precomputed outcome
// sequence of four slots, exactly one of which ends the run. The first slot
// of the sequence is the one resolved by the next play for the current
// stage; resolving a coin slot advances the run and generates a fresh
// sequence, resolving the game-over slot resets the run to stage zero.
package lucky

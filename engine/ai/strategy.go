// Package ai picks columns for the computer opponent.
package ai

import (
	"math/rand"

	"connect4-local/game"
	"connect4-local/types"
)

// Strategy chooses the column the computer plays. ok is false when the board
// has no open column.
//
// Implementations may probe the board by placing and clearing pieces but must
// leave it exactly as they found it.
type Strategy interface {
	ChooseColumn(b *game.Board, me types.Player) (column int, ok bool)
}

// ForDifficulty returns the strategy used at the given level. Any level other
// than easy plays the heuristic.
func ForDifficulty(d types.Difficulty, rng *rand.Rand) Strategy {
	fallback := NewRandom(rng)
	switch d {
	case types.DifficultyEasy:
		return fallback
	case types.DifficultyHard:
		return &Heuristic{Depth: 4, Fallback: fallback}
	}
	return &Heuristic{Depth: 2, Fallback: fallback}
}

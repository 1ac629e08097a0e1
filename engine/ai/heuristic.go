package ai

import (
	"connect4-local/game"
	"connect4-local/types"
)

// CenterOrder is the column preference used when nothing wins or blocks.
var CenterOrder = []int{3, 4, 2, 5, 1, 6, 0}

// Heuristic takes an immediate win, else blocks the opponent's immediate win,
// else prefers central columns.
type Heuristic struct {
	// Depth is reported in logs only; the search is always one ply.
	Depth    int
	Fallback Strategy
}

func (h *Heuristic) ChooseColumn(b *game.Board, me types.Player) (int, bool) {
	if col, ok := winningColumn(b, me); ok {
		return col, true
	}
	if col, ok := winningColumn(b, me.Opponent()); ok {
		return col, true
	}
	for _, col := range CenterOrder {
		if !b.TopRowOccupied(col) {
			return col, true
		}
	}
	if h.Fallback != nil {
		return h.Fallback.ChooseColumn(b, me)
	}
	return 0, false
}

// winningColumn returns the lowest column where a piece for player connects four.
func winningColumn(b *game.Board, player types.Player) (int, bool) {
	for col := 0; col < game.Columns; col++ {
		if wins(b, col, player) {
			return col, true
		}
	}
	return 0, false
}

func wins(b *game.Board, col int, player types.Player) bool {
	row, ok := b.LowestEmptyRow(col)
	if !ok {
		return false
	}
	b.Place(row, col, player)
	defer b.Clear(row, col)
	return game.CheckWin(b, player).IsWin
}

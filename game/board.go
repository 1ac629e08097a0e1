// Package game implements the Connect-Four rules: the board, win detection,
// move history and the turn controller. Nothing in this package is safe for
// concurrent use; callers serialise access.
package game

import "connect4-local/types"

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Board is the grid of cells. Row 0 is the top, so pieces settle at Rows-1 first.
type Board struct {
	Grid [Rows][Columns]types.Player
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

func inColumnRange(column int) bool {
	return column >= 0 && column < Columns
}

func inBounds(row, column int) bool {
	return row >= 0 && row < Rows && inColumnRange(column)
}

// LowestEmptyRow scans the column from the bottom and returns the first empty row.
// ok is false when the column is full or out of range.
func (b *Board) LowestEmptyRow(column int) (row int, ok bool) {
	if !inColumnRange(column) {
		return -1, false
	}
	for r := Rows - 1; r >= 0; r-- {
		if b.Grid[r][column] == types.Empty {
			return r, true
		}
	}
	return -1, false
}

// Place writes player into the cell. The caller guarantees the cell is the
// lowest empty one in its column.
func (b *Board) Place(row, column int, player types.Player) {
	b.Grid[row][column] = player
}

// Clear empties a cell. Only ever used on the most recently placed piece.
func (b *Board) Clear(row, column int) {
	b.Grid[row][column] = types.Empty
}

// At returns the occupant of a cell, or Empty when out of bounds.
func (b *Board) At(row, column int) types.Player {
	if !inBounds(row, column) {
		return types.Empty
	}
	return b.Grid[row][column]
}

// TopRowOccupied reports whether the column is full.
func (b *Board) TopRowOccupied(column int) bool {
	if !inColumnRange(column) {
		return true
	}
	return b.Grid[0][column] != types.Empty
}

// IsFull is true once every cell holds a piece.
func (b *Board) IsFull() bool {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			if b.Grid[r][c] == types.Empty {
				return false
			}
		}
	}
	return true
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			if b.Grid[r][c] != types.Empty {
				n++
			}
		}
	}
	return n
}

// ValidColumns lists, in ascending order, the columns that can still take a piece.
func (b *Board) ValidColumns() []int {
	cols := make([]int, 0, Columns)
	for c := 0; c < Columns; c++ {
		if !b.TopRowOccupied(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// Snapshot returns a deep copy of the grid as plain ints.
func (b *Board) Snapshot() [][]int {
	out := make([][]int, Rows)
	for r := range out {
		out[r] = make([]int, Columns)
		for c := 0; c < Columns; c++ {
			out[r][c] = int(b.Grid[r][c])
		}
	}
	return out
}

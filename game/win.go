package game

import "connect4-local/types"

// direction is a scan step. The order of directions below decides which line
// is reported when a board holds more than one four-in-a-row.
type direction struct {
	dRow, dCol int
	// rowFrom/rowTo bound the starting row of a window, inclusive/exclusive.
	rowFrom, rowTo int
	colFrom, colTo int
	columnMajor    bool
}

var directions = []direction{
	// horizontal, left to right
	{dRow: 0, dCol: 1, rowFrom: 0, rowTo: Rows, colFrom: 0, colTo: Columns - ToWin + 1},
	// vertical, top to bottom, scanned column by column
	{dRow: 1, dCol: 0, rowFrom: 0, rowTo: Rows - ToWin + 1, colFrom: 0, colTo: Columns, columnMajor: true},
	// diagonal down-right
	{dRow: 1, dCol: 1, rowFrom: 0, rowTo: Rows - ToWin + 1, colFrom: 0, colTo: Columns - ToWin + 1},
	// diagonal up-right
	{dRow: -1, dCol: 1, rowFrom: ToWin - 1, rowTo: Rows, colFrom: 0, colTo: Columns - ToWin + 1},
}

// CheckWin looks for four contiguous cells owned by player and returns the
// first window found. It never mutates the board.
func CheckWin(b *Board, player types.Player) types.WinResult {
	if player == types.Empty {
		return types.WinResult{}
	}
	for _, d := range directions {
		if cells, ok := d.scan(b, player); ok {
			return types.WinResult{IsWin: true, Cells: cells}
		}
	}
	return types.WinResult{}
}

func (d direction) scan(b *Board, player types.Player) ([]types.Pos, bool) {
	if d.columnMajor {
		for c := d.colFrom; c < d.colTo; c++ {
			for r := d.rowFrom; r < d.rowTo; r++ {
				if d.window(b, r, c, player) {
					return d.cells(r, c), true
				}
			}
		}
		return nil, false
	}
	for r := d.rowFrom; r < d.rowTo; r++ {
		for c := d.colFrom; c < d.colTo; c++ {
			if d.window(b, r, c, player) {
				return d.cells(r, c), true
			}
		}
	}
	return nil, false
}

func (d direction) window(b *Board, row, col int, player types.Player) bool {
	for i := 0; i < ToWin; i++ {
		if b.Grid[row+i*d.dRow][col+i*d.dCol] != player {
			return false
		}
	}
	return true
}

func (d direction) cells(row, col int) []types.Pos {
	out := make([]types.Pos, ToWin)
	for i := range out {
		out[i] = types.Pos{Row: row + i*d.dRow, Column: col + i*d.dCol}
	}
	return out
}

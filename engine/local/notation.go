// Package local runs a Connect Four game in-process, with the computer
// opponent scheduled on a timer.
package local

import (
	"fmt"
	"strconv"
	"strings"

	"connect4-local/game"
	"connect4-local/types"
)

// Column notation:
// - Columns are shown 1-7 from left to right
// - Internally they are 0-6
// - Example: "4" is the center column (index 3)

// ColumnName converts a 0-based column to its display name.
func ColumnName(column int) string {
	return strconv.Itoa(column + 1)
}

// ParseColumn converts a display name ("1".."7") to a 0-based column.
func ParseColumn(name string) (int, error) {
	name = strings.TrimSpace(name)
	n, err := strconv.Atoi(name)
	if err != nil {
		return 0, fmt.Errorf("invalid column %q: %w", name, err)
	}
	if n < 1 || n > game.Columns {
		return 0, fmt.Errorf("column out of range: %s", name)
	}
	return n - 1, nil
}

// MoveLabel describes the move played on the given 1-based turn.
func MoveLabel(turn int, m types.Move) string {
	return fmt.Sprintf("Turn %d: Player %d to column %s", turn, int(m.Player), ColumnName(m.Column))
}

// PlayerName returns the display name of player in the given mode.
// Player 2 is the computer when playing against it.
func PlayerName(p types.Player, mode types.Mode) string {
	if p == game.ComputerPlayer && mode == types.ModeHumanVsComputer {
		return "Computer"
	}
	return p.String()
}

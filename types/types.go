// Package types contains shared data structures for connect4-local.
package types

import "fmt"

// Player identifies the occupant of a cell or the side to move.
// The zero value is an empty cell.
type Player int

const (
	Empty   Player = 0
	Player1 Player = 1
	Player2 Player = 2
)

// Opponent returns the other player. Empty has no opponent and is returned unchanged.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	}
	return "Empty"
}

// Pos is a (row, column) cell address. Row 0 is the top of the board.
type Pos struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Move is a piece that was dropped. Row is derived from the column at drop time.
type Move struct {
	Row    int    `json:"row"`
	Column int    `json:"column"`
	Player Player `json:"player"`
}

// WinResult reports a four-in-a-row. Cells holds exactly four positions when IsWin is set.
type WinResult struct {
	IsWin bool
	Cells []Pos
}

// Mode selects who controls player 2.
type Mode string

const (
	ModeHumanVsHuman    Mode = "pvp"
	ModeHumanVsComputer Mode = "pva"
)

// ParseMode accepts the short names used on the command line and in the config file.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "pvp", "human", "hvh":
		return ModeHumanVsHuman, nil
	case "pva", "computer", "hvc", "ai":
		return ModeHumanVsComputer, nil
	}
	return "", fmt.Errorf("unknown game mode %q", s)
}

// Difficulty is the computer opponent's level.
type Difficulty string

const (
	DifficultyEasy Difficulty = "easy"
	DifficultyHard Difficulty = "hard"
)

// ParseDifficulty accepts "easy" or "hard".
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return DifficultyEasy, nil
	case "hard":
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// TerminalKind tells how a drop ended the game, if it did.
type TerminalKind int

const (
	TerminalNone TerminalKind = iota
	TerminalWin
	TerminalDraw
)

// Terminal describes a finished game. Cells is only set for a win.
type Terminal struct {
	Kind   TerminalKind
	Winner Player
	Cells  []Pos
}

// DropOutcome is returned for every drop attempt. Applied is nil when the drop was ignored.
type DropOutcome struct {
	Applied      *Move
	Terminal     Terminal
	NextPlayer   Player
	ComputerTurn bool
}

// BoardState represents a read-only snapshot of a game.
// Board is indexed as Board[row][column] where 0=empty, 1=player 1, 2=player 2.
type BoardState struct {
	MoveNumber   int     `json:"move_number"`
	PlayerToMove int     `json:"player_to_move"`
	Phase        string  `json:"phase"` // "playing", "finished"
	Board        [][]int `json:"board"`
	Outcome      string  `json:"outcome"`
	Winner       int     `json:"winner"`
	WinningCells []Pos   `json:"winning_cells"`
	Moves        []Move  `json:"moves"`
	LastMove     Pos     `json:"last_move"`
}

const (
	PhasePlaying  = "playing"
	PhaseFinished = "finished"
)

// Finished returns true if the game is over.
func (b *BoardState) Finished() bool {
	return b.Phase == PhaseFinished
}

// Height returns the number of rows.
func (b *BoardState) Height() int {
	return len(b.Board)
}

// Width returns the number of columns.
func (b *BoardState) Width() int {
	if b.Height() == 0 {
		return 0
	}
	return len(b.Board[0])
}

// IsWinningCell reports whether (row, col) is part of the winning line.
func (b *BoardState) IsWinningCell(row, col int) bool {
	for _, p := range b.WinningCells {
		if p.Row == row && p.Column == col {
			return true
		}
	}
	return false
}

// NewBoardState creates an empty snapshot of the given size with player 1 to move.
func NewBoardState(rows, cols int) *BoardState {
	board := make([][]int, rows)
	for i := range board {
		board[i] = make([]int, cols)
	}
	return &BoardState{
		MoveNumber:   0,
		PlayerToMove: int(Player1),
		Phase:        PhasePlaying,
		Board:        board,
		LastMove:     Pos{Row: -1, Column: -1},
	}
}

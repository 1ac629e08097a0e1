package game

import (
	"fmt"

	"connect4-local/types"
)

// Status is the controller state.
type Status string

const (
	StatusActive Status = "active"
	StatusWon    Status = "won"
	StatusDraw   Status = "draw"
)

// ComputerPlayer is the side played by the computer in human-vs-computer mode.
const ComputerPlayer = types.Player2

// Game owns the board and history and enforces turn order.
type Game struct {
	board        *Board
	history      History
	current      types.Player
	status       Status
	winner       types.Player
	winningCells []types.Pos
	mode         types.Mode
	difficulty   types.Difficulty
}

// New starts an active game with player 1 to move.
func New(mode types.Mode, difficulty types.Difficulty) *Game {
	g := &Game{mode: mode, difficulty: difficulty}
	g.Reset()
	return g
}

// Reset clears the board and history and gives the move back to player 1.
// Mode and difficulty are kept.
func (g *Game) Reset() {
	g.board = NewBoard()
	g.history.reset()
	g.current = types.Player1
	g.status = StatusActive
	g.winner = types.Empty
	g.winningCells = nil
}

// SetMode changes the mode and restarts the game.
func (g *Game) SetMode(mode types.Mode) {
	g.mode = mode
	g.Reset()
}

// SetDifficulty changes the computer level and restarts the game.
func (g *Game) SetDifficulty(d types.Difficulty) {
	g.difficulty = d
	g.Reset()
}

// DropPiece plays the current player's piece into column. Drops into a full
// or out-of-range column, and drops after the game has ended, are ignored and
// leave Applied nil.
func (g *Game) DropPiece(column int) types.DropOutcome {
	if g.status != StatusActive {
		return types.DropOutcome{NextPlayer: g.current}
	}
	row, ok := g.board.LowestEmptyRow(column)
	if !ok {
		return types.DropOutcome{NextPlayer: g.current, ComputerTurn: g.IsComputerTurn()}
	}

	mover := g.current
	g.board.Place(row, column, mover)
	move := types.Move{Row: row, Column: column, Player: mover}
	g.history.Record(move)

	if res := CheckWin(g.board, mover); res.IsWin {
		g.status = StatusWon
		g.winner = mover
		g.winningCells = res.Cells
		return types.DropOutcome{
			Applied:    &move,
			Terminal:   types.Terminal{Kind: types.TerminalWin, Winner: mover, Cells: res.Cells},
			NextPlayer: g.current,
		}
	}

	if g.board.IsFull() {
		g.status = StatusDraw
		return types.DropOutcome{
			Applied:    &move,
			Terminal:   types.Terminal{Kind: types.TerminalDraw},
			NextPlayer: g.current,
		}
	}

	g.switchPlayer()
	return types.DropOutcome{
		Applied:      &move,
		NextPlayer:   g.current,
		ComputerTurn: g.IsComputerTurn(),
	}
}

// Undo takes back the last move. It is only allowed in an active
// human-vs-human game with at least one move played.
func (g *Game) Undo() (types.Move, error) {
	if !g.CanUndo() {
		return types.Move{}, ErrNotAllowed
	}
	last, err := g.history.UndoLast()
	if err != nil {
		return types.Move{}, fmt.Errorf("undo: %w", err)
	}
	g.board.Clear(last.Row, last.Column)
	g.switchPlayer()
	return last, nil
}

// CanUndo mirrors the guard in Undo.
func (g *Game) CanUndo() bool {
	return g.mode == types.ModeHumanVsHuman && g.status == StatusActive && g.history.Len() > 0
}

func (g *Game) switchPlayer() {
	g.current = g.current.Opponent()
}

// IsComputerTurn reports whether the computer should move next.
func (g *Game) IsComputerTurn() bool {
	return g.mode == types.ModeHumanVsComputer && g.status == StatusActive && g.current == ComputerPlayer
}

// Board returns a copy of the board.
func (g *Game) Board() Board {
	return *g.board
}

// BoardRef exposes the live board for move probing. Any cell a caller
// changes must be restored before it returns.
func (g *Game) BoardRef() *Board {
	return g.board
}

// History returns a copy of the move log.
func (g *Game) History() []types.Move {
	return g.history.Moves()
}

func (g *Game) HistoryLen() int {
	return g.history.Len()
}

func (g *Game) CurrentPlayer() types.Player {
	return g.current
}

// Active is false once the game was won or drawn.
func (g *Game) Active() bool {
	return g.status == StatusActive
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) Winner() types.Player {
	return g.winner
}

// WinningCells returns the four winning cells, or nil.
func (g *Game) WinningCells() []types.Pos {
	if g.winningCells == nil {
		return nil
	}
	out := make([]types.Pos, len(g.winningCells))
	copy(out, g.winningCells)
	return out
}

func (g *Game) Mode() types.Mode {
	return g.mode
}

func (g *Game) Difficulty() types.Difficulty {
	return g.difficulty
}

// Outcome is the human readable result, empty while the game is running.
func (g *Game) Outcome() string {
	switch g.status {
	case StatusWon:
		return fmt.Sprintf("Player %d wins!", int(g.winner))
	case StatusDraw:
		return "It's a draw!"
	}
	return ""
}

// State builds a deep-copied snapshot for presentation.
func (g *Game) State() *types.BoardState {
	state := &types.BoardState{
		MoveNumber:   g.history.Len(),
		PlayerToMove: int(g.current),
		Phase:        types.PhasePlaying,
		Board:        g.board.Snapshot(),
		Outcome:      g.Outcome(),
		Winner:       int(g.winner),
		WinningCells: g.WinningCells(),
		Moves:        g.history.Moves(),
		LastMove:     types.Pos{Row: -1, Column: -1},
	}
	if g.status != StatusActive {
		state.Phase = types.PhaseFinished
	}
	if last, ok := g.history.Last(); ok {
		state.LastMove = types.Pos{Row: last.Row, Column: last.Column}
	}
	return state
}

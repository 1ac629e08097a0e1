// Package engine defines the interface between the UI and a game engine.
package engine

import (
	"time"

	"connect4-local/types"
)

// GameEngine is a running Connect Four game, optionally with a computer opponent.
type GameEngine interface {
	// Start initializes the game.
	Start() error

	// GetBoardState returns a snapshot of the current game.
	GetBoardState() *types.BoardState

	// PlayMove drops the human player's piece into column.
	// A full column is not an error: the outcome's Applied is nil.
	PlayMove(column int) (types.DropOutcome, error)

	// Undo takes back the last move. Only available between two humans.
	Undo() (types.Move, error)

	// Reset starts a new game with the same settings.
	Reset()

	// SetMode switches between human and computer opponents and starts a new game.
	SetMode(mode types.Mode)

	// SetDifficulty changes the computer level and starts a new game.
	SetDifficulty(d types.Difficulty)

	// IsMyTurn returns true if a human may drop a piece now.
	IsMyTurn() bool

	// CanUndo reports whether Undo would succeed.
	CanUndo() bool

	// History returns the applied moves, oldest first.
	History() []types.Move

	// Config returns the current settings.
	Config() GameConfig

	// OnMove registers a callback for every applied move (by either player).
	// state already contains the move.
	OnMove(func(m types.Move, state *types.BoardState))

	// OnGameEnd registers a callback for a win or a draw. It fires after OnMove.
	OnGameEnd(func(state *types.BoardState))

	// Close stops any pending computer move.
	Close()
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	Mode          types.Mode
	Difficulty    types.Difficulty
	ComputerDelay time.Duration // pause before the computer plays
	Seed          int64         // 0 seeds from the clock
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Mode:          types.ModeHumanVsHuman,
		Difficulty:    types.DifficultyEasy,
		ComputerDelay: 500 * time.Millisecond,
	}
}

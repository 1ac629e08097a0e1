package local

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"connect4-local/engine"
	"connect4-local/engine/ai"
	"connect4-local/game"
	"connect4-local/types"
)

var debugLog *log.Logger

func init() {
	debugLog = log.New(io.Discard, "", log.Ltime|log.Lmicroseconds)
	f, err := os.Create(filepath.Join(os.TempDir(), "connect4-debug.log"))
	if err == nil {
		debugLog.SetOutput(f)
	}
}

// SetDebugOutput redirects the debug log.
func SetDebugOutput(w io.Writer) {
	debugLog.SetOutput(w)
}

var (
	ErrNotYourTurn = errors.New("not your turn")
	ErrClosed      = errors.New("engine is closed")
)

// LocalEngine implements engine.GameEngine on top of game.Game.
type LocalEngine struct {
	config   engine.GameConfig
	game     *game.Game
	strategy ai.Strategy
	rng      *rand.Rand

	// generation identifies the current game. A deferred computer move
	// that was scheduled under another generation is dropped.
	generation uuid.UUID
	timer      *time.Timer
	closed     bool

	moveCallback func(m types.Move, state *types.BoardState)
	endCallback  func(state *types.BoardState)

	mu sync.Mutex
}

var _ engine.GameEngine = (*LocalEngine)(nil)

// New creates an engine with the given configuration.
func New(cfg engine.GameConfig) *LocalEngine {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	return &LocalEngine{
		config:     cfg,
		game:       game.New(cfg.Mode, cfg.Difficulty),
		strategy:   ai.ForDifficulty(cfg.Difficulty, rng),
		rng:        rng,
		generation: uuid.New(),
	}
}

// Start begins the game. Player 1 is always human, so nothing is scheduled.
func (e *LocalEngine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	debugLog.Printf("[ENGINE] start generation=%s mode=%s difficulty=%s", e.generation, e.config.Mode, e.config.Difficulty)
	return nil
}

// GetBoardState returns a copy of the current game state.
func (e *LocalEngine) GetBoardState() *types.BoardState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.State()
}

// PlayMove drops the human player's piece into column.
func (e *LocalEngine) PlayMove(column int) (types.DropOutcome, error) {
	debugLog.Printf("[ENGINE] PlayMove: column=%d", column)
	e.mu.Lock()

	if e.closed {
		e.mu.Unlock()
		return types.DropOutcome{}, ErrClosed
	}

	if e.game.IsComputerTurn() {
		e.mu.Unlock()
		return types.DropOutcome{NextPlayer: game.ComputerPlayer, ComputerTurn: true}, ErrNotYourTurn
	}

	out := e.game.DropPiece(column)
	if out.Applied == nil {
		debugLog.Printf("[ENGINE] PlayMove: column=%d ignored", column)
		e.mu.Unlock()
		return out, nil
	}

	state := e.game.State()
	if out.ComputerTurn {
		e.scheduleComputerMove()
	}
	onMove, onEnd := e.moveCallback, e.endCallback
	e.mu.Unlock()

	// Notify callbacks (outside lock to prevent deadlock)
	notify(onMove, onEnd, out, state)
	return out, nil
}

// scheduleComputerMove must be called while holding the lock.
func (e *LocalEngine) scheduleComputerMove() {
	e.stopTimer()
	gen := e.generation
	debugLog.Printf("[AI] scheduling move in %s generation=%s", e.config.ComputerDelay, gen)
	e.timer = time.AfterFunc(e.config.ComputerDelay, func() {
		e.computerMove(gen)
	})
}

// computerMove runs on the timer goroutine.
func (e *LocalEngine) computerMove(gen uuid.UUID) {
	e.mu.Lock()

	if e.closed || gen != e.generation {
		debugLog.Printf("[AI] stale move for generation=%s dropped", gen)
		e.mu.Unlock()
		return
	}
	if !e.game.IsComputerTurn() {
		e.mu.Unlock()
		return
	}

	column, ok := e.strategy.ChooseColumn(e.game.BoardRef(), game.ComputerPlayer)
	if !ok {
		debugLog.Printf("[AI] no open column")
		e.mu.Unlock()
		return
	}
	if h, isHeuristic := e.strategy.(*ai.Heuristic); isHeuristic {
		debugLog.Printf("[AI] heuristic depth=%d chose column=%d", h.Depth, column)
	} else {
		debugLog.Printf("[AI] random chose column=%d", column)
	}

	out := e.game.DropPiece(column)
	if out.Applied == nil {
		e.mu.Unlock()
		return
	}
	state := e.game.State()
	onMove, onEnd := e.moveCallback, e.endCallback
	e.mu.Unlock()

	notify(onMove, onEnd, out, state)
}

func notify(onMove func(types.Move, *types.BoardState), onEnd func(*types.BoardState), out types.DropOutcome, state *types.BoardState) {
	if onMove != nil {
		onMove(*out.Applied, state)
	}
	if out.Terminal.Kind != types.TerminalNone {
		debugLog.Printf("[ENGINE] game over: %s", state.Outcome)
		if onEnd != nil {
			onEnd(state)
		}
	}
}

// Undo takes back the last move.
func (e *LocalEngine) Undo() (types.Move, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return types.Move{}, ErrClosed
	}
	m, err := e.game.Undo()
	if err != nil {
		return types.Move{}, fmt.Errorf("cannot undo: %w", err)
	}
	debugLog.Printf("[ENGINE] undo row=%d column=%d", m.Row, m.Column)
	return m, nil
}

// Reset starts a new game. A computer move still pending is discarded.
func (e *LocalEngine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.game.Reset()
	e.newGeneration()
}

// SetMode switches the opponent and starts a new game.
func (e *LocalEngine) SetMode(mode types.Mode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.config.Mode = mode
	e.game.SetMode(mode)
	e.newGeneration()
}

// SetDifficulty changes the computer level and starts a new game.
func (e *LocalEngine) SetDifficulty(d types.Difficulty) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.config.Difficulty = d
	e.strategy = ai.ForDifficulty(d, e.rng)
	e.game.SetDifficulty(d)
	e.newGeneration()
}

// newGeneration must be called while holding the lock.
func (e *LocalEngine) newGeneration() {
	e.stopTimer()
	e.generation = uuid.New()
	debugLog.Printf("[ENGINE] new game generation=%s mode=%s difficulty=%s", e.generation, e.config.Mode, e.config.Difficulty)
}

func (e *LocalEngine) stopTimer() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// IsMyTurn returns true if a human may drop a piece now.
func (e *LocalEngine) IsMyTurn() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.closed && e.game.Active() && !e.game.IsComputerTurn()
}

func (e *LocalEngine) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.closed && e.game.CanUndo()
}

func (e *LocalEngine) History() []types.Move {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.History()
}

func (e *LocalEngine) Config() engine.GameConfig {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.config
}

// OnMove registers a callback for when a move is played.
func (e *LocalEngine) OnMove(callback func(m types.Move, state *types.BoardState)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.moveCallback = callback
}

// OnGameEnd registers a callback for when the game ends.
func (e *LocalEngine) OnGameEnd(callback func(state *types.BoardState)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.endCallback = callback
}

// Close stops any pending computer move. Later calls are no-ops.
func (e *LocalEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.stopTimer()
	debugLog.Printf("[ENGINE] closed generation=%s", e.generation)
}

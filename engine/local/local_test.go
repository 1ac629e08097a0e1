package local

import (
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"connect4-local/engine"
	"connect4-local/game"
	"connect4-local/types"
)

func TestMain(m *testing.M) {
	SetDebugOutput(io.Discard)
	os.Exit(m.Run())
}

func newEngine(t *testing.T, mode types.Mode, delay time.Duration) *LocalEngine {
	t.Helper()
	cfg := engine.DefaultConfig()
	cfg.Mode = mode
	cfg.ComputerDelay = delay
	cfg.Seed = 1
	e := New(cfg)
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(e.Close)
	return e
}

func TestComputerReplies(t *testing.T) {
	e := newEngine(t, types.ModeHumanVsComputer, 50*time.Millisecond)
	moves := make(chan types.Move, 4)
	e.OnMove(func(m types.Move, _ *types.BoardState) { moves <- m })

	out, err := e.PlayMove(3)
	if err != nil {
		t.Fatal(err)
	}
	if !out.ComputerTurn {
		t.Fatal("computer should be next")
	}
	if e.IsMyTurn() {
		t.Fatal("human must wait for the computer")
	}

	if m := <-moves; m.Player != types.Player1 {
		t.Fatalf("first move by %v", m.Player)
	}
	select {
	case m := <-moves:
		if m.Player != types.Player2 {
			t.Fatalf("reply by %v", m.Player)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("computer never moved")
	}
	if !e.IsMyTurn() {
		t.Fatal("turn should be back with the human")
	}
	if n := len(e.History()); n != 2 {
		t.Fatalf("history has %d moves, want 2", n)
	}
}

func TestNotYourTurn(t *testing.T) {
	e := newEngine(t, types.ModeHumanVsComputer, time.Hour)
	if _, err := e.PlayMove(3); err != nil {
		t.Fatal(err)
	}
	if _, err := e.PlayMove(4); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("PlayMove() error = %v, want ErrNotYourTurn", err)
	}
	if n := len(e.History()); n != 1 {
		t.Fatalf("history has %d moves, want 1", n)
	}
}

func TestResetDiscardsPendingMove(t *testing.T) {
	e := newEngine(t, types.ModeHumanVsComputer, 100*time.Millisecond)
	moves := make(chan types.Move, 4)
	e.OnMove(func(m types.Move, _ *types.BoardState) { moves <- m })

	if _, err := e.PlayMove(3); err != nil {
		t.Fatal(err)
	}
	<-moves
	e.Reset()

	select {
	case m := <-moves:
		t.Fatalf("stale computer move applied: %+v", m)
	case <-time.After(300 * time.Millisecond):
	}
	state := e.GetBoardState()
	if state.MoveNumber != 0 || state.PlayerToMove != int(types.Player1) {
		t.Fatalf("state after reset = %+v", state)
	}
}

func TestStaleGenerationIsNoOp(t *testing.T) {
	e := newEngine(t, types.ModeHumanVsComputer, time.Hour)
	if _, err := e.PlayMove(3); err != nil {
		t.Fatal(err)
	}
	e.mu.Lock()
	stale := e.generation
	e.mu.Unlock()

	e.Reset()
	if _, err := e.PlayMove(3); err != nil {
		t.Fatal(err)
	}

	// The computer is to move again, but under a new generation.
	e.computerMove(stale)
	if n := len(e.History()); n != 1 {
		t.Fatalf("stale move applied, history has %d moves", n)
	}

	e.mu.Lock()
	current := e.generation
	e.mu.Unlock()
	e.computerMove(current)
	if n := len(e.History()); n != 2 {
		t.Fatalf("current move not applied, history has %d moves", n)
	}
}

func TestMoveFiresBeforeGameEnd(t *testing.T) {
	e := newEngine(t, types.ModeHumanVsHuman, time.Hour)
	var events []string
	var moveState, endState *types.BoardState
	e.OnMove(func(m types.Move, s *types.BoardState) {
		events = append(events, "move")
		moveState = s
	})
	e.OnGameEnd(func(s *types.BoardState) {
		events = append(events, "end")
		endState = s
	})

	for _, col := range []int{0, 1, 0, 1, 0, 1, 0} {
		if _, err := e.PlayMove(col); err != nil {
			t.Fatal(err)
		}
	}
	if len(events) != 8 || events[6] != "move" || events[7] != "end" {
		t.Fatalf("events = %v", events)
	}
	if moveState.Board[2][0] != int(types.Player1) {
		t.Fatal("move callback state is missing the winning piece")
	}
	if !endState.Finished() || endState.Outcome != "Player 1 wins!" || len(endState.WinningCells) != 4 {
		t.Fatalf("end state = %+v", endState)
	}
	if e.IsMyTurn() {
		t.Fatal("nobody moves after the game ended")
	}
	out, err := e.PlayMove(3)
	if err != nil || out.Applied != nil {
		t.Fatalf("drop after end: applied=%v err=%v", out.Applied, err)
	}
}

func TestFullColumnIsNotAnError(t *testing.T) {
	e := newEngine(t, types.ModeHumanVsHuman, time.Hour)
	for i := 0; i < game.Rows; i++ {
		if _, err := e.PlayMove(6); err != nil {
			t.Fatal(err)
		}
	}
	out, err := e.PlayMove(6)
	if err != nil {
		t.Fatal(err)
	}
	if out.Applied != nil {
		t.Fatal("drop into full column applied")
	}
}

func TestUndo(t *testing.T) {
	e := newEngine(t, types.ModeHumanVsHuman, time.Hour)
	if _, err := e.Undo(); !errors.Is(err, game.ErrNotAllowed) {
		t.Fatalf("undo on empty game: %v", err)
	}
	e.PlayMove(2)
	e.PlayMove(5)
	if !e.CanUndo() {
		t.Fatal("CanUndo() = false")
	}
	m, err := e.Undo()
	if err != nil {
		t.Fatal(err)
	}
	if m.Column != 5 || m.Player != types.Player2 {
		t.Fatalf("undid %+v", m)
	}

	e.SetMode(types.ModeHumanVsComputer)
	if len(e.History()) != 0 {
		t.Fatal("SetMode should start a new game")
	}
	e.PlayMove(3)
	if _, err := e.Undo(); !errors.Is(err, game.ErrNotAllowed) {
		t.Fatalf("undo against the computer: %v", err)
	}
}

func TestSetDifficulty(t *testing.T) {
	e := newEngine(t, types.ModeHumanVsComputer, time.Hour)
	e.PlayMove(3)
	e.SetDifficulty(types.DifficultyHard)
	if e.Config().Difficulty != types.DifficultyHard {
		t.Fatal("difficulty not stored")
	}
	if len(e.History()) != 0 || !e.IsMyTurn() {
		t.Fatal("SetDifficulty should start a new game")
	}
}

func TestClose(t *testing.T) {
	e := newEngine(t, types.ModeHumanVsComputer, time.Hour)
	if _, err := e.PlayMove(3); err != nil {
		t.Fatal(err)
	}
	e.mu.Lock()
	gen := e.generation
	e.mu.Unlock()

	e.Close()
	e.Close()

	e.computerMove(gen)
	if n := len(e.History()); n != 1 {
		t.Fatalf("computer moved after close, history has %d moves", n)
	}
	if _, err := e.PlayMove(0); !errors.Is(err, ErrClosed) {
		t.Fatalf("PlayMove() after close: %v", err)
	}
	if e.IsMyTurn() {
		t.Fatal("closed engine accepts no moves")
	}
}

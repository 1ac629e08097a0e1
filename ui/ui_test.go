package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"connect4-local/config"
	"connect4-local/engine"
	"connect4-local/game"
	"connect4-local/types"
)

func testConfig() *config.Config {
	c := config.DefaultConfig
	return &c
}

func cellRune(t *testing.T, s tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestBoardDraw(t *testing.T) {
	cfg := testConfig()
	board := NewBoard(nil, cfg, tview.NewTextView())

	g := game.New(types.ModeHumanVsHuman, types.DifficultyEasy)
	g.DropPiece(3)
	g.DropPiece(3)
	board.BoardState = g.State()
	board.MoveSelection(0)

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(40, 12)
	board.Box.SetRect(0, 0, 40, 12)
	board.Box.Draw(screen)

	symbols := cfg.Theme().Symbols
	tests := []struct {
		name     string
		row, col int
		want     rune
	}{
		{"player 1 on the bottom row", 5, 3, symbols.Player1},
		{"player 2 on top of it", 4, 3, symbols.Player2},
		{"empty corner", 0, 0, symbols.Empty},
	}
	for _, tt := range tests {
		x, y := cellOrigin(boardLeft, 0, tt.row, tt.col)
		if got := cellRune(t, screen, x+1, y); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}

	// Cursor sits above the last played column, numbers below the board.
	if got := cellRune(t, screen, boardLeft+3*cellWidth+1, 0); got != symbols.Cursor {
		t.Errorf("cursor: got %q, want %q", got, symbols.Cursor)
	}
	if got := cellRune(t, screen, boardLeft+1, game.Rows+1); got != '1' {
		t.Errorf("first column number: got %q", got)
	}
	if got := cellRune(t, screen, boardLeft+6*cellWidth+1, game.Rows+1); got != '7' {
		t.Errorf("last column number: got %q", got)
	}
}

func TestMoveSelection(t *testing.T) {
	board := NewBoard(nil, testConfig(), tview.NewTextView())
	board.BoardState = types.NewBoardState(game.Rows, game.Columns)

	board.MoveSelection(1)
	if board.SelectedColumn() != 3 {
		t.Fatalf("first selection = %d, want center", board.SelectedColumn())
	}
	for i := 0; i < 10; i++ {
		board.MoveSelection(1)
	}
	if board.SelectedColumn() != game.Columns-1 {
		t.Fatalf("selection ran past the edge: %d", board.SelectedColumn())
	}
	board.ResetSelection()
	if board.SelectedColumn() != -1 {
		t.Fatal("selection not cleared")
	}
}

func TestHintText(t *testing.T) {
	board := NewBoard(nil, testConfig(), tview.NewTextView())
	board.BoardState = types.NewBoardState(game.Rows, game.Columns)
	if hint := board.hintText(); !strings.Contains(hint, "Player 1 to move") {
		t.Fatalf("hint = %q", hint)
	}

	g := game.New(types.ModeHumanVsHuman, types.DifficultyEasy)
	for _, col := range []int{0, 1, 0, 1, 0, 1, 0} {
		g.DropPiece(col)
	}
	board.BoardState = g.State()
	board.finished = true
	if hint := board.hintText(); !strings.Contains(hint, "Player 1 wins!") {
		t.Fatalf("hint = %q", hint)
	}
}

func TestInfoPanel(t *testing.T) {
	panel := NewGameInfoPanel()
	panel.SetMode(types.ModeHumanVsComputer, types.DifficultyHard)

	g := game.New(types.ModeHumanVsComputer, types.DifficultyHard)
	g.DropPiece(3)
	g.DropPiece(0)
	panel.SetBoardState(g.State())

	text := panel.text()
	for _, want := range []string{
		"Computer (hard)",
		"Turn 1: Player 1 to column 4",
		"Turn 2: Player 2 to column 1",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("panel text missing %q:\n%s", want, text)
		}
	}
}

func TestSetupStartsSelectedGame(t *testing.T) {
	cfg := testConfig()
	var started *engine.GameConfig
	setup := NewGameSetup(cfg, func(c engine.GameConfig) { started = &c }, func() {}, nil)

	got := setup.GameConfig()
	if got.Mode != types.ModeHumanVsHuman || got.ComputerDelay != 500*time.Millisecond {
		t.Fatalf("initial selection = %+v", got)
	}

	handler := setup.InputHandler()
	press := func(key tcell.Key, r rune) {
		handler(tcell.NewEventKey(key, r, tcell.ModNone), func(tview.Primitive) {})
	}
	press(tcell.KeyDown, 0)   // mode: vs computer
	press(tcell.KeyTab, 0)    // difficulty
	press(tcell.KeyDown, 0)   // hard
	press(tcell.KeyTab, 0)    // think time
	press(tcell.KeyLeft, 0)   // 400ms
	press(tcell.KeyRune, 's') // start

	if started == nil {
		t.Fatal("start not triggered")
	}
	if started.Mode != types.ModeHumanVsComputer || started.Difficulty != types.DifficultyHard {
		t.Fatalf("started %+v", started)
	}
	if started.ComputerDelay != 400*time.Millisecond {
		t.Fatalf("delay = %s", started.ComputerDelay)
	}
	if cfg.Game.Mode != "pva" || cfg.Game.ComputerDelayMs != 400 {
		t.Fatalf("config not updated: %+v", cfg.Game)
	}
}

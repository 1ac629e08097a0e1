// Package ui specifies custom controls for tview to play Connect Four in the terminal.
package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"connect4-local/config"
	"connect4-local/engine"
	"connect4-local/engine/local"
	"connect4-local/types"
)

const (
	cellWidth  = 3 // " ● "
	boardLeft  = 2
	resultWin  = 800 * time.Millisecond
	resultDraw = 100 * time.Millisecond
)

// Style slots, filled by SetConfig.
const (
	styleBoard = iota
	stylePlayer1
	stylePlayer2
	styleEmpty
	styleWin
	styleCursorFG
	styleCursorBG
	styleLastPlayed
	styleText
)

type BoardUI struct {
	Box        *tview.Box
	BoardState *types.BoardState
	hint       *tview.TextView
	cfg        *config.Config
	finished   bool
	selCol     int
	app        *tview.Application
	eng        engine.GameEngine
	styles     []tcell.Color
	infoPanel  *GameInfoPanel
	focusMode  bool
	screen     tcell.Screen

	// onResult shows the result dialog once the game ended.
	onResult    func(state *types.BoardState)
	resultTimer *time.Timer
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *BoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *BoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

func (g *BoardUI) IsFocusMode() bool {
	return g.focusMode
}

// SelectedColumn returns the column under the cursor, or -1.
func (g *BoardUI) SelectedColumn() int {
	return g.selCol
}

// MoveSelection moves the cursor by delta columns. The first call puts it
// on the last played column, or the center.
func (g *BoardUI) MoveSelection(delta int) {
	if g.BoardState.Finished() {
		g.ResetSelection()
		return
	}
	if g.selCol == -1 {
		g.selCol = g.BoardState.LastMove.Column
		if g.selCol < 0 {
			g.selCol = g.BoardState.Width() / 2
		}
		return
	}
	if g.selCol+delta < 0 || g.selCol+delta >= g.BoardState.Width() {
		return
	}
	g.selCol += delta
}

func (g *BoardUI) ResetSelection() {
	g.selCol = -1
}

func NewBoard(app *tview.Application, c *config.Config, hint *tview.TextView) *BoardUI {
	board := &BoardUI{
		Box:        tview.NewBox(),
		BoardState: &types.BoardState{},
		hint:       hint,
		app:        app,
		selCol:     -1,
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		board.screen = screen
		state := board.BoardState
		if state == nil || state.Width() == 0 {
			return x, y, 1, 1
		}
		theme := board.cfg.Theme()
		left := x + boardLeft

		board.drawCursor(screen, left, y)
		for row := 0; row < state.Height(); row++ {
			for col := 0; col < state.Width(); col++ {
				piece := state.Board[row][col]
				bg := board.styles[styleBoard]
				fg := board.styles[styleEmpty]
				drawRune := theme.Symbols.Empty
				switch piece {
				case int(types.Player1):
					fg = board.styles[stylePlayer1]
					drawRune = theme.Symbols.Player1
				case int(types.Player2):
					fg = board.styles[stylePlayer2]
					drawRune = theme.Symbols.Player2
				}
				if theme.HighlightWinningLine && state.IsWinningCell(row, col) {
					bg = board.styles[styleWin]
				} else if theme.DrawLastPlayedBackground && row == state.LastMove.Row && col == state.LastMove.Column {
					bg = board.styles[styleLastPlayed]
				}
				cx, cy := cellOrigin(left, y, row, col)
				drawPieceCell(screen, tcell.StyleDefault.Background(bg).Foreground(fg), drawRune, cx, cy)
			}
		}
		board.drawColumnNumbers(screen, left, y+state.Height()+1)
		return x, y, state.Width()*cellWidth + boardLeft, state.Height() + 2
	})
	return board
}

// cellOrigin returns the screen position of a cell. Row 0 of the screen area
// is reserved for the drop cursor.
func cellOrigin(left, top, row, col int) (int, int) {
	return left + col*cellWidth, top + 1 + row
}

// drawPieceCell draws a cell (3 characters wide)
func drawPieceCell(s tcell.Screen, c tcell.Style, r rune, x, y int) {
	s.SetContent(x, y, ' ', nil, c)
	s.SetContent(x+1, y, r, nil, c)
	s.SetContent(x+2, y, ' ', nil, c)
}

func (g *BoardUI) drawCursor(s tcell.Screen, left, top int) {
	for col := 0; col < g.BoardState.Width(); col++ {
		x, _ := cellOrigin(left, top, 0, col)
		r := ' '
		style := tcell.StyleDefault
		if col == g.selCol {
			r = g.cfg.Theme().Symbols.Cursor
			style = style.Foreground(g.styles[g.turnColor()])
			if g.cfg.Theme().DrawCursorBackground {
				style = style.Background(g.styles[styleCursorBG])
			}
		}
		drawPieceCell(s, style, r, x, top)
	}
}

// turnColor is the style slot of the player to move.
func (g *BoardUI) turnColor() int {
	if g.BoardState.PlayerToMove == int(types.Player2) {
		return stylePlayer2
	}
	return stylePlayer1
}

func (g *BoardUI) drawColumnNumbers(s tcell.Screen, left, y int) {
	style := tcell.StyleDefault.Foreground(g.styles[styleText])
	highlight := tcell.StyleDefault.Foreground(g.styles[styleCursorFG]).Background(g.styles[styleCursorBG])
	lpHighlight := tcell.StyleDefault.Foreground(g.styles[styleCursorFG]).Background(g.styles[styleLastPlayed])

	for col := 0; col < g.BoardState.Width(); col++ {
		_style := style
		if col == g.selCol {
			_style = highlight
		} else if col == g.BoardState.LastMove.Column {
			_style = lpHighlight
		}
		x := left + col*cellWidth
		name := []rune(local.ColumnName(col))
		drawPieceCell(s, _style, name[0], x, y)
	}
	s.Show()
}

// ConnectEngine connects the board to a game engine.
func (g *BoardUI) ConnectEngine(e engine.GameEngine) error {
	g.finished = false
	g.eng = e

	if err := e.Start(); err != nil {
		return err
	}

	// Updates are queued, so a reset may land in between. Redraw from the
	// engine's current state rather than the snapshot.
	e.OnMove(func(m types.Move, _ *types.BoardState) {
		g.app.QueueUpdateDraw(func() {
			if g.eng != e {
				return
			}
			g.BoardState = e.GetBoardState()
			g.beep()
			g.refreshHint()
		})
	})

	e.OnGameEnd(func(_ *types.BoardState) {
		g.app.QueueUpdateDraw(func() {
			if g.eng != e {
				return
			}
			state := e.GetBoardState()
			if !state.Finished() {
				return
			}
			g.finished = true
			g.BoardState = state
			g.ResetSelection()
			g.refreshHint()
			g.scheduleResult(state)
		})
	})

	g.BoardState = e.GetBoardState()
	g.refreshHint()
	return nil
}

// scheduleResult shows the result dialog after the winning line had a moment
// on screen. Must run on the UI goroutine.
func (g *BoardUI) scheduleResult(state *types.BoardState) {
	g.stopResult()
	delay := resultDraw
	if len(state.WinningCells) > 0 {
		delay = resultWin
	}
	g.resultTimer = time.AfterFunc(delay, func() {
		g.app.QueueUpdateDraw(func() {
			if g.finished && g.onResult != nil {
				g.beep()
				g.onResult(state)
			}
		})
	})
}

func (g *BoardUI) stopResult() {
	if g.resultTimer != nil {
		g.resultTimer.Stop()
		g.resultTimer = nil
	}
}

// OnResult registers the function that presents the game result.
func (g *BoardUI) OnResult(fn func(state *types.BoardState)) {
	g.onResult = fn
}

// PlayColumn drops a piece into the given column.
//
// Engine callbacks queue their redraw, so this must not be called from
// inside a queued update that waits on the engine.
func (g *BoardUI) PlayColumn(col int) {
	if g.finished || g.eng == nil {
		return
	}
	if !g.eng.IsMyTurn() {
		return
	}
	eng := g.eng
	go func() {
		// An ignored drop (full column) needs no feedback.
		eng.PlayMove(col)
	}()
}

// PlaySelected drops a piece into the column under the cursor.
func (g *BoardUI) PlaySelected() {
	if g.selCol == -1 {
		g.MoveSelection(0)
		return
	}
	g.PlayColumn(g.selCol)
}

// Undo takes back the last move when the engine allows it.
func (g *BoardUI) Undo() {
	if g.eng == nil || !g.eng.CanUndo() {
		return
	}
	if _, err := g.eng.Undo(); err != nil {
		return
	}
	g.BoardState = g.eng.GetBoardState()
	g.refreshHint()
}

// Reset starts a new game with the same settings.
func (g *BoardUI) Reset() {
	if g.eng == nil {
		return
	}
	g.stopResult()
	g.eng.Reset()
	g.finished = false
	g.ResetSelection()
	g.BoardState = g.eng.GetBoardState()
	g.refreshHint()
}

// Close disconnects the engine.
func (g *BoardUI) Close() {
	g.stopResult()
	if g.eng == nil {
		return
	}
	g.eng.Close()
	g.eng = nil
}

func (g *BoardUI) SetConfig(c *config.Config) {
	theme := c.Theme()
	g.styles = []tcell.Color{
		tcell.PaletteColor(theme.Colors.BoardColor),        // 0
		tcell.PaletteColor(theme.Colors.Player1Color),      // 1
		tcell.PaletteColor(theme.Colors.Player2Color),      // 2
		tcell.PaletteColor(theme.Colors.EmptyColor),        // 3
		tcell.PaletteColor(theme.Colors.WinColorBG),        // 4
		tcell.PaletteColor(theme.Colors.CursorColorFG),     // 5
		tcell.PaletteColor(theme.Colors.CursorColorBG),     // 6
		tcell.PaletteColor(theme.Colors.LastPlayedColorBG), // 7
		tcell.PaletteColor(theme.Colors.TextColor),         // 8
	}
	g.cfg = c
}

// ToggleTheme switches between light and dark and persists the choice.
func (g *BoardUI) ToggleTheme() error {
	g.cfg.ToggleTheme()
	g.SetConfig(g.cfg)
	return g.cfg.Save()
}

func (g *BoardUI) beep() {
	if g.screen != nil && g.cfg.Game.Sound {
		g.screen.Beep()
	}
}

func (g *BoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
		if g.eng != nil {
			g.infoPanel.SetMode(g.eng.Config().Mode, g.eng.Config().Difficulty)
		}
	}

	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}
	g.hint.SetText(g.hintText())
}

func (g *BoardUI) hintText() string {
	if g.finished {
		return fmt.Sprintf("  %s   r · play again   q · menu", g.BoardState.Outcome)
	}

	mode := types.ModeHumanVsHuman
	if g.eng != nil {
		mode = g.eng.Config().Mode
	}
	var turnLine string
	if g.eng == nil || g.eng.IsMyTurn() {
		p := types.Player(g.BoardState.PlayerToMove)
		turnLine = fmt.Sprintf("  ● %s to move", local.PlayerName(p, mode))
	} else {
		turnLine = "  ◌ Computer is thinking..."
	}

	controls := "   ←→ move  ⏎ drop  1-7 column  r reset  t theme  q quit"
	if g.eng != nil && g.eng.CanUndo() {
		controls = "   ←→ move  ⏎ drop  1-7 column  u undo  r reset  t theme  q quit"
	}
	return turnLine + controls
}

// IsFinished returns true if the game is over.
func (g *BoardUI) IsFinished() bool {
	return g.finished
}

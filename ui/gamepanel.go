package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"connect4-local/engine/local"
	"connect4-local/types"
)

// GameInfoPanel displays game information and move history alongside the board.
type GameInfoPanel struct {
	box        *tview.TextView
	boardState *types.BoardState
	mode       types.Mode
	difficulty types.Difficulty
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box:  tview.NewTextView(),
		mode: types.ModeHumanVsHuman,
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoardState updates the panel with current board state.
func (p *GameInfoPanel) SetBoardState(state *types.BoardState) {
	p.boardState = state
	p.refresh()
}

// SetMode sets the opponent description.
func (p *GameInfoPanel) SetMode(mode types.Mode, difficulty types.Difficulty) {
	p.mode = mode
	p.difficulty = difficulty
	p.refresh()
}

func (p *GameInfoPanel) refresh() {
	p.box.SetText(p.text())
}

func (p *GameInfoPanel) text() string {
	if p.boardState == nil {
		return ""
	}

	var text string

	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"

	if p.mode == types.ModeHumanVsComputer {
		text += fmt.Sprintf("[white]Opponent:[-:-:-] Computer (%s)\n", p.difficulty)
	} else {
		text += "[white]Opponent:[-:-:-] Player 2\n"
	}
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", p.boardState.MoveNumber)

	// Turn indicator, like the two player badges of a table game.
	p1, p2 := " ", " "
	if !p.boardState.Finished() {
		if p.boardState.PlayerToMove == int(types.Player1) {
			p1 = "[yellow]>[-]"
		} else {
			p2 = "[yellow]>[-]"
		}
	}
	text += fmt.Sprintf("%s[red]●[-] %s\n", p1, local.PlayerName(types.Player1, p.mode))
	text += fmt.Sprintf("%s[yellow]●[-] %s\n", p2, local.PlayerName(types.Player2, p.mode))

	if p.boardState.Finished() {
		text += fmt.Sprintf("\n[green::b]%s[-:-:-]\n", p.boardState.Outcome)
	}

	moves := p.boardState.Moves
	if len(moves) > 0 {
		text += "\n[white::b]Moves[-:-:-]\n"
		text += "[dimgray]──────────────────────[-:-:-]\n"

		// Show last N moves that fit
		maxVisible := 12
		start := 0
		if len(moves) > maxVisible {
			start = len(moves) - maxVisible
		}

		for i := start; i < len(moves); i++ {
			marker := " "
			if i == len(moves)-1 {
				marker = "[white]>[-]"
			}
			text += fmt.Sprintf("%s[dimgray]%s[-]\n", marker, local.MoveLabel(i+1, moves[i]))
		}

		if start > 0 {
			text += fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start)
		}
	}

	return text
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex()
	RebuildNormalLayout(mainFlex, board, hint)
	return mainFlex
}

// CreateCenteredForm creates a centered container for the setup screen.
func CreateCenteredForm(form tview.Primitive, maxWidth, maxHeight int) *tview.Flex {
	row := tview.NewFlex().SetDirection(tview.FlexColumn)
	row.AddItem(nil, 0, 1, false)
	row.AddItem(form, maxWidth, 0, true)
	row.AddItem(nil, 0, 1, false)

	centered := tview.NewFlex().SetDirection(tview.FlexRow)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(row, maxHeight, 0, true)
	centered.AddItem(nil, 0, 1, false)
	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()
	board.infoPanel = infoPanel
	if board.eng != nil {
		cfg := board.eng.Config()
		infoPanel.SetMode(cfg.Mode, cfg.Difficulty)
	}
	if board.BoardState != nil {
		infoPanel.SetBoardState(board.BoardState)
	}

	// board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 34, 0, false)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 3, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *BoardUI) {
	gameFrame.Clear()

	boardWidth, boardHeight := boardSize(board.BoardState)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false)
}

// boardSize returns the screen size of the board including cursor row and column numbers.
func boardSize(state *types.BoardState) (int, int) {
	if state == nil || state.Width() == 0 {
		return 7*cellWidth + boardLeft, 8
	}
	return state.Width()*cellWidth + boardLeft, state.Height() + 2
}

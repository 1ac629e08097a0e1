package ui

import (
	"github.com/rivo/tview"

	"connect4-local/types"
)

// NewResultModal builds the end of game dialog.
func NewResultModal(state *types.BoardState, onPlayAgain, onMenu func()) *tview.Modal {
	return tview.NewModal().
		SetText(state.Outcome).
		AddButtons([]string{"Play Again", "Menu"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if buttonLabel == "Menu" {
				onMenu()
				return
			}
			// Esc reports index -1 and plays again.
			onPlayAgain()
		})
}

package main

import (
	"github.com/gdamore/tcell/v2"

	"connect4-local/engine/local"
	"connect4-local/ui"
)

// boardKeys handles input on the game screen.
//
//	←/→ h/l    move the drop cursor
//	↵ ↓ space j drop at the cursor
//	1-7        drop into that column
//	u r        undo, restart
//	t f        toggle theme, focus mode
//	q esc      clear the cursor, then back to the menu
func (a *application) boardKeys(event *tcell.EventKey) *tcell.EventKey {
	b := a.board
	switch event.Key() {
	case tcell.KeyLeft:
		b.MoveSelection(-1)
		return nil
	case tcell.KeyRight:
		b.MoveSelection(1)
		return nil
	case tcell.KeyEnter, tcell.KeyDown:
		b.PlaySelected()
		return nil
	case tcell.KeyEsc:
		b.ResetSelection()
		return nil
	case tcell.KeyRune:
	default:
		return event
	}

	r := event.Rune()
	if col, err := local.ParseColumn(string(r)); err == nil {
		b.PlayColumn(col)
		return nil
	}
	switch r {
	case 'h':
		b.MoveSelection(-1)
	case 'l':
		b.MoveSelection(1)
	case ' ', 'j':
		b.PlaySelected()
	case 'u':
		b.Undo()
	case 'r':
		b.Reset()
	case 't':
		// The board keeps working when the theme cannot be saved.
		b.ToggleTheme()
		ui.ApplyMenuTheme(a.cfg.ThemeName)
	case 'f':
		if b.ToggleFocusMode() {
			ui.BuildFocusLayout(a.frame, b)
		} else {
			ui.RebuildNormalLayout(a.frame, b, a.status)
		}
	case 'q':
		if b.SelectedColumn() != -1 {
			b.ResetSelection()
		} else {
			b.Close()
			a.showMenu()
		}
	default:
		return event
	}
	return nil
}

// colorKeys handles input on the color picker. Tab moves to the next color.
func (a *application) colorKeys(event *tcell.EventKey) *tcell.EventKey {
	switch {
	case event.Key() == tcell.KeyEsc, event.Key() == tcell.KeyRune && event.Rune() == 'q':
		a.showMenu()
	case event.Key() == tcell.KeyTab:
		a.colors.ToggleMode()
	default:
		return event
	}
	return nil
}

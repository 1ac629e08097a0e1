package ui

import (
	"github.com/gdamore/tcell/v2"
)

// RadioOption represents a single radio button option.
type RadioOption struct {
	Label       string
	Description string
}

// RadioSelect is a vertical group of options with one selected.
type RadioSelect struct {
	label    string
	options  []RadioOption
	selected int
	focused  bool
	disabled bool
	onChange func(int)
}

// NewRadioSelect creates a new radio select component.
func NewRadioSelect(label string, options []RadioOption, initial int, onChange func(int)) *RadioSelect {
	if initial < 0 || initial >= len(options) {
		initial = 0
	}
	return &RadioSelect{
		label:    label,
		options:  options,
		selected: initial,
		onChange: onChange,
	}
}

func (r *RadioSelect) SetFocused(focused bool) {
	r.focused = focused
}

// SetDisabled dims the group. A disabled group keeps its selection.
func (r *RadioSelect) SetDisabled(disabled bool) {
	r.disabled = disabled
}

// HandleKey moves the selection with up/down or k/j. Moving past the first
// or last option is not handled, so the container can move focus instead.
func (r *RadioSelect) HandleKey(event *tcell.EventKey) bool {
	delta := 0
	switch {
	case event.Key() == tcell.KeyUp, event.Key() == tcell.KeyRune && event.Rune() == 'k':
		delta = -1
	case event.Key() == tcell.KeyDown, event.Key() == tcell.KeyRune && event.Rune() == 'j':
		delta = 1
	default:
		return false
	}
	next := r.selected + delta
	if next < 0 || next >= len(r.options) {
		return false
	}
	if !r.disabled {
		r.SetSelected(next)
	}
	return true
}

// Draw renders the label line and one line per option.
// Returns the number of rows used.
func (r *RadioSelect) Draw(screen tcell.Screen, x, y, width int) int {
	on := cardStyle(MenuColors.Selected)
	off := cardStyle(MenuColors.Unselected)
	if r.disabled {
		on = off
	}

	// ◈ Mode
	screen.SetContent(x, y, '◈', nil, cardStyle(MenuColors.TitleAccent))
	drawText(screen, x+2, y, r.label, cardStyle(MenuColors.Label))

	for i, opt := range r.options {
		row := y + 1 + i
		cursor, bullet, style := ' ', '○', off
		if i == r.selected {
			bullet, style = '●', on
			if r.focused {
				cursor = '▸'
			}
		}
		screen.SetContent(x+2, row, cursor, nil, on)
		screen.SetContent(x+4, row, bullet, nil, style)
		col := drawText(screen, x+6, row, opt.Label, style)
		if opt.Description != "" {
			drawText(screen, col+1, row, opt.Description, cardStyle(MenuColors.Hint))
		}
	}

	return len(r.options) + 1
}

// Selected returns the currently selected index.
func (r *RadioSelect) Selected() int {
	return r.selected
}

// SetSelected sets the selected index and reports the change.
func (r *RadioSelect) SetSelected(index int) {
	if index < 0 || index >= len(r.options) {
		return
	}
	r.selected = index
	if r.onChange != nil {
		r.onChange(r.selected)
	}
}

package ui

import (
	"github.com/gdamore/tcell/v2"
)

// MenuButton is a styled button component.
type MenuButton struct {
	label    string
	primary  bool
	focused  bool
	onSelect func()
}

// NewMenuButton creates a new menu button.
func NewMenuButton(label string, primary bool, onSelect func()) *MenuButton {
	return &MenuButton{
		label:    label,
		primary:  primary,
		onSelect: onSelect,
	}
}

// SetFocused sets the focus state.
func (b *MenuButton) SetFocused(focused bool) {
	b.focused = focused
}

// HandleKey presses the button on enter.
func (b *MenuButton) HandleKey(event *tcell.EventKey) bool {
	if event.Key() != tcell.KeyEnter {
		return false
	}
	if b.onSelect != nil {
		b.onSelect()
	}
	return true
}

// Draw renders the button at (x, y): a filled pill when focused, bracketed
// text otherwise. Returns the width used.
func (b *MenuButton) Draw(screen tcell.Screen, x, y int) int {
	width := b.Width()
	if b.focused {
		pill := tcell.StyleDefault.Foreground(MenuColors.ButtonText).Background(MenuColors.ButtonFocus)
		drawText(screen, x, y, " "+b.text()+" ", pill)
		return width
	}
	bracket := cardStyle(MenuColors.Border)
	screen.SetContent(x, y, '[', nil, bracket)
	col := drawText(screen, x+1, y, b.text(), cardStyle(MenuColors.Hint))
	screen.SetContent(col, y, ']', nil, bracket)
	return width
}

func (b *MenuButton) text() string {
	if b.primary {
		return "▶ " + b.label
	}
	return b.label
}

// Width returns the button width including padding or brackets.
func (b *MenuButton) Width() int {
	return len([]rune(b.text())) + 2
}

// ButtonRow lays out buttons side by side and moves focus between them.
type ButtonRow struct {
	buttons []*MenuButton
	current int
	focused bool
}

// NewButtonRow creates a row; the first button starts focused.
func NewButtonRow(buttons ...*MenuButton) *ButtonRow {
	return &ButtonRow{buttons: buttons}
}

func (r *ButtonRow) SetFocused(focused bool) {
	r.focused = focused
	for i, b := range r.buttons {
		b.SetFocused(focused && i == r.current)
	}
}

// HandleKey moves between buttons with left/right and presses with enter.
func (r *ButtonRow) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyLeft:
		if r.current > 0 {
			r.current--
			r.SetFocused(r.focused)
		}
		return true
	case tcell.KeyRight:
		if r.current < len(r.buttons)-1 {
			r.current++
			r.SetFocused(r.focused)
		}
		return true
	case tcell.KeyEnter:
		return r.buttons[r.current].HandleKey(event)
	}
	return false
}

// Draw renders the buttons centered in width. Returns the number of rows used.
func (r *ButtonRow) Draw(screen tcell.Screen, x, y, width int) int {
	total := 0
	for _, b := range r.buttons {
		total += b.Width() + 2
	}
	col := x + (width-total)/2
	for _, b := range r.buttons {
		col += b.Draw(screen, col, y) + 2
	}
	return 1
}

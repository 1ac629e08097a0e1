package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// LevelSlider is a one line slider over an integer range.
type LevelSlider struct {
	label    string
	min      int
	max      int
	value    int
	focused  bool
	format   func(int) string
	onChange func(int)
}

// NewLevelSlider creates a new level slider. format renders the value next
// to the bar; nil prints the number.
func NewLevelSlider(label string, min, max, initial int, format func(int) string, onChange func(int)) *LevelSlider {
	if format == nil {
		format = func(v int) string { return fmt.Sprintf("%d", v) }
	}
	return &LevelSlider{
		label:    label,
		min:      min,
		max:      max,
		value:    clamp(initial, min, max),
		format:   format,
		onChange: onChange,
	}
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func (s *LevelSlider) SetFocused(focused bool) {
	s.focused = focused
}

// HandleKey steps the value with left/right or h/l.
func (s *LevelSlider) HandleKey(event *tcell.EventKey) bool {
	switch {
	case event.Key() == tcell.KeyLeft, event.Key() == tcell.KeyRune && event.Rune() == 'h':
		s.SetValue(s.value - 1)
	case event.Key() == tcell.KeyRight, event.Key() == tcell.KeyRune && event.Rune() == 'l':
		s.SetValue(s.value + 1)
	default:
		return false
	}
	return true
}

// Draw renders "▸ ◈ Label   ◀ ███░░ value ▶". Returns the number of rows used.
func (s *LevelSlider) Draw(screen tcell.Screen, x, y, width int) int {
	on := cardStyle(MenuColors.Selected)
	off := cardStyle(MenuColors.Unselected)
	arrows := off
	if s.focused {
		arrows = on
		screen.SetContent(x, y, '▸', nil, on)
	}

	screen.SetContent(x+2, y, '◈', nil, cardStyle(MenuColors.TitleAccent))
	col := drawText(screen, x+4, y, s.label, cardStyle(MenuColors.Label)) + 3

	filled := s.value - s.min + 1
	empty := s.max - s.value
	col = drawText(screen, col, y, "◀ ", arrows)
	col = drawText(screen, col, y, strings.Repeat("█", filled), on)
	col = drawText(screen, col, y, strings.Repeat("░", empty), off)
	col = drawText(screen, col+1, y, s.format(s.value), cardStyle(MenuColors.Label))
	drawText(screen, col+1, y, "▶", arrows)

	return 1
}

// Value returns the current slider value.
func (s *LevelSlider) Value() int {
	return s.value
}

// SetValue sets the slider value. Values outside the range are ignored.
func (s *LevelSlider) SetValue(v int) {
	if v < s.min || v > s.max || v == s.value {
		return
	}
	s.value = v
	if s.onChange != nil {
		s.onChange(s.value)
	}
}

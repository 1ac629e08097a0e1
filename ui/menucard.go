package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// MenuCard is a styled card container with rounded borders and title.
type MenuCard struct {
	*tview.Box
	title   string
	focused bool
}

// NewMenuCard creates a new menu card with the given title.
func NewMenuCard(title string) *MenuCard {
	return &MenuCard{
		Box:   tview.NewBox(),
		title: title,
	}
}

func (c *MenuCard) borderStyle() tcell.Style {
	if c.focused {
		return cardStyle(MenuColors.BorderFocus)
	}
	return cardStyle(MenuColors.Border)
}

// Draw renders the card frame and title.
func (c *MenuCard) Draw(screen tcell.Screen) {
	c.Box.DrawForSubclass(screen, c)

	x, y, width, height := c.GetInnerRect()
	if width < 10 || height < 5 {
		return
	}
	border := c.borderStyle()

	// ╭───╮ over │   │ rows over ╰───╯
	drawHLine(screen, x, y, width, '╭', '─', '╮', border)
	for row := y + 1; row < y+height-1; row++ {
		drawHLine(screen, x, row, width, '│', ' ', '│', border)
	}
	drawHLine(screen, x, y+height-1, width, '╰', '─', '╯', border)

	if c.title == "" {
		return
	}

	// ●● TITLE, one piece per player
	titleLen := len([]rune(c.title)) + 4
	col := x + (width-titleLen)/2
	screen.SetContent(col, y+2, '●', nil, cardStyle(MenuColors.TitleAccent))
	screen.SetContent(col+1, y+2, '●', nil, cardStyle(MenuColors.Selected))
	drawText(screen, col+4, y+2, c.title, cardStyle(MenuColors.Title).Bold(true))

	c.DrawDivider(screen, y+4)
}

// ContentTop returns the first row below the title divider.
func (c *MenuCard) ContentTop() int {
	_, y, _, _ := c.GetInnerRect()
	if c.title == "" {
		return y + 1
	}
	return y + 6
}

// DrawDivider draws a horizontal divider at the given y position.
func (c *MenuCard) DrawDivider(screen tcell.Screen, divY int) {
	x, _, width, _ := c.GetInnerRect()
	drawHLine(screen, x, divY, width, '├', '─', '┤', c.borderStyle())
}

// SetFocused sets the focus state of the card.
func (c *MenuCard) SetFocused(focused bool) {
	c.focused = focused
}

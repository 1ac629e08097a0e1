package ui

import "github.com/gdamore/tcell/v2"

// menuPalette is the color set for the setup card.
type menuPalette struct {
	Border      tcell.Color
	BorderFocus tcell.Color
	CardBG      tcell.Color
	Title       tcell.Color
	TitleAccent tcell.Color
	Label       tcell.Color
	Hint        tcell.Color
	Selected    tcell.Color
	Unselected  tcell.Color
	ButtonBG    tcell.Color
	ButtonFocus tcell.Color
	ButtonText  tcell.Color
}

var darkMenu = menuPalette{
	Border:      tcell.PaletteColor(60),
	BorderFocus: tcell.PaletteColor(33),
	CardBG:      tcell.PaletteColor(236),
	Title:       tcell.PaletteColor(255),
	TitleAccent: tcell.PaletteColor(196),
	Label:       tcell.PaletteColor(250),
	Hint:        tcell.PaletteColor(245),
	Selected:    tcell.PaletteColor(226),
	Unselected:  tcell.PaletteColor(245),
	ButtonBG:    tcell.PaletteColor(25),
	ButtonFocus: tcell.PaletteColor(33),
	ButtonText:  tcell.PaletteColor(255),
}

var lightMenu = menuPalette{
	Border:      tcell.PaletteColor(110),
	BorderFocus: tcell.PaletteColor(27),
	CardBG:      tcell.PaletteColor(255),
	Title:       tcell.PaletteColor(232),
	TitleAccent: tcell.PaletteColor(160),
	Label:       tcell.PaletteColor(238),
	Hint:        tcell.PaletteColor(244),
	Selected:    tcell.PaletteColor(27),
	Unselected:  tcell.PaletteColor(246),
	ButtonBG:    tcell.PaletteColor(153),
	ButtonFocus: tcell.PaletteColor(27),
	ButtonText:  tcell.PaletteColor(255),
}

// MenuColors is the active menu palette.
var MenuColors = lightMenu

// ApplyMenuTheme switches the menu palette to the named theme ("light" or "dark").
func ApplyMenuTheme(name string) {
	if name == "dark" {
		MenuColors = darkMenu
		return
	}
	MenuColors = lightMenu
}

// cardStyle is fg on the card background.
func cardStyle(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(MenuColors.CardBG)
}

// drawText writes text starting at (x, y) and returns the column after it.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// drawHLine draws left, fill..., right across width cells.
func drawHLine(screen tcell.Screen, x, y, width int, left, fill, right rune, style tcell.Style) {
	screen.SetContent(x, y, left, nil, style)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y, fill, nil, style)
	}
	screen.SetContent(x+width-1, y, right, nil, style)
}

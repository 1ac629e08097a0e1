package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"connect4-local/config"
)

// colorChoice is a palette entry offered in the picker.
type colorChoice struct {
	code int
	name string
}

// colorTarget is one of the theme colors the picker edits.
type colorTarget struct {
	title   string
	choices []colorChoice
	get     func(*config.Theme) int
	set     func(*config.Theme, int)
}

var boardColors = []colorChoice{
	{17, "Navy Blue"},
	{18, "Dark Blue"},
	{19, "Royal Blue"},
	{20, "Blue"},
	{25, "Deep Sky"},
	{26, "Dodger Blue"},
	{27, "Bright Blue"},
	{33, "Azure"},
	{39, "Sky Blue"},
	{22, "Dark Green"},
	{28, "Green"},
	{54, "Purple"},
	{90, "Plum"},
	{236, "Dark Gray"},
	{240, "Gray"},
	{250, "Light Gray"},
}

var pieceColors = []colorChoice{
	{196, "Red"},
	{160, "Dark Red"},
	{202, "Orange Red"},
	{208, "Orange"},
	{214, "Amber"},
	{220, "Gold"},
	{226, "Yellow"},
	{46, "Lime"},
	{51, "Cyan"},
	{201, "Magenta"},
	{231, "White"},
	{232, "Black"},
}

var colorTargets = []colorTarget{
	{
		title:   "Board",
		choices: boardColors,
		get:     func(t *config.Theme) int { return t.Colors.BoardColor },
		set:     func(t *config.Theme, c int) { t.Colors.BoardColor = c },
	},
	{
		title:   "Player 1",
		choices: pieceColors,
		get:     func(t *config.Theme) int { return t.Colors.Player1Color },
		set:     func(t *config.Theme, c int) { t.Colors.Player1Color = c },
	},
	{
		title:   "Player 2",
		choices: pieceColors,
		get:     func(t *config.Theme) int { return t.Colors.Player2Color },
		set:     func(t *config.Theme, c int) { t.Colors.Player2Color = c },
	},
}

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()

	target  int
	pending [3]int // board, player 1, player 2 as shown in the preview
	status  string
}

// NewColorConfig creates a new color configuration screen for the active theme.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:    cfg,
		onDone: onDone,
	}
	cc.loadPending()

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)

	cc.populateColorList()

	// Preview on highlight
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		choices := colorTargets[cc.target].choices
		if index >= 0 && index < len(choices) {
			cc.pending[cc.target] = choices[index].code
		}
	})

	// Apply on enter, then move on to the next color
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		choices := colorTargets[cc.target].choices
		if index < 0 || index >= len(choices) {
			return
		}
		colorTargets[cc.target].set(cc.cfg.Theme(), choices[index].code)
		if err := cc.cfg.Save(); err != nil {
			cc.status = fmt.Sprintf("not saved: %v", err)
		} else {
			cc.status = "saved"
		}
		if cc.target == len(colorTargets)-1 {
			cc.target = 0
			cc.populateColorList()
			onDone()
			return
		}
		cc.ToggleMode()
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

// Reload picks up the active theme, e.g. after it was toggled.
func (cc *ColorConfigUI) Reload() {
	cc.target = 0
	cc.status = ""
	cc.loadPending()
	cc.populateColorList()
}

func (cc *ColorConfigUI) loadPending() {
	theme := cc.cfg.Theme()
	for i, t := range colorTargets {
		cc.pending[i] = t.get(theme)
	}
}

// populateColorList fills the list with the choices of the current target.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()
	t := colorTargets[cc.target]
	next := colorTargets[(cc.target+1)%len(colorTargets)].title

	cc.colorList.SetTitle(fmt.Sprintf(" %s Color (Tab: %s) ", t.title, next))
	current := t.get(cc.cfg.Theme())
	for i, c := range t.choices {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range t.choices {
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

// previewPieces is a short game shown in the preview, keyed by (row, col).
var previewPieces = map[[2]int]int{
	{5, 2}: 1, {5, 3}: 2, {5, 4}: 1,
	{4, 3}: 1, {4, 4}: 2,
	{3, 3}: 2,
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	theme := cc.cfg.Theme()
	boardColor := tcell.PaletteColor(cc.pending[0])
	p1Color := tcell.PaletteColor(cc.pending[1])
	p2Color := tcell.PaletteColor(cc.pending[2])
	emptyColor := tcell.PaletteColor(theme.Colors.EmptyColor)

	rows, cols := 6, 7
	startX := x + 2
	startY := y + 1

	if width < cols*cellWidth+4 || height < rows+4 {
		return x, y, width, height
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			style := tcell.StyleDefault.Background(boardColor).Foreground(emptyColor)
			r := theme.Symbols.Empty
			switch previewPieces[[2]int{row, col}] {
			case 1:
				style = style.Foreground(p1Color)
				r = theme.Symbols.Player1
			case 2:
				style = style.Foreground(p2Color)
				r = theme.Symbols.Player2
			}
			drawPieceCell(screen, style, r, startX+col*cellWidth, startY+row)
		}
	}

	info := fmt.Sprintf("Board: %d  P1: %d  P2: %d", cc.pending[0], cc.pending[1], cc.pending[2])
	if cc.status != "" {
		info += "  (" + cc.status + ")"
	}
	for i, ch := range []rune(info) {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+rows+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode moves on to the next color to edit.
func (cc *ColorConfigUI) ToggleMode() {
	cc.target = (cc.target + 1) % len(colorTargets)
	cc.loadPending()
	cc.populateColorList()
}

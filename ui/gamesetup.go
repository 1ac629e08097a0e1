package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"connect4-local/config"
	"connect4-local/engine"
	"connect4-local/types"
)

// delayStep is the think-time slider resolution.
const delayStep = 100 * time.Millisecond

// menuItem is a focusable row of the setup card.
type menuItem interface {
	SetFocused(bool)
	HandleKey(*tcell.EventKey) bool
	Draw(screen tcell.Screen, x, y, width int) int
}

// GameSetupUI is the new game card: mode, difficulty, think time and theme.
type GameSetupUI struct {
	*MenuCard
	cfg *config.Config

	mode       *RadioSelect
	difficulty *RadioSelect
	delay      *LevelSlider
	theme      *RadioSelect
	buttons    *ButtonRow

	items []menuItem
	focus int

	onStart func(engine.GameConfig)
}

var (
	modes        = []types.Mode{types.ModeHumanVsHuman, types.ModeHumanVsComputer}
	difficulties = []types.Difficulty{types.DifficultyEasy, types.DifficultyHard}
	themes       = []string{config.ThemeLight, config.ThemeDark}
)

// NewGameSetup creates the setup card, preselected from cfg.
func NewGameSetup(cfg *config.Config, onStart func(engine.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		MenuCard: NewMenuCard("CONNECT FOUR"),
		cfg:      cfg,
		onStart:  onStart,
	}

	setup.mode = NewRadioSelect("Mode", []RadioOption{
		{Label: "Two players", Description: "same keyboard"},
		{Label: "Vs computer", Description: "you play first"},
	}, indexOf(modes, cfg.Mode()), func(i int) {
		setup.difficulty.SetDisabled(modes[i] != types.ModeHumanVsComputer)
	})

	setup.difficulty = NewRadioSelect("Difficulty", []RadioOption{
		{Label: "Easy", Description: "random moves"},
		{Label: "Hard", Description: "wins and blocks"},
	}, indexOf(difficulties, cfg.Difficulty()), nil)
	setup.difficulty.SetDisabled(cfg.Mode() != types.ModeHumanVsComputer)

	setup.delay = NewLevelSlider("Think time", 0, 10, cfg.Game.ComputerDelayMs/int(delayStep/time.Millisecond), func(v int) string {
		return fmt.Sprintf("%4dms", v*int(delayStep/time.Millisecond))
	}, nil)

	setup.theme = NewRadioSelect("Theme", []RadioOption{
		{Label: "Light"},
		{Label: "Dark"},
	}, indexOf(themes, cfg.ThemeName), func(i int) {
		ApplyMenuTheme(themes[i])
	})

	setup.buttons = NewButtonRow(
		NewMenuButton("Start", true, setup.start),
		NewMenuButton("Colors", false, func() {
			if onColors != nil {
				onColors()
			}
		}),
		NewMenuButton("Quit", false, onCancel),
	)

	setup.items = []menuItem{setup.mode, setup.difficulty, setup.delay, setup.theme, setup.buttons}
	setup.setFocus(0)

	setup.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab:
			setup.setFocus(setup.focus + 1)
			return nil
		case tcell.KeyBacktab:
			setup.setFocus(setup.focus - 1)
			return nil
		case tcell.KeyEsc:
			onCancel()
			return nil
		}
		if setup.items[setup.focus].HandleKey(event) {
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			setup.setFocus(setup.focus - 1)
			return nil
		case tcell.KeyDown, tcell.KeyEnter:
			setup.setFocus(setup.focus + 1)
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q':
				onCancel()
				return nil
			case 's':
				setup.start()
				return nil
			}
		}
		return event
	})

	return setup
}

func indexOf[T comparable](list []T, v T) int {
	for i, item := range list {
		if item == v {
			return i
		}
	}
	return 0
}

func (s *GameSetupUI) setFocus(i int) {
	n := len(s.items)
	i = (i%n + n) % n
	s.focus = i
	for j, item := range s.items {
		item.SetFocused(j == i)
	}
}

// GameConfig returns the settings currently selected on the card.
func (s *GameSetupUI) GameConfig() engine.GameConfig {
	cfg := engine.DefaultConfig()
	cfg.Mode = modes[s.mode.Selected()]
	cfg.Difficulty = difficulties[s.difficulty.Selected()]
	cfg.ComputerDelay = time.Duration(s.delay.Value()) * delayStep
	return cfg
}

// start copies the selection into the config and hands it to onStart.
func (s *GameSetupUI) start() {
	gameCfg := s.GameConfig()
	s.cfg.Game.Mode = string(gameCfg.Mode)
	s.cfg.Game.Difficulty = string(gameCfg.Difficulty)
	s.cfg.Game.ComputerDelayMs = int(gameCfg.ComputerDelay / time.Millisecond)
	s.cfg.ThemeName = themes[s.theme.Selected()]
	s.onStart(gameCfg)
}

// Draw renders the card and its rows.
func (s *GameSetupUI) Draw(screen tcell.Screen) {
	s.MenuCard.Draw(screen)

	x, _, width, height := s.GetInnerRect()
	if width < 10 || height < 5 {
		return
	}
	left := x + 3
	inner := width - 6
	row := s.ContentTop()
	for _, item := range s.items {
		if item == s.buttons {
			row++
			s.DrawDivider(screen, row)
			row += 2
		}
		row += item.Draw(screen, left, row, inner) + 1
	}

	hint := "tab next · ↑↓ choose · ←→ adjust · ⏎ select"
	drawText(screen, x+(width-len([]rune(hint)))/2, row, hint, cardStyle(MenuColors.Hint))
}

// SetupSize is the preferred card size.
func SetupSize() (int, int) {
	return 52, 28
}

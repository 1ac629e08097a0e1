// connect4-local is a terminal application to play Connect Four against a
// friend or the computer.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rivo/tview"

	"connect4-local/config"
	"connect4-local/engine"
	"connect4-local/engine/local"
	"connect4-local/types"
	"connect4-local/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	flagMode       = flag.String("mode", "", "Game mode (pvp or pva)")
	flagDifficulty = flag.String("difficulty", "", "Computer difficulty (easy or hard)")
	flagDelay      = flag.Duration("delay", -1, "Pause before the computer moves, e.g. 500ms")
	flagTheme      = flag.String("theme", "", "Color theme (light or dark)")
	flagPlay       = flag.Bool("play", false, "Skip the menu and play with the saved settings")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (board only)")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

// application holds the screens and the game board shared between them.
type application struct {
	cfg    *config.Config
	tv     *tview.Application
	pages  *tview.Pages
	board  *ui.BoardUI
	frame  *tview.Flex
	status *tview.TextView
	colors *ui.ColorConfigUI
}

func fatal(code int, err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(code)
}

func main() {
	flag.Parse()
	if *flagVersion {
		fmt.Printf("connect4-local %s\n", Version)
		return
	}

	cfg, err := config.InitConfig()
	if err != nil {
		fatal(1, err)
	}
	if cfg.DebugLog != "" {
		logFile, err := os.OpenFile(cfg.DebugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fatal(1, fmt.Errorf("cannot open debug log: %w", err))
		}
		defer logFile.Close()
		local.SetDebugOutput(logFile)
	}
	if *flagTheme != "" {
		cfg.ThemeName = *flagTheme
		if err := cfg.Validate(); err != nil {
			fatal(1, err)
		}
	}
	ui.ApplyMenuTheme(cfg.ThemeName)

	skipMenu := *flagPlay || *flagMode != "" || *flagDifficulty != "" || *flagDelay >= 0 || *flagFocus
	var firstGame engine.GameConfig
	if skipMenu {
		if firstGame, err = gameConfigFromFlags(cfg); err != nil {
			fatal(2, err)
		}
	}

	a := newApplication(cfg, skipMenu)
	if skipMenu {
		a.startGame(firstGame)
		if *flagFocus {
			a.board.SetFocusMode(true)
			ui.BuildFocusLayout(a.frame, a.board)
		}
	}

	if err := a.tv.SetRoot(a.pages, true).Run(); err != nil {
		fatal(1, err)
	}
}

func newApplication(cfg *config.Config, skipMenu bool) *application {
	a := &application{
		cfg:   cfg,
		tv:    tview.NewApplication(),
		pages: tview.NewPages(),
	}
	a.pages.SetBorder(true).SetTitle(" ● connect four ")

	a.status = tview.NewTextView()
	a.status.SetBorder(true).
		SetBorderPadding(0, 0, 1, 1).
		SetTitle(" Status ").
		SetTitleAlign(tview.AlignLeft)
	a.board = ui.NewBoard(a.tv, cfg, a.status)
	a.frame = ui.CreateGameLayout(a.board, a.status)
	a.board.OnResult(a.showResult)
	a.board.Box.SetInputCapture(a.boardKeys)

	a.colors = ui.NewColorConfig(cfg, a.showMenu)
	a.colors.SetInputCapture(a.colorKeys)

	setup := ui.NewGameSetup(cfg,
		func(gameCfg engine.GameConfig) {
			// Menu choices are remembered for next time; a failed save only loses that.
			cfg.Save()
			a.board.SetConfig(cfg)
			a.startGame(gameCfg)
		},
		a.tv.Stop,
		func() {
			a.colors.Reload()
			a.pages.SwitchToPage("colors")
		},
	)
	w, h := ui.SetupSize()

	a.pages.AddPage("setup", ui.CreateCenteredForm(setup, w, h), true, !skipMenu)
	a.pages.AddPage("gameview", a.frame, true, skipMenu)
	a.pages.AddPage("colors", a.colors.Flex(), true, false)
	return a
}

// showMenu returns to the setup screen with the current colors applied.
func (a *application) showMenu() {
	a.board.SetConfig(a.cfg)
	a.pages.SwitchToPage("setup")
}

func (a *application) showResult(state *types.BoardState) {
	closeModal := func() { a.pages.RemovePage("result") }
	modal := ui.NewResultModal(state,
		func() {
			closeModal()
			a.board.Reset()
		},
		func() {
			closeModal()
			a.board.Close()
			a.showMenu()
		})
	a.pages.AddPage("result", modal, true, true)
}

func (a *application) showError(msg string) {
	modal := tview.NewModal().
		SetText(msg).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) { a.pages.RemovePage("error") })
	a.pages.AddPage("error", modal, true, true)
}

// startGame replaces the running game with a new local engine.
func (a *application) startGame(gameCfg engine.GameConfig) {
	a.board.Close()
	if err := a.board.ConnectEngine(local.New(gameCfg)); err != nil {
		a.showError(fmt.Sprintf("Failed to start game:\n%s", err))
		return
	}
	if a.board.IsFocusMode() {
		ui.BuildFocusLayout(a.frame, a.board)
	} else {
		ui.RebuildNormalLayout(a.frame, a.board, a.status)
	}
	a.pages.SwitchToPage("gameview")
}

// gameConfigFromFlags starts from the saved settings and applies any
// command-line overrides.
func gameConfigFromFlags(cfg *config.Config) (engine.GameConfig, error) {
	gameCfg := engine.GameConfig{
		Mode:          cfg.Mode(),
		Difficulty:    cfg.Difficulty(),
		ComputerDelay: time.Duration(cfg.Game.ComputerDelayMs) * time.Millisecond,
	}
	if *flagMode != "" {
		mode, err := types.ParseMode(*flagMode)
		if err != nil {
			return gameCfg, err
		}
		gameCfg.Mode = mode
	}
	if *flagDifficulty != "" {
		d, err := types.ParseDifficulty(*flagDifficulty)
		if err != nil {
			return gameCfg, err
		}
		gameCfg.Difficulty = d
	}
	if *flagDelay >= 0 {
		gameCfg.ComputerDelay = *flagDelay
	}
	return gameCfg, nil
}

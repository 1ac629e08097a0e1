package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"

	"connect4-local/types"
)

var (
	cfgFile = "connect4-local/config.json"
)

// Environment overrides, applied after the config file.
const (
	EnvMode       = "CONNECT4_MODE"
	EnvDifficulty = "CONNECT4_DIFFICULTY"
	EnvDelay      = "CONNECT4_AI_DELAY_MS"
	EnvTheme      = "CONNECT4_THEME"
	EnvDebugLog   = "CONNECT4_DEBUG_LOG"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	EmptyColor        int `json:"empty"`
	Player1Color      int `json:"player1"`
	Player2Color      int `json:"player2"`
	WinColorBG        int `json:"win_bg"`
	CursorColorFG     int `json:"cursor_fg"`
	CursorColorBG     int `json:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
	TextColor         int `json:"text"`
}

type ConfigSymbols struct {
	Player1 rune `json:"player1"`
	Player2 rune `json:"player2"`
	Empty   rune `json:"empty"`
	Cursor  rune `json:"cursor"`
}

type Theme struct {
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	HighlightWinningLine     bool          `json:"highlight_winning_line"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// GameDefaults are the settings a new session starts with.
type GameDefaults struct {
	Mode            string `json:"mode"`
	Difficulty      string `json:"difficulty"`
	ComputerDelayMs int    `json:"computer_delay_ms"`
	Sound           bool   `json:"sound"`
}

type Config struct {
	ThemeName string       `json:"theme_name"`
	Light     Theme        `json:"light"`
	Dark      Theme        `json:"dark"`
	Game      GameDefaults `json:"game"`
	DebugLog  string       `json:"debug_log,omitempty"`
}

// InitConfig loads .env, the user's config file and environment overrides,
// in that order.
func InitConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		absPath = ""
	}
	return Load(absPath)
}

// Load reads the config at filePath on top of the defaults. An empty path
// skips the file. Environment overrides are applied last.
func Load(filePath string) (*Config, error) {
	config := DefaultConfig
	if filePath != "" {
		if err := readCfgFile(filePath, &config); err != nil {
			return nil, err
		}
	}
	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvMode); ok {
		c.Game.Mode = v
	}
	if v, ok := os.LookupEnv(EnvDifficulty); ok {
		c.Game.Difficulty = v
	}
	if v, ok := os.LookupEnv(EnvDelay); ok {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return &InvalidConfig{fmt.Sprintf("%s must be a number of milliseconds, got %q", EnvDelay, v)}
		}
		c.Game.ComputerDelayMs = ms
	}
	if v, ok := os.LookupEnv(EnvTheme); ok {
		c.ThemeName = v
	}
	if v, ok := os.LookupEnv(EnvDebugLog); ok {
		c.DebugLog = v
	}
	return nil
}

func (c *Config) Validate() error {
	for _, t := range []*Theme{&c.Light, &c.Dark} {
		for _, r := range []rune{t.Symbols.Player1, t.Symbols.Player2, t.Symbols.Empty, t.Symbols.Cursor} {
			if r < 32 || (r >= 127 && r <= 159) {
				return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
			}
		}
	}
	if c.ThemeName != ThemeLight && c.ThemeName != ThemeDark {
		return &InvalidConfig{fmt.Sprintf("theme must be %q or %q, got %q", ThemeLight, ThemeDark, c.ThemeName)}
	}
	if _, err := types.ParseMode(c.Game.Mode); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if _, err := types.ParseDifficulty(c.Game.Difficulty); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if c.Game.ComputerDelayMs < 0 {
		return &InvalidConfig{"computer delay cannot be negative"}
	}
	return nil
}

// Theme returns the active theme.
func (c *Config) Theme() *Theme {
	if c.ThemeName == ThemeDark {
		return &c.Dark
	}
	return &c.Light
}

// ToggleTheme switches between the light and dark theme.
func (c *Config) ToggleTheme() {
	if c.ThemeName == ThemeDark {
		c.ThemeName = ThemeLight
	} else {
		c.ThemeName = ThemeDark
	}
}

// Mode and Difficulty are only meaningful after Validate succeeded.
func (c *Config) Mode() types.Mode {
	m, _ := types.ParseMode(c.Game.Mode)
	return m
}

func (c *Config) Difficulty() types.Difficulty {
	d, _ := types.ParseDifficulty(c.Game.Difficulty)
	return d
}

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to locate config file: %w", err)
	}
	return c.SaveTo(absPath)
}

// SaveTo writes the config to filePath, creating parent directories.
func (c *Config) SaveTo(filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return err
	}
	return saveCfgFile(filePath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	configReader, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(configReader, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}

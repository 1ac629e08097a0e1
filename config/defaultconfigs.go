package config

var DefaultConfig Config
var DefaultLightTheme Theme
var DefaultDarkTheme Theme

func init() {
	DefaultLightTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		HighlightWinningLine:     true,
		Colors: ConfigColors{
			BoardColor:        33,
			EmptyColor:        255,
			Player1Color:      160,
			Player2Color:      220,
			WinColorBG:        46,
			CursorColorFG:     232,
			CursorColorBG:     117,
			LastPlayedColorBG: 27,
			TextColor:         232,
		},
		Symbols: ConfigSymbols{
			Player1: '●',
			Player2: '●',
			Empty:   '○',
			Cursor:  '▼',
		},
	}

	DefaultDarkTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		HighlightWinningLine:     true,
		Colors: ConfigColors{
			BoardColor:        18,
			EmptyColor:        236,
			Player1Color:      196,
			Player2Color:      226,
			WinColorBG:        34,
			CursorColorFG:     255,
			CursorColorBG:     25,
			LastPlayedColorBG: 19,
			TextColor:         252,
		},
		Symbols: ConfigSymbols{
			Player1: '●',
			Player2: '●',
			Empty:   '·',
			Cursor:  '▼',
		},
	}

	DefaultConfig = Config{
		ThemeName: ThemeLight,
		Light:     DefaultLightTheme,
		Dark:      DefaultDarkTheme,
		Game: GameDefaults{
			Mode:            "pvp",
			Difficulty:      "easy",
			ComputerDelayMs: 500,
			Sound:           true,
		},
	}
}

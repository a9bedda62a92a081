package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TUITheme is the colour scheme of the interactive demo
type TUITheme struct {
	Name        string
	Description string

	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color

	// Primary is the brand colour: active nav entry, send button, check mark
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color

	Text     lipgloss.Color
	TextDim  lipgloss.Color
	TextMute lipgloss.Color

	// Window dots of the mockup chrome
	DotClose lipgloss.Color
	DotMin   lipgloss.Color
	DotMax   lipgloss.Color
}

// Built-in TUI themes
var (
	// ZamaniTheme follows the landing page: emerald on near-black
	ZamaniTheme = TUITheme{
		Name:        "zamani",
		Description: "Zamani - emerald accents on near-black",

		Background: lipgloss.Color("#0a0a0a"),
		Surface:    lipgloss.Color("#141414"),
		Border:     lipgloss.Color("#252525"),

		Primary:   lipgloss.Color("#10b981"),
		Secondary: lipgloss.Color("#34d399"),
		Accent:    lipgloss.Color("#059669"),
		Warning:   lipgloss.Color("#febc2e"),
		Error:     lipgloss.Color("#ff5f57"),

		Text:     lipgloss.Color("#e5e5e5"),
		TextDim:  lipgloss.Color("#737373"),
		TextMute: lipgloss.Color("#2a2a2a"),

		DotClose: lipgloss.Color("#ff5f57"),
		DotMin:   lipgloss.Color("#febc2e"),
		DotMax:   lipgloss.Color("#28c840"),
	}

	TokyoNightTheme = TUITheme{
		Name:        "tokyonight",
		Description: "Tokyo Night - dark theme with blue accents",

		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#24283b"),
		Border:     lipgloss.Color("#414868"),

		Primary:   lipgloss.Color("#7aa2f7"),
		Secondary: lipgloss.Color("#9ece6a"),
		Accent:    lipgloss.Color("#bb9af7"),
		Warning:   lipgloss.Color("#e0af68"),
		Error:     lipgloss.Color("#f7768e"),

		Text:     lipgloss.Color("#c0caf5"),
		TextDim:  lipgloss.Color("#565f89"),
		TextMute: lipgloss.Color("#3b4261"),

		DotClose: lipgloss.Color("#f7768e"),
		DotMin:   lipgloss.Color("#e0af68"),
		DotMax:   lipgloss.Color("#9ece6a"),
	}

	NordTheme = TUITheme{
		Name:        "nord",
		Description: "Nord - arctic palette with cool tones",

		Background: lipgloss.Color("#2e3440"),
		Surface:    lipgloss.Color("#3b4252"),
		Border:     lipgloss.Color("#4c566a"),

		Primary:   lipgloss.Color("#88c0d0"),
		Secondary: lipgloss.Color("#a3be8c"),
		Accent:    lipgloss.Color("#b48ead"),
		Warning:   lipgloss.Color("#ebcb8b"),
		Error:     lipgloss.Color("#bf616a"),

		Text:     lipgloss.Color("#eceff4"),
		TextDim:  lipgloss.Color("#7b88a1"),
		TextMute: lipgloss.Color("#4c566a"),

		DotClose: lipgloss.Color("#bf616a"),
		DotMin:   lipgloss.Color("#ebcb8b"),
		DotMax:   lipgloss.Color("#a3be8c"),
	}

	// LightTheme is for light terminal backgrounds
	LightTheme = TUITheme{
		Name:        "light",
		Description: "Light - emerald accents on white",

		Background: lipgloss.Color("#ffffff"),
		Surface:    lipgloss.Color("#f5f5f5"),
		Border:     lipgloss.Color("#d4d4d4"),

		Primary:   lipgloss.Color("#059669"),
		Secondary: lipgloss.Color("#10b981"),
		Accent:    lipgloss.Color("#047857"),
		Warning:   lipgloss.Color("#b45309"),
		Error:     lipgloss.Color("#dc2626"),

		Text:     lipgloss.Color("#171717"),
		TextDim:  lipgloss.Color("#525252"),
		TextMute: lipgloss.Color("#a3a3a3"),

		DotClose: lipgloss.Color("#ff5f57"),
		DotMin:   lipgloss.Color("#febc2e"),
		DotMax:   lipgloss.Color("#28c840"),
	}
)

var builtinThemes = []TUITheme{ZamaniTheme, TokyoNightTheme, NordTheme, LightTheme}

var currentTUITheme = ZamaniTheme

// GetTUITheme returns the active theme
func GetTUITheme() TUITheme {
	return currentTUITheme
}

// SetTUITheme activates a theme by name and reports whether it exists
func SetTUITheme(name string) bool {
	theme, ok := GetTUIThemeByName(name)
	if ok {
		currentTUITheme = theme
	}
	return ok
}

// GetTUIThemeByName looks a theme up case-insensitively
func GetTUIThemeByName(name string) (TUITheme, bool) {
	for _, t := range builtinThemes {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return TUITheme{}, false
}

// AvailableTUIThemes returns every built-in theme
func AvailableTUIThemes() []TUITheme {
	return append([]TUITheme(nil), builtinThemes...)
}

// TUIThemeNames returns the theme names in display order
func TUIThemeNames() []string {
	names := make([]string, len(builtinThemes))
	for i, t := range builtinThemes {
		names[i] = t.Name
	}
	return names
}

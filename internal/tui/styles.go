// Package tui provides the terminal user interface for zamani-demo.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zamanilabs/zamani-demo/internal/errors"
	"github.com/zamanilabs/zamani-demo/internal/render"
)

// Color variables (updated from theme)
var (
	colorBackground lipgloss.Color
	colorSurface    lipgloss.Color
	colorBorder     lipgloss.Color

	colorPrimary   lipgloss.Color
	colorSecondary lipgloss.Color
	colorAccent    lipgloss.Color
	colorWarning   lipgloss.Color
	colorError     lipgloss.Color

	colorText     lipgloss.Color
	colorTextDim  lipgloss.Color
	colorTextMute lipgloss.Color
)

// Style variables (rebuilt when theme changes)
var (
	// Window chrome of the mockup
	dotCloseStyle lipgloss.Style
	dotMinStyle   lipgloss.Style
	dotMaxStyle   lipgloss.Style
	titleStyle    lipgloss.Style
	subtitleStyle lipgloss.Style
	hintStyle     lipgloss.Style

	// Hero copy
	headlineStyle lipgloss.Style

	// Background band
	layerActiveStyle lipgloss.Style
	layerIdleStyle   lipgloss.Style

	// Transcript
	userLabelStyle       lipgloss.Style
	userBubbleStyle      lipgloss.Style
	assistantLabelStyle  lipgloss.Style
	assistantBubbleStyle lipgloss.Style
	welcomeStyle         lipgloss.Style
	chipStyle            lipgloss.Style

	// Composer
	inputPromptStyle lipgloss.Style
	inputTextStyle   lipgloss.Style
	placeholderStyle lipgloss.Style

	// Controls row
	buttonStyle         lipgloss.Style
	buttonActiveStyle   lipgloss.Style
	buttonDisabledStyle lipgloss.Style
	consentOnStyle      lipgloss.Style
	consentOffStyle     lipgloss.Style

	// Model dropdown
	dropdownItemStyle     lipgloss.Style
	dropdownSelectedStyle lipgloss.Style
	dropdownCursorStyle   lipgloss.Style

	// Navigation
	navItemStyle   lipgloss.Style
	navActiveStyle lipgloss.Style
	menuItemStyle  lipgloss.Style

	// Loading/spinner style
	loadingStyle lipgloss.Style

	// Status bar styles
	statusBarStyle  lipgloss.Style
	statusKeyStyle  lipgloss.Style
	statusDescStyle lipgloss.Style

	errorStyle    lipgloss.Style
	feedbackStyle lipgloss.Style

	// Config menu styles
	configHeaderStyle       lipgloss.Style
	configTitleStyle        lipgloss.Style
	configPanelStyle        lipgloss.Style
	configSectionTitleStyle lipgloss.Style
	configMenuItemStyle     lipgloss.Style
	configMenuSelectedStyle lipgloss.Style
	configCursorStyle       lipgloss.Style
	configValueStyle        lipgloss.Style
	configEnabledStyle      lipgloss.Style
	configDisabledStyle     lipgloss.Style
	configPathStyle         lipgloss.Style
	configStatusOkStyle     lipgloss.Style
	configFeedbackStyle     lipgloss.Style
	configStatusBarStyle    lipgloss.Style
)

// init loads the default theme on package initialization
func init() {
	UpdateTheme()
}

// UpdateTheme refreshes all styles based on the current TUI theme
func UpdateTheme() {
	theme := render.GetTUITheme()

	colorBackground = theme.Background
	colorSurface = theme.Surface
	colorBorder = theme.Border
	colorPrimary = theme.Primary
	colorSecondary = theme.Secondary
	colorAccent = theme.Accent
	colorWarning = theme.Warning
	colorError = theme.Error
	colorText = theme.Text
	colorTextDim = theme.TextDim
	colorTextMute = theme.TextMute

	rebuildStyles(theme)
}

// rebuildStyles creates all lipgloss styles with current color values
func rebuildStyles(theme render.TUITheme) {
	dotCloseStyle = lipgloss.NewStyle().Foreground(theme.DotClose)
	dotMinStyle = lipgloss.NewStyle().Foreground(theme.DotMin)
	dotMaxStyle = lipgloss.NewStyle().Foreground(theme.DotMax)

	titleStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	subtitleStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	hintStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		Italic(true)

	headlineStyle = lipgloss.NewStyle().
		Foreground(colorText).
		Bold(true)

	layerActiveStyle = lipgloss.NewStyle().
		Foreground(colorBackground).
		Background(colorSecondary)

	layerIdleStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Background(colorSurface)

	userLabelStyle = lipgloss.NewStyle().
		Foreground(colorSecondary).
		Bold(true).
		MarginLeft(4)

	userBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorSecondary).
		Padding(0, 1).
		MarginLeft(4)

	assistantLabelStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	assistantBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Foreground(colorText).
		Padding(0, 1).
		MarginRight(4)

	welcomeStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Align(lipgloss.Center)

	chipStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Background(colorSurface).
		Padding(0, 1)

	inputPromptStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	inputTextStyle = lipgloss.NewStyle().
		Foreground(colorText)

	placeholderStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	buttonStyle = lipgloss.NewStyle().
		Foreground(colorText).
		Background(colorSurface).
		Padding(0, 1)

	buttonActiveStyle = lipgloss.NewStyle().
		Foreground(colorBackground).
		Background(colorPrimary).
		Bold(true).
		Padding(0, 1)

	buttonDisabledStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		Background(colorSurface).
		Padding(0, 1)

	consentOnStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Background(colorSurface).
		Padding(0, 1)

	consentOffStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Background(colorSurface).
		Padding(0, 1)

	dropdownItemStyle = lipgloss.NewStyle().
		Foreground(colorText).
		Background(colorSurface).
		Padding(0, 1)

	dropdownSelectedStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Background(colorSurface).
		Bold(true).
		Padding(0, 1)

	dropdownCursorStyle = lipgloss.NewStyle().
		Foreground(colorBackground).
		Background(colorAccent).
		Padding(0, 1)

	navItemStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Padding(0, 1)

	navActiveStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Padding(0, 1)

	menuItemStyle = lipgloss.NewStyle().
		Foreground(colorText).
		PaddingLeft(2)

	loadingStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	statusBarStyle = lipgloss.NewStyle().
		Foreground(colorTextMute)

	statusKeyStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Bold(true)

	statusDescStyle = lipgloss.NewStyle().
		Foreground(colorTextMute)

	errorStyle = lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true)

	feedbackStyle = lipgloss.NewStyle().
		Foreground(colorWarning).
		Italic(true)

	configHeaderStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		MarginBottom(1).
		Align(lipgloss.Center)

	configTitleStyle = lipgloss.NewStyle().
		Foreground(colorText).
		Bold(true).
		MarginBottom(1).
		PaddingLeft(1)

	configPanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1, 2)

	configSectionTitleStyle = lipgloss.NewStyle().
		Foreground(colorSecondary).
		Bold(true).
		MarginTop(1)

	configMenuItemStyle = lipgloss.NewStyle().
		Foreground(colorText).
		PaddingLeft(2)

	configMenuSelectedStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	configCursorStyle = lipgloss.NewStyle().
		Foreground(colorAccent)

	configValueStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	configEnabledStyle = lipgloss.NewStyle().
		Foreground(colorPrimary)

	configDisabledStyle = lipgloss.NewStyle().
		Foreground(colorError)

	configPathStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Italic(true)

	configStatusOkStyle = lipgloss.NewStyle().
		Foreground(colorPrimary)

	configFeedbackStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Italic(true).
		MarginTop(1)

	configStatusBarStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		MarginTop(1).
		Align(lipgloss.Center)
}

// FormatError returns a styled error message with a hint for the error
// kinds a user can fix.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	errStyle := lipgloss.NewStyle().Foreground(colorError)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	var sb strings.Builder
	sb.WriteString(errStyle.Render(fmt.Sprintf("✗ %v", err)))

	switch {
	case errors.IsUnknownModel(err):
		sb.WriteString(dimStyle.Render("\n  Hint: run 'zamani-demo models' to list the catalog"))
	case errors.IsInvalidStep(err):
		sb.WriteString(dimStyle.Render("\n  Hint: run 'zamani-demo simulate --help' for the step syntax"))
	case errors.IsConfigError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: check 'zamani-demo config show' or remove the offending key"))
	}

	return sb.String()
}

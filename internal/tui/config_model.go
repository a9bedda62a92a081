package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zamanilabs/zamani-demo/internal/config"
	"github.com/zamanilabs/zamani-demo/internal/models"
	"github.com/zamanilabs/zamani-demo/internal/render"
)

const feedbackTimeout = 2 * time.Second

// markdownStyles are the glamour styles offered by the settings menu
var markdownStyles = []string{"dark", "light", "dracula", "tokyo-night", "pink", "ascii", "notty"}

var logLevels = []string{"debug", "info", "warn", "error"}

// configView represents the current view in the config menu
type configView int

const (
	viewMain configView = iota
	viewPicker
)

// Menu item indices for main view
const (
	menuDefaultModel = iota
	menuInitialRoute
	menuCopyToClipboard
	menuLogLevel
	menuMarkdownStyle
	menuTUITheme
	menuExit
	menuItemCount
)

// feedbackClearMsg is sent to clear feedback messages
type feedbackClearMsg struct{}

// picker is a single-choice sub-menu for one setting
type picker struct {
	title   string
	item    int
	options []string
	cursor  int
}

// ConfigModel represents the config TUI state
type ConfigModel struct {
	config     config.Config
	configPath string
	save       func(config.Config) error

	// Navigation
	view   configView
	cursor int
	picker picker

	// Feedback
	feedback string

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewConfigModel creates a config menu over the configuration on disk
func NewConfigModel() ConfigModel {
	cfg, err := config.LoadFile()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	configPath, _ := config.GetConfigPath()

	if cfg.TUITheme != "" && render.SetTUITheme(cfg.TUITheme) {
		UpdateTheme()
	}
	return newConfigModel(cfg, configPath, config.SaveConfig)
}

func newConfigModel(cfg config.Config, configPath string, save func(config.Config) error) ConfigModel {
	return ConfigModel{
		config:     cfg,
		configPath: configPath,
		save:       save,
		view:       viewMain,
	}
}

// Config returns the configuration as edited so far
func (m ConfigModel) Config() config.Config {
	return m.config
}

// Init initializes the model
func (m ConfigModel) Init() tea.Cmd {
	return nil
}

// clearFeedback returns a command that clears the feedback message after a delay
func clearFeedback(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return feedbackClearMsg{}
	})
}

// Update handles messages and updates the model
func (m ConfigModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case feedbackClearMsg:
		m.feedback = ""

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.view == viewPicker {
				m.view = viewMain
			} else {
				return m, tea.Quit
			}

		case "up", "k":
			if m.view == viewMain {
				m.cursor = (m.cursor - 1 + menuItemCount) % menuItemCount
			} else {
				n := len(m.picker.options)
				m.picker.cursor = (m.picker.cursor - 1 + n) % n
			}

		case "down", "j":
			if m.view == viewMain {
				m.cursor = (m.cursor + 1) % menuItemCount
			} else {
				m.picker.cursor = (m.picker.cursor + 1) % len(m.picker.options)
			}

		case "enter", " ":
			return m.handleSelect()
		}
	}

	return m, nil
}

// openPicker switches to the sub-menu of a setting, with the cursor on
// its current value
func (m ConfigModel) openPicker(item int, title string, options []string, current string) ConfigModel {
	m.picker = picker{title: title, item: item, options: options}
	for i, o := range options {
		if o == current {
			m.picker.cursor = i
			break
		}
	}
	m.view = viewPicker
	return m
}

// persist saves the configuration and reports the outcome
func (m ConfigModel) persist(done string) (tea.Model, tea.Cmd) {
	if err := m.save(m.config); err != nil {
		m.feedback = fmt.Sprintf("Error: %v", err)
	} else {
		m.feedback = done
	}
	m.view = viewMain
	return m, clearFeedback(feedbackTimeout)
}

// handleSelect handles menu item selection
func (m ConfigModel) handleSelect() (tea.Model, tea.Cmd) {
	if m.view == viewPicker {
		value := m.picker.options[m.picker.cursor]
		switch m.picker.item {
		case menuDefaultModel:
			m.config.DefaultModel = value
			return m.persist("Model set to " + value)
		case menuInitialRoute:
			m.config.InitialRoute = value
			return m.persist("Initial route set to " + value)
		case menuLogLevel:
			m.config.LogLevel = value
			return m.persist("Log level set to " + value)
		case menuMarkdownStyle:
			m.config.Markdown.Style = value
			return m.persist("Markdown style set to " + value)
		case menuTUITheme:
			m.config.TUITheme = value
			render.SetTUITheme(value)
			UpdateTheme()
			return m.persist("TUI theme set to " + value)
		}
		m.view = viewMain
		return m, nil
	}

	switch m.cursor {
	case menuDefaultModel:
		return m.openPicker(menuDefaultModel, "Select Model", config.AvailableModels(), m.config.DefaultModel), nil
	case menuInitialRoute:
		return m.openPicker(menuInitialRoute, "Select Initial Route", routeChoices(), m.config.InitialRoute), nil
	case menuCopyToClipboard:
		m.config.CopyToClipboard = !m.config.CopyToClipboard
		state := "disabled"
		if m.config.CopyToClipboard {
			state = "enabled"
		}
		return m.persist("Copy to clipboard " + state)
	case menuLogLevel:
		return m.openPicker(menuLogLevel, "Select Log Level", logLevels, m.config.LogLevel), nil
	case menuMarkdownStyle:
		return m.openPicker(menuMarkdownStyle, "Select Markdown Style", markdownStyles, m.config.Markdown.Style), nil
	case menuTUITheme:
		return m.openPicker(menuTUITheme, "Select TUI Theme", render.TUIThemeNames(), m.config.TUITheme), nil
	case menuExit:
		return m, tea.Quit
	}
	return m, nil
}

// routeChoices lists the bottom-navigation paths
func routeChoices() []string {
	var paths []string
	for _, e := range models.BottomNav() {
		paths = append(paths, e.Path)
	}
	return paths
}

// View renders the TUI
func (m ConfigModel) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	var sections []string
	contentWidth := max(m.width-4, 40)

	header := configHeaderStyle.Width(contentWidth).Render(configTitleStyle.Render("✦ Configuration"))
	sections = append(sections, header)

	pathsContent := lipgloss.JoinVertical(lipgloss.Left,
		configSectionTitleStyle.Render("Paths"),
		fmt.Sprintf("   Config:  %s", configPathStyle.Render(m.configPath)),
	)
	sections = append(sections, configPanelStyle.Width(contentWidth).Render(pathsContent))

	var settingsContent string
	switch m.view {
	case viewMain:
		settingsContent = m.renderMainMenu()
	case viewPicker:
		settingsContent = m.renderPicker()
	}
	sections = append(sections, configPanelStyle.Width(contentWidth).Render(settingsContent))

	if m.feedback != "" {
		sections = append(sections, configFeedbackStyle.Render("✓ "+m.feedback))
	}

	sections = append(sections, m.renderStatusBar(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// menuLine renders one settings row with its value aligned
func (m ConfigModel) menuLine(item int, label, value string) string {
	cursor := "  "
	style := configMenuItemStyle
	if m.cursor == item {
		cursor = configCursorStyle.Render("▸ ")
		style = configMenuSelectedStyle
	}
	if value == "" {
		return cursor + style.Render(label)
	}
	return fmt.Sprintf("%s%s%s%s", cursor, style.Render(label), strings.Repeat(" ", max(20-len(label), 1)), value)
}

// renderMainMenu renders the main settings menu
func (m ConfigModel) renderMainMenu() string {
	items := []string{
		configSectionTitleStyle.Render("⚙ Settings"),
		"",
		m.menuLine(menuDefaultModel, "Default Model", configValueStyle.Render(m.config.DefaultModel)),
		m.menuLine(menuInitialRoute, "Initial Route", configValueStyle.Render(m.config.InitialRoute)),
		m.menuLine(menuCopyToClipboard, "Copy to Clipboard", m.renderBoolValue(m.config.CopyToClipboard)),
		m.menuLine(menuLogLevel, "Log Level", configValueStyle.Render(m.config.LogLevel)),
		m.menuLine(menuMarkdownStyle, "Markdown Style", configValueStyle.Render(m.config.Markdown.Style)),
		m.menuLine(menuTUITheme, "TUI Theme", configValueStyle.Render(m.config.TUITheme)),
		"",
		m.menuLine(menuExit, "Exit", ""),
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// current returns the configured value behind the open picker
func (m ConfigModel) current() string {
	switch m.picker.item {
	case menuDefaultModel:
		return m.config.DefaultModel
	case menuInitialRoute:
		return m.config.InitialRoute
	case menuLogLevel:
		return m.config.LogLevel
	case menuMarkdownStyle:
		return m.config.Markdown.Style
	case menuTUITheme:
		return m.config.TUITheme
	}
	return ""
}

// renderPicker renders the open sub-menu
func (m ConfigModel) renderPicker() string {
	items := []string{configSectionTitleStyle.Render(m.picker.title), ""}
	current := m.current()

	for i, option := range m.picker.options {
		cursor := "  "
		style := configMenuItemStyle
		if m.picker.cursor == i {
			cursor = configCursorStyle.Render("▸ ")
			style = configMenuSelectedStyle
		}

		marker := ""
		if option == current {
			marker = configStatusOkStyle.Render(" (current)")
		}
		items = append(items, cursor+style.Render(option)+marker)
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// renderBoolValue renders a boolean value with appropriate styling
func (m ConfigModel) renderBoolValue(value bool) string {
	if value {
		return configEnabledStyle.Render("enabled")
	}
	return configDisabledStyle.Render("disabled")
}

// renderStatusBar renders the bottom status bar
func (m ConfigModel) renderStatusBar(width int) string {
	back := "Exit"
	if m.view == viewPicker {
		back = "Back"
	}
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"↑↓", "Navigate"},
		{"Enter", "Select"},
		{"Esc", back},
	}

	var items []string
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s.key)+statusDescStyle.Render(" "+s.desc))
	}

	return configStatusBarStyle.Width(width).Render(strings.Join(items, "  │  "))
}

// RunConfig starts the config TUI
func RunConfig() error {
	p := tea.NewProgram(
		NewConfigModel(),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zamanilabs/zamani-demo/internal/config"
	"github.com/zamanilabs/zamani-demo/internal/render"
)

// newTestConfigModel returns a sized config menu that records saves
func newTestConfigModel(t *testing.T) (ConfigModel, *[]config.Config) {
	t.Helper()
	var saved []config.Config
	m := newConfigModel(config.DefaultConfig(), "/tmp/zamani/config.json", func(c config.Config) error {
		saved = append(saved, c)
		return nil
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(ConfigModel), &saved
}

func press(t *testing.T, m ConfigModel, keys ...tea.KeyMsg) (ConfigModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	var updated tea.Model = m
	for _, k := range keys {
		updated, cmd = updated.(ConfigModel).Update(k)
	}
	return updated.(ConfigModel), cmd
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestNewConfigModel(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())

	m := NewConfigModel()

	if m.configPath == "" {
		t.Error("configPath should not be empty")
	}
	if m.view != viewMain {
		t.Errorf("Expected view to be viewMain, got %v", m.view)
	}
	if m.config.DefaultModel != config.DefaultConfig().DefaultModel {
		t.Errorf("Expected default model, got %q", m.config.DefaultModel)
	}
}

func TestConfigModel_Init(t *testing.T) {
	m, _ := newTestConfigModel(t)
	if cmd := m.Init(); cmd != nil {
		t.Error("Init should return nil command")
	}
}

func TestClearFeedback(t *testing.T) {
	if cmd := clearFeedback(time.Millisecond); cmd == nil {
		t.Error("clearFeedback should return a command")
	}
}

func TestConfigModel_Update_WindowSize(t *testing.T) {
	m := newConfigModel(config.DefaultConfig(), "", nil)

	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	typed := updated.(ConfigModel)

	if typed.width != 100 || typed.height != 40 {
		t.Errorf("size = %dx%d, want 100x40", typed.width, typed.height)
	}
	if !typed.ready {
		t.Error("Model should be ready after WindowSizeMsg")
	}
	if cmd != nil {
		t.Error("WindowSizeMsg should return nil command")
	}
}

func TestConfigModel_Update_feedbackClearMsg(t *testing.T) {
	m, _ := newTestConfigModel(t)
	m.feedback = "Test feedback"

	updated, _ := m.Update(feedbackClearMsg{})
	if updated.(ConfigModel).feedback != "" {
		t.Error("Feedback should be cleared")
	}
}

func TestConfigModel_Update_CtrlC(t *testing.T) {
	m, _ := newTestConfigModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("Ctrl+C should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Ctrl+C should quit")
	}
}

func TestConfigModel_CursorWraps(t *testing.T) {
	m, _ := newTestConfigModel(t)

	m, _ = press(t, m, keyUp)
	if m.cursor != menuExit {
		t.Errorf("cursor = %d, want %d", m.cursor, menuExit)
	}
	m, _ = press(t, m, keyDown)
	if m.cursor != menuDefaultModel {
		t.Errorf("cursor = %d, want %d", m.cursor, menuDefaultModel)
	}
}

func TestConfigModel_SelectModel(t *testing.T) {
	m, saved := newTestConfigModel(t)

	m, _ = press(t, m, keyEnter)
	if m.view != viewPicker {
		t.Fatal("Enter on Default Model should open the picker")
	}
	if m.picker.options[m.picker.cursor] != m.config.DefaultModel {
		t.Error("picker cursor should start on the current model")
	}

	m, cmd := press(t, m, keyDown, keyEnter)
	if m.view != viewMain {
		t.Error("selecting should return to the main menu")
	}
	want := config.AvailableModels()[1]
	if m.config.DefaultModel != want {
		t.Errorf("DefaultModel = %q, want %q", m.config.DefaultModel, want)
	}
	if len(*saved) != 1 || (*saved)[0].DefaultModel != want {
		t.Errorf("saved = %+v", *saved)
	}
	if cmd == nil {
		t.Error("saving should schedule the feedback clear")
	}
	if !strings.Contains(m.feedback, want) {
		t.Errorf("feedback = %q", m.feedback)
	}
}

func TestConfigModel_PickerEscGoesBack(t *testing.T) {
	m, saved := newTestConfigModel(t)

	m, cmd := press(t, m, keyEnter, keyEsc)
	if m.view != viewMain {
		t.Error("Esc in the picker should go back")
	}
	if cmd != nil {
		t.Error("Esc in the picker should not quit")
	}
	if len(*saved) != 0 {
		t.Error("nothing should be saved")
	}
}

func TestConfigModel_ToggleClipboard(t *testing.T) {
	m, saved := newTestConfigModel(t)
	before := m.config.CopyToClipboard

	m, _ = press(t, m, keyDown, keyDown, keyEnter)
	if m.config.CopyToClipboard == before {
		t.Error("CopyToClipboard should flip")
	}
	if len(*saved) != 1 {
		t.Errorf("saved %d times, want 1", len(*saved))
	}
}

func TestConfigModel_InitialRoute(t *testing.T) {
	m, _ := newTestConfigModel(t)

	m, _ = press(t, m, keyDown, keyEnter, keyDown, keyEnter)
	if m.config.InitialRoute != "/marketplace" {
		t.Errorf("InitialRoute = %q, want /marketplace", m.config.InitialRoute)
	}
}

func TestConfigModel_TUITheme(t *testing.T) {
	t.Cleanup(func() {
		render.SetTUITheme(render.ZamaniTheme.Name)
		UpdateTheme()
	})
	m, _ := newTestConfigModel(t)

	for m.cursor != menuTUITheme {
		m, _ = press(t, m, keyDown)
	}
	m, _ = press(t, m, keyEnter, keyDown, keyEnter)

	want := render.TUIThemeNames()[1]
	if m.config.TUITheme != want {
		t.Errorf("TUITheme = %q, want %q", m.config.TUITheme, want)
	}
	if render.GetTUITheme().Name != want {
		t.Error("the theme should be applied immediately")
	}
}

func TestConfigModel_SaveError(t *testing.T) {
	m := newConfigModel(config.DefaultConfig(), "", func(config.Config) error {
		return errors.New("disk full")
	})
	m, _ = press(t, m, keyDown, keyDown, keyEnter)

	if !strings.Contains(m.feedback, "disk full") {
		t.Errorf("feedback = %q", m.feedback)
	}
}

func TestConfigModel_Exit(t *testing.T) {
	m, _ := newTestConfigModel(t)
	m, _ = press(t, m, keyUp)

	_, cmd := press(t, m, keyEnter)
	if cmd == nil {
		t.Fatal("Exit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Exit should quit")
	}
}

func TestConfigModel_View(t *testing.T) {
	m, _ := newTestConfigModel(t)

	view := m.View()
	for _, want := range []string{"Configuration", "/tmp/zamani/config.json", "Default Model", "Copy to Clipboard", "TUI Theme"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}

	m, _ = press(t, m, keyEnter)
	if !strings.Contains(m.View(), "(current)") {
		t.Error("picker should mark the current value")
	}
}

func TestConfigModel_ViewNotReady(t *testing.T) {
	m := newConfigModel(config.DefaultConfig(), "", nil)
	if !strings.Contains(m.View(), "Initializing") {
		t.Error("unsized model should show the loading text")
	}
}

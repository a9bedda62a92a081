package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings of the demo screen
type keyMap struct {
	Send     key.Binding
	Newline  key.Binding
	Dropdown key.Binding
	Up       key.Binding
	Down     key.Binding
	Pick     key.Binding
	Dismiss  key.Binding
	Consent  key.Binding
	Menu     key.Binding
	Nav      key.Binding
	Follow   key.Binding
	Copy     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		// Terminals report shift+enter as alt+enter at best
		Newline: key.NewBinding(
			key.WithKeys("alt+enter", "shift+enter"),
			key.WithHelp("alt+enter", "newline"),
		),
		Dropdown: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "model"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Pick: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Consent: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "consent"),
		),
		Menu: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "menu"),
		),
		Nav: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3"),
			key.WithHelp("alt+1-3", "navigate"),
		),
		Follow: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "follow link"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy reply"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp lists the bindings shown in the status bar
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.Newline, k.Dropdown, k.Consent, k.Nav, k.Menu, k.Copy, k.Quit}
}

// dropdownHelp lists the bindings active while the model list is open
func (k keyMap) dropdownHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Pick, k.Dismiss}
}

// menuHelp lists the bindings active while the header menu is open
func (k keyMap) menuHelp() []key.Binding {
	return []key.Binding{k.Follow, k.Menu, k.Dismiss}
}

// navIndex maps an alt+N press to a bottom-nav index
func navIndex(s string) (int, bool) {
	switch s {
	case "alt+1":
		return 0, true
	case "alt+2":
		return 1, true
	case "alt+3":
		return 2, true
	}
	return 0, false
}

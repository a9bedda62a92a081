package widget

import "github.com/zamanilabs/zamani-demo/internal/models"

// MenuToggle is the collapsible header menu. Following one of its links
// navigates away but leaves the bottom-nav highlight alone.
type MenuToggle struct {
	open    bool
	entries []models.NavEntry
	nav     Navigator
}

// NewMenuToggle creates a closed menu
func NewMenuToggle(entries []models.NavEntry, nav Navigator) *MenuToggle {
	return &MenuToggle{entries: entries, nav: nav}
}

// Toggle opens or closes the menu
func (m *MenuToggle) Toggle() {
	m.open = !m.open
}

// IsOpen reports whether the menu is expanded
func (m *MenuToggle) IsOpen() bool {
	return m.open
}

// Follow navigates to the i-th entry and collapses the menu
func (m *MenuToggle) Follow(i int) bool {
	if i < 0 || i >= len(m.entries) {
		return false
	}
	m.open = false
	if m.nav != nil {
		m.nav.Navigate(m.entries[i].Path)
	}
	return true
}

// Entries returns the menu links
func (m *MenuToggle) Entries() []models.NavEntry {
	return append([]models.NavEntry(nil), m.entries...)
}

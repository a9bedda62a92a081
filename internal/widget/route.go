package widget

import "github.com/zamanilabs/zamani-demo/internal/models"

// Navigator performs real navigation. The widget only asks for it.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(path string)

// Navigate implements Navigator
func (f NavigatorFunc) Navigate(path string) { f(path) }

// RouteIndicator tracks which bottom-navigation entry is highlighted.
type RouteIndicator struct {
	path    string
	entries []models.NavEntry
	nav     Navigator
}

// NewRouteIndicator starts tracking location, the path at mount time
func NewRouteIndicator(location string, entries []models.NavEntry, nav Navigator) *RouteIndicator {
	return &RouteIndicator{path: location, entries: entries, nav: nav}
}

// Activate highlights path immediately and delegates navigation
func (r *RouteIndicator) Activate(path string) {
	r.path = path
	if r.nav != nil {
		r.nav.Navigate(path)
	}
}

// ActivateEntry activates the i-th entry; out-of-range indexes are ignored
func (r *RouteIndicator) ActivateEntry(i int) bool {
	if i < 0 || i >= len(r.entries) {
		return false
	}
	r.Activate(r.entries[i].Path)
	return true
}

// IsActive is an exact match against the tracked path
func (r *RouteIndicator) IsActive(path string) bool {
	return r.path == path
}

// Current returns the tracked path
func (r *RouteIndicator) Current() string {
	return r.path
}

// Entries returns the navigation entries in display order
func (r *RouteIndicator) Entries() []models.NavEntry {
	return append([]models.NavEntry(nil), r.entries...)
}

package widget

import "github.com/zamanilabs/zamani-demo/internal/models"

// Snapshot is a read-only copy of the widget state, suitable for rendering
// and serialization.
type Snapshot struct {
	Mounted bool `json:"mounted" yaml:"mounted"`

	Placeholder      string `json:"placeholder" yaml:"placeholder"`
	PlaceholderIndex int    `json:"placeholder_index" yaml:"placeholder_index"`
	Rotating         bool   `json:"rotating" yaml:"rotating"`

	BackgroundIndex int     `json:"background_index" yaml:"background_index"`
	Backgrounds     []Layer `json:"backgrounds" yaml:"backgrounds"`

	Input          string           `json:"input" yaml:"input"`
	CanSend        bool             `json:"can_send" yaml:"can_send"`
	Transcript     []models.Message `json:"transcript" yaml:"transcript"`
	PendingReplies int              `json:"pending_replies" yaml:"pending_replies"`

	Catalog       []string `json:"catalog" yaml:"catalog"`
	SelectedModel string   `json:"selected_model" yaml:"selected_model"`
	DropdownOpen  bool     `json:"dropdown_open" yaml:"dropdown_open"`

	Contributing bool   `json:"contributing" yaml:"contributing"`
	ConsentLabel string `json:"consent_label" yaml:"consent_label"`

	Route     string            `json:"route" yaml:"route"`
	BottomNav []models.NavEntry `json:"bottom_nav" yaml:"bottom_nav"`
	MenuOpen  bool              `json:"menu_open" yaml:"menu_open"`
	TopNav    []models.NavEntry `json:"top_nav" yaml:"top_nav"`
}

// Snapshot captures the current state of every widget
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Mounted:          c.mounted,
		Placeholder:      c.Placeholder.Current(),
		PlaceholderIndex: c.Placeholder.Index(),
		Rotating:         c.Placeholder.Running(),
		BackgroundIndex:  c.Background.Index(),
		Backgrounds:      c.Background.Layers(),
		Input:            c.Chat.Input(),
		CanSend:          c.Chat.CanSend(),
		Transcript:       c.Chat.Transcript(),
		PendingReplies:   c.Chat.Pending(),
		Catalog:          c.Models.Catalog(),
		SelectedModel:    c.Models.Selected(),
		DropdownOpen:     c.Models.IsOpen(),
		Contributing:     c.Consent.Contributing(),
		ConsentLabel:     c.Consent.Label(),
		Route:            c.Routes.Current(),
		BottomNav:        c.Routes.Entries(),
		MenuOpen:         c.Menu.IsOpen(),
		TopNav:           c.Menu.Entries(),
	}
}

// IsRouteActive reports whether path is the highlighted bottom-nav entry
func (s Snapshot) IsRouteActive(path string) bool {
	return s.Route == path
}

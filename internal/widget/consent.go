package widget

import "github.com/zamanilabs/zamani-demo/internal/models"

// ConsentToggle is the contributing/private switch. It defaults to
// contributing and has no effect beyond its own display state.
type ConsentToggle struct {
	contributing bool
}

// NewConsentToggle creates a toggle in the contributing state
func NewConsentToggle() *ConsentToggle {
	return &ConsentToggle{contributing: true}
}

// Flip inverts the state
func (c *ConsentToggle) Flip() {
	c.contributing = !c.contributing
}

// Contributing reports the current state
func (c *ConsentToggle) Contributing() bool {
	return c.contributing
}

// Label returns the text shown next to the switch
func (c *ConsentToggle) Label() string {
	if c.contributing {
		return models.LabelContributing
	}
	return models.LabelPrivate
}

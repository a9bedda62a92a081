package widget

import (
	"time"

	"github.com/zamanilabs/zamani-demo/internal/models"
	"github.com/zamanilabs/zamani-demo/internal/scheduler"
)

// Layer is one background as rendered: both layers are always present and
// only the opacity says which one is showing.
type Layer struct {
	models.Background `yaml:",inline"`
	Opacity           float64 `json:"opacity" yaml:"opacity"`
}

// Crossfader alternates between the two hero backgrounds.
type Crossfader struct {
	sched    scheduler.Scheduler
	images   []models.Background
	interval time.Duration

	index  int
	cancel scheduler.Cancel
	torn   bool
}

// NewCrossfader creates a stopped crossfader showing the first image
func NewCrossfader(s scheduler.Scheduler, images []models.Background, interval time.Duration) *Crossfader {
	return &Crossfader{sched: s, images: images, interval: interval}
}

// Start arms the unconditional rotation timer. Calling Start twice is a no-op.
func (c *Crossfader) Start() {
	if c.torn || c.cancel != nil || len(c.images) == 0 {
		return
	}
	c.cancel = c.sched.Every(c.interval, func() {
		if c.torn {
			return
		}
		c.index = (c.index + 1) % len(c.images)
	})
}

// Stop cancels the timer for good
func (c *Crossfader) Stop() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.torn = true
}

// Running reports whether the timer is armed
func (c *Crossfader) Running() bool {
	return c.cancel != nil
}

// Index returns the visible background
func (c *Crossfader) Index() int {
	return c.index
}

// Layers returns every background with its current opacity
func (c *Crossfader) Layers() []Layer {
	layers := make([]Layer, len(c.images))
	for i, img := range c.images {
		layers[i] = Layer{Background: img}
		if i == c.index {
			layers[i].Opacity = 1
		}
	}
	return layers
}

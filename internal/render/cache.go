package render

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// rendererCache holds one glamour renderer per option set. A TermRenderer
// is not safe for concurrent use, so rendering happens under the lock.
type rendererCache struct {
	mu        sync.Mutex
	renderers map[Options]*glamour.TermRenderer
}

var renderers = &rendererCache{renderers: make(map[Options]*glamour.TermRenderer)}

func (c *rendererCache) render(content string, opts Options) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r, ok := c.renderers[opts]
	if !ok {
		var err error
		if r, err = createRenderer(opts); err != nil {
			return "", err
		}
		c.renderers[opts] = r
	}
	return r.Render(content)
}

func createRenderer(opts Options) (*glamour.TermRenderer, error) {
	rendererOpts := []glamour.TermRendererOption{
		glamour.WithStylePath(opts.Style),
		glamour.WithWordWrap(opts.Width),
	}
	if opts.EnableEmoji {
		rendererOpts = append(rendererOpts, glamour.WithEmoji())
	}
	if opts.PreserveNewLines {
		rendererOpts = append(rendererOpts, glamour.WithPreservedNewLines())
	}
	return glamour.NewTermRenderer(rendererOpts...)
}

// ClearCache drops every cached renderer
func ClearCache() {
	renderers.mu.Lock()
	renderers.renderers = make(map[Options]*glamour.TermRenderer)
	renderers.mu.Unlock()
}

// CacheSize returns the number of cached renderers
func CacheSize() int {
	renderers.mu.Lock()
	defer renderers.mu.Unlock()
	return len(renderers.renderers)
}

// Package widget implements the state machines behind the hero chat demo:
// placeholder rotation, background crossfade, the scripted chat, the model
// dropdown, the consent switch and the bottom-navigation highlight.
//
// A Controller and everything it owns must be driven from a single event
// loop. The scheduler it is given is expected to run callbacks on that loop.
package widget

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/zamanilabs/zamani-demo/internal/models"
	"github.com/zamanilabs/zamani-demo/internal/scheduler"
)

// Options configures a Controller. Zero values fall back to the page
// defaults.
type Options struct {
	Scheduler scheduler.Scheduler
	Pointer   PointerSource
	Navigator Navigator
	Logger    logrus.FieldLogger

	// Location is the path at mount time
	Location string
	// Model is the initially selected model
	Model string

	Catalog      []string
	Placeholders []string
	Backgrounds  []models.Background
	Reply        ReplyFunc
}

// Controller owns every widget of the hero demo.
type Controller struct {
	Placeholder *PlaceholderRotator
	Background  *Crossfader
	Chat        *ChatSimulator
	Models      *ModelSelector
	Consent     *ConsentToggle
	Routes      *RouteIndicator
	Menu        *MenuToggle

	log     logrus.FieldLogger
	mounted bool
	torn    bool
}

// New builds a controller. Nothing is scheduled until Mount.
func New(opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	if opts.Scheduler == nil {
		opts.Scheduler = scheduler.NewManual()
	}
	if opts.Location == "" {
		opts.Location = models.PathHome
	}
	if opts.Catalog == nil {
		opts.Catalog = models.ModelCatalog()
	}
	if opts.Placeholders == nil {
		opts.Placeholders = models.PlaceholderExamples()
	}
	if opts.Backgrounds == nil {
		opts.Backgrounds = models.Backgrounds()
	}

	c := &Controller{log: log}
	c.Models = NewModelSelector(opts.Catalog, opts.Model, opts.Pointer, log.WithField("widget", "models"))
	c.Placeholder = NewPlaceholderRotator(opts.Scheduler, opts.Placeholders, models.PlaceholderInterval)
	c.Background = NewCrossfader(opts.Scheduler, opts.Backgrounds, models.BackgroundInterval)
	c.Chat = NewChatSimulator(opts.Scheduler, models.ReplyDelay, opts.Reply, c.Models.Selected, log.WithField("widget", "chat"))
	c.Consent = NewConsentToggle()
	c.Routes = NewRouteIndicator(opts.Location, models.BottomNav(), opts.Navigator)
	c.Menu = NewMenuToggle(models.TopNav(), opts.Navigator)

	c.Chat.onInput = c.inputChanged
	return c
}

// Mount starts the timers. It is a no-op once mounted or torn down.
func (c *Controller) Mount() {
	if c.mounted || c.torn {
		return
	}
	c.mounted = true
	c.Background.Start()
	c.Placeholder.Watch(c.Chat.Input() == "")
	c.log.WithField("route", c.Routes.Current()).Debug("demo widget mounted")
}

// Unmount cancels every timer, in-flight reply and pointer observer.
// Callbacks that were already queued become no-ops.
func (c *Controller) Unmount() {
	if c.torn {
		return
	}
	c.torn = true
	c.mounted = false
	c.Placeholder.Stop()
	c.Background.Stop()
	c.Chat.Stop()
	c.Models.Stop()
	c.log.Debug("demo widget unmounted")
}

func (c *Controller) inputChanged(empty bool) {
	if c.mounted {
		c.Placeholder.Watch(empty)
	}
}

// Mounted reports whether the controller is live
func (c *Controller) Mounted() bool {
	return c.mounted
}

// SetInput replaces the prompt buffer
func (c *Controller) SetInput(text string) {
	c.Chat.SetInput(text)
}

// Send sends the prompt buffer
func (c *Controller) Send() bool {
	return c.Chat.SubmitInput()
}

// HandleKey forwards a prompt key press to the chat simulator
func (c *Controller) HandleKey(ev KeyEvent) bool {
	return c.Chat.HandleKey(ev)
}

// SelectModel selects a catalog entry
func (c *Controller) SelectModel(name string) error {
	return c.Models.Select(name)
}

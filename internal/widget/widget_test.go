package widget

import (
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/zamanilabs/zamani-demo/internal/errors"
	"github.com/zamanilabs/zamani-demo/internal/models"
	"github.com/zamanilabs/zamani-demo/internal/scheduler"
)

type recordingNavigator struct {
	paths []string
}

func (n *recordingNavigator) Navigate(path string) {
	n.paths = append(n.paths, path)
}

type fixture struct {
	clock *scheduler.Manual
	bus   *PointerBus
	nav   *recordingNavigator
	hook  *logtest.Hook
	ctrl  *Controller
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	f := &fixture{
		clock: scheduler.NewManual(),
		bus:   NewPointerBus(),
		nav:   &recordingNavigator{},
		hook:  hook,
	}
	opts.Scheduler = f.clock
	opts.Pointer = f.bus
	opts.Navigator = f.nav
	opts.Logger = logger
	f.ctrl = New(opts)
	f.ctrl.Mount()
	t.Cleanup(f.ctrl.Unmount)
	return f
}

// ---------------------------------------------------------------------------
// Chat simulator
// ---------------------------------------------------------------------------

func TestChat_SendAppendsUserThenReply(t *testing.T) {
	f := newFixture(t, Options{})
	c := f.ctrl

	c.SetInput("Hello")
	require.True(t, c.Send())

	assert.Equal(t, []models.Message{models.UserMessage("Hello")}, c.Chat.Transcript())
	assert.Equal(t, "", c.Chat.Input(), "input buffer is cleared on send")
	assert.Equal(t, 1, c.Chat.Pending())

	f.clock.Advance(999 * time.Millisecond)
	assert.Equal(t, 1, c.Chat.Len(), "reply must not arrive before the delay")

	f.clock.Advance(time.Millisecond)
	transcript := c.Chat.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, models.RoleAssistant, transcript[1].Role)
	assert.Contains(t, transcript[1].Content, "demo response from "+c.Models.Selected())
	assert.Equal(t, 0, c.Chat.Pending())
}

func TestChat_SendTrimsContent(t *testing.T) {
	f := newFixture(t, Options{})
	require.True(t, f.ctrl.Chat.Send("  Hello there \n"))
	assert.Equal(t, "Hello there", f.ctrl.Chat.Transcript()[0].Content)
}

func TestChat_EmptyInputIsNoop(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		f := newFixture(t, Options{})
		f.ctrl.SetInput(text)

		assert.False(t, f.ctrl.Send())
		assert.False(t, f.ctrl.Chat.Send(text))

		f.clock.Advance(5 * time.Second)
		assert.Empty(t, f.ctrl.Chat.Transcript(), "send(%q) must not modify the transcript", text)
		assert.Equal(t, 0, f.ctrl.Chat.Pending())
	}
}

func TestChat_ConcurrentSendsEachGetOneReply(t *testing.T) {
	f := newFixture(t, Options{})
	c := f.ctrl.Chat

	c.Send("one")
	f.clock.Advance(300 * time.Millisecond)
	c.Send("two")
	f.clock.Advance(300 * time.Millisecond)
	c.Send("three")
	assert.Equal(t, 3, c.Pending())

	f.clock.Advance(2 * time.Second)

	var roles []models.Role
	for _, m := range c.Transcript() {
		roles = append(roles, m.Role)
	}
	assert.Equal(t, []models.Role{
		models.RoleUser, models.RoleUser, models.RoleUser,
		models.RoleAssistant, models.RoleAssistant, models.RoleAssistant,
	}, roles)
	assert.Equal(t, 0, c.Pending())
}

func TestChat_ReplyUsesSelectionAtDelivery(t *testing.T) {
	f := newFixture(t, Options{})
	c := f.ctrl

	c.Chat.Send("Hello")
	f.clock.Advance(500 * time.Millisecond)
	require.NoError(t, c.SelectModel("DeepSeek V3"))
	f.clock.Advance(500 * time.Millisecond)

	reply, ok := c.Chat.LastReply()
	require.True(t, ok)
	assert.Contains(t, reply, "DeepSeek V3")
}

func TestChat_HandleKey(t *testing.T) {
	tests := []struct {
		name       string
		ev         KeyEvent
		consumed   bool
		transcript int
	}{
		{"enter sends", KeyEvent{Key: KeyEnter}, true, 1},
		{"shift+enter is a newline", KeyEvent{Key: KeyEnter, Shift: true}, false, 0},
		{"other keys pass through", KeyEvent{Key: "a"}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Options{})
			f.ctrl.SetInput("Hi")

			assert.Equal(t, tt.consumed, f.ctrl.HandleKey(tt.ev))
			assert.Equal(t, tt.transcript, f.ctrl.Chat.Len())
		})
	}
}

func TestChat_EnterOnEmptyInputIsConsumedButNoop(t *testing.T) {
	f := newFixture(t, Options{})
	assert.True(t, f.ctrl.HandleKey(KeyEvent{Key: KeyEnter}))
	assert.Equal(t, 0, f.ctrl.Chat.Len())
}

func TestChat_CanSend(t *testing.T) {
	f := newFixture(t, Options{})
	assert.False(t, f.ctrl.Chat.CanSend())
	f.ctrl.SetInput("  ")
	assert.False(t, f.ctrl.Chat.CanSend())
	f.ctrl.SetInput(" x ")
	assert.True(t, f.ctrl.Chat.CanSend())
}

func TestChat_CustomReply(t *testing.T) {
	f := newFixture(t, Options{Reply: func(model string) string { return "scripted:" + model }})
	f.ctrl.Chat.Send("Hello")
	f.clock.Advance(time.Second)

	reply, ok := f.ctrl.Chat.LastReply()
	require.True(t, ok)
	assert.Equal(t, "scripted:"+models.DefaultModel(), reply)
}

// ---------------------------------------------------------------------------
// Placeholder rotator
// ---------------------------------------------------------------------------

func TestPlaceholder_AdvancesWhileEmpty(t *testing.T) {
	f := newFixture(t, Options{})
	n := len(models.PlaceholderExamples())

	for _, elapsed := range []time.Duration{0, 2999 * time.Millisecond, 3 * time.Second, 9500 * time.Millisecond, 30 * time.Second} {
		f := newFixture(t, Options{})
		f.clock.Advance(elapsed)
		want := int(elapsed/models.PlaceholderInterval) % n
		assert.Equal(t, want, f.ctrl.Placeholder.Index(), "elapsed %s", elapsed)
	}

	assert.True(t, f.ctrl.Placeholder.Running())
}

func TestPlaceholder_Wraps(t *testing.T) {
	f := newFixture(t, Options{Placeholders: []string{"a", "b", "c"}})
	f.clock.Advance(9 * time.Second)
	assert.Equal(t, 0, f.ctrl.Placeholder.Index())
	assert.Equal(t, "a", f.ctrl.Placeholder.Current())
	f.clock.Advance(3 * time.Second)
	assert.Equal(t, "b", f.ctrl.Placeholder.Current())
}

func TestPlaceholder_FreezesWhileTyping(t *testing.T) {
	f := newFixture(t, Options{})
	c := f.ctrl

	f.clock.Advance(3 * time.Second)
	require.Equal(t, 1, c.Placeholder.Index())

	c.SetInput("H")
	assert.False(t, c.Placeholder.Running())
	f.clock.Advance(10 * time.Second)
	assert.Equal(t, 1, c.Placeholder.Index(), "cursor is frozen while input is non-empty")

	c.SetInput("")
	assert.True(t, c.Placeholder.Running())
	f.clock.Advance(2999 * time.Millisecond)
	assert.Equal(t, 1, c.Placeholder.Index(), "restart uses a fresh timer")
	f.clock.Advance(time.Millisecond)
	assert.Equal(t, 2, c.Placeholder.Index())
}

func TestPlaceholder_NoStackedTimers(t *testing.T) {
	f := newFixture(t, Options{})
	c := f.ctrl

	for i := 0; i < 5; i++ {
		c.SetInput("x")
		c.SetInput("")
		c.SetInput("")
	}
	f.clock.Advance(3 * time.Second)
	assert.Equal(t, 1, c.Placeholder.Index(), "exactly one advance per interval")
}

func TestPlaceholder_SendClearsInputAndResumes(t *testing.T) {
	f := newFixture(t, Options{})
	c := f.ctrl

	c.SetInput("Hello")
	assert.False(t, c.Placeholder.Running())
	c.Send()
	assert.True(t, c.Placeholder.Running())
}

// ---------------------------------------------------------------------------
// Background crossfader
// ---------------------------------------------------------------------------

func TestBackground_Alternates(t *testing.T) {
	f := newFixture(t, Options{})
	bg := f.ctrl.Background

	want := []int{0, 1, 0, 1, 0}
	for i, w := range want {
		assert.Equal(t, w, bg.Index(), "after %d intervals", i)
		f.clock.Advance(models.BackgroundInterval)
	}
}

func TestBackground_IgnoresOtherState(t *testing.T) {
	f := newFixture(t, Options{})
	c := f.ctrl

	c.SetInput("typing")
	c.Models.Open()
	c.Consent.Flip()
	f.clock.Advance(6 * time.Second)
	assert.Equal(t, 1, c.Background.Index())
}

func TestBackground_LayersKeepBothImages(t *testing.T) {
	f := newFixture(t, Options{})
	bg := f.ctrl.Background

	for step := 0; step < 3; step++ {
		layers := bg.Layers()
		require.Len(t, layers, 2)
		for i, l := range layers {
			if i == bg.Index() {
				assert.Equal(t, 1.0, l.Opacity)
			} else {
				assert.Equal(t, 0.0, l.Opacity)
			}
		}
		assert.False(t, layers[0].Mirrored)
		assert.True(t, layers[1].Mirrored)
		f.clock.Advance(6 * time.Second)
	}
}

// ---------------------------------------------------------------------------
// Model selector
// ---------------------------------------------------------------------------

func TestSelector_DefaultsAndInitial(t *testing.T) {
	f := newFixture(t, Options{})
	assert.Equal(t, models.DefaultModel(), f.ctrl.Models.Selected())
	assert.False(t, f.ctrl.Models.IsOpen())

	g := newFixture(t, Options{Model: "GPT-4o"})
	assert.Equal(t, "GPT-4o", g.ctrl.Models.Selected())

	h := newFixture(t, Options{Model: "Not A Model"})
	assert.Equal(t, models.DefaultModel(), h.ctrl.Models.Selected())
}

func TestSelector_SelectClosesFromAnyState(t *testing.T) {
	for _, startOpen := range []bool{false, true} {
		f := newFixture(t, Options{})
		s := f.ctrl.Models
		if startOpen {
			s.Toggle()
		}

		require.NoError(t, s.Select("GPT-5"))
		assert.Equal(t, "GPT-5", s.Selected())
		assert.False(t, s.IsOpen())
		assert.True(t, s.IsSelected("GPT-5"))
		assert.False(t, s.IsSelected(models.DefaultModel()))
	}
}

func TestSelector_ReselectIsIdempotentButCloses(t *testing.T) {
	f := newFixture(t, Options{})
	s := f.ctrl.Models
	current := s.Selected()

	s.Open()
	require.NoError(t, s.Select(current))
	assert.Equal(t, current, s.Selected())
	assert.False(t, s.IsOpen())
}

func TestSelector_UnknownModelIsLoggedNoop(t *testing.T) {
	f := newFixture(t, Options{})
	s := f.ctrl.Models
	s.Open()

	err := s.Select("GPT-9000")
	require.Error(t, err)
	assert.True(t, apierrors.IsUnknownModel(err))
	assert.Equal(t, models.DefaultModel(), s.Selected())
	assert.True(t, s.IsOpen(), "rejected selection leaves state untouched")

	entry := f.hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "GPT-9000", entry.Data["model"])
}

func TestSelector_OutsidePointerCloses(t *testing.T) {
	f := newFixture(t, Options{})
	s := f.ctrl.Models
	s.SetBounds(Rect{X: 10, Y: 5, W: 10, H: 1}, Rect{X: 10, Y: 6, W: 20, H: 9})

	s.Open()
	f.bus.Publish(PointerEvent{X: 12, Y: 8})
	assert.True(t, s.IsOpen(), "pointer inside the list keeps it open")

	f.bus.Publish(PointerEvent{X: 0, Y: 0})
	assert.False(t, s.IsOpen())
	assert.Equal(t, models.DefaultModel(), s.Selected(), "dismissal does not change selection")
}

func TestSelector_ListenerOnlyWhileOpen(t *testing.T) {
	f := newFixture(t, Options{})
	s := f.ctrl.Models
	assert.Equal(t, 0, f.bus.Len())

	for i := 0; i < 10; i++ {
		s.Toggle()
		assert.Equal(t, 1, f.bus.Len())
		s.Toggle()
		assert.Equal(t, 0, f.bus.Len())
	}

	s.Open()
	s.Open()
	assert.Equal(t, 1, f.bus.Len(), "opening twice must not stack observers")
	f.bus.Publish(PointerEvent{X: 500, Y: 500})
	assert.Equal(t, 0, f.bus.Len(), "outside dismissal unsubscribes")

	s.Open()
	require.NoError(t, s.Select("Llama 4"))
	assert.Equal(t, 0, f.bus.Len(), "selection unsubscribes")
}

func TestSelector_KeyboardCursor(t *testing.T) {
	f := newFixture(t, Options{})
	s := f.ctrl.Models
	catalog := s.Catalog()

	s.MoveCursor(1)
	assert.Equal(t, 0, s.Highlighted(), "cursor does not move while closed")

	s.Open()
	s.MoveCursor(-1)
	assert.Equal(t, len(catalog)-1, s.Highlighted())
	s.MoveCursor(2)
	assert.Equal(t, 1, s.Highlighted())

	require.NoError(t, s.SelectHighlighted())
	assert.Equal(t, catalog[1], s.Selected())
	assert.False(t, s.IsOpen())
}

// ---------------------------------------------------------------------------
// Consent, routes, menu
// ---------------------------------------------------------------------------

func TestConsent_Involution(t *testing.T) {
	c := NewConsentToggle()
	assert.True(t, c.Contributing())
	assert.Equal(t, models.LabelContributing, c.Label())

	c.Flip()
	assert.False(t, c.Contributing())
	assert.Equal(t, models.LabelPrivate, c.Label())

	c.Flip()
	assert.True(t, c.Contributing())
}

func TestRoutes_ActivateHighlightsExactlyOne(t *testing.T) {
	f := newFixture(t, Options{Location: "/chat"})
	r := f.ctrl.Routes
	assert.True(t, r.IsActive("/chat"))

	r.Activate(models.PathMarketplace)
	for _, e := range r.Entries() {
		assert.Equal(t, e.Path == models.PathMarketplace, r.IsActive(e.Path), "entry %s", e.Path)
	}
	assert.Equal(t, []string{models.PathMarketplace}, f.nav.paths)
}

func TestRoutes_ExactMatch(t *testing.T) {
	f := newFixture(t, Options{Location: "/marketplace/"})
	r := f.ctrl.Routes
	for _, e := range r.Entries() {
		assert.False(t, r.IsActive(e.Path), "trailing slash must not match %s", e.Path)
	}

	assert.True(t, r.ActivateEntry(0))
	assert.True(t, r.IsActive("/"))
	assert.False(t, r.ActivateEntry(7))
}

func TestMenu_FollowDelegatesWithoutMovingHighlight(t *testing.T) {
	f := newFixture(t, Options{})
	c := f.ctrl

	c.Menu.Toggle()
	require.True(t, c.Menu.IsOpen())
	require.True(t, c.Menu.Follow(2))

	assert.False(t, c.Menu.IsOpen())
	assert.Equal(t, []string{models.PathAPI}, f.nav.paths)
	assert.True(t, c.Routes.IsActive(models.PathHome))
}

// ---------------------------------------------------------------------------
// Lifecycle
// ---------------------------------------------------------------------------

func TestController_NothingRunsBeforeMount(t *testing.T) {
	clock := scheduler.NewManual()
	c := New(Options{Scheduler: clock})

	c.SetInput("")
	assert.Equal(t, 0, clock.Pending())

	c.Mount()
	assert.Equal(t, 2, clock.Pending(), "crossfader and placeholder timers")
	c.Mount()
	assert.Equal(t, 2, clock.Pending())
}

func TestController_UnmountCancelsEverything(t *testing.T) {
	f := newFixture(t, Options{})
	c := f.ctrl

	c.Chat.Send("one")
	c.Chat.Send("two")
	c.Models.Open()
	require.Equal(t, 1, f.bus.Len())

	c.Unmount()
	c.Unmount()

	assert.Equal(t, 0, f.clock.Pending(), "no timers survive teardown")
	assert.Equal(t, 0, f.bus.Len(), "no pointer observers survive teardown")
	assert.False(t, c.Mounted())

	before := c.Snapshot()
	f.clock.Advance(time.Minute)
	after := c.Snapshot()
	assert.Equal(t, before, after)

	assert.False(t, c.Chat.Send("late"))
	c.SetInput("late")
	assert.Equal(t, 0, f.clock.Pending())
}

func TestController_StaleLoopCallbacksAreInert(t *testing.T) {
	loop := scheduler.NewLoop(8)
	defer loop.Close()

	c := New(Options{Scheduler: loop})
	c.Mount()
	c.Chat.Send("Hello")

	var fn func()
	select {
	case fn = <-loop.Tasks():
	case <-time.After(3 * time.Second):
		t.Fatal("reply was never queued")
	}

	c.Unmount()
	assert.NotPanics(t, fn)
	assert.Equal(t, 1, c.Chat.Len(), "reply queued before teardown must not be delivered")
}

// ---------------------------------------------------------------------------
// End-to-end scenarios
// ---------------------------------------------------------------------------

func TestScenario_PlaceholderGate(t *testing.T) {
	f := newFixture(t, Options{})
	c := f.ctrl

	assert.Equal(t, 0, c.Placeholder.Index())
	f.clock.Advance(3 * time.Second)
	assert.Equal(t, 1, c.Placeholder.Index())

	c.SetInput("typing")
	f.clock.Advance(3 * time.Second)
	assert.Equal(t, 1, c.Placeholder.Index())

	c.SetInput("")
	f.clock.Advance(3 * time.Second)
	assert.Equal(t, 2, c.Placeholder.Index())
}

func TestScenario_HelloRoundTrip(t *testing.T) {
	f := newFixture(t, Options{})
	c := f.ctrl

	c.Chat.Send("Hello")
	assert.Equal(t, []models.Message{models.UserMessage("Hello")}, c.Chat.Transcript())

	f.clock.Advance(time.Second)
	assert.Equal(t, []models.Message{
		models.UserMessage("Hello"),
		models.AssistantMessage(models.DemoReply(c.Models.Selected())),
	}, c.Chat.Transcript())
}

func TestScenario_SelectThenSend(t *testing.T) {
	f := newFixture(t, Options{})
	c := f.ctrl

	c.Models.Toggle()
	require.True(t, c.Models.IsOpen())
	require.NoError(t, c.Models.Select("GPT-5"))
	assert.Equal(t, "GPT-5", c.Models.Selected())
	assert.False(t, c.Models.IsOpen())

	c.SetInput("What can you do?")
	c.HandleKey(KeyEvent{Key: KeyEnter})
	f.clock.Advance(time.Second)

	reply, ok := c.Chat.LastReply()
	require.True(t, ok)
	assert.True(t, strings.Contains(reply, "GPT-5"), "reply %q should mention GPT-5", reply)
}

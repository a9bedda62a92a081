package tui

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/zamanilabs/zamani-demo/internal/logging"
	"github.com/zamanilabs/zamani-demo/internal/models"
	"github.com/zamanilabs/zamani-demo/internal/render"
	"github.com/zamanilabs/zamani-demo/internal/scheduler"
	"github.com/zamanilabs/zamani-demo/internal/widget"
)

// Message types for the TUI
type (
	// taskMsg carries a timer callback that must run on the event loop
	taskMsg func()

	copiedMsg struct {
		err error
	}
)

// taskSource is a scheduler whose callbacks are handed to the event loop
type taskSource interface {
	Tasks() <-chan func()
	Done() <-chan struct{}
}

// Options configures the demo screen
type Options struct {
	// Model is the model selected at mount time
	Model string
	// Route is the location highlighted in the bottom navigation
	Route string

	CopyToClipboard bool
	Markdown        render.Options
	Logger          logrus.FieldLogger

	// Scheduler defaults to a wall-clock scheduler.Loop
	Scheduler scheduler.Scheduler
	// Clipboard defaults to the system clipboard
	Clipboard func(text string) error
}

// navigationLog is the Navigator of the TUI. There is no page to leave,
// so requested paths are recorded for the status bar.
type navigationLog struct {
	paths []string
	log   logrus.FieldLogger
}

func (n *navigationLog) Navigate(path string) {
	n.paths = append(n.paths, path)
	n.log.WithField("path", path).Info("navigation requested")
}

func (n *navigationLog) last() string {
	if len(n.paths) == 0 {
		return ""
	}
	return n.paths[len(n.paths)-1]
}

// Model represents the TUI state
type Model struct {
	ctrl    *widget.Controller
	sched   scheduler.Scheduler
	pointer *widget.PointerBus
	nav     *navigationLog
	log     logrus.FieldLogger

	keys      keyMap
	help      help.Model
	markdown  render.Options
	clipboard func(string) error
	copyOn    bool

	// UI components
	viewport viewport.Model
	input    textarea.Model
	spinner  spinner.Model

	// State
	rendered int
	typing   bool
	ready    bool
	feedback string
	err      error

	// Dimensions
	width  int
	height int
}

// NewModel creates the demo screen. The widgets are mounted by Init.
func NewModel(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = scheduler.NewLoop(64)
	}
	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	md := opts.Markdown
	if md.Style == "" {
		md = render.DefaultOptions()
	}

	pointer := widget.NewPointerBus()
	nav := &navigationLog{log: log}
	ctrl := widget.New(widget.Options{
		Scheduler: sched,
		Pointer:   pointer,
		Navigator: nav,
		Logger:    log,
		Location:  opts.Route,
		Model:     opts.Model,
	})

	ta := textarea.New()
	ta.Placeholder = ctrl.Placeholder.Current()
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.Prompt = "› "
	ta.SetHeight(2)
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = inputTextStyle
	ta.FocusedStyle.Placeholder = placeholderStyle
	ta.FocusedStyle.Prompt = inputPromptStyle
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		ctrl:      ctrl,
		sched:     sched,
		pointer:   pointer,
		nav:       nav,
		log:       log,
		keys:      defaultKeyMap(),
		help:      help.New(),
		markdown:  md,
		clipboard: copyFn,
		copyOn:    opts.CopyToClipboard,
		input:     ta,
		spinner:   s,
	}
}

// Controller exposes the widget state behind the screen
func (m Model) Controller() *widget.Controller {
	return m.ctrl
}

// Init mounts the widgets and starts draining timer callbacks
func (m Model) Init() tea.Cmd {
	m.ctrl.Mount()
	m.log.WithFields(logrus.Fields{
		"model": m.ctrl.Models.Selected(),
		"route": m.ctrl.Routes.Current(),
	}).Info("demo started")
	return tea.Batch(
		textarea.Blink,
		m.waitForTask(),
	)
}

// waitForTask blocks until the scheduler hands over a callback
func (m Model) waitForTask() tea.Cmd {
	src, ok := m.sched.(taskSource)
	if !ok {
		return nil
	}
	return func() tea.Msg {
		select {
		case fn := <-src.Tasks():
			return taskMsg(fn)
		case <-src.Done():
			return nil
		}
	}
}

// Close unmounts the widgets and stops the scheduler
func (m Model) Close() {
	m.ctrl.Unmount()
	if c, ok := m.sched.(interface{ Close() }); ok {
		c.Close()
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(m.width, m.viewportHeight())
			m.ready = true
		}
		m.viewport.Width = m.width
		m.input.SetWidth(max(m.width-2, 10))
		m.updateViewport()

	case taskMsg:
		msg()
		cmds = append(cmds, m.waitForTask())

	case copiedMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.feedback = "Reply copied to clipboard"
			cmds = append(cmds, clearFeedback(feedbackTimeout))
		}

	case feedbackClearMsg:
		m.feedback = ""

	case spinner.TickMsg:
		if m.typing {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && !tea.MouseEvent(msg).IsWheel() && m.ready {
			m.handlePress(msg.X, msg.Y, msg.Button == tea.MouseButtonLeft)
		}
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		quit, cmd := m.handleKey(msg)
		if quit {
			m.Close()
			return m, tea.Quit
		}
		cmds = append(cmds, cmd)
	}

	cmds = append(cmds, m.sync())
	return m, tea.Batch(cmds...)
}

// handleKey routes a key press. The open dropdown and the open menu get
// first pick; everything else goes to the prompt.
func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return true, nil
	}
	m.err = nil

	if m.ctrl.Models.IsOpen() {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.ctrl.Models.MoveCursor(-1)
			return false, nil
		case key.Matches(msg, m.keys.Down):
			m.ctrl.Models.MoveCursor(1)
			return false, nil
		case key.Matches(msg, m.keys.Pick):
			if err := m.ctrl.Models.SelectHighlighted(); err != nil {
				m.err = err
			}
			return false, nil
		case key.Matches(msg, m.keys.Dismiss), key.Matches(msg, m.keys.Dropdown):
			m.ctrl.Models.Close()
			return false, nil
		}
	}

	if m.ctrl.Menu.IsOpen() {
		switch {
		case key.Matches(msg, m.keys.Follow):
			m.ctrl.Menu.Follow(int(msg.Runes[0]-'1'))
			return false, nil
		case key.Matches(msg, m.keys.Dismiss), key.Matches(msg, m.keys.Menu):
			m.ctrl.Menu.Toggle()
			return false, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return true, nil
	case key.Matches(msg, m.keys.Dropdown):
		m.ctrl.Models.Toggle()
		return false, nil
	case key.Matches(msg, m.keys.Consent):
		m.ctrl.Consent.Flip()
		return false, nil
	case key.Matches(msg, m.keys.Menu):
		m.ctrl.Menu.Toggle()
		return false, nil
	case key.Matches(msg, m.keys.Nav):
		if i, ok := navIndex(msg.String()); ok {
			m.ctrl.Routes.ActivateEntry(i)
		}
		return false, nil
	case key.Matches(msg, m.keys.Copy):
		return false, m.copyLastReply()
	case key.Matches(msg, m.keys.Send), key.Matches(msg, m.keys.Newline):
		ev := widget.KeyEvent{Key: widget.KeyEnter, Shift: key.Matches(msg, m.keys.Newline)}
		if m.ctrl.HandleKey(ev) {
			return false, nil
		}
	case msg.String() == "pgup" || msg.String() == "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return false, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.ctrl.Chat.Input() {
		m.ctrl.SetInput(v)
	}
	return false, cmd
}

// handlePress publishes every pointer-down, whatever the button, before
// acting on it. Only the primary button activates what is under it.
func (m *Model) handlePress(x, y int, primary bool) {
	f := m.frame()
	m.ctrl.Models.SetBounds(f.selector...)
	m.pointer.Publish(widget.PointerEvent{X: x, Y: y})

	if !primary {
		return
	}
	h, ok := f.hitAt(x, y)
	if !ok {
		return
	}
	switch h.target {
	case targetMenuToggle:
		m.ctrl.Menu.Toggle()
	case targetMenuEntry:
		m.ctrl.Menu.Follow(h.index)
	case targetSend:
		m.ctrl.Send()
	case targetConsent:
		m.ctrl.Consent.Flip()
	case targetModelButton:
		m.ctrl.Models.Toggle()
	case targetModelOption:
		if err := m.ctrl.SelectModel(m.ctrl.Models.Catalog()[h.index]); err != nil {
			m.err = err
		}
	case targetNav:
		m.ctrl.Routes.ActivateEntry(h.index)
	}
}

func (m Model) copyLastReply() tea.Cmd {
	if !m.copyOn {
		return func() tea.Msg {
			return copiedMsg{err: errors.New("clipboard copy is disabled in the configuration")}
		}
	}
	text, ok := m.ctrl.Chat.LastReply()
	if !ok {
		return func() tea.Msg {
			return copiedMsg{err: errors.New("no reply to copy yet")}
		}
	}
	copyFn := m.clipboard
	return func() tea.Msg {
		return copiedMsg{err: copyFn(text)}
	}
}

// sync pulls widget state into the bubbles components
func (m *Model) sync() tea.Cmd {
	m.input.Placeholder = m.ctrl.Placeholder.Current()
	if m.ctrl.Chat.Input() == "" && m.input.Value() != "" {
		m.input.Reset()
	}

	if m.ready {
		m.viewport.Height = m.viewportHeight()
		if m.ctrl.Chat.Len() != m.rendered {
			m.updateViewport()
			m.viewport.GotoBottom()
		}
	}

	pending := m.ctrl.Chat.Pending() > 0
	if pending && !m.typing {
		m.typing = true
		return m.spinner.Tick
	}
	if !pending {
		m.typing = false
	}
	return nil
}

// fixedRows is the height of everything but the transcript
func (m Model) fixedRows() int {
	// chrome, band, blank, headline, blank, input, controls, chips, nav, status
	rows := 9 + m.input.Height()
	if m.ctrl.Menu.IsOpen() {
		rows += len(m.ctrl.Menu.Entries())
	}
	if m.ctrl.Models.IsOpen() {
		rows += len(m.ctrl.Models.Catalog())
	}
	if m.err != nil {
		rows++
	}
	return rows
}

func (m Model) viewportHeight() int {
	return max(m.height-m.fixedRows(), 3)
}

// updateViewport refreshes the viewport content with styled messages
func (m *Model) updateViewport() {
	transcript := m.ctrl.Chat.Transcript()
	m.rendered = len(transcript)

	if len(transcript) == 0 {
		m.viewport.SetContent(m.renderWelcome())
		return
	}

	var content strings.Builder
	bubbleWidth := max(m.viewport.Width-6, 20)

	for i, msg := range transcript {
		if i > 0 {
			content.WriteString("\n")
		}

		if msg.Role == models.RoleUser {
			label := userLabelStyle.Render("⬤ You")
			bubble := userBubbleStyle.Width(bubbleWidth).Render(msg.Content)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := assistantLabelStyle.Render("✦ " + models.ChatName)
			rendered, err := render.Markdown(msg.Content, m.markdown.WithWidth(bubbleWidth-4))
			if err != nil {
				rendered = msg.Content
			}
			bubble := assistantBubbleStyle.Width(bubbleWidth).Render(rendered)
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// renderWelcome renders the empty transcript
func (m Model) renderWelcome() string {
	width := max(m.viewport.Width, 20)
	text := welcomeStyle.Width(width).Render(models.Subtext)

	topPadding := max((m.viewport.Height-lipgloss.Height(text))/2, 0)
	return strings.Repeat("\n", topPadding) + text
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	f := m.frame()
	clip := lipgloss.NewStyle().MaxWidth(m.width)
	rows := make([]string, len(f.rows))
	for i, r := range f.rows {
		rows[i] = clip.Render(r)
	}
	return strings.Join(rows, "\n")
}

// frame lays out every row of the screen and records where the clickable
// parts end up. View and the mouse handler share it.
func (m Model) frame() frame {
	var f frame
	w := m.width

	// ─── chrome ───
	dots := dotCloseStyle.Render("●") + " " + dotMinStyle.Render("●") + " " + dotMaxStyle.Render("●")
	left := " " + dots + "  " + titleStyle.Render(models.ProductName) + "  " + subtitleStyle.Render(models.ChatName)
	toggle := buttonStyle.Render("≡ Menu")
	if m.ctrl.Menu.IsOpen() {
		toggle = buttonActiveStyle.Render("✕ Close")
	}
	pad := max(w-lipgloss.Width(left)-lipgloss.Width(toggle)-1, 1)
	f.row(
		cell{text: left},
		cell{text: strings.Repeat(" ", pad)},
		cell{text: toggle, target: targetMenuToggle},
	)

	if m.ctrl.Menu.IsOpen() {
		for i, e := range m.ctrl.Menu.Entries() {
			item := menuItemStyle.Render(fmt.Sprintf("%d  %s", i+1, e.Label))
			f.row(
				cell{text: item, target: targetMenuEntry, index: i},
				cell{text: "  " + hintStyle.Render(e.Path)},
			)
		}
	}

	// ─── background band ───
	var layers []cell
	layers = append(layers, cell{text: " "})
	active := m.ctrl.Background.Index()
	for i, l := range m.ctrl.Background.Layers() {
		name := path.Base(l.Image)
		if l.Mirrored {
			name += " ⇋"
		}
		style := layerIdleStyle
		if i == active {
			style = layerActiveStyle
		}
		layers = append(layers, cell{text: style.Render(" " + name + " ")}, cell{text: " "})
	}
	f.row(layers...)
	f.add("")

	// ─── hero ───
	f.add(lipgloss.PlaceHorizontal(w, lipgloss.Center, headlineStyle.Render(models.Headline)))
	f.add("")
	f.add(m.viewport.View())
	f.add(m.input.View())

	// ─── controls ───
	send := buttonDisabledStyle.Render("Send ↵")
	if m.ctrl.Chat.CanSend() {
		send = buttonActiveStyle.Render("Send ↵")
	}
	consent := consentOffStyle.Render("♡ " + m.ctrl.Consent.Label())
	if m.ctrl.Consent.Contributing() {
		consent = consentOnStyle.Render("♥ " + m.ctrl.Consent.Label())
	}
	arrow := "▾"
	if m.ctrl.Models.IsOpen() {
		arrow = "▴"
	}
	selector := buttonStyle.Render(m.ctrl.Models.Selected() + " " + arrow)
	controlsY := f.row(
		cell{text: " "},
		cell{text: send, target: targetSend},
		cell{text: "  "},
		cell{text: consent, target: targetConsent},
		cell{text: "  "},
		cell{text: selector, target: targetModelButton},
	)
	button, _ := f.find(targetModelButton, 0)
	f.selector = append(f.selector, button)

	if m.ctrl.Models.IsOpen() {
		catalog := m.ctrl.Models.Catalog()
		itemWidth := 0
		for _, name := range catalog {
			itemWidth = max(itemWidth, lipgloss.Width(name)+4)
		}
		for i, name := range catalog {
			label := name
			if m.ctrl.Models.IsSelected(name) {
				label += " ✓"
			}
			style := dropdownItemStyle
			switch {
			case i == m.ctrl.Models.Highlighted():
				style = dropdownCursorStyle
			case m.ctrl.Models.IsSelected(name):
				style = dropdownSelectedStyle
			}
			f.row(
				cell{text: strings.Repeat(" ", button.X)},
				cell{text: style.Width(itemWidth).Render(label), target: targetModelOption, index: i},
			)
		}
		f.selector = append(f.selector, widget.Rect{
			X: button.X,
			Y: controlsY + 1,
			W: itemWidth,
			H: len(catalog),
		})
	}

	// ─── chips ───
	chips := []cell{{text: " "}}
	for _, c := range models.ActionChips() {
		chips = append(chips, cell{text: chipStyle.Render(c)}, cell{text: " "})
	}
	f.row(chips...)

	// ─── bottom nav ───
	nav := []cell{{text: " "}}
	for i, e := range m.ctrl.Routes.Entries() {
		style := navItemStyle
		if m.ctrl.Routes.IsActive(e.Path) {
			style = navActiveStyle
		}
		nav = append(nav, cell{text: style.Render(e.Label), target: targetNav, index: i}, cell{text: "  "})
	}
	f.row(nav...)

	if m.err != nil {
		f.add(" " + errorStyle.Render("✗ "+m.err.Error()))
	}
	f.add(m.renderStatusBar(w))

	return f
}

// renderStatusBar shows the typing indicator, feedback or key help
func (m Model) renderStatusBar(width int) string {
	var content string
	switch {
	case m.ctrl.Chat.Pending() > 0:
		content = m.spinner.View() + loadingStyle.Render(" "+models.ChatName+" is typing")
	case m.feedback != "":
		content = feedbackStyle.Render(m.feedback)
	default:
		h := m.help
		h.Width = width
		h.Styles.ShortKey = statusKeyStyle
		h.Styles.ShortDesc = statusDescStyle
		h.Styles.ShortSeparator = statusDescStyle
		bindings := m.keys.ShortHelp()
		switch {
		case m.ctrl.Models.IsOpen():
			bindings = m.keys.dropdownHelp()
		case m.ctrl.Menu.IsOpen():
			bindings = m.keys.menuHelp()
		}
		content = h.ShortHelpView(bindings)
		if last := m.nav.last(); last != "" {
			content = statusKeyStyle.Render("→ "+last) + statusDescStyle.Render("  │  ") + content
		}
	}
	return statusBarStyle.MaxWidth(width).Render(" " + content)
}

// RunDemo starts the demo TUI
func RunDemo(opts Options) error {
	m := NewModel(opts)
	defer m.Close()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

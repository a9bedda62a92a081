// Package script drives a demo session from a list of textual steps on a
// manual clock. It backs the simulate command.
//
// A step is "op" or "op:arg":
//
//	type:<text>        replace the prompt buffer
//	clear              empty the prompt buffer
//	key:enter          press Enter in the prompt
//	key:shift+enter    press Shift+Enter in the prompt
//	send[:<text>]      send the buffer, or text directly
//	wait:<duration>    advance the clock (Go duration or milliseconds)
//	open               toggle the model dropdown
//	select:<model>     select a model
//	down, up, pick     move the dropdown cursor and select under it
//	click-outside      pointer-down outside every widget
//	flip               flip the consent toggle
//	nav:<path>         activate a bottom navigation entry
//	menu               toggle the header menu
//	follow:<n>         follow the n-th header menu link (1-based)
//	unmount            tear the demo down
package script

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	apierrors "github.com/zamanilabs/zamani-demo/internal/errors"
	"github.com/zamanilabs/zamani-demo/internal/models"
	"github.com/zamanilabs/zamani-demo/internal/scheduler"
	"github.com/zamanilabs/zamani-demo/internal/widget"
)

// Op names a step
type Op string

// Step operations
const (
	OpType         Op = "type"
	OpClear        Op = "clear"
	OpKey          Op = "key"
	OpSend         Op = "send"
	OpWait         Op = "wait"
	OpOpen         Op = "open"
	OpSelect       Op = "select"
	OpDown         Op = "down"
	OpUp           Op = "up"
	OpPick         Op = "pick"
	OpClickOutside Op = "click-outside"
	OpFlip         Op = "flip"
	OpNav          Op = "nav"
	OpMenu         Op = "menu"
	OpFollow       Op = "follow"
	OpUnmount      Op = "unmount"
)

// argRule says whether an op takes an argument
type argRule int

const (
	argNone argRule = iota
	argRequired
	argOptional
)

var ops = map[Op]argRule{
	OpType:         argRequired,
	OpClear:        argNone,
	OpKey:          argRequired,
	OpSend:         argOptional,
	OpWait:         argRequired,
	OpOpen:         argNone,
	OpSelect:       argRequired,
	OpDown:         argNone,
	OpUp:           argNone,
	OpPick:         argNone,
	OpClickOutside: argNone,
	OpFlip:         argNone,
	OpNav:          argRequired,
	OpMenu:         argNone,
	OpFollow:       argRequired,
	OpUnmount:      argNone,
}

// Step is one parsed instruction
type Step struct {
	Op  Op
	Arg string

	// set for wait and follow
	Duration time.Duration
	Index    int
	Shift    bool
}

// Parse parses a single step. index is only used for error reporting.
func Parse(index int, raw string) (Step, error) {
	name, arg, hasArg := strings.Cut(strings.TrimLeft(raw, " \t"), ":")
	op := Op(strings.ToLower(strings.TrimSpace(name)))
	if op != OpType && op != OpSend {
		// only typed text keeps its surrounding whitespace
		arg = strings.TrimSpace(arg)
	}

	rule, ok := ops[op]
	if !ok {
		return Step{}, apierrors.NewStepError(index, raw, "unknown operation")
	}
	switch {
	case rule == argNone && hasArg:
		return Step{}, apierrors.NewStepError(index, raw, "operation takes no argument")
	case rule == argRequired && (!hasArg || arg == ""):
		return Step{}, apierrors.NewStepError(index, raw, "missing argument")
	}

	step := Step{Op: op, Arg: arg}
	switch op {
	case OpWait:
		d, err := parseDuration(arg)
		if err != nil {
			return Step{}, apierrors.NewStepError(index, raw, err.Error())
		}
		step.Duration = d
	case OpFollow:
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return Step{}, apierrors.NewStepError(index, raw, "expected a link number starting at 1")
		}
		step.Index = n - 1
	case OpKey:
		switch strings.ToLower(arg) {
		case "enter":
		case "shift+enter":
			step.Shift = true
		default:
			return Step{}, apierrors.NewStepError(index, raw, "only enter and shift+enter are supported")
		}
	case OpNav:
		if !strings.HasPrefix(arg, "/") {
			return Step{}, apierrors.NewStepError(index, raw, "path must start with /")
		}
	}
	return step, nil
}

func parseDuration(s string) (time.Duration, error) {
	if ms, err := strconv.Atoi(s); err == nil {
		if ms < 0 {
			return 0, fmt.Errorf("negative duration")
		}
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration")
	}
	return d, nil
}

// ParseAll parses every step, stopping at the first invalid one
func ParseAll(raw []string) ([]Step, error) {
	steps := make([]Step, 0, len(raw))
	for i, r := range raw {
		s, err := Parse(i, r)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// Session is a mounted demo on a manual clock
type Session struct {
	Clock      *scheduler.Manual
	Pointer    *widget.PointerBus
	Controller *widget.Controller

	navigations []string
	log         logrus.FieldLogger
}

// Config configures a Session
type Config struct {
	Model    string
	Location string
	Logger   logrus.FieldLogger
}

// NewSession mounts a fresh demo at manual time zero
func NewSession(cfg Config) *Session {
	s := &Session{
		Clock:   scheduler.NewManual(),
		Pointer: widget.NewPointerBus(),
		log:     cfg.Logger,
	}
	if s.log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		s.log = l
	}
	s.Controller = widget.New(widget.Options{
		Scheduler: s.Clock,
		Pointer:   s.Pointer,
		Navigator: widget.NavigatorFunc(func(path string) {
			s.navigations = append(s.navigations, path)
		}),
		Logger:   s.log,
		Location: cfg.Location,
		Model:    cfg.Model,
	})
	s.Controller.Mount()
	return s
}

// Navigations returns every path navigation was requested for
func (s *Session) Navigations() []string {
	return append([]string(nil), s.navigations...)
}

// Elapsed returns the manual time
func (s *Session) Elapsed() time.Duration {
	return s.Clock.Now()
}

// Apply runs one step
func (s *Session) Apply(step Step) {
	c := s.Controller
	switch step.Op {
	case OpType:
		c.SetInput(step.Arg)
	case OpClear:
		c.SetInput("")
	case OpKey:
		if !c.HandleKey(widget.KeyEvent{Key: widget.KeyEnter, Shift: step.Shift}) && step.Shift {
			c.SetInput(c.Chat.Input() + "\n")
		}
	case OpSend:
		if step.Arg == "" {
			c.Send()
		} else {
			c.Chat.Send(step.Arg)
		}
	case OpWait:
		s.Clock.Advance(step.Duration)
	case OpOpen:
		c.Models.Toggle()
	case OpSelect:
		// Unknown names are logged by the selector and otherwise ignored
		_ = c.SelectModel(step.Arg)
	case OpDown:
		c.Models.MoveCursor(1)
	case OpUp:
		c.Models.MoveCursor(-1)
	case OpPick:
		_ = c.Models.SelectHighlighted()
	case OpClickOutside:
		s.Pointer.Publish(widget.PointerEvent{X: -1, Y: -1})
	case OpFlip:
		c.Consent.Flip()
	case OpNav:
		if !models.IsKnownPath(step.Arg) {
			s.log.WithField("path", step.Arg).Warn("navigating to a path the page does not link to")
		}
		c.Routes.Activate(step.Arg)
	case OpMenu:
		c.Menu.Toggle()
	case OpFollow:
		if !c.Menu.Follow(step.Index) {
			s.log.WithField("link", step.Index+1).Warn("no such menu link")
		}
	case OpUnmount:
		c.Unmount()
	}
	s.log.WithFields(logrus.Fields{
		"op":      string(step.Op),
		"arg":     step.Arg,
		"elapsed": s.Clock.Now(),
	}).Debug("step applied")
}

// Run applies every step in order
func (s *Session) Run(steps []Step) {
	for _, step := range steps {
		s.Apply(step)
	}
}

// Simulate parses raw steps, runs them on a fresh session and returns it
func Simulate(cfg Config, raw []string) (*Session, error) {
	steps, err := ParseAll(raw)
	if err != nil {
		return nil, err
	}
	s := NewSession(cfg)
	s.Run(steps)
	return s, nil
}

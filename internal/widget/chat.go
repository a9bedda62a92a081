package widget

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/zamanilabs/zamani-demo/internal/models"
	"github.com/zamanilabs/zamani-demo/internal/scheduler"
)

// Key names understood by HandleKey
const (
	KeyEnter = "enter"
)

// KeyEvent is a key press delivered to the prompt input.
type KeyEvent struct {
	Key   string
	Shift bool
}

// ReplyFunc produces the scripted reply for a model display name
type ReplyFunc func(model string) string

// ChatSimulator owns the input buffer and the transcript. Replies are
// delivered by one-shot timers; each send gets its own timer.
type ChatSimulator struct {
	sched scheduler.Scheduler
	delay time.Duration
	reply ReplyFunc
	model func() string
	log   logrus.FieldLogger

	input      string
	transcript []models.Message
	pending    map[string]scheduler.Cancel
	order      []string

	// onInput observes every change of the input buffer
	onInput func(empty bool)
	torn    bool
}

// NewChatSimulator creates an empty simulator. model is read when a reply
// is delivered, not when the message is sent.
func NewChatSimulator(s scheduler.Scheduler, delay time.Duration, reply ReplyFunc, model func() string, log logrus.FieldLogger) *ChatSimulator {
	if reply == nil {
		reply = models.DemoReply
	}
	return &ChatSimulator{
		sched:   s,
		delay:   delay,
		reply:   reply,
		model:   model,
		log:     log,
		pending: make(map[string]scheduler.Cancel),
	}
}

// SetInput replaces the input buffer
func (c *ChatSimulator) SetInput(text string) {
	if c.torn {
		return
	}
	c.input = text
	if c.onInput != nil {
		c.onInput(c.input == "")
	}
}

// Input returns the input buffer
func (c *ChatSimulator) Input() string {
	return c.input
}

// CanSend reports whether the buffer holds something worth sending
func (c *ChatSimulator) CanSend() bool {
	return strings.TrimSpace(c.input) != ""
}

// Send appends text as a user message and schedules the scripted reply.
// Whitespace-only text is ignored and false is returned.
func (c *ChatSimulator) Send(text string) bool {
	if c.torn {
		return false
	}
	content := strings.TrimSpace(text)
	if content == "" {
		return false
	}

	c.transcript = append(c.transcript, models.UserMessage(content))
	c.SetInput("")

	ticket := uuid.NewString()
	c.order = append(c.order, ticket)
	c.pending[ticket] = c.sched.After(c.delay, func() { c.deliver(ticket) })

	c.log.WithFields(logrus.Fields{
		"ticket":  ticket,
		"pending": len(c.pending),
	}).Debug("message sent, reply scheduled")
	return true
}

// SubmitInput sends the current buffer
func (c *ChatSimulator) SubmitInput() bool {
	return c.Send(c.input)
}

func (c *ChatSimulator) deliver(ticket string) {
	if c.torn {
		return
	}
	if _, ok := c.pending[ticket]; !ok {
		return
	}
	delete(c.pending, ticket)
	c.dropTicket(ticket)

	model := c.model()
	c.transcript = append(c.transcript, models.AssistantMessage(c.reply(model)))
	c.log.WithFields(logrus.Fields{
		"ticket": ticket,
		"model":  model,
	}).Debug("scripted reply delivered")
}

func (c *ChatSimulator) dropTicket(ticket string) {
	for i, t := range c.order {
		if t == ticket {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// HandleKey applies the prompt keyboard contract. It returns true when the
// key was consumed and the input's default behavior must be suppressed:
// Enter sends, Shift+Enter is left to the input as a literal newline.
func (c *ChatSimulator) HandleKey(ev KeyEvent) bool {
	if ev.Key != KeyEnter || ev.Shift {
		return false
	}
	c.SubmitInput()
	return true
}

// Transcript returns a copy of the messages in insertion order
func (c *ChatSimulator) Transcript() []models.Message {
	return append([]models.Message(nil), c.transcript...)
}

// Len returns the number of messages in the transcript
func (c *ChatSimulator) Len() int {
	return len(c.transcript)
}

// LastReply returns the content of the newest assistant message
func (c *ChatSimulator) LastReply() (string, bool) {
	for i := len(c.transcript) - 1; i >= 0; i-- {
		if c.transcript[i].Role == models.RoleAssistant {
			return c.transcript[i].Content, true
		}
	}
	return "", false
}

// Pending returns the number of replies still in flight
func (c *ChatSimulator) Pending() int {
	return len(c.pending)
}

// Stop cancels every in-flight reply and ignores further input
func (c *ChatSimulator) Stop() {
	for _, ticket := range c.order {
		if cancel, ok := c.pending[ticket]; ok {
			cancel()
		}
	}
	c.pending = make(map[string]scheduler.Cancel)
	c.order = nil
	c.torn = true
}

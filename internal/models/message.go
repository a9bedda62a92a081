package models

import "fmt"

// Role identifies who authored a chat message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a chat message in the demo transcript
type Message struct {
	Role    Role   `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
}

// UserMessage creates a message authored by the visitor
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage creates a scripted assistant message
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// DemoReply returns the scripted assistant reply for the given model.
func DemoReply(model string) string {
	return fmt.Sprintf("This is a demo response from %s. In the full %s app, you'll get real AI responses with full consent controls.", model, ChatName)
}

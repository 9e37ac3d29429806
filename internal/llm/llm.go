// Package llm abstracts chat-completion providers behind a small client
// interface so the suggestion gateway can be tested without network access.
package llm

import "context"

// Message is a single role-tagged instruction message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request captures one completion call: instruction messages plus sampling
// controls. JSONOutput asks the provider for a strict JSON object response.
type Request struct {
	Messages    []Message
	Temperature float32
	MaxTokens   int
	JSONOutput  bool
}

// Client is implemented by concrete providers.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// System builds a system message.
func System(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// User builds a user message.
func User(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Package assistant is the gateway to the LLM-backed help chat.
package assistant

import (
	"context"
	"errors"
)

var (
	ErrNotConfigured = errors.New("assistant_not_configured")
	ErrUnavailable   = errors.New("assistant_unavailable")
	ErrEmptyMessage  = errors.New("assistant_empty_message")
)

// Message is one turn of a conversation.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Generator produces a model reply given a system prompt and the
// conversation so far. The last element of messages is the turn to answer.
type Generator interface {
	Generate(ctx context.Context, systemPrompt string, messages []Message) (string, error)
}

// Package email abstracts outbound mail delivery.
package email

import "context"

// Message is a single outbound email.
type Message struct {
	To      []string
	Subject string
	Body    string
	HTML    bool
}

// Provider sends email. Implementations must be safe for concurrent use.
type Provider interface {
	Send(ctx context.Context, msg Message) error
}

// NoOpProvider drops messages. Used in development and tests where no
// SMTP endpoint is configured.
type NoOpProvider struct{}

func NewNoOpProvider() *NoOpProvider {
	return &NoOpProvider{}
}

func (p *NoOpProvider) Send(ctx context.Context, msg Message) error {
	return nil
}

package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

var (
	ErrInvalidEmail       = errors.New("invalid_email")
	ErrInvitationNotFound = errors.New("invitation_not_found")
)

type Repository interface {
	Create(ctx context.Context, inv *Invitation) error
	FindByTransaction(ctx context.Context, transactionID snowflake.ID) ([]Invitation, error)
	MarkAcceptedByToken(ctx context.Context, token string) error
}

// Service delivers join links by email and tracks who was invited.
type Service interface {
	// Send records the invitation and emails the join link to the address.
	Send(ctx context.Context, transactionID snowflake.ID, email, token, propertyAddress string) (*Invitation, error)
	// ListByTransaction returns the invitations sent for a transaction.
	ListByTransaction(ctx context.Context, transactionID snowflake.ID) ([]Invitation, error)
	// MarkAccepted flags any invitation carrying token as accepted.
	MarkAccepted(ctx context.Context, token string) error
}

package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	"github.com/districtclose/districtclose/internal/config"
	"github.com/districtclose/districtclose/internal/invite/token"
	"github.com/districtclose/districtclose/internal/invite/domain"
	"github.com/districtclose/districtclose/internal/observability/logger"
	"github.com/districtclose/districtclose/internal/providers/email"
)

// Invite links are good for seven days; the expiry is stamped on the
// invitation record when the email goes out.
const inviteTTL = 7 * 24 * time.Hour

type service struct {
	repo    domain.Repository
	node    *snowflake.Node
	sender  email.Provider
	baseURL string
}

func New(repo domain.Repository, node *snowflake.Node, sender email.Provider, cfg config.Config) domain.Service {
	return &service{
		repo:    repo,
		node:    node,
		sender:  sender,
		baseURL: cfg.BaseURL,
	}
}

func (s *service) Send(ctx context.Context, transactionID snowflake.ID, emailAddr, token, propertyAddress string) (*domain.Invitation, error) {
	emailAddr = strings.TrimSpace(strings.ToLower(emailAddr))
	if _, err := mail.ParseAddress(emailAddr); err != nil {
		return nil, domain.ErrInvalidEmail
	}

	expiresAt := time.Now().UTC().Add(inviteTTL)
	inv := &domain.Invitation{
		ID:            s.node.Generate(),
		TransactionID: transactionID,
		EmailSentTo:   emailAddr,
		Token:         token,
		ExpiresAt:     &expiresAt,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}

	joinURL := invite.BuildURL(s.baseURL, token)
	msg := email.Message{
		To:      []string{emailAddr},
		Subject: fmt.Sprintf("You're invited to a real estate transaction for %s", propertyAddress),
		Body: fmt.Sprintf(
			"You have been invited to collaborate on the sale of %s.\n\n"+
				"Open the link below to join the transaction:\n%s\n\n"+
				"If you were not expecting this invitation you can ignore this email.",
			propertyAddress, joinURL,
		),
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		// The invite link still works from the app, so a delivery failure
		// is logged rather than surfaced as a request error.
		logger.FromContext(ctx).Warn("failed to send invitation email",
			zap.String("email", emailAddr),
			zap.Error(err),
		)
	}

	return inv, nil
}

func (s *service) ListByTransaction(ctx context.Context, transactionID snowflake.ID) ([]domain.Invitation, error) {
	return s.repo.FindByTransaction(ctx, transactionID)
}

func (s *service) MarkAccepted(ctx context.Context, token string) error {
	return s.repo.MarkAcceptedByToken(ctx, token)
}

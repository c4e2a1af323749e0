package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/districtclose/districtclose/internal/config"
	"github.com/districtclose/districtclose/internal/invite/domain"
	"github.com/districtclose/districtclose/internal/invite/repository"
	"github.com/districtclose/districtclose/internal/providers/email"
)

type capturingSender struct {
	sent []email.Message
}

func (c *capturingSender) Send(ctx context.Context, msg email.Message) error {
	c.sent = append(c.sent, msg)
	return nil
}

func setupService(t *testing.T) (domain.Service, *capturingSender, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Invitation{}))
	require.NoError(t, db.Exec("DELETE FROM invitations").Error)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	sender := &capturingSender{}
	cfg := config.Config{BaseURL: "https://districtclose.test"}
	return New(repository.New(db), node, sender, cfg), sender, node
}

func TestSendInvitation(t *testing.T) {
	svc, sender, node := setupService(t)
	txID := node.Generate()

	inv, err := svc.Send(context.Background(), txID, "Partner@Example.com", "Ab3dEf6hIj9k", "123 Main St NW")
	require.NoError(t, err)
	assert.Equal(t, txID, inv.TransactionID)
	assert.Equal(t, "partner@example.com", inv.EmailSentTo)
	assert.False(t, inv.IsAccepted)
	require.NotNil(t, inv.ExpiresAt)
	assert.WithinDuration(t, time.Now().UTC().Add(inviteTTL), *inv.ExpiresAt, time.Minute)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, []string{"partner@example.com"}, msg.To)
	assert.Contains(t, msg.Subject, "123 Main St NW")
	assert.Contains(t, msg.Body, "https://districtclose.test/join?token=Ab3dEf6hIj9k")
}

func TestSendInvitationInvalidEmail(t *testing.T) {
	svc, sender, node := setupService(t)

	_, err := svc.Send(context.Background(), node.Generate(), "not-an-email", "Ab3dEf6hIj9k", "123 Main St NW")
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	assert.Empty(t, sender.sent)
}

func TestListAndMarkAccepted(t *testing.T) {
	svc, _, node := setupService(t)
	txID := node.Generate()

	_, err := svc.Send(context.Background(), txID, "one@example.com", "Ab3dEf6hIj9k", "123 Main St NW")
	require.NoError(t, err)
	_, err = svc.Send(context.Background(), txID, "two@example.com", "Zz3dEf6hIj9k", "123 Main St NW")
	require.NoError(t, err)

	invs, err := svc.ListByTransaction(context.Background(), txID)
	require.NoError(t, err)
	assert.Len(t, invs, 2)

	require.NoError(t, svc.MarkAccepted(context.Background(), "Ab3dEf6hIj9k"))

	invs, err = svc.ListByTransaction(context.Background(), txID)
	require.NoError(t, err)
	for _, inv := range invs {
		if inv.Token == "Ab3dEf6hIj9k" {
			assert.True(t, inv.IsAccepted)
		} else {
			assert.False(t, inv.IsAccepted)
		}
	}
}

package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	gotSystemPrompt string
	gotMessages     []Message
	reply           string
	err             error
}

func (f *fakeGenerator) Generate(ctx context.Context, systemPrompt string, messages []Message) (string, error) {
	f.gotSystemPrompt = systemPrompt
	f.gotMessages = messages
	return f.reply, f.err
}

func TestChatRendersContextIntoSystemPrompt(t *testing.T) {
	gen := &fakeGenerator{reply: "Recordation tax at $450,000 is 1.45%."}
	svc := NewService(gen)

	reply, err := svc.Chat(context.Background(), ChatContext{
		UserRole:        "buyer",
		PropertyAddress: "123 Main St NW",
		SalePrice:       450000,
		IsTenanted:      true,
		CurrentPage:     "taxes",
	}, []Message{
		{Role: "user", Content: "What taxes do I owe?"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Recordation tax at $450,000 is 1.45%.", reply)

	assert.Contains(t, gen.gotSystemPrompt, "## Current User Context")
	assert.Contains(t, gen.gotSystemPrompt, "- User is a: BUYER")
	assert.Contains(t, gen.gotSystemPrompt, "- Property: 123 Main St NW")
	assert.Contains(t, gen.gotSystemPrompt, "- Sale Price: $450,000")
	assert.Contains(t, gen.gotSystemPrompt, "TOPA applies!")
	assert.Contains(t, gen.gotSystemPrompt, "- User is currently viewing: taxes")
}

func TestChatOmitsContextSectionWhenEmpty(t *testing.T) {
	gen := &fakeGenerator{reply: "ok"}
	svc := NewService(gen)

	_, err := svc.Chat(context.Background(), ChatContext{}, []Message{
		{Role: "user", Content: "hello"},
	})
	require.NoError(t, err)
	assert.NotContains(t, gen.gotSystemPrompt, "## Current User Context")
	assert.Contains(t, gen.gotSystemPrompt, "Tenant Opportunity to Purchase Act")
}

func TestChatReplaysHistory(t *testing.T) {
	gen := &fakeGenerator{reply: "ok"}
	svc := NewService(gen)

	history := []Message{
		{Role: "user", Content: "What is TOPA?"},
		{Role: "assistant", Content: "TOPA is a DC tenant protection law."},
		{Role: "user", Content: "Does it apply to condos?"},
	}
	_, err := svc.Chat(context.Background(), ChatContext{}, history)
	require.NoError(t, err)
	assert.Equal(t, history, gen.gotMessages)
}

func TestChatErrors(t *testing.T) {
	svc := NewService(nil)
	_, err := svc.Chat(context.Background(), ChatContext{}, []Message{{Role: "user", Content: "hi"}})
	assert.ErrorIs(t, err, ErrNotConfigured)

	svc = NewService(&fakeGenerator{reply: "ok"})
	_, err = svc.Chat(context.Background(), ChatContext{}, nil)
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = svc.Chat(context.Background(), ChatContext{}, []Message{{Role: "user", Content: "   "}})
	assert.ErrorIs(t, err, ErrEmptyMessage)

	failing := &fakeGenerator{err: errors.New("upstream 500")}
	svc = NewService(failing)
	_, err = svc.Chat(context.Background(), ChatContext{}, []Message{{Role: "user", Content: "hi"}})
	assert.ErrorIs(t, err, ErrUnavailable)
}

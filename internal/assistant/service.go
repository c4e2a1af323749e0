package assistant

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/districtclose/districtclose/internal/observability/logger"
)

// Service answers help-chat requests.
type Service struct {
	generator Generator
}

func NewService(generator Generator) *Service {
	return &Service{generator: generator}
}

// Chat answers the last message in the conversation. Upstream failures are
// logged with their cause and surfaced as a generic unavailability error so
// provider details never reach the client.
func (s *Service) Chat(ctx context.Context, chatCtx ChatContext, messages []Message) (string, error) {
	if s.generator == nil {
		return "", ErrNotConfigured
	}
	if len(messages) == 0 || strings.TrimSpace(messages[len(messages)-1].Content) == "" {
		return "", ErrEmptyMessage
	}

	reply, err := s.generator.Generate(ctx, renderSystemPrompt(chatCtx), messages)
	if err != nil {
		logger.FromContext(ctx).Error("assistant generation failed", zap.Error(err))
		return "", ErrUnavailable
	}
	return reply, nil
}

package assistant

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/districtclose/districtclose/internal/config"
)

var Module = fx.Module("assistant",
	fx.Provide(
		provideGenerator,
		NewService,
	),
)

// provideGenerator returns nil when the assistant is disabled or has no API
// key; the service reports not-configured in that case.
func provideGenerator(cfg config.Config, log *zap.Logger) Generator {
	if !cfg.Assistant.Enabled || cfg.Assistant.APIKey == "" {
		log.Info("assistant disabled, chat will report not configured")
		return nil
	}
	client, err := NewGeminiClient(cfg.Assistant.APIKey, cfg.Assistant.Model)
	if err != nil {
		log.Warn("assistant client init failed", zap.Error(err))
		return nil
	}
	return client
}

package email

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/districtclose/districtclose/internal/config"
)

var Module = fx.Module("email",
	fx.Provide(NewProvider),
)

// NewProvider selects the mail implementation from config.
func NewProvider(cfg config.Config, log *zap.Logger) Provider {
	switch cfg.Email.Provider {
	case "smtp":
		return NewSMTPProvider(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPass,
			cfg.Email.FromAddress,
		)
	default:
		log.Info("email provider not configured, using no-op sender")
		return NewNoOpProvider()
	}
}

package migration

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	authdomain "github.com/districtclose/districtclose/internal/auth/domain"
	"github.com/districtclose/districtclose/internal/config"
	documentdomain "github.com/districtclose/districtclose/internal/document/domain"
	financialsdomain "github.com/districtclose/districtclose/internal/financials/domain"
	invitedomain "github.com/districtclose/districtclose/internal/invite/domain"
	milestonedomain "github.com/districtclose/districtclose/internal/milestone/domain"
	onboardingdomain "github.com/districtclose/districtclose/internal/onboarding/domain"
	"github.com/districtclose/districtclose/internal/seed"
	transactiondomain "github.com/districtclose/districtclose/internal/transaction/domain"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		// Versioned SQL migrations run against postgres; the sqlite and
		// mysql paths exist for local development and fall back to the
		// schema derived from the models.
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			if err := conn.AutoMigrate(
				&authdomain.User{},
				&authdomain.Session{},
				&transactiondomain.Transaction{},
				&milestonedomain.Milestone{},
				&documentdomain.Document{},
				&invitedomain.Invitation{},
				&financialsdomain.BuyerFinancials{},
				&financialsdomain.SellerFinancials{},
				&onboardingdomain.State{},
			); err != nil {
				return err
			}
		}

		if cfg.Environment != "production" {
			return seed.EnsureDemoUser(conn)
		}
		return nil
	}),
)

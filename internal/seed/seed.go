// Package seed bootstraps demo data for non-production environments.
package seed

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	authdomain "github.com/districtclose/districtclose/internal/auth/domain"
	"github.com/districtclose/districtclose/internal/auth/password"
)

const (
	demoUserEmail    = "demo@districtclose.local"
	demoUserPassword = "districtclose"
	demoUserFullName = "Demo User"
)

// EnsureDemoUser creates the demo login if it does not exist yet. Safe to
// run on every startup.
func EnsureDemoUser(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing authdomain.User
		err := tx.First(&existing, "email = ?", demoUserEmail).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := password.Hash(demoUserPassword)
		if err != nil {
			return err
		}
		return tx.Create(&authdomain.User{
			ID:           node.Generate(),
			Email:        demoUserEmail,
			PasswordHash: hashed,
			FullName:     demoUserFullName,
		}).Error
	})
}

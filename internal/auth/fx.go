// Package auth handles accounts and cookie-backed sessions.
package auth

import (
	"go.uber.org/fx"

	"github.com/districtclose/districtclose/internal/auth/repository"
	"github.com/districtclose/districtclose/internal/auth/service"
)

var Module = fx.Module("auth",
	fx.Provide(
		repository.NewUserRepository,
		repository.NewSessionRepository,
		service.New,
	),
)

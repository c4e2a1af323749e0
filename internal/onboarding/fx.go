// Package onboarding is the first-transaction setup wizard.
package onboarding

import (
	"go.uber.org/fx"

	"github.com/districtclose/districtclose/internal/onboarding/repository"
	"github.com/districtclose/districtclose/internal/onboarding/service"
)

var Module = fx.Module("onboarding",
	fx.Provide(
		repository.New,
		service.New,
	),
)

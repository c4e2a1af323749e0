// Package financials holds each party's private closing-cost worksheet.
package financials

import (
	"go.uber.org/fx"

	"github.com/districtclose/districtclose/internal/financials/repository"
	"github.com/districtclose/districtclose/internal/financials/service"
)

var Module = fx.Module("financials",
	fx.Provide(
		repository.New,
		service.New,
	),
)

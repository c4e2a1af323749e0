// Package transaction owns the two-party FSBO transaction lifecycle.
package transaction

import (
	"go.uber.org/fx"

	"github.com/districtclose/districtclose/internal/transaction/repository"
	"github.com/districtclose/districtclose/internal/transaction/service"
)

var Module = fx.Module("transaction",
	fx.Provide(
		repository.New,
		service.New,
	),
)

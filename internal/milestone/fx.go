// Package milestone tracks the deadline timeline of a transaction.
package milestone

import (
	"go.uber.org/fx"

	"github.com/districtclose/districtclose/internal/milestone/repository"
	"github.com/districtclose/districtclose/internal/milestone/service"
)

var Module = fx.Module("milestone",
	fx.Provide(
		repository.New,
		service.New,
	),
)

package invite

import (
	"go.uber.org/fx"

	"github.com/districtclose/districtclose/internal/invite/repository"
	"github.com/districtclose/districtclose/internal/invite/service"
)

var Module = fx.Module("invite",
	fx.Provide(
		repository.New,
		service.New,
	),
)

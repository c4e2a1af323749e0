// Package document tracks the DC forms checklist and external file links.
package document

import (
	"go.uber.org/fx"

	"github.com/districtclose/districtclose/internal/document/repository"
	"github.com/districtclose/districtclose/internal/document/service"
)

var Module = fx.Module("document",
	fx.Provide(
		repository.New,
		service.New,
	),
)

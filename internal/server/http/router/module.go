package router

import (
	"go.uber.org/fx"

	"github.com/shopline/storefront/internal/storage/postgres"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(func(s *postgres.Storage) HealthChecker { return s }),
	fx.Provide(Setup),
)

package di

import (
	"github.com/shopline/storefront/internal/adapter/notify"
	"github.com/shopline/storefront/internal/app"
	"github.com/shopline/storefront/internal/config"
	"github.com/shopline/storefront/internal/logger"
	"github.com/shopline/storefront/internal/pkg/auth"
	"github.com/shopline/storefront/internal/server/http/router"
	"github.com/shopline/storefront/internal/storage/postgres"
	"github.com/shopline/storefront/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		notify.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

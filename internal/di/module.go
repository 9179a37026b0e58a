package di

import (
	"go.uber.org/fx"

	"github.com/coiffly/coiffly/internal/app"
	"github.com/coiffly/coiffly/internal/config"
	"github.com/coiffly/coiffly/internal/logger"
	"github.com/coiffly/coiffly/internal/pkg/auth"
	"github.com/coiffly/coiffly/internal/server/http/handlers"
	"github.com/coiffly/coiffly/internal/server/http/router"
	"github.com/coiffly/coiffly/internal/storage/memory"
	"github.com/coiffly/coiffly/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		memory.Module,
		usecase.Module,
		fx.Provide(func(facade *app.SalonFacade) handlers.SalonFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

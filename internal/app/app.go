package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/coiffly/coiffly/internal/config"
	"github.com/coiffly/coiffly/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewSalonFacade,
		newHTTPServer,
		newDeliveryTracker,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type workerParams struct {
	fx.In

	Facade *SalonFacade
	Config *config.Config
	Logger *slog.Logger
}

func newDeliveryTracker(p workerParams) *worker.DeliveryTracker {
	return worker.NewDeliveryTracker(
		p.Facade,
		p.Config.DeliveryPollInterval,
		p.Config.MaxOrdersBatch,
		p.Config.WorkerPoolSize,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Ctx        context.Context
	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Worker     *worker.DeliveryTracker
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting coiffly", slog.String("addr", p.Server.Addr))
			// The hook ctx only covers startup; the tracker runs on the
			// process-wide ctx until OnStop.
			if p.Config.SimulateDelivery {
				p.Worker.Start(p.Ctx)
			}
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Worker.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("coiffly stopped")
			return nil
		},
	})
}

package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/coiffly/coiffly/internal/config"
	"github.com/coiffly/coiffly/internal/domain/model"
	testhelpers "github.com/coiffly/coiffly/internal/test"
	"github.com/coiffly/coiffly/internal/worker"
)

func newTestDeliveryTracker() *worker.DeliveryTracker {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return worker.NewDeliveryTracker(&testhelpers.WorkerFacadeStub{}, 10*time.Millisecond, 1, 1, logger)
}

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{RunAddress: ":9999"}
	router := gin.New()
	server := newHTTPServer(serverParams{Config: cfg, Router: router})
	if server.Addr != ":9999" {
		t.Fatalf("expected address :9999, got %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatalf("expected handler to be router")
	}
}

func TestNewDeliveryTrackerUsesConfig(t *testing.T) {
	tracker := newDeliveryTracker(workerParams{
		Facade: &SalonFacade{},
		Config: &config.Config{DeliveryPollInterval: 15 * time.Second, MaxOrdersBatch: 3, WorkerPoolSize: 4},
		Logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	})
	if tracker == nil {
		t.Fatal("expected delivery tracker instance")
	}
}

func TestRegisterLifecycleStartStop(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	facade := &testhelpers.WorkerFacadeStub{InFlight: []model.Order{{ID: "o-1", Status: model.OrderStatusPreparing}}}
	tracker := worker.NewDeliveryTracker(facade, 5*time.Millisecond, 1, 1, logger)
	cfg := &config.Config{ShutdownTimeout: 100 * time.Millisecond, SimulateDelivery: true}

	registerLifecycle(lifecycleParams{
		Ctx:        context.Background(),
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     logger,
		Server:     server,
		Worker:     tracker,
		Config:     cfg,
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one hook registered, got %d", len(recorder.Hooks))
	}

	hook := recorder.Hooks[0]
	startCtx, cancelStart := context.WithCancel(context.Background())

	if err := hook.OnStart(startCtx); err != nil {
		t.Fatalf("on start failed: %v", err)
	}
	// fx cancels the hook context once startup completes; the tracker must
	// outlive it and keep advancing orders until OnStop.
	cancelStart()

	deadline := time.After(2 * time.Second)
	for len(facade.Updates()) == 0 {
		select {
		case <-deadline:
			t.Fatal("expected tracker to advance orders after startup completed")
		case <-time.After(5 * time.Millisecond):
		}
	}
	if got := facade.Updates()[0]; got.ID != "o-1" || got.Status != model.OrderStatusShipped {
		t.Fatalf("expected o-1 advanced to shipped, got %+v", got)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = hook.OnStop(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected on stop to finish")
	}
}

func TestRegisterLifecycleShutdownOnServerError(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	server := &http.Server{Addr: "bad addr"}
	tracker := newTestDeliveryTracker()

	registerLifecycle(lifecycleParams{
		Ctx:        context.Background(),
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     logger,
		Server:     server,
		Worker:     tracker,
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	hook := recorder.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("on start returned error: %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(time.Second):
		t.Fatal("expected shutdown to be triggered on server error")
	}

	_ = hook.OnStop(context.Background())
}

func TestWorkerFacadeStubRecording(t *testing.T) {
	facade := &testhelpers.WorkerFacadeStub{}
	if err := facade.UpdateOrderStatus(context.Background(), "o-1", model.OrderStatusDelivered); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(facade.Updates()) != 1 {
		t.Fatalf("expected update to be recorded")
	}
}

func TestLifecycleRecorderAppend(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	hook := fx.Hook{}
	recorder.Append(hook)
	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected hook to be appended")
	}
}

func TestShutdownerStub(t *testing.T) {
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	if err := shutdowner.Shutdown(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case <-shutdowner.Called:
	default:
		t.Fatal("expected shutdown notification")
	}
}

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/libreriasansebastian/usuarios-service/config"
	"github.com/libreriasansebastian/usuarios-service/internal/apidocs"
	"github.com/libreriasansebastian/usuarios-service/internal/controller"
	"github.com/libreriasansebastian/usuarios-service/internal/infrastructure/tracing"
	appmiddleware "github.com/libreriasansebastian/usuarios-service/internal/middleware"
	"github.com/libreriasansebastian/usuarios-service/internal/repository"
	"github.com/libreriasansebastian/usuarios-service/internal/service"
	"github.com/libreriasansebastian/usuarios-service/pkg/response"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type App struct {
	DB     *sqlx.DB
	Config *config.Config
	Server *echo.Echo

	metrics        *echo.Echo
	registry       *prometheus.Registry
	tracerProvider *sdktrace.TracerProvider
}

// Setup builds the HTTP server. It must be called before Start.
func (app *App) Setup(ctx context.Context) error {
	traceProvider, err := tracing.InitTracing(ctx, app.Config.TracingConfig.CollectorHost)
	if err != nil {
		return err
	}
	app.tracerProvider = traceProvider

	roleRepo, userRepo, err := app.repositories()
	if err != nil {
		return err
	}

	doc, err := apidocs.NewDocument(ctx, apidocs.Options{
		ServicePort:     app.Config.ServicePort,
		RemoteServerURL: app.Config.RemoteServerURL,
	})
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = response.HTTPErrorHandler

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())
	e.Use(appmiddleware.Tracing(traceProvider.Tracer(tracing.ServiceName)))

	app.registry = prometheus.NewRegistry()
	// default "echo" subsystem keeps metric names aligned across services
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Registerer: app.registry,
	}))

	g := e.Group("/api/v1")
	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})

	controller.CreateRoleController(g, service.CreateRoleService(roleRepo))
	controller.CreateUserController(g, service.CreateUserService(userRepo))
	apidocs.Register(e, doc)

	app.Server = e

	if app.Config.MetricsPort != "" {
		app.metrics = echo.New()
		app.metrics.HideBanner = true
		app.metrics.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: app.registry,
		}))
	}

	return nil
}

func (app *App) repositories() (repository.RoleRepository, repository.UserRepository, error) {
	switch app.Config.Storage {
	case config.StorageMemory:
		store := repository.NewMemoryStore()
		return repository.CreateRoleMemoryRepository(store), repository.CreateUserMemoryRepository(store), nil
	case config.StoragePostgres:
		if app.DB == nil {
			return nil, nil, errors.New("postgres storage selected without a database connection")
		}
		return repository.CreateRoleRepository(app.DB), repository.CreateUserRepository(app.DB), nil
	default:
		return nil, nil, fmt.Errorf("unknown storage %q", app.Config.Storage)
	}
}

// Start serves requests until the server is stopped.
func (app *App) Start() error {
	if app.metrics != nil {
		go func() {
			if err := app.metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Str("component", "MetricsServer").Msg("")
			}
		}()
	}

	if err := app.Server.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Run serves until ctx is done, then waits for StopServer so pending spans are flushed
// before it returns.
func (app *App) Run(ctx context.Context) error {
	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		stopped <- app.StopServer()
	}()

	if err := app.Start(); err != nil {
		return err
	}

	return <-stopped
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errList []error
	if app.metrics != nil {
		errList = append(errList, app.metrics.Shutdown(ctx))
	}
	errList = append(errList, app.Server.Shutdown(ctx))
	if app.tracerProvider != nil {
		errList = append(errList, app.tracerProvider.Shutdown(ctx))
	}

	return errors.Join(errList...)
}

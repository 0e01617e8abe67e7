package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/daniilsolovey/cms/config"
	"github.com/daniilsolovey/cms/internal/auth"
	"github.com/daniilsolovey/cms/internal/cms"
	"github.com/daniilsolovey/cms/internal/db"
	"github.com/daniilsolovey/cms/internal/mailer"
	"github.com/daniilsolovey/cms/internal/metrics"
	"github.com/daniilsolovey/cms/internal/rest"
	"github.com/daniilsolovey/cms/internal/rpc"
)

const rpcPath = "/rpc/"

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	database := db.New(dbConnect)
	manager := cms.NewManager(database, logger)

	handler := rest.NewHandler(
		manager,
		auth.NewService(database, cfg.Auth.JWTSecret, cfg.TokenTTL()),
		mailer.NewSMTP(cfg.Mail),
		rest.UploadsConfig{Dir: cfg.Uploads.Dir, MaxSize: cfg.Uploads.MaxSize},
		logger,
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(metrics.Middleware())

	handler.RegisterRoutes(e)
	e.Any(rpcPath, echo.WrapHandler(rpc.New(logger, manager)))

	return &App{
		DB:     database,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	a.Logger.InfoContext(ctx, "http server listening", "addr", addr)

	err := a.Echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
				"remote_addr", v.RemoteIP,
			}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "HTTP request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "HTTP request", attrs...)
			return nil
		},
	})
}

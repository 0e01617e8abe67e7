package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/cms/config"
	_ "github.com/daniilsolovey/cms/docs"
	"github.com/daniilsolovey/cms/internal/app"
	"github.com/daniilsolovey/cms/internal/auth"
	"github.com/daniilsolovey/cms/internal/db"
)

var (
	flConfig      = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug       = flag.Bool("debug", false, "enable debug mode")
	flDatabaseURL = flag.String("database-url", "", "database connection URL, overrides the config file (DATABASE_URL)")
	flMigrate     = flag.Bool("migrate", true, "apply database migrations on start")
	flCreateUser  = flag.String("create-user", "", "create an admin user with this name and exit")
	flPassword    = flag.String("password", "", "password for -create-user (PASSWORD)")
	cfg           *config.Config
	lg            *slog.Logger
)

// @title CMS API
// @version 1.0
// @description Articles, categories, admin and contact API
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	var err error
	cfg, err = config.Load(*flConfig)
	exitOnError(err)

	if *flDatabaseURL != "" {
		exitOnError(cfg.ApplyDatabaseURL(*flDatabaseURL))
	}

	ctx := context.Background()

	if *flMigrate {
		connConfig, err := db.ConnConfig(&cfg.Database)
		exitOnError(err)
		exitOnError(db.RunMigrations(ctx, connConfig))
		lg.Info("migrations applied")
	}

	dbc := pg.Connect(&cfg.Database)
	if err := dbc.Ping(ctx); err != nil {
		dbc.Close()
		exitOnError(err)
	}

	if cfg.App.LogQueries {
		dbc.AddQueryHook(db.NewQueryHook(lg, cfg.SlowQuery()))
	}

	if *flCreateUser != "" {
		createUser(ctx, dbc)
		return
	}

	service := app.New(cfg, dbc, lg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}

	if err := dbc.Close(); err != nil {
		lg.Error("failed to close database connection", "error", err)
	}
}

func createUser(ctx context.Context, dbc *pg.DB) {
	defer dbc.Close()

	svc := auth.NewService(db.New(dbc), cfg.Auth.JWTSecret, cfg.TokenTTL())
	user, err := svc.CreateUser(ctx, *flCreateUser, *flPassword)
	exitOnError(err)

	lg.Info("user created", "id", user.ID, "username", user.Username)
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}

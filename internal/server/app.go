// Package server initializes and runs the Atelier API server. It wires the
// postgres repositories, the user and dashboard services, and the HTTP
// router, and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/craftops/atelier/internal/logging"
	"github.com/craftops/atelier/internal/server/config"
	"github.com/craftops/atelier/internal/server/dashboard"
	"github.com/craftops/atelier/internal/server/db"
	"github.com/craftops/atelier/internal/server/httpapi"
	"github.com/craftops/atelier/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config           *config.Config
	logger           logging.Logger
	userService      *users.Service
	dashboardService *dashboard.Service
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	rm, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(rm.Users(), c)
	ds := dashboard.NewService(rm.Dashboard())

	return &App{config: c, logger: logger, userService: us, dashboardService: ds}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.Addr)

	app.initSignalHandler(cancelFunc)

	router := httpapi.NewRouter(
		httpapi.NewAuthHandler(app.userService),
		httpapi.NewDashboardHandler(app.dashboardService),
		[]byte(app.config.SecretKey),
		app.logger,
	)

	srv := &http.Server{Addr: app.config.Addr, Handler: router}

	var g errgroup.Group

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			cancelFunc()
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	app.logger.Info(ctx, "Server stopped")
}

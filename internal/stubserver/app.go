// Package stubserver wires and runs the local stand-in for the Luca backend.
// It keeps all state in memory and is meant for development and tests.
package stubserver

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/luca/internal/logging"
	"github.com/dmitrijs2005/luca/internal/stubserver/accounts"
	"github.com/dmitrijs2005/luca/internal/stubserver/config"
	"github.com/dmitrijs2005/luca/internal/stubserver/httpapi"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	accounts *accounts.Service
	server   *httpapi.Server
}

func NewApp(cfg *config.Config) *App {
	logger := logging.Setup(cfg.LogLevel, os.Stdout)
	svc := accounts.NewService(cfg)
	return &App{
		config:   cfg,
		logger:   logger,
		accounts: svc,
		server:   httpapi.NewServer(cfg, svc, logger),
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting stub backend...", "address", app.config.Addr)
	app.initSignalHandler(cancelFunc)

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, "server stopped", "error", err)
		return err
	}
	return nil
}

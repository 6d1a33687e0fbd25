// Package httpapi exposes the stub backend over HTTP with the same routes,
// status codes and bodies as the hosted Luca API.
package httpapi

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrijs2005/luca/internal/buildinfo"
	"github.com/dmitrijs2005/luca/internal/logging"
	"github.com/dmitrijs2005/luca/internal/stubserver/accounts"
	"github.com/dmitrijs2005/luca/internal/stubserver/config"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	addr     string
	version  string
	accounts *accounts.Service
	limiter  *clientLimiter
	log      logging.Logger
}

func NewServer(cfg *config.Config, svc *accounts.Service, log logging.Logger) *Server {
	return &Server{
		addr:     cfg.Addr,
		version:  buildinfo.Version,
		accounts: svc,
		limiter:  newClientLimiter(cfg.RequestsPerSecond, cfg.Burst),
		log:      log.With("module", "http_server"),
	}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(s.log))
	r.Use(chimiddleware.Recoverer)
	r.Use(throttle(s.limiter))

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.Post("/logout/token", s.handleLogoutToken)
		r.With(s.requireAuth).Post("/logout", s.handleLogout)
		r.Post("/password/forgot", s.handleForgotPassword)
		r.Post("/password/reset", s.handleResetPassword)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/accounts/me", s.handleMe)
		r.Put("/accounts/me", s.handleUpdateMe)
		r.Get("/accounts/{accountID}", s.handleGetAccount)
		r.Delete("/accounts/{accountID}", s.handleDeleteAccount)
		r.Get("/admin/accounts", s.handleListAccounts)
	})

	return r
}

// errorLog routes net/http's own error output into l when l is backed by
// slog. Otherwise the server keeps its default logger.
func errorLog(l logging.Logger) *log.Logger {
	sl, ok := l.(interface{ Slog() *slog.Logger })
	if !ok {
		return nil
	}
	return slog.NewLogLogger(sl.Slog().Handler(), slog.LevelError)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          errorLog(s.log),
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info(ctx, "Starting HTTP server", "address", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info(ctx, "Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

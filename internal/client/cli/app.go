package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/luca/internal/client/client"
	"github.com/dmitrijs2005/luca/internal/client/config"
	"github.com/dmitrijs2005/luca/internal/client/secrets"
	"github.com/dmitrijs2005/luca/internal/client/services"
	"github.com/dmitrijs2005/luca/internal/filex"
	"github.com/dmitrijs2005/luca/internal/logging"
)

type App struct {
	config  *config.Config
	session services.SessionService
	closer  io.Closer
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
	now     func() time.Time
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.Setup(c.LogLevel, os.Stderr)

	if _, err := filex.EnsureParentDir(c.SecretsPath); err != nil {
		return nil, fmt.Errorf("prepare secret store: %w", err)
	}
	store, err := secrets.OpenSQLiteStore(ctx, c.SecretsPath)
	if err != nil {
		return nil, fmt.Errorf("open secret store: %w", err)
	}

	hc, err := client.NewHTTPClient(c.BaseURL, c.RequestTimeout, log)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &App{
		config:  c,
		session: services.NewSessionService(hc, store, log),
		closer:  store,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		now:     time.Now,
	}, nil
}

// Run blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.closer == nil {
			return
		}
		if err := a.closer.Close(); err != nil {
			a.log.Error(ctx, "failed to close secret store", "error", err)
		}
	}()

	fmt.Fprintln(a.out, "Welcome to Luca (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.session.IsAuthenticated(ctx)
}

func (a *App) status() string {
	if acc := a.session.CurrentAccount(); acc != nil {
		return fmt.Sprintf("(%s)", acc.Email)
	}
	return ""
}

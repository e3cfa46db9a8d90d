package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/shopkeeper/internal/cart"
	"github.com/dmitrijs2005/shopkeeper/internal/catalog"
	"github.com/dmitrijs2005/shopkeeper/internal/checkout"
	"github.com/dmitrijs2005/shopkeeper/internal/config"
	"github.com/dmitrijs2005/shopkeeper/internal/identity"
	"github.com/dmitrijs2005/shopkeeper/internal/kvstore"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/dmitrijs2005/shopkeeper/internal/transition"
	"github.com/dmitrijs2005/shopkeeper/internal/wishlist"
)

type App struct {
	config   *config.Config
	db       *sql.DB
	log      logging.Logger
	coord    *transition.Coordinator
	cart     *cart.Service
	wishlist *wishlist.Service
	checkout *checkout.Service
	catalog  *catalog.Catalog
	reader   *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.LogLevel),
	})))

	db, err := kvstore.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	st := kvstore.NewSQLiteStore(db)

	ident := identity.NewService(st, identity.PlainScheme{}, log)
	if err := ident.Bootstrap(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	cat, err := catalog.Load()
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	coord := transition.NewCoordinator(db, ident, log)
	coord.Resume(ctx)

	cartSvc := cart.NewService(st, log)

	return &App{
		config:   cfg,
		db:       db,
		log:      log,
		coord:    coord,
		cart:     cartSvc,
		wishlist: wishlist.NewService(st, log),
		checkout: checkout.NewService(st, cartSvc, log),
		catalog:  cat,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.coord.State() == transition.StateAuthenticated
}

func (a *App) getStatus() string {
	if sess := a.coord.Session(context.Background()); sess != nil {
		return sess.Email
	}
	return "guest"
}

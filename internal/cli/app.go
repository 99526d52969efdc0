package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/wellnest/internal/config"
	"github.com/dmitrijs2005/wellnest/internal/entries"
	"github.com/dmitrijs2005/wellnest/internal/logging"
	"github.com/dmitrijs2005/wellnest/internal/models"
	"github.com/dmitrijs2005/wellnest/internal/session"
	"github.com/dmitrijs2005/wellnest/internal/store"
	"github.com/dmitrijs2005/wellnest/internal/testimonials"
	"github.com/dmitrijs2005/wellnest/internal/users"

	_ "modernc.org/sqlite"
)

// App holds the wired services and the interactive state of one CLI run.
type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	kv      store.TxStore
	users   *users.Directory
	session *session.Manager
	entries *entries.Ledger
	board   *testimonials.Board

	// current mirrors the persisted session for the running process.
	current *models.Session

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local store, wires the services, seeds the testimonial
// board, and restores any persisted session.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	db, err := store.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	kv := store.NewSQLiteStore(db)

	a := &App{
		config:  cfg,
		logger:  logger,
		db:      db,
		kv:      kv,
		users:   users.NewDirectory(kv),
		session: session.NewManager(kv),
		entries: entries.NewLedger(kv),
		board:   testimonials.NewBoard(kv),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	if _, err := a.board.EnsureSeeded(ctx); err != nil {
		logger.Error(ctx, "error seeding testimonials", "error", err)
		return nil, err
	}

	cur, err := a.session.Current(ctx)
	if err != nil {
		return nil, err
	}
	a.current = cur

	return a, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()

	fmt.Fprintln(a.out, "Welcome to WellNest CLI (type 'help' for commands)")
	if a.current != nil {
		fmt.Fprintf(a.out, "Welcome back, %s\n", a.current.Username)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.current != nil
}

func (a *App) getStatus() string {
	if a.current == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.current.Username)
}

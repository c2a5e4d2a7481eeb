// Package cli implements the interactive notekeeper shell: account commands
// backed by the session store and note commands backed by the in-memory
// notes manager.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/notekeeper/internal/config"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/notes"
	"github.com/dmitrijs2005/notekeeper/internal/session"
	"github.com/dmitrijs2005/notekeeper/internal/storage"
	"github.com/dmitrijs2005/notekeeper/internal/storage/kv"
)

// App wires the session service and notes manager to the REPL handlers.
type App struct {
	config   *config.Config
	db       *sql.DB
	sessions session.Service
	notes    *notes.Manager
	log      logging.Logger
	reader   *bufio.Reader

	user      *session.User
	sortOrder notes.SortOrder
}

// NewApp opens the local database, builds the services, and restores any
// persisted session. The restore runs to completion here, before the REPL
// ever accepts a command, so no command can observe an in-flight restore.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	a := &App{
		config:    c,
		db:        db,
		sessions:  session.NewStore(kv.NewSQLiteStore(db), log),
		notes:     notes.NewManager(),
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		sortOrder: notes.SortDesc,
	}

	user, err := a.sessions.Restore(ctx)
	if err != nil {
		// start logged out rather than refusing to start at all
		log.Warn(ctx, "session restore failed", "error", err)
	}
	a.user = user

	return a, nil
}

// Run starts the REPL on stdin and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if a.user != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s!", a.user.Username))
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// Close releases the database handle.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.user.Username)
}

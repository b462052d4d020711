package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"github.com/eyeglaze/eyeglaze-cli/internal/client/api"
	"github.com/eyeglaze/eyeglaze-cli/internal/client/config"
	"github.com/eyeglaze/eyeglaze-cli/internal/client/repositories/metadata"
	"github.com/eyeglaze/eyeglaze-cli/internal/client/services"
	"github.com/eyeglaze/eyeglaze-cli/internal/client/session"
	"github.com/eyeglaze/eyeglaze-cli/internal/client/storage"
	"github.com/eyeglaze/eyeglaze-cli/internal/logging"
)

// App wires the CLI together: configuration, the session manager, and the
// analysis service over the shared local database.
type App struct {
	config   *config.Config
	session  *session.Manager
	analysis *services.AnalysisService
	db       *sql.DB
	reader   *bufio.Reader
	out      io.Writer
	log      logging.Logger
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.Open(ctx, c.DatabaseFile)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	backend := api.NewHTTPBackend(c.BackendBaseURL, c.RequestTimeout, log)
	ml := api.NewMLClient(c.MLBaseURL, c.RequestTimeout, log)

	store := session.NewStore(metadata.NewSQLiteRepository(db), log)
	sess := session.NewManager(backend, store, log)
	analysis := services.NewAnalysisService(backend, ml, db, log)

	return &App{
		config:   c,
		session:  sess,
		analysis: analysis,
		db:       db,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		log:      log,
	}, nil
}

// Run restores any persisted session and starts the REPL. It returns when
// the user exits.
func (a *App) Run(ctx context.Context) {
	a.session.Restore(ctx)
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

func (a *App) getStatus() string {
	if u := a.session.CurrentUser(); u != nil {
		return "(" + u.Email + ")"
	}
	return ""
}

package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/mailtriage/internal/client/busy"
	"github.com/dmitrijs2005/mailtriage/internal/client/client"
	"github.com/dmitrijs2005/mailtriage/internal/client/config"
	"github.com/dmitrijs2005/mailtriage/internal/client/models"
	"github.com/dmitrijs2005/mailtriage/internal/client/notify"
	"github.com/dmitrijs2005/mailtriage/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/mailtriage/internal/client/services"
	"github.com/dmitrijs2005/mailtriage/internal/client/state"
	"github.com/dmitrijs2005/mailtriage/internal/client/storage"
	"github.com/dmitrijs2005/mailtriage/internal/client/view"
	"github.com/dmitrijs2005/mailtriage/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

type classifier interface {
	Classify(ctx context.Context, sender, subject, body string) (*services.Classification, error)
	SubmitFeedback(ctx context.Context, correctedCategoryID, feedbackText string) error
}

type uploader interface {
	SubmitBatch(ctx context.Context, raw string) (*models.UploadReport, error)
}

type administrator interface {
	Retrain(ctx context.Context) (string, error)
}

type emailLookup interface {
	Email(ctx context.Context, id int64) (*models.ScoredEmail, error)
}

type colorResolver interface {
	ColorFor(categoryID int64) string
}

const expiryLayout = "2006-01-02 15:04"

type App struct {
	config   *config.Config
	db       *sql.DB
	logger   logging.Logger
	registry *prometheus.Registry

	state      *state.AppState
	auth       services.AuthService
	classifier classifier
	uploader   uploader
	admin      administrator
	lookup     emailLookup
	colors     colorResolver
	controller *view.Controller
	queue      *notify.Queue
	gates      *busy.Gates

	feedback view.FeedbackForm
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the session store and builds every component on top of one
// shared AppState.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, c.LogLevel)

	db, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", logging.KeyError, err)
		return nil, err
	}

	registry := prometheus.NewRegistry()
	st := state.New()

	api, err := client.NewHTTPClient(client.Endpoints{
		BaseURL:     c.ServerURL,
		GraphQLPath: c.GraphQLPath,
		TaskPrefix:  c.TaskPrefix,
	}, st,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(logger),
		client.WithMetrics(client.NewMetrics(registry)),
	)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("backend client: %w", err)
	}

	queue := notify.NewQueue()
	catalog := services.NewCatalog(api, st)

	return &App{
		config:     c,
		db:         db,
		logger:     logger,
		registry:   registry,
		state:      st,
		auth:       services.NewAuthService(api, metadata.NewSQLiteRepository(db), st, logger),
		classifier: services.NewClassifyService(api, catalog, st, logger),
		uploader:   services.NewUploadService(api, logger),
		admin:      services.NewAdminService(api, st, logger),
		lookup:     api,
		colors:     catalog,
		controller: view.NewController(st, api, catalog, queue, logger),
		queue:      queue,
		gates:      busy.New(),
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}, nil
}

// Run restores any persisted session, then serves the REPL until the user
// leaves or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if a.config.MetricsAddr != "" {
		stop := startMetricsServer(ctx, a.config.MetricsAddr, a.registry, a.logger)
		defer stop()
	}

	printlnFn("mailtriage client (type 'help' for commands)")

	if id, ok := a.auth.Restore(ctx); ok {
		notify.Info(a.queue, "Welcome back, "+id.Username)
	}
	a.enterHome(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(context.Background(), "closing session store", logging.KeyError, err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.state.IsAuthenticated()
}

func (a *App) getStatus() string {
	id, ok := a.state.Identity()
	if !ok {
		return "(logged out)"
	}
	s := id.Username
	if id.IsAdmin {
		s += " admin"
	}
	if tab := a.controller.ActiveTab(); tab != "" {
		s += " | " + string(tab)
	}
	if exp, ok := services.CredentialExpiry(a.state.Credential()); ok {
		s += " | expires " + exp.Local().Format(expiryLayout)
	}
	return "(" + s + ")"
}

// enterHome lands on the dashboard when a session exists.
func (a *App) enterHome(ctx context.Context) {
	a.controller.Start(ctx)
	if a.isLoggedIn() {
		a.renderActive()
	}
}

// flushNotifications prints and empties the notification queue.
func (a *App) flushNotifications() {
	for _, n := range a.queue.Drain() {
		printlnFn(renderNotification(n))
	}
}

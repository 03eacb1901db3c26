package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/config"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/platform/memstore"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/platform/postgres"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/service/auth"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/service/focus"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/service/identity"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/service/task"
	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/store"
)

// demoPasswordHash is the bcrypt hash of the demo identity's fixed password
// ("demo"). The demo user is created lazily with this hash on the first
// anonymous request.
const demoPasswordHash = "$2b$12$Iu0OyhnxdQ6X.SerbJZ/T.oakun7rV6nUJs58VH9JkTf4tA6qyXai"

// application holds the long-lived dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger

	db *sql.DB // nil when running on the memory engine

	userStore store.UserStore
	taskStore store.TaskStore

	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier

	identityResolver *identity.Resolver
	taskManager      *task.Manager
	focusSelector    *focus.Selector
}

// newApplication wires the application dependencies for the configured
// database engine. The postgres engine connects, migrates and serves from
// the database; the memory engine keeps all state in process.
func newApplication(cfg *config.Config, appLogger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: appLogger,
	}

	switch cfg.Database.Engine {
	case "postgres":
		db, err := setupAppDatabase(cfg, appLogger)
		if err != nil {
			return nil, err
		}
		if err := postgres.RunMigrations(db, appLogger); err != nil {
			closeErr := db.Close()
			if closeErr != nil {
				appLogger.Error("failed to close database after migration failure", "error", closeErr)
			}
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		app.db = db
		app.userStore = postgres.NewPostgresUserStore(db, appLogger)
		app.taskStore = postgres.NewPostgresTaskStore(db, appLogger)

	case "memory":
		appLogger.Warn("using in-memory storage, all data is lost on shutdown")
		app.userStore = memstore.NewUserStore(appLogger)
		app.taskStore = memstore.NewTaskStore(appLogger)

	default:
		return nil, fmt.Errorf("unknown database engine %q", cfg.Database.Engine)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	app.jwtService = jwtService
	app.passwordHasher = auth.NewBcryptHasher(0)
	app.passwordVerifier = auth.NewBcryptVerifier()

	app.identityResolver = identity.NewResolver(app.userStore, jwtService, demoPasswordHash, appLogger)
	app.taskManager = task.NewManager(app.taskStore, appLogger)
	app.focusSelector = focus.NewSelector(app.taskStore, rand.New(rand.NewSource(rand.Int63())), appLogger)

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}

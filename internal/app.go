// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "userservice/internal/api"
	"userservice/internal/api/handler"
	"userservice/internal/config"
	"userservice/internal/repository"
	"userservice/internal/repository/postgres"
	"userservice/internal/service"
	"userservice/internal/util"
	"userservice/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository repository.UserRepository

	// Use cases
	UseCases handler.UseCases

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{Logger: util.GetLogger()}
}

// LoadConfig reads .env and the environment, then configures the logger.
func (app *Application) LoadConfig() error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	level, err := util.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}
	util.InitLogger(level)
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")
	return nil
}

// Migrate applies pending schema migrations.
func (app *Application) Migrate() error {
	migrator, err := db.NewMigrator(app.Config.DB)
	if err != nil {
		return err
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			app.Logger.Warn("Failed to close migrator", "error", err)
		}
	}()

	if err := migrator.Up(); err != nil {
		return err
	}
	version, dirty, err := migrator.Version()
	if err != nil {
		return err
	}
	app.Logger.Info("Database schema is up to date.", "version", version, "dirty", dirty)
	return nil
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	if err := app.LoadConfig(); err != nil {
		return err
	}

	// 2. Connect to Database
	database, err := db.NewPostgresDB(ctx, app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	// 3. Apply schema
	if app.Config.AutoMigrate {
		if err := app.Migrate(); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// 4. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository()
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize Use Cases
	// Pass the concrete db.BeginTx, db.CommitTx, db.RollbackTx functions from pkg/db
	txManager := service.NewTxManager(app.DB, db.BeginTx, db.CommitTx, db.RollbackTx)
	app.UseCases = handler.UseCases{
		Create: service.NewCreateUserUseCase(txManager, app.UserRepository, app.Logger),
		Get:    service.NewGetUserUseCase(app.DB, app.UserRepository, app.Logger),
		GetAll: service.NewGetAllUsersUseCase(app.DB, app.UserRepository, app.Logger),
		Update: service.NewUpdateUserUseCase(txManager, app.UserRepository, app.Logger),
		Delete: service.NewDeleteUserUseCase(txManager, app.UserRepository, app.Logger),
	}
	app.Logger.Info("Use cases initialized.")

	// 6. Initialize HTTP Handlers and Router
	userHandler := handler.NewUserHandler(app.UseCases, app.Logger)
	app.HTTPHandler = router.NewRouter(userHandler, app.Logger, app.Config.CORSAllowedOrigins)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lodgekeep/backoffice/internal/admin/domain"
	httpapi "github.com/lodgekeep/backoffice/internal/admin/http"
	"github.com/lodgekeep/backoffice/internal/admin/service"
	"github.com/lodgekeep/backoffice/internal/admin/store"
	"github.com/lodgekeep/backoffice/internal/admin/store/drivers/sqlite"
	"github.com/lodgekeep/backoffice/pkg/idx"
	"github.com/lodgekeep/backoffice/pkg/jwtx"
	"github.com/lodgekeep/backoffice/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

// Application encapsulates the back-office service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	signer *jwtx.Signer

	authService      *service.AuthService
	accountService   *service.AccountService
	roomService      *service.RoomService
	referenceService *service.ReferenceService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "backoffice",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	// Sessions do not survive a restart; operators just log in again.
	signer, err := jwtx.NewEphemeralSigner("session-" + idx.New().String())
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("initialize session signer: %w", err)
	}
	app.signer = signer

	app.initServices()

	if err := app.seedBootstrapAdmin(context.Background()); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()
	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("backoffice starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully stops the HTTP server and closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down backoffice...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("backoffice stopped")
	return nil
}

func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied")
	return nil
}

func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:      app.db,
		Signer:     app.signer,
		Issuer:     app.cfg.Issuer,
		SessionTTL: app.cfg.SessionTTL,
	}
	app.accountService = &service.AccountService{Store: app.db}
	app.roomService = &service.RoomService{Store: app.db}
	app.referenceService = &service.ReferenceService{Store: app.db}
}

// seedBootstrapAdmin creates the first ADMIN account on an empty database so
// an operator can log in at all. It does nothing once any account exists or
// when the bootstrap credentials are not configured.
func (app *Application) seedBootstrapAdmin(ctx context.Context) error {
	if app.cfg.BootstrapUsername == "" || app.cfg.BootstrapPassword == "" {
		return nil
	}

	count, err := app.db.Accounts().Count(ctx)
	if err != nil {
		return fmt.Errorf("count accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	adminRole, err := app.db.Roles().GetByLabel(ctx, domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("load admin role: %w", err)
	}

	account, err := app.accountService.Create(ctx, service.AccountCandidate{
		Username: app.cfg.BootstrapUsername,
		Email:    app.cfg.BootstrapEmail,
		Password: app.cfg.BootstrapPassword,
		RoleIDs:  []idx.ID{adminRole.ID},
	})
	if err != nil {
		return fmt.Errorf("seed bootstrap admin: %w", err)
	}

	app.logger.Info("bootstrap admin created", "username", account.Username)
	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer.Verifier(app.cfg.Issuer),
		BuildVersion,
		app.db,
		app.logger,
	)

	router.AuthService = app.authService
	router.AccountService = app.accountService
	router.RoomService = app.roomService
	router.ReferenceService = app.referenceService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

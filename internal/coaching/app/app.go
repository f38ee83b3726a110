package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/ultracoach/ultracoach/internal/coaching/http"
	"github.com/ultracoach/ultracoach/internal/coaching/service"
	"github.com/ultracoach/ultracoach/internal/coaching/store"
	"github.com/ultracoach/ultracoach/internal/coaching/store/drivers/sqlite"
	"github.com/ultracoach/ultracoach/pkg/cryptox"
	"github.com/ultracoach/ultracoach/pkg/jwtx"
	"github.com/ultracoach/ultracoach/pkg/mailx"
	"github.com/ultracoach/ultracoach/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the coaching service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	signer *jwtx.EdDSASigner
	mailer mailx.Mailer

	userService         *service.UserService
	sessionService      *service.SessionService
	invitationService   *service.InvitationService
	relationshipService *service.RelationshipService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "coaching-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	signer, err := InitSessionSigner(app.cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize session signer: %w", err)
	}
	app.signer = signer

	app.initMailer()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start(context.Background())

	app.logger.Info("coaching service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down coaching service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("coaching service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initMailer wires SMTP delivery when configured. Without an SMTP host the
// service still runs; invitations just report emailSent=false.
func (app *Application) initMailer() {
	mailCfg := mailx.Config{
		Host:     app.cfg.SMTPHost,
		Port:     app.cfg.SMTPPort,
		From:     app.cfg.SMTPFrom,
		Username: app.cfg.SMTPUsername,
		Password: app.cfg.SMTPPassword,
		Timeout:  app.cfg.MailTimeout,
	}

	if !mailCfg.Enabled() {
		app.logger.Warn("SMTP not configured, invitation emails disabled")
		return
	}

	app.mailer = mailx.New(mailCfg)
	app.logger.Info("SMTP mailer configured", "host", mailCfg.Host)
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.userService = &service.UserService{Store: app.db}

	app.sessionService = &service.SessionService{
		Signer: app.signer,
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.SessionTTL,
	}

	app.relationshipService = &service.RelationshipService{Store: app.db}

	app.invitationService = &service.InvitationService{
		Store:          app.db,
		Relationships:  app.relationshipService,
		Mailer:         app.mailer,
		BaseURL:        app.cfg.BaseURL,
		MaxResends:     app.cfg.MaxResends,
		ExpirationDays: app.cfg.ExpirationDays,
	}

	app.housekeepingService = &service.HousekeepingService{
		Store:     app.db,
		Logger:    app.logger,
		Interval:  app.cfg.HousekeepingInterval,
		Retention: app.cfg.InvitationRetention,
	}
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		app.signer.Verifier(app.cfg.Issuer),
		BuildVersion,
		app.db,
		app.logger,
	)

	router.UserService = app.userService
	router.SessionService = app.sessionService
	router.InvitationService = app.invitationService
	router.RelationshipService = app.relationshipService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

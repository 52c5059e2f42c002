// Package app provides application-level orchestration and dependency injection.
// This package wires together all components and manages the application lifecycle.
package app

import (
	"fmt"
	"log/slog"

	"github.com/hoangtrungvu/musicstream/internal/adapter/audio/mock"
	"github.com/hoangtrungvu/musicstream/internal/adapter/eventbus"
	"github.com/hoangtrungvu/musicstream/internal/adapter/repository"
	"github.com/hoangtrungvu/musicstream/internal/adapter/storage/memory"
	"github.com/hoangtrungvu/musicstream/internal/adapter/storage/sqlite"
	"github.com/hoangtrungvu/musicstream/internal/catalog"
	"github.com/hoangtrungvu/musicstream/internal/config"
	"github.com/hoangtrungvu/musicstream/internal/logger"
	"github.com/hoangtrungvu/musicstream/internal/ports"
	"github.com/hoangtrungvu/musicstream/internal/service"
)

// Application is the root application structure that holds all dependencies.
// It follows the Dependency Injection pattern with constructor-based injection.
//
// The Application struct is responsible for:
// - Creating and wiring all dependencies
// - Managing the application lifecycle (startup, shutdown)
// - Providing a clean entry point for the CLI commands
type Application struct {
	logger *slog.Logger
	config config.Config

	// Infrastructure
	eventBus ports.EventBus
	output   ports.AudioOutput
	store    ports.KeyValueStore

	// Domain data
	catalog *catalog.Catalog

	// Services
	Player        *service.PlayerService
	Library       *service.LibraryService
	Auth          *service.AuthService
	Settings      *service.SettingsService
	Notifications *service.NotificationService
}

// New creates a new application with all dependencies wired. The catalog
// starts from the built-in tracks and is extended from the configured
// import directory when one is set.
func New(cfg config.Config, log *slog.Logger) (*Application, error) {
	app := &Application{
		logger: log,
		config: cfg,
	}

	app.eventBus = eventbus.NewSyncEventBus(log.With(slog.String("component", "eventbus")))

	if cfg.Storage.Path != "" {
		store, err := sqlite.Open(cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("open state store: %w", err)
		}
		app.store = store
	} else {
		app.store = memory.NewStore()
	}

	app.catalog = catalog.Default()
	if cfg.Library.ImportDir != "" {
		imported, err := catalog.ImportDir(cfg.Library.ImportDir, log.With(slog.String("component", "importer")))
		if err != nil {
			log.Warn("track import failed", slog.String("dir", cfg.Library.ImportDir), slog.Any("error", err))
		} else {
			app.catalog = catalog.New(append(app.catalog.All(), imported.All()...))
		}
	}

	app.output = mock.NewOutput(log.With(slog.String("output", "mock")), app.eventBus)

	libraryRepo := repository.NewLibraryRepository(app.store, log.With(slog.String("repository", "library")))
	sessionRepo := repository.NewSessionRepository(app.store, log.With(slog.String("repository", "session")))
	settingsRepo := repository.NewSettingsRepository(app.store, log.With(slog.String("repository", "settings")))

	app.Player = service.NewPlayerService(
		log.With(slog.String("service", "player")),
		app.output,
		app.eventBus,
	)
	app.Library = service.NewLibraryService(
		log.With(slog.String("service", "library")),
		libraryRepo,
		app.eventBus,
	)
	app.Auth = service.NewAuthService(
		log.With(slog.String("service", "auth")),
		sessionRepo,
		app.eventBus,
	)
	app.Settings = service.NewSettingsService(
		log.With(slog.String("service", "settings")),
		settingsRepo,
		app.eventBus,
	)
	app.Notifications = service.NewNotificationService(
		log.With(slog.String("service", "notification")),
		app.eventBus,
	)
	app.Library.SetNotifier(app.Notifications)

	if err := app.restoreState(); err != nil {
		// Non-fatal - just log and continue
		log.Warn("failed to restore saved state", slog.Any("error", err))
	}

	return app, nil
}

// NewDefault creates an application from the default configuration.
func NewDefault() (*Application, error) {
	cfg, _, _, err := config.Load("")
	if err != nil {
		return nil, err
	}
	return New(cfg, logger.NewLogger(logger.DefaultConfig()))
}

// Catalog returns the track catalog.
func (a *Application) Catalog() *catalog.Catalog {
	return a.catalog
}

// Output returns the audio output adapter.
func (a *Application) Output() ports.AudioOutput {
	return a.output
}

// EventBus returns the application event bus.
func (a *Application) EventBus() ports.EventBus {
	return a.eventBus
}

// restoreState rehydrates persisted state from the previous session.
// Settings come first so the library sees the save-history flag before
// any playback starts.
func (a *Application) restoreState() error {
	if err := a.Settings.Restore(); err != nil {
		return fmt.Errorf("restore settings: %w", err)
	}
	if err := a.Library.Restore(); err != nil {
		return fmt.Errorf("restore library: %w", err)
	}
	if err := a.Auth.Restore(); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	volume, ok, err := a.Settings.RestoreVolume()
	if err != nil {
		return fmt.Errorf("restore volume: %w", err)
	}
	if !ok {
		volume = a.config.Playback.DefaultVolume
	}
	if err := a.Player.SetVolume(volume); err != nil {
		a.logger.Warn("failed to apply restored volume", slog.Float64("volume", volume), slog.Any("error", err))
	}
	return nil
}

// Shutdown gracefully shuts down the application, persisting the player
// volume for the next session.
func (a *Application) Shutdown() {
	a.logger.Info("shutting down application")

	state := a.Player.State()
	if err := a.Settings.SaveVolume(state.Volume); err != nil {
		a.logger.Warn("failed to save volume", slog.Any("error", err))
	}

	if err := a.Notifications.Close(); err != nil {
		a.logger.Warn("failed to close notification service", slog.Any("error", err))
	}
	if err := a.Library.Close(); err != nil {
		a.logger.Warn("failed to close library service", slog.Any("error", err))
	}
	if err := a.Player.Close(); err != nil {
		a.logger.Warn("failed to close player", slog.Any("error", err))
	}
	if err := a.eventBus.Close(); err != nil {
		a.logger.Warn("failed to close event bus", slog.Any("error", err))
	}
	if err := a.store.Close(); err != nil {
		a.logger.Warn("failed to close state store", slog.Any("error", err))
	}

	a.logger.Info("application shutdown complete")
}

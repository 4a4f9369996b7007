package app

import (
	"context"
	"fmt"

	"github.com/haierkeys/simple-notes-service/internal/dao"
	"github.com/haierkeys/simple-notes-service/internal/service"
	pkgapp "github.com/haierkeys/simple-notes-service/pkg/app"

	"go.uber.org/zap"
)

// App is the application container. It owns the store, the token manager
// and the services, and hands them to handlers through injection instead of
// package-level state.
type App struct {
	config *AppConfig
	logger *zap.Logger

	// Store is the in-memory note collection.
	Store *dao.Store

	// Service layer
	NoteService service.NoteService
	UserService service.UserService

	// Infrastructure
	TokenManager pkgapp.TokenManager
}

// NewApp creates the application container and wires all dependencies.
// cfg and logger are required.
func NewApp(cfg *AppConfig, logger *zap.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	a := &App{
		config: cfg,
		logger: logger,
	}

	a.Store = dao.NewStore()

	a.TokenManager = pkgapp.NewTokenManager(pkgapp.TokenConfig{
		SecretKey: cfg.Security.AuthTokenKey,
		Expiry:    cfg.GetTokenExpiry(),
	})

	a.NoteService = service.NewNoteService(a.Store, logger)
	a.UserService = service.NewUserService(a.TokenManager, logger)

	return a, nil
}

// Config returns the app configuration.
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger returns the zap logger.
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Version returns the build version information.
func (a *App) Version() pkgapp.VersionInfo {
	return pkgapp.VersionInfo{
		Version:   Version,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}

// Shutdown releases container resources. The store lives in process memory,
// so there is nothing to flush; the hook exists for a future persistent
// backend.
func (a *App) Shutdown(ctx context.Context) error {
	_ = ctx
	a.logger.Info("app container shutdown complete")
	return nil
}

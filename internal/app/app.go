package app

import (
	"context"

	"github.com/amoraverse/amoraverse/internal/backend"
	"github.com/amoraverse/amoraverse/internal/config"
	"github.com/amoraverse/amoraverse/internal/generator"
	"github.com/amoraverse/amoraverse/internal/kvstore"
	"github.com/amoraverse/amoraverse/internal/vault"
)

// App is the main application container holding all dependencies.
type App struct {
	Config    *config.Config
	Store     kvstore.Store
	Vault     *vault.Vault
	Generator *generator.Generator
}

// New creates a new application instance with all dependencies wired up.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := kvstore.OpenSQLite(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	v := vault.Open(ctx, store)

	// A remote backend is optional; without one the template engine
	// handles generation on its own.
	var client *backend.Client
	if cfg.BackendURL != "" {
		client = backend.New(backend.Config{
			BaseURL: cfg.BackendURL,
			Timeout: cfg.BackendTimeout,
		})
	}

	gen := generator.New(generator.Config{
		Client: client,
		Delay:  cfg.GenerationDelay,
	})

	return &App{
		Config:    cfg,
		Store:     store,
		Vault:     v,
		Generator: gen,
	}, nil
}

// Close closes all resources.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// Package infrastructure provides core service initialization for application startup.
// It assembles the shared dependencies (logging, completion client, persistence
// backend) that domain systems require. Database and storage systems exist only
// when the configured persistence backend uses them.
package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/JaimeStill/pagegen/internal/completion"
	"github.com/JaimeStill/pagegen/internal/config"
	"github.com/JaimeStill/pagegen/internal/persist"
	"github.com/JaimeStill/pagegen/pkg/database"
	"github.com/JaimeStill/pagegen/pkg/lifecycle"
	"github.com/JaimeStill/pagegen/pkg/storage"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle  *lifecycle.Coordinator
	Logger     *slog.Logger
	Completion completion.Client
	Persist    persist.Store

	// Database is nil unless the persistence backend is postgres.
	Database database.System
	// Storage is nil unless the persistence backend is blob.
	Storage storage.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return NewWithLogger(cfg, logger)
}

// NewWithLogger is New with a caller-supplied logger.
func NewWithLogger(cfg *config.Config, logger *slog.Logger) (*Infrastructure, error) {
	lc := lifecycle.New()

	client, err := completion.New(lc.Context(), &cfg.Completion, logger)
	if err != nil {
		return nil, fmt.Errorf("completion init failed: %w", err)
	}

	infra := &Infrastructure{
		Lifecycle:  lc,
		Logger:     logger,
		Completion: client,
	}

	switch cfg.Persistence.Backend {
	case config.BackendMemory:
		infra.Persist = persist.NewMemory()
	case config.BackendPostgres:
		db, err := database.New(&cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("database init failed: %w", err)
		}
		infra.Database = db
		infra.Persist = persist.NewPostgres(db.Connection())
	case config.BackendBlob:
		store, err := storage.New(&cfg.Storage, logger)
		if err != nil {
			return nil, fmt.Errorf("storage init failed: %w", err)
		}
		infra.Storage = store
		infra.Persist = persist.NewBlob(store)
	default:
		return nil, fmt.Errorf("%w: %s", persist.ErrUnknownBackend, cfg.Persistence.Backend)
	}

	logger.Info("persistence configured", "backend", cfg.Persistence.Backend)
	return infra, nil
}

// Start registers the configured backend systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if i.Database != nil {
		if err := i.Database.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("database start failed: %w", err)
		}
	}
	if i.Storage != nil {
		if err := i.Storage.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("storage start failed: %w", err)
		}
	}
	return nil
}

// Check reports whether the persistence backend is reachable. Backends
// without a remote dependency always pass.
func (i *Infrastructure) Check(ctx context.Context) error {
	if i.Database != nil {
		return i.Database.Ping(ctx)
	}
	return nil
}

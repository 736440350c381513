package store

import (
	"context"
	"fmt"

	"github.com/dimitrije/kisan-api/internal/config"
	"github.com/dimitrije/kisan-api/internal/database"
)

// Open connects the configured driver. The postgres driver runs migrations
// before returning when migrate is set.
func Open(ctx context.Context, cfg config.StoreConfig, migrate bool) (Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemoryStore(), nil
	case config.DriverPostgres:
		db, err := database.New(ctx, cfg.DatabaseURL, cfg.MaxConns)
		if err != nil {
			return nil, err
		}
		if migrate {
			if err := db.Migrate(ctx); err != nil {
				db.Close()
				return nil, fmt.Errorf("failed to run migrations: %w", err)
			}
		}
		return NewPostgresStore(db), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

package db

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/logger"
)

// Open returns the backend selected by cfg.Driver.
func Open(ctx context.Context, cfg config.Storage, log *logger.Logger) (Store, error) {
	log.Debug().Str("driver", cfg.Driver).Str("path", cfg.Path).Msg("opening storage")

	var (
		store Store
		err   error
	)
	switch cfg.Driver {
	case config.DriverMemory:
		store = NewMemoryStore()
	case config.DriverFile, "":
		var fs *FileStore
		if fs, err = NewFileStore(cfg.Path); err == nil {
			store = fs
		}
	case config.DriverSQLite:
		var ss *SQLStore
		if ss, err = OpenSQLite(ctx, cfg.Path); err == nil {
			store = ss
		}
	case config.DriverPostgres:
		var ps *PostgresStore
		if ps, err = Connect(ctx, cfg.DSN); err == nil {
			store = ps
		}
	default:
		err = fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.Driver).Msg("failed to open storage")
		return nil, err
	}
	return store, nil
}

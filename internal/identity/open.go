package identity

import (
	"context"
	"fmt"
	"io"

	"flixhub/pkg/database"
	"flixhub/pkg/utils"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open builds the history backend selected in cfg. The returned closer
// releases any connection the backend holds.
func Open(ctx context.Context, cfg utils.IdentityConfig) (*History, io.Closer, error) {
	key := cfg.Key
	if key == "" {
		key = DefaultKey
	}

	switch cfg.Driver {
	case "", "memory":
		return NewHistory(NewMemoryBackend()), nopCloser{}, nil
	case "file":
		return NewHistory(NewFileBackend(cfg.File)), nopCloser{}, nil
	case "sqlite":
		dbCfg := database.Config{Path: cfg.SQLitePath}
		if dbCfg.Path == "" {
			dbCfg = database.DefaultConfig()
		}
		db, err := database.Open(dbCfg)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return NewHistory(NewSQLiteBackend(db, key)), db, nil
	case "redis":
		client, err := DialRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return NewHistory(NewRedisBackend(client, key)), client, nil
	default:
		return nil, nil, fmt.Errorf("unknown identity driver %q", cfg.Driver)
	}
}

package kv

import (
	"fmt"

	"eva-support-be/internal/config"
	"eva-support-be/pkg/database"

	"github.com/redis/go-redis/v9"
)

// NewFromConfig selects the persistence driver. The file driver is the
// default: it behaves most like the local storage the client relied on.
func NewFromConfig(cfg *config.Config, rdb *redis.Client) (Store, error) {
	switch cfg.Storage.Driver {
	case "file", "":
		return NewFileStore(cfg.Storage.FilePath)
	case "memory":
		return NewMemoryStore(), nil
	case "redis":
		if rdb == nil {
			return nil, fmt.Errorf("redis storage driver requires a redis connection")
		}
		return NewRedisStore(rdb, "eva:state:"), nil
	case "postgres":
		db, err := database.NewGormDBFromDSN(cfg.Storage.Connection)
		if err != nil {
			return nil, err
		}
		return NewGormStore(db)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Storage.Driver)
	}
}

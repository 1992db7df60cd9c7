// Package bootstrap wires shared runtime dependencies for the commands.
package bootstrap

import (
	"fmt"

	"travelblog/internal/cache"
	"travelblog/internal/config"
	"travelblog/internal/database"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// InitRuntime connects to the database and Redis. Redis being unreachable is
// not fatal; the client comes back nil and the API serves uncached.
func InitRuntime(cfg *config.Config) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	return db, cache.GetClient(), nil
}

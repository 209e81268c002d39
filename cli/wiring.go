// Package cli holds the cobra commands of the rental-yield binary.
package cli

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"rental-yield/config"
	"rental-yield/repository"
	"rental-yield/service"
)

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// newCache builds the configured result cache. A nil cache disables caching.
// An unreachable Redis degrades to the in-memory cache.
func newCache(cfg config.CacheConfig) (repository.CacheRepository, func()) {
	switch strings.ToLower(cfg.Driver) {
	case "none", "off":
		return nil, func() {}
	case "redis":
		cache := repository.NewRedisCache(cfg.RedisAddr, cfg.TTL)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := cache.Ping(ctx); err != nil {
			log.Printf("Warning: redis at %s unavailable, using in-memory cache: %v", cfg.RedisAddr, err)
			_ = cache.Close()
			return repository.NewMemoryCache(), func() {}
		}
		return cache, func() { _ = cache.Close() }
	default:
		return repository.NewMemoryCache(), func() {}
	}
}

// newProjectionService resolves the fidelity, honouring a --fidelity
// override when the command has one.
func newProjectionService(cmd *cobra.Command, cfg *config.Config, cache repository.CacheRepository) (*service.ProjectionService, error) {
	raw := cfg.Engine.AnnuityFidelity
	if f := cmd.Flags().Lookup("fidelity"); f != nil && f.Changed {
		raw = f.Value.String()
	}
	fidelity, err := service.ParseFidelity(raw)
	if err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	return service.NewProjectionService(cache, fidelity), nil
}

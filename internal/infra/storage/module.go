// Package storage provides the Auth Storage backends: an in-process map and
// Redis for deployments with several replicas.
package storage

import (
	"authhub/config"

	"go.uber.org/fx"
)

// Module selects the storage backend from storage.driver.
func Module(cfg *config.Config) fx.Option {
	if cfg.Storage != nil && cfg.Storage.Driver == config.StorageRedis {
		return fx.Provide(NewRedisClient, NewRedisFactory)
	}

	return fx.Provide(NewMemoryFactory)
}

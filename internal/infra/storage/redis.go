package storage

import (
	"context"
	"log/slog"
	"time"

	"authhub/config"
	"authhub/internal/domain/service"
	"authhub/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultKeyPrefix = "authhub:"

// redisClient is the subset of go-redis used by the storage.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// ClientParams holds dependencies for the Redis client, injected by Fx.
type ClientParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient connects to Redis and closes the client on shutdown.
func NewRedisClient(params ClientParams) (*redis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("redis.addr is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrapf(err, "ping redis at %s", cfg.Addr)
			}
			params.Logger.Info("Connected to Redis", slog.String("addr", cfg.Addr), slog.Int("db", cfg.DB))

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// redisFactory namespaces keys as <prefix>session:<sessionID>:<key>.
type redisFactory struct {
	client redisClient
	prefix string
	ttl    time.Duration
}

// NewRedisFactory creates an AuthStorageFactory shared by every replica.
// Items expire after ttl so abandoned sessions do not accumulate.
func NewRedisFactory(client *redis.Client, cfg *config.Config) service.AuthStorageFactory {
	prefix := defaultKeyPrefix
	if cfg.Redis != nil && cfg.Redis.KeyPrefix != "" {
		prefix = cfg.Redis.KeyPrefix
	}

	return newRedisFactory(client, prefix, cfg.Auth.TokenLifetime())
}

func newRedisFactory(client redisClient, prefix string, ttl time.Duration) *redisFactory {
	return &redisFactory{client: client, prefix: prefix, ttl: ttl}
}

func (f *redisFactory) ForSession(sessionID string) service.AuthStorage {
	return &redisStorage{client: f.client, prefix: f.prefix + "session:" + sessionID + ":", ttl: f.ttl}
}

type redisStorage struct {
	client redisClient
	prefix string
	ttl    time.Duration
}

func (s *redisStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "redis get %s", key)
	}

	return value, true, nil
}

func (s *redisStorage) SetItem(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, s.ttl).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", key)
	}

	return nil
}

func (s *redisStorage) RemoveItem(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Wrapf(err, "redis del %s", key)
	}

	return nil
}

package cache

import (
	"context"
	"strings"

	"github.com/matzehuels/qrsvg/pkg/errors"
)

// Backend names a cache implementation.
type Backend string

const (
	BackendFile  Backend = "file"
	BackendRedis Backend = "redis"
	BackendMongo Backend = "mongo"
	BackendNone  Backend = "none"
)

// Config selects and configures a backend. It maps onto the [cache] section
// of the configuration file.
type Config struct {
	Backend         Backend `toml:"backend"`
	Dir             string  `toml:"dir"`
	RedisURL        string  `toml:"redis_url"`
	Prefix          string  `toml:"prefix"`
	MongoURI        string  `toml:"mongo_uri"`
	MongoDatabase   string  `toml:"mongo_database"`
	MongoCollection string  `toml:"mongo_collection"`
}

// Open builds the configured backend. An empty backend selects the file
// cache when Dir is set and NullCache otherwise.
func Open(ctx context.Context, cfg Config) (Cache, error) {
	backend := Backend(strings.ToLower(string(cfg.Backend)))
	if backend == "" {
		backend = BackendNone
		if cfg.Dir != "" {
			backend = BackendFile
		}
	}

	switch backend {
	case BackendNone:
		return NewNullCache(), nil
	case BackendFile:
		if cfg.Dir == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "cache.dir is required for the file backend")
		}
		c, err := NewFileCache(cfg.Dir)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeCache, err, "open file cache")
		}
		return c, nil
	case BackendRedis:
		if cfg.RedisURL == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "cache.redis_url is required for the redis backend")
		}
		c, err := OpenRedis(ctx, cfg.RedisURL, cfg.Prefix)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeCache, err, "open redis cache")
		}
		return c, nil
	case BackendMongo:
		if cfg.MongoURI == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "cache.mongo_uri is required for the mongo backend")
		}
		c, err := OpenMongo(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeCache, err, "open mongo cache")
		}
		return c, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q (must be one of: file, redis, mongo, none)", cfg.Backend)
}

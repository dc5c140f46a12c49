// Package cache stores rendered SVG documents keyed by their inputs.
//
// # Backends
//
//   - [FileCache]: JSON entries under a directory, used by the CLI.
//   - [RedisCache]: a shared cache for server deployments.
//   - [MongoCache]: a document-store cache with a TTL index.
//   - [NullCache]: stores nothing; used when caching is disabled.
//
// # Keys
//
// A [Keyer] derives cache keys from the formatted payload and every render
// option that affects output, so two requests share an entry only when they
// would produce byte-identical documents. [ScopedKeyer] adds a prefix for
// namespace isolation.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long a rendered document stays cached.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with per-entry expiry.
// A zero ttl stores the entry without expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by backends that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// Keyer derives cache keys.
type Keyer interface {
	ArtifactKey(payload string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts lists the inputs, besides the payload, that change a
// rendered document.
type ArtifactKeyOpts struct {
	ECC             string  `json:"ecc"`
	Margin          int     `json:"margin"`
	Scale           float64 `json:"scale"`
	Foreground      string  `json:"fg"`
	Background      string  `json:"bg"`
	DataStyle       string  `json:"data"`
	BorderStyle     string  `json:"border"`
	InteriorStyle   string  `json:"interior"`
	RingStrokeWidth float64 `json:"ring"`
	ShapeRendering  string  `json:"rendering"`
}

// DefaultKeyer hashes every key component.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "svg:<sha256>" over the payload and options.
func (DefaultKeyer) ArtifactKey(payload string, opts ArtifactKeyOpts) string {
	return hashKey("svg", Hash([]byte(payload)), opts)
}

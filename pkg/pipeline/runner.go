package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/qrsvg/pkg/cache"
	"github.com/matzehuels/qrsvg/pkg/observability"
)

const keyTypeSVG = "svg"

// Runner executes pipelines with caching.
//
// The Runner holds no per-request state; one Runner may serve many
// goroutines.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil keyer selects DefaultKeyer, a nil cache
// disables caching and a nil logger selects log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute validates opts and runs format → encode → render, consulting the
// cache before encoding. Cache failures are logged and never fail the run.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()

	plan, err := opts.Plan()
	observability.Pipeline().OnFormatComplete(ctx, opts.ContentType, payloadLen(plan), err)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("formatted payload", "type", plan.Type, "bytes", len(plan.Payload))

	key := r.Keyer.ArtifactKey(plan.Payload, plan.ArtifactKeyOpts())
	result := &Result{Payload: plan.Payload}

	if !opts.Refresh {
		if data, ok := r.lookup(ctx, key); ok {
			result.SVG = data
			result.CacheHit = true
			result.Stats.Total = time.Since(start)
			r.Logger.Debug("cache hit", "key", key)
			return result, nil
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	encodeStart := time.Now()
	m, err := Encode(ctx, plan.Payload, plan.ECC)
	if err != nil {
		return nil, err
	}
	result.Size = m.Size()
	result.Stats.EncodeTime = time.Since(encodeStart)

	renderStart := time.Now()
	doc, stats, err := Render(ctx, m, plan.Config)
	if err != nil {
		return nil, err
	}
	result.SVG = doc
	result.Render = stats
	result.Stats.RenderTime = time.Since(renderStart)

	r.store(ctx, key, doc)
	result.Stats.Total = time.Since(start)

	r.Logger.Info("rendered",
		"size", result.Size,
		"drawn", stats.Drawn,
		"bytes", len(doc),
		"duration", result.Stats.Total)
	return result, nil
}

func (r *Runner) lookup(ctx context.Context, key string) ([]byte, bool) {
	hooks := observability.Cache()
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		hooks.OnCacheError(ctx, keyTypeSVG, "get", err)
		r.Logger.Warn("cache lookup failed", "err", err)
		return nil, false
	}
	if !hit {
		hooks.OnCacheMiss(ctx, keyTypeSVG)
		return nil, false
	}
	hooks.OnCacheHit(ctx, keyTypeSVG)
	return data, true
}

func (r *Runner) store(ctx context.Context, key string, data []byte) {
	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		observability.Cache().OnCacheError(ctx, keyTypeSVG, "set", err)
		r.Logger.Warn("cache store failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyTypeSVG, len(data))
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func payloadLen(p *Plan) int {
	if p == nil {
		return 0
	}
	return len(p.Payload)
}

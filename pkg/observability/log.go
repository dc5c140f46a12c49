package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level, errors at warn.
// It implements PipelineHooks, CacheHooks and HTTPHooks.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log through logger, prefixed "hooks".
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{logger: logger.WithPrefix("hooks")}
}

func (h *LogHooks) OnFormatComplete(_ context.Context, contentType string, payloadBytes int, err error) {
	h.done(err, "format", "type", contentType, "bytes", payloadBytes)
}

func (h *LogHooks) OnEncodeStart(_ context.Context, ecc string) {
	h.logger.Debug("encode start", "ecc", ecc)
}

func (h *LogHooks) OnEncodeComplete(_ context.Context, ecc string, size int, d time.Duration, err error) {
	h.done(err, "encode", "ecc", ecc, "size", size, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, size int) {
	h.logger.Debug("render start", "size", size)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, size, drawn, skipped int, d time.Duration, err error) {
	h.done(err, "render", "size", size, "drawn", drawn, "skipped", skipped, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "key", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "key", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "key", keyType, "bytes", size)
}

func (h *LogHooks) OnCacheError(_ context.Context, keyType, op string, err error) {
	h.logger.Warn("cache error", "key", keyType, "op", op, "err", err)
}

func (h *LogHooks) OnRequest(_ context.Context, method, route string) {
	h.logger.Debug("request", "method", method, "route", route)
}

func (h *LogHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "route", route, "status", status, "duration", d)
}

func (h *LogHooks) OnError(_ context.Context, method, route string, err error) {
	h.logger.Warn("request failed", "method", method, "route", route, "err", err)
}

func (h *LogHooks) done(err error, stage string, kv ...any) {
	if err != nil {
		h.logger.Warn(stage+" failed", append(kv, "err", err)...)
		return
	}
	h.logger.Debug(stage+" done", kv...)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)

package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/qrsvg/pkg/errors"
	"github.com/matzehuels/qrsvg/pkg/observability"
	"github.com/matzehuels/qrsvg/pkg/qr"
	"github.com/matzehuels/qrsvg/pkg/render"
)

// Encode runs the encoder stage and emits its hooks.
func Encode(ctx context.Context, payload string, level qr.ECCLevel) (qr.Bitmap, error) {
	hooks := observability.Pipeline()
	hooks.OnEncodeStart(ctx, level.String())
	start := time.Now()
	m, err := qr.Encode(payload, level)
	hooks.OnEncodeComplete(ctx, level.String(), m.Size(), time.Since(start), err)
	return m, err
}

// Render runs the render stage and emits its hooks. An empty document is
// reported as an internal error.
func Render(ctx context.Context, m qr.Matrix, cfg render.Config) ([]byte, render.Stats, error) {
	hooks := observability.Pipeline()
	size := 0
	if m != nil {
		size = m.Size()
	}
	hooks.OnRenderStart(ctx, size)
	start := time.Now()

	doc, stats := render.RenderWithStats(m, cfg)
	var err error
	if doc == "" {
		err = errors.New(errors.ErrCodeInternal, "renderer produced no document (matrix size %d)", size)
	}
	hooks.OnRenderComplete(ctx, size, stats.Drawn, stats.Skipped, time.Since(start), err)
	if err != nil {
		return nil, stats, err
	}
	return []byte(doc), stats, nil
}

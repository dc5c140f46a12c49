// Package pipeline runs the format → encode → render pipeline shared by the
// CLI and the HTTP API.
//
// # Stages
//
//  1. Format: build the payload string from a content type and its fields.
//  2. Encode: turn the payload into a module matrix.
//  3. Render: draw the matrix as a styled SVG document.
//
// Validation happens up front in [Options.Plan], so a request either fails
// before any work is done or runs to completion.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    ContentType: "url",
//	    Content:     content.Config{URL: "example.com"},
//	    Render:      render.Options{DataStyle: "circle"},
//	})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("qr.svg", result.SVG, 0o644)
package pipeline

import (
	"time"

	"github.com/matzehuels/qrsvg/pkg/cache"
	"github.com/matzehuels/qrsvg/pkg/content"
	"github.com/matzehuels/qrsvg/pkg/errors"
	"github.com/matzehuels/qrsvg/pkg/qr"
	"github.com/matzehuels/qrsvg/pkg/render"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options is one render request. It supports JSON for API requests and TOML
// for the CLI configuration file.
type Options struct {
	ContentType string         `json:"type,omitempty" toml:"type"`
	Content     content.Config `json:"content" toml:"content"`
	ECC         string         `json:"ecc,omitempty" toml:"ecc"`
	Render      render.Options `json:"render" toml:"render"`

	// Refresh skips the cache lookup but still stores the result.
	Refresh bool `json:"refresh,omitempty" toml:"-"`
}

// Plan is a validated request, ready to execute.
type Plan struct {
	Type    content.Type
	Payload string
	ECC     qr.ECCLevel
	Config  render.Config
}

// Plan formats the payload and resolves every option. It does not modify o.
func (o Options) Plan() (*Plan, error) {
	t, err := content.ParseType(o.ContentType)
	if err != nil {
		return nil, err
	}
	payload, err := content.Format(t, o.Content)
	if err != nil {
		return nil, err
	}
	if err := errors.ValidatePayload(payload); err != nil {
		return nil, err
	}
	level, err := qr.ParseECCLevel(o.ECC)
	if err != nil {
		return nil, err
	}
	cfg, err := o.Render.Resolve()
	if err != nil {
		return nil, err
	}
	return &Plan{Type: t, Payload: payload, ECC: level, Config: cfg}, nil
}

// ArtifactKeyOpts returns the cache key components for p.
func (p *Plan) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	o := p.Config.Options()
	return cache.ArtifactKeyOpts{
		ECC:             p.ECC.String(),
		Margin:          p.Config.Margin,
		Scale:           p.Config.Scale,
		Foreground:      p.Config.Foreground,
		Background:      p.Config.Background,
		DataStyle:       o.DataStyle,
		BorderStyle:     o.BorderStyle,
		InteriorStyle:   o.InteriorStyle,
		RingStrokeWidth: p.Config.RingStrokeWidth,
		ShapeRendering:  p.Config.ShapeRendering,
	}
}

// =============================================================================
// Result
// =============================================================================

// Result is the output of a pipeline run.
type Result struct {
	// Payload is the formatted string that was encoded.
	Payload string

	// SVG is the rendered document.
	SVG []byte

	// Size is the matrix side length in modules; zero on a cache hit.
	Size int

	// Render holds walk statistics; zero on a cache hit.
	Render render.Stats

	// CacheHit reports whether SVG came from the cache.
	CacheHit bool

	// Stats holds stage timings.
	Stats Stats
}

// Stats contains pipeline timings.
type Stats struct {
	EncodeTime time.Duration
	RenderTime time.Duration
	Total      time.Duration
}

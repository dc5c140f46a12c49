package render

import (
	"github.com/matzehuels/qrsvg/pkg/qr"
	"github.com/matzehuels/qrsvg/pkg/shape"
	"github.com/matzehuels/qrsvg/pkg/svg"
)

// Stats describes one render pass.
type Stats struct {
	// Size is the matrix side length in modules.
	Size int
	// Visited counts dark modules reached by the module walk.
	Visited int
	// Drawn counts strategy invocations, per module or per finder.
	Drawn int
	// Skipped counts dark modules whose region style resolved to nothing.
	Skipped int
}

// Render returns the SVG document for m, or "" when m is nil, smaller than
// qr.MinSize, or cfg is unresolved.
func Render(m qr.Matrix, cfg Config) string {
	doc, _ := RenderWithStats(m, cfg)
	return doc
}

// RenderWithStats is Render plus walk statistics.
func RenderWithStats(m qr.Matrix, cfg Config) (string, Stats) {
	if m == nil || !cfg.resolved {
		return "", Stats{}
	}
	size := m.Size()
	if size < qr.MinSize {
		return "", Stats{Size: size}
	}

	w := &walker{
		m:     m,
		cfg:   cfg,
		size:  size,
		b:     newBuilder(size, cfg),
		stats: Stats{Size: size},
	}
	w.drawFinders()
	w.drawModules()
	return w.b.Build(), w.stats
}

// LayerName returns the builder layer that holds region's primitives.
func LayerName(region qr.Region) string {
	return region.String()
}

func newBuilder(size int, cfg Config) *svg.Builder {
	extent := float64(size + 2*cfg.Margin)
	b := svg.NewBuilder().
		SetViewport(svg.ViewBox{Width: extent, Height: extent}, cfg.ShapeRendering).
		SetBackground(cfg.Background).
		SetPrimaryColor(cfg.Foreground)
	for _, region := range qr.Regions {
		b.RegisterSolidLayer(LayerName(region))
	}
	for _, region := range qr.Regions {
		b.RegisterPathLayer(LayerName(region))
	}
	return b
}

type walker struct {
	m     qr.Matrix
	cfg   Config
	size  int
	b     *svg.Builder
	stats Stats
}

func (w *walker) context(region qr.Region, p qr.Point) shape.Context {
	return shape.Context{
		Layer:           LayerName(region),
		Point:           p,
		Margin:          float64(w.cfg.Margin),
		Radius:          w.cfg.Radius(),
		Color:           w.cfg.Foreground,
		Size:            w.size,
		RingStrokeWidth: w.cfg.RingStrokeWidth,
	}
}

// drawFinders runs finder-scope styles once per anchor, interior before
// border.
func (w *walker) drawFinders() {
	for _, region := range []qr.Region{qr.RegionFinderInterior, qr.RegionFinderBorder} {
		s, ok := shape.Resolve(w.cfg.Style(region))
		if !ok || s.Scope != shape.ScopeFinder {
			continue
		}
		for _, anchor := range qr.FinderAnchors(w.size) {
			s.Draw(w.b, w.context(region, anchor))
			w.stats.Drawn++
		}
	}
}

// drawModules visits dark modules row by row and draws module-scope styles.
func (w *walker) drawModules() {
	var strategies [len(qr.Regions)]shape.Strategy
	var usable [len(qr.Regions)]bool
	for _, region := range qr.Regions {
		strategies[region], usable[region] = shape.Resolve(w.cfg.Style(region))
	}

	for y := 0; y < w.size; y++ {
		for x := 0; x < w.size; x++ {
			if !w.m.Module(x, y) {
				continue
			}
			w.stats.Visited++
			p := qr.Point{X: x, Y: y}
			region := qr.Classify(p, w.size)
			s := strategies[region]
			if !usable[region] {
				w.stats.Skipped++
				continue
			}
			if s.Scope != shape.ScopeModule {
				continue
			}
			c := w.context(region, p)
			c.Neighbors = qr.ProbeNeighbors(w.m, p)
			s.Draw(w.b, c)
			w.stats.Drawn++
		}
	}
}

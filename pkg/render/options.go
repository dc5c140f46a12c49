package render

import (
	"strings"

	"github.com/matzehuels/qrsvg/pkg/errors"
	"github.com/matzehuels/qrsvg/pkg/qr"
	"github.com/matzehuels/qrsvg/pkg/shape"
	"github.com/matzehuels/qrsvg/pkg/svg"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultMargin is the quiet zone in modules.
	DefaultMargin = 4

	// DefaultScale is the module scale factor; circle radius is Scale/2.
	DefaultScale = 1.0

	// DefaultForeground is the fill of every region layer.
	DefaultForeground = "#000000"

	// DefaultBackground is the fill of the background rectangle.
	DefaultBackground = "#fff"

	// DefaultRingStrokeWidth is the bagel-border stroke width.
	DefaultRingStrokeWidth = shape.DefaultRingStrokeWidth

	// DefaultShapeRendering is the root shape-rendering hint.
	DefaultShapeRendering = svg.RenderCrispEdges

	// MaxMargin bounds the quiet zone.
	MaxMargin = 64
)

// DefaultStyle is used for every region left unset.
const DefaultStyle = shape.StyleSquare

var validShapeRendering = map[string]bool{
	svg.RenderCrispEdges:         true,
	svg.RenderGeometricPrecision: true,
	svg.RenderAuto:               true,
}

// =============================================================================
// Options - Caller Input
// =============================================================================

// Options is caller-supplied render configuration. Zero values mean "use the
// default"; Margin is a pointer so that an explicit zero margin survives.
// Style fields hold style names as accepted by shape.ParseStyle.
type Options struct {
	Margin          *int    `json:"margin,omitempty" toml:"margin"`
	Scale           float64 `json:"scale,omitempty" toml:"scale"`
	Foreground      string  `json:"foreground,omitempty" toml:"foreground"`
	Background      string  `json:"background,omitempty" toml:"background"`
	DataStyle       string  `json:"data_style,omitempty" toml:"data_style"`
	BorderStyle     string  `json:"border_style,omitempty" toml:"border_style"`
	InteriorStyle   string  `json:"interior_style,omitempty" toml:"interior_style"`
	RingStrokeWidth float64 `json:"ring_stroke_width,omitempty" toml:"ring_stroke_width"`
	ShapeRendering  string  `json:"shape_rendering,omitempty" toml:"shape_rendering"`
}

// Margin returns a pointer to m for use in Options literals.
func Margin(m int) *int {
	return &m
}

// =============================================================================
// Config - Resolved Configuration
// =============================================================================

// Config is a fully resolved render configuration. Obtain one from
// Options.Resolve or DefaultConfig; the zero value renders nothing.
type Config struct {
	Margin          int
	Scale           float64
	Foreground      string
	Background      string
	RingStrokeWidth float64
	ShapeRendering  string

	styles   [len(qr.Regions)]shape.Style
	resolved bool
}

// DefaultConfig returns the configuration produced by resolving empty Options.
func DefaultConfig() Config {
	cfg, _ := Options{}.Resolve()
	return cfg
}

// Style returns the style selected for region.
func (c Config) Style(region qr.Region) shape.Style {
	if int(region) >= len(c.styles) {
		return shape.StyleNone
	}
	return c.styles[region]
}

// WithStyle returns a copy of c using style for region. The pairing is not
// validated; an unusable style is skipped at render time.
func (c Config) WithStyle(region qr.Region, style shape.Style) Config {
	if int(region) < len(c.styles) {
		c.styles[region] = style
	}
	return c
}

// Radius is the circle radius in module units.
func (c Config) Radius() float64 {
	return 0.5 * c.Scale
}

// Resolved reports whether c came from Options.Resolve.
func (c Config) Resolved() bool {
	return c.resolved
}

// Options converts c back into fully populated Options.
func (c Config) Options() Options {
	return Options{
		Margin:          Margin(c.Margin),
		Scale:           c.Scale,
		Foreground:      c.Foreground,
		Background:      c.Background,
		DataStyle:       c.Style(qr.RegionData).String(),
		BorderStyle:     c.Style(qr.RegionFinderBorder).String(),
		InteriorStyle:   c.Style(qr.RegionFinderInterior).String(),
		RingStrokeWidth: c.RingStrokeWidth,
		ShapeRendering:  c.ShapeRendering,
	}
}

// =============================================================================
// Resolution
// =============================================================================

// Resolve applies defaults and validates o. The receiver is not modified.
func (o Options) Resolve() (Config, error) {
	cfg := Config{
		Margin:          DefaultMargin,
		Scale:           DefaultScale,
		Foreground:      DefaultForeground,
		Background:      DefaultBackground,
		RingStrokeWidth: DefaultRingStrokeWidth,
		ShapeRendering:  DefaultShapeRendering,
	}

	if o.Margin != nil {
		if *o.Margin < 0 || *o.Margin > MaxMargin {
			return Config{}, errors.New(errors.ErrCodeInvalidInput, "margin must be between 0 and %d, got %d", MaxMargin, *o.Margin)
		}
		cfg.Margin = *o.Margin
	}
	if o.Scale != 0 {
		if o.Scale < 0 || o.Scale > 1 {
			return Config{}, errors.New(errors.ErrCodeInvalidInput, "scale must be in (0, 1], got %g", o.Scale)
		}
		cfg.Scale = o.Scale
	}
	if o.RingStrokeWidth != 0 {
		if o.RingStrokeWidth < 0 || o.RingStrokeWidth > qr.FinderSize {
			return Config{}, errors.New(errors.ErrCodeInvalidInput, "ring stroke width must be in (0, %d], got %g", qr.FinderSize, o.RingStrokeWidth)
		}
		cfg.RingStrokeWidth = o.RingStrokeWidth
	}
	if o.ShapeRendering != "" {
		if !validShapeRendering[o.ShapeRendering] {
			return Config{}, errors.New(errors.ErrCodeInvalidInput,
				"invalid shape rendering %q (must be one of: crispEdges, geometricPrecision, auto)", o.ShapeRendering)
		}
		cfg.ShapeRendering = o.ShapeRendering
	}

	var err error
	if cfg.Foreground, err = resolveColor(o.Foreground, DefaultForeground); err != nil {
		return Config{}, err
	}
	if cfg.Background, err = resolveColor(o.Background, DefaultBackground); err != nil {
		return Config{}, err
	}

	names := map[qr.Region]string{
		qr.RegionFinderInterior: o.InteriorStyle,
		qr.RegionFinderBorder:   o.BorderStyle,
		qr.RegionData:           o.DataStyle,
	}
	for _, region := range qr.Regions {
		style, err := resolveStyle(region, names[region])
		if err != nil {
			return Config{}, err
		}
		cfg.styles[region] = style
	}

	cfg.resolved = true
	return cfg, nil
}

func resolveColor(s, def string) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return def, nil
	}
	if err := ValidateColor(v); err != nil {
		return "", err
	}
	return v, nil
}

func resolveStyle(region qr.Region, name string) (shape.Style, error) {
	if strings.TrimSpace(name) == "" {
		return DefaultStyle, nil
	}
	style, err := shape.ParseStyle(name)
	if err != nil {
		return shape.StyleNone, err
	}
	if err := shape.Validate(region, style); err != nil {
		return shape.StyleNone, err
	}
	return style, nil
}

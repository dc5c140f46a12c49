package shape

import "github.com/matzehuels/qrsvg/pkg/svg"

// Finder geometry in module units, relative to the finder anchor.
const (
	finderSize         = 7
	finderCenterOffset = 3
	finderInnerOffset  = 2
	finderInnerSize    = 3
)

const (
	moduleSize          = 1.0
	cornerRadius        = 0.5
	insideCircleRadius  = 1.5
	bagelRingRadius     = 3.0
	squircleOuterRadius = 2.0
	squircleThickness   = 1.0
	squircleInnerRadius = 1.0
	cornerflowThickness = 1.1
	cornerflowRadius    = 1.5
)

// DefaultRingStrokeWidth is used by bagel-border when the context carries no
// positive stroke width.
const DefaultRingStrokeWidth = 1.0

// DrawFunc emits the primitives for one module or one finder into b.
type DrawFunc func(b *svg.Builder, c Context)

// Strategy pairs a drawing algorithm with how often it runs.
type Strategy struct {
	Style Style
	Scope Scope
	Draw  DrawFunc
}

var strategies = [styleCount]Strategy{
	StyleSquare:           {StyleSquare, ScopeModule, drawSquare},
	StyleCircle:           {StyleCircle, ScopeModule, drawCircle},
	StyleTriangle:         {StyleTriangle, ScopeModule, drawTriangle},
	StyleDiamond:          {StyleDiamond, ScopeModule, drawDiamond},
	StyleRoundedSquare:    {StyleRoundedSquare, ScopeModule, drawRoundedSquare},
	StyleCircleInside:     {StyleCircleInside, ScopeFinder, drawCircleInside},
	StyleDiamondInside:    {StyleDiamondInside, ScopeFinder, drawDiamondInside},
	StyleSquircleInside:   {StyleSquircleInside, ScopeFinder, drawSquircleInside},
	StyleCornerflowInside: {StyleCornerflowInside, ScopeFinder, drawCornerflowInside},
	StyleBagelBorder:      {StyleBagelBorder, ScopeFinder, drawBagelBorder},
	StyleSquircleBorder:   {StyleSquircleBorder, ScopeFinder, drawSquircleBorder},
	StyleCornerflowBorder: {StyleCornerflowBorder, ScopeFinder, drawCornerflowBorder},
}

// Resolve returns the strategy for style. It reports false for StyleNone and
// for values outside the known set.
func Resolve(style Style) (Strategy, bool) {
	if style >= styleCount || strategies[style].Draw == nil {
		return Strategy{}, false
	}
	return strategies[style], true
}

// ScopeOf returns the scope of style; unknown styles report ScopeModule.
func ScopeOf(style Style) Scope {
	if s, ok := Resolve(style); ok {
		return s.Scope
	}
	return ScopeModule
}

func drawSquare(b *svg.Builder, c Context) {
	x, y := c.origin()
	b.AddRect(c.Layer, x, y, moduleSize, c.Color)
}

func drawCircle(b *svg.Builder, c Context) {
	x, y := c.origin()
	b.AddCircle(c.Layer, x+moduleSize/2, y+moduleSize/2, c.Radius, c.Color)
}

func drawTriangle(b *svg.Builder, c Context) {
	x, y := c.origin()
	b.AddPolygon(c.Layer, []svg.Vec{
		{X: x + moduleSize/2, Y: y},
		{X: x, Y: y + moduleSize},
		{X: x + moduleSize, Y: y + moduleSize},
	}, c.Color)
}

func drawDiamond(b *svg.Builder, c Context) {
	x, y := c.origin()
	b.AddPolygon(c.Layer, diamond(x, y, moduleSize), c.Color)
}

// drawRoundedSquare rounds a corner only where both neighbors touching it
// are absent, so runs of dark modules merge into one silhouette.
func drawRoundedSquare(b *svg.Builder, c Context) {
	x, y := c.origin()
	n := c.Neighbors
	corners := Corners{
		TopLeft:     cornerIf(!n.N && !n.W),
		TopRight:    cornerIf(!n.N && !n.E),
		BottomRight: cornerIf(!n.S && !n.E),
		BottomLeft:  cornerIf(!n.S && !n.W),
	}
	b.AddPath(c.Layer, CornerRectPath(x, y, moduleSize, moduleSize, corners).String(), c.Color)
}

func cornerIf(round bool) float64 {
	if round {
		return cornerRadius
	}
	return 0
}

func drawCircleInside(b *svg.Builder, c Context) {
	x, y := c.origin()
	center := finderCenterOffset + moduleSize/2
	b.AddCircle(c.Layer, x+center, y+center, insideCircleRadius, c.Color)
}

func drawDiamondInside(b *svg.Builder, c Context) {
	x, y := c.origin()
	b.AddPolygon(c.Layer, diamond(x+finderInnerOffset, y+finderInnerOffset, finderInnerSize), c.Color)
}

func drawSquircleInside(b *svg.Builder, c Context) {
	x, y := c.origin()
	d := RoundedRectPath(x+finderInnerOffset, y+finderInnerOffset, finderInnerSize, finderInnerSize, squircleInnerRadius)
	b.AddPath(c.Layer, d.String(), c.Color)
}

func drawCornerflowInside(b *svg.Builder, c Context) {
	x, y := c.origin()
	corners := Corners{TopLeft: cornerflowRadius, BottomRight: cornerflowRadius}
	d := CornerRectPath(x+finderInnerOffset, y+finderInnerOffset, finderInnerSize, finderInnerSize, corners)
	b.AddPath(c.Layer, d.String(), c.Color)
}

func drawBagelBorder(b *svg.Builder, c Context) {
	x, y := c.origin()
	width := c.RingStrokeWidth
	if width <= 0 {
		width = DefaultRingStrokeWidth
	}
	center := finderCenterOffset + moduleSize/2
	b.AddRing(c.Layer, x+center, y+center, bagelRingRadius, width, c.Color)
}

func drawSquircleBorder(b *svg.Builder, c Context) {
	x, y := c.origin()
	d := RingPath(x, y, finderSize, squircleThickness,
		Uniform(squircleOuterRadius), Uniform(squircleOuterRadius-squircleThickness))
	b.AddPath(c.Layer, d.String(), c.Color, svg.FillRuleEvenOdd, svg.FillRuleEvenOdd)
}

func drawCornerflowBorder(b *svg.Builder, c Context) {
	x, y := c.origin()
	outer := Corners{TopLeft: 1, BottomRight: 1}
	d := RingPath(x, y, finderSize, cornerflowThickness, outer, Corners{})
	b.AddPath(c.Layer, d.String(), c.Color, svg.FillRuleEvenOdd, svg.FillRuleEvenOdd)
}

func diamond(x, y, size float64) []svg.Vec {
	half := size / 2
	return []svg.Vec{
		{X: x + half, Y: y},
		{X: x + size, Y: y + half},
		{X: x + half, Y: y + size},
		{X: x, Y: y + half},
	}
}

package svg

import (
	"strconv"
	"strings"
)

// Shape-rendering hints accepted by SetViewport.
const (
	RenderCrispEdges         = "crispEdges"
	RenderGeometricPrecision = "geometricPrecision"
	RenderAuto               = "auto"
)

// FillRule is the value of a fill-rule or clip-rule attribute.
type FillRule string

const (
	FillRuleDefault FillRule = ""
	FillRuleNonZero FillRule = "nonzero"
	FillRuleEvenOdd FillRule = "evenodd"
)

// ViewBox is the SVG user coordinate system.
type ViewBox struct {
	MinX, MinY, Width, Height float64
}

// Vec is a point in user space.
type Vec struct {
	X, Y float64
}

type pathLayer struct {
	data     strings.Builder
	color    string
	fillRule FillRule
	clipRule FillRule
}

// Builder accumulates layered primitives. It is not safe for concurrent use;
// each render owns its own Builder.
type Builder struct {
	viewBox    ViewBox
	rendering  string
	background string
	primary    string

	solidOrder []string
	solid      map[string]*strings.Builder
	pathOrder  []string
	paths      map[string]*pathLayer
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		rendering: RenderCrispEdges,
		solid:     make(map[string]*strings.Builder),
		paths:     make(map[string]*pathLayer),
	}
}

// SetViewport sets the viewBox and shape-rendering hint. An empty rendering
// keeps crispEdges.
func (b *Builder) SetViewport(box ViewBox, rendering string) *Builder {
	b.viewBox = box
	if rendering != "" {
		b.rendering = rendering
	}
	return b
}

// SetBackground sets the fill of the full-size background rectangle.
func (b *Builder) SetBackground(color string) *Builder {
	b.background = color
	return b
}

// SetPrimaryColor sets the fill used when a primitive is added without a color.
func (b *Builder) SetPrimaryColor(color string) *Builder {
	b.primary = color
	return b
}

// RegisterSolidLayer registers a primitive layer. Registering twice is a no-op.
func (b *Builder) RegisterSolidLayer(name string) *Builder {
	if _, ok := b.solid[name]; !ok {
		b.solid[name] = &strings.Builder{}
		b.solidOrder = append(b.solidOrder, name)
	}
	return b
}

// RegisterPathLayer registers a path layer. Registering twice is a no-op.
func (b *Builder) RegisterPathLayer(name string) *Builder {
	if _, ok := b.paths[name]; !ok {
		b.paths[name] = &pathLayer{}
		b.pathOrder = append(b.pathOrder, name)
	}
	return b
}

// AddRect appends a size×size square with its top-left corner at (x, y).
func (b *Builder) AddRect(layer string, x, y, size float64, color string) *Builder {
	if w, ok := b.solid[layer]; ok {
		w.WriteString(`<rect x="`)
		w.WriteString(num(x))
		w.WriteString(`" y="`)
		w.WriteString(num(y))
		w.WriteString(`" width="`)
		w.WriteString(num(size))
		w.WriteString(`" height="`)
		w.WriteString(num(size))
		w.WriteString(`" fill="`)
		w.WriteString(attr(b.colorOr(color)))
		w.WriteString(`"/>`)
	}
	return b
}

// AddCircle appends a filled circle.
func (b *Builder) AddCircle(layer string, cx, cy, r float64, color string) *Builder {
	if w, ok := b.solid[layer]; ok {
		w.WriteString(`<circle cx="`)
		w.WriteString(num(cx))
		w.WriteString(`" cy="`)
		w.WriteString(num(cy))
		w.WriteString(`" r="`)
		w.WriteString(num(r))
		w.WriteString(`" fill="`)
		w.WriteString(attr(b.colorOr(color)))
		w.WriteString(`"/>`)
	}
	return b
}

// AddRing appends an unfilled circle stroked with the given width.
func (b *Builder) AddRing(layer string, cx, cy, r, strokeWidth float64, color string) *Builder {
	if w, ok := b.solid[layer]; ok {
		w.WriteString(`<circle cx="`)
		w.WriteString(num(cx))
		w.WriteString(`" cy="`)
		w.WriteString(num(cy))
		w.WriteString(`" r="`)
		w.WriteString(num(r))
		w.WriteString(`" fill="none" stroke="`)
		w.WriteString(attr(b.colorOr(color)))
		w.WriteString(`" stroke-width="`)
		w.WriteString(num(strokeWidth))
		w.WriteString(`"/>`)
	}
	return b
}

// AddPolygon appends a filled polygon.
func (b *Builder) AddPolygon(layer string, points []Vec, color string) *Builder {
	if w, ok := b.solid[layer]; ok {
		w.WriteString(`<polygon points="`)
		for i, p := range points {
			if i > 0 {
				w.WriteByte(' ')
			}
			w.WriteString(num(p.X))
			w.WriteByte(',')
			w.WriteString(num(p.Y))
		}
		w.WriteString(`" fill="`)
		w.WriteString(attr(b.colorOr(color)))
		w.WriteString(`"/>`)
	}
	return b
}

// AddPath appends path data to a path layer, registering it when absent.
// The layer takes the color and rules of its most recent append; rules are
// the fill rule followed by the clip rule.
func (b *Builder) AddPath(layer, d, color string, rules ...FillRule) *Builder {
	b.RegisterPathLayer(layer)
	p := b.paths[layer]
	p.data.WriteString(d)
	p.color = b.colorOr(color)
	p.fillRule, p.clipRule = FillRuleDefault, FillRuleDefault
	if len(rules) > 0 {
		p.fillRule = rules[0]
	}
	if len(rules) > 1 {
		p.clipRule = rules[1]
	}
	return b
}

// Build serializes the document. It only reads accumulated state, so calling
// it repeatedly returns identical output.
func (b *Builder) Build() string {
	var sb strings.Builder
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="`)
	sb.WriteString(num(b.viewBox.MinX))
	sb.WriteByte(' ')
	sb.WriteString(num(b.viewBox.MinY))
	sb.WriteByte(' ')
	sb.WriteString(num(b.viewBox.Width))
	sb.WriteByte(' ')
	sb.WriteString(num(b.viewBox.Height))
	sb.WriteString(`" shape-rendering="`)
	sb.WriteString(attr(b.rendering))
	sb.WriteString(`">`)
	sb.WriteString(`<rect width="100%" height="100%" fill="`)
	sb.WriteString(attr(b.background))
	sb.WriteString(`"/>`)

	for _, name := range b.solidOrder {
		sb.WriteString(b.solid[name].String())
	}
	for _, name := range b.pathOrder {
		p := b.paths[name]
		if p.data.Len() == 0 {
			continue
		}
		sb.WriteString(`<path d="`)
		sb.WriteString(attr(p.data.String()))
		sb.WriteString(`" fill="`)
		sb.WriteString(attr(p.color))
		sb.WriteByte('"')
		if p.fillRule != FillRuleDefault {
			sb.WriteString(` fill-rule="`)
			sb.WriteString(string(p.fillRule))
			sb.WriteByte('"')
		}
		if p.clipRule != FillRuleDefault {
			sb.WriteString(` clip-rule="`)
			sb.WriteString(string(p.clipRule))
			sb.WriteByte('"')
		}
		sb.WriteString(`/>`)
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

// Len returns the number of bytes currently held by the named solid and path
// layers combined.
func (b *Builder) Len(layer string) int {
	n := 0
	if w, ok := b.solid[layer]; ok {
		n += w.Len()
	}
	if p, ok := b.paths[layer]; ok {
		n += p.data.Len()
	}
	return n
}

func (b *Builder) colorOr(color string) string {
	if color == "" {
		return b.primary
	}
	return color
}

// num formats v in its shortest round-trip decimal form.
func num(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var attrEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

func attr(s string) string {
	return attrEscaper.Replace(s)
}

package shape

import (
	"strings"
	"testing"

	"github.com/matzehuels/qrsvg/pkg/qr"
	"github.com/matzehuels/qrsvg/pkg/svg"
)

const testLayer = "layer"

func newBuilder() *svg.Builder {
	return svg.NewBuilder().
		SetViewport(svg.ViewBox{Width: 29, Height: 29}, "").
		SetBackground("#fff").
		SetPrimaryColor("#000").
		RegisterSolidLayer(testLayer)
}

func draw(t *testing.T, style Style, c Context) string {
	t.Helper()
	s, ok := Resolve(style)
	if !ok {
		t.Fatalf("Resolve(%v) failed", style)
	}
	b := newBuilder()
	if c.Layer == "" {
		c.Layer = testLayer
	}
	s.Draw(b, c)
	return b.Build()
}

func TestResolve(t *testing.T) {
	if _, ok := Resolve(StyleNone); ok {
		t.Error("Resolve(none) should report false")
	}
	if _, ok := Resolve(Style(77)); ok {
		t.Error("Resolve(77) should report false")
	}
	for _, s := range All()[1:] {
		got, ok := Resolve(s)
		if !ok {
			t.Errorf("Resolve(%v) reported false", s)
			continue
		}
		if got.Style != s {
			t.Errorf("Resolve(%v).Style = %v", s, got.Style)
		}
	}
}

func TestModuleStrategies(t *testing.T) {
	base := Context{Point: qr.Point{X: 2, Y: 3}, Margin: 4, Radius: 0.5, Color: "#111"}
	tests := []struct {
		style Style
		want  string
	}{
		{StyleSquare, `<rect x="6" y="7" width="1" height="1" fill="#111"/>`},
		{StyleCircle, `<circle cx="6.5" cy="7.5" r="0.5" fill="#111"/>`},
		{StyleTriangle, `<polygon points="6.5,7 6,8 7,8" fill="#111"/>`},
		{StyleDiamond, `<polygon points="6.5,7 7,7.5 6.5,8 6,7.5" fill="#111"/>`},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			doc := draw(t, tt.style, base)
			if !strings.Contains(doc, tt.want) {
				t.Errorf("missing %s in %s", tt.want, doc)
			}
		})
	}
}

func TestCircleUsesRadius(t *testing.T) {
	doc := draw(t, StyleCircle, Context{Radius: 0.25})
	if !strings.Contains(doc, `r="0.25"`) {
		t.Errorf("radius not applied: %s", doc)
	}
}

func TestRoundedSquareCorners(t *testing.T) {
	tests := []struct {
		name      string
		neighbors qr.Neighbors
		arcs      int
	}{
		{"isolated", qr.Neighbors{}, 4},
		{"east", qr.Neighbors{E: true}, 2},
		{"north and south", qr.Neighbors{N: true, S: true}, 0},
		{"north and east", qr.Neighbors{N: true, E: true}, 1},
		{"all", qr.Neighbors{N: true, E: true, S: true, W: true}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := svg.NewBuilder()
			s, _ := Resolve(StyleRoundedSquare)
			s.Draw(b, Context{Layer: testLayer, Neighbors: tt.neighbors, Color: "#000"})
			doc := b.Build()
			start := strings.Index(doc, `d="`)
			if start < 0 {
				t.Fatalf("no path in %s", doc)
			}
			d := doc[start+3:]
			d = d[:strings.Index(d, `"`)]
			if got := strings.Count(d, "A"); got != tt.arcs {
				t.Errorf("arcs = %d, want %d in %s", got, tt.arcs, d)
			}
		})
	}
}

func TestFinderStrategies(t *testing.T) {
	anchor := Context{Point: qr.Point{X: 14, Y: 0}, Margin: 4, Color: "#000"}
	tests := []struct {
		style Style
		want  []string
	}{
		{StyleCircleInside, []string{`<circle cx="21.5" cy="7.5" r="1.5" fill="#000"/>`}},
		{StyleDiamondInside, []string{`<polygon points="21.5,6 23,7.5 21.5,9 20,7.5" fill="#000"/>`}},
		{StyleBagelBorder, []string{`<circle cx="21.5" cy="7.5" r="3" fill="none" stroke="#000" stroke-width="1"/>`}},
		{StyleSquircleInside, []string{`d="M21 6H22A1 1 0 0 1 23 7`}},
		{StyleCornerflowInside, []string{`d="M21.5 6H23L23 6`}},
		{StyleSquircleBorder, []string{`d="M20 4H`, `fill-rule="evenodd" clip-rule="evenodd"`}},
		{StyleCornerflowBorder, []string{`d="M19 4H25L25 4`, `fill-rule="evenodd"`}},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			doc := draw(t, tt.style, anchor)
			for _, w := range tt.want {
				if !strings.Contains(doc, w) {
					t.Errorf("missing %s in %s", w, doc)
				}
			}
		})
	}
}

func TestBagelStrokeWidth(t *testing.T) {
	doc := draw(t, StyleBagelBorder, Context{RingStrokeWidth: 0.75})
	if !strings.Contains(doc, `stroke-width="0.75"`) {
		t.Errorf("custom stroke width not applied: %s", doc)
	}
}

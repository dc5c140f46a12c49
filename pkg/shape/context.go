package shape

import "github.com/matzehuels/qrsvg/pkg/qr"

// Context is everything a strategy needs to draw one module or one finder.
// For finder-scope styles Point is the finder anchor.
type Context struct {
	Layer           string
	Point           qr.Point
	Margin          float64
	Radius          float64
	Color           string
	Size            int
	Neighbors       qr.Neighbors
	RingStrokeWidth float64
}

// origin returns the top-left corner of Point in document space.
func (c Context) origin() (x, y float64) {
	return float64(c.Point.X) + c.Margin, float64(c.Point.Y) + c.Margin
}

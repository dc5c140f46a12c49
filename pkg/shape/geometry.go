package shape

import (
	"math"

	"github.com/matzehuels/qrsvg/pkg/svg"
)

// Corners holds one radius per rectangle corner.
type Corners struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// Uniform returns Corners with every radius set to r.
func Uniform(r float64) Corners {
	return Corners{r, r, r, r}
}

// RoundedRectPath returns a closed clockwise path for a rectangle whose
// corners all have radius r.
func RoundedRectPath(x, y, w, h, r float64) *svg.PathData {
	return CornerRectPath(x, y, w, h, Uniform(r))
}

// CornerRectPath returns a closed clockwise path for a rectangle with an
// independent radius per corner. Every radius is clamped to
// [0, min(w, h)/2]; a zero radius yields a square corner.
func CornerRectPath(x, y, w, h float64, c Corners) *svg.PathData {
	limit := math.Min(w, h) / 2
	tl := clampRadius(c.TopLeft, limit)
	tr := clampRadius(c.TopRight, limit)
	br := clampRadius(c.BottomRight, limit)
	bl := clampRadius(c.BottomLeft, limit)

	p := svg.NewPath().MoveTo(x+tl, y).HorizontalTo(x + w - tr)
	if tr > 0 {
		p.ArcTo(tr, x+w, y+tr)
	} else {
		p.LineTo(x+w, y)
	}
	p.VerticalTo(y + h - br)
	if br > 0 {
		p.ArcTo(br, x+w-br, y+h)
	} else {
		p.LineTo(x+w, y+h)
	}
	p.HorizontalTo(x + bl)
	if bl > 0 {
		p.ArcTo(bl, x, y+h-bl)
	} else {
		p.LineTo(x, y+h)
	}
	p.VerticalTo(y + tl)
	if tl > 0 {
		p.ArcTo(tl, x+tl, y)
	} else {
		p.LineTo(x, y)
	}
	return p.Close()
}

// RingPath returns outer followed by inner as one compound path; filled with
// the even-odd rule the inner rectangle becomes a hole.
func RingPath(x, y, size, thickness float64, outer, inner Corners) *svg.PathData {
	innerSize := size - 2*thickness
	return CornerRectPath(x, y, size, size, outer).
		Append(CornerRectPath(x+thickness, y+thickness, innerSize, innerSize, inner))
}

func clampRadius(r, limit float64) float64 {
	return math.Max(0, math.Min(r, limit))
}

package svg

import "strings"

// PathData builds SVG path data with absolute commands.
// All methods return the receiver for chaining.
type PathData struct {
	sb strings.Builder
}

// NewPath starts empty path data.
func NewPath() *PathData {
	return &PathData{}
}

// MoveTo starts a new subpath at (x, y).
func (p *PathData) MoveTo(x, y float64) *PathData {
	p.sb.WriteByte('M')
	p.pair(x, y)
	return p
}

// LineTo draws a straight segment to (x, y).
func (p *PathData) LineTo(x, y float64) *PathData {
	p.sb.WriteByte('L')
	p.pair(x, y)
	return p
}

// HorizontalTo draws a horizontal segment to x.
func (p *PathData) HorizontalTo(x float64) *PathData {
	p.sb.WriteByte('H')
	p.sb.WriteString(num(x))
	return p
}

// VerticalTo draws a vertical segment to y.
func (p *PathData) VerticalTo(y float64) *PathData {
	p.sb.WriteByte('V')
	p.sb.WriteString(num(y))
	return p
}

// ArcTo draws a clockwise circular arc of radius r ending at (x, y).
func (p *PathData) ArcTo(r, x, y float64) *PathData {
	p.sb.WriteByte('A')
	p.sb.WriteString(num(r))
	p.sb.WriteByte(' ')
	p.sb.WriteString(num(r))
	p.sb.WriteString(" 0 0 1 ")
	p.pair(x, y)
	return p
}

// Close closes the current subpath.
func (p *PathData) Close() *PathData {
	p.sb.WriteByte('Z')
	return p
}

// Append concatenates other's commands onto p, producing one compound path.
func (p *PathData) Append(other *PathData) *PathData {
	p.sb.WriteString(other.String())
	return p
}

// String returns the path data.
func (p *PathData) String() string {
	return p.sb.String()
}

func (p *PathData) pair(x, y float64) {
	p.sb.WriteString(num(x))
	p.sb.WriteByte(' ')
	p.sb.WriteString(num(y))
}

package qr

// MinSize is the side length of the smallest QR symbol (version 1).
// Below 14 the finder windows overlap; the renderer refuses anything
// smaller than a real symbol.
const MinSize = 21

// Matrix is a read-only square grid of modules.
type Matrix interface {
	// Size returns the side length in modules.
	Size() int
	// Module reports whether the module at (x, y) is dark.
	// Out-of-range coordinates report false.
	Module(x, y int) bool
}

// Point is a module coordinate.
type Point struct {
	X, Y int
}

// In reports whether p lies inside a size×size grid.
func (p Point) In(size int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < size && p.Y < size
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Bitmap is a Matrix backed by rows of booleans, indexed [y][x].
type Bitmap [][]bool

// Size implements Matrix.
func (b Bitmap) Size() int { return len(b) }

// Module implements Matrix.
func (b Bitmap) Module(x, y int) bool {
	if y < 0 || y >= len(b) || x < 0 || x >= len(b[y]) {
		return false
	}
	return b[y][x]
}

// Grid is a mutable Matrix, useful for tests and for callers that bring
// their own encoder.
type Grid struct {
	size    int
	modules []bool
}

// NewGrid returns an all-light grid of the given size.
func NewGrid(size int) *Grid {
	if size < 0 {
		size = 0
	}
	return &Grid{size: size, modules: make([]bool, size*size)}
}

// Size implements Matrix.
func (g *Grid) Size() int {
	if g == nil {
		return 0
	}
	return g.size
}

// Module implements Matrix.
func (g *Grid) Module(x, y int) bool {
	if !(Point{x, y}).In(g.size) {
		return false
	}
	return g.modules[y*g.size+x]
}

// Set marks the module at (x, y). Out-of-range writes are ignored.
func (g *Grid) Set(x, y int, on bool) *Grid {
	if (Point{x, y}).In(g.size) {
		g.modules[y*g.size+x] = on
	}
	return g
}

// Count returns the number of dark modules in m.
func Count(m Matrix) int {
	n := 0
	size := m.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if m.Module(x, y) {
				n++
			}
		}
	}
	return n
}

package qr

// Direction is one of the four orthogonal neighbor directions.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Offset returns the coordinate delta for d.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Neighbors records, per direction, whether the adjacent module is dark and
// belongs to the same region as the probed module.
type Neighbors struct {
	N, E, S, W bool
}

// SameRegionNeighbor reports whether the neighbor of p in direction d is
// inside the matrix, dark, and in the same region as p.
func SameRegionNeighbor(m Matrix, p Point, d Direction) bool {
	size := m.Size()
	n := p.Add(d.Offset())
	if !n.In(size) || !m.Module(n.X, n.Y) {
		return false
	}
	return Classify(n, size) == Classify(p, size)
}

// ProbeNeighbors evaluates SameRegionNeighbor in all four directions.
func ProbeNeighbors(m Matrix, p Point) Neighbors {
	return Neighbors{
		N: SameRegionNeighbor(m, p, North),
		E: SameRegionNeighbor(m, p, East),
		S: SameRegionNeighbor(m, p, South),
		W: SameRegionNeighbor(m, p, West),
	}
}

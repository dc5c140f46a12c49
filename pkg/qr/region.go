package qr

// FinderSize is the side length of a finder pattern window.
const FinderSize = 7

// Region is the structural role of a module.
type Region uint8

const (
	RegionFinderInterior Region = iota
	RegionFinderBorder
	RegionData
)

// Regions lists every region in layer order.
var Regions = [...]Region{RegionFinderInterior, RegionFinderBorder, RegionData}

var regionNames = [...]string{
	RegionFinderInterior: "finder-interior",
	RegionFinderBorder:   "finder-border",
	RegionData:           "data",
}

func (r Region) String() string {
	if int(r) < len(regionNames) {
		return regionNames[r]
	}
	return "unknown"
}

// FinderAnchors returns the top-left corners of the three finder windows in
// fixed order: top-left, top-right, bottom-left.
func FinderAnchors(size int) [3]Point {
	return [3]Point{
		{X: 0, Y: 0},
		{X: size - FinderSize, Y: 0},
		{X: 0, Y: size - FinderSize},
	}
}

// Classify returns the region of p in a symbol of the given size.
// It is pure; windows are tested in anchor order, so for sizes below 14,
// where windows overlap, the first matching anchor wins.
func Classify(p Point, size int) Region {
	for _, a := range FinderAnchors(size) {
		if !inWindow(p, a) {
			continue
		}
		onVertical := p.X == a.X || p.X == a.X+FinderSize-1
		onHorizontal := p.Y == a.Y || p.Y == a.Y+FinderSize-1
		if onVertical || onHorizontal {
			return RegionFinderBorder
		}
		return RegionFinderInterior
	}
	return RegionData
}

func inWindow(p, anchor Point) bool {
	return p.X >= anchor.X && p.X <= anchor.X+FinderSize-1 &&
		p.Y >= anchor.Y && p.Y <= anchor.Y+FinderSize-1
}

package shape

import (
	"strings"

	"github.com/matzehuels/qrsvg/pkg/errors"
	"github.com/matzehuels/qrsvg/pkg/qr"
)

// Style identifies a rendering algorithm.
type Style uint8

const (
	StyleNone Style = iota
	StyleSquare
	StyleCircle
	StyleTriangle
	StyleDiamond
	StyleRoundedSquare
	StyleCircleInside
	StyleDiamondInside
	StyleSquircleInside
	StyleCornerflowInside
	StyleBagelBorder
	StyleSquircleBorder
	StyleCornerflowBorder

	styleCount
)

var styleNames = [styleCount]string{
	StyleNone:             "none",
	StyleSquare:           "square",
	StyleCircle:           "circle",
	StyleTriangle:         "triangle",
	StyleDiamond:          "diamond",
	StyleRoundedSquare:    "rounded-square",
	StyleCircleInside:     "circle-inside",
	StyleDiamondInside:    "diamond-inside",
	StyleSquircleInside:   "squircle-inside",
	StyleCornerflowInside: "cornerflow-inside",
	StyleBagelBorder:      "bagel-border",
	StyleSquircleBorder:   "squircle-border",
	StyleCornerflowBorder: "cornerflow-border",
}

func (s Style) String() string {
	if s < styleCount {
		return styleNames[s]
	}
	return "unknown"
}

// ParseStyle resolves a style name. Matching ignores case, and underscores
// are accepted in place of dashes.
func ParseStyle(name string) (Style, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for s, n := range styleNames {
		if n == key {
			return Style(s), nil
		}
	}
	return StyleNone, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(text []byte) error {
	v, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Scope says how often a style draws.
type Scope uint8

const (
	// ScopeModule styles draw once per dark module.
	ScopeModule Scope = iota
	// ScopeFinder styles draw once per finder pattern.
	ScopeFinder
)

func (s Scope) String() string {
	if s == ScopeFinder {
		return "finder"
	}
	return "module"
}

var (
	moduleStyles = []Style{StyleSquare, StyleCircle, StyleDiamond, StyleRoundedSquare}

	regionStyles = map[qr.Region][]Style{
		qr.RegionData: append([]Style{StyleNone, StyleTriangle}, moduleStyles...),
		qr.RegionFinderBorder: append(append([]Style{StyleNone}, moduleStyles...),
			StyleBagelBorder, StyleSquircleBorder, StyleCornerflowBorder),
		qr.RegionFinderInterior: append(append([]Style{StyleNone}, moduleStyles...),
			StyleCircleInside, StyleDiamondInside, StyleSquircleInside, StyleCornerflowInside),
	}
)

// Supports reports whether style may be used for region.
func Supports(region qr.Region, style Style) bool {
	for _, s := range regionStyles[region] {
		if s == style {
			return true
		}
	}
	return false
}

// StylesFor returns the styles valid for region, StyleNone first.
func StylesFor(region qr.Region) []Style {
	out := make([]Style, len(regionStyles[region]))
	copy(out, regionStyles[region])
	return out
}

// All returns every style in declaration order.
func All() []Style {
	out := make([]Style, 0, styleCount)
	for s := StyleNone; s < styleCount; s++ {
		out = append(out, s)
	}
	return out
}

// Validate returns an INVALID_STYLE error when style is not allowed in region.
func Validate(region qr.Region, style Style) error {
	if style >= styleCount {
		return errors.New(errors.ErrCodeInvalidStyle, "unknown style %d", style)
	}
	if !Supports(region, style) {
		return errors.New(errors.ErrCodeInvalidStyle, "style %q is not supported for %s", style, region)
	}
	return nil
}

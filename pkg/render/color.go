package render

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/matzehuels/qrsvg/pkg/errors"
)

// Transparent is accepted wherever a color is.
const Transparent = "transparent"

// ParseColor accepts #rgb and #rrggbb hex colors and SVG color keywords.
func ParseColor(s string) (colorful.Color, error) {
	v := strings.TrimSpace(s)
	if strings.HasPrefix(v, "#") {
		c, err := colorful.Hex(v)
		if err != nil {
			return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid hex color %q", s)
		}
		return c, nil
	}
	if rgba, ok := colornames.Map[strings.ToLower(v)]; ok {
		c, _ := colorful.MakeColor(rgba)
		return c, nil
	}
	return colorful.Color{}, errors.New(errors.ErrCodeInvalidColor, "unknown color %q", s)
}

// ValidateColor reports whether s can be written as an SVG fill.
func ValidateColor(s string) error {
	if strings.EqualFold(strings.TrimSpace(s), Transparent) {
		return nil
	}
	_, err := ParseColor(s)
	return err
}

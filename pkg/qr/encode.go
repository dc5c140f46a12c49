package qr

import (
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/matzehuels/qrsvg/pkg/errors"
)

// ECCLevel is the error-correction strength passed through to the encoder.
type ECCLevel uint8

const (
	ECCLow ECCLevel = iota
	ECCMedium
	ECCQuartile
	ECCHigh
)

var eccNames = [...]string{
	ECCLow:      "low",
	ECCMedium:   "medium",
	ECCQuartile: "quartile",
	ECCHigh:     "high",
}

func (l ECCLevel) String() string {
	if int(l) < len(eccNames) {
		return eccNames[l]
	}
	return "unknown"
}

// ParseECCLevel accepts the level name or its single-letter form (L, M, Q, H).
// An empty string selects ECCLow.
func ParseECCLevel(s string) (ECCLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "l", "low":
		return ECCLow, nil
	case "m", "medium":
		return ECCMedium, nil
	case "q", "quartile":
		return ECCQuartile, nil
	case "h", "high":
		return ECCHigh, nil
	}
	return ECCLow, errors.New(errors.ErrCodeInvalidECC, "unknown error correction level %q (must be low, medium, quartile or high)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (l ECCLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *ECCLevel) UnmarshalText(text []byte) error {
	v, err := ParseECCLevel(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

func (l ECCLevel) recoveryLevel() qrcode.RecoveryLevel {
	switch l {
	case ECCMedium:
		return qrcode.Medium
	case ECCQuartile:
		return qrcode.High
	case ECCHigh:
		return qrcode.Highest
	}
	return qrcode.Low
}

// Encode builds the module matrix for text. The returned Bitmap carries no
// quiet zone.
func Encode(text string, level ECCLevel) (Bitmap, error) {
	q, err := qrcode.New(text, level.recoveryLevel())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncode, err, "encode %d byte payload", len(text))
	}
	q.DisableBorder = true
	return Bitmap(q.Bitmap()), nil
}

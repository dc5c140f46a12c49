// Package content builds QR payload strings for well-known structured
// formats: plain text, URLs, WiFi credentials, phone numbers, SMS and email.
//
// [Format] is the single entry point:
//
//	payload, err := content.Format(content.TypeWiFi, content.Config{
//	    SSID:     "Guest",
//	    Password: "hunter2",
//	})
//	// WIFI:T:WPA;S:Guest;P:hunter2;;
//
// An unknown [Type] is an error; it never falls back to plain text.
package content

import (
	"regexp"
	"strings"

	"github.com/matzehuels/qrsvg/pkg/errors"
)

// Type selects the payload format.
type Type string

const (
	TypeText  Type = "text"
	TypeURL   Type = "url"
	TypeWiFi  Type = "wifi"
	TypePhone Type = "phone"
	TypeSMS   Type = "sms"
	TypeEmail Type = "email"
)

// DefaultType is used when no type is given.
const DefaultType = TypeText

// Types lists every supported type.
var Types = []Type{TypeText, TypeURL, TypeWiFi, TypePhone, TypeSMS, TypeEmail}

var typeAliases = map[string]Type{
	"tel":    TypePhone,
	"smsto":  TypeSMS,
	"mail":   TypeEmail,
	"mailto": TypeEmail,
	"link":   TypeURL,
}

// ParseType resolves a type name, ignoring case. An empty name selects
// DefaultType.
func ParseType(s string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return DefaultType, nil
	}
	for _, t := range Types {
		if string(t) == key {
			return t, nil
		}
	}
	if t, ok := typeAliases[key]; ok {
		return t, nil
	}
	return "", errors.New(errors.ErrCodeInvalidContentType, "unknown content type %q (must be one of: text, url, wifi, phone, sms, email)", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// WiFiEncryption is the authentication type written into a WIFI payload.
type WiFiEncryption string

const (
	WiFiWPA    WiFiEncryption = "WPA"
	WiFiWEP    WiFiEncryption = "WEP"
	WiFiNoPass WiFiEncryption = "nopass"
)

// Config carries the fields of every payload type. Each type reads only the
// fields it needs.
type Config struct {
	Text string `json:"text,omitempty" toml:"text"`
	URL  string `json:"url,omitempty" toml:"url"`

	SSID       string         `json:"ssid,omitempty" toml:"ssid"`
	Password   string         `json:"password,omitempty" toml:"password"`
	Encryption WiFiEncryption `json:"encryption,omitempty" toml:"encryption"`
	Hidden     bool           `json:"hidden,omitempty" toml:"hidden"`

	Phone   string `json:"phone,omitempty" toml:"phone"`
	Message string `json:"message,omitempty" toml:"message"`

	Email   string `json:"email,omitempty" toml:"email"`
	Subject string `json:"subject,omitempty" toml:"subject"`
	Body    string `json:"body,omitempty" toml:"body"`
}

// Format returns the payload string for t.
func Format(t Type, cfg Config) (string, error) {
	switch t {
	case TypeText:
		return required(cfg.Text, "text", formatText)
	case TypeURL:
		return required(cfg.URL, "url", FormatURL)
	case TypeWiFi:
		if cfg.SSID == "" {
			return "", missing("ssid")
		}
		return FormatWiFi(cfg), nil
	case TypePhone:
		return required(cfg.Phone, "phone", FormatPhone)
	case TypeSMS:
		if cfg.Phone == "" {
			return "", missing("phone")
		}
		return FormatSMS(cfg.Phone, cfg.Message), nil
	case TypeEmail:
		if cfg.Email == "" {
			return "", missing("email")
		}
		return FormatEmail(cfg.Email, cfg.Subject, cfg.Body), nil
	}
	return "", errors.New(errors.ErrCodeInvalidContentType, "unknown content type %q", string(t))
}

func required(v, field string, f func(string) string) (string, error) {
	if v == "" {
		return "", missing(field)
	}
	return f(v), nil
}

func missing(field string) error {
	return errors.New(errors.ErrCodeInvalidInput, "%s is required", field)
}

func formatText(s string) string { return s }

var schemePattern = regexp.MustCompile(`^[a-zA-Z]+://`)

// FormatURL prepends https:// when u has no scheme.
func FormatURL(u string) string {
	if schemePattern.MatchString(u) {
		return u
	}
	return "https://" + u
}

var wifiEscaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	`"`, `\"`,
	`:`, `\:`,
)

// EscapeWiFi backslash-escapes the characters that delimit WIFI payload
// fields.
func EscapeWiFi(s string) string {
	return wifiEscaper.Replace(s)
}

// FormatWiFi returns WIFI:T:<enc>;S:<ssid>;[P:<pwd>;][H:true;];
// Encryption defaults to WPA.
func FormatWiFi(cfg Config) string {
	enc := cfg.Encryption
	if enc == "" {
		enc = WiFiWPA
	}
	var sb strings.Builder
	sb.WriteString("WIFI:T:")
	sb.WriteString(string(enc))
	sb.WriteString(";S:")
	sb.WriteString(EscapeWiFi(cfg.SSID))
	sb.WriteByte(';')
	if cfg.Password != "" {
		sb.WriteString("P:")
		sb.WriteString(EscapeWiFi(cfg.Password))
		sb.WriteByte(';')
	}
	if cfg.Hidden {
		sb.WriteString("H:true;")
	}
	sb.WriteByte(';')
	return sb.String()
}

// CleanNumber keeps digits and '+'.
func CleanNumber(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '+' {
			return r
		}
		return -1
	}, s)
}

// FormatPhone returns TEL:<number>.
func FormatPhone(number string) string {
	return "TEL:" + CleanNumber(number)
}

// FormatSMS returns SMSTO:<number>[:<message>].
func FormatSMS(number, message string) string {
	s := "SMSTO:" + CleanNumber(number)
	if message != "" {
		s += ":" + message
	}
	return s
}

// FormatEmail returns MAILTO:<addr> with optional subject and body query
// parameters.
func FormatEmail(addr, subject, body string) string {
	var params []string
	if subject != "" {
		params = append(params, "subject="+EscapeComponent(subject))
	}
	if body != "" {
		params = append(params, "body="+EscapeComponent(body))
	}
	s := "MAILTO:" + addr
	if len(params) > 0 {
		s += "?" + strings.Join(params, "&")
	}
	return s
}

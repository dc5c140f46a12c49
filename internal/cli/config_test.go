package cli

import (
	"testing"

	"github.com/matzehuels/qrsvg/pkg/cache"
	"github.com/matzehuels/qrsvg/pkg/content"
	"github.com/matzehuels/qrsvg/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[content]
type = "wifi"
ssid = "Home"
password = "secret"
encryption = "WEP"
hidden = true

[render]
ecc = "quartile"
margin = 0
border_style = "bagel-border"
ring_stroke_width = 1.5

[cache]
backend = "redis"
redis_url = "redis://localhost:6379/1"
prefix = "qr:"

[server]
addr = "0.0.0.0:9000"
`)

	fc, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	opts := fc.pipelineOptions()
	if opts.ContentType != "wifi" || opts.Content.SSID != "Home" || opts.Content.Encryption != content.WiFiWEP || !opts.Content.Hidden {
		t.Errorf("content = %+v", opts.Content)
	}
	if opts.ECC != "quartile" {
		t.Errorf("ECC = %q, want quartile", opts.ECC)
	}
	if opts.Render.Margin == nil || *opts.Render.Margin != 0 {
		t.Errorf("Margin = %v, want explicit 0", opts.Render.Margin)
	}
	if opts.Render.BorderStyle != "bagel-border" || opts.Render.RingStrokeWidth != 1.5 {
		t.Errorf("render = %+v", opts.Render)
	}
	if fc.Cache.Backend != cache.BackendRedis || fc.Cache.Prefix != "qr:" {
		t.Errorf("cache = %+v", fc.Cache)
	}
	if fc.Server.Addr != "0.0.0.0:9000" {
		t.Errorf("server addr = %q", fc.Server.Addr)
	}

	plan, err := opts.Plan()
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	if want := `WIFI:T:WEP;S:Home;P:secret;H:true;;`; plan.Payload != want {
		t.Errorf("Payload = %q, want %q", plan.Payload, want)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	fc, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig(\"\") error: %v", err)
	}
	if opts := fc.pipelineOptions(); opts.ContentType != "" || opts.Render.Margin != nil {
		t.Errorf("options = %+v, want zero", opts)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "[render\n"},
		{"unknown key", "[render]\ncolour = \"red\"\n"},
		{"unknown section", "[output]\nfile = \"a.svg\"\n"},
		{"wrong type", "[render]\nmargin = \"four\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.body))
			if got := errors.GetCode(err); got != errors.ErrCodeInvalidConfig {
				t.Errorf("code = %v, want %v (err %v)", got, errors.ErrCodeInvalidConfig, err)
			}
		})
	}

	_, err := loadConfig("/does/not/exist.toml")
	if got := errors.GetCode(err); got != errors.ErrCodeInvalidConfig {
		t.Errorf("missing file code = %v, want %v", got, errors.ErrCodeInvalidConfig)
	}
}

func TestExampleConfigs(t *testing.T) {
	for _, name := range []string{"wifi.toml", "server.toml"} {
		t.Run(name, func(t *testing.T) {
			fc, err := loadConfig("../../examples/" + name)
			if err != nil {
				t.Fatalf("loadConfig() error: %v", err)
			}
			if name != "wifi.toml" {
				return
			}
			if _, err := fc.pipelineOptions().Plan(); err != nil {
				t.Errorf("Plan() error: %v", err)
			}
		})
	}
}

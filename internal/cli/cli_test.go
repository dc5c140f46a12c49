package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/qrsvg/pkg/errors"
	"github.com/matzehuels/qrsvg/pkg/pipeline"
	"github.com/matzehuels/qrsvg/pkg/render"
)

// execute runs the root command with args using cacheHome as
// XDG_CACHE_HOME and returns stdout.
func execute(t *testing.T, cacheHome string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", cacheHome)
	t.Setenv(configEnv, "")

	var stdout, stderr bytes.Buffer
	root := New(&stderr, LogInfo).RootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "qrsvg.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderStdout(t *testing.T) {
	out, err := execute(t, t.TempDir(), "render", "hello", "--no-cache")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.HasPrefix(out, "<svg") {
		t.Errorf("stdout does not start with <svg: %.60q", out)
	}
	if !strings.Contains(out, `viewBox="0 0 29 29"`) {
		t.Errorf("missing 21+2*4 viewBox: %.200q", out)
	}
}

func TestRenderToFileUsesCache(t *testing.T) {
	home := t.TempDir()
	dst := filepath.Join(t.TempDir(), "qr.svg")

	out, err := execute(t, home, "render", "-t", "url", "example.com", "-o", dst)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.Contains(out, "Rendered") || !strings.Contains(out, "fresh") {
		t.Errorf("first run output = %q", out)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("<svg")) {
		t.Errorf("file is not an svg document: %.60q", data)
	}

	out, err = execute(t, home, "render", "-t", "url", "example.com", "-o", dst)
	if err != nil {
		t.Fatalf("second render error: %v", err)
	}
	if !strings.Contains(out, "cached") {
		t.Errorf("second run output = %q, want cached", out)
	}

	out, err = execute(t, home, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear error: %v", err)
	}
	if !strings.Contains(out, "Cleared 1 cached entries") {
		t.Errorf("cache clear output = %q", out)
	}
}

func TestRenderConfigAndFlags(t *testing.T) {
	cfg := writeConfig(t, `
[content]
type = "text"
text = "from config"

[render]
ecc = "high"
data_style = "circle"
foreground = "#ff0000"

[cache]
backend = "none"
`)

	out, err := execute(t, t.TempDir(), "--config", cfg, "render", "--fg", "#00ff00")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.Contains(out, "<circle") {
		t.Error("data_style from config not applied")
	}
	if !strings.Contains(out, "#00ff00") {
		t.Error("--fg flag did not override config")
	}
	if strings.Contains(out, "#ff0000") {
		t.Error("config foreground leaked through")
	}
}

func TestRenderErrors(t *testing.T) {
	badKey := writeConfig(t, "[render]\ndata_stlye = \"circle\"\n")

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"style not allowed for region", []string{"render", "x", "--no-cache", "--data-style", "bagel-border"}, errors.ErrCodeInvalidStyle},
		{"unknown style", []string{"render", "x", "--no-cache", "--interior-style", "star"}, errors.ErrCodeInvalidStyle},
		{"bad color", []string{"render", "x", "--no-cache", "--fg", "notacolor"}, errors.ErrCodeInvalidColor},
		{"bad ecc", []string{"render", "x", "--no-cache", "--ecc", "ultra"}, errors.ErrCodeInvalidECC},
		{"bad type", []string{"render", "x", "--no-cache", "-t", "vcard"}, errors.ErrCodeInvalidContentType},
		{"missing content", []string{"render", "--no-cache"}, errors.ErrCodeInvalidInput},
		{"path traversal", []string{"render", "x", "--no-cache", "-o", "../qr.svg"}, errors.ErrCodeInvalidPath},
		{"unknown config key", []string{"--config", badKey, "render", "x"}, errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, t.TempDir(), tt.args...)
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %v, want %v (err %v)", got, tt.code, err)
			}
		})
	}
}

func TestRenderFlagsApply(t *testing.T) {
	tests := []struct {
		typ   string
		arg   string
		field func(o pipeline.Options) string
	}{
		{"text", "hi", func(o pipeline.Options) string { return o.Content.Text }},
		{"url", "example.com", func(o pipeline.Options) string { return o.Content.URL }},
		{"wifi", "Home", func(o pipeline.Options) string { return o.Content.SSID }},
		{"tel", "5550100", func(o pipeline.Options) string { return o.Content.Phone }},
		{"sms", "5550100", func(o pipeline.Options) string { return o.Content.Phone }},
		{"email", "a@b.io", func(o pipeline.Options) string { return o.Content.Email }},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			f := renderFlags{contentType: tt.typ}
			changed := func(name string) bool { return name == "type" }
			var opts pipeline.Options
			if err := f.apply(changed, &opts, []string{tt.arg}); err != nil {
				t.Fatalf("apply() error: %v", err)
			}
			if got := tt.field(opts); got != tt.arg {
				t.Errorf("field = %q, want %q", got, tt.arg)
			}
		})
	}
}

func TestRenderFlagsApplyOnlyChanged(t *testing.T) {
	f := renderFlags{margin: 0, fg: "#111111", dataStyle: "circle", scale: 0.5}
	opts := pipeline.Options{Render: render.Options{Foreground: "#222222", DataStyle: "diamond"}}

	changed := func(name string) bool { return name == "margin" || name == "fg" }
	if err := f.apply(changed, &opts, nil); err != nil {
		t.Fatalf("apply() error: %v", err)
	}
	if opts.Render.Margin == nil || *opts.Render.Margin != 0 {
		t.Errorf("Margin = %v, want explicit 0", opts.Render.Margin)
	}
	if opts.Render.Foreground != "#111111" {
		t.Errorf("Foreground = %q, want flag value", opts.Render.Foreground)
	}
	if opts.Render.DataStyle != "diamond" {
		t.Errorf("DataStyle = %q, want config value kept", opts.Render.DataStyle)
	}
	if opts.Render.Scale != 0 {
		t.Errorf("Scale = %v, want unset", opts.Render.Scale)
	}
}

func TestStylesCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "styles")
	if err != nil {
		t.Fatalf("styles error: %v", err)
	}
	for _, want := range []string{"finder-interior", "finder-border", "data", "bagel-border*", "circle-inside*", "triangle", "wifi"} {
		if !strings.Contains(out, want) {
			t.Errorf("styles output missing %q", want)
		}
	}
}

func TestCachePath(t *testing.T) {
	home := t.TempDir()
	out, err := execute(t, home, "cache", "path")
	if err != nil {
		t.Fatalf("cache path error: %v", err)
	}
	if got, want := strings.TrimSpace(out), filepath.Join(home, appName); got != want {
		t.Errorf("cache path = %q, want %q", got, want)
	}

	cfg := writeConfig(t, "[cache]\nbackend = \"redis\"\nredis_url = \"redis://localhost:6379\"\n")
	_, err = execute(t, home, "--config", cfg, "cache", "path")
	if got := errors.GetCode(err); got != errors.ErrCodeUnsupported {
		t.Errorf("code = %v, want %v", got, errors.ErrCodeUnsupported)
	}
}

func TestCacheClearEmpty(t *testing.T) {
	out, err := execute(t, t.TempDir(), "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear error: %v", err)
	}
	if !strings.Contains(out, "Cache is empty") {
		t.Errorf("output = %q, want empty notice", out)
	}
}

func TestServeRejectsBadAddr(t *testing.T) {
	_, err := execute(t, t.TempDir(), "serve", "--no-cache", "--addr", "no-port")
	if !errors.IsInvalid(err) {
		t.Errorf("err = %v, want invalid input", err)
	}
}

func TestCompletion(t *testing.T) {
	out, err := execute(t, t.TempDir(), "completion", "bash")
	if err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if !strings.Contains(out, appName) {
		t.Errorf("completion script does not mention %s", appName)
	}
}

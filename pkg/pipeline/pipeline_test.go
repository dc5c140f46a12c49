package pipeline

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/qrsvg/pkg/cache"
	"github.com/matzehuels/qrsvg/pkg/content"
	qerrors "github.com/matzehuels/qrsvg/pkg/errors"
	"github.com/matzehuels/qrsvg/pkg/observability"
	"github.com/matzehuels/qrsvg/pkg/qr"
	"github.com/matzehuels/qrsvg/pkg/render"
)

type memCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	gets    int
	sets    int
	failGet bool
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (c *memCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.failGet {
		return nil, false, errors.New("backend down")
	}
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *memCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.data[key] = data
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error { return nil }
func (c *memCache) Close() error                                 { return nil }

func quietLogger() *log.Logger {
	return log.NewWithOptions(&bytes.Buffer{}, log.Options{})
}

func TestPlan(t *testing.T) {
	opts := Options{
		ContentType: "wifi",
		Content:     content.Config{SSID: `My;Net"`, Password: "pw"},
		ECC:         "q",
		Render:      render.Options{DataStyle: "circle"},
	}
	plan, err := opts.Plan()
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if want := `WIFI:T:WPA;S:My\;Net\";P:pw;;`; plan.Payload != want {
		t.Errorf("Payload = %q, want %q", plan.Payload, want)
	}
	if plan.ECC != qr.ECCQuartile {
		t.Errorf("ECC = %v, want quartile", plan.ECC)
	}
	if plan.Config.Style(qr.RegionData).String() != "circle" {
		t.Errorf("data style = %v", plan.Config.Style(qr.RegionData))
	}
	if opts.Render.Margin != nil {
		t.Error("Plan mutated render options")
	}
}

func TestPlanErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code qerrors.Code
	}{
		{"unknown type", Options{ContentType: "vcard", Content: content.Config{Text: "x"}}, qerrors.ErrCodeInvalidContentType},
		{"missing text", Options{}, qerrors.ErrCodeInvalidInput},
		{"too long", Options{Content: content.Config{Text: strings.Repeat("x", qerrors.MaxPayloadBytes+1)}}, qerrors.ErrCodeInvalidInput},
		{"bad ecc", Options{Content: content.Config{Text: "x"}, ECC: "ultra"}, qerrors.ErrCodeInvalidECC},
		{"bad style", Options{Content: content.Config{Text: "x"}, Render: render.Options{DataStyle: "bagel-border"}}, qerrors.ErrCodeInvalidStyle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.opts.Plan()
			if got := qerrors.GetCode(err); got != tt.code {
				t.Errorf("code = %v, want %v (err %v)", got, tt.code, err)
			}
		})
	}
}

func TestExecute(t *testing.T) {
	c := newMemCache()
	r := NewRunner(c, nil, quietLogger())
	opts := Options{ContentType: "url", Content: content.Config{URL: "example.com"}}

	res, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Payload != "https://example.com" {
		t.Errorf("Payload = %q", res.Payload)
	}
	if res.CacheHit {
		t.Error("first run reported a cache hit")
	}
	if res.Size < qr.MinSize {
		t.Errorf("Size = %d, want >= %d", res.Size, qr.MinSize)
	}
	if !bytes.HasPrefix(res.SVG, []byte("<svg ")) || !bytes.HasSuffix(res.SVG, []byte("</svg>")) {
		t.Errorf("SVG not a complete document: %.80s", res.SVG)
	}
	if c.sets != 1 {
		t.Errorf("cache sets = %d, want 1", c.sets)
	}

	again, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !again.CacheHit {
		t.Error("second run missed the cache")
	}
	if !bytes.Equal(again.SVG, res.SVG) {
		t.Error("cached document differs from rendered document")
	}
}

func TestExecuteRefreshBypassesLookup(t *testing.T) {
	c := newMemCache()
	r := NewRunner(c, nil, quietLogger())
	opts := Options{Content: content.Config{Text: "hi"}, Refresh: true}

	for i := 0; i < 2; i++ {
		res, err := r.Execute(context.Background(), opts)
		if err != nil {
			t.Fatal(err)
		}
		if res.CacheHit {
			t.Error("refresh run hit the cache")
		}
	}
	if c.gets != 0 {
		t.Errorf("cache gets = %d, want 0", c.gets)
	}
	if c.sets != 2 {
		t.Errorf("cache sets = %d, want 2", c.sets)
	}
}

func TestExecuteCacheFailureIsNotFatal(t *testing.T) {
	c := newMemCache()
	c.failGet = true
	r := NewRunner(c, nil, quietLogger())
	res, err := r.Execute(context.Background(), Options{Content: content.Config{Text: "hi"}})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.CacheHit || len(res.SVG) == 0 {
		t.Errorf("unexpected result: hit %v, %d bytes", res.CacheHit, len(res.SVG))
	}
}

func TestExecuteDistinctOptionsDistinctEntries(t *testing.T) {
	c := newMemCache()
	r := NewRunner(c, nil, quietLogger())
	ctx := context.Background()
	base := Options{Content: content.Config{Text: "same"}}
	styled := base
	styled.Render = render.Options{DataStyle: "diamond"}

	if _, err := r.Execute(ctx, base); err != nil {
		t.Fatal(err)
	}
	res, err := r.Execute(ctx, styled)
	if err != nil {
		t.Fatal(err)
	}
	if res.CacheHit {
		t.Error("different style reused a cached document")
	}
	if len(c.data) != 2 {
		t.Errorf("cache entries = %d, want 2", len(c.data))
	}
}

func TestExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewRunner(nil, nil, quietLogger())
	if _, err := r.Execute(ctx, Options{Content: content.Config{Text: "x"}}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	observability.NoopCacheHooks
	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) add(e string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingHooks) OnFormatComplete(context.Context, string, int, error) { h.add("format") }
func (h *recordingHooks) OnEncodeStart(context.Context, string)               { h.add("encode") }
func (h *recordingHooks) OnRenderComplete(context.Context, int, int, int, time.Duration, error) {
	h.add("render")
}
func (h *recordingHooks) OnCacheMiss(context.Context, string)     { h.add("miss") }
func (h *recordingHooks) OnCacheHit(context.Context, string)      { h.add("hit") }
func (h *recordingHooks) OnCacheSet(context.Context, string, int) { h.add("set") }

func TestExecuteEmitsHooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
	defer observability.Reset()

	r := NewRunner(newMemCache(), cache.NewScopedKeyer(nil, "test:"), quietLogger())
	opts := Options{Content: content.Config{Text: "hooks"}}
	for i := 0; i < 2; i++ {
		if _, err := r.Execute(context.Background(), opts); err != nil {
			t.Fatal(err)
		}
	}

	want := "format,miss,encode,render,set,format,hit"
	if got := strings.Join(h.events, ","); got != want {
		t.Errorf("events = %s, want %s", got, want)
	}
}

func TestRenderStageEmptyDocument(t *testing.T) {
	_, _, err := Render(context.Background(), qr.NewGrid(5), render.DefaultConfig())
	if !qerrors.Is(err, qerrors.ErrCodeInternal) {
		t.Errorf("err = %v, want INTERNAL_ERROR", err)
	}
}

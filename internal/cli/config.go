package cli

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/qrsvg/pkg/cache"
	"github.com/matzehuels/qrsvg/pkg/content"
	"github.com/matzehuels/qrsvg/pkg/errors"
	"github.com/matzehuels/qrsvg/pkg/pipeline"
	"github.com/matzehuels/qrsvg/pkg/render"
)

// fileConfig is the layout of the TOML configuration file:
//
//	[content]
//	type = "wifi"
//	ssid = "Home"
//
//	[render]
//	ecc = "high"
//	data_style = "circle"
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//
//	[server]
//	addr = "127.0.0.1:8080"
type fileConfig struct {
	Content contentSection `toml:"content"`
	Render  renderSection  `toml:"render"`
	Cache   cache.Config   `toml:"cache"`
	Server  serverSection  `toml:"server"`
}

type contentSection struct {
	Type string `toml:"type"`
	content.Config
}

type renderSection struct {
	ECC string `toml:"ecc"`
	render.Options
}

type serverSection struct {
	Addr string `toml:"addr"`
}

// loadConfig reads path. An empty path yields the zero configuration.
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
func loadConfig(path string) (*fileConfig, error) {
	cfg := &fileConfig{}
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// pipelineOptions returns the request described by the file.
func (f *fileConfig) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		ContentType: f.Content.Type,
		Content:     f.Content.Config,
		ECC:         f.Render.ECC,
		Render:      f.Render.Options,
	}
}

// Package cli implements the qrsvg command-line interface.
//
// # Commands
//
//   - render: Encode content as a QR code and write a styled SVG
//   - styles: List the styles each region accepts
//   - serve: Run the HTTP rendering API
//   - cache: Manage the artifact cache
//   - completion: Generate shell completion scripts
//
// All commands accept --verbose (-v) for debug logging and --config for a
// TOML configuration file. Flags given on the command line override values
// from the file.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/qrsvg/pkg/buildinfo"
	"github.com/matzehuels/qrsvg/pkg/cache"
	"github.com/matzehuels/qrsvg/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "qrsvg"

	// configEnv names the environment variable holding a default config path.
	configEnv = "QRSVG_CONFIG"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// verbose reports whether debug logging is enabled.
func (c *CLI) verbose() bool {
	return c.Logger.GetLevel() <= log.DebugLevel
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "qrsvg renders QR codes as styled SVG",
		Long:          `qrsvg encodes text, links, WiFi credentials and contact actions as QR codes and renders them as layered SVG with per-region module styles.`,
		Version:       buildinfo.Resolve().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", os.Getenv(configEnv), "TOML configuration file")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.stylesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, cfg cache.Config, noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx, cfg, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

// newCache opens the cache described by cfg. Without an explicit backend the
// file cache under cacheDir is used.
func (c *CLI) newCache(ctx context.Context, cfg cache.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	cfg = withCacheDefaults(cfg)
	if cfg.Backend == cache.BackendFile && cfg.Dir == "" {
		c.Logger.Debug("no cache directory, caching disabled")
		return cache.NewNullCache(), nil
	}
	c.Logger.Debug("opening cache", "backend", cfg.Backend)
	if cfg.Backend == cache.BackendFile || cfg.Backend == cache.BackendNone {
		return cache.Open(ctx, cfg)
	}

	sp := newSpinner(ctx, os.Stderr, "Connecting to "+string(cfg.Backend)+"...")
	sp.Start()
	store, err := cache.Open(ctx, cfg)
	if err != nil {
		sp.StopWithError("Cache unavailable")
		return nil, err
	}
	sp.Stop()
	return store, nil
}

// withCacheDefaults fills in the file backend and its directory.
func withCacheDefaults(cfg cache.Config) cache.Config {
	cfg.Backend = cache.Backend(strings.ToLower(strings.TrimSpace(string(cfg.Backend))))
	if cfg.Backend == "" {
		cfg.Backend = cache.BackendFile
	}
	if cfg.Backend == cache.BackendFile && cfg.Dir == "" {
		if dir, err := cacheDir(); err == nil {
			cfg.Dir = dir
		}
	}
	return cfg
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/qrsvg/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

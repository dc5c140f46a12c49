package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/qrsvg/pkg/cache"
	"github.com/matzehuels/qrsvg/pkg/errors"
	"github.com/matzehuels/qrsvg/pkg/observability"
	"github.com/matzehuels/qrsvg/pkg/server"
)

// serveCommand creates the serve command, which runs the HTTP API until
// interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the rendering API over HTTP",
		Long: `Serve exposes the renderer over HTTP:

  GET  /healthz      liveness and version
  GET  /v1/styles    styles per region, defaults and content types
  POST /v1/render    render a JSON request
  GET  /v1/render    render from query parameters`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			fc, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") && fc.Server.Addr != "" {
				addr = fc.Server.Addr
			}
			if err := errors.ValidateListenAddr(addr); err != nil {
				return err
			}

			runner, err := c.newRunner(ctx, fc.Cache, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			if c.verbose() {
				hooks := observability.NewLogHooks(c.Logger)
				observability.SetPipelineHooks(hooks)
				observability.SetCacheHooks(hooks)
				observability.SetHTTPHooks(hooks)
				defer observability.Reset()
			}

			out := cmd.OutOrStdout()
			printInfo(out, "Serving on %s", StyleHighlight.Render("http://"+addr))
			printKeyValue(out, "cache", cacheLabel(fc, noCache))

			return server.New(runner, c.Logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// cacheLabel names the cache a command will use.
func cacheLabel(fc *fileConfig, noCache bool) string {
	if noCache {
		return "disabled"
	}
	cfg := withCacheDefaults(fc.Cache)
	if cfg.Dir != "" && cfg.Backend == cache.BackendFile {
		return "file " + cfg.Dir
	}
	return string(cfg.Backend)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/qrsvg/pkg/cache"
	"github.com/matzehuels/qrsvg/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered SVG cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			store, err := c.newCache(cmd.Context(), fc.Cache, false)
			if err != nil {
				return err
			}
			defer store.Close()

			clearer, ok := store.(cache.Clearer)
			if !ok {
				printWarning(out, "Cache backend cannot be cleared")
				return nil
			}
			n, err := clearer.Clear(cmd.Context())
			if err != nil {
				return errors.Wrap(errors.ErrCodeCache, err, "clear cache")
			}
			if n == 0 {
				printInfo(out, "Cache is empty")
				return nil
			}

			printSuccess(out, "Cleared %d cached entries", n)
			if fileStore, ok := store.(*cache.FileCache); ok {
				printDetail(out, "Directory: %s", fileStore.Dir())
			}
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			cfg := withCacheDefaults(fc.Cache)
			if cfg.Backend != cache.BackendFile {
				return errors.New(errors.ErrCodeUnsupported, "cache backend %q has no directory", cfg.Backend)
			}
			if cfg.Dir == "" {
				return errors.New(errors.ErrCodeNotFound, "cannot determine cache directory")
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.Dir)
			return nil
		},
	}
}

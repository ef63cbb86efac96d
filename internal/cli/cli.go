// Package cli implements the graphsketch command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphsketch/pkg/buildinfo"
	"github.com/matzehuels/graphsketch/pkg/cache"
	"github.com/matzehuels/graphsketch/pkg/config"
	"github.com/matzehuels/graphsketch/pkg/editor"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = config.AppName
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

	// configPath is set by --config; empty means the default location.
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

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "graphsketch is a small interactive graph editor",
		Long:         `graphsketch places coloured nodes on a canvas, connects them with weighted edges and exports the result as JSON. It runs as a terminal editor, a script player or an HTTP service.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default "+config.Path()+")")

	// Register all subcommands
	root.AddCommand(c.editCommand())
	root.AddCommand(c.replayCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Helpers
// =============================================================================

// loadConfig reads the configuration selected by --config.
func (c *CLI) loadConfig() (*config.Config, error) {
	return config.Load(c.configPath)
}

// newController builds an editor controller from the configuration.
func (c *CLI) newController(cfg *config.Config, opts ...editor.Option) *editor.Controller {
	base := []editor.Option{
		editor.WithCanvas(canvasOf(cfg)),
		editor.WithEdgeStyle(cfg.Editor.EdgeStyle),
		editor.WithLogger(c.Logger),
	}
	return editor.New(append(base, opts...)...)
}

func canvasOf(cfg *config.Config) editor.Canvas {
	return editor.Canvas{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height}
}

// newCache opens the render cache named in cfg. A disabled cache, or a file
// cache whose directory cannot be created, yields a NullCache.
func newCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	if !cfg.Enabled {
		return cache.NewNullCache(), nil
	}
	if cfg.RedisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, cfg.RedisAddr, "", 0)
		if err != nil {
			return nil, err
		}
		return cache.Observed(rc), nil
	}
	fc, err := cache.NewFileCache(cacheDir(cfg))
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.Observed(fc), nil
}

// cacheDir returns the configured cache directory, defaulting to
// $XDG_CACHE_HOME/graphsketch (~/.cache/graphsketch).
func cacheDir(cfg config.CacheConfig) string {
	if cfg.Dir != "" {
		return cfg.Dir
	}
	return cache.DefaultDir()
}

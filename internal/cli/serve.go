package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphsketch/pkg/api"
	"github.com/matzehuels/graphsketch/pkg/config"
	"github.com/matzehuels/graphsketch/pkg/editor"
	"github.com/matzehuels/graphsketch/pkg/export"
	"github.com/matzehuels/graphsketch/pkg/observability"
	"github.com/matzehuels/graphsketch/pkg/render"
	"github.com/matzehuels/graphsketch/pkg/render/svg"
	"github.com/matzehuels/graphsketch/pkg/session"
)

const (
	// shutdownTimeout bounds graceful shutdown of the HTTP server.
	shutdownTimeout = 10 * time.Second

	// cleanupInterval is how often expired sessions are swept.
	cleanupInterval = time.Minute
)

// serveCommand creates the HTTP service command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP editing service",
		Long: `Serve keeps one editor per session and exposes its operations over HTTP.

Sessions live in memory and expire after the configured idle time. Metrics are
served at /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Server.Addr
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	hooks := observability.NewPrometheusHooks(reg)
	observability.SetEditorHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	sinks, err := export.FromConfig(ctx, cfg.Export)
	if err != nil {
		return err
	}
	defer sinks.Close(context.WithoutCancel(ctx))

	rc, err := newCache(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	defer rc.Close()

	store := session.NewMemoryStore(cfg.Server.SessionTTL.Duration, c.sessionBuilder(cfg, sinks))
	srv := api.New(store,
		api.WithCache(rc, cfg.Cache.TTL.Duration),
		api.WithMetrics(reg),
		api.WithLogger(logger),
	)

	server := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go store.RunCleanup(ctx, cleanupInterval, func(n int) {
		logger.Debug("expired sessions removed", "count", n)
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	printSuccess("Serving on %s", StyleHighlight.Render(addr))
	printKeyValue("Sessions", "idle timeout "+cfg.Server.SessionTTL.Duration.String())
	if names := sinks.Names(); len(names) > 0 {
		printKeyValue("Export", fmt.Sprint(names))
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return ctx.Err()
}

// sessionBuilder returns the factory for per-session editors. Each session
// draws to its own SVG scene and logs its events at debug level.
func (c *CLI) sessionBuilder(cfg *config.Config, sinks *export.Set) session.Builder {
	return func(id string) session.Editor {
		scene := svg.NewScene(cfg.Canvas.Width, cfg.Canvas.Height)
		logger := c.Logger.With("session", id)
		ctrl := c.newController(cfg,
			editor.WithLogger(logger),
			editor.WithRenderer(render.Multi(scene, render.NewLogRenderer(logger))),
			editor.WithPublisher(sinks.ForSession(id)),
		)
		return session.Editor{Controller: ctrl, Scene: scene}
	}
}

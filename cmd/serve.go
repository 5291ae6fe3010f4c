package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/acceptance-map/internal/dataset"
	"github.com/sells-group/acceptance-map/internal/web"
)

var (
	servePort  int
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if servePort != 0 {
			cfg.Server.Port = servePort
		}
		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		cache, err := newCache(cfg)
		if err != nil {
			return err
		}

		// Warm the cache. A missing file is reported on the page, not fatal.
		if _, err := cache.Get(ctx); err != nil {
			if !dataset.IsNotFound(err) {
				return err
			}
			zap.L().Warn("data file not found", zap.String("path", cache.Path()))
		}

		srv := web.NewServer(cache, web.Options{
			CORSOrigins:     cfg.Server.CORSOrigins,
			ReloadPerMinute: cfg.Server.ReloadPerMinute,
		})

		var watcher *dataset.Watcher
		if serveWatch {
			watcher, err = dataset.NewWatcher(cache)
			if err != nil {
				return err
			}
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return srv.ListenAndServe(gctx, fmt.Sprintf(":%d", cfg.Server.Port))
		})
		if watcher != nil {
			g.Go(func() error {
				return watcher.Run(gctx)
			})
		}

		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "reload the table when the data file changes")
	rootCmd.AddCommand(serveCmd)
}

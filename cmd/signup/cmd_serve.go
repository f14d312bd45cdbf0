package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-signup/pkg/server"
)

var (
	serveAddr      string
	serveAssetsDir string
)

// serveCmd hosts the page over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the sign-up page over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "HTTP listen address (default :8080)")
	serveCmd.Flags().StringVar(&serveAssetsDir, "assets-dir", "", "Directory served ahead of the embedded assets (image.webp lives here)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := newServer()
	if err != nil {
		return err
	}
	logger.Info("starting sign-up server",
		zap.String("addr", cfg.Addr),
		zap.String("locale", cfg.Locale),
		zap.Int("breakpoint", cfg.Breakpoint),
	)
	return srv.ListenAndServe(ctx, cfg.Addr)
}

func newServer() (*server.Server, error) {
	themeCfg, err := resolveTheme()
	if err != nil {
		return nil, err
	}
	catalog, err := translator()
	if err != nil {
		return nil, err
	}
	return server.New(
		server.WithLogger(logger),
		server.WithTranslator(catalog),
		server.WithTheme(themeCfg),
		server.WithBreakpoint(cfg.Breakpoint),
		server.WithDefaultLocale(cfg.Locale),
		server.WithAssetPrefix(cfg.AssetPrefix),
		server.WithAssetsDir(cfg.AssetsDir),
	)
}

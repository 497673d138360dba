package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen/internal/handler"
	"github.com/vaultpass/passgen/internal/middleware"
	"github.com/vaultpass/passgen/internal/page"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "serve the composed view markup over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           newRouter(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			slog.Info("preview server starting", "port", cfg.Port, "env", cfg.Env)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return err
			}
		case <-ctx.Done():
		}

		slog.Info("shutting down preview server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		slog.Info("preview server stopped")
		return nil
	},
}

func newRouter() http.Handler {
	previewHandler := handler.NewPreviewHandler(func() page.View {
		return newView(cfg, nil, nil)
	}, title)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.Get("/", previewHandler.HandlePage)
	r.Get("/health", previewHandler.HandleHealth)

	return r
}

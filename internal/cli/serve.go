package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	httpapi "github.com/i474232898/wethr/internal/api/http"
	"github.com/i474232898/wethr/internal/config"
	"github.com/i474232898/wethr/internal/feedback"
)

func newServeCommand(cfg func() *config.AppConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve weather updates, history and feedback over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg())
		},
	}
	cmd.Flags().StringP("port", "p", "", "HTTP listen port")
	return cmd
}

func serve(ctx context.Context, cfg *config.AppConfig) error {
	lang := resolveLanguage(ctx, cfg, cfg.Country, newLocator(cfg))
	c, err := buildComponents(cfg, lang)
	if err != nil {
		return err
	}

	app := httpapi.NewApp(true)
	httpapi.RegisterRoutes(app, c.service, c.store, feedback.NewBox())

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("http server listening")
		errCh <- app.Listen(":" + cfg.Port)
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.WithError(err).Error("error during shutdown")
	}
	return nil
}

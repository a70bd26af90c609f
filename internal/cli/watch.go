package cli

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/i474232898/wethr/internal/config"
	"github.com/i474232898/wethr/internal/scheduler"
	"github.com/i474232898/wethr/internal/weather"
)

func newWatchCommand(cfg func() *config.AppConfig, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [location...]",
		Short: "Print a weather update for each location every interval",
		RunE: func(cmd *cobra.Command, args []string) error {
			return watch(cmd.Context(), cfg(), args, out)
		},
	}
	cmd.Flags().String("watch-interval", "", "time between updates (e.g. 15m)")
	return cmd
}

func watch(ctx context.Context, cfg *config.AppConfig, locations []string, out io.Writer) error {
	locator := newLocator(cfg)
	lang := resolveLanguage(ctx, cfg, cfg.Country, locator)
	c, err := buildComponents(cfg, lang)
	if err != nil {
		return err
	}

	if len(locations) == 0 {
		city := cfg.Location
		if city == "" {
			info, err := locator.Detect(ctx)
			if err != nil {
				return err
			}
			city = info.City
		}
		locations = []string{city}
	}

	var mu sync.Mutex
	noAlerts := c.service.Alerts().NoAlerts()
	sched := scheduler.New(locations, cfg.WatchInterval, c.service, func(u weather.Update) {
		mu.Lock()
		defer mu.Unlock()
		Render(out, c.tr, u, noAlerts)
	})
	if err := sched.Start(); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}
	defer sched.Stop()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	return nil
}

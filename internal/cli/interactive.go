package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/i474232898/wethr/internal/config"
	"github.com/i474232898/wethr/internal/feedback"
	"github.com/i474232898/wethr/internal/i18n"
	"github.com/i474232898/wethr/internal/location"
)

const countryPrompt = "Enter either 00(auto-detect) or type your country code (e.g., BR, US, FR): "

// runInteractive asks for language and location, prints one update and
// offers to collect a weather report from the user.
func runInteractive(ctx context.Context, cfg *config.AppConfig, in io.Reader, out io.Writer) error {
	p := newPrompter(in, out)
	locator := newLocator(cfg)

	country := cfg.Country
	if cfg.Language == "" && country == "" {
		answer, err := p.ask(countryPrompt)
		if err != nil {
			return err
		}
		country = strings.ToUpper(answer)
	}
	lang := resolveLanguage(ctx, cfg, country, locator)

	c, err := buildComponents(cfg, lang)
	if err != nil {
		return err
	}

	city, err := chooseLocation(ctx, cfg, p, c.tr, locator)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s [ %s ]\n", c.tr.Label(i18n.KeyChosenPlace), city)

	update, err := c.service.Run(ctx, city)
	if err != nil {
		return err
	}
	Render(out, c.tr, update, c.service.Alerts().NoAlerts())

	return collectFeedback(p, c.tr, feedback.NewBox(), update.Location)
}

// chooseLocation returns the configured location, or offers the detected
// city and asks whether to enter another one.
func chooseLocation(ctx context.Context, cfg *config.AppConfig, p *prompter, tr Labeler, locator *location.Client) (string, error) {
	if cfg.Location != "" {
		return cfg.Location, nil
	}

	info, detectErr := locator.Detect(ctx)
	if detectErr != nil {
		log.WithError(detectErr).Warn("could not detect location")
		return p.ask(tr.Label(i18n.KeyLocationPrompt) + " ")
	}

	other, err := p.yesNo(tr.Label(i18n.KeyChooseLocation) + "\n")
	switch {
	case errors.Is(err, errInvalidChoice):
		fmt.Fprintf(p.out, "Error: %s\n", tr.Label(i18n.KeyInvalidInput))
		return info.City, nil
	case err != nil:
		return "", err
	case other:
		return p.ask(tr.Label(i18n.KeyLocationPrompt) + " ")
	default:
		return info.City, nil
	}
}

func collectFeedback(p *prompter, tr Labeler, box *feedback.Box, city string) error {
	share, err := p.yesNo(tr.Label(i18n.KeyFeedbackPrompt))
	switch {
	case errors.Is(err, errInvalidChoice):
		fmt.Fprintf(p.out, "Error: %s\n", tr.Label(i18n.KeyInvalidInput))
		return nil
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return err
	case !share:
		return nil
	}

	text, err := p.ask(tr.Label(i18n.KeyWeatherFeedback) + " ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if _, err := box.Submit(city, text); err != nil {
		fmt.Fprintf(p.out, "Error: %s\n", tr.Label(i18n.KeyInvalidInput))
		return nil
	}
	fmt.Fprintln(p.out, tr.Label(i18n.KeyFeedbackThanks))
	return nil
}

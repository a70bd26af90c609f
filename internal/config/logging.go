package config

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Log formatter options
const (
	FormatJSON   = "json"
	FormatLogfmt = "logfmt"
	FormatTTY    = "tty"
)

// ConfigureLogging applies the configured level and formatter to the
// standard logrus logger and directs it to out.
func ConfigureLogging(cfg *AppConfig, out io.Writer) error {
	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}
	formatter, err := LogFormatter(cfg.LogFormat)
	if err != nil {
		return err
	}

	logrus.SetLevel(lvl)
	logrus.SetFormatter(formatter)
	logrus.SetOutput(out)
	return nil
}

// LogFormatter returns the logrus formatter named by format.
func LogFormatter(format string) (logrus.Formatter, error) {
	switch format {
	case FormatJSON:
		return &logrus.JSONFormatter{}, nil
	case FormatLogfmt:
		return &logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		}, nil
	case FormatTTY:
		return &logrus.TextFormatter{}, nil
	default:
		return nil, fmt.Errorf("invalid %s %q: expected one of %v", KeyLogFormat, format, []string{FormatJSON, FormatLogfmt, FormatTTY})
	}
}

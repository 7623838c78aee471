package config

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskview/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Logger holds logging configuration from CLI flags
type Logger struct {
	level  string
	format string
	output string
}

// Flags returns CLI flags for logger configuration
func (l *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Aliases:     []string{"l"},
			Usage:       "Log level [debug|info|warn|error]",
			Value:       "info",
			Sources:     cli.EnvVars("RISKVIEW_LOG_LEVEL"),
			Destination: &l.level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format [console|json]",
			Value:       "console",
			Sources:     cli.EnvVars("RISKVIEW_LOG_FORMAT"),
			Destination: &l.format,
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output [stdout|stderr|FILE]",
			Value:       "stderr",
			Sources:     cli.EnvVars("RISKVIEW_LOG_OUTPUT"),
			Destination: &l.output,
		},
	}
}

// LogValue implements slog.LogValuer
func (l Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", l.level),
		slog.String("format", l.format),
		slog.String("output", l.output),
	)
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Configure builds the logger and installs it as the default. The returned
// function closes the log file, if one was opened.
func (l *Logger) Configure() (func(), error) {
	level, ok := logLevels[strings.ToLower(l.level)]
	if !ok {
		return nil, goerr.Wrap(ErrInvalidLogLevel, "unknown log level", goerr.V("level", l.level))
	}

	var format logging.Format
	switch strings.ToLower(l.format) {
	case "", string(logging.FormatConsole):
		format = logging.FormatConsole
	case string(logging.FormatJSON):
		format = logging.FormatJSON
	default:
		return nil, goerr.Wrap(ErrInvalidLogFormat, "unknown log format", goerr.V("format", l.format))
	}

	var w io.Writer
	closer := func() {}
	switch l.output {
	case "", "stderr", "-":
		w = os.Stderr
	case "stdout":
		w = os.Stdout
	default:
		// #nosec G304 - path is expected to be provided by CLI argument
		f, err := os.OpenFile(l.output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", l.output))
		}
		w = f
		closer = func() {
			if err := f.Close(); err != nil {
				logging.Default().Error("failed to close log file", "error", err, "path", l.output)
			}
		}
	}

	logging.SetDefault(logging.New(w, level, format))
	return closer, nil
}

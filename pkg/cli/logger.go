package cli

import (
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/syscmd/pkg/domain"
	"github.com/urfave/cli/v3"
)

func loggerFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "debug",
			Usage:   "Enable debug logging",
			Sources: cli.EnvVars("SYSCMD_DEBUG"),
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Usage:   "Enable verbose logging",
			Sources: cli.EnvVars("SYSCMD_VERBOSE"),
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "Log format (text, json)",
			Value:   "text",
			Sources: cli.EnvVars("SYSCMD_LOG_FORMAT"),
		},
	}
}

func newLogger(cmd *cli.Command, w io.Writer) (*slog.Logger, error) {
	logLevel := slog.LevelWarn
	if cmd.Bool("debug") {
		logLevel = slog.LevelDebug
	} else if cmd.Bool("verbose") {
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	switch format := cmd.String("log-format"); format {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, domain.ErrConfiguration.Wrap(goerr.New("unknown log format", goerr.V("format", format)))
	}
}

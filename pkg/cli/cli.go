package cli

import (
	"context"

	"github.com/google/uuid"
	"github.com/secmon-lab/riskview/pkg/cli/config"
	"github.com/secmon-lab/riskview/pkg/utils/errutil"
	"github.com/secmon-lab/riskview/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, args []string, version string) error {
	var loggerCfg config.Logger
	var closer func()

	app := &cli.Command{
		Name:    "riskview",
		Usage:   "Render risk analysis results as HTML fragments",
		Version: version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closer = f

			runID := uuid.Must(uuid.NewV7()).String()
			logger := logging.Default().With("run_id", runID)
			logger.Debug("Starting riskview", "logger", loggerCfg, "version", version)
			return logging.With(ctx, logger), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdRender(),
			cmdDetail(),
			cmdNormalize(),
			cmdScore(),
			cmdValidate(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		return errutil.Handle(ctx, err, "failed to run app")
	}

	return nil
}

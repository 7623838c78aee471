package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskview/pkg/cli/config"
	"github.com/secmon-lab/riskview/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var configFile config.File

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the configuration file",
		Flags:   configFile.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)

			if configFile.Path() == "" {
				return goerr.New("--config is required for validation")
			}

			palette, err := configFile.Configure()
			if err != nil {
				return goerr.Wrap(err, "configuration validation failed")
			}

			logger.Info("Configuration validation passed",
				"path", configFile.Path(),
				"severity_count", len(palette.Levels),
			)
			for _, level := range palette.Levels {
				logger.Info("Severity validated",
					"id", level.ID,
					"name", level.Name,
					"color", level.Color,
					"score", level.Score,
				)
			}
			return nil
		},
	}
}

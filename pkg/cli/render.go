package cli

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskview/pkg/cli/config"
	"github.com/secmon-lab/riskview/pkg/domain/types"
	"github.com/secmon-lab/riskview/pkg/usecase"
	"github.com/secmon-lab/riskview/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdRender() *cli.Command {
	var (
		configFile  config.File
		mode        string
		inputs      []string
		output      string
		concurrency int
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "mode",
			Aliases:     []string{"m"},
			Usage:       "Render mode [output1..output5|summary|detailed|indicators|controls|initial]",
			Required:    true,
			Destination: &mode,
		},
		&cli.StringSliceFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "JSON payload file, \"-\" for stdin (repeatable)",
			Required:    true,
			Destination: &inputs,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output file (default stdout)",
			Destination: &output,
		},
		&cli.IntFlag{
			Name:        "concurrency",
			Usage:       "Number of payloads rendered at once",
			Value:       4,
			Sources:     cli.EnvVars("RISKVIEW_CONCURRENCY"),
			Destination: &concurrency,
		},
	}
	flags = append(flags, configFile.Flags()...)

	return &cli.Command{
		Name:    "render",
		Aliases: []string{"r"},
		Usage:   "Render JSON payloads into HTML fragments",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)

			renderMode, err := types.ParseRenderMode(mode)
			if err != nil {
				// Unknown modes still render, as the unsupported fallback
				logger.Warn("unknown render mode", "mode", mode)
				renderMode = types.RenderMode(mode)
			}

			palette, err := configFile.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load configuration")
			}

			payloads, err := readInputs(c.Root().Reader, inputs)
			if err != nil {
				return err
			}

			uc := usecase.New(
				usecase.WithPalette(palette),
				usecase.WithConcurrency(concurrency),
			)
			results, err := uc.Render.RenderAll(ctx, renderMode, payloads)
			if err != nil {
				return goerr.Wrap(err, "failed to render payloads", goerr.V("mode", renderMode))
			}

			logger.Info("Rendered payloads", "mode", renderMode, "count", len(results))
			return writeOutput(ctx, c.Root().Writer, output, []byte(strings.Join(results, "\n")+"\n"))
		},
	}
}

package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskview/pkg/cli/config"
	"github.com/secmon-lab/riskview/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdDetail() *cli.Command {
	var (
		configFile config.File
		input      string
		output     string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "JSON array of analyses, \"-\" for stdin",
			Value:       stdioPath,
			Destination: &input,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output file (default stdout)",
			Destination: &output,
		},
	}
	flags = append(flags, configFile.Flags()...)

	return &cli.Command{
		Name:  "detail",
		Usage: "Render the detailed result page: analyses, KRIs and internal controls",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			palette, err := configFile.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load configuration")
			}

			payload, err := readInput(c.Root().Reader, input)
			if err != nil {
				return err
			}

			uc := usecase.New(usecase.WithPalette(palette))
			html, err := uc.Render.DetailedResult(ctx, payload)
			if err != nil {
				return goerr.Wrap(err, "failed to render detailed result", goerr.V("input", input))
			}

			return writeOutput(ctx, c.Root().Writer, output, []byte(html+"\n"))
		},
	}
}

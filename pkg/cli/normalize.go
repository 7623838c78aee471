package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskview/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdNormalize() *cli.Command {
	var (
		kind   string
		input  string
		output string
	)

	return &cli.Command{
		Name:  "normalize",
		Usage: "Convert a risk assessment document into render payloads",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "kind",
				Aliases:     []string{"k"},
				Usage:       "Assessment kind [initial|detailed]",
				Value:       string(usecase.NormalizeInitial),
				Destination: &kind,
			},
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "Assessment JSON document, \"-\" for stdin",
				Value:       stdioPath,
				Destination: &input,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output file (default stdout)",
				Destination: &output,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			doc, err := readInput(c.Root().Reader, input)
			if err != nil {
				return err
			}

			uc := usecase.New()
			data, err := uc.Normalize.Normalize(ctx, usecase.NormalizeKind(kind), doc)
			if err != nil {
				return goerr.Wrap(err, "failed to normalize assessment", goerr.V("input", input))
			}

			return writeOutput(ctx, c.Root().Writer, output, data)
		},
	}
}

package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskview/pkg/cli/config"
	domainConfig "github.com/secmon-lab/riskview/pkg/domain/model/config"
	"github.com/secmon-lab/riskview/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdScore() *cli.Command {
	var (
		configFile config.File
		input      string
		output     string
		noColor    bool
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "JSON array of risk entries, \"-\" for stdin",
			Value:       stdioPath,
			Destination: &input,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output file (default stdout)",
			Destination: &output,
		},
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "Disable colored output",
			Destination: &noColor,
		},
	}
	flags = append(flags, configFile.Flags()...)

	return &cli.Command{
		Name:  "score",
		Usage: "Print likelihood and impact scores of risk entries",
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
			report, err := uc.Score.Score(ctx, payload)
			if err != nil {
				return goerr.Wrap(err, "failed to score entries", goerr.V("input", input))
			}

			// Escape codes are for terminals only, never for files
			if noColor || (output != "" && output != stdioPath) {
				color.NoColor = true
			}

			w, closer, err := openOutput(ctx, c.Root().Writer, output)
			if err != nil {
				return err
			}
			defer closer()

			return printScoreTable(w, report, palette)
		},
	}
}

const (
	scoreRowFormat = "%-6s  %-10s  %-6s  %s\n"
	noScore        = "-"
)

func printScoreTable(w io.Writer, report *usecase.ScoreReport, palette *domainConfig.Palette) error {
	bold := color.New(color.Bold)
	if _, err := bold.Fprintf(w, scoreRowFormat, "INDEX", "LIKELIHOOD", "IMPACT", "NAME"); err != nil {
		return goerr.Wrap(err, "failed to write score table")
	}

	for _, s := range report.Scores {
		likelihood := noScore
		if s.Likelihood != nil {
			likelihood = fmt.Sprintf("%d", *s.Likelihood)
		}
		impact := noScore
		if s.Impact != nil {
			impact = fmt.Sprintf("%.2f", *s.Impact)
		}

		// Pad before coloring so escape codes do not shift the columns
		row := fmt.Sprintf(scoreRowFormat,
			orDash(s.Index.String()),
			scoreColor(palette, s.Likelihood).Sprintf("%-10s", likelihood),
			impact,
			s.Name,
		)
		if _, err := io.WriteString(w, row); err != nil {
			return goerr.Wrap(err, "failed to write score table")
		}
	}

	summary := []string{
		"mean likelihood: " + formatMean(report.MeanLikelihood),
		"mean impact: " + formatMean(report.MeanImpact),
	}
	if _, err := fmt.Fprintln(w, strings.Join(summary, "  ")); err != nil {
		return goerr.Wrap(err, "failed to write score table")
	}
	return nil
}

// scoreColor picks the terminal color of the level with the given score
func scoreColor(palette *domainConfig.Palette, score *int) *color.Color {
	if score == nil {
		return color.New(color.Reset)
	}
	for _, level := range palette.Levels {
		if level.Score == *score {
			return terminalColor(level.Color)
		}
	}
	return color.New(color.Reset)
}

// terminalColor maps a CSS color name onto the closest terminal color
func terminalColor(css string) *color.Color {
	switch strings.ToLower(css) {
	case "red", "crimson", "darkred":
		return color.New(color.FgRed, color.Bold)
	case "orange", "yellow", "gold":
		return color.New(color.FgYellow, color.Bold)
	case "green", "lime", "darkgreen":
		return color.New(color.FgGreen, color.Bold)
	case "blue", "navy":
		return color.New(color.FgBlue, color.Bold)
	case "purple", "magenta", "violet":
		return color.New(color.FgMagenta, color.Bold)
	default:
		return color.New(color.Bold)
	}
}

func formatMean(v *float64) string {
	if v == nil {
		return noScore
	}
	return fmt.Sprintf("%.2f", *v)
}

func orDash(s string) string {
	if s == "" {
		return noScore
	}
	return s
}

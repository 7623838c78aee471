package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskview/pkg/domain/model"
	"github.com/secmon-lab/riskview/pkg/domain/types"
	"github.com/secmon-lab/riskview/pkg/service/formatter"
	"github.com/secmon-lab/riskview/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

type RenderUseCase struct {
	formatter   *formatter.Formatter
	concurrency int
}

func NewRenderUseCase(f *formatter.Formatter, concurrency int) *RenderUseCase {
	if concurrency < 1 {
		concurrency = 1
	}
	return &RenderUseCase{
		formatter:   f,
		concurrency: concurrency,
	}
}

// Render decodes payload for mode and formats it. An unrecognized mode
// renders the unsupported fallback without error.
func (uc *RenderUseCase) Render(ctx context.Context, mode types.RenderMode, payload []byte) (string, error) {
	logger := logging.From(ctx)

	if !mode.IsValid() {
		logger.Warn("unsupported render mode", "mode", mode)
		return formatter.UnsupportedOutput, nil
	}

	out, err := formatter.Decode(mode, payload)
	if err != nil {
		return "", goerr.Wrap(errors.Join(ErrInvalidPayload, err), "failed to decode render payload", goerr.V(ModeKey, mode))
	}

	html := uc.formatter.Format(out)
	logger.Debug("rendered payload", "mode", mode, "bytes", len(html))
	return html, nil
}

// RenderAll renders payloads concurrently. Results keep the order of the
// payloads; the first failure cancels the rest.
func (uc *RenderUseCase) RenderAll(ctx context.Context, mode types.RenderMode, payloads [][]byte) ([]string, error) {
	results := make([]string, len(payloads))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(uc.concurrency)
	for i, payload := range payloads {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			html, err := uc.Render(ctx, mode, payload)
			if err != nil {
				return goerr.Wrap(err, "failed to render payload", goerr.V(InputKey, i))
			}
			results[i] = html
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// DetailedResult renders the detailed analysis page: the analyses, then their
// indicators, then their controls, all taken from the same records.
func (uc *RenderUseCase) DetailedResult(ctx context.Context, payload []byte) (string, error) {
	var analyses []model.Analysis
	if err := json.Unmarshal(payload, &analyses); err != nil {
		logging.From(ctx).Error("failed to parse detailed result payload", "error", err)
		return "", goerr.Wrap(errors.Join(ErrInvalidPayload, err), "failed to decode detailed result payload")
	}

	return uc.ComposeDetailedResult(analyses), nil
}

// ComposeDetailedResult is DetailedResult for already decoded analyses
func (uc *RenderUseCase) ComposeDetailedResult(analyses []model.Analysis) string {
	entries := make(formatter.Detailed, len(analyses))
	kris := make(formatter.Indicators, len(analyses))
	controls := make(formatter.Controls, len(analyses))
	for i, a := range analyses {
		entries[i] = a.RiskEntry
		kris[i] = a.KRIGroup
		controls[i] = a.ControlGroup
	}

	return uc.formatter.Format(entries) + "<br>" +
		uc.formatter.Format(kris) +
		uc.formatter.Format(controls)
}

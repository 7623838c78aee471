package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskview/pkg/domain/model/config"
	"github.com/secmon-lab/riskview/pkg/domain/types"
	"github.com/secmon-lab/riskview/pkg/usecase"
)

const analysesPayload = `[{
	"index": "",
	"name": "Financial Risk - Credit",
	"description": "Financial Risk - Credit: borrower default",
	"likelihood": "Medium",
	"impact": "Financial Loss: High",
	"triggering_root_cause_events": "rate shock",
	"triggering_intermediate_events": "arrears",
	"consequences": "loss",
	"kris": [{"indicator": "NPL ratio", "rationale": "tracks defaults"}],
	"controls": [{"control": "Limits", "explanation": "caps exposure"}]
}]`

func TestRenderUseCase_Render(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New()

	t.Run("summary", func(t *testing.T) {
		html, err := uc.Render.Render(ctx, types.RenderModeSummary, []byte(`[[1, "Data breach"], [2, "Fraud"]]`))
		gt.NoError(t, err).Required()
		gt.Value(t, html).Equal("<strong>Risk 1:</strong> Data breach<br><br><strong>Risk 2:</strong> Fraud")
	})

	t.Run("unsupported mode", func(t *testing.T) {
		html, err := uc.Render.Render(ctx, types.RenderMode("output9"), []byte(`[]`))
		gt.NoError(t, err).Required()
		gt.Value(t, html).Equal("Unsupported output type.")
	})

	t.Run("invalid payload", func(t *testing.T) {
		_, err := uc.Render.Render(ctx, types.RenderModeDetailed, []byte(`{`))
		gt.Error(t, err).Is(usecase.ErrInvalidPayload)
	})

	t.Run("custom palette", func(t *testing.T) {
		custom := usecase.New(usecase.WithPalette(&config.Palette{
			Levels: []config.SeverityLevel{{ID: "high", Name: "High", Color: "crimson", Score: 3}},
		}))
		html, err := custom.Render.Render(ctx, types.RenderModeInitial, []byte(`{"description": "d", "likelihood": "High"}`))
		gt.NoError(t, err).Required()
		gt.String(t, html).Contains(`<span style="color: crimson; font-weight: bold;">High</span>`)
	})
}

func TestRenderUseCase_RenderAll(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(usecase.WithConcurrency(2))

	payloads := make([][]byte, 10)
	for i := range payloads {
		payloads[i] = []byte(fmt.Sprintf(`[[%d, "risk %d"]]`, i+1, i+1))
	}

	results, err := uc.Render.RenderAll(ctx, types.RenderModeSummary, payloads)
	gt.NoError(t, err).Required()
	gt.Array(t, results).Length(10)
	for i, html := range results {
		gt.Value(t, html).Equal(fmt.Sprintf("<strong>Risk %d:</strong> risk %d", i+1, i+1))
	}

	t.Run("one failure fails all", func(t *testing.T) {
		bad := append([][]byte{}, payloads...)
		bad[3] = []byte(`{`)
		_, err := uc.Render.RenderAll(ctx, types.RenderModeSummary, bad)
		gt.Error(t, err).Is(usecase.ErrInvalidPayload)
	})

	t.Run("empty input", func(t *testing.T) {
		results, err := uc.Render.RenderAll(ctx, types.RenderModeSummary, nil)
		gt.NoError(t, err).Required()
		gt.Array(t, results).Length(0)
	})
}

func TestRenderUseCase_DetailedResult(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New()

	html, err := uc.Render.DetailedResult(ctx, []byte(analysesPayload))
	gt.NoError(t, err).Required()

	detailed, err := uc.Render.Render(ctx, types.RenderModeDetailed, []byte(analysesPayload))
	gt.NoError(t, err).Required()
	kris, err := uc.Render.Render(ctx, types.RenderModeIndicators, []byte(analysesPayload))
	gt.NoError(t, err).Required()
	controls, err := uc.Render.Render(ctx, types.RenderModeControls, []byte(analysesPayload))
	gt.NoError(t, err).Required()

	gt.Value(t, html).Equal(detailed + "<br>" + kris + controls)
	gt.Bool(t, strings.HasPrefix(html, "<strong><strong>Detailed Analysis</strong> for Financial Risk</strong> - <strong>Credit</strong>: borrower default<br>")).True()
	gt.String(t, html).Contains("<strong>KRIs:</strong><br>&nbsp;&nbsp;&nbsp;&nbsp;<strong>1. NPL ratio</strong>: tracks defaults<br>")
	gt.Bool(t, strings.HasSuffix(html, "<strong>Internal Controls:</strong><br>&nbsp;&nbsp;&nbsp;&nbsp;<strong>1. Limits</strong>: caps exposure<br>")).True()
}

func TestRenderUseCase_DetailedResultInvalidJSON(t *testing.T) {
	uc := usecase.New()
	html, err := uc.Render.DetailedResult(context.Background(), []byte(`not json`))
	gt.Error(t, err).Is(usecase.ErrInvalidPayload)
	gt.Value(t, html).Equal("")
}

func TestRenderUseCase_InvalidPayloadKeepsCause(t *testing.T) {
	uc := usecase.New()
	_, err := uc.Render.Render(context.Background(), types.RenderModeDetailed, []byte(`{`))
	gt.Error(t, err).Is(usecase.ErrInvalidPayload)

	var syntaxErr *json.SyntaxError
	gt.Bool(t, errors.As(err, &syntaxErr)).True()
	gt.String(t, err.Error()).Contains("failed to decode payload")

	var ge *goerr.Error
	gt.Bool(t, errors.As(err, &ge)).True()
	gt.Value(t, ge.Values()[usecase.ModeKey]).Equal(types.RenderModeDetailed)
}

func TestRenderUseCase_DetailedResultKeepsCause(t *testing.T) {
	uc := usecase.New()
	_, err := uc.Render.DetailedResult(context.Background(), []byte(`[{"kris": 1}]`))
	gt.Error(t, err).Is(usecase.ErrInvalidPayload)

	var typeErr *json.UnmarshalTypeError
	gt.Bool(t, errors.As(err, &typeErr)).True()
}

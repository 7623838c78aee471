package formatter

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskview/pkg/domain/types"
)

// ErrUnsupportedMode is returned by Decode for a mode tag with no rule
var ErrUnsupportedMode = goerr.New("unsupported render mode")

// Decode parses a JSON payload into the Output variant for mode
func Decode(mode types.RenderMode, payload []byte) (Output, error) {
	var (
		out Output
		err error
	)

	switch mode {
	case types.RenderModeSummary:
		var v Summary
		err = json.Unmarshal(payload, &v)
		out = v
	case types.RenderModeDetailed:
		var v Detailed
		err = json.Unmarshal(payload, &v)
		out = v
	case types.RenderModeIndicators:
		var v Indicators
		err = json.Unmarshal(payload, &v)
		out = v
	case types.RenderModeControls:
		var v Controls
		err = json.Unmarshal(payload, &v)
		out = v
	case types.RenderModeInitial:
		var v Initial
		err = json.Unmarshal(payload, &v)
		out = v
	default:
		return nil, goerr.Wrap(ErrUnsupportedMode, "no rule for render mode", goerr.V("mode", mode))
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode payload", goerr.V("mode", mode))
	}
	return out, nil
}

// FormatPayload decodes payload for the mode tag and renders it. An unknown
// tag is not an error: it renders UnsupportedOutput.
func (f *Formatter) FormatPayload(mode string, payload []byte) (string, error) {
	renderMode := types.RenderMode(mode)
	if !renderMode.IsValid() {
		return UnsupportedOutput, nil
	}

	out, err := Decode(renderMode, payload)
	if err != nil {
		return "", err
	}
	return f.Format(out), nil
}

// FormatPayload is Formatter.FormatPayload with the default palette
func FormatPayload(mode string, payload []byte) (string, error) {
	return defaultFormatter.FormatPayload(mode, payload)
}

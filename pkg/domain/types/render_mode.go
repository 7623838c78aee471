package types

import "github.com/m-mizutani/goerr/v2"

// RenderMode selects which presentation rule the formatter applies.
// The tag values are the ones used by the page scripts.
type RenderMode string

const (
	RenderModeSummary    RenderMode = "output1"
	RenderModeDetailed   RenderMode = "output2"
	RenderModeIndicators RenderMode = "output3"
	RenderModeControls   RenderMode = "output4"
	RenderModeInitial    RenderMode = "output5"
)

var renderModeNames = map[string]RenderMode{
	"summary":    RenderModeSummary,
	"detailed":   RenderModeDetailed,
	"indicators": RenderModeIndicators,
	"kris":       RenderModeIndicators,
	"controls":   RenderModeControls,
	"initial":    RenderModeInitial,
}

// AllRenderModes returns all valid render modes
func AllRenderModes() []RenderMode {
	return []RenderMode{
		RenderModeSummary,
		RenderModeDetailed,
		RenderModeIndicators,
		RenderModeControls,
		RenderModeInitial,
	}
}

// IsValid checks if the render mode is valid
func (m RenderMode) IsValid() bool {
	switch m {
	case RenderModeSummary,
		RenderModeDetailed,
		RenderModeIndicators,
		RenderModeControls,
		RenderModeInitial:
		return true
	default:
		return false
	}
}

// String returns the string representation of the render mode
func (m RenderMode) String() string {
	return string(m)
}

// ParseRenderMode accepts either a mode tag ("output2") or its name ("detailed")
func ParseRenderMode(s string) (RenderMode, error) {
	if mode, ok := renderModeNames[s]; ok {
		return mode, nil
	}
	mode := RenderMode(s)
	if !mode.IsValid() {
		return "", goerr.New("invalid render mode", goerr.V("mode", s))
	}
	return mode, nil
}

package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskview/pkg/domain/types"
)

func TestRenderMode_IsValid(t *testing.T) {
	tests := []struct {
		name string
		mode types.RenderMode
		want bool
	}{
		{name: "summary", mode: types.RenderModeSummary, want: true},
		{name: "detailed", mode: types.RenderModeDetailed, want: true},
		{name: "indicators", mode: types.RenderModeIndicators, want: true},
		{name: "controls", mode: types.RenderModeControls, want: true},
		{name: "initial", mode: types.RenderModeInitial, want: true},
		{name: "unknown tag", mode: types.RenderMode("output9"), want: false},
		{name: "empty", mode: types.RenderMode(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want {
				gt.B(t, tt.mode.IsValid()).True()
			} else {
				gt.B(t, tt.mode.IsValid()).False()
			}
		})
	}
}

func TestParseRenderMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.RenderMode
		wantErr bool
	}{
		{name: "tag", input: "output1", want: types.RenderModeSummary},
		{name: "tag five", input: "output5", want: types.RenderModeInitial},
		{name: "name", input: "detailed", want: types.RenderModeDetailed},
		{name: "kris alias", input: "kris", want: types.RenderModeIndicators},
		{name: "controls name", input: "controls", want: types.RenderModeControls},
		{name: "unknown tag", input: "output9", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseRenderMode(tt.input)
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err).Required()
			gt.Value(t, got).Equal(tt.want)
		})
	}
}

func TestAllRenderModes(t *testing.T) {
	modes := types.AllRenderModes()
	gt.Array(t, modes).Length(5)
	for _, m := range modes {
		gt.B(t, m.IsValid()).True()
	}
}

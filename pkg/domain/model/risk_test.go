package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskview/pkg/domain/model"
)

func TestRiskIndex_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    model.RiskIndex
		wantErr bool
	}{
		{name: "integer", input: `1`, want: "1"},
		{name: "string", input: `"A-2"`, want: "A-2"},
		{name: "empty string", input: `""`, want: ""},
		{name: "null", input: `null`, want: ""},
		{name: "float", input: `2.50`, want: "2.5"},
		{name: "integral float", input: `1.0`, want: "1"},
		{name: "exponent", input: `1e2`, want: "100"},
		{name: "negative", input: `-3`, want: "-3"},
		{name: "leading zero string", input: `"01"`, want: "01"},
		{name: "object", input: `{"x":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var idx model.RiskIndex
			err := json.Unmarshal([]byte(tt.input), &idx)
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err).Required()
			gt.Value(t, idx).Equal(tt.want)
		})
	}
}

func TestRiskIndex_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		index model.RiskIndex
		wire  string
	}{
		{name: "integer", index: "1", wire: `1`},
		{name: "negative", index: "-2", wire: `-2`},
		{name: "decimal", index: "2.5", wire: `2.5`},
		{name: "label", index: "A-2", wire: `"A-2"`},
		{name: "empty", index: "", wire: `""`},
		{name: "leading zero", index: "01", wire: `"01"`},
		{name: "plus sign", index: "+1", wire: `"+1"`},
		{name: "trailing dot", index: "1.", wire: `"1."`},
		{name: "infinity", index: "Inf", wire: `"Inf"`},
		{name: "not a number", index: "NaN", wire: `"NaN"`},
		{name: "exponent text", index: "1e2", wire: `"1e2"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(model.IndexedRisk{Index: tt.index, Description: "x"})
			gt.NoError(t, err).Required()
			gt.Value(t, string(data)).Equal(`[` + tt.wire + `,"x"]`)

			var decoded model.IndexedRisk
			gt.NoError(t, json.Unmarshal(data, &decoded)).Required()
			gt.Value(t, decoded.Index).Equal(tt.index)
		})
	}
}

func TestIndexedRisk_UnmarshalJSON(t *testing.T) {
	t.Run("pair form", func(t *testing.T) {
		var pairs []model.IndexedRisk
		gt.NoError(t, json.Unmarshal([]byte(`[[1, "Data breach"], ["2", "Fraud"]]`), &pairs)).Required()
		gt.Array(t, pairs).Length(2)
		gt.Value(t, pairs[0].Index).Equal(model.RiskIndex("1"))
		gt.Value(t, pairs[0].Description).Equal("Data breach")
		gt.Value(t, pairs[1].Index).Equal(model.RiskIndex("2"))
		gt.Value(t, pairs[1].Description).Equal("Fraud")
	})

	t.Run("object form with name", func(t *testing.T) {
		var risk model.IndexedRisk
		gt.NoError(t, json.Unmarshal([]byte(`{"index": 3, "name": "Strategic Risk - Innovation"}`), &risk)).Required()
		gt.Value(t, risk.Index).Equal(model.RiskIndex("3"))
		gt.Value(t, risk.Description).Equal("Strategic Risk - Innovation")
	})

	t.Run("wrong length", func(t *testing.T) {
		var risk model.IndexedRisk
		gt.Error(t, json.Unmarshal([]byte(`[1]`), &risk))
	})

	t.Run("not an array", func(t *testing.T) {
		var risk model.IndexedRisk
		gt.Error(t, json.Unmarshal([]byte(`"Data breach"`), &risk))
	})
}

func TestIndexedRisk_MarshalJSON(t *testing.T) {
	data, err := json.Marshal([]model.IndexedRisk{
		{Index: "1", Description: "Data breach"},
		{Index: "B", Description: "Fraud"},
	})
	gt.NoError(t, err).Required()
	gt.Value(t, string(data)).Equal(`[[1,"Data breach"],["B","Fraud"]]`)
}

func TestAnalysis_UnmarshalJSON(t *testing.T) {
	raw := `{
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
	}`

	var a model.Analysis
	gt.NoError(t, json.Unmarshal([]byte(raw), &a)).Required()
	gt.Value(t, a.Name).Equal("Financial Risk - Credit")
	gt.Value(t, a.Likelihood).Equal("Medium")
	gt.B(t, a.HasInterdependencies()).False()
	gt.Array(t, a.KRIs).Length(1)
	gt.Value(t, a.KRIs[0].Indicator).Equal("NPL ratio")
	gt.Array(t, a.Controls).Length(1)
	gt.Value(t, a.Controls[0].Explanation).Equal("caps exposure")

	// The same object is also a plain entry and plain groups
	var entry model.RiskEntry
	gt.NoError(t, json.Unmarshal([]byte(raw), &entry)).Required()
	gt.Value(t, entry).Equal(a.RiskEntry)

	var group model.KRIGroup
	gt.NoError(t, json.Unmarshal([]byte(raw), &group)).Required()
	gt.Value(t, group).Equal(a.KRIGroup)
}

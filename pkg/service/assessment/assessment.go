// Package assessment converts risk assessment documents produced by the
// analysis model into render payloads. Parsing is best effort: malformed
// risks become placeholder entries instead of failing the document.
package assessment

import (
	"context"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskview/pkg/domain/model"
	"github.com/secmon-lab/riskview/pkg/utils/logging"
	"github.com/tidwall/gjson"
)

const (
	notAvailable = "N/A"
	listSep      = ", "
)

// InitialResult is the outcome of a first pass assessment
type InitialResult struct {
	Entries []model.RiskEntry   `json:"entries"`
	Risks   []model.IndexedRisk `json:"risks"`
}

// ParseInitial reads either a bare array of identified risks or
// {"risk_assessment": {"identified_risks": [...]}}. Each identified risk is a
// single-key object wrapping {"description": {tier1: {tier2: text}}, "analysis": {...}}.
func ParseInitial(ctx context.Context, doc []byte) (*InitialResult, error) {
	if !gjson.ValidBytes(doc) {
		return nil, goerr.Wrap(ErrInvalidDocument, "failed to parse initial assessment")
	}

	root := gjson.ParseBytes(doc)
	risks := root
	if !root.IsArray() {
		risks = root.Get("risk_assessment.identified_risks")
	}

	result := &InitialResult{
		Entries: []model.RiskEntry{},
		Risks:   []model.IndexedRisk{},
	}
	if !risks.IsArray() {
		logging.From(ctx).Warn("no identified risks in assessment")
		return result, nil
	}

	for i, item := range risks.Array() {
		index := model.RiskIndex(strconv.Itoa(i + 1))

		entry, ok := parseIdentifiedRisk(item)
		if !ok {
			logging.From(ctx).Warn("malformed identified risk", "index", index, "raw", item.Raw)
			result.Entries = append(result.Entries, placeholder(index, item))
			continue
		}

		entry.Index = index
		result.Entries = append(result.Entries, entry)
		result.Risks = append(result.Risks, model.IndexedRisk{
			Index:       index,
			Description: entry.Name,
		})
	}

	return result, nil
}

// ParseDetailed reads the assessment of a single named risk. The result has
// one element so it can be passed to the detailed renderers as is.
func ParseDetailed(ctx context.Context, doc []byte) ([]model.Analysis, error) {
	if !gjson.ValidBytes(doc) {
		return nil, goerr.Wrap(ErrInvalidDocument, "failed to parse detailed assessment")
	}

	ra := gjson.GetBytes(doc, "risk_assessment")
	if !ra.IsObject() {
		return nil, goerr.Wrap(ErrMissingAssessment, "failed to parse detailed assessment")
	}

	name := ra.Get("risk_name").String()
	analysis := ra.Get("analysis")

	entry := analysisFields(analysis)
	entry.Name = name
	entry.Description = name + ": " + ra.Get("description").String()
	// A single-risk assessment has no interdependencies
	entry.Interdependencies = ""

	result := model.Analysis{
		RiskEntry: entry,
		KRIGroup:  model.KRIGroup{KRIs: []model.KRI{}},
		ControlGroup: model.ControlGroup{
			Controls: []model.Control{},
		},
	}
	for _, v := range ra.Get("key_risk_indicators").Array() {
		result.KRIs = append(result.KRIs, model.KRI{
			Indicator: v.Get("indicator").String(),
			Rationale: v.Get("rationale").String(),
		})
	}
	for _, v := range ra.Get("internal_controls").Array() {
		result.Controls = append(result.Controls, model.Control{
			Control:     v.Get("control").String(),
			Explanation: v.Get("explanation").String(),
		})
	}

	logging.From(ctx).Debug("parsed detailed assessment",
		"name", name,
		"kri_count", len(result.KRIs),
		"control_count", len(result.Controls),
	)

	return []model.Analysis{result}, nil
}

func parseIdentifiedRisk(item gjson.Result) (model.RiskEntry, bool) {
	if !item.IsObject() {
		return model.RiskEntry{}, false
	}
	_, data, ok := firstMember(item)
	if !ok || !data.IsObject() {
		return model.RiskEntry{}, false
	}

	description := data.Get("description")
	analysis := data.Get("analysis")
	if !description.Exists() || !analysis.Exists() {
		return model.RiskEntry{}, false
	}

	tier1, tier1Body, ok := firstMember(description)
	if !ok || !tier1Body.IsObject() {
		return model.RiskEntry{}, false
	}
	tier2, text, ok := firstMember(tier1Body)
	if !ok {
		return model.RiskEntry{}, false
	}

	entry := analysisFields(analysis)
	entry.Name = tier1 + " - " + tier2
	entry.Description = entry.Name + ": " + text.String()
	return entry, true
}

func analysisFields(analysis gjson.Result) model.RiskEntry {
	likelihood := notAvailable
	if v := analysis.Get("likelihood"); v.Exists() {
		likelihood = v.String()
	}

	return model.RiskEntry{
		Likelihood:                   likelihood,
		Impact:                       impactText(analysis.Get("impact")),
		TriggeringRootCauseEvents:    joinList(analysis.Get("triggering_root_cause_events")),
		TriggeringIntermediateEvents: joinList(analysis.Get("triggering_intermediate_events")),
		Consequences:                 joinList(analysis.Get("consequences")),
		Interdependencies:            joinList(analysis.Get("interdependencies")),
	}
}

// impactText flattens {category: level} into "category: level, ..." keeping
// document order
func impactText(v gjson.Result) string {
	if !v.IsObject() {
		return v.String()
	}

	var pairs []model.ImpactPair
	v.ForEach(func(key, value gjson.Result) bool {
		pairs = append(pairs, model.ImpactPair{
			Category: key.String(),
			Severity: value.String(),
		})
		return true
	})
	return model.FormatImpact(pairs)
}

func joinList(v gjson.Result) string {
	if !v.IsArray() {
		return v.String()
	}
	items := v.Array()
	values := make([]string, len(items))
	for i, item := range items {
		values[i] = item.String()
	}
	return strings.Join(values, listSep)
}

func firstMember(obj gjson.Result) (string, gjson.Result, bool) {
	var (
		key   string
		value gjson.Result
		found bool
	)
	obj.ForEach(func(k, v gjson.Result) bool {
		key, value, found = k.String(), v, true
		return false
	})
	return key, value, found
}

func placeholder(index model.RiskIndex, item gjson.Result) model.RiskEntry {
	raw := item.Raw
	if item.IsObject() {
		if _, data, ok := firstMember(item); ok {
			raw = data.Raw
		}
	}

	return model.RiskEntry{
		Index:                        index,
		Description:                  raw,
		Likelihood:                   notAvailable,
		Impact:                       notAvailable,
		TriggeringRootCauseEvents:    notAvailable,
		TriggeringIntermediateEvents: notAvailable,
		Consequences:                 notAvailable,
		Interdependencies:            notAvailable,
	}
}

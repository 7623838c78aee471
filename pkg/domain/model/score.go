package model

import (
	"regexp"
	"strings"

	"github.com/secmon-lab/riskview/pkg/domain/model/config"
)

// RiskScore is the numeric view of an entry's likelihood and impact.
// Nil fields mean no severity word could be scored.
type RiskScore struct {
	Index      RiskIndex
	Name       string
	Likelihood *int
	Impact     *float64
}

// ImpactScore averages the scores of every whole-word, case-sensitive
// occurrence of a palette level name in the impact text.
func ImpactScore(impact string, palette *config.Palette) (float64, bool) {
	names := palette.Names()
	if len(names) == 0 {
		return 0, false
	}

	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = regexp.QuoteMeta(name)
	}
	re := regexp.MustCompile(`\b(` + strings.Join(quoted, "|") + `)\b`)

	var sum, count int
	for _, word := range re.FindAllString(impact, -1) {
		if score, ok := palette.ScoreOf(word); ok {
			sum += score
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return float64(sum) / float64(count), true
}

// Score computes the likelihood and impact scores of an entry
func Score(entry RiskEntry, palette *config.Palette) RiskScore {
	result := RiskScore{
		Index: entry.Index,
		Name:  entry.Name,
	}
	if result.Name == "" {
		result.Name = entry.Description
	}

	if score, ok := palette.ScoreOf(entry.Likelihood); ok {
		result.Likelihood = &score
	}
	if score, ok := ImpactScore(entry.Impact, palette); ok {
		result.Impact = &score
	}
	return result
}

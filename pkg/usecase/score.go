package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskview/pkg/domain/model"
	"github.com/secmon-lab/riskview/pkg/domain/model/config"
	"github.com/secmon-lab/riskview/pkg/service/assessment"
	"github.com/secmon-lab/riskview/pkg/utils/logging"
)

// ScoreReport holds per entry scores and their means over scored entries
type ScoreReport struct {
	Scores         []model.RiskScore
	MeanLikelihood *float64
	MeanImpact     *float64
}

type ScoreUseCase struct {
	palette *config.Palette
}

func NewScoreUseCase(palette *config.Palette) *ScoreUseCase {
	return &ScoreUseCase{palette: palette}
}

// Score scores a JSON array of risk entries. The output of an initial
// normalization, {"entries": [...], "risks": [...]}, is accepted as well.
func (uc *ScoreUseCase) Score(ctx context.Context, payload []byte) (*ScoreReport, error) {
	var entries []model.RiskEntry
	if err := json.Unmarshal(payload, &entries); err != nil {
		var initial assessment.InitialResult
		if json.Unmarshal(payload, &initial) != nil || initial.Entries == nil {
			return nil, goerr.Wrap(errors.Join(ErrInvalidPayload, err), "failed to decode score payload")
		}
		entries = initial.Entries
	}

	report := uc.ScoreEntries(entries)
	logging.From(ctx).Debug("scored entries", "count", len(entries))
	return report, nil
}

// ScoreEntries scores already decoded entries
func (uc *ScoreUseCase) ScoreEntries(entries []model.RiskEntry) *ScoreReport {
	report := &ScoreReport{
		Scores: make([]model.RiskScore, len(entries)),
	}

	var likelihoodSum, impactSum float64
	var likelihoodCount, impactCount int
	for i, entry := range entries {
		s := model.Score(entry, uc.palette)
		report.Scores[i] = s
		if s.Likelihood != nil {
			likelihoodSum += float64(*s.Likelihood)
			likelihoodCount++
		}
		if s.Impact != nil {
			impactSum += *s.Impact
			impactCount++
		}
	}

	if likelihoodCount > 0 {
		mean := likelihoodSum / float64(likelihoodCount)
		report.MeanLikelihood = &mean
	}
	if impactCount > 0 {
		mean := impactSum / float64(impactCount)
		report.MeanImpact = &mean
	}
	return report
}

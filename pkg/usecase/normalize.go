package usecase

import (
	"context"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskview/pkg/service/assessment"
	"github.com/secmon-lab/riskview/pkg/utils/logging"
	"github.com/tidwall/pretty"
)

// NormalizeKind selects which assessment document shape is expected
type NormalizeKind string

const (
	NormalizeInitial  NormalizeKind = "initial"
	NormalizeDetailed NormalizeKind = "detailed"
)

type NormalizeUseCase struct{}

func NewNormalizeUseCase() *NormalizeUseCase {
	return &NormalizeUseCase{}
}

// Normalize converts an assessment document into an indented JSON render
// payload ending with a newline.
// Initial documents give {"entries": [...], "risks": [[index, name], ...]};
// detailed documents give a one element array of analyses.
func (uc *NormalizeUseCase) Normalize(ctx context.Context, kind NormalizeKind, doc []byte) ([]byte, error) {
	var (
		result any
		err    error
	)

	switch kind {
	case NormalizeInitial:
		var r *assessment.InitialResult
		r, err = assessment.ParseInitial(ctx, doc)
		if err == nil {
			logging.From(ctx).Info("normalized initial assessment",
				"entry_count", len(r.Entries),
				"risk_count", len(r.Risks),
			)
		}
		result = r
	case NormalizeDetailed:
		result, err = assessment.ParseDetailed(ctx, doc)
	default:
		return nil, goerr.Wrap(ErrUnknownNormalizeKind, "cannot normalize document", goerr.V(KindKey, kind))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to normalize assessment", goerr.V(KindKey, kind))
	}

	data, err := json.Marshal(result)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode normalized payload", goerr.V(KindKey, kind))
	}
	return pretty.Pretty(data), nil
}

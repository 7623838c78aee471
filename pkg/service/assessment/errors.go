package assessment

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidDocument   = goerr.New("assessment document is not valid JSON")
	ErrMissingAssessment = goerr.New("risk_assessment object is missing")
)

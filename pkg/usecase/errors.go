package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for use case layer
var (
	ErrInvalidPayload       = goerr.New("invalid render payload")
	ErrUnknownNormalizeKind = goerr.New("unknown normalize kind")
)

// Context keys for error values
const (
	ModeKey  = "mode"
	KindKey  = "kind"
	InputKey = "input"
)

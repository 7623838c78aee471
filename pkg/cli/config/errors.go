package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrInvalidConfig       = goerr.New("invalid configuration")
	ErrDuplicateSeverityID = goerr.New("duplicate severity ID")
	ErrInvalidSeverityID   = goerr.New("invalid severity ID format")
	ErrMissingName         = goerr.New("name is required")
	ErrMissingColor        = goerr.New("color is required")
	ErrInvalidScore        = goerr.New("score must be between 1 and 5")
	ErrInvalidLogLevel     = goerr.New("invalid log level")
	ErrInvalidLogFormat    = goerr.New("invalid log format")
)

// Context keys for error values
const (
	ConfigPathKey    = "config_path"
	SeverityIDKey    = "severity_id"
	SeverityIndexKey = "severity_index"
)

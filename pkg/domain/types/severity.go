package types

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// SeverityID represents a unique identifier for a severity level
type SeverityID string

const (
	SeverityHigh   SeverityID = "high"
	SeverityMedium SeverityID = "medium"
	SeverityLow    SeverityID = "low"
)

var idPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// AllSeverities returns the built-in severity levels, most severe first
func AllSeverities() []SeverityID {
	return []SeverityID{
		SeverityHigh,
		SeverityMedium,
		SeverityLow,
	}
}

// Validate checks if the SeverityID is valid
func (s SeverityID) Validate() error {
	if s == "" {
		return goerr.New("severity ID cannot be empty")
	}
	if !idPattern.MatchString(string(s)) {
		return goerr.New("severity ID must be lowercase alphanumeric with hyphens", goerr.V("id", s))
	}
	return nil
}

// Matches reports whether word names this severity, ignoring case
func (s SeverityID) Matches(word string) bool {
	return strings.EqualFold(string(s), word)
}

// String returns the string representation of SeverityID
func (s SeverityID) String() string {
	return string(s)
}

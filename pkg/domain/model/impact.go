package model

import "strings"

const (
	impactPairSep  = ", "
	impactValueSep = ": "
)

// ImpactPair is one "Category: Severity" element of an impact string
type ImpactPair struct {
	Category string
	Severity string
}

// ParseImpact splits "Key: Value, Key: Value" into pairs. ok is false when the
// text is empty or any element lacks the ": " separator. Anything after a
// second separator in an element is dropped.
func ParseImpact(impact string) ([]ImpactPair, bool) {
	if impact == "" {
		return nil, false
	}

	elements := strings.Split(impact, impactPairSep)
	pairs := make([]ImpactPair, 0, len(elements))
	for _, element := range elements {
		parts := strings.Split(element, impactValueSep)
		if len(parts) < 2 {
			return nil, false
		}
		pairs = append(pairs, ImpactPair{
			Category: parts[0],
			Severity: parts[1],
		})
	}
	return pairs, true
}

// FormatImpact is the inverse of ParseImpact
func FormatImpact(pairs []ImpactPair) string {
	elements := make([]string, len(pairs))
	for i, p := range pairs {
		elements[i] = p.Category + impactValueSep + p.Severity
	}
	return strings.Join(elements, impactPairSep)
}

package config

import (
	"strings"

	"github.com/secmon-lab/riskview/pkg/domain/types"
)

// SeverityLevel represents a severity word with its display color and score
type SeverityLevel struct {
	ID    types.SeverityID
	Name  string
	Color string
	Score int
}

// Palette holds the severity levels used for highlighting and scoring
type Palette struct {
	Levels []SeverityLevel
}

var defaultLevels = map[types.SeverityID]SeverityLevel{
	types.SeverityHigh:   {Name: "High", Color: "red", Score: 3},
	types.SeverityMedium: {Name: "Medium", Color: "orange", Score: 2},
	types.SeverityLow:    {Name: "Low", Color: "green", Score: 1},
}

// DefaultPalette returns the built-in high/medium/low palette, most severe first
func DefaultPalette() *Palette {
	ids := types.AllSeverities()
	levels := make([]SeverityLevel, len(ids))
	for i, id := range ids {
		level := defaultLevels[id]
		level.ID = id
		levels[i] = level
	}
	return &Palette{Levels: levels}
}

// Lookup finds the level whose ID equals word, ignoring case
func (p *Palette) Lookup(word string) (SeverityLevel, bool) {
	if p == nil {
		return SeverityLevel{}, false
	}
	for _, level := range p.Levels {
		if level.ID.Matches(word) {
			return level, true
		}
	}
	return SeverityLevel{}, false
}

// ScoreOf returns the score of the level whose Name equals word exactly
func (p *Palette) ScoreOf(word string) (int, bool) {
	if p == nil {
		return 0, false
	}
	for _, level := range p.Levels {
		if level.Name == word {
			return level.Score, true
		}
	}
	return 0, false
}

// Names returns level names in palette order
func (p *Palette) Names() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.Levels))
	for _, level := range p.Levels {
		if strings.TrimSpace(level.Name) != "" {
			names = append(names, level.Name)
		}
	}
	return names
}

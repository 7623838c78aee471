package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskview/pkg/domain/model/config"
	"github.com/secmon-lab/riskview/pkg/domain/types"
)

func TestPalette_Lookup(t *testing.T) {
	p := config.DefaultPalette()

	level, ok := p.Lookup("HIGH")
	gt.B(t, ok).True()
	gt.Value(t, level.ID).Equal(types.SeverityHigh)
	gt.Value(t, level.Color).Equal("red")

	level, ok = p.Lookup("medium")
	gt.B(t, ok).True()
	gt.Value(t, level.Color).Equal("orange")

	_, ok = p.Lookup("critical")
	gt.B(t, ok).False()

	var nilPalette *config.Palette
	_, ok = nilPalette.Lookup("high")
	gt.B(t, ok).False()
}

func TestPalette_ScoreOf(t *testing.T) {
	p := config.DefaultPalette()

	score, ok := p.ScoreOf("Low")
	gt.B(t, ok).True()
	gt.Value(t, score).Equal(1)

	_, ok = p.ScoreOf("low")
	gt.B(t, ok).False()
}

func TestPalette_Names(t *testing.T) {
	gt.Value(t, config.DefaultPalette().Names()).Equal([]string{"High", "Medium", "Low"})
}

func TestDefaultPalette_FollowsSeverityOrder(t *testing.T) {
	p := config.DefaultPalette()
	ids := types.AllSeverities()
	gt.Array(t, p.Levels).Length(len(ids))
	for i, id := range ids {
		gt.Value(t, p.Levels[i].ID).Equal(id)
		gt.Bool(t, p.Levels[i].Color != "").True()
	}
	gt.Number(t, p.Levels[0].Score).Equal(3)
	gt.Number(t, p.Levels[2].Score).Equal(1)

	// Each call returns an independent palette
	p.Levels[0].Color = "black"
	gt.Value(t, config.DefaultPalette().Levels[0].Color).Equal("red")
}

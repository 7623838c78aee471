package usecase

import (
	"github.com/secmon-lab/riskview/pkg/domain/model/config"
	"github.com/secmon-lab/riskview/pkg/service/formatter"
)

type UseCases struct {
	palette     *config.Palette
	concurrency int
	Render      *RenderUseCase
	Normalize   *NormalizeUseCase
	Score       *ScoreUseCase
}

type Option func(*UseCases)

func WithPalette(p *config.Palette) Option {
	return func(uc *UseCases) {
		uc.palette = p
	}
}

// WithConcurrency bounds how many payloads RenderAll formats at once
func WithConcurrency(n int) Option {
	return func(uc *UseCases) {
		uc.concurrency = n
	}
}

func New(opts ...Option) *UseCases {
	uc := &UseCases{
		palette:     config.DefaultPalette(),
		concurrency: 4,
	}

	for _, opt := range opts {
		opt(uc)
	}
	if uc.palette == nil {
		uc.palette = config.DefaultPalette()
	}

	uc.Render = NewRenderUseCase(formatter.New(formatter.WithPalette(uc.palette)), uc.concurrency)
	uc.Normalize = NewNormalizeUseCase()
	uc.Score = NewScoreUseCase(uc.palette)

	return uc
}

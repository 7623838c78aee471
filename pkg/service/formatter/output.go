package formatter

import (
	"github.com/secmon-lab/riskview/pkg/domain/model"
	"github.com/secmon-lab/riskview/pkg/domain/types"
)

// Output is a render payload. Each variant carries the data of exactly one
// render mode.
type Output interface {
	Mode() types.RenderMode
	isOutput()
}

// Summary lists risks as "Risk N: description"
type Summary []model.IndexedRisk

// Detailed renders the full analysis of several risks
type Detailed []model.RiskEntry

// Indicators renders key risk indicator lists
type Indicators []model.KRIGroup

// Controls renders internal control lists
type Controls []model.ControlGroup

// Initial renders the first-pass analysis of a single risk
type Initial model.RiskEntry

func (Summary) Mode() types.RenderMode    { return types.RenderModeSummary }
func (Detailed) Mode() types.RenderMode   { return types.RenderModeDetailed }
func (Indicators) Mode() types.RenderMode { return types.RenderModeIndicators }
func (Controls) Mode() types.RenderMode   { return types.RenderModeControls }
func (Initial) Mode() types.RenderMode    { return types.RenderModeInitial }

func (Summary) isOutput()    {}
func (Detailed) isOutput()   {}
func (Indicators) isOutput() {}
func (Controls) isOutput()   {}
func (Initial) isOutput()    {}

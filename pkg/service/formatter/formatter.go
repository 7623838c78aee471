package formatter

import (
	"fmt"
	"strings"

	"github.com/secmon-lab/riskview/pkg/domain/model"
	"github.com/secmon-lab/riskview/pkg/domain/model/config"
)

// UnsupportedOutput is returned for payloads no rule applies to
const UnsupportedOutput = "Unsupported output type."

const (
	blockSep = "<br><br>"
	lineBr   = "<br>"
	indent   = "&nbsp;&nbsp;&nbsp;&nbsp;"
	notAvail = "N/A"

	labelDetailed = "Detailed Analysis"
	labelInitial  = "Initial Analysis"

	headerKRIs     = "<strong>KRIs:</strong>"
	headerControls = "<strong>Internal Controls:</strong>"
)

// Formatter renders outputs into HTML fragments. It holds no mutable state
// and is safe for concurrent use.
type Formatter struct {
	palette *config.Palette
}

type Option func(*Formatter)

// WithPalette replaces the severity palette used by ColorCode
func WithPalette(p *config.Palette) Option {
	return func(f *Formatter) {
		if p != nil {
			f.palette = p
		}
	}
}

func New(opts ...Option) *Formatter {
	f := &Formatter{
		palette: config.DefaultPalette(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var defaultFormatter = New()

// Format renders out with the default palette
func Format(out Output) string {
	return defaultFormatter.Format(out)
}

// Format renders out into an HTML fragment. Nil outputs and unknown variants
// yield UnsupportedOutput.
func (f *Formatter) Format(out Output) string {
	switch v := out.(type) {
	case Summary:
		return f.summary(v)
	case Detailed:
		return f.detailed(v)
	case Indicators:
		return f.indicators(v)
	case Controls:
		return f.controls(v)
	case Initial:
		entry := model.RiskEntry(v)
		return f.entry(labelInitial, &entry)
	default:
		return UnsupportedOutput
	}
}

func (f *Formatter) summary(risks Summary) string {
	blocks := make([]string, len(risks))
	for i, r := range risks {
		blocks[i] = HighlightTitle(fmt.Sprintf("<strong>Risk %s:</strong> %s", r.Index, r.Description))
	}
	return strings.Join(blocks, blockSep)
}

func (f *Formatter) detailed(entries Detailed) string {
	blocks := make([]string, len(entries))
	for i := range entries {
		blocks[i] = f.entry(labelDetailed, &entries[i])
	}
	return strings.Join(blocks, blockSep)
}

// entry lays out one analysis block. Lines are newline separated so that the
// title pattern only sees the first line.
func (f *Formatter) entry(label string, e *model.RiskEntry) string {
	lines := []string{
		fmt.Sprintf("<strong>%s</strong> for %s%s", label, e.Description, lineBr),
		fmt.Sprintf("<strong>Likelihood:</strong> %s%s", f.ColorCode(e.Likelihood), lineBr),
		fmt.Sprintf("<strong>Impact:</strong>%s%s%s", lineBr, f.impact(e.Impact), lineBr),
		fmt.Sprintf("<strong>Root causes:</strong> %s%s", e.TriggeringRootCauseEvents, lineBr),
		fmt.Sprintf("<strong>Intermediate events:</strong> %s%s", e.TriggeringIntermediateEvents, lineBr),
		fmt.Sprintf("<strong>Consequences:</strong> %s%s", e.Consequences, lineBr),
	}
	if e.HasInterdependencies() {
		lines = append(lines, fmt.Sprintf("<strong>Interdependencies:</strong> %s%s", e.Interdependencies, lineBr))
	}
	return HighlightTitle(strings.Join(lines, "\n"))
}

func (f *Formatter) impact(impact string) string {
	pairs, ok := model.ParseImpact(impact)
	if !ok {
		return notAvail
	}

	items := make([]string, len(pairs))
	for i, p := range pairs {
		items[i] = fmt.Sprintf("%s- <strong>%s:</strong> %s", indent, p.Category, f.ColorCode(p.Severity))
	}
	return strings.Join(items, lineBr) + lineBr
}

func (f *Formatter) indicators(groups Indicators) string {
	blocks := make([]string, len(groups))
	for i, g := range groups {
		items := make([]string, len(g.KRIs))
		for n, kri := range g.KRIs {
			items[n] = numberedItem(n+1, kri.Indicator, kri.Rationale)
		}
		blocks[i] = listBlock(headerKRIs, items)
	}
	return strings.Join(blocks, lineBr)
}

func (f *Formatter) controls(groups Controls) string {
	blocks := make([]string, len(groups))
	for i, g := range groups {
		items := make([]string, len(g.Controls))
		for n, c := range g.Controls {
			items[n] = numberedItem(n+1, c.Control, c.Explanation)
		}
		blocks[i] = listBlock(headerControls, items)
	}
	return strings.Join(blocks, lineBr)
}

func numberedItem(n int, title, body string) string {
	return fmt.Sprintf("%s<strong>%d. %s</strong>: %s", indent, n, title, body)
}

func listBlock(header string, items []string) string {
	return HighlightTitle(header) + lineBr + strings.Join(items, lineBr) + lineBr
}

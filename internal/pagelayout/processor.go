// Package pagelayout composes a raw page into a finished 24x40 screen.
package pagelayout

import (
	"fmt"

	"teletext/internal/domain"
	"teletext/internal/grid"
	"teletext/internal/indicators"
	"teletext/internal/logging"
)

// Options controls one composition
type Options struct {
	Breadcrumbs []string // history up to the cursor
	Alignment   grid.Alignment
	FullScreen  bool // false passes pages through untouched
	Hints       []string
}

// Processor combines the grid engine with the indicator renderer
type Processor struct {
	renderer *indicators.Renderer
}

// New creates a Processor. A nil renderer uses the defaults.
func New(r *indicators.Renderer) *Processor {
	if r == nil {
		r = indicators.New()
	}
	return &Processor{renderer: r}
}

// Renderer returns the indicator renderer used for composition
func (p *Processor) Renderer() *indicators.Renderer {
	return p.renderer
}

// Process lays out page. The result keeps the id, title, links and meta of
// the input; only the rows change.
func (p *Processor) Process(page domain.Page, o Options) domain.Page {
	if !o.FullScreen {
		return page
	}

	kind := domain.Classify(page)
	onIndex := kind.Category() == domain.CategoryIndex
	cont := page.Meta.Continuation

	info := indicators.HeaderInfo{
		PageID:       page.ID,
		Continuation: cont,
		LastUpdated:  page.Meta.LastUpdated,
	}
	if !onIndex {
		info.Breadcrumbs = o.Breadcrumbs
	}
	header := p.renderer.Header(page.Title, info)

	footer := p.renderer.Footer(indicators.FooterInfo{
		OnIndex:     onIndex,
		HasPrevious: cont.HasPrevious(),
		HasNext:     cont.HasNext(),
		Hints:       append(kindHints(kind), o.Hints...),
		Links:       page.ColoredLinks(),
	})

	available := grid.Height - len(header) - len(footer)
	rows := make([]string, 0, grid.Height)
	rows = append(rows, header[:]...)
	rows = append(rows, grid.OptimizeSpacing(page.Rows, available, o.Alignment)...)
	rows = append(rows, footer[:]...)

	if err := grid.Check(rows); err != nil {
		logging.Debugf("pagelayout: %s: %v", page.ID, err)
	}

	out := page.Clone()
	out.Rows = grid.Normalize(rows)
	return out
}

// kindHints are the footer hints a page earns from its category
func kindHints(k domain.PageKind) []string {
	switch k := k.(type) {
	case domain.AIMenuPage:
		return optionRange(k.Options, "CHOOSE")
	case domain.QuizPage:
		return optionRange(k.Options, "ANSWER")
	}
	return nil
}

func optionRange(opts []string, verb string) []string {
	switch len(opts) {
	case 0:
		return nil
	case 1:
		return []string{fmt.Sprintf("%s=%s", opts[0], verb)}
	}
	return []string{fmt.Sprintf("%s-%s=%s", opts[0], opts[len(opts)-1], verb)}
}

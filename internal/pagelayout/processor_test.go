package pagelayout

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teletext/internal/domain"
	"teletext/internal/grid"
	"teletext/internal/indicators"
	"teletext/internal/paginate"
)

var testNow = time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)

func newProcessor() *Processor {
	return New(indicators.New(indicators.WithClock(func() time.Time { return testNow })))
}

func full(o Options) Options {
	o.FullScreen = true
	return o
}

func TestProcessComposesFullGrid(t *testing.T) {
	p := newProcessor()
	page := domain.Page{
		ID:    "201",
		Title: "Headlines",
		Rows:  []string{"Storm hits coast", "Markets rally"},
		Links: []domain.Link{{Label: "Sport", Target: "300", Color: domain.ColorGreen}},
	}

	out := p.Process(page, full(Options{Breadcrumbs: []string{"100", "201"}}))

	require.NoError(t, grid.Check(out.Rows))
	assert.Contains(t, out.Rows[0], "HEADLINES")
	assert.Equal(t, grid.Fit("100 > 201", grid.Width), out.Rows[1])
	assert.Equal(t, grid.Fit("Storm hits coast", grid.Width), out.Rows[2])
	assert.Equal(t, grid.Blank(), out.Rows[21])
	assert.Equal(t, grid.Rule('─'), out.Rows[22])
	assert.Equal(t, grid.Fit("100=INDEX 🟢Sport", grid.Width), out.Rows[23])
}

func TestProcessKeepsIdentity(t *testing.T) {
	p := newProcessor()
	page := domain.Page{
		ID:    "450",
		Title: "Weather",
		Rows:  []string{"Sunny"},
		Links: []domain.Link{{Label: "Index", Target: "100", Color: domain.ColorRed}},
		Meta:  domain.Meta{Source: "met", LastUpdated: testNow, InputOptions: []string{"1"}},
	}

	out := p.Process(page, full(Options{}))

	assert.Equal(t, page.ID, out.ID)
	assert.Equal(t, page.Title, out.Title)
	assert.Equal(t, page.Links, out.Links)
	assert.Equal(t, page.Meta, out.Meta)
	assert.Equal(t, []string{"Sunny"}, page.Rows, "input rows untouched")
}

func TestProcessSuppressesBreadcrumbsOnIndex(t *testing.T) {
	p := newProcessor()
	page := domain.Page{ID: "100", Title: "Teletext"}

	out := p.Process(page, full(Options{Breadcrumbs: []string{"300", "100"}}))

	assert.Equal(t, grid.Rule('═'), out.Rows[1])
	assert.Equal(t, grid.Blank(), out.Rows[23], "no 100=INDEX hint on the index")
}

func TestProcessContinuationPages(t *testing.T) {
	p := newProcessor()
	content := make([]string, 50)
	for i := range content {
		content[i] = fmt.Sprintf("line %d", i+1)
	}
	chain, err := paginate.Paginate("201", "Long read", content, grid.HeaderRows, grid.FooterRows, nil)
	require.NoError(t, err)
	require.Len(t, chain, 3)

	first := p.Process(chain[0], full(Options{}))
	middle := p.Process(chain[1], full(Options{}))
	last := p.Process(chain[2], full(Options{}))

	for _, out := range []domain.Page{first, middle, last} {
		require.NoError(t, grid.Check(out.Rows), out.ID)
	}
	assert.Equal(t, grid.Fit("Page 1/3", grid.Width), first.Rows[1])
	assert.Equal(t, grid.Fit("100=INDEX ↓=MORE", grid.Width), first.Rows[23])
	assert.Equal(t, grid.Fit("100=INDEX ↑↓=SCROLL", grid.Width), middle.Rows[23])
	assert.Equal(t, grid.Fit("100=INDEX ↑=BACK", grid.Width), last.Rows[23])
	assert.Equal(t, grid.Fit("line 21", grid.Width), middle.Rows[2])
}

func TestProcessTimeSensitiveHeader(t *testing.T) {
	p := newProcessor()
	page := domain.Page{ID: "301", Title: "Results", Meta: domain.Meta{LastUpdated: testNow.Add(-181 * time.Second)}}

	out := p.Process(page, full(Options{}))

	assert.Equal(t, grid.Fit("UPDATED 12:26  CACHED", grid.Width), out.Rows[1])
}

func TestProcessMenuHints(t *testing.T) {
	p := newProcessor()
	page := domain.Page{
		ID:    "500",
		Title: "Ask the oracle",
		Meta:  domain.Meta{InputMode: domain.InputSingle, InputOptions: []string{"1", "2", "3"}},
	}

	out := p.Process(page, full(Options{Hints: []string{"←=BACK"}}))

	assert.Equal(t, grid.Fit("100=INDEX 1-3=CHOOSE ←=BACK", grid.Width), out.Rows[23])
}

func TestProcessOverflowIsDropped(t *testing.T) {
	p := newProcessor()
	page := domain.Page{ID: "800", Title: "Dev", Rows: strings.Split(strings.Repeat("x\n", 40), "\n")}

	out := p.Process(page, full(Options{Alignment: grid.AlignCenter}))

	require.NoError(t, grid.Check(out.Rows))
	assert.Equal(t, grid.Rule('─'), out.Rows[22])
}

func TestProcessEveryAlignmentIsValid(t *testing.T) {
	p := newProcessor()
	page := domain.Page{ID: "202", Title: strings.Repeat("T", 60), Rows: []string{"a b c", strings.Repeat("word ", 30)}}

	for _, a := range []grid.Alignment{grid.AlignLeft, grid.AlignCenter, grid.AlignJustify} {
		out := p.Process(page, full(Options{Alignment: a, Breadcrumbs: []string{"100", "200", "201", "202", "203"}}))
		assert.True(t, grid.Validate(out.Rows), a.String())
	}
}

func TestProcessPassThroughWhenNotFullScreen(t *testing.T) {
	p := newProcessor()
	page := domain.Page{ID: "201", Title: "Pre-composed", Rows: []string{"as is"}}

	assert.Equal(t, page, p.Process(page, Options{}))
}

// Package indicators renders the navigational decorations of a page: header
// and footer rows, breadcrumbs, arrows, help hints and freshness badges.
package indicators

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"teletext/internal/domain"
	"teletext/internal/grid"
)

const (
	titleWidth    = 28
	pageNumWidth  = grid.Width - titleWidth
	crumbSep      = " > "
	maxCrumbs     = 3
	buttonLabel   = 8
	timestampForm = "15:04"
)

// defaultThresholds is the age after which content of a type counts as cached.
// domain.ContentNone holds the default for other types.
var defaultThresholds = map[domain.ContentType]time.Duration{
	domain.ContentNews:    5 * time.Minute,
	domain.ContentSport:   2 * time.Minute,
	domain.ContentMarkets: 5 * time.Minute,
	domain.ContentWeather: 30 * time.Minute,
	domain.ContentNone:    10 * time.Minute,
}

var buttonEmoji = map[domain.Color]string{
	domain.ColorRed:    "🔴",
	domain.ColorGreen:  "🟢",
	domain.ColorYellow: "🟡",
	domain.ColorBlue:   "🔵",
}

var helpByCategory = map[domain.Category][]string{
	domain.CategoryIndex: {
		"Enter a 3-digit page number",
		"Use ← → to move through history",
	},
	domain.CategoryContent: {
		"Press ← to go back",
		"Press 100 for the index",
	},
	domain.CategoryAIMenu: {
		"Press a number to choose an option",
		"Press ← to go back",
	},
	domain.CategoryQuiz: {
		"Press a number to answer",
		"Press ← to leave the quiz",
	},
	domain.CategorySettings: {
		"Press a number to change a setting",
		"Press 100 for the index",
	},
	domain.CategoryTimeSensitive: {
		"Content updates automatically",
		"Press ← to go back",
	},
}

const (
	scrollHelp = "Press ↑↓ to scroll"
	buttonHelp = "Use colored buttons for quick links"
)

// Renderer draws indicator fragments. It is safe for concurrent use.
type Renderer struct {
	now        func() time.Time
	thresholds map[domain.ContentType]time.Duration
}

// Option configures a Renderer
type Option func(*Renderer)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		if now != nil {
			r.now = now
		}
	}
}

// WithThresholds overrides cache thresholds. Zero durations keep the default.
func WithThresholds(th map[domain.ContentType]time.Duration) Option {
	return func(r *Renderer) {
		for ct, d := range th {
			if d > 0 {
				r.thresholds[ct] = d
			}
		}
	}
}

// New creates a Renderer
func New(opts ...Option) *Renderer {
	r := &Renderer{
		now:        time.Now,
		thresholds: make(map[domain.ContentType]time.Duration, len(defaultThresholds)),
	}
	for ct, d := range defaultThresholds {
		r.thresholds[ct] = d
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Breadcrumbs renders a history trail. Long trails keep the last three ids.
func (r *Renderer) Breadcrumbs(history []string) string {
	if len(history) == 0 || (len(history) == 1 && history[0] == domain.IndexPageID) {
		return "INDEX"
	}
	if len(history) <= maxCrumbs {
		return strings.Join(history, crumbSep)
	}
	return "..." + crumbSep + strings.Join(history[len(history)-maxCrumbs:], crumbSep)
}

// PagePosition renders a 1-based position in a chain
func (r *Renderer) PagePosition(current, total int) string {
	return fmt.Sprintf("Page %d/%d", current, total)
}

// ArrowIndicators lists the scroll affordances of a page
func (r *Renderer) ArrowIndicators(hasUp, hasDown bool) []string {
	var out []string
	if hasUp {
		out = append(out, "▲ Press ↑ for previous")
	}
	if hasDown {
		out = append(out, "▼ Press ↓ for more")
	}
	if len(out) == 0 {
		out = append(out, "END OF CONTENT")
	}
	return out
}

// ContextualHelp returns the canned hints for a page category
func (r *Renderer) ContextualHelp(c domain.Category, hasArrowNav, hasColoredButtons bool) []string {
	var out []string
	if c == domain.CategoryContent && hasArrowNav {
		out = append(out, scrollHelp)
	}
	out = append(out, helpByCategory[c]...)
	if hasColoredButtons {
		out = append(out, buttonHelp)
	}
	return out
}

// Threshold returns the cache threshold for a content type
func (r *Renderer) Threshold(ct domain.ContentType) time.Duration {
	if d, ok := r.thresholds[ct]; ok {
		return d
	}
	return r.thresholds[domain.ContentNone]
}

// CacheStatus classifies content updated at t as LIVE or CACHED
func (r *Renderer) CacheStatus(t time.Time, ct domain.ContentType) domain.CacheStatus {
	if t.IsZero() {
		return domain.CacheUnknown
	}
	if r.now().Sub(t) > r.Threshold(ct) {
		return domain.CacheCached
	}
	return domain.CacheLive
}

// ShowsTimestamp reports whether a content type displays its update time
func (r *Renderer) ShowsTimestamp(ct domain.ContentType) bool {
	return ct.TimeSensitive()
}

// HeaderInfo is what the header needs to know about a page
type HeaderInfo struct {
	PageID       string
	Breadcrumbs  []string
	Continuation *domain.Continuation
	LastUpdated  time.Time
}

// Header renders the two header rows
func (r *Renderer) Header(title string, h HeaderInfo) [2]string {
	ct := domain.DetectContentType(h.PageID)

	prefix := ""
	if style, ok := ct.Style(); ok {
		prefix = style.Icon + " "
	}
	upper := cases.Upper(language.Und).String(title)
	num := grid.PadLeft(grid.Truncate("P"+h.PageID, pageNumWidth), pageNumWidth)
	row0 := grid.Fit(prefix+upper, titleWidth) + num

	return [2]string{row0, r.subHeader(ct, h)}
}

// subHeader picks exactly one of breadcrumbs, page position, timestamp or a rule
func (r *Renderer) subHeader(ct domain.ContentType, h HeaderInfo) string {
	if crumbs := r.Breadcrumbs(h.Breadcrumbs); len(h.Breadcrumbs) > 0 && crumbs != "INDEX" {
		return grid.Fit(crumbs, grid.Width)
	}
	if c := h.Continuation; c != nil {
		return grid.Fit(r.PagePosition(c.CurrentIndex+1, c.TotalPages), grid.Width)
	}
	if r.ShowsTimestamp(ct) && !h.LastUpdated.IsZero() {
		stamp := fmt.Sprintf("UPDATED %s  %s", h.LastUpdated.Format(timestampForm), r.CacheStatus(h.LastUpdated, ct))
		return grid.Fit(stamp, grid.Width)
	}
	return grid.Rule('═')
}

// FooterInfo is what the footer needs to know about a page
type FooterInfo struct {
	OnIndex     bool
	HasPrevious bool
	HasNext     bool
	Hints       []string
	Links       []domain.Link
}

// Footer renders the two footer rows. Parts are joined in priority order and
// the line is truncated last, so colored buttons are the first to go.
func (r *Renderer) Footer(n FooterInfo) [2]string {
	var parts []string
	if !n.OnIndex {
		parts = append(parts, "100=INDEX")
	}
	switch {
	case n.HasPrevious && n.HasNext:
		parts = append(parts, "↑↓=SCROLL")
	case n.HasNext:
		parts = append(parts, "↓=MORE")
	case n.HasPrevious:
		parts = append(parts, "↑=BACK")
	}
	parts = append(parts, n.Hints...)
	if buttons := r.ButtonHints(n.Links); buttons != "" {
		parts = append(parts, buttons)
	}

	return [2]string{grid.Rule('─'), grid.Fit(strings.Join(parts, " "), grid.Width)}
}

// ButtonHints renders "{emoji}{label}" for each colored link
func (r *Renderer) ButtonHints(links []domain.Link) string {
	var hints []string
	for _, l := range links {
		emoji, ok := buttonEmoji[l.Color]
		if !ok {
			continue
		}
		hints = append(hints, emoji+grid.Truncate(l.Label, buttonLabel))
	}
	return strings.Join(hints, " ")
}

package domain

import "time"

// IndexPageID is the root of the service and the hard reset point of history
const IndexPageID = "100"

// Color identifies one of the four fastext buttons
type Color string

const (
	ColorNone   Color = ""
	ColorRed    Color = "red"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorBlue   Color = "blue"
)

// FastextColors lists the button colors in their physical order
var FastextColors = []Color{ColorRed, ColorGreen, ColorYellow, ColorBlue}

// Valid reports whether c is one of the four button colors
func (c Color) Valid() bool {
	switch c {
	case ColorRed, ColorGreen, ColorYellow, ColorBlue:
		return true
	}
	return false
}

// InputMode bounds how many digits are buffered before navigating
type InputMode string

const (
	InputSingle InputMode = "single"
	InputDouble InputMode = "double"
	InputTriple InputMode = "triple"
)

// MaxDigits returns the buffer length that triggers navigation
func (m InputMode) MaxDigits() int {
	switch m {
	case InputSingle:
		return 1
	case InputDouble:
		return 2
	default:
		return 3
	}
}

// CacheStatus is the freshness badge shown for time-sensitive content
type CacheStatus string

const (
	CacheUnknown CacheStatus = ""
	CacheLive    CacheStatus = "LIVE"
	CacheCached  CacheStatus = "CACHED"
)

// Link points from a page to another page, optionally bound to a fastext button
type Link struct {
	Label  string `json:"label"`
	Target string `json:"targetPage"`
	Color  Color  `json:"color,omitempty"`
}

// Continuation describes a page's position in a pagination chain
type Continuation struct {
	CurrentPage  string `json:"currentPage"`
	PreviousPage string `json:"previousPage,omitempty"`
	NextPage     string `json:"nextPage,omitempty"`
	TotalPages   int    `json:"totalPages"`
	CurrentIndex int    `json:"currentIndex"`
}

// HasPrevious reports whether the chain continues backwards
func (c *Continuation) HasPrevious() bool {
	return c != nil && c.PreviousPage != ""
}

// HasNext reports whether the chain continues forwards
func (c *Continuation) HasNext() bool {
	return c != nil && c.NextPage != ""
}

// Meta carries optional page metadata
type Meta struct {
	Source               string        `json:"source,omitempty"`
	LastUpdated          time.Time     `json:"lastUpdated,omitempty"`
	CacheStatus          CacheStatus   `json:"cacheStatus,omitempty"`
	Continuation         *Continuation `json:"continuation,omitempty"`
	AIContextID          string        `json:"aiContextId,omitempty"`
	InputMode            InputMode     `json:"inputMode,omitempty"`
	InputOptions         []string      `json:"inputOptions,omitempty"`
	SingleDigitShortcuts bool          `json:"singleDigitShortcuts,omitempty"`
	Generated            bool          `json:"generated,omitempty"`
	Offline              bool          `json:"offline,omitempty"`
}

// Page is a single screen of content
type Page struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Rows  []string `json:"rows"`
	Links []Link   `json:"links,omitempty"`
	Meta  Meta     `json:"meta"`
}

// InputMode returns the page's input mode, defaulting to triple
func (p *Page) InputMode() InputMode {
	if p == nil || p.Meta.InputMode == "" {
		return InputTriple
	}
	return p.Meta.InputMode
}

// IsShortcut reports whether digit is a listed single-digit shortcut
func (p *Page) IsShortcut(digit string) bool {
	if p == nil {
		return false
	}
	for _, opt := range p.Meta.InputOptions {
		if opt == digit {
			return true
		}
	}
	return false
}

// LinkForColor returns the first link bound to color c
func (p *Page) LinkForColor(c Color) (Link, bool) {
	if p == nil || !c.Valid() {
		return Link{}, false
	}
	for _, l := range p.Links {
		if l.Color == c {
			return l, true
		}
	}
	return Link{}, false
}

// LinkForLabel returns the first link whose label equals label
func (p *Page) LinkForLabel(label string) (Link, bool) {
	if p == nil {
		return Link{}, false
	}
	for _, l := range p.Links {
		if l.Label == label {
			return l, true
		}
	}
	return Link{}, false
}

// ColoredLinks returns the first link for each fastext color, in button order
func (p *Page) ColoredLinks() []Link {
	var out []Link
	for _, c := range FastextColors {
		if l, ok := p.LinkForColor(c); ok {
			out = append(out, l)
		}
	}
	return out
}

// Clone returns a copy that shares no slices with p
func (p Page) Clone() Page {
	c := p
	c.Rows = append([]string(nil), p.Rows...)
	c.Links = append([]Link(nil), p.Links...)
	c.Meta.InputOptions = append([]string(nil), p.Meta.InputOptions...)
	if p.Meta.Continuation != nil {
		cont := *p.Meta.Continuation
		c.Meta.Continuation = &cont
	}
	return c
}

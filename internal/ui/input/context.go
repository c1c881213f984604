package input

import "teletext/internal/navigation"

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Nav *navigation.Service
}

// Input returns the digits typed so far
func (c *ModelContext) Input() string {
	return c.Nav.Input()
}

// CurrentPageID returns the id of the page on screen, "" before the first commit
func (c *ModelContext) CurrentPageID() string {
	if p := c.Nav.CurrentPage(); p != nil {
		return p.ID
	}
	return ""
}

// IsLoading reports whether a fetch is pending
func (c *ModelContext) IsLoading() bool {
	return c.Nav.Status() == navigation.StatusLoading
}

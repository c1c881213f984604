package ui

import (
	"teletext/internal/eventbus"
	"teletext/internal/navigation"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// pageResultMsg carries a finished fetch back to the control thread
type pageResultMsg struct {
	result navigation.Result
}

// clearHighlightMsg ends the breadcrumb flash after going back
type clearHighlightMsg struct{}

// clearMessageMsg removes a transient status message
type clearMessageMsg struct {
	id int
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}

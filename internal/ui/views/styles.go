package views

import (
	"github.com/charmbracelet/lipgloss"

	"teletext/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Screen        lipgloss.Style
	Header        lipgloss.Style
	SubHeader     lipgloss.Style
	Content       lipgloss.Style
	Footer        lipgloss.Style
	Highlight     lipgloss.Style
	Offline       lipgloss.Style
	Input         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
	Help          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Screen: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")),
		Header:        lipgloss.NewStyle().Bold(true),
		SubHeader:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Content:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Footer:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Offline:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Input:         lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Help:          lipgloss.NewStyle().Faint(true),
	}
}

// SemanticColor returns the terminal color for a teletext color
func SemanticColor(c domain.SemanticColor) lipgloss.Color {
	switch c {
	case domain.SemanticRed:
		return lipgloss.Color("203")
	case domain.SemanticGreen:
		return lipgloss.Color("78")
	case domain.SemanticYellow:
		return lipgloss.Color("226")
	case domain.SemanticBlue:
		return lipgloss.Color("33")
	case domain.SemanticMagenta:
		return lipgloss.Color("170")
	case domain.SemanticCyan:
		return lipgloss.Color("51")
	default:
		return lipgloss.Color("252")
	}
}

// HeaderStyle returns the header style for a page id, colored by content type
func (s *Styles) HeaderStyle(pageID string) lipgloss.Style {
	style, ok := domain.DetectContentType(pageID).Style()
	if !ok {
		return s.Header.Foreground(SemanticColor(domain.SemanticWhite))
	}
	return s.Header.Foreground(SemanticColor(style.Color))
}

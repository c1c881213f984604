package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"teletext/internal/domain"
	"teletext/internal/grid"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width       int
	Height      int
	Page        *domain.Page // composed page, nil before the first commit
	Highlight   bool         // flash the breadcrumb row after going back
	Input       string
	InputDigits int
	ModeName    string
	Loading     bool
	PendingPage string
	Spinner     string
	Error       string
	Message     string
	ContextHelp []string
	HelpView    string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view: the page grid followed by the status
// and help lines
func (r *Renderer) Render(state ViewState) string {
	var b strings.Builder

	b.WriteString(r.styles.Screen.Render(r.RenderPage(state.Page, state.Highlight)))
	b.WriteString("\n")
	b.WriteString(r.renderStatus(state))

	if len(state.ContextHelp) > 0 {
		b.WriteString("\n")
		b.WriteString(r.styles.Help.Render(strings.Join(state.ContextHelp, " · ")))
	}
	if state.HelpView != "" {
		b.WriteString("\n")
		b.WriteString(state.HelpView)
	}

	return b.String()
}

// RenderPage paints the grid rows. Text is never altered, only colored.
func (r *Renderer) RenderPage(page *domain.Page, highlight bool) string {
	if page == nil {
		rows := make([]string, grid.Height)
		for i := range rows {
			rows[i] = grid.Blank()
		}
		rows[grid.Height/2] = grid.CenterText("P100", grid.Width)
		return r.styles.Dim.Render(strings.Join(rows, "\n"))
	}

	header := r.styles.HeaderStyle(page.ID)
	if page.Meta.Offline {
		header = r.styles.Offline
	}

	lines := make([]string, len(page.Rows))
	footerStart := len(page.Rows) - grid.FooterRows
	for i, row := range page.Rows {
		switch {
		case i == 0:
			lines[i] = header.Render(row)
		case i < grid.HeaderRows && highlight:
			lines[i] = r.styles.Highlight.Render(row)
		case i < grid.HeaderRows:
			lines[i] = r.styles.SubHeader.Render(row)
		case i >= footerStart:
			lines[i] = r.styles.Footer.Render(row)
		default:
			lines[i] = r.styles.Content.Render(row)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *Renderer) renderStatus(state ViewState) string {
	digits := state.InputDigits
	if digits <= 0 {
		digits = 3
	}
	entry := state.Input
	if n := digits - len(entry); n > 0 {
		entry += strings.Repeat("_", n)
	}

	parts := []string{r.styles.Input.Render("P" + entry)}

	switch state.ModeName {
	case "favorite-jump":
		parts = append(parts, r.styles.Input.Render("FAVORITE 0-9"))
	case "favorite-store":
		parts = append(parts, r.styles.Input.Render("STORE IN 0-9"))
	}

	if state.Loading {
		parts = append(parts, r.styles.StatusLoading.Render(fmt.Sprintf("%s P%s", state.Spinner, state.PendingPage)))
	}
	if state.Error != "" {
		parts = append(parts, r.styles.StatusError.Render(state.Error))
	}
	if state.Message != "" {
		parts = append(parts, r.styles.StatusSuccess.Render(state.Message))
	}

	return strings.Join(parts, "  ")
}

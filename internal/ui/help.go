package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"teletext/internal/domain"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// chainPagerMsg contains the result of a page chain pager command
type chainPagerMsg struct {
	pageID string
	err    error
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContentPlain generates help content with colors for pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(key, desc string) string {
		return fmt.Sprintf("  %-12s %s\n", keyStyle.Render(key), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("Teletext Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Page Numbers"))
	help.WriteString("\n")
	help.WriteString(line("0-9", "Type a page number; three digits go there"))
	help.WriteString(line("Enter", "Go to a complete three-digit entry"))
	help.WriteString(line("Backspace", "Delete a digit, or go back when empty"))
	help.WriteString(line("Esc", "Clear the entry or stop loading"))
	help.WriteString(line("1-9", "On menu pages, choose an option at once"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(line("←/→", "Back / forward through history"))
	help.WriteString(line("↑/↓", "Previous / next page of an article"))
	help.WriteString(line("v", "Read the whole article in a pager"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Colored Buttons"))
	help.WriteString("\n")
	help.WriteString(line("r / F1", "Red link"))
	help.WriteString(line("g / F2", "Green link"))
	help.WriteString(line("y / F3", "Yellow link"))
	help.WriteString(line("b / F4", "Blue link"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Favorites"))
	help.WriteString("\n")
	help.WriteString(line("f then 0-9", "Go to a favorite (1 is the first slot, 0 the tenth)"))
	help.WriteString(line("F then 0-9", "Store the current page in a slot"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(line("?", "Show this help"))
	help.WriteString(strings.TrimSuffix(line("q", "Quit"), "\n"))

	return help.String()
}

// RenderChain lays out every page of an article one after another
func RenderChain(pages []domain.Page) string {
	var b strings.Builder
	for i, p := range pages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.Join(p.Rows, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}

// PagerOps runs ov on top of the Bubble Tea program
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowInPager shows content using ov pager
func (p *PagerOps) ShowInPager(content string) error {
	return p.runPager(strings.NewReader(content))
}

func (p *PagerOps) runPager(r io.Reader) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(r)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

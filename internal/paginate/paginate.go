// Package paginate turns arbitrary-length text into chains of grid-sized pages.
package paginate

import (
	"errors"
	"fmt"
	"strings"

	"teletext/internal/domain"
	"teletext/internal/grid"
)

// ErrNoContentRows is returned when header and footer leave no room for content
var ErrNoContentRows = errors.New("no rows left for content")

// WrapWord splits a word into chunks of at most width characters
func WrapWord(word string, width int) []string {
	if width <= 0 {
		width = grid.Width
	}
	var out []string
	r := []rune(word)
	for len(r) > width {
		out = append(out, string(r[:width]))
		r = r[width:]
	}
	if len(r) > 0 {
		out = append(out, string(r))
	}
	return out
}

// WrapLine greedily wraps one paragraph, preserving words where possible
func WrapLine(s string, width int) []string {
	if width <= 0 {
		width = grid.Width
	}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return []string{""}
	}
	var lines []string
	var line string
	for _, word := range fields {
		ww := grid.Len(word)
		if line == "" {
			if ww <= width {
				line = word
			} else {
				chunks := WrapWord(word, width)
				lines = append(lines, chunks[:len(chunks)-1]...)
				line = chunks[len(chunks)-1]
			}
			continue
		}
		if grid.Len(line)+1+ww <= width {
			line += " " + word
			continue
		}
		lines = append(lines, line)
		if ww <= width {
			line = word
		} else {
			chunks := WrapWord(word, width)
			lines = append(lines, chunks[:len(chunks)-1]...)
			line = chunks[len(chunks)-1]
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// Wrap wraps multi-line text at width. Each newline starts a new paragraph
// and blank paragraphs are kept as blank lines. Empty input yields one empty line.
func Wrap(text string, width int) []string {
	var result []string
	for _, para := range strings.Split(text, "\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			result = append(result, "")
			continue
		}
		result = append(result, WrapLine(para, width)...)
	}
	return result
}

// Truncate cuts s to at most width characters
func Truncate(s string, width int) string {
	return grid.Truncate(s, width)
}

// ChainID returns the id of the page at index i of the chain rooted at id
func ChainID(id string, i int) string {
	if i == 0 {
		return id
	}
	return fmt.Sprintf("%s-%d", id, i+1)
}

// Paginate slices contentRows into pages of 24-headerRows-footerRows rows.
// A single group yields one page without continuation; more build a chain
// id, id-2, id-3... with links copied onto every page.
func Paginate(id, title string, contentRows []string, headerRows, footerRows int, links []domain.Link) ([]domain.Page, error) {
	rowsPerPage := grid.Height - headerRows - footerRows
	if rowsPerPage < 1 {
		return nil, fmt.Errorf("%w: header %d + footer %d rows", ErrNoContentRows, headerRows, footerRows)
	}

	var groups [][]string
	for start := 0; start < len(contentRows); start += rowsPerPage {
		end := min(start+rowsPerPage, len(contentRows))
		groups = append(groups, append([]string(nil), contentRows[start:end]...))
	}

	if len(groups) <= 1 {
		page := domain.Page{
			ID:    id,
			Title: title,
			Rows:  []string{},
			Links: append([]domain.Link(nil), links...),
		}
		if len(groups) == 1 {
			page.Rows = groups[0]
		}
		return []domain.Page{page}, nil
	}

	total := len(groups)
	pages := make([]domain.Page, total)
	for i, rows := range groups {
		cont := &domain.Continuation{
			CurrentPage:  ChainID(id, i),
			TotalPages:   total,
			CurrentIndex: i,
		}
		if i > 0 {
			cont.PreviousPage = ChainID(id, i-1)
		}
		if i < total-1 {
			cont.NextPage = ChainID(id, i+1)
		}
		pages[i] = domain.Page{
			ID:    cont.CurrentPage,
			Title: title,
			Rows:  rows,
			Links: append([]domain.Link(nil), links...),
			Meta:  domain.Meta{Continuation: cont},
		}
	}
	return pages, nil
}

// SplitLongText wraps rawText at the grid width and paginates it with the
// standard header and footer, marking every page as generated content
func SplitLongText(id, title, rawText string, links []domain.Link) ([]domain.Page, error) {
	pages, err := Paginate(id, title, Wrap(rawText, grid.Width), grid.HeaderRows, grid.FooterRows, links)
	if err != nil {
		return nil, err
	}
	for i := range pages {
		pages[i].Meta.Generated = true
	}
	return pages, nil
}

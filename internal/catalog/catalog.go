// Package catalog holds the built-in demo service shown when no page server
// is configured.
package catalog

import (
	"fmt"
	"time"

	"teletext/internal/domain"
	"teletext/internal/fetch"
	"teletext/internal/grid"
)

const source = "teletext demo"

var (
	toIndex   = domain.Link{Label: "Index", Target: domain.IndexPageID, Color: domain.ColorRed}
	toNews    = domain.Link{Label: "News", Target: "200", Color: domain.ColorGreen}
	toSport   = domain.Link{Label: "Sport", Target: "300", Color: domain.ColorYellow}
	toWeather = domain.Link{Label: "Weather", Target: "450", Color: domain.ColorBlue}
)

// NewStore returns a memory store holding the demo pages
func NewStore(now time.Time) (*fetch.MemoryStore, error) {
	pages, err := Pages(now)
	if err != nil {
		return nil, err
	}
	return fetch.NewMemoryStore(pages...), nil
}

// Pages builds every demo page. Timestamps are relative to now.
func Pages(now time.Time) ([]domain.Page, error) {
	var pages []domain.Page
	add := func(p ...domain.Page) {
		pages = append(pages, p...)
	}

	add(index())

	news, err := newsPages(now)
	if err != nil {
		return nil, err
	}
	add(news...)
	add(sportPages(now)...)
	add(marketPages(now)...)
	add(weatherPages(now)...)
	add(aiPages()...)
	add(quizPages()...)
	add(settingsPage(), devPage())

	return pages, nil
}

func index() domain.Page {
	return domain.Page{
		ID:    domain.IndexPageID,
		Title: "Teletext",
		Rows: []string{
			"",
			grid.CenterText("WELCOME TO TELETEXT", grid.Width),
			"",
			" 200  News             300  Sport",
			" 400  Markets          450  Weather",
			" 500  Ask the oracle   600  Quiz",
			" 700  Settings         800  Developer",
			"",
			" Type a page number to go there.",
			" Colored keys: r g y b or F1-F4.",
			" f + digit jumps to a favorite.",
			" F + digit stores this page.",
		},
		Links: []domain.Link{
			{Label: "News", Target: "200", Color: domain.ColorRed},
			{Label: "Sport", Target: "300", Color: domain.ColorGreen},
			{Label: "Markets", Target: "400", Color: domain.ColorYellow},
			toWeather,
			{Label: "Oracle", Target: "500"},
			{Label: "Quiz", Target: "600"},
			{Label: "Settings", Target: "700"},
			{Label: "Developer", Target: "800"},
		},
		Meta: domain.Meta{Source: source},
	}
}

// timeSensitive stamps a page with its source and update time
func timeSensitive(p domain.Page, updated time.Time) domain.Page {
	p.Meta.Source = source
	p.Meta.LastUpdated = updated
	return p
}

func headlineRows(items [][2]string) []string {
	var rows []string
	for _, it := range items {
		rows = append(rows, fmt.Sprintf(" %s  %s", it[0], grid.Truncate(it[1], grid.Width-6)))
	}
	return rows
}

package catalog

import (
	"fmt"
	"time"

	"teletext/internal/domain"
	"teletext/internal/paginate"
)

const longRead = `The harbour authority confirmed on Tuesday that the old lighthouse on the northern breakwater will be restored and returned to service after almost forty years in darkness.

Engineers surveying the tower found the original lamp room largely intact. The brass fittings had been protected by a layer of paint applied when the light was decommissioned, and the lens, though clouded, showed no cracks.

Restoration will happen in three phases. The first stabilises the masonry and replaces the iron stair. The second rebuilds the lamp room roof. The third installs a modern low-energy light inside the historic lens so the familiar double flash can once again be seen from the coast road.

Local historians welcomed the decision. The lighthouse keepers' logbooks, held in the town archive, record storms, shipwrecks and the occasional visit from royalty, and a selection will be displayed in the keepers' cottage once the work is complete.

The authority expects the light to be relit next autumn. Until then the breakwater path remains closed beyond the second bollard, and walkers are asked to keep to the marked diversion along the quay.`

func newsPages(now time.Time) ([]domain.Page, error) {
	links := []domain.Link{toIndex, toNews, toSport, toWeather}

	front := timeSensitive(domain.Page{
		ID:    "200",
		Title: "News",
		Rows: append([]string{"", " TOP STORIES", ""}, headlineRows([][2]string{
			{"201", "Lighthouse to shine again"},
			{"202", "Rail timetable changes from Monday"},
			{"203", "Library extends opening hours"},
		})...),
		Links: []domain.Link{toIndex, {Label: "Lighthouse", Target: "201", Color: domain.ColorGreen}, toSport, toWeather},
	}, now.Add(-3*time.Minute))

	article, err := paginate.SplitLongText("201", "Lighthouse to shine again", longRead, links)
	if err != nil {
		return nil, fmt.Errorf("failed to build article 201: %w", err)
	}
	for i := range article {
		article[i] = timeSensitive(article[i], now.Add(-3*time.Minute))
	}

	rail := timeSensitive(domain.Page{
		ID:    "202",
		Title: "Rail timetable changes",
		Rows:  paginate.Wrap("New timetables take effect on Monday. Early services on the coast line move ten minutes earlier, and the last evening train now runs on Sundays too.", 38),
		Links: links,
	}, now.Add(-20*time.Minute))

	library := timeSensitive(domain.Page{
		ID:    "203",
		Title: "Library hours",
		Rows:  paginate.Wrap("The central library will open until nine in the evening on weekdays from next month.", 38),
		Links: links,
	}, now.Add(-1*time.Minute))

	return append(append([]domain.Page{front}, article...), rail, library), nil
}

func sportPages(now time.Time) []domain.Page {
	links := []domain.Link{toIndex, toNews, {Label: "Table", Target: "301", Color: domain.ColorYellow}, toWeather}
	return []domain.Page{
		timeSensitive(domain.Page{
			ID:    "300",
			Title: "Sport",
			Rows: []string{
				"",
				" LATEST RESULTS",
				"",
				" Harbour Utd      2  1  Quay Rovers",
				" Northgate        0  0  Eastfield",
				" Lighthouse FC    3  2  Mill Town",
				"",
				" League table on page 301",
			},
			Links: links,
		}, now.Add(-30*time.Second)),
		timeSensitive(domain.Page{
			ID:    "301",
			Title: "League table",
			Rows: []string{
				"",
				"    TEAM               P   W  D  L  PTS",
				" 1  Lighthouse FC     10   7  2  1   23",
				" 2  Harbour Utd       10   6  3  1   21",
				" 3  Northgate         10   5  3  2   18",
				" 4  Quay Rovers       10   3  3  4   12",
				" 5  Eastfield         10   2  2  6    8",
				" 6  Mill Town         10   0  3  7    3",
			},
			Links: []domain.Link{toIndex, toNews, {Label: "Results", Target: "300", Color: domain.ColorYellow}, toWeather},
		}, now.Add(-4*time.Minute)),
	}
}

func marketPages(now time.Time) []domain.Page {
	links := []domain.Link{toIndex, toNews, toSport, {Label: "FX", Target: "401", Color: domain.ColorBlue}}
	return []domain.Page{
		timeSensitive(domain.Page{
			ID:    "400",
			Title: "Markets",
			Rows: []string{
				"",
				" INDEX            LEVEL      CHANGE",
				" Harbour 100     7,412.3      +0.8%",
				" Coastal Mid     2,118.9      -0.2%",
				" Light Tech        914.6      +1.9%",
				"",
				" Currencies on page 401",
			},
			Links: links,
		}, now.Add(-2*time.Minute)),
		timeSensitive(domain.Page{
			ID:    "401",
			Title: "Currencies",
			Rows: []string{
				"",
				" EUR/USD   1.0842",
				" GBP/USD   1.2710",
				" USD/JPY 149.8300",
			},
			Links: []domain.Link{toIndex, toNews, toSport, {Label: "Markets", Target: "400", Color: domain.ColorBlue}},
		}, now.Add(-7*time.Minute)),
	}
}

func weatherPages(now time.Time) []domain.Page {
	return []domain.Page{
		timeSensitive(domain.Page{
			ID:    "450",
			Title: "Weather",
			Rows: []string{
				"",
				" TODAY",
				" Bright spells, a breeze off the sea.",
				" High 17C  Low 9C",
				"",
				" Five day forecast on page 451",
			},
			Links: []domain.Link{toIndex, toNews, toSport, {Label: "Forecast", Target: "451", Color: domain.ColorBlue}},
		}, now.Add(-10*time.Minute)),
		timeSensitive(domain.Page{
			ID:    "451",
			Title: "Five day forecast",
			Rows: []string{
				"",
				" MON  Sunny          18C",
				" TUE  Cloudy         16C",
				" WED  Showers        14C",
				" THU  Windy          15C",
				" FRI  Sunny          19C",
			},
			Links: []domain.Link{toIndex, toNews, toSport, {Label: "Today", Target: "450", Color: domain.ColorBlue}},
		}, now.Add(-45*time.Minute)),
	}
}

func aiPages() []domain.Page {
	menu := domain.Page{
		ID:    "500",
		Title: "Ask the oracle",
		Rows: []string{
			"",
			" What would you like to know?",
			"",
			" 1  Will it rain tomorrow?",
			" 2  Who will win the league?",
			" 3  What should I read next?",
		},
		Links: []domain.Link{
			toIndex,
			{Label: "1", Target: "501"},
			{Label: "2", Target: "502"},
		},
		Meta: domain.Meta{
			Source:               source,
			AIContextID:          "oracle",
			InputMode:            domain.InputSingle,
			InputOptions:         []string{"1", "2", "3"},
			SingleDigitShortcuts: true,
		},
	}
	answer := func(id, text string) domain.Page {
		return domain.Page{
			ID:    id,
			Title: "The oracle answers",
			Rows:  append([]string{""}, paginate.Wrap(text, 38)...),
			Links: []domain.Link{toIndex, {Label: "Ask again", Target: "500", Color: domain.ColorGreen}},
			Meta:  domain.Meta{Source: source, AIContextID: "oracle"},
		}
	}
	return []domain.Page{
		menu,
		answer("501", "The clouds are undecided. Take an umbrella and you will not need it."),
		answer("502", "Lighthouse FC lead by two points. The oracle never bets against a light."),
		answer("500-3", "Anything with a map at the front."),
	}
}

func quizPages() []domain.Page {
	question := domain.Page{
		ID:    "600",
		Title: "Quiz",
		Rows: []string{
			"",
			" How many rows does a teletext page",
			" have?",
			"",
			" 1  Twenty",
			" 2  Twenty-four",
			" 3  Forty",
		},
		Links: []domain.Link{toIndex},
		Meta: domain.Meta{
			Source:       source,
			InputMode:    domain.InputSingle,
			InputOptions: []string{"1", "2", "3"},
		},
	}
	result := func(id string, right bool) domain.Page {
		text := "Not quite. A page has 24 rows of 40 characters."
		if right {
			text = "Correct! 24 rows of 40 characters each."
		}
		return domain.Page{
			ID:    id,
			Title: "Quiz",
			Rows:  append([]string{""}, paginate.Wrap(text, 38)...),
			Links: []domain.Link{toIndex, {Label: "Again", Target: "600", Color: domain.ColorGreen}},
			Meta:  domain.Meta{Source: source},
		}
	}
	return []domain.Page{question, result("600-1", false), result("600-2", true), result("600-3", false)}
}

func settingsPage() domain.Page {
	return domain.Page{
		ID:    "700",
		Title: "Settings",
		Rows: []string{
			"",
			" Settings are read from config.toml",
			" in the teletext config directory.",
			"",
			" [display] alignment, full_screen",
			" [fetch]   base_url, timeout",
			" [cache]   news, sport, markets ...",
			"",
			" Changes are picked up while running.",
		},
		Links: []domain.Link{toIndex},
		Meta:  domain.Meta{Source: source},
	}
}

func devPage() domain.Page {
	return domain.Page{
		ID:    "800",
		Title: "Developer",
		Rows: []string{
			"",
			"0123456789012345678901234567890123456789",
			"          1         2         3",
			"",
			" Pages are 24 rows of 40 characters:",
			" 2 header, 20 content, 2 footer.",
			"",
			" Page 201 is a generated multi-page",
			" article. Use ↑ and ↓ to scroll it.",
		},
		Links: []domain.Link{toIndex, {Label: "Article", Target: "201", Color: domain.ColorGreen}},
		Meta:  domain.Meta{Source: source},
	}
}

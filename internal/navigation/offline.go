package navigation

import (
	"fmt"

	"teletext/internal/domain"
)

// OfflinePage is shown in place of a page that could not be fetched
func OfflinePage(id string) domain.Page {
	return domain.Page{
		ID:    id,
		Title: "Service unavailable",
		Rows: []string{
			"",
			fmt.Sprintf("Page %s is not available.", id),
			"",
			"The service may be offline or the page",
			"does not exist.",
			"",
			"Press ← to go back or 100 for the index.",
		},
		Links: []domain.Link{
			{Label: "Index", Target: domain.IndexPageID, Color: domain.ColorRed},
		},
		Meta: domain.Meta{
			Source:  "offline",
			Offline: true,
		},
	}
}

package navigation

import (
	"context"
	"errors"

	"teletext/internal/domain"
	"teletext/internal/pagelayout"
)

// ErrFavoriteSlot is returned for favorite indexes outside 0-9
var ErrFavoriteSlot = errors.New("favorite slot out of range")

// FavoriteSlots is the size of the favorites table
const FavoriteSlots = 10

// Status is the state of the controller
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	default:
		return "idle"
	}
}

// Direction represents movement directions
type Direction string

const (
	DirectionBack    Direction = "back"
	DirectionForward Direction = "forward"
	DirectionUp      Direction = "up"
	DirectionDown    Direction = "down"
)

// State holds all navigation-related state
type State struct {
	Status              Status
	Current             *domain.Page // composed
	History             *History
	Input               string
	Favorites           [FavoriteSlots]string
	Breadcrumbs         []string
	HighlightBreadcrumb bool
	LastError           error

	raw        *domain.Page // current page before composition
	generation uint64       // last issued request
	inFlight   *request
}

// request is the bookkeeping for the one fetch that may still commit
type request struct {
	pageID     string
	generation uint64
	traversal  bool // back/forward: move the cursor instead of pushing
	target     int  // history index for traversals
	cancel     context.CancelFunc
}

// Job performs one fetch off the control thread. It only touches values
// captured when it was issued.
type Job func() Result

// Result is handed back to Service.Complete on the control thread
type Result struct {
	Generation uint64
	PageID     string
	Page       *domain.Page
	Err        error
}

// FavoritesStore persists the favorites table
type FavoritesStore interface {
	LoadFavorites(ctx context.Context) ([FavoriteSlots]string, error)
	SaveFavorites(ctx context.Context, favorites [FavoriteSlots]string) error
}

// Option configures a Service
type Option func(*Service)

// WithInitialPage starts the session on page instead of with no page
func WithInitialPage(page domain.Page) Option {
	return func(s *Service) {
		p := page.Clone()
		s.initial = &p
	}
}

// WithSessionID sets the id sent with every fetch
func WithSessionID(id string) Option {
	return func(s *Service) {
		if id != "" {
			s.sessionID = id
		}
	}
}

// WithFavorites seeds the favorites table
func WithFavorites(favorites [FavoriteSlots]string) Option {
	return func(s *Service) {
		s.state.Favorites = favorites
	}
}

// WithLayoutOptions sets how fetched pages are composed. Breadcrumbs are
// always taken from history.
func WithLayoutOptions(o pagelayout.Options) Option {
	return func(s *Service) {
		s.layoutOpts = o
	}
}

// FavoriteSlot maps a shortcut digit to its slot: 1 is slot 0, 0 is slot 9
func FavoriteSlot(digit int) int {
	if digit == 0 {
		return FavoriteSlots - 1
	}
	return digit - 1
}

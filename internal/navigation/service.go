package navigation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/google/uuid"

	"teletext/internal/domain"
	"teletext/internal/eventbus"
	"teletext/internal/fetch"
	"teletext/internal/logging"
	"teletext/internal/pagelayout"
)

// Service owns the session: current page, history, input buffer and
// favorites. All methods run on the control thread; only Jobs run elsewhere.
type Service struct {
	state      *State
	bus        eventbus.EventBus
	fetcher    fetch.Fetcher
	layout     *pagelayout.Processor
	layoutOpts pagelayout.Options
	sessionID  string
	initial    *domain.Page
}

// NewService creates a new navigation service
func NewService(fetcher fetch.Fetcher, layout *pagelayout.Processor, bus eventbus.EventBus, opts ...Option) *Service {
	if layout == nil {
		layout = pagelayout.New(nil)
	}
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	s := &Service{
		state: &State{
			Status:  StatusIdle,
			History: NewHistory(),
		},
		bus:       bus,
		fetcher:   fetcher,
		layout:    layout,
		sessionID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.initial != nil {
		s.state.History.Push(s.initial.ID)
		s.state.Breadcrumbs = s.state.History.Trail()
		s.commit(*s.initial)
		s.initial = nil
	}
	return s
}

// NavigateToPage starts a fetch for id. It returns nil for malformed ids and
// when the same page is already being fetched.
func (s *Service) NavigateToPage(id string) Job {
	if _, err := domain.ParsePageID(id); err != nil {
		log.Printf("navigation: rejected page id: %v", err)
		s.bus.Publish(eventbus.NavigationRejectedEvent{PageID: id, Err: err})
		return nil
	}
	return s.issue(id, false, 0)
}

// issue cancels whatever is in flight and returns the Job for a new request.
// A request identical to the one in flight returns nil. The same id asked for
// differently, typed while a back move fetches it, supersedes the old request.
func (s *Service) issue(id string, traversal bool, target int) Job {
	if req := s.state.inFlight; req != nil {
		if req.pageID == id && req.traversal == traversal && req.target == target {
			logging.Debugf("navigation: %s already in flight", id)
			return nil
		}
		req.cancel()
		logging.Debugf("navigation: superseded request %d for %s", req.generation, req.pageID)
	}

	s.state.generation++
	ctx, cancel := context.WithCancel(context.Background())
	req := &request{
		pageID:     id,
		generation: s.state.generation,
		traversal:  traversal,
		target:     target,
		cancel:     cancel,
	}
	s.state.inFlight = req
	s.state.Status = StatusLoading
	s.state.Input = ""

	s.bus.Publish(eventbus.PageRequestedEvent{PageID: id, Generation: req.generation})

	fetcher, sessionID, generation := s.fetcher, s.sessionID, req.generation
	return func() Result {
		if fetcher == nil {
			return Result{Generation: generation, PageID: id, Err: errors.New("no page source configured")}
		}
		page, err := fetcher.FetchPage(ctx, id, sessionID)
		if err == nil && ctx.Err() != nil {
			err = ctx.Err()
		}
		return Result{Generation: generation, PageID: id, Page: page, Err: err}
	}
}

// Complete applies a finished Job on the control thread. It reports whether
// a page was committed. Results of superseded or aborted requests are dropped.
func (s *Service) Complete(r Result) bool {
	req := s.state.inFlight
	if req == nil || r.Generation != s.state.generation || r.Generation != req.generation {
		logging.Debugf("navigation: dropping stale result %d for %s", r.Generation, r.PageID)
		return false
	}
	s.state.inFlight = nil
	req.cancel()

	if errors.Is(r.Err, context.Canceled) {
		logging.Debugf("navigation: request for %s cancelled", r.PageID)
		s.state.Status = StatusIdle
		return false
	}

	var page domain.Page
	if r.Err != nil || r.Page == nil {
		err := r.Err
		if err == nil {
			err = fmt.Errorf("page %s not found", req.pageID)
		}
		log.Printf("navigation: failed to fetch page %s: %v", req.pageID, err)
		s.bus.Publish(eventbus.PageFetchFailedEvent{PageID: req.pageID, Err: err})
		s.state.LastError = err
		page = OfflinePage(req.pageID)
	} else {
		s.state.LastError = nil
		page = r.Page.Clone()
		page.ID = req.pageID
	}

	// The index is a hard reset point however it is reached
	if req.traversal && req.pageID != domain.IndexPageID {
		s.state.History.MoveTo(req.target)
	} else {
		s.state.History.Push(req.pageID)
	}
	s.state.Breadcrumbs = s.state.History.Trail()

	s.commit(page)
	s.state.Status = StatusIdle

	s.bus.Publish(eventbus.PageLoadedEvent{
		PageID:  page.ID,
		History: s.state.History.IDs(),
		Offline: page.Meta.Offline,
	})
	return true
}

// commit makes page current, composing it with the current breadcrumbs
func (s *Service) commit(page domain.Page) {
	raw := page
	s.state.raw = &raw
	composed := s.layout.Process(page.Clone(), s.layoutOptions())
	s.state.Current = &composed
}

func (s *Service) layoutOptions() pagelayout.Options {
	o := s.layoutOpts
	o.Breadcrumbs = append([]string(nil), s.state.Breadcrumbs...)
	return o
}

// Abort cancels the in-flight request. Its result will be dropped.
func (s *Service) Abort() {
	req := s.state.inFlight
	if req == nil {
		return
	}
	req.cancel()
	s.state.inFlight = nil
	s.state.Status = StatusIdle
	logging.Debugf("navigation: aborted request for %s", req.pageID)
}

// HandleDigitPress buffers a digit, navigating once the page's input mode
// is satisfied. Listed shortcuts on single-digit pages resolve at once.
func (s *Service) HandleDigitPress(d int) Job {
	if d < 0 || d > 9 {
		return nil
	}
	digit := strconv.Itoa(d)
	cur := s.state.Current
	mode := cur.InputMode()

	if cur != nil && mode == domain.InputSingle && cur.IsShortcut(digit) {
		s.state.Input = ""
		if link, ok := cur.LinkForLabel(digit); ok {
			return s.NavigateToPage(link.Target)
		}
		return s.NavigateToPage(fmt.Sprintf("%s-%s", cur.ID, digit))
	}

	s.state.Input += digit
	if len(s.state.Input) >= mode.MaxDigits() {
		target := s.state.Input
		s.state.Input = ""
		return s.NavigateToPage(target)
	}
	return nil
}

// HandleEnter navigates on a full three-digit entry and clears anything shorter
func (s *Service) HandleEnter() Job {
	target := s.state.Input
	s.state.Input = ""
	if len(target) == 3 {
		return s.NavigateToPage(target)
	}
	return nil
}

// HandleBackspace removes the last digit, or goes back when there is none
func (s *Service) HandleBackspace() Job {
	if s.state.Input == "" {
		return s.HandleNavigate(DirectionBack)
	}
	s.state.Input = s.state.Input[:len(s.state.Input)-1]
	return nil
}

// CancelInput clears the input buffer
func (s *Service) CancelInput() {
	s.state.Input = ""
}

// HandleNavigate moves through history or along a continuation chain
func (s *Service) HandleNavigate(dir Direction) Job {
	h := s.state.History
	switch dir {
	case DirectionBack:
		if h.CanBack() {
			id, _ := h.At(h.Index() - 1)
			job := s.issue(id, true, h.Index()-1)
			if job != nil {
				s.state.HighlightBreadcrumb = true
			}
			return job
		}
		if s.currentID() != domain.IndexPageID {
			return s.NavigateToPage(domain.IndexPageID)
		}
	case DirectionForward:
		if h.CanForward() {
			id, _ := h.At(h.Index() + 1)
			return s.issue(id, true, h.Index()+1)
		}
	case DirectionUp:
		if c := s.continuation(); c.HasPrevious() {
			return s.NavigateToPage(c.PreviousPage)
		}
	case DirectionDown:
		if c := s.continuation(); c.HasNext() {
			return s.NavigateToPage(c.NextPage)
		}
	}
	return nil
}

// HandleColorButton follows the current page's link for c
func (s *Service) HandleColorButton(c domain.Color) Job {
	link, ok := s.state.Current.LinkForColor(c)
	if !ok || link.Target == "" {
		return nil
	}
	return s.NavigateToPage(link.Target)
}

// HandleFavoriteKey navigates to favorite slot i if it is set
func (s *Service) HandleFavoriteKey(i int) Job {
	if i < 0 || i >= FavoriteSlots || s.state.Favorites[i] == "" {
		return nil
	}
	return s.NavigateToPage(s.state.Favorites[i])
}

// SetFavorite stores id in slot i. An empty id clears the slot.
func (s *Service) SetFavorite(i int, id string) error {
	if i < 0 || i >= FavoriteSlots {
		return fmt.Errorf("%w: %d", ErrFavoriteSlot, i)
	}
	if id != "" {
		if _, err := domain.ParsePageID(id); err != nil {
			return err
		}
	}
	s.state.Favorites[i] = id
	s.bus.Publish(eventbus.FavoritesChangedEvent{Favorites: s.state.Favorites})
	return nil
}

// AddFavorite stores id in the first empty slot and returns that slot
func (s *Service) AddFavorite(id string) (int, error) {
	for i, fav := range s.state.Favorites {
		if fav == id {
			return i, nil
		}
	}
	for i, fav := range s.state.Favorites {
		if fav == "" {
			return i, s.SetFavorite(i, id)
		}
	}
	return -1, fmt.Errorf("%w: all %d slots are in use", ErrFavoriteSlot, FavoriteSlots)
}

// Favorites returns a copy of the favorites table
func (s *Service) Favorites() [FavoriteSlots]string {
	return s.state.Favorites
}

// SetLayoutProcessor swaps the processor and options and recomposes the
// current page with them
func (s *Service) SetLayoutProcessor(p *pagelayout.Processor, o pagelayout.Options) {
	if p != nil {
		s.layout = p
	}
	s.layoutOpts = o
	if s.state.raw != nil {
		s.commit(*s.state.raw)
	}
}

func (s *Service) Status() Status {
	return s.state.Status
}

// CurrentPage returns the composed current page, nil before the first commit
func (s *Service) CurrentPage() *domain.Page {
	return s.state.Current
}

func (s *Service) History() []string {
	return s.state.History.IDs()
}

func (s *Service) HistoryIndex() int {
	return s.state.History.Index()
}

func (s *Service) Input() string {
	return s.state.Input
}

func (s *Service) Breadcrumbs() []string {
	return append([]string(nil), s.state.Breadcrumbs...)
}

func (s *Service) HighlightBreadcrumb() bool {
	return s.state.HighlightBreadcrumb
}

func (s *Service) ClearHighlight() {
	s.state.HighlightBreadcrumb = false
}

func (s *Service) SessionID() string {
	return s.sessionID
}

// LastError returns the error behind the offline page, if one is showing
func (s *Service) LastError() error {
	return s.state.LastError
}

// PendingPage returns the id being fetched, or "" when idle
func (s *Service) PendingPage() string {
	if s.state.inFlight == nil {
		return ""
	}
	return s.state.inFlight.pageID
}

// Category returns the category of the current page
func (s *Service) Category() domain.Category {
	if s.state.Current == nil {
		return domain.CategoryIndex
	}
	return domain.Classify(*s.state.Current).Category()
}

func (s *Service) currentID() string {
	if s.state.Current == nil {
		return ""
	}
	return s.state.Current.ID
}

func (s *Service) continuation() *domain.Continuation {
	if s.state.Current == nil {
		return nil
	}
	return s.state.Current.Meta.Continuation
}

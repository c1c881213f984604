package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPageRequested      EventType = "PageRequested"
	EventPageLoaded         EventType = "PageLoaded"
	EventPageFetchFailed    EventType = "PageFetchFailed"
	EventNavigationRejected EventType = "NavigationRejected"
	EventFavoritesChanged   EventType = "FavoritesChanged"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
	EventConfigChanged      EventType = "ConfigChanged"
	EventAppReady           EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PageRequestedEvent is emitted when a fetch is issued
type PageRequestedEvent struct {
	PageID     string
	Generation uint64
}

func (e PageRequestedEvent) Type() EventType { return EventPageRequested }

// PageLoadedEvent is emitted when a page is committed as the current page
type PageLoadedEvent struct {
	PageID  string
	History []string
	Offline bool
}

func (e PageLoadedEvent) Type() EventType { return EventPageLoaded }

// PageFetchFailedEvent is emitted when a fetch fails or returns nothing
type PageFetchFailedEvent struct {
	PageID string
	Err    error
}

func (e PageFetchFailedEvent) Type() EventType { return EventPageFetchFailed }

// NavigationRejectedEvent is emitted when a malformed page id is requested
type NavigationRejectedEvent struct {
	PageID string
	Err    error
}

func (e NavigationRejectedEvent) Type() EventType { return EventNavigationRejected }

// FavoritesChangedEvent is emitted when a favorite slot is written
type FavoritesChangedEvent struct {
	Favorites [10]string
}

func (e FavoritesChangedEvent) Type() EventType { return EventFavoritesChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when the config file changes on disk
type ConfigChangedEvent struct {
	Path string
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// AppReadyEvent is emitted when the terminal program has started
type AppReadyEvent struct{}

func (e AppReadyEvent) Type() EventType { return EventAppReady }

package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoadRequested EventType = "CatalogLoadRequested"
	EventCatalogLoadStarted   EventType = "CatalogLoadStarted"
	EventCatalogLoaded        EventType = "CatalogLoaded"
	EventCatalogLoadFailed    EventType = "CatalogLoadFailed"
	EventViewChanged          EventType = "ViewChanged"
	EventError                EventType = "Error"
	EventAppReady             EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadRequestedEvent asks the loader to read the catalog
type CatalogLoadRequestedEvent struct {
	Source string
}

func (e CatalogLoadRequestedEvent) Type() EventType { return EventCatalogLoadRequested }

// CatalogLoadStartedEvent is emitted when the catalog read begins
type CatalogLoadStartedEvent struct {
	Source string
}

func (e CatalogLoadStartedEvent) Type() EventType { return EventCatalogLoadStarted }

// CatalogLoadedEvent carries the full catalog once it has been read
type CatalogLoadedEvent struct {
	Source string
	Books  []Book
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// CatalogLoadFailedEvent is emitted when the catalog could not be read or decoded
type CatalogLoadFailedEvent struct {
	Source string
	Err    error
}

func (e CatalogLoadFailedEvent) Type() EventType { return EventCatalogLoadFailed }

// ViewChangedEvent is emitted after a view parameter mutation
type ViewChangedEvent struct {
	Operation  string
	Matches    int
	TotalPages int
	Page       int
	PageSize   int
}

func (e ViewChangedEvent) Type() EventType { return EventViewChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	HasExistingConfig bool
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }

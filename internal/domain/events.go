package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventOpenSearchRequested EventType = "OpenSearchRequested"
	EventArchiveAdded        EventType = "ArchiveAdded"
	EventArchiveRemoved      EventType = "ArchiveRemoved"
	EventArchiveSelected     EventType = "ArchiveSelected"
	EventEntrySelected       EventType = "EntrySelected"
	EventGroupSelected       EventType = "GroupSelected"
	EventSearchStarted       EventType = "SearchStarted"
	EventSearchCompleted     EventType = "SearchCompleted"
	EventSearchCleared       EventType = "SearchCleared"
	EventError               EventType = "Error"
	EventConfigLoaded        EventType = "ConfigLoaded"
	EventConfigSaved         EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// OpenSearchRequestedEvent asks the search overlay to toggle for an archive.
// ArchiveID is empty when no archive is selected.
type OpenSearchRequestedEvent struct {
	ArchiveID string
}

func (e OpenSearchRequestedEvent) Type() EventType { return EventOpenSearchRequested }

// ArchiveAddedEvent is emitted when an archive becomes available
type ArchiveAddedEvent struct {
	ArchiveID string
	Name      string
}

func (e ArchiveAddedEvent) Type() EventType { return EventArchiveAdded }

// ArchiveRemovedEvent is emitted when an archive is closed
type ArchiveRemovedEvent struct {
	ArchiveID string
}

func (e ArchiveRemovedEvent) Type() EventType { return EventArchiveRemoved }

// ArchiveSelectedEvent is emitted when the selected archive changes
type ArchiveSelectedEvent struct {
	ArchiveID string // "" when the selection was cleared
}

func (e ArchiveSelectedEvent) Type() EventType { return EventArchiveSelected }

// EntrySelectedEvent is emitted when the user picks an entry
type EntrySelectedEvent struct {
	ArchiveID string
	EntryID   string
}

func (e EntrySelectedEvent) Type() EventType { return EventEntrySelected }

// GroupSelectedEvent is emitted when the user picks a group, or the group of a picked entry
type GroupSelectedEvent struct {
	ArchiveID string
	GroupID   string
}

func (e GroupSelectedEvent) Type() EventType { return EventGroupSelected }

// SearchStartedEvent is emitted when the query text changes
type SearchStartedEvent struct {
	Query string
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent is emitted after results were derived for a query
type SearchCompletedEvent struct {
	Query      string
	EntryCount int
	GroupCount int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchClearedEvent is emitted when the query becomes empty
type SearchClearedEvent struct{}

func (e SearchClearedEvent) Type() EventType { return EventSearchCleared }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path      string
	VaultPath string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

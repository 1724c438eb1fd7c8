package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventInstanceCreated    EventType = "InstanceCreated"
	EventInstanceDestroyed  EventType = "InstanceDestroyed"
	EventSuggestionsOpened  EventType = "SuggestionsOpened"
	EventSuggestionSelected EventType = "SuggestionSelected"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventError              EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// InstanceCreatedEvent is emitted when the registry binds a new instance
type InstanceCreatedEvent struct {
	ID     string
	Source SourceKind
}

func (e InstanceCreatedEvent) Type() EventType { return EventInstanceCreated }

// InstanceDestroyedEvent is emitted once an instance has been torn down
type InstanceDestroyedEvent struct {
	ID string
}

func (e InstanceDestroyedEvent) Type() EventType { return EventInstanceDestroyed }

// SuggestionsOpenedEvent is emitted when a result set is shown
type SuggestionsOpenedEvent struct {
	ID    string
	Query string
	Count int
}

func (e SuggestionsOpenedEvent) Type() EventType { return EventSuggestionsOpened }

// SuggestionSelectedEvent is emitted when an item is committed into its input
type SuggestionSelectedEvent struct {
	ID   string
	Item Item
}

func (e SuggestionSelectedEvent) Type() EventType { return EventSuggestionSelected }

// ConfigLoadedEvent is emitted when configuration has been read
type ConfigLoadedEvent struct {
	Path   string
	Inputs int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

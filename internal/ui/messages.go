package ui

import (
	"typeahead/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// clearStatusMsg clears the status line
type clearStatusMsg struct {
	seq int
}

package navigation

import "typeahead/internal/domain"

// NoHighlight marks an open list with nothing highlighted
const NoHighlight = -1

// State holds the interaction state of one suggestion list.
// When Open is false, Items is nil and Highlighted is NoHighlight.
type State struct {
	Open        bool
	Items       []domain.Item
	Highlighted int
}

// Direction represents highlight movement
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Event types for navigation changes
type OpenedEvent struct {
	Items []domain.Item
}

type ClosedEvent struct{}

type HighlightMovedEvent struct {
	OldIndex int
	NewIndex int
}

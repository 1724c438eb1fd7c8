package selection

import "typeahead/internal/domain"

// Event types
type SelectedEvent struct {
	Index int
	Item  domain.Item
}

type DestroyedEvent struct{}

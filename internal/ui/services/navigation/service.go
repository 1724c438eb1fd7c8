package navigation

import (
	"typeahead/internal/domain"
	"typeahead/internal/ui/services/events"
)

// Service is the open/closed and highlight state machine of one instance
type Service struct {
	state  *State
	bus    events.EventBus
	openFn func([]domain.Item) // on_open, fired once per non-empty open
}

// NewService creates a closed navigation service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{Highlighted: NoHighlight},
		bus:   bus,
	}
}

// SetOpenHandler sets the function fired after every successful Open
func (s *Service) SetOpenHandler(fn func([]domain.Item)) {
	s.openFn = fn
}

// State returns a copy of the current state
func (s *Service) State() State {
	return *s.state
}

// IsOpen reports whether the list is shown
func (s *Service) IsOpen() bool {
	return s.state.Open
}

// Items returns the open item list, nil when closed
func (s *Service) Items() []domain.Item {
	return s.state.Items
}

// Highlighted returns the highlighted index, or NoHighlight
func (s *Service) Highlighted() int {
	return s.state.Highlighted
}

// HighlightedItem returns the highlighted item if there is one
func (s *Service) HighlightedItem() (domain.Item, bool) {
	if !s.state.Open || s.state.Highlighted == NoHighlight {
		return domain.Item{}, false
	}
	return s.state.Items[s.state.Highlighted], true
}

// ItemAt returns items[index] when open and index is in range
func (s *Service) ItemAt(index int) (domain.Item, bool) {
	if !s.state.Open || index < 0 || index >= len(s.state.Items) {
		return domain.Item{}, false
	}
	return s.state.Items[index], true
}

// Open shows items with nothing highlighted. An empty list closes instead
// and never fires the open handler. Returns whether the list is now open.
func (s *Service) Open(items []domain.Item) bool {
	if len(items) == 0 {
		s.Close()
		return false
	}

	s.state.Open = true
	s.state.Items = items
	s.state.Highlighted = NoHighlight

	s.bus.Publish(OpenedEvent{Items: items})
	if s.openFn != nil {
		s.openFn(items)
	}
	return true
}

// Close hides the list. Returns whether it was open.
func (s *Service) Close() bool {
	if !s.state.Open {
		return false
	}
	s.state.Open = false
	s.state.Items = nil
	s.state.Highlighted = NoHighlight

	s.bus.Publish(ClosedEvent{})
	return true
}

// Navigate moves the highlight one step, wrapping at both ends
func (s *Service) Navigate(direction Direction) {
	switch direction {
	case DirectionDown:
		s.HighlightNext()
	case DirectionUp:
		s.HighlightPrev()
	}
}

// HighlightNext moves down, treating no highlight as -1
func (s *Service) HighlightNext() {
	if !s.state.Open {
		return
	}
	n := len(s.state.Items)
	s.moveTo((s.state.Highlighted + 1) % n)
}

// HighlightPrev moves up, treating no highlight as 0 so the first press
// lands on the last item
func (s *Service) HighlightPrev() {
	if !s.state.Open {
		return
	}
	n := len(s.state.Items)
	idx := s.state.Highlighted
	if idx == NoHighlight {
		idx = 0
	}
	s.moveTo((idx - 1 + n) % n)
}

// HighlightIndex highlights a specific row (pointer hover). Out of range
// indexes are ignored.
func (s *Service) HighlightIndex(index int) {
	if !s.state.Open || index < 0 || index >= len(s.state.Items) {
		return
	}
	s.moveTo(index)
}

func (s *Service) moveTo(index int) {
	old := s.state.Highlighted
	if old == index {
		return
	}
	s.state.Highlighted = index
	s.bus.Publish(HighlightMovedEvent{
		OldIndex: old,
		NewIndex: index,
	})
}

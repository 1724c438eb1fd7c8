package selection

import (
	"typeahead/internal/domain"
	"typeahead/internal/ui/services/events"
	"typeahead/internal/ui/services/navigation"
)

// Service commits selections into the bound element and owns teardown
type Service struct {
	nav          *navigation.Service
	element      domain.Element
	bus          events.EventBus
	selectFn     func(domain.Item) // on_select
	invalidateFn func()            // drops in-flight queries

	destroyed bool
	hooks     []func()
}

// NewService creates a selection service for element
func NewService(nav *navigation.Service, element domain.Element, bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		nav:     nav,
		element: element,
		bus:     bus,
	}
}

// SetSelectHandler sets the function fired after an item is committed
func (s *Service) SetSelectHandler(fn func(domain.Item)) {
	s.selectFn = fn
}

// SetInvalidateFunction sets the function Close uses to drop pending queries
func (s *Service) SetInvalidateFunction(fn func()) {
	s.invalidateFn = fn
}

// OnDestroy registers a teardown hook. Hooks run once, in registration order.
func (s *Service) OnDestroy(fn func()) {
	if s.destroyed {
		fn()
		return
	}
	s.hooks = append(s.hooks, fn)
}

// Destroyed reports whether Destroy has run
func (s *Service) Destroyed() bool {
	return s.destroyed
}

// Select commits items[index]: the element takes the item's value, the
// select handler fires, and the list closes. Invalid calls are no-ops.
func (s *Service) Select(index int) bool {
	if s.destroyed {
		return false
	}
	item, ok := s.nav.ItemAt(index)
	if !ok {
		return false
	}

	s.element.SetValue(item.Value)
	s.bus.Publish(SelectedEvent{Index: index, Item: item})
	if s.selectFn != nil {
		s.selectFn(item)
	}
	s.Close()
	return true
}

// Confirm selects the highlighted item; without a highlight nothing happens
func (s *Service) Confirm() bool {
	if s.destroyed || !s.nav.IsOpen() {
		return false
	}
	idx := s.nav.Highlighted()
	if idx == navigation.NoHighlight {
		return false
	}
	return s.Select(idx)
}

// Close forces the list closed and drops pending results. Idempotent.
func (s *Service) Close() {
	if s.invalidateFn != nil {
		s.invalidateFn()
	}
	s.nav.Close()
}

// Destroy closes the list and runs every teardown hook. Safe to call more
// than once and from inside a select or open handler.
func (s *Service) Destroy() {
	if s.destroyed {
		return
	}
	s.Close()
	s.destroyed = true

	hooks := s.hooks
	s.hooks = nil
	for _, fn := range hooks {
		fn()
	}
	s.bus.Publish(DestroyedEvent{})
}

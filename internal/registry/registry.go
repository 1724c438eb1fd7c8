// Package registry creates autocomplete instances, tracks them by bind
// target and reports their lifecycle on the domain event bus.
package registry

import (
	"errors"
	"fmt"

	"typeahead/internal/domain"
	"typeahead/internal/eventbus"
	"typeahead/internal/logging"
	"typeahead/internal/ui/autocomplete"
)

var ErrDuplicateID = errors.New("an instance is already bound to this id")

// Registry owns every live instance
type Registry struct {
	store InstanceStore
	bus   eventbus.EventBus
}

// New creates a registry publishing to bus. bus may be nil.
func New(bus eventbus.EventBus) *Registry {
	return NewWithStore(NewMemoryInstanceStore(), bus)
}

// NewWithStore creates a registry backed by store
func NewWithStore(store InstanceStore, bus eventbus.EventBus) *Registry {
	return &Registry{store: store, bus: bus}
}

// Create binds a new instance. The instance removes itself from the
// registry when destroyed.
func (r *Registry) Create(cfg autocomplete.Config) (*autocomplete.Model, error) {
	if cfg.ID != "" && r.store.Get(cfg.ID) != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateID, cfg.ID)
	}

	cfg.OnOpen = r.wrapOpen(cfg.OnOpen)
	cfg.OnSelect = r.wrapSelect(cfg.OnSelect)

	m, err := autocomplete.New(cfg)
	if err != nil {
		r.publish(domain.ErrorEvent{Message: "create instance " + cfg.ID, Err: err})
		return nil, fmt.Errorf("create instance %q: %w", cfg.ID, err)
	}
	if !r.store.AddIfAbsent(m) {
		m.Destroy()
		return nil, fmt.Errorf("%w: %s", ErrDuplicateID, cfg.ID)
	}

	id := m.ID()
	m.OnDestroy(func() {
		r.store.Remove(id)
		r.publish(domain.InstanceDestroyedEvent{ID: id})
	})

	logging.Info("instance created", "id", id, "source", cfg.Source.Kind.String())
	r.publish(domain.InstanceCreatedEvent{ID: id, Source: cfg.Source.Kind})
	return m, nil
}

// Get returns the instance bound to id, or nil
func (r *Registry) Get(id string) *autocomplete.Model {
	return r.store.Get(id)
}

// List returns live instances in creation order
func (r *Registry) List() []*autocomplete.Model {
	return r.store.List()
}

// Len returns the number of live instances
func (r *Registry) Len() int {
	return r.store.Len()
}

// Destroy tears down the instance bound to id. Unknown ids are ignored.
func (r *Registry) Destroy(id string) bool {
	m := r.store.Get(id)
	if m == nil {
		return false
	}
	m.Destroy()
	return true
}

// DestroyAll tears down every instance
func (r *Registry) DestroyAll() {
	for _, m := range r.store.List() {
		m.Destroy()
	}
}

func (r *Registry) wrapOpen(next autocomplete.OpenFunc) autocomplete.OpenFunc {
	return func(el domain.Element, items []domain.Item) {
		r.publish(domain.SuggestionsOpenedEvent{ID: el.ID(), Query: el.Value(), Count: len(items)})
		if next != nil {
			next(el, items)
		}
	}
}

func (r *Registry) wrapSelect(next autocomplete.SelectFunc) autocomplete.SelectFunc {
	return func(el domain.Element, item domain.Item) {
		r.publish(domain.SuggestionSelectedEvent{ID: el.ID(), Item: item})
		if next != nil {
			next(el, item)
		}
	}
}

func (r *Registry) publish(event domain.DomainEvent) {
	if r.bus != nil {
		r.bus.Publish(event)
	}
}

package registry

import "typeahead/internal/ui/autocomplete"

// InstanceStore provides access to bound instances
type InstanceStore interface {
	Get(id string) *autocomplete.Model
	List() []*autocomplete.Model
	AddIfAbsent(m *autocomplete.Model) bool
	Remove(id string)
	Len() int
}

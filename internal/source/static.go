package source

import (
	"context"
	"strings"

	"typeahead/internal/domain"
	"typeahead/internal/normalize"
)

// Static filters a fixed collection normalized once at construction
type Static struct {
	items []domain.Item
}

// NewStatic normalizes raw up front so each query only filters
func NewStatic(raw []any) *Static {
	return &Static{items: normalize.List(raw)}
}

// NewStaticItems wraps an already normalized list
func NewStaticItems(items []domain.Item) *Static {
	return &Static{items: items}
}

// Items returns the full normalized collection
func (s *Static) Items() []domain.Item {
	return s.items
}

// Resolve returns every item whose label or value contains query,
// case-insensitively, in source order. An empty query returns everything.
func (s *Static) Resolve(ctx context.Context, query string) []domain.Item {
	return FilterItems(s.items, query)
}

// FilterItems is the substring filter used by static sources
func FilterItems(items []domain.Item, query string) []domain.Item {
	if query == "" {
		out := make([]domain.Item, len(items))
		copy(out, items)
		return out
	}

	lowerQuery := strings.ToLower(query)
	out := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), lowerQuery) ||
			strings.Contains(strings.ToLower(item.Value), lowerQuery) {
			out = append(out, item)
		}
	}
	return out
}

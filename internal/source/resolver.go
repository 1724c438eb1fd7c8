// Package source resolves a query string into suggestion items, either from
// an in-memory collection or from a remote JSON endpoint.
//
// Resolvers never fail: every error is logged and reported as an empty list,
// so callers only ever see "some suggestions" or "no suggestions".
package source

import (
	"context"
	"errors"
	"fmt"

	"typeahead/internal/domain"
)

var (
	ErrMissingEndpoint = errors.New("remote source requires an endpoint")
	ErrUnknownKind     = errors.New("unknown source kind")
)

// Resolver turns a query into an ordered list of items
type Resolver interface {
	Resolve(ctx context.Context, query string) []domain.Item
}

// New builds the resolver described by spec. Remote resolvers use transport,
// or a default HTTPTransport when transport is nil.
func New(spec domain.SourceSpec, transport Transport) (Resolver, error) {
	switch spec.Kind {
	case domain.SourceStatic:
		return NewStatic(spec.Items), nil
	case domain.SourceRemote:
		if spec.Endpoint == "" {
			return nil, ErrMissingEndpoint
		}
		return NewRemote(spec.Endpoint, transport), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, spec.Kind)
	}
}

// Resolve answers a single query against spec without keeping a resolver
// around. precomputed, when non-nil, replaces normalizing spec.Items.
func Resolve(ctx context.Context, spec domain.SourceSpec, query string, precomputed []domain.Item, transport Transport) []domain.Item {
	switch spec.Kind {
	case domain.SourceStatic:
		if precomputed != nil {
			return FilterItems(precomputed, query)
		}
		return NewStatic(spec.Items).Resolve(ctx, query)
	case domain.SourceRemote:
		r, err := New(spec, transport)
		if err != nil {
			return []domain.Item{}
		}
		return r.Resolve(ctx, query)
	default:
		return []domain.Item{}
	}
}

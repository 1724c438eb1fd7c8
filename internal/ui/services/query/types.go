package query

import (
	"typeahead/internal/domain"
)

// ResultsMsg carries a settled resolution back to the event loop.
// Token identifies the issuing Service; ids may be reused after destroy.
type ResultsMsg struct {
	InstanceID string
	Token      string
	Seq        uint64
	Query      string
	Items      []domain.Item
}

// Options are the query-related parts of an instance config
type Options struct {
	MinLength  int
	MaxResults int
}

// Event types
type IssuedEvent struct {
	Request domain.QueryRequest
}

type AppliedEvent struct {
	Request domain.QueryRequest
	Count   int
	Opened  bool
}

// DiscardedEvent is published when a superseded result settles
type DiscardedEvent struct {
	Request domain.QueryRequest
	Current uint64
}

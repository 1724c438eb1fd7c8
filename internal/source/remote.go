package source

import (
	"context"
	"net/url"
	"strings"

	"typeahead/internal/domain"
	"typeahead/internal/logging"
	"typeahead/internal/normalize"
)

// TermParam is the query-string key carrying the typed text
const TermParam = "term"

// Remote asks a JSON endpoint for suggestions on every query
type Remote struct {
	endpoint  string
	transport Transport
}

// NewRemote creates a resolver for endpoint. A nil transport means
// NewHTTPTransport().
func NewRemote(endpoint string, transport Transport) *Remote {
	if transport == nil {
		transport = NewHTTPTransport()
	}
	return &Remote{
		endpoint:  endpoint,
		transport: transport,
	}
}

// Resolve fetches BuildURL(endpoint, query) and normalizes the JSON array it
// returns. Any failure yields an empty list.
func (r *Remote) Resolve(ctx context.Context, query string) []domain.Item {
	target := BuildURL(r.endpoint, query)

	body, err := r.transport.FetchJSON(ctx, target)
	if err != nil {
		logging.Warn("remote suggestions failed", "url", target, "err", err)
		return []domain.Item{}
	}

	arr, ok := body.([]any)
	if !ok {
		logging.Warn("remote suggestions: response is not a JSON array", "url", target)
		return []domain.Item{}
	}

	items := normalize.List(arr)
	logging.Debug("remote suggestions resolved", "url", target, "count", len(items))
	return items
}

// BuildURL appends term=<query> to endpoint, joining with '?' or '&'
// depending on whether endpoint already carries a query string.
func BuildURL(endpoint, query string) string {
	param := TermParam + "=" + strings.ReplaceAll(url.QueryEscape(query), "+", "%20")

	switch {
	case !strings.Contains(endpoint, "?"):
		return endpoint + "?" + param
	case strings.HasSuffix(endpoint, "?"), strings.HasSuffix(endpoint, "&"):
		return endpoint + param
	default:
		return endpoint + "&" + param
	}
}

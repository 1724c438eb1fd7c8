package autocomplete

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/cursor"

	"typeahead/internal/domain"
	"typeahead/internal/source"
)

const (
	DefaultMinLength  = 1
	DefaultMaxResults = 20
)

var (
	ErrMissingID         = errors.New("missing bind target id")
	ErrInvalidMinLength  = errors.New("min_length must not be negative")
	ErrInvalidMaxResults = errors.New("max_results must be positive")
)

// OpenFunc is called each time a non-empty suggestion list opens
type OpenFunc func(el domain.Element, items []domain.Item)

// SelectFunc is called after an item has been written into the input
type SelectFunc func(el domain.Element, item domain.Item)

// Config is captured once when an instance is created
type Config struct {
	ID          string // bind target; required
	Label       string
	Placeholder string
	Source      domain.SourceSpec

	// MinLength is honoured as given, 0 included. NewConfig fills in 1.
	MinLength int
	// MaxResults of 0 means DefaultMaxResults.
	MaxResults int

	OnOpen   OpenFunc
	OnSelect SelectFunc

	// Transport backs remote sources; nil uses source.NewHTTPTransport
	Transport source.Transport
	// CursorMode of the bound input; the zero value blinks
	CursorMode cursor.Mode
}

// NewConfig returns a config with the documented defaults
func NewConfig(id string, src domain.SourceSpec) Config {
	return Config{
		ID:         id,
		Source:     src,
		MinLength:  DefaultMinLength,
		MaxResults: DefaultMaxResults,
	}
}

// withDefaults validates c and fills unset fields
func (c Config) withDefaults() (Config, error) {
	if c.ID == "" {
		return c, ErrMissingID
	}
	if c.MinLength < 0 {
		return c, fmt.Errorf("%w: %d", ErrInvalidMinLength, c.MinLength)
	}
	if c.MaxResults == 0 {
		c.MaxResults = DefaultMaxResults
	}
	if c.MaxResults < 0 {
		return c, fmt.Errorf("%w: %d", ErrInvalidMaxResults, c.MaxResults)
	}
	if c.Label == "" {
		c.Label = c.ID
	}
	return c, nil
}

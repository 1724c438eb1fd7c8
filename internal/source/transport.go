package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
	"golang.org/x/time/rate"
)

// Transport fetches a URL and decodes its body as JSON
type Transport interface {
	FetchJSON(ctx context.Context, url string) (any, error)
}

// TransportFunc adapts a plain function to Transport
type TransportFunc func(ctx context.Context, url string) (any, error)

func (f TransportFunc) FetchJSON(ctx context.Context, url string) (any, error) {
	return f(ctx, url)
}

const (
	DefaultTimeout   = 5 * time.Second
	DefaultUserAgent = "typeahead/0.1"
)

// HTTPTransport performs GET requests with a pooled client and a shared
// rate limit, so a fast typist cannot flood the endpoint.
type HTTPTransport struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// HTTPOption configures an HTTPTransport
type HTTPOption func(*HTTPTransport)

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) HTTPOption {
	return func(t *HTTPTransport) {
		if d > 0 {
			t.client.Timeout = d
		}
	}
}

// WithRateLimit allows perSecond requests with the given burst.
// perSecond <= 0 disables limiting.
func WithRateLimit(perSecond float64, burst int) HTTPOption {
	return func(t *HTTPTransport) {
		if perSecond <= 0 {
			t.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		t.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) HTTPOption {
	return func(t *HTTPTransport) {
		if ua != "" {
			t.userAgent = ua
		}
	}
}

// NewHTTPTransport creates a transport with sane defaults
func NewHTTPTransport(opts ...HTTPOption) *HTTPTransport {
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = DefaultTimeout

	t := &HTTPTransport{
		client:    client,
		limiter:   rate.NewLimiter(rate.Inf, 0),
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// FetchJSON issues a GET to url and decodes the JSON body.
// Numbers decode as json.Number so large ids keep their exact text.
func (t *HTTPTransport) FetchJSON(ctx context.Context, url string) (any, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", t.userAgent)
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch suggestions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return body, nil
}

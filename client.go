package codeforces

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/contestwire/codeforces/internal/apisign"
	"github.com/contestwire/codeforces/internal/apiurl"
	"github.com/contestwire/codeforces/internal/httpx"
	"github.com/contestwire/codeforces/model"
	"github.com/contestwire/codeforces/optional"
)

// DefaultUserAgent is the User-Agent header value used unless
// [Config.UserAgent] overrides it.
const DefaultUserAgent = "contestwire-codeforces/0.1.0"

// AuthConfig contains the credentials used to sign requests.
type AuthConfig struct {
	// Key is the MANDATORY API key.
	Key string

	// Secret is the MANDATORY API secret. It is only ever used as
	// input to the signature hash and is never logged.
	Secret string

	// FixedTime OPTIONALLY pins the signature timestamp, which makes
	// signed URLs reproducible in tests. When unset, the timestamp is
	// resolved once, lazily, at the first signed call.
	FixedTime optional.Value[int64]
}

// Config contains configuration for [NewClient].
type Config struct {
	// Auth OPTIONALLY enables request signing. When nil, requests are
	// sent unsigned and rely on the endpoint being public.
	Auth *AuthConfig

	// BaseURL is the OPTIONAL API root to use instead of
	// https://codeforces.com/api, mainly useful for testing.
	BaseURL string

	// HTTPClient is the OPTIONAL [model.HTTPClient] to use.
	HTTPClient model.HTTPClient

	// Logger is the OPTIONAL [model.Logger] to use.
	Logger model.Logger

	// UserAgent is the OPTIONAL User-Agent header value to use.
	UserAgent string
}

// Client issues Codeforces API calls. Each exported method corresponds
// to one remote operation and suspends only at the network boundary,
// so any number of calls may be in flight concurrently from
// independent goroutines; the client performs no internal locking and
// gives no ordering guarantee between concurrent calls.
//
// The zero value is invalid; construct using [NewClient].
type Client struct {
	baseURL string
	closed  atomic.Bool
	conf    *httpx.Config
	signer  *apisign.Signer
}

// NewClient constructs a [*Client] with the given config. Fields of
// the config left at their zero value use working defaults.
func NewClient(config *Config) *Client {
	baseURL := apiurl.DefaultBaseURL
	if config.BaseURL != "" {
		baseURL = strings.TrimSuffix(config.BaseURL, "/")
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	var signer *apisign.Signer
	if config.Auth != nil {
		signer = apisign.New(baseURL, config.Auth.Key, config.Auth.Secret, config.Auth.FixedTime)
	}
	return &Client{
		baseURL: baseURL,
		conf: &httpx.Config{
			Client:    httpClient,
			Logger:    model.ValidLoggerOrDefault(config.Logger),
			UserAgent: userAgent,
		},
		signer: signer,
	}
}

// Close releases the resources owned by the client. Calls made after
// Close fail with [ErrClientClosed]. Close is idempotent.
func (c *Client) Close() error {
	c.closed.Store(true)
	c.conf.Client.CloseIdleConnections()
	return nil
}

// call performs one complete request round trip: build the endpoint
// URL, sign it when signing is enabled, perform the GET, and decode
// the envelope into a typed list.
func call[T any](ctx context.Context, c *Client, method string, query *apiurl.Query) ([]T, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}
	URL := apiurl.Build(c.baseURL, method, query)
	if c.signer != nil {
		URL = c.signer.Sign(URL, method)
	}
	rawbody, err := httpx.GetRaw(ctx, c.conf, URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return decodeResponse[T](rawbody)
}

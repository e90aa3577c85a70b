// Package httpx performs HTTP GET requests against the Codeforces API.
//
// The transport is deliberately thin: one GET per call, no retries, no
// internal timeout. Callers needing bounded latency should arrange
// their own deadline through the context. The response body is
// returned as raw bytes regardless of the HTTP status code, because
// the remote service reports failures inside the JSON body rather than
// through the status line.
package httpx

import (
	"context"
	"io"
	"net/http"

	"github.com/contestwire/codeforces/model"
)

// Config contains configuration shared by [GetRaw].
//
// The zero value is invalid; initialize the MANDATORY fields.
type Config struct {
	// Client is the MANDATORY [model.HTTPClient] to use.
	Client model.HTTPClient

	// Logger is the MANDATORY [model.Logger] to use.
	Logger model.Logger

	// UserAgent is the MANDATORY User-Agent header value to use.
	UserAgent string
}

// GetRaw sends a GET request and reads the raw response body.
//
// Arguments:
//
// - ctx is the cancellable context: cancelling it abandons the
// in-flight request;
//
// - config contains the config;
//
// - URL is the URL to use.
//
// This function either returns an error or the response bytes.
func GetRaw(ctx context.Context, config *Config, URL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", config.UserAgent)

	config.Logger.Debugf("httpx: GET %s", URL)
	resp, err := config.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	rawbody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	config.Logger.Debugf("httpx: GET %s: %s with %d bytes", URL, resp.Status, len(rawbody))
	return rawbody, nil
}

package model

//
// HTTP definitions.
//

import "net/http"

// HTTPClient is an HTTP client. The [net/http.Client] and compatible
// replacements satisfy this interface. We require the ability to close
// idle connections so that [Client.Close] can release resources.
type HTTPClient interface {
	// Do behaves like http.Client.Do.
	Do(req *http.Request) (*http.Response, error)

	// CloseIdleConnections closes idle connections.
	CloseIdleConnections()
}

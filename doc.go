// Package codeforces implements a typed client for the Codeforces API.
//
// Construct a [*Client] with [NewClient] and invoke one method per
// remote operation, e.g. [Client.UserInfo] for user.info. Every method
// builds the endpoint URL, optionally signs it when [Config.Auth] is
// configured, performs a single HTTP GET, and decodes the JSON
// response envelope into a typed list. There are no retries and no
// caching: each call is one independent request/response round trip.
//
// Errors belong to one of three categories that callers can branch on:
// transport failures wrap [ErrTransport], malformed responses wrap
// [ErrDecode], and failures reported by the remote service are
// returned as [*APIError].
//
// The [*BlockingClient] variant exposes the same operations without a
// context argument for callers that do not need cancellation.
package codeforces

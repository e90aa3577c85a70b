// Package model contains the data model shared across this library: the
// records returned by the Codeforces API, the ensure-list normalization
// type, and the interfaces through which the client consumes an HTTP
// client and a logger.
package model

// Package apiurl constructs Codeforces API request URLs.
//
// A [Query] accumulates parameters preserving their insertion order and
// [Build] renders the final URL. Booleans render as the literal "True"
// and "False" strings and the ";" character is never percent-escaped,
// because the remote service expects both (";" separates the items of
// list-valued parameters such as handles).
package apiurl

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/contestwire/codeforces/optional"
)

// DefaultBaseURL is the canonical Codeforces API root.
const DefaultBaseURL = "https://codeforces.com/api"

// Method names of the fixed operation set.
const (
	MethodBlogEntryComments      = "blogEntry.comments"
	MethodBlogEntryView          = "blogEntry.view"
	MethodContestHacks           = "contest.hacks"
	MethodContestList            = "contest.list"
	MethodContestRatingChanges   = "contest.ratingChanges"
	MethodContestStandings       = "contest.standings"
	MethodContestStatus          = "contest.status"
	MethodProblemsetProblems     = "problemset.problems"
	MethodProblemsetRecentStatus = "problemset.recentStatus"
	MethodRecentActions          = "recentActions"
	MethodUserBlogEntries        = "user.blogEntries"
	MethodUserFriends            = "user.friends"
	MethodUserInfo               = "user.info"
	MethodUserRatedList          = "user.ratedList"
	MethodUserRating             = "user.rating"
	MethodUserStatus             = "user.status"
)

// Query is an ordered list of query parameters. The zero value is
// an empty query ready to use.
type Query struct {
	pairs []pair
}

// pair is a single key-value pair.
type pair struct {
	key   string
	value string
}

// NewQuery constructs an empty [*Query].
func NewQuery() *Query {
	return &Query{}
}

// String appends a string-valued parameter.
func (q *Query) String(key, value string) {
	q.pairs = append(q.pairs, pair{key: key, value: value})
}

// Int appends an integer-valued parameter.
func (q *Query) Int(key string, value int64) {
	q.String(key, strconv.FormatInt(value, 10))
}

// Bool appends a boolean parameter rendered as "True" or "False".
func (q *Query) Bool(key string, value bool) {
	q.String(key, FormatBool(value))
}

// MaybeString appends a string-valued parameter unless it is unset.
func (q *Query) MaybeString(key string, value optional.Value[string]) {
	if !value.IsNone() {
		q.String(key, value.Unwrap())
	}
}

// MaybeInt appends an integer-valued parameter unless it is unset.
func (q *Query) MaybeInt(key string, value optional.Value[int64]) {
	if !value.IsNone() {
		q.Int(key, value.Unwrap())
	}
}

// MaybeBool appends a boolean parameter unless it is unset.
func (q *Query) MaybeBool(key string, value optional.Value[bool]) {
	if !value.IsNone() {
		q.Bool(key, value.Unwrap())
	}
}

// Encode renders the percent-encoded query string in insertion order.
func (q *Query) Encode() string {
	var builder strings.Builder
	for idx, entry := range q.pairs {
		if idx > 0 {
			builder.WriteByte('&')
		}
		builder.WriteString(Escape(entry.key))
		builder.WriteByte('=')
		builder.WriteString(Escape(entry.value))
	}
	return builder.String()
}

// FormatBool renders a boolean the way the remote service expects it.
func FormatBool(value bool) string {
	if value {
		return "True"
	}
	return "False"
}

// Escape percent-encodes a query component keeping ";" literal.
func Escape(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "%3B", ";")
}

// Build renders the URL for calling the given method. When the query is
// empty the "?" separator is omitted entirely.
func Build(baseURL, method string, query *Query) string {
	URL := baseURL + "/" + method
	if encoded := query.Encode(); encoded != "" {
		URL += "?" + encoded
	}
	return URL
}

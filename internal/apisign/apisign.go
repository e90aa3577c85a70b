// Package apisign signs Codeforces API request URLs.
//
// A signed URL carries three extra parameters: apiKey, time, and
// apiSig. The apiSig value is a random six-digit nonce followed by the
// SHA-512 hex digest of
//
//	{nonce}/{method}?apiKey={key}&{canonicalQuery}&time={time}#{secret}
//
// where the canonical query is the lexicographically key-sorted form of
// the original query string. The algorithm must be reproduced exactly
// for wire compatibility with the remote service.
package apisign

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/contestwire/codeforces/optional"
)

// Signer signs request URLs with a key/secret pair.
//
// The zero value is invalid; construct using [New]. The Nonce and
// TimeNow fields exist so that tests can pin both entropy sources and
// obtain byte-for-byte reproducible signatures.
type Signer struct {
	// BaseURL is the API root the unsigned URL was built against.
	BaseURL string

	// Key is the API key.
	Key string

	// Secret is the API secret. It is embedded into the hashed string
	// and never logged or emitted into the signed URL.
	Secret string

	// FixedTime optionally pins the signature timestamp.
	FixedTime optional.Value[int64]

	// Nonce returns the per-request random six-digit nonce.
	Nonce func() int64

	// TimeNow returns the current unix time in seconds. It is only
	// consulted when FixedTime is unset, and only once: the first
	// signed call resolves the timestamp for the signer's lifetime.
	TimeNow func() int64

	timeOnce   sync.Once
	cachedTime int64
}

// New constructs a [*Signer] with the default nonce and clock.
func New(baseURL, key, secret string, fixedTime optional.Value[int64]) *Signer {
	return &Signer{
		BaseURL:   baseURL,
		Key:       key,
		Secret:    secret,
		FixedTime: fixedTime,
		Nonce:     defaultNonce,
		TimeNow: func() int64 {
			return time.Now().Unix()
		},
	}
}

// defaultNonce returns a random integer in [111111, 999999].
func defaultNonce() int64 {
	return 111111 + rand.Int63n(999999-111111+1)
}

// signingTime resolves the timestamp to embed into the signature.
func (s *Signer) signingTime() int64 {
	if !s.FixedTime.IsNone() {
		return s.FixedTime.Unwrap()
	}
	s.timeOnce.Do(func() {
		s.cachedTime = s.TimeNow()
	})
	return s.cachedTime
}

// Sign converts the given unsigned URL for the given method into a
// signed URL carrying the apiKey, time, and apiSig parameters.
func (s *Signer) Sign(rawURL, method string) string {
	prefix := s.BaseURL + "/" + method + "?"
	rawQuery := ""
	if strings.HasPrefix(rawURL, prefix) {
		rawQuery = rawURL[len(prefix):]
	}
	canonical := Canonicalize(rawQuery)
	nonce := s.Nonce()
	now := s.signingTime()
	input := fmt.Sprintf("%d/%s?apiKey=%s&%s&time=%d#%s",
		nonce, method, s.Key, canonical, now, s.Secret)
	digest := sha512.Sum512([]byte(input))
	return fmt.Sprintf("%s/%s?%s&apiKey=%s&time=%d&apiSig=%d%s",
		s.BaseURL, method, canonical, s.Key, now, nonce,
		hex.EncodeToString(digest[:]))
}

// Canonicalize parses a raw query string and renders its canonical
// form: entries split on "&" then on the first "=" (entries without a
// "=" are dropped), stably sorted by key, and rejoined. Values keep the
// percent-encoding they already carry, which notably leaves ";"
// literal for list-valued parameters.
func Canonicalize(rawQuery string) string {
	var pairs [][2]string
	for _, entry := range strings.Split(rawQuery, "&") {
		key, value, found := strings.Cut(entry, "=")
		if !found || key == "" {
			continue
		}
		pairs = append(pairs, [2]string{key, value})
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i][0] < pairs[j][0]
	})
	segments := make([]string, 0, len(pairs))
	for _, entry := range pairs {
		segments = append(segments, entry[0]+"="+entry[1])
	}
	return strings.Join(segments, "&")
}

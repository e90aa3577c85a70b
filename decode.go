package codeforces

//
// decode.go - decoding the {status, comment, result} envelope.
//

import (
	"encoding/json"
	"fmt"

	"github.com/contestwire/codeforces/model"
	"github.com/contestwire/codeforces/optional"
)

// statusOK is the envelope status of a successful call.
const statusOK = "OK"

// envelope is the wrapper around every response payload. Decoding is
// permissive: unknown fields are ignored and absent optional fields
// become explicit absent values.
type envelope[T any] struct {
	Status  string                 `json:"status"`
	Comment optional.Value[string] `json:"comment"`
	Result  model.List[T]          `json:"result"`
}

// decodeResponse turns a raw response body into a typed list.
//
// An undecodable body yields an error wrapping [ErrDecode]. A non-OK
// status yields an [*APIError] carrying the server comment. Otherwise
// the result is normalized to a list: absent becomes empty, a bare
// value becomes a one-element list, a list stays itself.
func decodeResponse[T any](rawbody []byte) ([]T, error) {
	var env envelope[T]
	if err := json.Unmarshal(rawbody, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if env.Status != statusOK {
		return nil, newAPIError(env.Comment)
	}
	if env.Result == nil {
		return []T{}, nil
	}
	return env.Result, nil
}

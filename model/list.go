package model

import (
	"bytes"
	"encoding/json"
)

// List is a slice whose JSON decoding tolerates the remote API quirk
// where a bare value is returned in place of a singleton list. A JSON
// `null` decodes to an empty list, a bare value decodes to a
// one-element list, and an array decodes as usual. An absent field
// leaves the list empty because of how encoding/json works.
type List[T any] []T

var _ json.Unmarshaler = &List[int]{}

// UnmarshalJSON implements json.Unmarshaler.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	// reset the state such that failure leaves an empty list
	*l = nil

	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}

	if len(data) > 0 && data[0] == '[' {
		var values []T
		if err := json.Unmarshal(data, &values); err != nil {
			return err
		}
		*l = values
		return nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*l = []T{value}
	return nil
}

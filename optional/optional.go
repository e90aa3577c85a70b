// Package optional implements optional values.
package optional

import (
	"encoding/json"
	"reflect"

	"github.com/contestwire/codeforces/internal/runtimex"
)

// Value is an optional value. The zero value of this structure
// is equivalent to the one you get when calling [None].
type Value[T any] struct {
	// indirect is the indirect pointer to the value.
	indirect *T
}

// None constructs an empty [Value].
func None[T any]() Value[T] {
	return Value[T]{nil}
}

// Some constructs a [Value] wrapping the given value, unless T is a
// pointer type and the pointer is nil, in which case Some is
// equivalent to [None].
func Some[T any](value T) Value[T] {
	v := Value[T]{}
	maybeSetFromValue(&v, value)
	return v
}

// maybeSetFromValue sets the underlying value unless T is a pointer
// type pointing to nil, in which case we make the [Value] empty.
func maybeSetFromValue[T any](v *Value[T], value T) {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		v.indirect = nil
		return
	}
	v.indirect = &value
}

// IsNone returns whether this [Value] is empty.
func (v Value[T]) IsNone() bool {
	return v.indirect == nil
}

// Unwrap returns the underlying value. This method panics with an
// error value if the [Value] is empty.
func (v Value[T]) Unwrap() T {
	runtimex.Assert(!v.IsNone(), "optional: Unwrap called on an empty Value")
	return *v.indirect
}

// UnwrapOr returns the underlying value or the given fallback.
func (v Value[T]) UnwrapOr(fallback T) T {
	if v.IsNone() {
		return fallback
	}
	return v.Unwrap()
}

// UnmarshalJSON implements json.Unmarshaler. A literal `null`
// unmarshals to an empty [Value] rather than causing an error.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	// reset the state such that failure leaves an empty Value
	v.indirect = nil

	if string(data) == "null" {
		return nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	maybeSetFromValue(v, value)
	return nil
}

// MarshalJSON implements json.Marshaler. An empty [Value]
// marshals to the literal `null`.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if v.IsNone() {
		return json.Marshal(nil)
	}
	return json.Marshal(*v.indirect)
}

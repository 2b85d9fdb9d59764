package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a JSON field that distinguishes "absent" from "explicitly
// null". Set reports that the field appeared in the payload at all;
// Valid reports that it carried a non-null value. The zero Optional is
// an absent field.
type Optional[T any] struct {
	Value T
	Set   bool
	Valid bool
}

// Some returns a present, non-null Optional. For callers assembling a
// partial update in code rather than decoding one.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true, Valid: true}
}

// Null returns a present, explicitly-null Optional.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

var jsonNull = []byte("null")

// UnmarshalJSON records presence before decoding the value. The decoder
// only calls it for fields that appear in the payload, so an untouched
// Optional stays absent.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, jsonNull) {
		var zero T
		o.Value = zero
		o.Valid = false
		return nil
	}
	o.Valid = true
	return json.Unmarshal(data, &o.Value)
}

// Ptr returns the value as a pointer, nil when the field was null or
// absent.
func (o Optional[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

// putOptional writes a set Optional into an enclosing JSON object,
// preserving explicit nulls and skipping absent fields.
func putOptional[T any](m map[string]any, key string, o Optional[T]) {
	if !o.Set {
		return
	}
	if !o.Valid {
		m[key] = nil
		return
	}
	m[key] = o.Value
}

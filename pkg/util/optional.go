package util

import (
	"bytes"
	"encoding/json"
)

// Optional tracks JSON field presence for partial updates. A field left out
// of the payload decodes with Set=false and must be ignored; an explicit
// null decodes with Set=true and the zero value, which for pointer-typed T
// means "clear this field".
type Optional[T any] struct {
	Set   bool
	Value T
}

// Some wraps a value in a present Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

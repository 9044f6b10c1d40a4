package dto

import "encoding/json"

// Optional is a JSON field that remembers whether it was present in the
// payload. A present null sets both Set and Null.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		o.Null = true
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// HasValue reports a present, non-null value.
func (o Optional[T]) HasValue() bool {
	return o.Set && !o.Null
}

// Column returns the value to write, nil for an explicit null.
func (o Optional[T]) Column() any {
	if o.Null {
		return nil
	}
	return o.Value
}

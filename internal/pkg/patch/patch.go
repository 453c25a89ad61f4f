// Package patch provides a tri-state optional field for partial updates.
// A plain pointer cannot tell "key absent" from "key explicitly null", which
// is exactly the distinction exclude-unset update semantics need.
package patch

import "encoding/json"

// Field is unset until its key appears in the JSON body. A present key with
// a null value marks the field as cleared.
type Field[T any] struct {
	Value T
	Set   bool
	Null  bool
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if string(b) == "null" {
		f.Null = true
		return nil
	}
	return json.Unmarshal(b, &f.Value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Of builds a set field, mostly for tests.
func Of[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

// Clear builds an explicitly-null field.
func Clear[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

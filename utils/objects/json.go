package objects

import (
	"encoding/json"
	"fmt"
)

// ToJSON marshals v into a JSON string.
func ToJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("unable to marshal to json: %w", err)
	}
	return string(data), nil
}

// FromJSON unmarshals s into a new value of type T.
func FromJSON[T any](s string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return v, fmt.Errorf("unable to unmarshal json: %w", err)
	}
	return v, nil
}

// RoundTrip passes v through JSON and back. Unexported fields and anything
// JSON cannot express are lost, which is the point when a plain data copy is
// needed.
func RoundTrip[T any](v T) (T, error) {
	s, err := ToJSON(v)
	if err != nil {
		var zero T
		return zero, err
	}
	return FromJSON[T](s)
}

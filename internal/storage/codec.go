package storage

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Encode serializes a value to JSON and wraps it in base64. This mirrors the
// original browser store's btoa obfuscation: reversible on purpose.
func Encode(value any) ([]byte, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	out := make([]byte, base64.StdEncoding.EncodedLen(len(raw)))
	base64.StdEncoding.Encode(out, raw)
	return out, nil
}

// Decode reverses Encode into the given value.
func Decode(data []byte, into any) error {
	raw := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
	n, err := base64.StdEncoding.Decode(raw, data)
	if err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}
	if err := json.Unmarshal(raw[:n], into); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}
	return nil
}

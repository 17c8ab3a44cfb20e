package repository

import (
	"encoding/json"
	"fmt"
)

// decodeAll unmarshals a collection's raw payloads into typed records.
func decodeAll[T any](raws []json.RawMessage) ([]*T, error) {
	out := make([]*T, 0, len(raws))
	for _, raw := range raws {
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("failed to decode record: %w", err)
		}
		out = append(out, &rec)
	}
	return out, nil
}

// decodeOne unmarshals a single raw payload.
func decodeOne[T any](raw json.RawMessage) (*T, error) {
	var rec T
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return &rec, nil
}

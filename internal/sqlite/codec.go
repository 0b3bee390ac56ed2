package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/ganot/daylog/internal/repository"
)

func encodeJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", repository.ErrInvalidInput, err)
	}
	return string(data), nil
}

func decodeJSON(data string, v any) error {
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("failed to decode stored document: %w", err)
	}
	return nil
}

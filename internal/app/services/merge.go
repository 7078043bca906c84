package services

import (
	"encoding/json"
	"fmt"

	"github.com/yigit/lmsdash/internal/app/models"
	"github.com/yigit/lmsdash/internal/pkg/apperrors"
)

// mergePartial overlays the top-level fields in partial onto current and
// returns the result. Fields absent from partial keep their values; nested
// values are replaced whole. The "id" key is ignored and keys that are not
// fields of T are dropped. A value of the wrong JSON type fails the merge
// with a bad request error.
func mergePartial[T any](current T, partial models.Partial) (T, error) {
	base, err := json.Marshal(current)
	if err != nil {
		return current, fmt.Errorf("encoding record: %w", err)
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(base, &fields); err != nil {
		return current, fmt.Errorf("decoding record fields: %w", err)
	}

	// Only exact field names apply; decoding would otherwise fold case
	for key, value := range partial {
		if _, known := fields[key]; !known || key == "id" {
			continue
		}
		fields[key] = value
	}

	merged, err := json.Marshal(fields)
	if err != nil {
		return current, apperrors.NewBadRequestError("Invalid update payload").WithDetails(err.Error())
	}

	var out T
	if err := json.Unmarshal(merged, &out); err != nil {
		return current, apperrors.NewBadRequestError("Invalid update payload").WithDetails(err.Error())
	}
	return out, nil
}

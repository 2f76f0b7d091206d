package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"vivuplan/pkg/logger"
)

// loadList decodes the JSON array stored under key. A blob that does not
// decode is removed and reads as an empty list.
func loadList[T any](ctx context.Context, store KeyValueStore, log *logger.Logger, key string) ([]T, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Warn("discarding corrupt storage blob", "key", key, "error", err)
		if delErr := store.Delete(ctx, key); delErr != nil {
			log.Error("failed to delete corrupt storage blob", "key", key, "error", delErr)
		}
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func saveList[T any](ctx context.Context, store KeyValueStore, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return store.Set(ctx, key, raw)
}

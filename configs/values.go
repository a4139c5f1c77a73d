package configs

import (
	"errors"
	"fmt"
)

// First decodes path from the first file setting it, or returns def.
// Malformed values panic.
func First[T any](loader Loader, path string, def T) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return def
		}
		panic(err)
	}
	return value
}

// All decodes path from every file setting it, in load order.
func All[T any](loader Loader, path string) ([]T, error) {
	var ret []T
	for value, err := range loader.Lookup(path) {
		if err != nil {
			return nil, err
		}
		var v T
		if err := value.Decode(&v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		ret = append(ret, v)
	}
	return ret, nil
}

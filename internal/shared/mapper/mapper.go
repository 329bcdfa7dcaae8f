// Package mapper holds small generic helpers for persistence mappers.
package mapper

import "fmt"

// MapSlice converts a slice with fn, failing fast and naming the offending
// element's identifier in the error.
func MapSlice[S any, D any, ID any](src []S, fn func(S) (D, error), idFn func(S) ID) ([]D, error) {
	if src == nil {
		return nil, nil
	}

	dst := make([]D, 0, len(src))
	for _, item := range src {
		mapped, err := fn(item)
		if err != nil {
			return nil, fmt.Errorf("failed to map element %v: %w", idFn(item), err)
		}
		dst = append(dst, mapped)
	}
	return dst, nil
}

package grouping

import (
	"fmt"

	"github.com/on-the-ground/underbar/collection"
	"github.com/on-the-ground/underbar/shared/helper"
)

// SortBy orders the elements of c by the key criterion computes for each.
//
// Elements are grouped under fmt.Sprint of their key and the groups are
// concatenated in ascending string order of those keys. Elements sharing a
// key keep their enumeration order. Because keys compare as strings, the
// numbers 10 and 9 sort as "10" < "9".
func SortBy[T, K any](c collection.Container[T], criterion func(T) K) []T {
	groups := newBuckets[T]()
	collection.Each(c, func(v T, _ collection.Key, _ collection.Container[T]) {
		groups.add(fmt.Sprint(criterion(v)), v)
	})
	return groups.concat()
}

// SortByProperty is SortBy with a criterion that reads the property name off
// each element (an exported struct field or a string map key).
func SortByProperty[T any](c collection.Container[T], name string) ([]T, error) {
	var firstErr error
	sorted := SortBy(c, func(v T) any {
		prop, err := helper.Property(v, name)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return prop
	})
	if firstErr != nil {
		return nil, fmt.Errorf("sort by %q: %w", name, firstErr)
	}
	return sorted, nil
}

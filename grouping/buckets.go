package grouping

import (
	"slices"

	"golang.org/x/exp/maps"
)

// buckets keeps items grouped under string keys, in insertion order per key.
type buckets[T any] struct {
	items map[string][]T
}

func newBuckets[T any]() *buckets[T] {
	return &buckets[T]{
		items: map[string][]T{},
	}
}

func (b *buckets[T]) add(key string, item T) {
	b.items[key] = append(b.items[key], item)
}

// sortedKeys returns the bucket keys in ascending byte-wise order.
func (b *buckets[T]) sortedKeys() []string {
	keys := maps.Keys(b.items)
	slices.Sort(keys)
	return keys
}

// concat joins the buckets in sorted key order.
func (b *buckets[T]) concat() []T {
	out := make([]T, 0, len(b.items))
	for _, key := range b.sortedKeys() {
		out = append(out, b.items[key]...)
	}
	return out
}

package collection

import (
	"fmt"

	"github.com/on-the-ground/underbar/shared/helper"
)

// This file holds the operations derived from Each and Reduce. None of them
// traverses a container on its own.

// Predicate reports whether an element passes a truth test.
type Predicate[T any] func(T) bool

func (p Predicate[T]) negate() Predicate[T] {
	return func(v T) bool { return !p(v) }
}

// Filter returns the elements of c that pass pred, in enumeration order.
func Filter[T any](c Container[T], pred Predicate[T]) []T {
	return Reduce(c, func(passed []T, v T) []T {
		if pred(v) {
			passed = append(passed, v)
		}
		return passed
	}, []T{})
}

// Reject returns the elements of c that fail pred.
func Reject[T any](c Container[T], pred Predicate[T]) []T {
	return Filter(c, pred.negate())
}

// Map returns fn applied to every element of c, in enumeration order.
func Map[T, R any](c Container[T], fn func(T) R) []R {
	out := make([]R, 0, c.Len())
	Each(c, func(v T, _ Key, _ Container[T]) {
		out = append(out, fn(v))
	})
	return out
}

// Pluck reads the property name off every element of c. Elements are
// structs (exported field name) or string-keyed maps.
func Pluck[T any](c Container[T], name string) ([]any, error) {
	var firstErr error
	out := Map(c, func(v T) any {
		if firstErr != nil {
			return nil
		}
		prop, err := helper.Property(v, name)
		if err != nil {
			firstErr = err
		}
		return prop
	})
	if firstErr != nil {
		return nil, fmt.Errorf("pluck: %w", firstErr)
	}
	return out, nil
}

// Invoke calls fn with every element of c as its receiver and args as the
// remaining arguments.
func Invoke[T, R any](c Container[T], fn func(recv T, args ...any) R, args ...any) []R {
	return Map(c, func(v T) R {
		return fn(v, args...)
	})
}

// InvokeMethod calls the exported method named method on every element of c.
// The result of each call is its first return value, or nil for methods
// without results.
func InvokeMethod[T any](c Container[T], method string, args ...any) ([]any, error) {
	var firstErr error
	out := Map(c, func(v T) any {
		if firstErr != nil {
			return nil
		}
		res, err := helper.CallMethod(v, method, args...)
		if err != nil {
			firstErr = err
		}
		return res
	})
	if firstErr != nil {
		return nil, fmt.Errorf("invoke: %w", firstErr)
	}
	return out, nil
}

// Every reports whether all elements of c pass pred. It is true for an empty
// container.
func Every[T any](c Container[T], pred Predicate[T]) bool {
	return Reduce(c, func(all bool, v T) bool {
		return all && pred(v)
	}, true)
}

// Some reports whether at least one element of c passes pred. It is false
// for an empty container.
func Some[T any](c Container[T], pred Predicate[T]) bool {
	return !Every(c, pred.negate())
}

// Contains reports whether target is an element of c, compared with ==.
func Contains[T comparable](c Container[T], target T) bool {
	return Reduce(c, func(found bool, v T) bool {
		return found || v == target
	}, false)
}

// Uniq returns the elements of c without duplicates, keeping the first
// occurrence of each. Each element is checked against everything kept so
// far, so the cost is quadratic.
func Uniq[T comparable](c Container[T]) []T {
	return Reduce(c, func(kept []T, v T) []T {
		if !Contains(Seq[T](kept), v) {
			kept = append(kept, v)
		}
		return kept
	}, []T{})
}

// IndexOf returns the index of the first element of s equal to target, or -1.
func IndexOf[T comparable](s Seq[T], target T) int {
	result := -1
	Each[T](s, func(v T, k Key, _ Container[T]) {
		if result == -1 && v == target {
			result = k.Index
		}
	})
	return result
}

// Zip groups the elements of seqs by index: row i holds the i-th element of
// every input, in argument order. There are as many rows as the longest
// input has elements; shorter inputs contribute the zero value of T.
//
//	collection.Zip(collection.Seq[string]{"a", "b"}, collection.Seq[string]{"1"})
//	// [[a 1] [b ]]
func Zip[T any](seqs ...Seq[T]) [][]T {
	columns := Seq[Seq[T]](seqs)
	longest := Reduce(columns, func(n int, s Seq[T]) int {
		return max(n, len(s))
	}, 0)

	rows := make([][]T, longest)
	for i := range rows {
		rows[i] = make([]T, len(seqs))
	}
	Each(columns, func(s Seq[T], col Key, _ Container[Seq[T]]) {
		Each(s, func(v T, row Key, _ Container[T]) {
			rows[row.Index][col.Index] = v
		})
	})
	return rows
}

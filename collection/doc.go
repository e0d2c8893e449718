// Package collection provides iteration, reduction and the operations derived
// from them over two container shapes: Seq, an index-addressed slice, and
// Keyed, a string-keyed map.
//
// Every operation goes through the same two primitives. Each visits elements
// (Seq in index order, Keyed in ascending key order) and Reduce folds them:
//
//	evens := collection.Filter(collection.Seq[int]{1, 2, 3, 4},
//	    func(n int) bool { return n%2 == 0 }) // [2 4]
//
//	total := collection.Reduce(collection.Keyed[int]{"a": 1, "b": 2},
//	    func(acc, n int) int { return acc + n }, 0) // 3
//
// Callbacks are never inspected and may panic; the panic reaches the caller
// unchanged. Operations that look elements up by name (Pluck, InvokeMethod)
// return errors from package helper instead.
package collection

package collection

// Each calls fn(value, key, c) once per element of c.
//
// Seq elements are visited in ascending index order, Keyed elements in
// ascending key order. Each never mutates c.
func Each[T any](c Container[T], fn func(T, Key, Container[T])) {
	c.each(func(v T, k Key) {
		fn(v, k, c)
	})
}

// Keys returns the keys of c in the order Each visits them.
func Keys[T any](c Container[T]) []Key {
	keys := make([]Key, 0, c.Len())
	Each(c, func(_ T, k Key, _ Container[T]) {
		keys = append(keys, k)
	})
	return keys
}

// Reduce folds c left to right into an accumulator starting at seed.
// An empty container yields seed unchanged.
//
//	sum := collection.Reduce(collection.Seq[int]{1, 2, 3},
//	    func(acc, n int) int { return acc + n }, 0) // 6
func Reduce[T, A any](c Container[T], fn func(A, T) A, seed A) A {
	acc := seed
	Each(c, func(v T, _ Key, _ Container[T]) {
		acc = fn(acc, v)
	})
	return acc
}

// ReduceFromFirst folds c without a seed: the first element in enumeration
// order seeds the accumulator and folding starts at the second.
//
// An empty container has nothing to seed with; the result is then the zero
// value and false. Callers that need a defined result on empty input should
// use Reduce with an explicit seed.
func ReduceFromFirst[T any](c Container[T], fn func(T, T) T) (T, bool) {
	var (
		acc    T
		seeded bool
	)
	Each(c, func(v T, _ Key, _ Container[T]) {
		if !seeded {
			acc, seeded = v, true
			return
		}
		acc = fn(acc, v)
	})
	return acc, seeded
}

package decorator

// MemoizeI1O1 returns a function that computes fn(k) once per distinct k and
// answers repeated arguments from its memo table.
//
// fn must be pure. Keys compare with == on K, so two pointers to equal values
// are different keys, and there is no conversion between key types. An
// interface K holding an incomparable value panics like a map key would. The
// table is unbounded: it grows with every distinct argument and is released
// only with the returned function.
func MemoizeI1O1[K comparable, O1 any](fn func(K) O1) func(K) O1 {
	memoized := memoize[O1]()
	return func(k K) O1 {
		return memoized(func() O1 { return fn(k) }, k)
	}
}

func MemoizeI2O1[K1, K2 comparable, O1 any](fn func(K1, K2) O1) func(K1, K2) O1 {
	memoized := memoize[O1]()
	return func(k1 K1, k2 K2) O1 {
		return memoized(func() O1 { return fn(k1, k2) }, k1, k2)
	}
}

// MemoizeI1O2 memoizes both results, so an error returned for k is returned
// again for k without calling fn.
func MemoizeI1O2[K comparable, O1, O2 any](fn func(K) (O1, O2)) func(K) (O1, O2) {
	memoized := memoize[result[O1, O2]]()
	return func(k K) (O1, O2) {
		res := memoized(func() result[O1, O2] {
			v1, v2 := fn(k)
			return result[O1, O2]{O1: v1, O2: v2}
		}, k)
		return res.O1, res.O2
	}
}

func MemoizeI2O2[K1, K2 comparable, O1, O2 any](fn func(K1, K2) (O1, O2)) func(K1, K2) (O1, O2) {
	memoized := memoize[result[O1, O2]]()
	return func(k1 K1, k2 K2) (O1, O2) {
		res := memoized(func() result[O1, O2] {
			v1, v2 := fn(k1, k2)
			return result[O1, O2]{O1: v1, O2: v2}
		}, k1, k2)
		return res.O1, res.O2
	}
}

func memoize[O any]() func(call func() O, keys ...any) O {
	memo := newTrie[O]()
	return func(call func() O, keys ...any) O {
		v, ok := memo.load(keys)
		if !ok {
			v = call()
			memo.store(keys, v)
		}
		return v
	}
}

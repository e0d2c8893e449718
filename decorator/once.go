package decorator

// onceState remembers whether the wrapped function has run and what it
// returned. If the first call panics the state stays unfired and the next
// call tries again.
type onceState[O any] struct {
	fired  bool
	result O
}

func (s *onceState[O]) do(call func() O) O {
	if !s.fired {
		s.result = call()
		s.fired = true
	}
	return s.result
}

type result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

// OnceI0O1 returns a function that calls fn on its first invocation and
// returns that first result on every invocation after it.
func OnceI0O1[O1 any](fn func() O1) func() O1 {
	state := &onceState[O1]{}
	return func() O1 {
		return state.do(fn)
	}
}

// OnceI1O1 is OnceI0O1 for one-argument functions. Only the arguments of the
// first call reach fn; later arguments are ignored.
//
// Bind a receiver by passing a method value:
//
//	load := decorator.OnceI1O1(repo.Load)
func OnceI1O1[I1, O1 any](fn func(I1) O1) func(I1) O1 {
	state := &onceState[O1]{}
	return func(i1 I1) O1 {
		return state.do(func() O1 {
			return fn(i1)
		})
	}
}

func OnceI2O1[I1, I2, O1 any](fn func(I1, I2) O1) func(I1, I2) O1 {
	state := &onceState[O1]{}
	return func(i1 I1, i2 I2) O1 {
		return state.do(func() O1 {
			return fn(i1, i2)
		})
	}
}

// OnceI1O2 covers the (value, error) shape. The error is cached like the
// value: a failed first call is never retried.
func OnceI1O2[I1, O1, O2 any](fn func(I1) (O1, O2)) func(I1) (O1, O2) {
	state := &onceState[result[O1, O2]]{}
	return func(i1 I1) (O1, O2) {
		res := state.do(func() result[O1, O2] {
			v1, v2 := fn(i1)
			return result[O1, O2]{O1: v1, O2: v2}
		})
		return res.O1, res.O2
	}
}

package decorator_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/on-the-ground/underbar/decorator"
	"github.com/stretchr/testify/assert"
)

func TestMemoizeI1O1(t *testing.T) {
	count := 0
	fn := decorator.MemoizeI1O1(func(n int) int {
		count++
		return n * n
	})

	assert.Equal(t, 25, fn(5))
	assert.Equal(t, 25, fn(5)) // cached
	assert.Equal(t, 1, count)

	assert.Equal(t, 36, fn(6))
	assert.Equal(t, 2, count)

	assert.Equal(t, 25, fn(5))
	assert.Equal(t, 2, count)
}

func TestMemoizeI1O1_ZeroResultIsCached(t *testing.T) {
	count := 0
	fn := decorator.MemoizeI1O1(func(string) int {
		count++
		return 0
	})

	fn("")
	fn("")
	assert.Equal(t, 1, count)
}

func TestMemoizeI1O1_AnyKeysDoNotCoerce(t *testing.T) {
	count := 0
	fn := decorator.MemoizeI1O1(func(k any) string {
		count++
		switch v := k.(type) {
		case int:
			return "int:" + strconv.Itoa(v)
		default:
			return "other"
		}
	})

	assert.Equal(t, "int:5", fn(5))
	assert.Equal(t, "other", fn("5"))
	assert.Equal(t, 2, count)
}

func TestMemoizeI1O1_PointerKeysCompareByIdentity(t *testing.T) {
	type point struct{ X, Y int }
	count := 0
	fn := decorator.MemoizeI1O1(func(p *point) int {
		count++
		return p.X + p.Y
	})

	a, b := &point{1, 2}, &point{1, 2}
	fn(a)
	fn(a)
	fn(b)
	assert.Equal(t, 2, count)
}

func TestMemoizeI1O1_RecursiveUse(t *testing.T) {
	calls := 0
	var fib func(int) int
	fib = decorator.MemoizeI1O1(func(n int) int {
		calls++
		if n <= 1 {
			return n
		}
		return fib(n-1) + fib(n-2)
	})

	assert.Equal(t, 6765, fib(20))
	assert.Equal(t, 21, calls)
}

func TestMemoizeI2O1(t *testing.T) {
	count := 0
	fn := decorator.MemoizeI2O1(func(a int, b string) string {
		count++
		return strconv.Itoa(a) + b
	})

	assert.Equal(t, "1x", fn(1, "x"))
	assert.Equal(t, "1x", fn(1, "x"))
	assert.Equal(t, "1y", fn(1, "y"))
	assert.Equal(t, "2x", fn(2, "x"))
	assert.Equal(t, 3, count)
}

func TestMemoizeI1O2(t *testing.T) {
	count := 0
	errOdd := errors.New("odd")
	fn := decorator.MemoizeI1O2(func(n int) (int, error) {
		count++
		if n%2 != 0 {
			return 0, errOdd
		}
		return n / 2, nil
	})

	v, err := fn(4)
	assert.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = fn(3)
	assert.ErrorIs(t, err, errOdd)
	_, err = fn(3)
	assert.ErrorIs(t, err, errOdd)

	assert.Equal(t, 2, count)
}

func TestMemoizeI2O2(t *testing.T) {
	count := 0
	fn := decorator.MemoizeI2O2(func(a, b int) (int, bool) {
		count++
		return a * b, a == b
	})

	x, same := fn(3, 3)
	assert.Equal(t, 9, x)
	assert.True(t, same)
	fn(3, 3)
	assert.Equal(t, 1, count)
}

func TestMemoize_IncomparableDynamicKeyPanics(t *testing.T) {
	fn := decorator.MemoizeI1O1(func(k any) int { return 0 })
	assert.Panics(t, func() { fn([]int{1}) })
}

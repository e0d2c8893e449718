package grouping

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnexpectedLeaf is returned by FlattenOf for a leaf that is not a T.
var ErrUnexpectedLeaf = errors.New("unexpected leaf type")

type frame struct {
	seq  reflect.Value
	next int
}

// Flatten returns the leaves of nested in depth-first, left-to-right order.
//
// Any slice or array is descended into, whatever its element type, so
// []any{1, []int{2, 3}} and [][]string{{"a"}, {"b"}} both flatten. Every other
// value (strings and maps included) is a leaf. A leaf passed as nested comes
// back as a one-element result.
//
// Traversal uses an explicit stack, so nesting depth is bounded by memory,
// not by the goroutine stack.
func Flatten(nested any) []any {
	root := reflect.ValueOf(nested)
	if !isSequence(root) {
		return []any{nested}
	}

	out := make([]any, 0, root.Len())
	stack := []frame{{seq: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= top.seq.Len() {
			stack = stack[:len(stack)-1]
			continue
		}
		item := top.seq.Index(top.next)
		top.next++

		for item.Kind() == reflect.Interface && !item.IsNil() {
			item = item.Elem()
		}
		if isSequence(item) {
			stack = append(stack, frame{seq: item})
			continue
		}
		out = append(out, item.Interface())
	}
	return out
}

// FlattenOf is Flatten for nestings whose leaves are all of type T.
func FlattenOf[T any](nested any) ([]T, error) {
	leaves := Flatten(nested)
	out := make([]T, len(leaves))
	for i, leaf := range leaves {
		v, ok := leaf.(T)
		if !ok {
			return nil, fmt.Errorf("%w: leaf %d is %T, want %T", ErrUnexpectedLeaf, i, leaf, *new(T))
		}
		out[i] = v
	}
	return out, nil
}

func isSequence(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

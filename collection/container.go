package collection

import (
	"slices"
	"strconv"

	"golang.org/x/exp/maps"
)

// Container is either a Seq or a Keyed. The interface is sealed: every
// operation in this package reaches the elements through Each alone.
type Container[T any] interface {
	Len() int
	each(fn func(T, Key))
}

// Key addresses one element of a container. Seq fills Index; Keyed fills
// Name and sets Index to the enumeration position.
type Key struct {
	Index int
	Name  string
	named bool
}

// IsNamed reports whether the key came from a Keyed container.
func (k Key) IsNamed() bool { return k.named }

func (k Key) String() string {
	if k.named {
		return k.Name
	}
	return strconv.Itoa(k.Index)
}

var (
	_ Container[any] = Seq[any]{}
	_ Container[any] = Keyed[any]{}
)

// Seq is an index-addressed container.
type Seq[T any] []T

func (s Seq[T]) Len() int { return len(s) }

func (s Seq[T]) each(fn func(T, Key)) {
	for i, v := range s {
		fn(v, Key{Index: i})
	}
}

// Keyed is a string-keyed container. It is enumerated in ascending key
// order, so every traversal of the same map visits keys identically.
type Keyed[T any] map[string]T

func (m Keyed[T]) Len() int { return len(m) }

func (m Keyed[T]) each(fn func(T, Key)) {
	for i, name := range m.sortedKeys() {
		fn(m[name], Key{Index: i, Name: name, named: true})
	}
}

func (m Keyed[T]) sortedKeys() []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

package decorator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrie_BasicUsage(t *testing.T) {
	trie := newTrie[string]()

	trie.store([]any{"a", "b", "c"}, "final")

	val, ok := trie.load([]any{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "final", val)

	// prefix of a stored path holds nothing
	_, ok = trie.load([]any{"a", "b"})
	assert.False(t, ok)

	_, ok = trie.load([]any{"a", "b", "x"})
	assert.False(t, ok)

	trie.store([]any{"a", "b", "c"}, "updated")
	val, ok = trie.load([]any{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
	assert.Equal(t, 1, trie.len())
}

func TestTrie_GrowsWithoutEviction(t *testing.T) {
	trie := newTrie[int]()
	for i := 0; i < 1000; i++ {
		trie.store([]any{i}, i)
	}
	assert.Equal(t, 1000, trie.len())

	val, ok := trie.load([]any{0})
	assert.True(t, ok)
	assert.Equal(t, 0, val)
}

func TestTrie_KeysOfDifferentTypesDoNotCollide(t *testing.T) {
	trie := newTrie[string]()
	trie.store([]any{5}, "int")
	trie.store([]any{"5"}, "string")

	v, _ := trie.load([]any{5})
	assert.Equal(t, "int", v)
	v, _ = trie.load([]any{"5"})
	assert.Equal(t, "string", v)
	assert.Equal(t, 2, trie.len())
}

func TestTrie_EmptyKeysPanics(t *testing.T) {
	trie := newTrie[int]()
	assert.Panics(t, func() { trie.load([]any{}) })
	assert.Panics(t, func() { trie.store(nil, 1) })
}
